package domain

// Record is an insertion-ordered mapping of field name to value, one per
// decoded master-file line. Values are either string (identity fields) or
// int (demographic counts). Decoders build a Record once; exporters only
// read it, so column order in the output always follows the order fields
// were set.
type Record struct {
	names  []string
	values map[string]interface{}
}

// NewRecord creates an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]interface{})}
}

// Set stores a value under name. Setting an existing name overwrites the
// value but keeps the original column position.
func (r *Record) Set(name string, value interface{}) {
	if _, ok := r.values[name]; !ok {
		r.names = append(r.names, name)
	}
	r.values[name] = value
}

// Get returns the value stored under name.
func (r *Record) Get(name string) (interface{}, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Text returns the string value stored under name, or "" if the field is
// absent or not a string.
func (r *Record) Text(name string) string {
	if s, ok := r.values[name].(string); ok {
		return s
	}
	return ""
}

// Count returns the int value stored under name, or 0 if the field is
// absent or not an int.
func (r *Record) Count(name string) int {
	if n, ok := r.values[name].(int); ok {
		return n
	}
	return 0
}

// Names returns the field names in insertion order. The returned slice is
// shared; callers must not modify it.
func (r *Record) Names() []string {
	return r.names
}

// Values returns the field values in insertion order.
func (r *Record) Values() []interface{} {
	out := make([]interface{}, len(r.names))
	for i, name := range r.names {
		out[i] = r.values[name]
	}
	return out
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.names)
}
