package asr

import (
	"strconv"
	"strings"

	"asrcli/pkg/contracts/domain"
)

// RecordClass identifies which decoder a line routes to.
type RecordClass int

const (
	// ClassHeader marks a summary line carrying only identity fields.
	ClassHeader RecordClass = iota
	// ClassDetail marks a line carrying the full demographic count data.
	ClassDetail
)

func (c RecordClass) String() string {
	if c == ClassHeader {
		return "header"
	}
	return "detail"
}

// Decoder decodes master file lines. RecordLength and HeaderSentinel are
// parameters rather than constants so synthetic layouts can be decoded in
// tests; the zero values of NewDecoder fall back to the real format.
type Decoder struct {
	RecordLength   int
	HeaderSentinel string
}

// NewDecoder creates a decoder, substituting the format defaults for a
// non-positive record length or an empty sentinel.
func NewDecoder(recordLength int, headerSentinel string) *Decoder {
	if recordLength <= 0 {
		recordLength = DefaultRecordLength
	}
	if headerSentinel == "" {
		headerSentinel = DefaultHeaderSentinel
	}
	return &Decoder{RecordLength: recordLength, HeaderSentinel: headerSentinel}
}

// extract returns the substring of line covering the 1-indexed inclusive
// positions [a, b], right-padding with spaces when the line is shorter
// than b. Pure; never out of range.
func extract(line string, a, b int) string {
	if len(line) < b {
		line += strings.Repeat(" ", b-len(line))
	}
	return line[a-1 : b]
}

// coerceCount converts a count field to an integer. Blank input and input
// without any digits yield 0. Input that fails a direct parse is filtered
// down to its decimal digits, so stray characters are dropped; a leading
// minus sign is dropped the same way on that path. Never errors.
func coerceCount(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return n
}

// pad right-pads line with spaces up to the configured record length.
func (d *Decoder) pad(line string) string {
	if len(line) < d.RecordLength {
		return line + strings.Repeat(" ", d.RecordLength-len(line))
	}
	return line
}

// Classify routes a line by comparing its offense-code field against the
// header sentinel. Any line whose offense code equals the sentinel is a
// header, even if it is semantically a detail record; the format offers no
// other discriminator.
func (d *Decoder) Classify(line string) RecordClass {
	if extract(d.pad(line), offenseCodeStart, offenseCodeEnd) == d.HeaderSentinel {
		return ClassHeader
	}
	return ClassDetail
}

// DecodeDetail decodes a detail record: the identity block plus the four
// demographic count groups. Pure and deterministic over the input line.
func (d *Decoder) DecodeDetail(line string) *domain.Record {
	return decodeSchema(d.pad(line), detailSchema)
}

// DecodeHeader decodes a header record: the shared identity block plus the
// padded original line verbatim under "raw_line" for downstream
// inspection.
func (d *Decoder) DecodeHeader(line string) *domain.Record {
	line = d.pad(line)
	rec := decodeSchema(line, headerSchema)
	rec.Set("raw_line", line)
	return rec
}

func decodeSchema(line string, schema []FieldSpec) *domain.Record {
	rec := domain.NewRecord()
	for _, spec := range schema {
		raw := extract(line, spec.Start, spec.End)
		switch spec.Kind {
		case TrimmedText:
			rec.Set(spec.Name, strings.TrimSpace(raw))
		case Count:
			rec.Set(spec.Name, coerceCount(raw))
		default:
			rec.Set(spec.Name, raw)
		}
	}
	return rec
}
