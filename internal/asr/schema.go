package asr

import "strings"

// FieldKind selects how an extracted field is converted before it is
// stored in a record.
type FieldKind int

const (
	// Text stores the field exactly as it appears in the line.
	Text FieldKind = iota
	// TrimmedText stores the field with surrounding whitespace removed.
	TrimmedText
	// Count stores the field as a numeric count via the coercer.
	Count
)

// FieldSpec describes one fixed-position field using 1-indexed inclusive
// byte offsets into a record line. Specs within a schema never overlap and
// appear in ascending offset order.
type FieldSpec struct {
	Name  string
	Start int
	End   int
	Kind  FieldKind
}

// BandedGroup describes a run of equal-width count fields read back to
// back: field i covers positions [Base+i*Width, Base+(i+1)*Width-1]. The
// master file format has no gaps between repeated counts, so the stride
// equals the field width.
type BandedGroup struct {
	Labels []string
	Base   int
	Width  int
}

// Specs expands the group into per-field specs by iterating the stride.
func (g BandedGroup) Specs() []FieldSpec {
	specs := make([]FieldSpec, len(g.Labels))
	start := g.Base
	for i, label := range g.Labels {
		specs[i] = FieldSpec{Name: label, Start: start, End: start + g.Width - 1, Kind: Count}
		start += g.Width
	}
	return specs
}

// Offense-code field position, the sole discriminator between header and
// detail records.
const (
	offenseCodeStart = 23
	offenseCodeEnd   = 25
)

// DefaultRecordLength is the fixed width of a master file record.
const DefaultRecordLength = 564

// DefaultHeaderSentinel is the offense code that marks a header record.
const DefaultHeaderSentinel = "000"

// countFieldWidth is the width (and stride) of every demographic count.
const countFieldWidth = 9

// headerSchema covers the identity block shared by both record shapes.
// Header records carry nothing else besides the raw line.
var headerSchema = []FieldSpec{
	{Name: "identifier", Start: 1, End: 1, Kind: Text},
	{Name: "state_code", Start: 2, End: 3, Kind: Text},
	{Name: "ori_code", Start: 4, End: 10, Kind: TrimmedText},
	{Name: "group", Start: 11, End: 12, Kind: Text},
	{Name: "division", Start: 13, End: 13, Kind: Text},
	{Name: "year", Start: 14, End: 15, Kind: Text},
}

// detailIdentitySchema extends the shared identity block with the card
// indicators and the offense code.
var detailIdentitySchema = append(headerSchema[:len(headerSchema):len(headerSchema)],
	FieldSpec{Name: "msa", Start: 16, End: 18, Kind: TrimmedText},
	FieldSpec{Name: "card1_indicator_adult_male", Start: 19, End: 19, Kind: Text},
	FieldSpec{Name: "card2_indicator_adult_female", Start: 20, End: 20, Kind: Text},
	FieldSpec{Name: "card3_indicator_juvenile", Start: 21, End: 21, Kind: Text},
	FieldSpec{Name: "adjustment", Start: 22, End: 22, Kind: Text},
	FieldSpec{Name: "offense_code", Start: offenseCodeStart, End: offenseCodeEnd, Kind: Text},
)

// maleAgeLabels lists the 22 age bands of the male count block. The female
// block repeats the same bands at its own base offset.
var maleAgeLabels = []string{
	"male_under_10", "male_10_12", "male_13_14", "male_15", "male_16",
	"male_17", "male_18", "male_19", "male_20", "male_21", "male_22",
	"male_23", "male_24", "male_25_29", "male_30_34", "male_35_39",
	"male_40_44", "male_45_49", "male_50_54", "male_55_59", "male_60_64",
	"male_over_64",
}

var juvenileRaceLabels = []string{
	"juvenile_white", "juvenile_black", "juvenile_indian", "juvenile_asian",
	"juvenile_hispanic", "juvenile_non_hispanic",
}

var adultRaceLabels = []string{
	"adult_white", "adult_black", "adult_indian", "adult_asian",
	"adult_hispanic", "adult_non_hispanic",
}

// detailGroups lists the four demographic count blocks of a detail record.
// Base offsets and widths are format constants and must match the real
// master file layout exactly.
var detailGroups = []BandedGroup{
	{Labels: maleAgeLabels, Base: 41, Width: countFieldWidth},
	{Labels: femaleAgeLabels(), Base: 239, Width: countFieldWidth},
	{Labels: juvenileRaceLabels, Base: 437, Width: countFieldWidth},
	{Labels: adultRaceLabels, Base: 491, Width: countFieldWidth},
}

// detailSchema is the full ordered field table of a detail record:
// identity block followed by the four expanded count groups.
var detailSchema = buildDetailSchema()

func buildDetailSchema() []FieldSpec {
	schema := make([]FieldSpec, 0, len(detailIdentitySchema)+56)
	schema = append(schema, detailIdentitySchema...)
	for _, g := range detailGroups {
		schema = append(schema, g.Specs()...)
	}
	return schema
}

func femaleAgeLabels() []string {
	labels := make([]string, len(maleAgeLabels))
	for i, label := range maleAgeLabels {
		labels[i] = strings.Replace(label, "male", "female", 1)
	}
	return labels
}

// DetailFieldNames returns the column names of a detail record in schema
// order.
func DetailFieldNames() []string {
	names := make([]string, len(detailSchema))
	for i, spec := range detailSchema {
		names[i] = spec.Name
	}
	return names
}
