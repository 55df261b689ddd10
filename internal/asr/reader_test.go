package asr

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// detailLineAllOnes builds a detail line where every one of the 56 count
// fields reads "000000001".
func detailLineAllOnes(t *testing.T) string {
	t.Helper()
	fields := map[int]string{23: "011"}
	for _, g := range detailGroups {
		for _, spec := range g.Specs() {
			fields[spec.Start] = "000000001"
		}
	}
	return buildLine(DefaultRecordLength, fields)
}

func TestDecodeReaderEndToEnd(t *testing.T) {
	header := buildLine(DefaultRecordLength, map[int]string{
		1:  "1",
		2:  "06",
		4:  "CA00107",
		23: "000",
	})
	detail := detailLineAllOnes(t)
	input := header + "\n" + detail + "\n"

	dec := NewDecoder(DefaultRecordLength, DefaultHeaderSentinel)
	result, err := dec.DecodeReader(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, 2, result.LinesRead)
	require.Len(t, result.Headers, 1)
	require.Len(t, result.Details, 1)

	assert.Equal(t, "CA00107", result.Headers[0].Text("ori_code"))

	counted := 0
	for _, name := range result.Details[0].Names() {
		if v, ok := result.Details[0].Get(name); ok {
			if n, isInt := v.(int); isInt {
				counted++
				assert.Equal(t, 1, n, "field %s", name)
			}
		}
	}
	assert.Equal(t, 56, counted)
}

func TestDecodeReaderSkipsBlankLines(t *testing.T) {
	detail := buildLine(DefaultRecordLength, map[int]string{23: "011"})
	input := "\n   \n" + detail + "\n\t\n"

	dec := NewDecoder(DefaultRecordLength, DefaultHeaderSentinel)
	result, err := dec.DecodeReader(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, 4, result.LinesRead)
	assert.Len(t, result.Details, 1)
	assert.Empty(t, result.Headers)
}

func TestDecodeReaderPreservesInputOrder(t *testing.T) {
	var lines []string
	for _, state := range []string{"01", "02", "03"} {
		lines = append(lines, buildLine(DefaultRecordLength, map[int]string{2: state, 23: "011"}))
	}
	dec := NewDecoder(DefaultRecordLength, DefaultHeaderSentinel)

	result, err := dec.DecodeReader(strings.NewReader(strings.Join(lines, "\n")))

	require.NoError(t, err)
	require.Len(t, result.Details, 3)
	for i, state := range []string{"01", "02", "03"} {
		assert.Equal(t, state, result.Details[i].Text("state_code"))
	}
}

func TestDecodeReaderReplacesInvalidUTF8(t *testing.T) {
	line := buildLine(DefaultRecordLength, map[int]string{
		2:  "06",
		23: "011",
		41: "000000001",
	})
	// Corrupt a byte inside the ORI field.
	corrupted := line[:4] + "\xff" + line[5:]

	dec := NewDecoder(DefaultRecordLength, DefaultHeaderSentinel)
	result, err := dec.DecodeReader(strings.NewReader(corrupted))

	require.NoError(t, err)
	require.Len(t, result.Details, 1)
	require.Empty(t, result.Headers)

	// The replacement must occupy exactly one column so every field after
	// the corruption keeps its position.
	rec := result.Details[0]
	assert.Equal(t, "06", rec.Text("state_code"))
	assert.Equal(t, "?", rec.Text("ori_code"))
	assert.Equal(t, "011", rec.Text("offense_code"))
	assert.Equal(t, 1, rec.Count("male_under_10"))
}

func TestSanitizeLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "valid ascii untouched", input: "abc 011", want: "abc 011"},
		{name: "single bad byte", input: "ab\xffcd", want: "ab?cd"},
		{name: "consecutive bad bytes keep width", input: "a\xff\xfeb", want: "a??b"},
		{name: "truncated multibyte sequence", input: "a\xe2\x28b", want: "a?(b"},
		{name: "valid multibyte rune preserved", input: "aéb", want: "aéb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeLine(tt.input)
			assert.Equal(t, tt.want, got)
			if len(tt.input) == len([]byte(tt.want)) {
				assert.Len(t, got, len(tt.input))
			}
		})
	}
}

func TestDecodeReaderHandlesCRLF(t *testing.T) {
	detail := buildLine(DefaultRecordLength, map[int]string{23: "011", 41: "000000004"})

	dec := NewDecoder(DefaultRecordLength, DefaultHeaderSentinel)
	result, err := dec.DecodeReader(strings.NewReader(detail + "\r\n"))

	require.NoError(t, err)
	require.Len(t, result.Details, 1)
	assert.Equal(t, 4, result.Details[0].Count("male_under_10"))
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "master.txt")
	header := buildLine(DefaultRecordLength, map[int]string{23: "000"})
	detail := buildLine(DefaultRecordLength, map[int]string{23: "03B"})
	require.NoError(t, os.WriteFile(path, []byte(header+"\n"+detail+"\n"), 0644))

	dec := NewDecoder(DefaultRecordLength, DefaultHeaderSentinel)
	result, err := dec.DecodeFile(path)

	require.NoError(t, err)
	assert.Len(t, result.Headers, 1)
	assert.Len(t, result.Details, 1)
}

func TestDecodeFileMissinginput(t *testing.T) {
	dec := NewDecoder(DefaultRecordLength, DefaultHeaderSentinel)

	result, err := dec.DecodeFile(filepath.Join(t.TempDir(), "no_such_file.txt"))

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "does not exist")
	assert.Contains(t, err.Error(), "no_such_file.txt")
}
