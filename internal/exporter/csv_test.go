package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asrcli/internal/config"
	"asrcli/pkg/contracts/domain"
)

func TestWriteCSV(t *testing.T) {
	base := t.TempDir()
	w := NewCSVWriter(config.PathsFrom(base))

	err := w.WriteCSV("basic.csv", WriteOptions{
		Headers:   []string{"a", "b"},
		Rows:      [][]string{{"1", "2"}, {"3", "4"}},
		BOMPrefix: true,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(base, "data", "reports", "basic.csv"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(data), "\xEF\xBB\xBF"))

	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(data), "\xEF\xBB\xBF")))
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"a", "b"}, rows[0])
	assert.Equal(t, []string{"3", "4"}, rows[2])
}

func TestWriteRecords(t *testing.T) {
	base := t.TempDir()
	w := NewCSVWriter(config.PathsFrom(base))

	records := []*domain.Record{
		testRecord("state_code", "06", "male_under_10", 12),
		testRecord("state_code", "17", "male_under_10", 0),
	}

	require.NoError(t, w.WriteRecords("details.csv", records))

	data, err := os.ReadFile(filepath.Join(base, "data", "reports", "details.csv"))
	require.NoError(t, err)

	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(data), "\xEF\xBB\xBF")))
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"state_code", "male_under_10"}, rows[0])
	assert.Equal(t, []string{"06", "12"}, rows[1])
	assert.Equal(t, []string{"17", "0"}, rows[2])
}

func TestWriteRecordsEmptySequence(t *testing.T) {
	base := t.TempDir()
	w := NewCSVWriter(config.PathsFrom(base))

	require.NoError(t, w.WriteRecords("nothing.csv", nil))

	assert.False(t, config.FileExists(filepath.Join(base, "data", "reports", "nothing.csv")))
}
