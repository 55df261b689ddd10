package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"asrcli/internal/asr"
	"asrcli/internal/config"
)

func writeMasterFile(t *testing.T, path string) {
	t.Helper()
	header := make([]byte, asr.DefaultRecordLength)
	detail := make([]byte, asr.DefaultRecordLength)
	for i := range header {
		header[i] = ' '
		detail[i] = ' '
	}
	copy(header[22:], "000")
	copy(detail[22:], "011")
	copy(detail[40:], "000000001")
	content := string(header) + "\n" + string(detail) + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
}

func TestRunWritesWorkbookAndCSV(t *testing.T) {
	base := t.TempDir()
	paths := config.PathsFrom(base)
	require.NoError(t, paths.EnsureDirectories())

	input := paths.GetMasterFilePath("master.txt")
	writeMasterFile(t, input)

	cfg := config.Default()
	cfg.Decoder.InputFile = input
	cfg.Decoder.OutputFile = paths.DecodedWorkbook
	cfg.Export.Format = "both"

	err := run(context.Background(), cfg, paths, testLogger())
	require.NoError(t, err)

	f, err := excelize.OpenFile(paths.DecodedWorkbook)
	require.NoError(t, err)
	defer f.Close()
	assert.ElementsMatch(t, []string{"DETAILS", "HEADERS"}, f.GetSheetList())

	rows, err := f.GetRows("DETAILS")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "male_under_10", rows[0][12])
	assert.Equal(t, "1", rows[1][12])

	assert.True(t, config.FileExists(paths.DetailCSV))
	assert.True(t, config.FileExists(paths.HeaderCSV))
}

func TestRunDirectoryInputPicksLatestMasterFile(t *testing.T) {
	base := t.TempDir()
	paths := config.PathsFrom(base)
	require.NoError(t, paths.EnsureDirectories())

	writeMasterFile(t, paths.GetMasterFilePath("master.txt"))

	cfg := config.Default()
	cfg.Decoder.InputFile = paths.MasterFilesDir
	cfg.Decoder.OutputFile = paths.DecodedWorkbook

	err := run(context.Background(), cfg, paths, testLogger())
	require.NoError(t, err)

	assert.True(t, config.FileExists(paths.DecodedWorkbook))
}

func TestRunMissingInput(t *testing.T) {
	base := t.TempDir()
	paths := config.PathsFrom(base)
	require.NoError(t, paths.EnsureDirectories())

	cfg := config.Default()
	cfg.Decoder.InputFile = filepath.Join(base, "missing_master.txt")
	cfg.Decoder.OutputFile = paths.DecodedWorkbook

	err := run(context.Background(), cfg, paths, testLogger())

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "missing_master.txt"))
	assert.False(t, config.FileExists(paths.DecodedWorkbook))
}
