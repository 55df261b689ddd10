package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"asrcli/internal/config"
	"asrcli/pkg/contracts/domain"
)

// Sheet pairs a workbook sheet name with the records it holds. A sheet
// with no records is skipped entirely.
type Sheet struct {
	Name    string
	Records []*domain.Record
}

// WorkbookWriter writes decoded record sequences as an Excel workbook
type WorkbookWriter struct {
	paths *config.Paths
}

// NewWorkbookWriter creates a new workbook writer instance
func NewWorkbookWriter(paths *config.Paths) *WorkbookWriter {
	return &WorkbookWriter{paths: paths}
}

// WriteWorkbook writes one sheet per non-empty record sequence. The first
// row of each sheet holds the field names of the first record; every
// record contributes one row with columns in field insertion order. An
// export where every sheet is empty is an error.
func (w *WorkbookWriter) WriteWorkbook(filePath string, sheets []Sheet) error {
	fullPath := resolvePath(w.paths, filePath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	written := 0
	for _, sheet := range sheets {
		if len(sheet.Records) == 0 {
			continue
		}
		if written == 0 {
			// Reuse the default sheet so the workbook never carries an
			// empty leading sheet.
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return fmt.Errorf("failed to name sheet %s: %w", sheet.Name, err)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return fmt.Errorf("failed to create sheet %s: %w", sheet.Name, err)
			}
		}
		if err := writeSheet(f, sheet); err != nil {
			return err
		}
		written++
	}

	if written == 0 {
		return fmt.Errorf("no records to export")
	}

	if err := f.SaveAs(fullPath); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", fullPath, err)
	}

	slog.Info("Wrote Excel workbook",
		slog.String("path", fullPath),
		slog.Int("sheet_count", written))

	return nil
}

func writeSheet(f *excelize.File, sheet Sheet) error {
	names := sheet.Records[0].Names()
	header := make([]interface{}, len(names))
	for i, name := range names {
		header[i] = name
	}
	if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row of %s: %w", sheet.Name, err)
	}

	for i, rec := range sheet.Records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d of %s: %w", i+2, sheet.Name, err)
		}
		values := rec.Values()
		if err := f.SetSheetRow(sheet.Name, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+2, sheet.Name, err)
		}
	}

	return nil
}

// resolvePath resolves a path to the appropriate directory
func resolvePath(paths *config.Paths, filePath string) string {
	if filepath.IsAbs(filePath) {
		return filePath
	}
	// Relative outputs are reports.
	return paths.GetReportPath(filePath)
}
