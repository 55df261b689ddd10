// Package exporter writes decoded master file records as tabular output.
//
// This package contains two main components:
//
// WorkbookWriter: Excel workbook output via excelize, one sheet per record
// category (details, headers), with column order following the field order
// of the records.
//
// CSVWriter: Core CSV writing functionality with support for headers and a
// UTF-8 BOM for Excel compatibility, used for the optional CSV export of
// the same record sequences.
//
// Example usage:
//
//	w := exporter.NewWorkbookWriter(paths)
//	err := w.WriteWorkbook("decoded_asr_data.xlsx", []exporter.Sheet{
//	    {Name: "DETAILS", Records: result.Details},
//	    {Name: "HEADERS", Records: result.Headers},
//	})
package exporter
