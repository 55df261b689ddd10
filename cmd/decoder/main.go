package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"asrcli/internal/asr"
	"asrcli/internal/config"
	"asrcli/internal/exporter"
	"asrcli/internal/files"
	"asrcli/internal/infrastructure"
)

func main() {
	in := flag.String("in", "", "master file to decode, or a directory of master files (defaults to data/masterfiles)")
	out := flag.String("out", "", "output workbook path (defaults to data/reports/decoded_asr_data.xlsx)")
	format := flag.String("format", "", "export format: xlsx | csv | both")
	recordLength := flag.Int("record-length", 0, "fixed record width of the master file")
	sentinel := flag.String("sentinel", "", "offense code marking header records")
	flag.Parse()

	// Initialize paths first to get default directories
	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}
	if cfg.Logging.FilePath == "" || cfg.Logging.FilePath == "logs/decoder.log" {
		cfg.Logging.FilePath = paths.GetLogPath("decoder.log")
	}

	// Flags override config and environment.
	if *in != "" {
		cfg.Decoder.InputFile = *in
	}
	if *out != "" {
		cfg.Decoder.OutputFile = *out
	}
	if *format != "" {
		cfg.Export.Format = *format
	}
	if *recordLength > 0 {
		cfg.Decoder.RecordLength = *recordLength
	}
	if *sentinel != "" {
		cfg.Decoder.HeaderSentinel = *sentinel
	}
	if cfg.Decoder.InputFile == "" {
		cfg.Decoder.InputFile = paths.MasterFilesDir
	}
	if cfg.Decoder.OutputFile == "" {
		cfg.Decoder.OutputFile = paths.DecodedWorkbook
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	paths.LogPathResolution()

	ctx := infrastructure.WithRunID(context.Background(), uuid.NewString())

	logger.InfoContext(ctx, "Starting ASR decode",
		slog.String("input", cfg.Decoder.InputFile),
		slog.String("output", cfg.Decoder.OutputFile),
		slog.String("format", cfg.Export.Format),
		slog.Int("record_length", cfg.Decoder.RecordLength),
		slog.String("header_sentinel", cfg.Decoder.HeaderSentinel))

	if err := run(ctx, cfg, paths, logger); err != nil {
		logger.ErrorContext(ctx, "Decode run failed", slog.String("error", err.Error()))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Finished", slog.String("output", cfg.Decoder.OutputFile))
}

func run(ctx context.Context, cfg *config.Config, paths *config.Paths, logger *slog.Logger) error {
	inputPath := cfg.Decoder.InputFile

	// A directory input means decode its newest master file.
	if info, err := os.Stat(inputPath); err == nil && info.IsDir() {
		latest, err := files.NewDiscovery(paths.ExecutableDir).FindLatestMasterFile(inputPath)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "Selected master file",
			slog.String("path", latest.Path),
			slog.Int64("size", latest.Size))
		inputPath = latest.Path
	}

	dec := asr.NewDecoder(cfg.Decoder.RecordLength, cfg.Decoder.HeaderSentinel)
	result, err := dec.DecodeFile(inputPath)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "Decoded master file",
		slog.String("path", inputPath),
		slog.Int("lines_read", result.LinesRead),
		slog.Int("detail_records", len(result.Details)),
		slog.Int("header_records", len(result.Headers)))

	if cfg.Export.Format == "xlsx" || cfg.Export.Format == "both" {
		w := exporter.NewWorkbookWriter(paths)
		err := w.WriteWorkbook(cfg.Decoder.OutputFile, []exporter.Sheet{
			{Name: cfg.Export.DetailSheet, Records: result.Details},
			{Name: cfg.Export.HeaderSheet, Records: result.Headers},
		})
		if err != nil {
			return fmt.Errorf("workbook export failed: %w", err)
		}
	}

	if cfg.Export.Format == "csv" || cfg.Export.Format == "both" {
		cw := exporter.NewCSVWriter(paths)
		if err := cw.WriteRecords(paths.DetailCSV, result.Details); err != nil {
			return fmt.Errorf("detail CSV export failed: %w", err)
		}
		if err := cw.WriteRecords(paths.HeaderCSV, result.Headers); err != nil {
			return fmt.Errorf("header CSV export failed: %w", err)
		}
	}

	return nil
}
