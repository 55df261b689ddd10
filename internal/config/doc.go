// Package config provides centralized configuration management for the
// ASR decoder. It handles loading configuration from multiple sources,
// validation, and path resolution relative to the executable.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. config.yaml (optional)
//	3. Struct tag defaults (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern ASR_* for namespacing:
//
//	ASR_DECODER_RECORD_LENGTH=564
//	ASR_DECODER_HEADER_SENTINEL=000
//	ASR_DECODER_INPUT_FILE=/path/to/master_file.txt
//	ASR_LOGGING_LEVEL=debug
//	ASR_EXPORT_FORMAT=both
//
// # Path Management
//
// The Paths type resolves every file system path the application touches
// relative to the executable location, never the working directory:
//
//	paths, err := config.GetPaths()
//	workbook := paths.DecodedWorkbook
package config
