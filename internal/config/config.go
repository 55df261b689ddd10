package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Decoder DecoderConfig `yaml:"decoder" envconfig:"DECODER"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Export  ExportConfig  `yaml:"export" envconfig:"EXPORT"`
}

// DecoderConfig contains the master file decode parameters.
//
// No field carries an envconfig default: a default-filled env layer would
// be indistinguishable from an explicitly set variable and would shadow
// every config.yaml value. Defaults are applied last, after the env and
// file layers are merged.
type DecoderConfig struct {
	// RecordLength is the expected fixed width of one record line.
	RecordLength int `yaml:"record_length" envconfig:"RECORD_LENGTH" validate:"min=1"`
	// HeaderSentinel is the offense code that marks a header record.
	HeaderSentinel string `yaml:"header_sentinel" envconfig:"HEADER_SENTINEL" validate:"len=3"`
	// InputFile is the master file (or directory of master files) to decode.
	InputFile string `yaml:"input_file" envconfig:"INPUT_FILE"`
	// OutputFile is the workbook path; empty means the default report path.
	OutputFile string `yaml:"output_file" envconfig:"OUTPUT_FILE"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level       string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format      string `yaml:"format" envconfig:"FORMAT"`
	Output      string `yaml:"output" envconfig:"OUTPUT"`
	FilePath    string `yaml:"file_path" envconfig:"FILE_PATH"`
	Development bool   `yaml:"development" envconfig:"DEVELOPMENT"`
}

// ExportConfig controls which tabular outputs a run produces
type ExportConfig struct {
	// Format selects the export target(s): xlsx, csv, or both.
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=xlsx csv both"`
	// DetailSheet and HeaderSheet name the workbook sheets.
	DetailSheet string `yaml:"detail_sheet" envconfig:"DETAIL_SHEET" validate:"required"`
	HeaderSheet string `yaml:"header_sheet" envconfig:"HEADER_SHEET" validate:"required"`
}

// Load loads configuration from environment variables and config file
func Load() (*Config, error) {
	return loadFrom(getConfigFilePath())
}

// loadFrom layers configuration: environment variables win over the config
// file, and whatever neither source sets falls back to the defaults.
func loadFrom(configFile string) (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("ASR", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if exists
	if configFile != "" {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence)
func mergeConfigs(fileConfig, envConfig Config) Config {
	if envConfig.Decoder.RecordLength == 0 {
		envConfig.Decoder.RecordLength = fileConfig.Decoder.RecordLength
	}
	if envConfig.Decoder.HeaderSentinel == "" {
		envConfig.Decoder.HeaderSentinel = fileConfig.Decoder.HeaderSentinel
	}
	if envConfig.Decoder.InputFile == "" {
		envConfig.Decoder.InputFile = fileConfig.Decoder.InputFile
	}
	if envConfig.Decoder.OutputFile == "" {
		envConfig.Decoder.OutputFile = fileConfig.Decoder.OutputFile
	}
	if envConfig.Logging.Level == "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if envConfig.Logging.Format == "" {
		envConfig.Logging.Format = fileConfig.Logging.Format
	}
	if envConfig.Logging.Output == "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if envConfig.Logging.FilePath == "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if envConfig.Export.Format == "" {
		envConfig.Export.Format = fileConfig.Export.Format
	}
	if envConfig.Export.DetailSheet == "" {
		envConfig.Export.DetailSheet = fileConfig.Export.DetailSheet
	}
	if envConfig.Export.HeaderSheet == "" {
		envConfig.Export.HeaderSheet = fileConfig.Export.HeaderSheet
	}

	return envConfig
}

// applyDefaults fills every field still unset after the env and file
// layers
func (c *Config) applyDefaults() {
	d := Default()
	if c.Decoder.RecordLength == 0 {
		c.Decoder.RecordLength = d.Decoder.RecordLength
	}
	if c.Decoder.HeaderSentinel == "" {
		c.Decoder.HeaderSentinel = d.Decoder.HeaderSentinel
	}
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = d.Logging.Format
	}
	if c.Logging.Output == "" {
		c.Logging.Output = d.Logging.Output
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = d.Logging.FilePath
	}
	if c.Export.Format == "" {
		c.Export.Format = d.Export.Format
	}
	if c.Export.DetailSheet == "" {
		c.Export.DetailSheet = d.Export.DetailSheet
	}
	if c.Export.HeaderSheet == "" {
		c.Export.HeaderSheet = d.Export.HeaderSheet
	}
}

// validate validates the configuration
func (c *Config) validate() error {
	// Normalize logging before validation: JSON with dual output is the
	// only mode the log tooling understands.
	if c.Logging.Format != "json" {
		c.Logging.Format = "json"
	}
	if c.Logging.Output != "both" && c.Logging.Output != "file" && c.Logging.Output != "console" {
		c.Logging.Output = "both"
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/decoder.log"
	}

	return validator.New(validator.WithRequiredStructEnabled()).Struct(c)
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
		"../configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Decoder: DecoderConfig{
			RecordLength:   DefaultRecordLength,
			HeaderSentinel: DefaultHeaderSentinel,
		},
		Logging: LoggingConfig{
			Level:       "info",
			Format:      "json",
			Output:      "both",
			FilePath:    "logs/decoder.log",
			Development: false,
		},
		Export: ExportConfig{
			Format:      "xlsx",
			DetailSheet: DefaultDetailSheet,
			HeaderSheet: DefaultHeaderSheet,
		},
	}
}
