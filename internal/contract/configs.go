package contract

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/strengthlab/velomax/schema"
)

// Default values for configuration.
const (
	DefaultPrecision   = 1
	DefaultPeriodLabel = "Training Block"
	MaxWorkers         = 64
)

// DefaultWorkers is the default size of the chart rendering pool.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// Config holds the runtime configuration for a report run.
// This struct remains the "final, validated" config.
type Config struct {
	InputPath   string
	Output      schema.OutputMode
	OutputFile  string
	Charts      bool
	ChartDir    string
	Precision   int
	Workers     int
	Threshold   float64
	PeriodLabel string
	UseColors   bool
	Width       int // Terminal width override (0 = auto-detect)
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputPathStr string

	Output      string  `mapstructure:"output"`
	OutputFile  string  `mapstructure:"output-file"`
	Charts      string  `mapstructure:"charts"`
	ChartDir    string  `mapstructure:"chart-dir"`
	Precision   int     `mapstructure:"precision"`
	Workers     int     `mapstructure:"workers"`
	Threshold   float64 `mapstructure:"threshold"`
	PeriodLabel string  `mapstructure:"period-label"`
	Color       string  `mapstructure:"color"`
	Width       int     `mapstructure:"width"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processOutput(cfg, input); err != nil {
		return err
	}
	return processInputPath(cfg, input)
}

// validateSimpleInputs processes and validates all non-output fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 1. Boolean-ish flags ---
	charts, err := ParseBoolString(input.Charts)
	if err != nil {
		return fmt.Errorf("invalid --charts value: %w", err)
	}
	cfg.Charts = charts

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 2. Precision Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	// --- 3. Workers Validation ---
	if input.Workers <= 0 || input.Workers > MaxWorkers {
		return fmt.Errorf("workers must be between 1 and %d (received %d)", MaxWorkers, input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 4. Threshold Validation ---
	// The threshold is a velocity in m/s; anything at or below zero cannot
	// represent a maximal-effort cutoff.
	if input.Threshold <= 0 {
		return fmt.Errorf("threshold must be a positive velocity in m/s (received %g)", input.Threshold)
	}
	cfg.Threshold = input.Threshold

	cfg.PeriodLabel = strings.TrimSpace(input.PeriodLabel)
	if cfg.PeriodLabel == "" {
		cfg.PeriodLabel = DefaultPeriodLabel
	}

	cfg.Width = input.Width
	return nil
}

// processOutput validates the summary output mode and resolves the output
// and chart destinations.
func processOutput(cfg *Config, input *ConfigRawInput) error {
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	cfg.OutputFile = strings.TrimSpace(input.OutputFile)
	switch cfg.Output {
	case schema.CSVOut:
		if cfg.OutputFile == "" {
			cfg.OutputFile = schema.DefaultSummaryFile
		}
	case schema.ParquetOut:
		// Parquet is a binary format; it never goes to stdout.
		if cfg.OutputFile == "" {
			return fmt.Errorf("--output-file is required for parquet output")
		}
	}

	cfg.ChartDir = strings.TrimSpace(input.ChartDir)
	if cfg.ChartDir == "" {
		cfg.ChartDir = "."
	}
	return nil
}

// processInputPath resolves and validates the positional input file path.
func processInputPath(cfg *Config, input *ConfigRawInput) error {
	path := strings.TrimSpace(input.InputPathStr)
	if path == "" {
		return fmt.Errorf("input CSV path is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("cannot resolve input path %q: %w", path, err)
	}
	cfg.InputPath = abs
	return nil
}
