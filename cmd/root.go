package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/strengthlab/velomax/internal/contract"
	"github.com/strengthlab/velomax/schema"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file,
// env, flags). Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "velomax",
	Short:              "Estimate max-effort loads from barbell velocity data.",
	Long:               `Velomax fits a per-athlete load-velocity profile and extrapolates the estimated one-rep-max-equivalent load at a target velocity.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".velomax") // Name of config file (without extension)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")     // Look in the current directory
		viper.AddConfigPath("$HOME") // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("VELOMAX")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Set defaults in Viper
	viper.SetDefault("output", string(schema.TextOut))
	viper.SetDefault("charts", "yes")
	viper.SetDefault("chart-dir", ".")
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("workers", contract.DefaultWorkers)
	viper.SetDefault("threshold", schema.DefaultVelocityThreshold)
	viper.SetDefault("period-label", contract.DefaultPeriodLabel)
	viper.SetDefault("color", "yes")
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ *cobra.Command, args []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Handle positional arguments (which Viper doesn't do).
	if len(args) == 1 {
		input.InputPathStr = args[0]
	}

	// 4. Run all validation and complex parsing.
	// This function populates the global 'cfg' from 'input'.
	return contract.ProcessAndValidate(cfg, input)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
