// Package cmd defines the command-line interface for velomax.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/strengthlab/velomax/internal/contract"
	"github.com/strengthlab/velomax/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("output", "o", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write the summary to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent chart workers")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of reportCmd to Viper
	reportCmd.Flags().String("charts", "yes", "Render one diagnostic chart per athlete (yes/no)")
	reportCmd.Flags().String("chart-dir", ".", "Directory for per-athlete chart images")
	reportCmd.Flags().Float64("threshold", schema.DefaultVelocityThreshold, "Target velocity in m/s for the max-effort extrapolation")
	reportCmd.Flags().String("period-label", contract.DefaultPeriodLabel, "Collection-period label used as the chart subtitle")
	if err := viper.BindPFlags(reportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding report flags", err)
	}
}
