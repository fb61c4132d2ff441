package cmd

import (
	"github.com/spf13/cobra"

	"github.com/strengthlab/velomax/core"
	"github.com/strengthlab/velomax/internal/contract"
)

// reportCmd runs the full load-velocity report pipeline.
var reportCmd = &cobra.Command{
	Use:   "report <input.csv>",
	Short: "Fit per-athlete load-velocity profiles and write the report.",
	Long: `Read a CSV of training sets, fit a weight-on-velocity regression per
athlete, and write a prediction summary plus one diagnostic chart per athlete.

The input must carry the columns Name, Set ID, Weight, Reps and Avg Velocity.
Rows missing a weight or velocity are dropped; duplicate weights for the same
athlete keep the first occurrence; athletes with fewer than two usable sets
are excluded.

Examples:
  # Full report with charts in the current directory
  velomax report sets.csv

  # Summary only, as CSV
  velomax report sets.csv --charts no --output csv --output-file maxes.csv

  # Charts into a folder, custom subtitle
  velomax report sets.csv --chart-dir charts --period-label "Spring Testing"

  # Export the summary for downstream analytics
  velomax report sets.csv --output parquet --output-file maxes.parquet`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteVelocityReport(cfg); err != nil {
			contract.LogFatal("Cannot run report", err)
		}
	},
}
