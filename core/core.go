// Package core has the pipeline logic for loading, fitting and reporting.
package core

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/strengthlab/velomax/internal/chartgen"
	"github.com/strengthlab/velomax/internal/contract"
	"github.com/strengthlab/velomax/internal/outwriter"
	"github.com/strengthlab/velomax/schema"
)

// ExecuteVelocityReport runs the full pipeline: load and clean the input,
// fit every eligible athlete group, render charts, and write the summary.
// It serves as the main entry point for the 'report' command.
func ExecuteVelocityReport(cfg *contract.Config) error {
	start := time.Now()
	logReportHeader(cfg)

	groups, skipped, err := LoadGroups(cfg.InputPath)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		contract.LogWarning("No athlete has enough usable sets to fit")
	}

	result := predictAll(groups, cfg.Threshold)
	result.Skipped = skipped
	result.Predictions = rankPredictions(result.Predictions)

	if cfg.Charts && len(result.Predictions) > 0 {
		result.Failures = append(result.Failures, renderCharts(result, cfg)...)
	}

	duration := time.Since(start)
	if err := outwriter.WriteSummaryResults(result.Predictions, cfg, duration); err != nil {
		return err
	}

	for _, f := range result.Failures {
		contract.LogWarn(fmt.Sprintf("Athlete %s failed", f.Athlete), f.Err)
	}
	logReportFooter(result, duration)
	return nil
}

// predictAll fits every group, isolating per-athlete failures so a single
// degenerate profile never aborts the rest of the run.
func predictAll(groups []schema.AthleteGroup, threshold float64) schema.ReportResult {
	result := schema.ReportResult{Groups: groups}
	for _, g := range groups {
		pred, err := FitGroup(g, threshold)
		if err != nil {
			result.Failures = append(result.Failures, schema.FitFailure{Athlete: g.Athlete, Err: err})
			continue
		}
		result.Predictions = append(result.Predictions, pred)
	}
	return result
}

// renderCharts draws one diagnostic chart per predicted athlete using a
// small worker pool. Each chart is independent, so failures are collected
// and reported instead of aborting the remaining renders.
func renderCharts(result schema.ReportResult, cfg *contract.Config) []schema.FitFailure {
	if err := os.MkdirAll(cfg.ChartDir, 0o755); err != nil {
		failures := make([]schema.FitFailure, 0, len(result.Predictions))
		for _, p := range result.Predictions {
			failures = append(failures, schema.FitFailure{
				Athlete: p.Athlete,
				Err:     fmt.Errorf("cannot create chart dir: %w", err),
			})
		}
		return failures
	}

	groupsByName := make(map[string]schema.AthleteGroup, len(result.Groups))
	for _, g := range result.Groups {
		groupsByName[g.Athlete] = g
	}

	predCh := make(chan schema.Prediction, len(result.Predictions))
	failCh := make(chan schema.FitFailure, len(result.Predictions))
	var wg sync.WaitGroup

	for range cfg.Workers {
		wg.Go(func() {
			for pred := range predCh {
				path := filepath.Join(cfg.ChartDir, schema.ChartFileName(pred.Athlete))
				err := chartgen.RenderAthleteChart(groupsByName[pred.Athlete], pred, chartgen.Options{
					Threshold:   cfg.Threshold,
					PeriodLabel: cfg.PeriodLabel,
					Path:        path,
				})
				if err != nil {
					failCh <- schema.FitFailure{Athlete: pred.Athlete, Err: err}
					continue
				}
				fmt.Fprintf(os.Stderr, "Wrote chart for %s to %s\n", pred.Athlete, path)
			}
		})
	}

	for _, p := range result.Predictions {
		predCh <- p
	}
	close(predCh)

	wg.Wait()
	close(failCh)

	var failures []schema.FitFailure
	for f := range failCh {
		failures = append(failures, f)
	}
	return failures
}

// logReportHeader prints a concise, 2-line header for the run.
func logReportHeader(cfg *contract.Config) {
	fmt.Fprintf(os.Stderr, "Input: %s\n", filepath.Base(cfg.InputPath))
	fmt.Fprintf(os.Stderr, "Target velocity: %.2f m/s\n", cfg.Threshold)
}

// logReportFooter prints the final processed/skipped/failed counts.
func logReportFooter(result schema.ReportResult, duration time.Duration) {
	fmt.Fprintf(os.Stderr, "Processed %d athletes, skipped %d (insufficient data), failed %d in %v\n",
		len(result.Predictions), result.Skipped, len(result.Failures), duration.Round(time.Millisecond))
}
