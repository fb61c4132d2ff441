package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/strengthlab/velomax/internal/contract"
	"github.com/strengthlab/velomax/internal/parquet"
	"github.com/strengthlab/velomax/schema"
)

// SummaryCSVHeader is the header row of the summary CSV artifact.
var SummaryCSVHeader = []string{
	"name",
	"predicted_max_weight",
	"mean_squared_error",
	"r_squared",
	"valid_sets",
}

// WriteSummaryResults outputs the prediction summary, dispatching on the
// configured output format.
func WriteSummaryResults(preds []schema.Prediction, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeSummaryJSON(preds, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeSummaryCSV(preds, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		rows := parquet.ConvertPredictions(preds, contract.GetPlainLabel)
		if err := parquet.WritePredictionsParquet(rows, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote parquet to %s\n", cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryTable(preds, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeSummaryJSON handles opening the file and calling the JSON writer.
func writeSummaryJSON(preds []schema.Prediction, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForSummary(w, preds)
	}, "Wrote JSON")
}

// writeSummaryCSV handles opening the file and calling the CSV writer.
func writeSummaryCSV(preds []schema.Prediction, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForSummary(csvWriter, preds)
	}, "Wrote CSV")
}

// writeSummaryTable generates and writes the human-readable table.
func writeSummaryTable(preds []schema.Prediction, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	headers := []string{"Rank", "Athlete", "Pred Max (lbs)", "MSE", "R2", "Sets", "Fit"}
	table.Header(headers)

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	label := contract.GetPlainLabel
	if cfg.UseColors {
		label = contract.GetColorLabel
	}

	var data [][]string
	for i, p := range preds {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			truncateName(p.Athlete, getMaxTableNameWidth(cfg)),
			fmtFloat(p.PredictedMax),
			fmtFloat(p.MSE),
			fmt.Sprintf("%.2f", p.RSquared),
			fmt.Sprintf(intFmt, p.ValidSets),
			label(p.RSquared),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	totalSets := 0
	for _, p := range preds {
		totalSets += p.ValidSets
	}
	if _, err := fmt.Fprintf(writer, "Showing %d athletes (total valid sets: %d)\n", len(preds), totalSets); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Report completed in %v with %d workers\n", duration.Round(time.Millisecond), cfg.Workers); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForSummary writes the summary in CSV format. Floats keep
// full precision so the table round-trips against the in-memory results.
func writeCSVResultsForSummary(w *csv.Writer, preds []schema.Prediction) error {
	if err := w.Write(SummaryCSVHeader); err != nil {
		return err
	}
	for _, p := range preds {
		rec := []string{
			p.Athlete,
			strconv.FormatFloat(p.PredictedMax, 'g', -1, 64),
			strconv.FormatFloat(p.MSE, 'g', -1, 64),
			strconv.FormatFloat(p.RSquared, 'g', -1, 64),
			strconv.Itoa(p.ValidSets),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeJSONResultsForSummary writes the summary in JSON format.
func writeJSONResultsForSummary(w io.Writer, preds []schema.Prediction) error {
	type JSONPrediction struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.Prediction
	}

	output := make([]JSONPrediction, len(preds))
	for i, p := range preds {
		output[i] = JSONPrediction{
			Rank:       i + 1,
			Label:      contract.GetPlainLabel(p.RSquared),
			Prediction: p,
		}
	}

	return writeJSON(w, output)
}
