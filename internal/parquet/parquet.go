// Package parquet exports prediction summaries to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/strengthlab/velomax/schema"
)

// PredictionRow is the Parquet row shape for one athlete's summary entry.
// The schema is derived from the struct tags.
type PredictionRow struct {
	// Name is the athlete's name as it appeared in the input.
	Name string `parquet:"name,snappy"`

	// PredictedMaxWeight is the extrapolated load in lbs at the target velocity.
	PredictedMaxWeight float64 `parquet:"predicted_max_weight,snappy"`

	// MeanSquaredError is the in-sample MSE of the fitted line.
	MeanSquaredError float64 `parquet:"mean_squared_error,snappy"`

	// RSquared is the coefficient of determination of the fit.
	RSquared float64 `parquet:"r_squared,snappy"`

	// ValidSets is the number of cleaned records behind the fit.
	ValidSets int32 `parquet:"valid_sets,snappy"`

	// FitLabel grades the fit quality from RSquared.
	FitLabel string `parquet:"fit_label,snappy"`
}

// WritePredictionsParquet writes a slice of PredictionRow structs to a
// Parquet file. The file footer lands on Close, so a Close failure is
// surfaced rather than leaving a silently truncated file.
func WritePredictionsParquet(rows []PredictionRow, outputPath string) (err error) {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[PredictionRow](file)
	defer func() {
		if cerr := writer.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to finalize parquet file: %w", cerr)
		}
	}()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// ConvertPredictions converts schema.Prediction values to Parquet rows.
// The label function is injected so this package stays presentation-free.
func ConvertPredictions(preds []schema.Prediction, label func(float64) string) []PredictionRow {
	rows := make([]PredictionRow, len(preds))
	for i, p := range preds {
		rows[i] = PredictionRow{
			Name:               p.Athlete,
			PredictedMaxWeight: p.PredictedMax,
			MeanSquaredError:   p.MSE,
			RSquared:           p.RSquared,
			ValidSets:          int32(p.ValidSets),
			FitLabel:           label(p.RSquared),
		}
	}
	return rows
}
