// Package schema holds the domain types shared across the velomax pipeline.
package schema

// SetRecord represents one cleaned training set for an athlete.
// Weight is the load lifted in pounds and AvgVelocity is the mean barbell
// velocity for the set in meters per second.
type SetRecord struct {
	Athlete     string  `json:"athlete"`
	SetID       string  `json:"set_id"`
	Weight      float64 `json:"weight"`
	Reps        int     `json:"reps"`
	AvgVelocity float64 `json:"avg_velocity"`
}

// AthleteGroup is the set of cleaned records belonging to a single athlete.
// Records keep their input order, so first-seen deduplication is stable.
type AthleteGroup struct {
	Athlete string
	Records []SetRecord
}

// Prediction is the per-athlete regression output. Intercept and Slope are
// retained so chart rendering reuses the fitted model instead of re-fitting.
type Prediction struct {
	Athlete      string  `json:"athlete"`
	PredictedMax float64 `json:"predicted_max_weight"`
	MSE          float64 `json:"mean_squared_error"`
	RSquared     float64 `json:"r_squared"`
	ValidSets    int     `json:"valid_sets"`
	Intercept    float64 `json:"-"`
	Slope        float64 `json:"-"`
}

// FitFailure records a per-athlete error that did not abort the run.
type FitFailure struct {
	Athlete string
	Err     error
}

// ReportResult is the output of one full pipeline run.
type ReportResult struct {
	Predictions []Prediction
	Groups      []AthleteGroup
	Skipped     int // athlete groups dropped for having fewer than 2 records
	Failures    []FitFailure
}
