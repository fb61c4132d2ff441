package core

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/strengthlab/velomax/schema"
)

// ErrDegenerateFit marks a group whose velocity values have zero variance.
// A vertical load-velocity profile has no defined slope, so the fit is
// classified as a failure instead of propagating NaN downstream.
var ErrDegenerateFit = errors.New("zero variance in avg velocity, slope is undefined")

// FitGroup fits weight = intercept + slope*velocity over a group's records
// via ordinary least squares and extrapolates the load at the threshold
// velocity. MSE is in-sample against the same fitted line.
func FitGroup(group schema.AthleteGroup, threshold float64) (schema.Prediction, error) {
	n := len(group.Records)
	if n < 2 {
		return schema.Prediction{}, fmt.Errorf("athlete %s: need at least 2 sets, have %d", group.Athlete, n)
	}

	velocities := make([]float64, n)
	weights := make([]float64, n)
	for i, r := range group.Records {
		velocities[i] = r.AvgVelocity
		weights[i] = r.Weight
	}

	if stat.Variance(velocities, nil) == 0 {
		return schema.Prediction{}, fmt.Errorf("athlete %s: %w", group.Athlete, ErrDegenerateFit)
	}

	intercept, slope := stat.LinearRegression(velocities, weights, nil, false)

	var sse float64
	for i := range velocities {
		resid := weights[i] - (intercept + slope*velocities[i])
		sse += resid * resid
	}

	return schema.Prediction{
		Athlete:      group.Athlete,
		PredictedMax: intercept + slope*threshold,
		MSE:          sse / float64(n),
		RSquared:     stat.RSquared(velocities, weights, nil, intercept, slope),
		ValidSets:    n,
		Intercept:    intercept,
		Slope:        slope,
	}, nil
}
