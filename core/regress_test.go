package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strengthlab/velomax/schema"
)

func makeGroup(name string, sets ...[2]float64) schema.AthleteGroup {
	g := schema.AthleteGroup{Athlete: name}
	for i, s := range sets {
		g.Records = append(g.Records, schema.SetRecord{
			Athlete:     name,
			SetID:       string(rune('1' + i)),
			Weight:      s[0],
			Reps:        3,
			AvgVelocity: s[1],
		})
	}
	return g
}

func TestFitGroupDecreasingProfile(t *testing.T) {
	// Velocity drops as weight rises; extrapolation at 0.25 m/s must land
	// strictly above the heaviest observed set.
	g := makeGroup("Ana", [2]float64{100, 0.6}, [2]float64{120, 0.45}, [2]float64{140, 0.3})

	pred, err := FitGroup(g, 0.25)
	require.NoError(t, err)
	assert.Equal(t, "Ana", pred.Athlete)
	assert.Equal(t, 3, pred.ValidSets)
	assert.Greater(t, pred.PredictedMax, 140.0)
	assert.Negative(t, pred.Slope)
	assert.GreaterOrEqual(t, pred.RSquared, 0.0)
	assert.LessOrEqual(t, pred.RSquared, 1.0)
}

func TestFitGroupExactLine(t *testing.T) {
	// weight = 200 - 100*velocity, a perfect fit.
	g := makeGroup("Ben", [2]float64{140, 0.6}, [2]float64{160, 0.4}, [2]float64{180, 0.2})

	pred, err := FitGroup(g, 0.25)
	require.NoError(t, err)
	assert.InDelta(t, 200.0, pred.Intercept, 1e-9)
	assert.InDelta(t, -100.0, pred.Slope, 1e-9)
	assert.InDelta(t, 175.0, pred.PredictedMax, 1e-9)
	assert.InDelta(t, 0.0, pred.MSE, 1e-9)
	assert.InDelta(t, 1.0, pred.RSquared, 1e-9)
}

func TestFitGroupDegenerate(t *testing.T) {
	// Two sets at the same velocity: slope is undefined and the condition
	// must be classified, not returned as NaN.
	g := makeGroup("Cara", [2]float64{100, 0.5}, [2]float64{120, 0.5})

	_, err := FitGroup(g, 0.25)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDegenerateFit))
	assert.Contains(t, err.Error(), "Cara")
}

func TestFitGroupTooFewRecords(t *testing.T) {
	g := makeGroup("Dan", [2]float64{100, 0.5})
	_, err := FitGroup(g, 0.25)
	require.Error(t, err)
}

func TestFitGroupMSE(t *testing.T) {
	// Symmetric residuals around a flat-ish trend keep the math checkable:
	// points (0.4,100), (0.5,90), (0.6,110) => OLS slope 50, intercept 75.
	g := makeGroup("Eve", [2]float64{100, 0.4}, [2]float64{90, 0.5}, [2]float64{110, 0.6})

	pred, err := FitGroup(g, 0.25)
	require.NoError(t, err)
	assert.InDelta(t, 75.0, pred.Intercept, 1e-9)
	assert.InDelta(t, 50.0, pred.Slope, 1e-9)
	// Residuals: 100-95=5, 90-100=-10, 110-105=5 => MSE = 150/3 = 50.
	assert.InDelta(t, 50.0, pred.MSE, 1e-9)
}
