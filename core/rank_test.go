package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strengthlab/velomax/schema"
)

func TestRankPredictions(t *testing.T) {
	preds := []schema.Prediction{
		{Athlete: "Ben", PredictedMax: 175},
		{Athlete: "Ana", PredictedMax: 210},
		{Athlete: "Cara", PredictedMax: 175},
	}
	ranked := rankPredictions(preds)
	assert.Equal(t, "Ana", ranked[0].Athlete)
	// Stable sort keeps input order on ties.
	assert.Equal(t, "Ben", ranked[1].Athlete)
	assert.Equal(t, "Cara", ranked[2].Athlete)
}
