package core

import (
	"sort"

	"github.com/strengthlab/velomax/schema"
)

// rankPredictions sorts predictions by predicted max in descending order.
// Ties keep first-seen input order.
func rankPredictions(preds []schema.Prediction) []schema.Prediction {
	sort.SliceStable(preds, func(i, j int) bool {
		return preds[i].PredictedMax > preds[j].PredictedMax
	})
	return preds
}
