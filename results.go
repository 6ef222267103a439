package crimecast

import (
	"time"

	"github.com/citypulse/crimecast/monthseries"
)

// Results holds one predicted value per forecast period. Predicted values
// are non-negative reals; display layers truncate to whole incidents.
type Results struct {
	T         []time.Time `json:"time"`
	Predicted []float64   `json:"predicted"`
}

// Reanchor relabels the forecast periods as consecutive months starting at
// the given anchor month, leaving the predicted values untouched. This is a
// caller-level policy for presenting forecasts from a fixed future date
// independent of where the observed data ends; the gap between the series
// end and the anchor is skipped, not filled.
func (r *Results) Reanchor(anchor time.Time) *Results {
	return &Results{
		T:         monthseries.PeriodsFrom(anchor, len(r.Predicted)),
		Predicted: append([]float64(nil), r.Predicted...),
	}
}
