package crimecast

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/citypulse/crimecast/monthseries"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrInsufficientHistory = errors.New("insufficient history to forecast")
	ErrInvalidHorizon      = errors.New("horizon must be at least 1")
	ErrEmptySeries         = errors.New("no month series or uninitialized")
)

// Predictor produces a forecast of the requested horizon from an observed
// monthly series. It exists so alternative strategies can be substituted
// without touching callers.
type Predictor interface {
	Forecast(series *monthseries.MonthSeries, horizon int) (*Results, error)
}

// Forecaster extrapolates a monthly incident series using an
// endpoint-difference trend over the trailing window plus a trailing mean
// baseline, perturbing each step with a bounded uniform multiplier. It holds
// no state between calls beyond its random source.
type Forecaster struct {
	opt *Options
	rng Uniform
}

// New creates a Forecaster using the provided options. If no options are
// provided a default is used.
func New(opt *Options) *Forecaster {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	rng := opt.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Forecaster{
		opt: opt,
		rng: rng,
	}
}

// Forecast returns one predicted point per future period up to horizon,
// starting the month after the last observed period. A series shorter than
// the trailing window yields ErrInsufficientHistory, which callers should
// treat as "nothing to show" rather than a failure. Repeated calls with the
// same inputs re-roll the noise unless the configured source is fixed.
func (f *Forecaster) Forecast(series *monthseries.MonthSeries, horizon int) (*Results, error) {
	if f == nil {
		return nil, ErrEmptySeries
	}
	if series == nil || series.Len() == 0 {
		return nil, ErrEmptySeries
	}
	if series.Len() < f.opt.TrailingWindow {
		return nil, fmt.Errorf(
			"series has %d of %d required periods, %w",
			series.Len(), f.opt.TrailingWindow, ErrInsufficientHistory,
		)
	}
	if horizon < 1 {
		return nil, fmt.Errorf("requested horizon of %d, %w", horizon, ErrInvalidHorizon)
	}

	// Endpoint-difference slope over the trailing window. Deliberately not a
	// least-squares fit, so an anomalous endpoint skews every step.
	recent := series.Tail(f.opt.TrailingWindow)
	trend := (recent.Y[recent.Len()-1] - recent.Y[0]) / float64(f.opt.TrailingWindow)

	base := stat.Mean(series.Tail(f.opt.BaseWindow).Y, nil)

	noiseSpan := f.opt.NoiseHigh - f.opt.NoiseLow
	predicted := make([]float64, 0, horizon)
	for i := 1; i <= horizon; i++ {
		raw := base + trend*float64(i)
		noise := f.opt.NoiseLow + f.rng.Float64()*noiseSpan
		predicted = append(predicted, math.Max(0, raw*noise))
	}

	return &Results{
		T:         series.NextPeriods(horizon),
		Predicted: predicted,
	}, nil
}
