package crimecast

// Uniform is the source of uniform random draws in [0, 1) used to perturb
// each forecast step. *rand.Rand from math/rand/v2 satisfies it. Injecting
// the source lets tests pin the noise to a fixed sequence while production
// callers keep fresh randomness per call.
type Uniform interface {
	Float64() float64
}

// Options configures the trend-plus-baseline heuristic.
type Options struct {
	// TrailingWindow is the number of most recent periods used for the
	// endpoint-difference trend estimate. A series shorter than this is
	// considered insufficient history.
	TrailingWindow int

	// BaseWindow is the number of most recent periods averaged into the
	// forecast baseline.
	BaseWindow int

	// NoiseLow and NoiseHigh bound the uniform multiplier drawn
	// independently for each forecast step.
	NoiseLow  float64
	NoiseHigh float64

	// Rand overrides the random source. If nil a freshly seeded source is
	// created at New.
	Rand Uniform
}

// NewDefaultOptions returns the reference configuration of a trailing year
// trend window, trailing half-year baseline, and a 5% noise band.
func NewDefaultOptions() *Options {
	return &Options{
		TrailingWindow: 12,
		BaseWindow:     6,
		NoiseLow:       0.95,
		NoiseHigh:      1.05,
	}
}
