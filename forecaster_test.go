package crimecast

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/citypulse/crimecast/monthseries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedUniform pins every draw to the same value so forecasts are
// deterministic under test.
type fixedUniform struct {
	v float64
}

func (f fixedUniform) Float64() float64 {
	return f.v
}

// pinnedOptions collapses the noise band to exactly 1.0 so predicted values
// equal base + trend*i.
func pinnedOptions() *Options {
	return &Options{
		TrailingWindow: 12,
		BaseWindow:     6,
		NoiseLow:       1.0,
		NoiseHigh:      1.0,
		Rand:           fixedUniform{},
	}
}

func newSeries(t *testing.T, start time.Time, y []float64) *monthseries.MonthSeries {
	t.Helper()
	ms, err := monthseries.New(monthseries.PeriodsFrom(start, len(y)), y)
	require.NoError(t, err)
	return ms
}

func constSeries(t *testing.T, n int, val float64) *monthseries.MonthSeries {
	t.Helper()
	y := make([]float64, n)
	for i := range y {
		y[i] = val
	}
	return newSeries(t, monthseries.Month(2022, time.January), y)
}

func TestForecastInsufficientHistory(t *testing.T) {
	series := constSeries(t, 11, 100)

	for _, horizon := range []int{1, 3, 6, 12, 100} {
		_, err := New(pinnedOptions()).Forecast(series, horizon)
		assert.ErrorIs(t, err, ErrInsufficientHistory)
	}
}

func TestForecastInvalidHorizon(t *testing.T) {
	series := constSeries(t, 12, 100)

	for _, horizon := range []int{0, -1, -12} {
		_, err := New(pinnedOptions()).Forecast(series, horizon)
		assert.ErrorIs(t, err, ErrInvalidHorizon)
	}
}

func TestForecastEmptySeries(t *testing.T) {
	_, err := New(nil).Forecast(nil, 3)
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestForecastHorizonLength(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	y := make([]float64, 24)
	for i := range y {
		y[i] = 100 + 50*rng.Float64()
	}
	series := newSeries(t, monthseries.Month(2022, time.January), y)

	f := New(nil)
	for _, horizon := range []int{1, 3, 6, 12, 48} {
		res, err := f.Forecast(series, horizon)
		require.NoError(t, err)
		assert.Len(t, res.T, horizon)
		assert.Len(t, res.Predicted, horizon)
		for _, v := range res.Predicted {
			assert.GreaterOrEqual(t, v, 0.0)
		}
	}
}

func TestForecastFlatWindow(t *testing.T) {
	series := constSeries(t, 12, 100)

	res, err := New(pinnedOptions()).Forecast(series, 6)
	require.NoError(t, err)

	// trend is zero and every point is exactly the trailing-6 mean
	for _, v := range res.Predicted {
		assert.Equal(t, 100.0, v)
	}
}

func TestForecastStepValues(t *testing.T) {
	y := []float64{100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 200}
	series := newSeries(t, monthseries.Month(2023, time.January), y)

	const horizon = 8
	res, err := New(pinnedOptions()).Forecast(series, horizon)
	require.NoError(t, err)

	trend := (200.0 - 100.0) / 12.0
	base := (100.0*5 + 200.0) / 6.0
	assert.InDelta(t, base+trend*1, res.Predicted[0], 1e-9)
	assert.InDelta(t, base+trend*horizon, res.Predicted[horizon-1], 1e-9)
}

func TestForecastTrailingYearSpike(t *testing.T) {
	// periods Jan-Dec with a single anomalous December endpoint
	y := []float64{100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 100, 200}
	series := newSeries(t, monthseries.Month(2023, time.January), y)

	res, err := New(pinnedOptions()).Forecast(series, 3)
	require.NoError(t, err)

	assert.InDelta(t, 125.00, res.Predicted[0], 0.01)
	assert.InDelta(t, 133.33, res.Predicted[1], 0.01)
	assert.InDelta(t, 141.67, res.Predicted[2], 0.01)
}

func TestForecastNegativeClamp(t *testing.T) {
	// strongly decreasing trailing year so base + trend*i goes negative
	y := []float64{600, 550, 500, 450, 400, 350, 300, 250, 200, 150, 100, 50}
	series := newSeries(t, monthseries.Month(2023, time.January), y)

	res, err := New(pinnedOptions()).Forecast(series, 6)
	require.NoError(t, err)

	// trend = -550/12, base = 175; raw turns negative from step 4
	assert.Greater(t, res.Predicted[0], 0.0)
	assert.Greater(t, res.Predicted[1], 0.0)
	assert.Greater(t, res.Predicted[2], 0.0)
	assert.Equal(t, 0.0, res.Predicted[3])
	assert.Equal(t, 0.0, res.Predicted[4])
	assert.Equal(t, 0.0, res.Predicted[5])
}

func TestForecastPeriodContinuity(t *testing.T) {
	y := make([]float64, 12)
	for i := range y {
		y[i] = 100
	}
	// last observed period is March 2024
	series := newSeries(t, monthseries.Month(2023, time.April), y)

	res, err := New(pinnedOptions()).Forecast(series, 4)
	require.NoError(t, err)

	expected := []time.Time{
		monthseries.Month(2024, time.April),
		monthseries.Month(2024, time.May),
		monthseries.Month(2024, time.June),
		monthseries.Month(2024, time.July),
	}
	assert.Equal(t, expected, res.T)
}

func TestForecastNoiseBounds(t *testing.T) {
	series := constSeries(t, 12, 1000)

	res, err := New(nil).Forecast(series, 12)
	require.NoError(t, err)

	for _, v := range res.Predicted {
		assert.GreaterOrEqual(t, v, 1000*0.95)
		assert.Less(t, v, 1000*1.05)
	}
}

func TestForecastReRolls(t *testing.T) {
	series := constSeries(t, 12, 1000)

	f := New(nil)
	first, err := f.Forecast(series, 6)
	require.NoError(t, err)
	second, err := f.Forecast(series, 6)
	require.NoError(t, err)

	assert.Equal(t, first.T, second.T)
	assert.NotEqual(t, first.Predicted, second.Predicted)
}

func TestForecastPinnedSource(t *testing.T) {
	series := constSeries(t, 12, 1000)

	opt := NewDefaultOptions()
	opt.Rand = fixedUniform{v: 0.5}
	res, err := New(opt).Forecast(series, 3)
	require.NoError(t, err)

	// a 0.5 draw lands in the middle of the 0.95-1.05 band
	for _, v := range res.Predicted {
		assert.InDelta(t, 1000.0, v, 1e-6)
	}
}

func TestReanchor(t *testing.T) {
	series := constSeries(t, 12, 100)

	res, err := New(pinnedOptions()).Forecast(series, 3)
	require.NoError(t, err)

	anchored := res.Reanchor(monthseries.Month(2025, time.July))
	assert.Equal(t, []time.Time{
		monthseries.Month(2025, time.July),
		monthseries.Month(2025, time.August),
		monthseries.Month(2025, time.September),
	}, anchored.T)
	assert.Equal(t, res.Predicted, anchored.Predicted)

	// the original results are untouched
	assert.Equal(t, monthseries.Month(2023, time.January), res.T[0])
}
