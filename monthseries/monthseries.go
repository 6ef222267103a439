package monthseries

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoObservations = errors.New("no observations")
	ErrLenMismatch    = errors.New("periods have a different length than values")
	ErrNonMonotonic   = errors.New("periods are not strictly increasing")
	ErrNegativeValue  = errors.New("negative observation value")
	ErrNotMonthStart  = errors.New("period is not aligned to the start of a month")
)

// MonthSeries represents an ordered monthly time series storing a slice of
// period start times and observed values. Both must be of the same length.
// Periods are the first instant of a calendar month in UTC. Gaps between
// periods are not validated.
type MonthSeries struct {
	T []time.Time
	Y []float64
}

// New returns a MonthSeries given a period and value slice. Periods must be
// strictly increasing month starts and values must be non-negative counts.
func New(t []time.Time, y []float64) (*MonthSeries, error) {
	if len(y) == 0 {
		return nil, ErrNoObservations
	}
	if len(t) != len(y) {
		return nil, fmt.Errorf(
			"periods have length of %d, but values have a length of %d, %w",
			len(t), len(y), ErrLenMismatch,
		)
	}

	var lastT time.Time
	for i := 0; i < len(t); i++ {
		currT := t[i]
		if !currT.Equal(Month(currT.Year(), currT.Month())) {
			return nil, fmt.Errorf("period at %d is %s, %w", i, currT, ErrNotMonthStart)
		}
		if currT.Before(lastT) || currT.Equal(lastT) {
			return nil, fmt.Errorf("non-monotonic at %d, %w", i, ErrNonMonotonic)
		}
		if y[i] < 0 {
			return nil, fmt.Errorf("value at %d is %f, %w", i, y[i], ErrNegativeValue)
		}
		lastT = currT
	}

	tSeries := make([]time.Time, len(t))
	ySeries := make([]float64, len(t))
	copy(tSeries, t)
	copy(ySeries, y)
	return &MonthSeries{
		T: tSeries,
		Y: ySeries,
	}, nil
}

// Month constructs the canonical period time for a calendar year-month.
func Month(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

func (ms *MonthSeries) Len() int {
	return len(ms.T)
}

func (ms *MonthSeries) Copy() *MonthSeries {
	tSeries := make([]time.Time, len(ms.T))
	ySeries := make([]float64, len(ms.Y))
	copy(tSeries, ms.T)
	copy(ySeries, ms.Y)
	return &MonthSeries{
		T: tSeries,
		Y: ySeries,
	}
}

// Last returns the most recent observed period and its value.
func (ms *MonthSeries) Last() (time.Time, float64) {
	n := len(ms.T)
	if n == 0 {
		return time.Time{}, 0
	}
	return ms.T[n-1], ms.Y[n-1]
}

// Tail returns a copy of the trailing n observations. If n exceeds the series
// length the whole series is returned.
func (ms *MonthSeries) Tail(n int) *MonthSeries {
	if n >= len(ms.T) {
		return ms.Copy()
	}
	start := len(ms.T) - n
	tSeries := make([]time.Time, n)
	ySeries := make([]float64, n)
	copy(tSeries, ms.T[start:])
	copy(ySeries, ms.Y[start:])
	return &MonthSeries{
		T: tSeries,
		Y: ySeries,
	}
}

// NextPeriods returns the n consecutive calendar months immediately after the
// last observed period.
func (ms *MonthSeries) NextPeriods(n int) []time.Time {
	last, _ := ms.Last()
	return PeriodsFrom(nextMonth(last), n)
}

// PeriodsFrom returns n consecutive calendar months starting at anchor. The
// anchor is normalized to its month start.
func PeriodsFrom(anchor time.Time, n int) []time.Time {
	start := Month(anchor.Year(), anchor.Month())
	t := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		t = append(t, start.AddDate(0, i, 0))
	}
	return t
}

func nextMonth(t time.Time) time.Time {
	return Month(t.Year(), t.Month()).AddDate(0, 1, 0)
}
