package crimecast

import (
	"errors"
	"time"

	"github.com/citypulse/crimecast/monthseries"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var ErrEmptyResults = errors.New("no forecast results")

// Trend direction labels for ForecastInsights.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
)

// Summary carries the display statistics for an observed series.
type Summary struct {
	Total          float64   `json:"total"`
	MonthlyAverage float64   `json:"monthly_average"`
	Latest         float64   `json:"latest"`
	LatestPeriod   time.Time `json:"latest_period"`
}

// Insights carries the display statistics derived from a forecast against
// its observed series.
type Insights struct {
	ForecastAverage float64 `json:"forecast_average"`
	Trend           string  `json:"trend"`
	// ChangePct is the percent change between the last observed value and
	// the final forecast value. Zero when the last observed value is zero.
	ChangePct float64 `json:"change_pct"`
}

// HistorySummary computes total, monthly average, and latest observation for
// an observed series.
func HistorySummary(series *monthseries.MonthSeries) (*Summary, error) {
	if series == nil || series.Len() == 0 {
		return nil, ErrEmptySeries
	}
	period, latest := series.Last()
	return &Summary{
		Total:          floats.Sum(series.Y),
		MonthlyAverage: stat.Mean(series.Y, nil),
		Latest:         latest,
		LatestPeriod:   period,
	}, nil
}

// ForecastInsights computes the forecast average, trend direction label, and
// percent change between the last observed value and the final forecast
// value. Both inputs are pure data; the engine is not consulted.
func ForecastInsights(series *monthseries.MonthSeries, res *Results) (*Insights, error) {
	if series == nil || series.Len() == 0 {
		return nil, ErrEmptySeries
	}
	if res == nil || len(res.Predicted) == 0 {
		return nil, ErrEmptyResults
	}

	first := res.Predicted[0]
	final := res.Predicted[len(res.Predicted)-1]
	trend := TrendDecreasing
	if final > first {
		trend = TrendIncreasing
	}

	_, latest := series.Last()
	var changePct float64
	if latest != 0 {
		changePct = (final - latest) / latest * 100.0
	}

	return &Insights{
		ForecastAverage: stat.Mean(res.Predicted, nil),
		Trend:           trend,
		ChangePct:       changePct,
	}, nil
}
