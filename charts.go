package crimecast

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/citypulse/crimecast/incident"
	"github.com/citypulse/crimecast/monthseries"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const periodLabel = "Jan 2006"

// LineHistoryForecast generates an echart line chart plotting the observed
// monthly series and the forecast on one time axis. The two series do not
// overlap, so each is padded with missing values over the other's span.
func LineHistoryForecast(title string, series *monthseries.MonthSeries, res *Results) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	axis := make([]string, 0, series.Len()+len(res.T))
	for _, t := range series.T {
		axis = append(axis, t.Format(periodLabel))
	}
	for _, t := range res.T {
		axis = append(axis, t.Format(periodLabel))
	}

	historical := make([]opts.LineData, 0, len(axis))
	forecast := make([]opts.LineData, 0, len(axis))
	for _, y := range series.Y {
		historical = append(historical, opts.LineData{Value: y})
		forecast = append(forecast, opts.LineData{Value: "-"})
	}
	for _, y := range res.Predicted {
		historical = append(historical, opts.LineData{Value: "-"})
		forecast = append(forecast, opts.LineData{Value: y})
	}

	line.SetXAxis(axis).
		AddSeries("Historical", historical).
		AddSeries("Forecast", forecast)
	return line
}

// BarYearlyTotals generates an echart bar chart of total incidents per year.
func BarYearlyTotals(title string, totals []incident.YearTotal) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	years := make([]string, 0, len(totals))
	barData := make([]opts.BarData, 0, len(totals))
	for _, yt := range totals {
		years = append(years, fmt.Sprintf("%d", yt.Year))
		barData = append(barData, opts.BarData{Value: yt.Total})
	}

	bar.SetXAxis(years).
		AddSeries("Total Incidents", barData)
	return bar
}

// PieCategoryShare generates an echart pie chart of the incident share per
// crime category.
func PieCategoryShare(title string, shares []incident.CategoryShare) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	pieData := make([]opts.PieData, 0, len(shares))
	for _, cs := range shares {
		pieData = append(pieData, opts.PieData{Name: cs.Category, Value: cs.Total})
	}

	pie.AddSeries("Categories", pieData)
	return pie
}

// ReportOpts configures the rendered report page.
type ReportOpts struct {
	// Anchor, when non-zero, relabels forecast periods starting at the given
	// month instead of the month after the last observed period.
	Anchor time.Time
}

// RenderReport writes an html page of the history/forecast line chart, the
// yearly totals bar chart, and the category distribution pie chart for the
// filtered record set.
func RenderReport(w io.Writer, title string, series *monthseries.MonthSeries, res *Results, totals []incident.YearTotal, shares []incident.CategoryShare, opt *ReportOpts) error {
	if opt != nil && !opt.Anchor.IsZero() {
		res = res.Reanchor(opt.Anchor)
	}

	page := components.NewPage()
	page.AddCharts(
		LineHistoryForecast(title, series, res),
		BarYearlyTotals("Yearly Crime Trend", totals),
		PieCategoryShare("Crime Category Distribution", shares),
	)
	return page.Render(io.MultiWriter(w))
}

// WriteReport renders the report page to a file at path.
func WriteReport(path, title string, series *monthseries.MonthSeries, res *Results, totals []incident.YearTotal, shares []incident.CategoryShare, opt *ReportOpts) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return RenderReport(file, title, series, res, totals, shares, opt)
}
