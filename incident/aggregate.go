package incident

import (
	"errors"
	"sort"
	"time"

	"github.com/citypulse/crimecast/monthseries"
)

var ErrNoMatchingRecords = errors.New("no records match the filter")

// YearTotal is the summed incident count for one calendar year.
type YearTotal struct {
	Year  int     `json:"year"`
	Total float64 `json:"total"`
}

// CategoryShare is the summed incident count for one crime category.
type CategoryShare struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// Monthly groups the filtered records by calendar month, summing the
// incident counts, and returns them as an ascending monthly series. Records
// falling in the same month are merged, so the resulting series satisfies
// the uniqueness and ordering the forecast engine assumes.
func Monthly(records []Record, f Filter) (*monthseries.MonthSeries, error) {
	totals := make(map[time.Time]float64)
	for _, r := range records {
		if !f.match(r) {
			continue
		}
		period := monthseries.Month(r.Year, r.Month)
		totals[period] += float64(r.IncidentsReported)
	}
	if len(totals) == 0 {
		return nil, ErrNoMatchingRecords
	}

	periods := make([]time.Time, 0, len(totals))
	for period := range totals {
		periods = append(periods, period)
	}
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Before(periods[j])
	})

	y := make([]float64, 0, len(periods))
	for _, period := range periods {
		y = append(y, totals[period])
	}
	return monthseries.New(periods, y)
}

// YearlyTotals sums the filtered records per calendar year, ascending.
func YearlyTotals(records []Record, f Filter) []YearTotal {
	totals := make(map[int]float64)
	for _, r := range records {
		if !f.match(r) {
			continue
		}
		totals[r.Year] += float64(r.IncidentsReported)
	}

	years := make([]int, 0, len(totals))
	for year := range totals {
		years = append(years, year)
	}
	sort.Ints(years)

	out := make([]YearTotal, 0, len(years))
	for _, year := range years {
		out = append(out, YearTotal{Year: year, Total: totals[year]})
	}
	return out
}

// CategoryShares sums the filtered records per crime category, descending by
// total as the distribution chart presents them.
func CategoryShares(records []Record, f Filter) []CategoryShare {
	totals := make(map[string]float64)
	for _, r := range records {
		if !f.match(r) {
			continue
		}
		totals[r.CrimeCategory] += float64(r.IncidentsReported)
	}

	out := make([]CategoryShare, 0, len(totals))
	for category, total := range totals {
		out = append(out, CategoryShare{Category: category, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total == out[j].Total {
			return out[i].Category < out[j].Category
		}
		return out[i].Total > out[j].Total
	})
	return out
}

// Cities returns the distinct city names in the record set, sorted.
func Cities(records []Record) []string {
	return distinct(records, func(r Record) string { return r.City })
}

// CrimeTypes returns the distinct crime types in the record set, sorted.
func CrimeTypes(records []Record) []string {
	return distinct(records, func(r Record) string { return r.CrimeType })
}

func distinct(records []Record, key func(Record) string) []string {
	seen := make(map[string]struct{})
	for _, r := range records {
		seen[key(r)] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
