package incident

import (
	"testing"
	"time"

	"github.com/citypulse/crimecast/monthseries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []Record {
	return []Record{
		{Year: 2024, Month: time.February, City: "Delhi", CrimeType: "Theft", CrimeCategory: "Property Crimes", IncidentsReported: 30},
		{Year: 2024, Month: time.January, City: "Delhi", CrimeType: "Theft", CrimeCategory: "Property Crimes", IncidentsReported: 10},
		{Year: 2024, Month: time.January, City: "Delhi", CrimeType: "Murder", CrimeCategory: "Violent Crimes", IncidentsReported: 5},
		{Year: 2024, Month: time.January, City: "Mumbai", CrimeType: "Theft", CrimeCategory: "Property Crimes", IncidentsReported: 100},
		{Year: 2023, Month: time.December, City: "Delhi", CrimeType: "Theft", CrimeCategory: "Property Crimes", IncidentsReported: 20},
	}
}

func TestMonthly(t *testing.T) {
	testData := map[string]struct {
		filter   Filter
		expected *monthseries.MonthSeries
		err      error
	}{
		"city only sums crime types": {
			filter: Filter{City: "Delhi"},
			expected: &monthseries.MonthSeries{
				T: []time.Time{
					monthseries.Month(2023, time.December),
					monthseries.Month(2024, time.January),
					monthseries.Month(2024, time.February),
				},
				Y: []float64{20, 15, 30},
			},
		},
		"city and crime type": {
			filter: Filter{City: "Delhi", CrimeType: "Theft"},
			expected: &monthseries.MonthSeries{
				T: []time.Time{
					monthseries.Month(2023, time.December),
					monthseries.Month(2024, time.January),
					monthseries.Month(2024, time.February),
				},
				Y: []float64{20, 10, 30},
			},
		},
		"no matching records": {
			filter: Filter{City: "Chennai"},
			err:    ErrNoMatchingRecords,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			series, err := Monthly(testRecords(), td.filter)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, td.expected, series)
		})
	}
}

func TestYearlyTotals(t *testing.T) {
	totals := YearlyTotals(testRecords(), Filter{City: "Delhi"})
	expected := []YearTotal{
		{Year: 2023, Total: 20},
		{Year: 2024, Total: 45},
	}
	assert.Equal(t, expected, totals)
}

func TestCategoryShares(t *testing.T) {
	shares := CategoryShares(testRecords(), Filter{City: "Delhi"})
	expected := []CategoryShare{
		{Category: "Property Crimes", Total: 60},
		{Category: "Violent Crimes", Total: 5},
	}
	assert.Equal(t, expected, shares)
}

func TestCitiesAndCrimeTypes(t *testing.T) {
	assert.Equal(t, []string{"Delhi", "Mumbai"}, Cities(testRecords()))
	assert.Equal(t, []string{"Murder", "Theft"}, CrimeTypes(testRecords()))
}

func TestCategory(t *testing.T) {
	testData := map[string]string{
		"Murder":           "Violent Crimes",
		"Robbery":          "Crimes Against Person",
		"Theft":            "Property Crimes",
		"Cybercrime":       "Economic Crimes",
		"Assault on Women": "Crimes Against Women",
		"Riots":            "Other Crimes",
	}
	for crimeType, expected := range testData {
		assert.Equal(t, expected, Category(crimeType), crimeType)
	}
}
