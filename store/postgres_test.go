package store

import (
	"testing"

	"github.com/citypulse/crimecast/incident"
	"github.com/stretchr/testify/assert"
)

func TestRecordsQuery(t *testing.T) {
	testData := map[string]struct {
		filter       incident.Filter
		expectedSQL  []string
		expectedArgs []any
	}{
		"no filter": {
			filter:       incident.Filter{},
			expectedSQL:  []string{"FROM incidents", "ORDER BY year, month"},
			expectedArgs: nil,
		},
		"city only": {
			filter:       incident.Filter{City: "Delhi"},
			expectedSQL:  []string{"WHERE city = $1"},
			expectedArgs: []any{"Delhi"},
		},
		"crime type only": {
			filter:       incident.Filter{CrimeType: "Theft"},
			expectedSQL:  []string{"WHERE crime_type = $1"},
			expectedArgs: []any{"Theft"},
		},
		"city and crime type": {
			filter:       incident.Filter{City: "Delhi", CrimeType: "Theft"},
			expectedSQL:  []string{"WHERE city = $1", "AND crime_type = $2"},
			expectedArgs: []any{"Delhi", "Theft"},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			query, args := RecordsQuery(td.filter)
			for _, fragment := range td.expectedSQL {
				assert.Contains(t, query, fragment)
			}
			assert.Equal(t, td.expectedArgs, args)
		})
	}
}
