package incident

import "time"

// Record is one row of the incident dataset: the reported incident count for
// a (city, crime type, month) cell plus bookkeeping fields carried through
// from the upstream source. The forecast engine never sees this type; it is
// aggregated into a monthly series first.
type Record struct {
	Year               int        `db:"year"`
	Month              time.Month `db:"month"`
	Date               time.Time  `db:"date"`
	City               string     `db:"city"`
	State              string     `db:"state"`
	CrimeType          string     `db:"crime_type"`
	CrimeCategory      string     `db:"crime_category"`
	IncidentsReported  int        `db:"incidents_reported"`
	PopulationLakhs    float64    `db:"population_lakhs"`
	CrimeRatePer100K   float64    `db:"crime_rate_per_100k"`
	CasesChargeSheeted int        `db:"cases_charge_sheeted"`
	CasesConvicted     int        `db:"cases_convicted"`
}

// Filter narrows a record set to one city and optionally one crime type. An
// empty CrimeType matches all crime types.
type Filter struct {
	City      string
	CrimeType string
}

func (f Filter) match(r Record) bool {
	if f.City != "" && r.City != f.City {
		return false
	}
	if f.CrimeType != "" && r.CrimeType != f.CrimeType {
		return false
	}
	return true
}

// Category maps a crime type to its reporting category.
func Category(crimeType string) string {
	switch crimeType {
	case "Murder", "Attempt to Murder", "Rape", "Dowry Deaths":
		return "Violent Crimes"
	case "Kidnapping & Abduction", "Robbery", "Dacoity":
		return "Crimes Against Person"
	case "Burglary", "Theft", "Motor Vehicle Theft":
		return "Property Crimes"
	case "Cybercrime", "Economic Offences", "Forgery", "Cheating", "Criminal Breach of Trust":
		return "Economic Crimes"
	case "Assault on Women":
		return "Crimes Against Women"
	default:
		return "Other Crimes"
	}
}
