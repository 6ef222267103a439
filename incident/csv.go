package incident

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"
)

var (
	ErrBadHeader = errors.New("unexpected csv header")
	ErrBadField  = errors.New("malformed csv field")
)

const dateLayout = "2006-01-02"

// csvHeader is the column order of the incident dataset.
var csvHeader = []string{
	"Year", "Month", "Date", "City", "State",
	"Crime_Type", "Crime_Category", "Incidents_Reported",
	"Population_Lakhs", "Crime_Rate_Per_100K",
	"Cases_Charge_Sheeted", "Cases_Convicted",
}

// ReadCSV decodes an incident dataset, verifying the header row.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("unable to read csv header, %w", err)
	}
	for i, col := range csvHeader {
		if header[i] != col {
			return nil, fmt.Errorf("column %d is %q, want %q, %w", i, header[i], col, ErrBadHeader)
		}
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("unable to read csv row, %w", err)
		}
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// WriteCSV encodes records with the dataset header.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("unable to write csv header, %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Year),
			strconv.Itoa(int(r.Month)),
			r.Date.Format(dateLayout),
			r.City,
			r.State,
			r.CrimeType,
			r.CrimeCategory,
			strconv.Itoa(r.IncidentsReported),
			strconv.FormatFloat(r.PopulationLakhs, 'f', 1, 64),
			strconv.FormatFloat(r.CrimeRatePer100K, 'f', 2, 64),
			strconv.Itoa(r.CasesChargeSheeted),
			strconv.Itoa(r.CasesConvicted),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("unable to write csv row, %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func parseRow(row []string) (Record, error) {
	year, err := parseInt("Year", row[0])
	if err != nil {
		return Record{}, err
	}
	month, err := parseInt("Month", row[1])
	if err != nil {
		return Record{}, err
	}
	if month < 1 || month > 12 {
		return Record{}, fmt.Errorf("Month is %d, %w", month, ErrBadField)
	}
	date, err := time.Parse(dateLayout, row[2])
	if err != nil {
		return Record{}, fmt.Errorf("Date %q, %w", row[2], ErrBadField)
	}
	incidents, err := parseInt("Incidents_Reported", row[7])
	if err != nil {
		return Record{}, err
	}
	if incidents < 0 {
		return Record{}, fmt.Errorf("Incidents_Reported is %d, %w", incidents, ErrBadField)
	}
	population, err := parseFloat("Population_Lakhs", row[8])
	if err != nil {
		return Record{}, err
	}
	rate, err := parseFloat("Crime_Rate_Per_100K", row[9])
	if err != nil {
		return Record{}, err
	}
	chargeSheeted, err := parseInt("Cases_Charge_Sheeted", row[10])
	if err != nil {
		return Record{}, err
	}
	convicted, err := parseInt("Cases_Convicted", row[11])
	if err != nil {
		return Record{}, err
	}

	return Record{
		Year:               year,
		Month:              time.Month(month),
		Date:               date.UTC(),
		City:               row[3],
		State:              row[4],
		CrimeType:          row[5],
		CrimeCategory:      row[6],
		IncidentsReported:  incidents,
		PopulationLakhs:    population,
		CrimeRatePer100K:   rate,
		CasesChargeSheeted: chargeSheeted,
		CasesConvicted:     convicted,
	}, nil
}

func parseInt(col, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s %q, %w", col, s, ErrBadField)
	}
	return v, nil
}

func parseFloat(col, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q, %w", col, s, ErrBadField)
	}
	return v, nil
}
