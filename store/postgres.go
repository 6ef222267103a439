// Package store provides a Postgres-backed incident record source for
// deployments where the dataset lives in a warehouse instead of a csv file.
package store

import (
	"context"
	"fmt"

	"github.com/citypulse/crimecast/incident"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type Store struct {
	db *sqlx.DB
}

// Open connects to Postgres with the given DSN and verifies the connection.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to postgres: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

const schema = `
	CREATE TABLE IF NOT EXISTS incidents (
		year                 INTEGER          NOT NULL,
		month                INTEGER          NOT NULL,
		date                 DATE             NOT NULL,
		city                 TEXT             NOT NULL,
		state                TEXT             NOT NULL,
		crime_type           TEXT             NOT NULL,
		crime_category       TEXT             NOT NULL,
		incidents_reported   INTEGER          NOT NULL,
		population_lakhs     DOUBLE PRECISION NOT NULL,
		crime_rate_per_100k  DOUBLE PRECISION NOT NULL,
		cases_charge_sheeted INTEGER          NOT NULL,
		cases_convicted      INTEGER          NOT NULL
	);
	CREATE INDEX IF NOT EXISTS incidents_city_type_idx
		ON incidents (city, crime_type, year, month)`

// EnsureSchema creates the incidents table and its lookup index.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("unable to create incidents schema: %w", err)
	}
	return nil
}

// RecordsQuery builds the select statement and arguments for a filter. Split
// out so the dynamic WHERE clause can be tested without a database.
func RecordsQuery(f incident.Filter) (string, []any) {
	query := `
		SELECT
			year, month, date, city, state,
			crime_type, crime_category, incidents_reported,
			population_lakhs, crime_rate_per_100k,
			cases_charge_sheeted, cases_convicted
		FROM incidents`

	var args []any
	if f.City != "" {
		args = append(args, f.City)
		query += fmt.Sprintf(" WHERE city = $%d", len(args))
	}
	if f.CrimeType != "" {
		args = append(args, f.CrimeType)
		clause := " WHERE"
		if len(args) > 1 {
			clause = " AND"
		}
		query += fmt.Sprintf("%s crime_type = $%d", clause, len(args))
	}
	query += " ORDER BY year, month, city, crime_type"
	return query, args
}

// Records returns the stored records matching the filter, ordered by period.
func (s *Store) Records(ctx context.Context, f incident.Filter) ([]incident.Record, error) {
	query, args := RecordsQuery(f)
	var records []incident.Record
	if err := s.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("unable to query incident records: %w", err)
	}
	return records, nil
}

const insertRecords = `
	INSERT INTO incidents (
		year, month, date, city, state,
		crime_type, crime_category, incidents_reported,
		population_lakhs, crime_rate_per_100k,
		cases_charge_sheeted, cases_convicted
	) VALUES (
		:year, :month, :date, :city, :state,
		:crime_type, :crime_category, :incidents_reported,
		:population_lakhs, :crime_rate_per_100k,
		:cases_charge_sheeted, :cases_convicted
	)`

// SaveRecords inserts the records in one transaction.
func (s *Store) SaveRecords(ctx context.Context, records []incident.Record) error {
	if len(records) == 0 {
		return nil
	}
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("unable to begin transaction: %w", err)
	}
	if _, err := tx.NamedExecContext(ctx, insertRecords, records); err != nil {
		tx.Rollback()
		return fmt.Errorf("unable to insert incident records: %w", err)
	}
	return tx.Commit()
}
