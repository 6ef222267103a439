package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/citypulse/crimecast/incident"
	"github.com/citypulse/crimecast/store"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// loadRecords reads the incident dataset from the configured postgres store
// when a DSN is set, otherwise from the csv path.
func loadRecords(ctx context.Context) ([]incident.Record, error) {
	if dsn := viper.GetString("dsn"); dsn != "" {
		st, err := store.Open(dsn)
		if err != nil {
			return nil, err
		}
		defer st.Close()

		records, err := st.Records(ctx, incident.Filter{})
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded records from store", zap.Int("count", len(records)))
		return records, nil
	}

	path := viper.GetString("data")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open dataset: %w", err)
	}
	defer f.Close()

	records, err := incident.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("unable to read dataset %s: %w", path, err)
	}
	logger.Debug("loaded records from csv", zap.String("path", path), zap.Int("count", len(records)))
	return records, nil
}
