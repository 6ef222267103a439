package cli

import (
	"errors"
	"fmt"

	"github.com/citypulse/crimecast"
	"github.com/citypulse/crimecast/incident"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// The interactive reference UI offers 3 to 12 months; the engine itself only
// requires horizon >= 1.
const (
	minHorizon = 3
	maxHorizon = 12
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Forecast incident volume for a city",
	RunE:  runForecast,
}

func init() {
	forecastCmd.Flags().String("city", "", "city to forecast (required)")
	forecastCmd.Flags().String("crime-type", "", "restrict to one crime type (default all)")
	forecastCmd.Flags().Int("months", 6, "forecast horizon in months (3-12)")
	forecastCmd.Flags().Bool("json", false, "emit json instead of a table")
	forecastCmd.MarkFlagRequired("city")
}

type forecastOutput struct {
	City      string              `json:"city"`
	CrimeType string              `json:"crime_type,omitempty"`
	Summary   *crimecast.Summary  `json:"summary"`
	Forecast  *crimecast.Results  `json:"forecast"`
	Insights  *crimecast.Insights `json:"insights"`
}

func runForecast(cmd *cobra.Command, args []string) error {
	city, _ := cmd.Flags().GetString("city")
	crimeType, _ := cmd.Flags().GetString("crime-type")
	months, _ := cmd.Flags().GetInt("months")
	asJSON, _ := cmd.Flags().GetBool("json")
	months = clampHorizon(months)

	records, err := loadRecords(cmd.Context())
	if err != nil {
		return err
	}

	filter := incident.Filter{City: city, CrimeType: crimeType}
	series, err := incident.Monthly(records, filter)
	if err != nil {
		return err
	}

	summary, err := crimecast.HistorySummary(series)
	if err != nil {
		return err
	}

	res, err := crimecast.New(nil).Forecast(series, months)
	if errors.Is(err, crimecast.ErrInsufficientHistory) {
		logger.Info("not enough history to forecast",
			zap.String("city", city),
			zap.Int("observed_months", series.Len()),
		)
		fmt.Fprintf(cmd.OutOrStdout(),
			"Not enough history for %s: %d observed months, need 12. No forecast shown.\n",
			city, series.Len(),
		)
		return nil
	}
	if err != nil {
		return err
	}

	insights, err := crimecast.ForecastInsights(series, res)
	if err != nil {
		return err
	}

	if asJSON {
		out := forecastOutput{
			City:      city,
			CrimeType: crimeType,
			Summary:   summary,
			Forecast:  res,
			Insights:  insights,
		}
		bytes, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(bytes))
		return nil
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Forecast for %s", city)
	if crimeType != "" {
		fmt.Fprintf(w, " (%s)", crimeType)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Total incidents:   %d\n", int(summary.Total))
	fmt.Fprintf(w, "  Monthly average:   %d\n", int(summary.MonthlyAverage))
	fmt.Fprintf(w, "  Latest month:      %d (%s)\n", int(summary.Latest), summary.LatestPeriod.Format("January 2006"))
	fmt.Fprintln(w)
	for i, t := range res.T {
		fmt.Fprintf(w, "  %-16s %d\n", t.Format("January 2006"), int(res.Predicted[i]))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Predicted average: %d incidents/month\n", int(insights.ForecastAverage))
	fmt.Fprintf(w, "  Trend:             %s\n", insights.Trend)
	fmt.Fprintf(w, "  Change vs latest:  %+.1f%%\n", insights.ChangePct)
	return nil
}

func clampHorizon(months int) int {
	if months < minHorizon {
		return minHorizon
	}
	if months > maxHorizon {
		return maxHorizon
	}
	return months
}
