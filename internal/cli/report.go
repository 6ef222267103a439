package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/citypulse/crimecast"
	"github.com/citypulse/crimecast/incident"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render an html report of history, forecast, and distributions",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().String("city", "", "city to report on (required)")
	reportCmd.Flags().String("crime-type", "", "restrict to one crime type (default all)")
	reportCmd.Flags().Int("months", 6, "forecast horizon in months (3-12)")
	reportCmd.Flags().String("anchor", "", "relabel forecast periods from this month (YYYY-MM), skipping any gap")
	reportCmd.Flags().String("out", "report.html", "output html path")
	reportCmd.MarkFlagRequired("city")
}

func runReport(cmd *cobra.Command, args []string) error {
	city, _ := cmd.Flags().GetString("city")
	crimeType, _ := cmd.Flags().GetString("crime-type")
	months, _ := cmd.Flags().GetInt("months")
	anchorStr, _ := cmd.Flags().GetString("anchor")
	out, _ := cmd.Flags().GetString("out")
	months = clampHorizon(months)

	var reportOpts *crimecast.ReportOpts
	if anchorStr != "" {
		anchor, err := time.Parse(monthFlagLayout, anchorStr)
		if err != nil {
			return fmt.Errorf("invalid --anchor month %q: %w", anchorStr, err)
		}
		reportOpts = &crimecast.ReportOpts{Anchor: anchor}
	}

	records, err := loadRecords(cmd.Context())
	if err != nil {
		return err
	}

	filter := incident.Filter{City: city, CrimeType: crimeType}
	series, err := incident.Monthly(records, filter)
	if err != nil {
		return err
	}

	res, err := crimecast.New(nil).Forecast(series, months)
	if errors.Is(err, crimecast.ErrInsufficientHistory) {
		fmt.Fprintf(cmd.OutOrStdout(),
			"Not enough history for %s: %d observed months, need 12. No report written.\n",
			city, series.Len(),
		)
		return nil
	}
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Crime Prediction for %s", city)
	if crimeType != "" {
		title = fmt.Sprintf("%s (%s)", title, crimeType)
	}

	totals := incident.YearlyTotals(records, filter)
	shares := incident.CategoryShares(records, incident.Filter{City: city})

	if err := crimecast.WriteReport(out, title, series, res, totals, shares, reportOpts); err != nil {
		return err
	}
	logger.Info("wrote report", zap.String("path", out), zap.String("city", city))
	return nil
}
