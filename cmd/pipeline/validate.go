package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/roguetex/courtside/internal/csvio"
	"github.com/roguetex/courtside/internal/validate"
)

func newValidateCmd() *cobra.Command {
	var (
		apiCSV     string
		scrapedCSV string
		reportPath string
		detailPath string
		venueNames []string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Cross-check the API dataset against the scraped dataset",
		Long: `validate matches every scraped event against the API dataset within
a one-day date-shift tolerance and reports per-venue coverage,
scraper-only events, and API-only dates. The report is advisory; a low
coverage number never fails the run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			apiEvents, err := csvio.ReadEvents(apiCSV)
			if err != nil {
				return err
			}
			scraped, err := csvio.ReadScraped(scrapedCSV)
			if err != nil {
				return err
			}

			if len(venueNames) == 0 {
				venueNames = validate.DefaultScrapedVenues
			}

			report := validate.Compare(apiEvents, scraped, venueNames)

			text := validate.RenderText(report)
			fmt.Print(text)

			if err := os.WriteFile(reportPath, []byte(text), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", reportPath, err)
			}
			log.Printf("Saved %s", reportPath)

			written, err := validate.WriteDetailCSV(detailPath, report.Records)
			if err != nil {
				return err
			}
			if written {
				log.Printf("Saved %s", detailPath)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&apiCSV, "api-csv", getEnv("API_EVENTS_OUTPUT", "nba_playoff_events_2026.csv"), "canonical API dataset CSV")
	cmd.Flags().StringVar(&scrapedCSV, "scraped-csv", getEnv("SCRAPER_EVENTS_OUTPUT", "nba_playoff_scraped_2026.csv"), "scraped dataset CSV")
	cmd.Flags().StringVar(&reportPath, "report", "validation_report.txt", "text report output path")
	cmd.Flags().StringVar(&detailPath, "detail", "validation_detail.csv", "per-event detail CSV output path")
	cmd.Flags().StringArrayVar(&venueNames, "venue", nil, "scraped venue to validate (repeatable; default: the scraped venue set)")

	return cmd
}
