package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/roguetex/courtside/internal/csvio"
	"github.com/roguetex/courtside/internal/ingest/venues"
	"github.com/roguetex/courtside/internal/pipeline"
)

func newScrapeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Run the venue-calendar scrapers for the configured window",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := window()
			if err != nil {
				return err
			}

			browser := venues.NewBrowser()
			defer browser.Close()

			events, statuses := venues.RunAll(cmd.Context(), browser, venues.Window{Start: start, End: end})

			events = pipeline.DeduplicateScraped(events)

			written, err := csvio.WriteScraped(output, events)
			if err != nil {
				return err
			}
			if written {
				log.Printf("Saved %d events to %s", len(events), output)
			} else {
				log.Println("No events collected.")
			}

			log.Println("Scraper summary:")
			for _, s := range statuses {
				if s.Err != nil {
					log.Printf("  [FAIL] %-30s %v", s.Venue, s.Err)
					continue
				}
				log.Printf("  [OK]   %-30s %d events", s.Venue, s.Count)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", getEnv("SCRAPER_EVENTS_OUTPUT", "nba_playoff_scraped_2026.csv"), "output CSV path")

	return cmd
}
