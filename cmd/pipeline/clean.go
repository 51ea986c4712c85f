package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/roguetex/courtside/internal/csvio"
	"github.com/roguetex/courtside/internal/ingest/ticketmaster"
	"github.com/roguetex/courtside/internal/pipeline"
)

func newCleanCmd() *cobra.Command {
	var (
		output   string
		cacheDir string
		redisURL string
	)

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Re-run the cleaning pipeline from cached raw events (no API calls)",
		Long: `clean rebuilds the canonical dataset from the per-team raw cache.
Use it after changing filters to regenerate the output without
re-fetching. Teams with no cache entry contribute zero events.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := window()
			if err != nil {
				return err
			}
			reg, err := loadRegistry()
			if err != nil {
				return err
			}
			rawCache, closeCache, err := openCache(redisURL, cacheDir)
			if err != nil {
				return err
			}
			defer closeCache()

			batches, missing, err := ticketmaster.FromCache(cmd.Context(), rawCache, reg)
			if err != nil {
				return err
			}
			if len(missing) > 0 {
				log.Printf("%d teams missing from cache", len(missing))
			}

			events, stats := pipeline.Clean(batches, start, end, pipeline.ExcludeKeywords, reg.CanonicalNames())
			log.Printf("Raw %d -> filtered %d -> dedup %d -> venue-resolved %d",
				stats.Raw, stats.AfterFilters, stats.AfterDedup, stats.AfterVenue)

			written, err := csvio.WriteEvents(output, events)
			if err != nil {
				return err
			}
			if !written {
				log.Println("No cached events found. Nothing to save.")
				return nil
			}
			log.Printf("Saved %d events to %s", len(events), output)
			printTeamSummary(pipeline.CountByTeam(events), reg)

			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", getEnv("API_EVENTS_OUTPUT", "nba_playoff_events_2026.csv"), "output CSV path")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "cache", "directory containing cached raw events")
	cmd.Flags().StringVar(&redisURL, "redis-url", os.Getenv("REDIS_URL"), "use Redis instead of file cache")

	return cmd
}
