package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/roguetex/courtside/internal/csvio"
	"github.com/roguetex/courtside/internal/ingest/ticketmaster"
	"github.com/roguetex/courtside/internal/pipeline"
	"github.com/roguetex/courtside/internal/store"
)

func newCollectCmd() *cobra.Command {
	var (
		output       string
		cacheDir     string
		redisURL     string
		refreshAll   bool
		refreshTeams []string
		radiusMiles  int
		dsn          string
	)

	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Fetch Ticketmaster events for every arena, then clean and save",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey := os.Getenv("TICKETMASTER_API_KEY")
			if apiKey == "" {
				return fmt.Errorf("TICKETMASTER_API_KEY not set")
			}

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

			refresh := make(map[string]bool, len(refreshTeams))
			for _, t := range refreshTeams {
				refresh[t] = true
			}

			collector := ticketmaster.NewCollector(ticketmaster.NewClient(apiKey, ""), rawCache, reg)
			batches, err := collector.Collect(cmd.Context(), ticketmaster.CollectorOptions{
				Window:       ticketmaster.DateRange{Start: start, End: end},
				RadiusMiles:  radiusMiles,
				RefreshAll:   refreshAll,
				RefreshTeams: refresh,
			})
			if err != nil {
				return err
			}

			events, stats := pipeline.Clean(batches, start, end, pipeline.ExcludeKeywords, reg.CanonicalNames())
			log.Printf("Raw %d -> filtered %d -> dedup %d -> venue-resolved %d",
				stats.Raw, stats.AfterFilters, stats.AfterDedup, stats.AfterVenue)

			written, err := csvio.WriteEvents(output, events)
			if err != nil {
				return err
			}
			if !written {
				log.Println("No events collected. Nothing to save.")
				return nil
			}
			log.Printf("Saved %d events to %s", len(events), output)
			printTeamSummary(pipeline.CountByTeam(events), reg)

			if dsn != "" {
				db, err := store.NewDatabase(dsn)
				if err != nil {
					return err
				}
				defer db.Close()
				if err := db.RunMigrations(); err != nil {
					return err
				}
				if err := db.ReplaceEvents(cmd.Context(), events); err != nil {
					return err
				}
				log.Printf("Persisted %d events to Postgres", len(events))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", getEnv("API_EVENTS_OUTPUT", "nba_playoff_events_2026.csv"), "output CSV path")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "cache", "directory for per-team cached API responses")
	cmd.Flags().StringVar(&redisURL, "redis-url", os.Getenv("REDIS_URL"), "use Redis instead of file cache")
	cmd.Flags().BoolVar(&refreshAll, "refresh-all", false, "ignore cache and re-fetch all teams")
	cmd.Flags().StringArrayVar(&refreshTeams, "refresh-team", nil, "team name to refresh (repeatable)")
	cmd.Flags().IntVar(&radiusMiles, "radius-miles", 5, "search radius around arena lat/long")
	cmd.Flags().StringVar(&dsn, "dsn", os.Getenv("COURTSIDE_DSN"), "also persist the canonical dataset to Postgres")

	return cmd
}
