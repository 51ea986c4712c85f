// The pipeline command runs the collection, cleaning, scraping and
// validation stages as one-shot subcommands over file artifacts.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/roguetex/courtside/internal/cache"
	"github.com/roguetex/courtside/internal/ingest/ticketmaster"
	"github.com/roguetex/courtside/internal/registry"
)

var (
	flagStartDate string
	flagEndDate   string
	flagVenuesCSV string
)

func main() {
	root := &cobra.Command{
		Use:   "pipeline",
		Short: "Arena event collection, cleaning and cross-source validation",
		Long: `pipeline collects event listings around each NBA arena from the
Ticketmaster Discovery API and from direct venue-calendar scrapes,
cleans both into canonical datasets, and validates one source against
the other.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagStartDate, "start-date", getEnv("PLAYOFF_START", "2026-04-14"), "window start (YYYY-MM-DD)")
	root.PersistentFlags().StringVar(&flagEndDate, "end-date", getEnv("PLAYOFF_END", "2026-06-19"), "window end (YYYY-MM-DD)")
	root.PersistentFlags().StringVar(&flagVenuesCSV, "venues-csv", getEnv("VENUES_CSV", ""), "venue registry CSV (default: built-in 30-team table)")

	root.AddCommand(newCollectCmd())
	root.AddCommand(newCleanCmd())
	root.AddCommand(newScrapeCmd())
	root.AddCommand(newValidateCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// window parses the configured date window. End before start is a
// configuration error, not something to silently tolerate.
func window() (start, end time.Time, err error) {
	start, err = time.Parse("2006-01-02", flagStartDate)
	if err != nil {
		return start, end, fmt.Errorf("invalid --start-date %q: %w", flagStartDate, err)
	}
	end, err = time.Parse("2006-01-02", flagEndDate)
	if err != nil {
		return start, end, fmt.Errorf("invalid --end-date %q: %w", flagEndDate, err)
	}
	if end.Before(start) {
		return start, end, fmt.Errorf("--end-date %s precedes --start-date %s", flagEndDate, flagStartDate)
	}
	return start, end, nil
}

func loadRegistry() (*registry.Registry, error) {
	if flagVenuesCSV == "" {
		return registry.Default(), nil
	}
	return registry.Load(flagVenuesCSV)
}

// openCache picks the raw-event cache backend: Redis when a URL is
// given, per-team JSON files otherwise.
func openCache(redisURL, cacheDir string) (ticketmaster.Cache, func(), error) {
	if redisURL != "" {
		rc, err := cache.NewRedisCache(redisURL, 0)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to redis cache: %w", err)
		}
		return rc, func() { rc.Close() }, nil
	}

	fc, err := cache.NewFileCache(cacheDir)
	if err != nil {
		return nil, nil, err
	}
	return fc, func() {}, nil
}

func printTeamSummary(counts map[string]int, reg *registry.Registry) {
	log.Println("Events per team:")
	for _, v := range reg.Venues() {
		if n := counts[v.Team]; n > 0 {
			log.Printf("  %-35s %d", v.Team, n)
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
