package ticketmaster

import (
	"context"
	"log"

	"github.com/roguetex/courtside/internal/model"
	"github.com/roguetex/courtside/internal/registry"
)

// Cache stores raw per-team event batches between runs so re-runs can
// skip already-fetched teams. Implemented by the JSON file cache and
// the Redis cache.
type Cache interface {
	// Get returns the cached batch for a team; ok is false when the
	// team has no cache entry (a missing source, not an error).
	Get(ctx context.Context, team string) (events []model.RawEvent, ok bool, err error)
	Put(ctx context.Context, team string, events []model.RawEvent) error
}

// CollectorOptions controls a collection run.
type CollectorOptions struct {
	Window      DateRange
	RadiusMiles int
	RefreshAll  bool
	// RefreshTeams re-fetches specific teams even when cached.
	RefreshTeams map[string]bool
}

// Collector fans the Discovery client out across every registry venue,
// going through the cache first.
type Collector struct {
	client *Client
	cache  Cache
	reg    *registry.Registry
}

// NewCollector wires a collector from its parts.
func NewCollector(client *Client, cache Cache, reg *registry.Registry) *Collector {
	return &Collector{client: client, cache: cache, reg: reg}
}

// Collect gathers raw events for every team in the registry, one batch
// per team. Cached batches are reused unless refresh options say
// otherwise; fresh fetches are written back to the cache. A fetch
// failure for one team logs and contributes an empty batch - one dead
// venue never fails the run.
func (c *Collector) Collect(ctx context.Context, opts CollectorOptions) ([]model.TeamBatch, error) {
	if opts.RadiusMiles <= 0 {
		opts.RadiusMiles = 5
	}
	ranges := MonthlyRanges(opts.Window.Start, opts.Window.End)

	log.Printf("[collect] %d venues x %d date ranges (%s to %s)",
		c.reg.Len(), len(ranges),
		opts.Window.Start.Format("2006-01-02"), opts.Window.End.Format("2006-01-02"))

	batches := make([]model.TeamBatch, 0, c.reg.Len())
	for _, venue := range c.reg.Venues() {
		events, err := c.collectTeam(ctx, venue, ranges, opts)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Printf("[collect] %s: %v (continuing with zero events)", venue.Team, err)
			events = nil
		}
		batches = append(batches, model.TeamBatch{Team: venue.Team, Events: events})
	}

	return batches, nil
}

func (c *Collector) collectTeam(ctx context.Context, venue registry.Venue, ranges []DateRange, opts CollectorOptions) ([]model.RawEvent, error) {
	if !opts.RefreshAll && !opts.RefreshTeams[venue.Team] {
		cached, ok, err := c.cache.Get(ctx, venue.Team)
		if err != nil {
			return nil, err
		}
		if ok {
			log.Printf("[collect] [cache] %s: %d events", venue.Team, len(cached))
			return cached, nil
		}
	}

	var events []model.RawEvent
	for _, r := range ranges {
		log.Printf("[collect] [api]   %s  %s -> %s", venue.Team,
			r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))
		chunk, err := c.client.SearchEvents(ctx, venue.Lat, venue.Long, opts.RadiusMiles, r)
		if err != nil {
			return nil, err
		}
		events = append(events, chunk...)
	}

	if err := c.cache.Put(ctx, venue.Team, events); err != nil {
		// Cache write failure costs a re-fetch next run, nothing more.
		log.Printf("[collect] cache write for %s failed: %v", venue.Team, err)
	}
	log.Printf("[collect] [saved] %s: %d raw events", venue.Team, len(events))

	return events, nil
}

// FromCache builds per-team batches from the cache alone, without any
// API calls. Teams with no cache entry contribute empty batches and
// are reported in missing.
func FromCache(ctx context.Context, cache Cache, reg *registry.Registry) (batches []model.TeamBatch, missing []string, err error) {
	for _, venue := range reg.Venues() {
		events, ok, err := cache.Get(ctx, venue.Team)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			log.Printf("[clean] MISSING cache for %s", venue.Team)
			missing = append(missing, venue.Team)
			batches = append(batches, model.TeamBatch{Team: venue.Team})
			continue
		}
		batches = append(batches, model.TeamBatch{Team: venue.Team, Events: events})
	}
	return batches, missing, nil
}
