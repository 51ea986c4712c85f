package pipeline

import (
	"time"

	"github.com/roguetex/courtside/internal/model"
)

// Stats summarizes how many records each cleaning stage kept. Counts
// are observability for operators; correctness lives in the output.
type Stats struct {
	Raw             int
	AfterFilters    int
	AfterDedup      int
	AfterVenue      int
	UnresolvedVenue int
}

// Clean runs the full cleaning pipeline over per-team raw batches:
// normalize (date window + keyword exclusion), deduplicate, resolve
// venues. The stage order matches the reference cleaning flow.
func Clean(batches []model.TeamBatch, start, end time.Time, exclude, canonicalNames []string) ([]model.Event, Stats) {
	var stats Stats
	for _, b := range batches {
		stats.Raw += len(b.Events)
	}

	n := NewNormalizer(start, end, exclude)
	events := n.Normalize(batches)
	stats.AfterFilters = len(events)

	events = Deduplicate(events)
	stats.AfterDedup = len(events)

	events, removed := NewResolver(canonicalNames).Filter(events)
	stats.AfterVenue = len(events)
	stats.UnresolvedVenue = removed

	return events, stats
}

// CountByTeam tallies output events per team for the run summary.
func CountByTeam(events []model.Event) map[string]int {
	counts := make(map[string]int)
	for _, e := range events {
		counts[e.Team]++
	}
	return counts
}
