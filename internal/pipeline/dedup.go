package pipeline

import (
	"sort"

	"github.com/roguetex/courtside/internal/model"
)

// Deduplicate collapses records identical under the composite key
// (team, date, time, venue), keeping the first-seen representative.
// All four fields compare by exact value - case-sensitive, time as the
// raw string. Records differing only in venue casing survive as
// separate rows; that is the documented contract, since near-duplicates
// from different normalization paths are expected upstream. Output is
// sorted by (date, venue) ascending and is a fixed point: running the
// function on its own output returns the same set.
func Deduplicate(events []model.Event) []model.Event {
	seen := make(map[[4]string]struct{}, len(events))
	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		key := [4]string{e.Team, e.DateString(), e.Time, e.Venue}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Venue < out[j].Venue
	})

	return out
}

// DeduplicateScraped is the scraped-dataset variant: key
// (Venue, Title, Date), sorted by (Date, Venue).
func DeduplicateScraped(events []model.ScrapedEvent) []model.ScrapedEvent {
	seen := make(map[[3]string]struct{}, len(events))
	out := make([]model.ScrapedEvent, 0, len(events))
	for _, e := range events {
		key := [3]string{e.Venue, e.Title, e.DateString()}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Venue < out[j].Venue
	})

	return out
}
