// Package pipeline implements the cleaning stages that turn raw
// per-venue event records into the canonical dataset: normalization
// (date window + keyword exclusion), deduplication, and venue identity
// resolution. Every stage is a pure function over in-memory slices;
// per-record anomalies are absorbed as filtering decisions and only
// surfaced in aggregate counts.
package pipeline

import (
	"log"
	"strings"
	"time"

	"github.com/roguetex/courtside/internal/model"
)

// dateLayouts are the formats accepted for raw event dates. Anything
// else is dropped silently - best-effort ingestion, not a hard failure.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// Normalizer maps heterogeneous raw records onto the canonical schema
// and applies the date-window and keyword filters. Construct once per
// run; the keyword set and window are immutable afterwards.
type Normalizer struct {
	start   time.Time
	end     time.Time
	exclude []string
}

// NewNormalizer creates a normalizer for the inclusive window
// [start, end]. Keywords are lowercased once at construction.
func NewNormalizer(start, end time.Time, exclude []string) *Normalizer {
	lowered := make([]string, len(exclude))
	for i, kw := range exclude {
		lowered[i] = strings.ToLower(kw)
	}
	return &Normalizer{start: dateOnly(start), end: dateOnly(end), exclude: lowered}
}

// Normalize runs all per-team batches through date parsing, the window
// filter and the keyword filter, tagging each surviving record with its
// owning team. Stage counts are logged for operators.
func (n *Normalizer) Normalize(batches []model.TeamBatch) []model.Event {
	var raw int
	for _, b := range batches {
		raw += len(b.Events)
	}
	log.Printf("[normalize] raw events: %d", raw)

	var events []model.Event
	for _, batch := range batches {
		for _, re := range batch.Events {
			date, ok := parseDate(re.Date)
			if !ok {
				continue
			}
			events = append(events, model.Event{
				Name:   re.Name,
				Date:   date,
				Time:   re.Time,
				Venue:  re.Venue,
				Team:   batch.Team,
				Source: model.SourceAPI,
			})
		}
	}

	events = n.filterWindow(events)
	log.Printf("[normalize] after date filter: %d", len(events))

	events = n.filterKeywords(events)
	log.Printf("[normalize] after keyword filter: %d", len(events))

	return events
}

// InWindow reports whether a date falls inside the configured window,
// inclusive on both ends.
func (n *Normalizer) InWindow(date time.Time) bool {
	d := dateOnly(date)
	return !d.Before(n.start) && !d.After(n.end)
}

// Excluded reports whether an event name contains any exclusion
// keyword as a case-insensitive substring.
func (n *Normalizer) Excluded(name string) bool {
	lowered := strings.ToLower(name)
	for _, kw := range n.exclude {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

func (n *Normalizer) filterWindow(events []model.Event) []model.Event {
	kept := events[:0:0]
	for _, e := range events {
		if n.InWindow(e.Date) {
			kept = append(kept, e)
		}
	}
	return kept
}

func (n *Normalizer) filterKeywords(events []model.Event) []model.Event {
	kept := events[:0:0]
	for _, e := range events {
		if e.Name == "" || n.Excluded(e.Name) {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOnly(t), true
		}
	}
	return time.Time{}, false
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
