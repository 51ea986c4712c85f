package pipeline

import (
	"log"
	"strings"

	"github.com/roguetex/courtside/internal/model"
)

// Resolver decides whether a free-text venue string refers to a known
// arena. Matching is bidirectional substring containment on lowercased,
// trimmed strings: raw venue strings append suffixes ("Arena presented
// by X") or abbreviate, so containment in either direction tolerates
// both longer and shorter variants. The scan is O(venues) per event
// and can false-positive on very short canonical names; that is an
// accepted approximation the report semantics depend on.
type Resolver struct {
	canonical []string
}

// NewResolver builds a resolver over canonical venue names. Names are
// lowercased and trimmed once at construction.
func NewResolver(canonicalNames []string) *Resolver {
	names := make([]string, len(canonicalNames))
	for i, n := range canonicalNames {
		names[i] = strings.ToLower(strings.TrimSpace(n))
	}
	return &Resolver{canonical: names}
}

// IsKnownVenue reports whether the venue string resolves against any
// canonical name.
func (r *Resolver) IsKnownVenue(venue string) bool {
	normalized := strings.ToLower(strings.TrimSpace(venue))
	for _, arena := range r.canonical {
		if strings.Contains(normalized, arena) || strings.Contains(arena, normalized) {
			return true
		}
	}
	return false
}

// Filter keeps only events whose venue resolves, returning the kept
// slice and the number removed. Unresolved venues are a filtering
// decision, not an error.
func (r *Resolver) Filter(events []model.Event) ([]model.Event, int) {
	kept := events[:0:0]
	for _, e := range events {
		if r.IsKnownVenue(e.Venue) {
			kept = append(kept, e)
		}
	}
	removed := len(events) - len(kept)
	log.Printf("[resolve] same-venue filter: %d -> %d events", len(events), len(kept))
	return kept, removed
}
