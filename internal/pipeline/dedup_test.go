package pipeline

import (
	"reflect"
	"testing"
	"time"

	"github.com/roguetex/courtside/internal/model"
)

func mkEvent(team, date, etime, venue, name string) model.Event {
	d, _ := time.Parse("2006-01-02", date)
	return model.Event{Name: name, Date: d, Time: etime, Venue: venue, Team: team, Source: model.SourceAPI}
}

func TestDeduplicateCollapsesExactKeys(t *testing.T) {
	events := []model.Event{
		mkEvent("Boston Celtics", "2026-04-20", "19:30:00", "TD Garden", "Celtics vs Knicks"),
		mkEvent("Boston Celtics", "2026-04-20", "19:30:00", "TD Garden", "Celtics vs Knicks"),
		mkEvent("Boston Celtics", "2026-04-22", "19:30:00", "TD Garden", "Celtics vs Knicks"),
	}

	got := Deduplicate(events)
	if len(got) != 2 {
		t.Fatalf("expected 2 events after dedup, got %d", len(got))
	}
}

func TestDeduplicateIsCaseSensitiveOnVenue(t *testing.T) {
	// The composite key compares raw field values exactly. Records
	// differing only by venue casing/whitespace both survive; that is
	// the documented contract, not a bug.
	events := []model.Event{
		mkEvent("Boston Celtics", "2026-04-20", "19:30:00", "TD Garden", "Celtics vs Knicks"),
		mkEvent("Boston Celtics", "2026-04-20", "19:30:00", " td garden ", "Celtics vs Knicks"),
	}

	got := Deduplicate(events)
	if len(got) != 2 {
		t.Fatalf("expected case-variant venues to both survive, got %d events", len(got))
	}
}

func TestDeduplicateIdempotent(t *testing.T) {
	events := []model.Event{
		mkEvent("Atlanta Hawks", "2026-04-21", "", "State Farm Arena", "Hawks vs Heat"),
		mkEvent("Boston Celtics", "2026-04-20", "19:30:00", "TD Garden", "Celtics vs Knicks"),
		mkEvent("Atlanta Hawks", "2026-04-21", "", "State Farm Arena", "Hawks vs Heat"),
		mkEvent("Brooklyn Nets", "2026-04-20", "18:00:00", "Barclays Center", "Nets vs Pacers"),
	}

	once := Deduplicate(events)
	twice := Deduplicate(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Deduplicate is not a fixed point:\nonce:  %v\ntwice: %v", once, twice)
	}
}

func TestDeduplicateKeyUniqueness(t *testing.T) {
	events := []model.Event{
		mkEvent("Atlanta Hawks", "2026-04-21", "", "State Farm Arena", "Hawks vs Heat"),
		mkEvent("Atlanta Hawks", "2026-04-21", "", "State Farm Arena", "Hawks Game 2"),
		mkEvent("Boston Celtics", "2026-04-21", "", "TD Garden", "Celtics vs Knicks"),
	}

	got := Deduplicate(events)
	seen := make(map[[4]string]bool)
	for _, e := range got {
		key := [4]string{e.Team, e.DateString(), e.Time, e.Venue}
		if seen[key] {
			t.Errorf("duplicate key after dedup: %v", key)
		}
		seen[key] = true
	}
}

func TestDeduplicateSortsByDateThenVenue(t *testing.T) {
	events := []model.Event{
		mkEvent("Boston Celtics", "2026-04-22", "19:30:00", "TD Garden", "Game C"),
		mkEvent("Atlanta Hawks", "2026-04-20", "", "State Farm Arena", "Game B"),
		mkEvent("Brooklyn Nets", "2026-04-20", "", "Barclays Center", "Game A"),
	}

	got := Deduplicate(events)

	wantOrder := []string{"Barclays Center", "State Farm Arena", "TD Garden"}
	for i, venue := range wantOrder {
		if got[i].Venue != venue {
			t.Errorf("position %d: venue = %q, want %q", i, got[i].Venue, venue)
		}
	}
}

func TestDeduplicateScraped(t *testing.T) {
	d1, _ := time.Parse("2006-01-02", "2026-04-20")
	d2, _ := time.Parse("2006-01-02", "2026-04-21")

	events := []model.ScrapedEvent{
		{Venue: "TD Garden", Title: "Celtics vs Knicks", Date: d2, Time: "7:30 PM"},
		{Venue: "TD Garden", Title: "Celtics vs Knicks", Date: d1, Time: "7:30 PM"},
		{Venue: "TD Garden", Title: "Celtics vs Knicks", Date: d1, Time: "8:00 PM"},
	}

	got := DeduplicateScraped(events)
	if len(got) != 2 {
		t.Fatalf("expected dedup on (Venue, Title, Date) to keep 2, got %d", len(got))
	}
	// Sorted by date: the 04-20 record (first-seen 7:30 PM) leads.
	if !got[0].Date.Equal(d1) || got[0].Time != "7:30 PM" {
		t.Errorf("got[0] = %+v, want first-seen 2026-04-20 7:30 PM record", got[0])
	}
}
