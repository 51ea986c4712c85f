package pipeline

import (
	"testing"
	"time"

	"github.com/roguetex/courtside/internal/model"
)

func testWindow() (time.Time, time.Time) {
	start := time.Date(2026, 4, 14, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 19, 0, 0, 0, 0, time.UTC)
	return start, end
}

func TestNormalizerExcludesKeywordListings(t *testing.T) {
	start, end := testWindow()
	n := NewNormalizer(start, end, ExcludeKeywords)

	batches := []model.TeamBatch{{
		Team: "Boston Celtics",
		Events: []model.RawEvent{{
			Name:  "NBA Playoffs Game 1 Season Ticket Holder Deposit",
			Date:  "2026-04-20",
			Venue: "TD Garden",
		}},
	}}

	got := n.Normalize(batches)
	if len(got) != 0 {
		t.Errorf("expected keyword-excluded listing to be dropped, got %d events", len(got))
	}
}

func TestNormalizerDateWindow(t *testing.T) {
	start, end := testWindow()
	n := NewNormalizer(start, end, nil)

	tests := []struct {
		name string
		date string
		want bool
	}{
		{"inside window", "2026-05-01", true},
		{"start boundary inclusive", "2026-04-14", true},
		{"end boundary inclusive", "2026-06-19", true},
		{"before window", "2026-04-13", false},
		{"after window", "2026-06-20", false},
		{"unparseable date dropped", "April 20th", false},
		{"empty date dropped", "", false},
		{"datetime format accepted", "2026-05-01T19:30:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batches := []model.TeamBatch{{
				Team:   "Boston Celtics",
				Events: []model.RawEvent{{Name: "Celtics vs Knicks", Date: tt.date, Venue: "TD Garden"}},
			}}
			got := n.Normalize(batches)
			if kept := len(got) == 1; kept != tt.want {
				t.Errorf("date %q: kept=%v, want %v", tt.date, kept, tt.want)
			}
		})
	}
}

func TestNormalizerWindowInvariant(t *testing.T) {
	start, end := testWindow()
	n := NewNormalizer(start, end, ExcludeKeywords)

	batches := []model.TeamBatch{{
		Team: "Atlanta Hawks",
		Events: []model.RawEvent{
			{Name: "Hawks vs Heat", Date: "2026-04-20", Venue: "State Farm Arena"},
			{Name: "Hawks vs Magic", Date: "2026-03-01", Venue: "State Farm Arena"},
			{Name: "Concert", Date: "2026-07-04", Venue: "State Farm Arena"},
			{Name: "Hawks vs Bucks", Date: "2026-06-19", Venue: "State Farm Arena"},
		},
	}}

	for _, e := range n.Normalize(batches) {
		if e.Date.Before(start) || e.Date.After(end) {
			t.Errorf("event %q on %s escapes window [%s, %s]",
				e.Name, e.DateString(), start.Format("2006-01-02"), end.Format("2006-01-02"))
		}
	}
}

func TestNormalizerTagsTeamAndSource(t *testing.T) {
	start, end := testWindow()
	n := NewNormalizer(start, end, nil)

	got := n.Normalize([]model.TeamBatch{{
		Team:   "Brooklyn Nets",
		Events: []model.RawEvent{{Name: "Nets vs Pacers", Date: "2026-04-20", Time: "19:30:00", Venue: "Barclays Center"}},
	}})

	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	if got[0].Team != "Brooklyn Nets" {
		t.Errorf("Team = %q, want Brooklyn Nets", got[0].Team)
	}
	if got[0].Source != model.SourceAPI {
		t.Errorf("Source = %q, want %q", got[0].Source, model.SourceAPI)
	}
	if got[0].Time != "19:30:00" {
		t.Errorf("Time = %q, want raw string preserved", got[0].Time)
	}
}

func TestNormalizerEmptyBatchesContinue(t *testing.T) {
	start, end := testWindow()
	n := NewNormalizer(start, end, ExcludeKeywords)

	// One team has no cached source; the run continues with the rest.
	batches := []model.TeamBatch{
		{Team: "Chicago Bulls"},
		{Team: "Boston Celtics", Events: []model.RawEvent{
			{Name: "Celtics vs Knicks", Date: "2026-04-20", Venue: "TD Garden"},
		}},
	}

	got := n.Normalize(batches)
	if len(got) != 1 {
		t.Fatalf("expected 1 event from non-empty batch, got %d", len(got))
	}

	counts := CountByTeam(got)
	if counts["Chicago Bulls"] != 0 {
		t.Errorf("empty-batch team count = %d, want 0", counts["Chicago Bulls"])
	}
	if counts["Boston Celtics"] != 1 {
		t.Errorf("Boston Celtics count = %d, want 1", counts["Boston Celtics"])
	}
}

func TestExcludedIsSubstringNotToken(t *testing.T) {
	start, end := testWindow()
	n := NewNormalizer(start, end, ExcludeKeywords)

	tests := []struct {
		name  string
		event string
		want  bool
	}{
		{"deposit inside larger phrase", "Season Deposit Plan", true},
		{"case-insensitive", "ARENA TOUR Experience", true},
		{"leading-space keyword respects boundary", "Detour Live", false},
		{"plain game listing", "Boston Celtics vs New York Knicks", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Excluded(tt.event); got != tt.want {
				t.Errorf("Excluded(%q) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}
