package csvio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/roguetex/courtside/internal/model"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestHeaderIndex(t *testing.T) {
	idx, err := HeaderIndex([]string{"name", " date ", "venue"}, "name", "date")
	if err != nil {
		t.Fatalf("HeaderIndex: %v", err)
	}
	if idx["name"] != 0 || idx["date"] != 1 || idx["venue"] != 2 {
		t.Errorf("unexpected index: %v", idx)
	}
}

func TestHeaderIndexMissingColumn(t *testing.T) {
	_, err := HeaderIndex([]string{"name", "venue"}, "name", "date", "venue")
	if err == nil {
		t.Fatal("expected error for missing column")
	}
	if !strings.Contains(err.Error(), `"date"`) {
		t.Errorf("error should name the missing column, got: %v", err)
	}
}

func TestWriteReadEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.csv")
	events := []model.Event{
		{Name: "Boston Celtics vs New York Knicks", Date: mustDate(t, "2026-04-20"), Time: "19:30:00", Venue: "TD Garden", Team: "Boston Celtics"},
		{Name: "Name, with comma", Date: mustDate(t, "2026-04-22"), Time: "", Venue: `Venue "quoted"`, Team: "Boston Celtics"},
	}

	written, err := WriteEvents(path, events)
	if err != nil {
		t.Fatalf("WriteEvents: %v", err)
	}
	if !written {
		t.Fatal("WriteEvents reported nothing written")
	}

	got, err := ReadEvents(path)
	if err != nil {
		t.Fatalf("ReadEvents: %v", err)
	}
	if len(got) != len(events) {
		t.Fatalf("read %d events, want %d", len(got), len(events))
	}
	for i, e := range events {
		if got[i].Name != e.Name || !got[i].Date.Equal(e.Date) ||
			got[i].Time != e.Time || got[i].Venue != e.Venue || got[i].Team != e.Team {
			t.Errorf("event %d = %+v, want %+v", i, got[i], e)
		}
	}
}

func TestWriteEventsEmptySkipsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.csv")

	written, err := WriteEvents(path, nil)
	if err != nil {
		t.Fatalf("WriteEvents: %v", err)
	}
	if written {
		t.Error("WriteEvents reported a write for an empty dataset")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("empty dataset should produce no file")
	}
}

func TestWriteReadScraped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scraped.csv")
	events := []model.ScrapedEvent{
		{Venue: "TD Garden", Title: "Boston Celtics vs Knicks", Date: mustDate(t, "2026-04-20"), Time: "7:30 PM", Link: "https://www.tdgarden.com/events/celtics"},
		{Venue: "Barclays Center", Title: "Concert", Date: mustDate(t, "2026-04-25"), Time: "TBA", Link: ""},
	}

	if _, err := WriteScraped(path, events); err != nil {
		t.Fatalf("WriteScraped: %v", err)
	}
	got, err := ReadScraped(path)
	if err != nil {
		t.Fatalf("ReadScraped: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("read %d events, want 2", len(got))
	}
	for i, e := range events {
		if got[i].Venue != e.Venue || got[i].Title != e.Title ||
			!got[i].Date.Equal(e.Date) || got[i].Time != e.Time || got[i].Link != e.Link {
			t.Errorf("event %d = %+v, want %+v", i, got[i], e)
		}
	}
}

func TestReadEventsMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.csv")
	content := "name,date,venue,team\nSome Event,2026-04-20,TD Garden,Boston Celtics\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadEvents(path)
	if err == nil {
		t.Fatal("expected error for missing time column")
	}
	if !strings.Contains(err.Error(), `"time"`) {
		t.Errorf("error should name the missing column, got: %v", err)
	}
}

func TestReadEventsBadDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.csv")
	content := "name,date,time,venue,team\nSome Event,April 20th,19:00,TD Garden,Boston Celtics\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadEvents(path); err == nil {
		t.Fatal("expected error for unparseable date")
	}
}

func TestReadEventsMissingFile(t *testing.T) {
	if _, err := ReadEvents(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
