// Package csvio reads and writes the pipeline's tabular artifacts.
// Output files are written in one pass after all filtering stages
// complete; an empty dataset produces no file at all.
package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/roguetex/courtside/internal/model"
)

// HeaderIndex maps required column names to their positions in a CSV
// header row. A missing column is a structural problem the pipeline
// cannot work around, so it surfaces as a descriptive error rather
// than being swallowed.
func HeaderIndex(header []string, required ...string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.TrimSpace(col)] = i
	}

	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("input missing required column %q (header: %s)", col, strings.Join(header, ","))
		}
	}

	return idx, nil
}

// WriteEvents writes the canonical dataset: name,date,time,venue,team
// with dates as YYYY-MM-DD. An empty slice writes nothing and returns
// false so callers can report the empty-dataset condition.
func WriteEvents(path string, events []model.Event) (bool, error) {
	if len(events) == 0 {
		return false, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"name", "date", "time", "venue", "team"}); err != nil {
		return false, err
	}
	for _, e := range events {
		if err := w.Write([]string{e.Name, e.DateString(), e.Time, e.Venue, e.Team}); err != nil {
			return false, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}

// ReadEvents loads a canonical dataset written by WriteEvents.
func ReadEvents(path string) ([]model.Event, error) {
	rows, idx, err := readAll(path, "name", "date", "time", "venue", "team")
	if err != nil {
		return nil, err
	}

	events := make([]model.Event, 0, len(rows))
	for _, row := range rows {
		date, err := time.Parse(model.DateLayout, row[idx["date"]])
		if err != nil {
			return nil, fmt.Errorf("%s: bad date %q: %w", path, row[idx["date"]], err)
		}
		events = append(events, model.Event{
			Name:   row[idx["name"]],
			Date:   date,
			Time:   row[idx["time"]],
			Venue:  row[idx["venue"]],
			Team:   row[idx["team"]],
			Source: model.SourceAPI,
		})
	}
	return events, nil
}

// WriteScraped writes the scraped dataset: Venue,Title,Date,Time,Link.
func WriteScraped(path string, events []model.ScrapedEvent) (bool, error) {
	if len(events) == 0 {
		return false, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Venue", "Title", "Date", "Time", "Link"}); err != nil {
		return false, err
	}
	for _, e := range events {
		if err := w.Write([]string{e.Venue, e.Title, e.DateString(), e.Time, e.Link}); err != nil {
			return false, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}

// ReadScraped loads a scraped dataset written by WriteScraped.
func ReadScraped(path string) ([]model.ScrapedEvent, error) {
	rows, idx, err := readAll(path, "Venue", "Title", "Date", "Time", "Link")
	if err != nil {
		return nil, err
	}

	events := make([]model.ScrapedEvent, 0, len(rows))
	for _, row := range rows {
		date, err := time.Parse(model.DateLayout, row[idx["Date"]])
		if err != nil {
			return nil, fmt.Errorf("%s: bad date %q: %w", path, row[idx["Date"]], err)
		}
		events = append(events, model.ScrapedEvent{
			Venue: row[idx["Venue"]],
			Title: row[idx["Title"]],
			Date:  date,
			Time:  row[idx["Time"]],
			Link:  row[idx["Link"]],
		})
	}
	return events, nil
}

func readAll(path string, required ...string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s: empty file, no header row", path)
	}

	idx, err := HeaderIndex(records[0], required...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return records[1:], idx, nil
}
