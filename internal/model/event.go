package model

import "time"

// Source identifies which collector produced an event record.
type Source string

const (
	SourceAPI     Source = "api"
	SourceScraper Source = "scraper"
)

// DateLayout is the calendar-date format used across all artifacts.
const DateLayout = "2006-01-02"

// RawEvent is a single listing as emitted by a collector, before any
// cleaning. Fields may be empty - the Ticketmaster cache files carry
// nulls for listings with no announced time or venue.
type RawEvent struct {
	Name  string `json:"name"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Venue string `json:"venue"`
}

// Event is a canonical event record: date-windowed, keyword-filtered,
// deduplicated and venue-resolved. Date carries the calendar date only
// (midnight UTC); Time keeps the raw listing time string.
type Event struct {
	Name   string    `json:"name"`
	Date   time.Time `json:"date"`
	Time   string    `json:"time"`
	Venue  string    `json:"venue"`
	Team   string    `json:"team"`
	Source Source    `json:"source,omitempty"`
}

// DateString returns the event date as YYYY-MM-DD.
func (e Event) DateString() string {
	return e.Date.Format(DateLayout)
}

// ScrapedEvent is one row from a venue-calendar scraper. The column
// names mirror the scraped CSV artifact (Venue, Title, Date, Time, Link).
type ScrapedEvent struct {
	Venue string    `json:"venue"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
	Time  string    `json:"time"`
	Link  string    `json:"link"`
}

// DateString returns the scraped event date as YYYY-MM-DD.
func (e ScrapedEvent) DateString() string {
	return e.Date.Format(DateLayout)
}

// TeamBatch groups the raw events collected for one team's arena.
// An empty Events slice is a valid batch - a missing cache file for a
// team contributes zero records without failing the run.
type TeamBatch struct {
	Team   string
	Events []RawEvent
}
