// Package validate cross-checks the two independently collected
// datasets - Ticketmaster API events and venue-calendar scrapes - and
// reports per-venue coverage and discrepancies. The output is
// advisory: it never gates the pipeline.
package validate

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/roguetex/courtside/internal/model"
)

// DefaultScrapedVenues is the venue subset with a working scraper.
// United Center is absent: its calendar sits behind Cloudflare bot
// detection, so the API is the only source there.
var DefaultScrapedVenues = []string{
	"State Farm Arena",
	"TD Garden",
	"Barclays Center",
	"Spectrum Center",
}

// MatchRecord is the per-scraped-event outcome, one row in the detail
// artifact. Immutable after creation.
type MatchRecord struct {
	Venue        string    `json:"venue"`
	Date         time.Time `json:"date"`
	ScraperName  string    `json:"scraper_name"`
	MatchedInAPI bool      `json:"matched_in_api"`
}

// VenueSummary aggregates one venue's comparison.
type VenueSummary struct {
	Venue       string               `json:"venue"`
	APICount    int                  `json:"api_count"`
	ScrapeCount int                  `json:"scrape_count"`
	Matched     int                  `json:"matched"`
	Coverage    float64              `json:"coverage_pct"`
	ScraperOnly []model.ScrapedEvent `json:"scraper_only,omitempty"`
	APIOnly     []model.Event        `json:"api_only,omitempty"`
}

// Report is the full validation result across all scraped venues.
type Report struct {
	APITotal    int            `json:"api_total"`
	ScrapeTotal int            `json:"scrape_total"`
	Venues      []VenueSummary `json:"venues"`
	Records     []MatchRecord  `json:"records"`
}

// dayDeltas is the date-shift tolerance: sources recording local dates
// across timezones can disagree by up to one calendar day. Checked in
// this order; the first matching candidate wins.
var dayDeltas = []int{0, 1, -1}

// Compare matches every scraped event against the API dataset for the
// given venue subset. For fixed inputs the result is identical across
// runs: venues iterate in the given order, API candidates in dataset
// order.
func Compare(apiEvents []model.Event, scraped []model.ScrapedEvent, venues []string) *Report {
	report := &Report{
		APITotal:    len(apiEvents),
		ScrapeTotal: len(scraped),
	}

	for _, venueName := range venues {
		apiV := selectAPIVenue(apiEvents, venueName)
		scrV := selectScrapedVenue(scraped, venueName)

		summary := VenueSummary{
			Venue:       venueName,
			APICount:    len(apiV),
			ScrapeCount: len(scrV),
		}

		if len(scrV) == 0 {
			// Coverage defined as 0 for an empty scrape, not a division error.
			report.Venues = append(report.Venues, summary)
			continue
		}

		apiByDate := make(map[string][]string, len(apiV))
		for _, e := range apiV {
			key := e.DateString()
			apiByDate[key] = append(apiByDate[key], NormalizeName(e.Name))
		}

		for _, se := range scrV {
			found := matchScrapedEvent(se, apiByDate)
			if found {
				summary.Matched++
			} else {
				summary.ScraperOnly = append(summary.ScraperOnly, se)
			}
			report.Records = append(report.Records, MatchRecord{
				Venue:        venueName,
				Date:         se.Date,
				ScraperName:  se.Title,
				MatchedInAPI: found,
			})
		}

		summary.Coverage = float64(summary.Matched) / float64(len(scrV)) * 100

		// API-only events compare by calendar date alone, ignoring names.
		// Reported but excluded from the coverage percentage.
		scrDates := make(map[string]struct{}, len(scrV))
		for _, se := range scrV {
			scrDates[se.DateString()] = struct{}{}
		}
		for _, e := range apiV {
			if _, ok := scrDates[e.DateString()]; !ok {
				summary.APIOnly = append(summary.APIOnly, e)
			}
		}

		report.Venues = append(report.Venues, summary)
	}

	return report
}

func matchScrapedEvent(se model.ScrapedEvent, apiByDate map[string][]string) bool {
	sname := NormalizeName(se.Title)
	for _, delta := range dayDeltas {
		checkDate := se.Date.AddDate(0, 0, delta).Format(model.DateLayout)
		for _, aname := range apiByDate[checkDate] {
			if namesOverlap(sname, aname) {
				return true
			}
		}
	}
	return false
}

// namesOverlap declares two normalized names the same event when their
// 6-character prefixes agree, or when one name's 8-character prefix
// occurs anywhere inside the other (only for names longer than 4
// characters, to keep tiny strings from matching everything).
func namesOverlap(sname, aname string) bool {
	shortS := prefix(sname, 6)
	shortA := prefix(aname, 6)
	if shortS != "" && shortA != "" && shortS == shortA {
		return true
	}
	if runeLen(sname) > 4 && strings.Contains(aname, prefix(sname, 8)) {
		return true
	}
	if runeLen(aname) > 4 && strings.Contains(sname, prefix(aname, 8)) {
		return true
	}
	return false
}

// NormalizeName lowercases, trims, and strips diacritics via canonical
// decomposition ("Canelo Álvarez" and "canelo alvarez" compare equal).
func NormalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	decomposed := norm.NFKD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func prefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func runeLen(s string) int {
	return len([]rune(s))
}

// selectAPIVenue picks API events whose venue string contains the
// canonical venue name, case-insensitively. Containment rather than
// equality: API venue strings carry sponsor suffixes.
func selectAPIVenue(events []model.Event, venueName string) []model.Event {
	needle := strings.ToLower(venueName)
	var out []model.Event
	for _, e := range events {
		if strings.Contains(strings.ToLower(e.Venue), needle) {
			out = append(out, e)
		}
	}
	return out
}

func selectScrapedVenue(events []model.ScrapedEvent, venueName string) []model.ScrapedEvent {
	needle := strings.ToLower(venueName)
	var out []model.ScrapedEvent
	for _, e := range events {
		if strings.Contains(strings.ToLower(e.Venue), needle) {
			out = append(out, e)
		}
	}
	return out
}
