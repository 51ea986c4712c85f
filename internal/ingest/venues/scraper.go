package venues

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/roguetex/courtside/internal/model"
)

// ErrBlocked marks a venue whose site rejects automated access.
var ErrBlocked = errors.New("venue site blocks automated access")

// Window is the inclusive date range a scrape is limited to.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether a date falls inside the window.
func (w Window) Contains(d time.Time) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// parseFunc extracts the window's events from one rendered calendar
// month.
type parseFunc func(doc *goquery.Document, venue string, w Window, pageURL string) []model.ScrapedEvent

// Scraper walks one venue's month-by-month event calendar.
type Scraper struct {
	Venue    string
	URL      string
	monthSel string // element carrying the current "Month YYYY" label
	nextSel  string // next-month control (usually a div, not a button)
	parse    parseFunc
	blocked  bool // Cloudflare etc.; registered but never fetched
}

// maxNavClicks bounds forward navigation so a broken calendar can't
// loop forever.
const maxNavClicks = 8

var titleCaser = cases.Title(language.English)

// Scrapers is the venue scraper registry. United Center is present so
// the summary reports why it contributes nothing: the calendar iframe
// serves a Cloudflare JS challenge, so its data comes from the API
// source only.
var Scrapers = []*Scraper{
	{
		Venue:    "State Farm Arena",
		URL:      "https://www.statefarmarena.com/events/calendar",
		monthSel: "div.month_name",
		nextSel:  "div.cal-next",
		parse:    parseStateFarm,
	},
	{
		Venue:    "TD Garden",
		URL:      "https://www.tdgarden.com/calendar",
		monthSel: "div.month_name",
		nextSel:  "div.cal-next",
		parse:    parseTDGarden,
	},
	{
		Venue:    "Barclays Center",
		URL:      "https://www.barclayscenter.com/events/event-calendar",
		monthSel: ".cal-month",
		nextSel:  ".cal-next",
		parse:    parseEventWrappers,
	},
	{
		Venue:    "Spectrum Center",
		URL:      "https://www.spectrumcentercharlotte.com/events",
		monthSel: ".cal-month",
		nextSel:  ".cal-next",
		parse:    parseEventWrappers,
	},
	{
		Venue:   "United Center",
		URL:     "https://www.unitedcenter.com/events/month/",
		blocked: true,
	},
}

// Run scrapes one venue's calendar across the window, month by month.
func (s *Scraper) Run(ctx context.Context, b *Browser, w Window) ([]model.ScrapedEvent, error) {
	if s.blocked {
		return nil, ErrBlocked
	}

	log.Printf("[scrape] %s (%s)", s.Venue, s.URL)

	tab, cancel := b.newTab(ctx, 5*time.Minute)
	defer cancel()

	err := chromedp.Run(tab,
		chromedp.Navigate(s.URL),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.Sleep(3*time.Second),
	)
	if err != nil {
		return nil, err
	}

	startMonth := monthOf(w.Start)
	endMonth := monthOf(w.End)

	// Advance the calendar forward to the window's first month.
	for i := 0; i < maxNavClicks; i++ {
		cur, err := s.currentMonth(tab)
		if err != nil {
			log.Printf("[scrape] %s: could not read current month: %v", s.Venue, err)
			break
		}
		if !cur.Before(startMonth) {
			break
		}
		log.Printf("[scrape] %s: navigating %s -> next", s.Venue, cur.Format("January 2006"))
		if err := clickAndSettle(tab, s.nextSel); err != nil {
			return nil, err
		}
	}

	var events []model.ScrapedEvent
	for i := 0; i < maxNavClicks; i++ {
		cur, err := s.currentMonth(tab)
		if err != nil {
			log.Printf("[scrape] %s: could not read month, stopping: %v", s.Venue, err)
			break
		}
		if cur.After(endMonth) {
			break
		}
		log.Printf("[scrape] %s: month %s", s.Venue, cur.Format("January 2006"))

		html, err := pageHTML(tab)
		if err != nil {
			return nil, err
		}
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err != nil {
			return nil, err
		}
		monthEvents := s.parse(doc, s.Venue, w, s.URL)
		log.Printf("[scrape] %s: %d events in window this month", s.Venue, len(monthEvents))
		events = append(events, monthEvents...)

		if err := clickAndSettle(tab, s.nextSel); err != nil {
			log.Printf("[scrape] %s: no next button, done", s.Venue)
			break
		}
	}

	log.Printf("[scrape] %s: total collected %d events", s.Venue, len(events))
	return events, nil
}

// currentMonth reads the calendar's month label. Barclays renders it
// uppercase ("APRIL 2026"), so the text is title-cased before parsing.
func (s *Scraper) currentMonth(ctx context.Context) (time.Time, error) {
	text, err := textOf(ctx, s.monthSel)
	if err != nil {
		return time.Time{}, err
	}
	return parseMonthLabel(text)
}

func parseMonthLabel(text string) (time.Time, error) {
	text = titleCaser.String(strings.ToLower(strings.TrimSpace(text)))
	return time.Parse("January 2006", text)
}

func monthOf(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Status records one scraper's outcome for the run summary.
type Status struct {
	Venue string
	Count int
	Err   error
}

// RunAll runs every registered scraper, tolerating individual
// failures: a venue that errors (or is blocked) contributes zero
// events and a status entry, never a failed run.
func RunAll(ctx context.Context, b *Browser, w Window) ([]model.ScrapedEvent, []Status) {
	var all []model.ScrapedEvent
	statuses := make([]Status, 0, len(Scrapers))

	for _, s := range Scrapers {
		events, err := s.Run(ctx, b, w)
		if err != nil {
			log.Printf("[scrape] %s failed: %v", s.Venue, err)
			statuses = append(statuses, Status{Venue: s.Venue, Err: err})
			continue
		}
		all = append(all, events...)
		statuses = append(statuses, Status{Venue: s.Venue, Count: len(events)})
	}

	return all, statuses
}
