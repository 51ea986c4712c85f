package venues

import (
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/roguetex/courtside/internal/model"
)

// hasEventDateLayout is the data-fulldate attribute format on the
// State Farm / TD Garden calendars (m-d-Y, e.g. "04-20-2026").
const hasEventDateLayout = "01-02-2006"

// wrapperDateLayouts cover the event_item_wrapper calendars, whose
// date spans read like "Feb 1, 2026 -" (the trailing dash is stripped
// before parsing).
var wrapperDateLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan. 2, 2006",
}

// parseStateFarm handles the State Farm Arena calendar: div.hasEvent
// cells with a data-fulldate attribute, title and link inside
// .desc a, and the showtime embedded in the link's aria-label after
// "Showings at".
func parseStateFarm(doc *goquery.Document, venue string, w Window, _ string) []model.ScrapedEvent {
	var events []model.ScrapedEvent

	doc.Find("div.hasEvent").Each(func(_ int, cell *goquery.Selection) {
		date, ok := hasEventDate(cell, w)
		if !ok {
			return
		}

		title, link := "Unknown", ""
		etime := "TBA"
		if a := cell.Find(".desc a").First(); a.Length() > 0 {
			title = strings.TrimSpace(a.Text())
			link, _ = a.Attr("href")
			if aria, exists := a.Attr("aria-label"); exists {
				if _, after, found := strings.Cut(aria, "Showings at"); found {
					etime = strings.TrimSpace(after)
				}
			}
		}

		events = append(events, model.ScrapedEvent{
			Venue: venue, Title: title, Date: date, Time: etime, Link: link,
		})
	})

	return events
}

// parseTDGarden handles the TD Garden calendar: same hasEvent cells as
// State Farm, but the showtime lives in a .showings element instead of
// an aria-label.
func parseTDGarden(doc *goquery.Document, venue string, w Window, _ string) []model.ScrapedEvent {
	var events []model.ScrapedEvent

	doc.Find("div.hasEvent").Each(func(_ int, cell *goquery.Selection) {
		date, ok := hasEventDate(cell, w)
		if !ok {
			return
		}

		title, link := "Unknown", ""
		if a := cell.Find(".desc a").First(); a.Length() > 0 {
			title = strings.TrimSpace(a.Text())
			link, _ = a.Attr("href")
		}

		etime := "TBA"
		if showings := cell.Find(".showings").First(); showings.Length() > 0 {
			etime = strings.TrimSpace(showings.Text())
		}

		events = append(events, model.ScrapedEvent{
			Venue: venue, Title: title, Date: date, Time: etime, Link: link,
		})
	})

	return events
}

// parseEventWrappers handles the Barclays Center and Spectrum Center
// calendars: div.event_item_wrapper cards with a "Mon D, YYYY" date
// span, h3 link, and an optional time span. Relative links resolve
// against the page URL.
func parseEventWrappers(doc *goquery.Document, venue string, w Window, pageURL string) []model.ScrapedEvent {
	var events []model.ScrapedEvent
	base, _ := url.Parse(pageURL)

	doc.Find("div.event_item_wrapper").Each(func(_ int, wrapper *goquery.Selection) {
		dateEl := wrapper.Find("div.date span.dt, div.info .date .dt").First()
		date, ok := wrapperDate(dateEl.Text())
		if !ok || !w.Contains(date) {
			return
		}

		title, link := "Unknown", ""
		if a := wrapper.Find("h3 a").First(); a.Length() > 0 {
			title = strings.TrimSpace(a.Text())
			if href, exists := a.Attr("href"); exists {
				link = resolveLink(base, href)
			}
		}

		etime := "TBA"
		if t := wrapper.Find("div.date span.time, span.time").First(); t.Length() > 0 {
			etime = strings.TrimSpace(strings.TrimLeft(t.Text(), "- "))
		}

		events = append(events, model.ScrapedEvent{
			Venue: venue, Title: title, Date: date, Time: etime, Link: link,
		})
	})

	return events
}

func hasEventDate(cell *goquery.Selection, w Window) (time.Time, bool) {
	raw, exists := cell.Attr("data-fulldate")
	if !exists || raw == "" {
		return time.Time{}, false
	}
	date, err := time.Parse(hasEventDateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	if !w.Contains(date) {
		return time.Time{}, false
	}
	return date, true
}

func wrapperDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "-"))
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range wrapperDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func resolveLink(base *url.URL, href string) string {
	if base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
