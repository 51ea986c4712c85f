package validate

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// apiOnlyDisplayCap limits how many API-only events are listed per
// venue in the text report; the remainder collapses to "+N more".
const apiOnlyDisplayCap = 10

// RenderText produces the human-readable validation report.
func RenderText(r *Report) string {
	var b strings.Builder
	rule := strings.Repeat("=", 70)
	thin := strings.Repeat("-", 60)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "VALIDATION REPORT: Ticketmaster API vs. Venue Scrapers")
	fmt.Fprintf(&b, "API events total:     %d\n", r.APITotal)
	fmt.Fprintf(&b, "Scraper events total: %d (%d venues)\n", r.ScrapeTotal, len(r.Venues))
	fmt.Fprintln(&b, rule)

	for _, v := range r.Venues {
		fmt.Fprintf(&b, "\n%s\n", thin)
		fmt.Fprintf(&b, "Venue: %s\n", v.Venue)
		fmt.Fprintln(&b, thin)
		fmt.Fprintf(&b, "  API events:     %d\n", v.APICount)
		fmt.Fprintf(&b, "  Scraper events: %d\n", v.ScrapeCount)

		if v.ScrapeCount == 0 {
			fmt.Fprintln(&b, "  No scraper events - skipping match analysis")
			continue
		}

		fmt.Fprintf(&b, "  Matched in API: %d/%d  (%.0f%%)\n", v.Matched, v.ScrapeCount, v.Coverage)

		if len(v.ScraperOnly) > 0 {
			fmt.Fprintln(&b, "  Scraper-only events (not found in API):")
			for _, se := range v.ScraperOnly {
				fmt.Fprintf(&b, "    %s  %s\n", se.DateString(), se.Title)
			}
		}

		if len(v.APIOnly) > 0 {
			fmt.Fprintf(&b, "  API-only events on dates not in scraper (%d):\n", len(v.APIOnly))
			for i, e := range v.APIOnly {
				if i >= apiOnlyDisplayCap {
					fmt.Fprintf(&b, "    ... and %d more\n", len(v.APIOnly)-apiOnlyDisplayCap)
					break
				}
				fmt.Fprintf(&b, "    %s  %s\n", e.DateString(), truncate(e.Name, 60))
			}
		}
	}

	fmt.Fprintf(&b, "\n%s\n", rule)
	fmt.Fprintln(&b, "SUMMARY")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "API total events in window:     %d\n", r.APITotal)
	fmt.Fprintf(&b, "Scraper total events:           %d\n", r.ScrapeTotal)

	return b.String()
}

// WriteDetailCSV writes one row per scraped event:
// venue, date, scraper_name, matched_in_api. Nothing is written when
// there are no records.
func WriteDetailCSV(path string, records []MatchRecord) (bool, error) {
	if len(records) == 0 {
		return false, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"venue", "date", "scraper_name", "matched_in_api"}); err != nil {
		return false, err
	}
	for _, rec := range records {
		row := []string{
			rec.Venue,
			rec.Date.Format("2006-01-02"),
			rec.ScraperName,
			strconv.FormatBool(rec.MatchedInAPI),
		}
		if err := w.Write(row); err != nil {
			return false, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
