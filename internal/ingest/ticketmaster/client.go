// Package ticketmaster collects raw event listings around each arena
// from the Ticketmaster Discovery API. It owns pagination, rate-limit
// backoff and retries; the cleaning pipeline downstream never sees any
// of that, only finite per-team batches of raw records.
package ticketmaster

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/roguetex/courtside/internal/model"
)

const (
	// BaseURL for the Discovery v2 events endpoint.
	BaseURL = "https://app.ticketmaster.com/discovery/v2/events.json"

	pageSize = 50

	// resultCap is the Discovery API's hard pagination limit. A range
	// whose projected results reach it gets re-fetched in weekly slices.
	resultCap = 1000

	// pageDelay spaces paginated requests to stay under the API's
	// per-second quota.
	pageDelay = 1200 * time.Millisecond

	maxServerRetries = 6
	maxBackoff       = 30 * time.Second
)

// Client talks to the Discovery API for one configured key.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client

	// pageDelay and initial backoff are fields so tests can shrink them.
	delay   time.Duration
	backoff time.Duration
}

// NewClient creates a Discovery API client. An empty baseURL selects
// the production endpoint.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		delay:      pageDelay,
		backoff:    2 * time.Second,
	}
}

// SearchEvents fetches every event around (lat, long) within
// radiusMiles for the range, following pagination. When the projected
// result count reaches the API cap the range is re-fetched in weekly
// slices instead.
func (c *Client) SearchEvents(ctx context.Context, lat, long float64, radiusMiles int, r DateRange) ([]model.RawEvent, error) {
	var all []model.RawEvent
	page := 0

	for {
		params := url.Values{}
		params.Set("apikey", c.apiKey)
		params.Set("latlong", fmt.Sprintf("%g,%g", lat, long))
		params.Set("radius", fmt.Sprintf("%d", radiusMiles))
		params.Set("unit", "miles")
		params.Set("startDateTime", r.Start.Format("2006-01-02")+"T00:00:00Z")
		params.Set("endDateTime", r.End.Format("2006-01-02")+"T23:59:59Z")
		params.Set("size", fmt.Sprintf("%d", pageSize))
		params.Set("page", fmt.Sprintf("%d", page))

		resp, err := c.get(ctx, c.baseURL+"?"+params.Encode())
		if err != nil {
			return nil, err
		}

		if resp.Page.TotalPages*pageSize >= resultCap {
			// Too dense for one range; split to weekly slices and retry.
			var split []model.RawEvent
			for _, weekly := range WeeklyRanges(r.Start, r.End) {
				chunk, err := c.SearchEvents(ctx, lat, long, radiusMiles, weekly)
				if err != nil {
					return nil, err
				}
				split = append(split, chunk...)
			}
			return split, nil
		}

		for _, ev := range resp.Embedded.Events {
			raw := model.RawEvent{
				Name: ev.Name,
				Date: ev.Dates.Start.LocalDate,
				Time: ev.Dates.Start.LocalTime,
			}
			if len(ev.Embedded.Venues) > 0 {
				raw.Venue = ev.Embedded.Venues[0].Name
			}
			all = append(all, raw)
		}

		if page >= resp.Page.TotalPages-1 {
			break
		}
		page++

		if err := sleepCtx(ctx, c.delay); err != nil {
			return nil, err
		}
	}

	return all, nil
}

// get performs one request with 429 backoff and 5xx retries.
func (c *Client) get(ctx context.Context, fullURL string) (*discoveryResponse, error) {
	backoff := c.backoff
	retries := 0

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("ticketmaster request: %w", err)
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			log.Printf("[ticketmaster] 429 rate-limit, sleeping %s", backoff)
			if err := sleepCtx(ctx, backoff); err != nil {
				return nil, err
			}
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
			continue

		case resp.StatusCode == http.StatusBadGateway,
			resp.StatusCode == http.StatusServiceUnavailable,
			resp.StatusCode == http.StatusGatewayTimeout:
			if retries >= maxServerRetries {
				return nil, fmt.Errorf("ticketmaster server error %d after %d retries", resp.StatusCode, retries)
			}
			retries++
			log.Printf("[ticketmaster] server error %d, retrying in %s (%d/%d)", resp.StatusCode, backoff, retries, maxServerRetries)
			if err := sleepCtx(ctx, backoff); err != nil {
				return nil, err
			}
			continue

		case resp.StatusCode != http.StatusOK:
			return nil, fmt.Errorf("ticketmaster HTTP %d: %s", resp.StatusCode, snippet(body))
		}

		if readErr != nil {
			return nil, fmt.Errorf("reading ticketmaster response: %w", readErr)
		}

		var decoded discoveryResponse
		if err := json.Unmarshal(body, &decoded); err != nil {
			return nil, fmt.Errorf("decoding ticketmaster response: %w (body: %s)", err, snippet(body))
		}
		return &decoded, nil
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func snippet(body []byte) string {
	if len(body) > 200 {
		body = body[:200]
	}
	return string(body)
}
