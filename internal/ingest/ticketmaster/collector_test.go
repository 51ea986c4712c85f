package ticketmaster

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/roguetex/courtside/internal/model"
	"github.com/roguetex/courtside/internal/registry"
)

// memCache is an in-memory Cache for collector tests.
type memCache struct {
	data    map[string][]model.RawEvent
	getErr  error
	putErr  error
	getHits atomic.Int32
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]model.RawEvent)}
}

func (m *memCache) Get(_ context.Context, team string) ([]model.RawEvent, bool, error) {
	m.getHits.Add(1)
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	events, ok := m.data[team]
	return events, ok, nil
}

func (m *memCache) Put(_ context.Context, team string, events []model.RawEvent) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.data[team] = events
	return nil
}

func testRegistry() *registry.Registry {
	return registry.New([]registry.Venue{
		{Team: "Boston Celtics", VenueName: "TD Garden", Conference: "East", Lat: 42.366, Long: -71.062},
		{Team: "Atlanta Hawks", VenueName: "State Farm Arena", Conference: "East", Lat: 33.757, Long: -84.396},
	})
}

func aprilRange() DateRange {
	return DateRange{date(2026, time.April, 1), date(2026, time.April, 7)}
}

func TestCollectUsesCacheFirst(t *testing.T) {
	var apiCalls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiCalls.Add(1)
		fmt.Fprint(w, pageJSON(1, "Fetched Event"))
	}))
	defer srv.Close()

	cache := newMemCache()
	cache.data["Boston Celtics"] = []model.RawEvent{{Name: "Cached Event", Date: "2026-04-20", Venue: "TD Garden"}}

	collector := NewCollector(newTestClient(srv.URL), cache, testRegistry())
	batches, err := collector.Collect(context.Background(), CollectorOptions{Window: aprilRange()})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	if len(batches) != 2 {
		t.Fatalf("got %d batches, want 2", len(batches))
	}
	if batches[0].Team != "Boston Celtics" || len(batches[0].Events) != 1 || batches[0].Events[0].Name != "Cached Event" {
		t.Errorf("cached team batch = %+v, want the cached event untouched", batches[0])
	}
	if batches[1].Team != "Atlanta Hawks" || len(batches[1].Events) != 1 || batches[1].Events[0].Name != "Fetched Event" {
		t.Errorf("uncached team batch = %+v, want the fetched event", batches[1])
	}
	if apiCalls.Load() != 1 {
		t.Errorf("API called %d times, want 1 (cached team skipped)", apiCalls.Load())
	}

	// The fresh fetch is written back.
	if got := cache.data["Atlanta Hawks"]; len(got) != 1 || got[0].Name != "Fetched Event" {
		t.Errorf("cache after run = %+v, want fetched events stored", got)
	}
}

func TestCollectRefreshAllBypassesCache(t *testing.T) {
	var apiCalls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiCalls.Add(1)
		fmt.Fprint(w, pageJSON(1, "Fresh Event"))
	}))
	defer srv.Close()

	cache := newMemCache()
	cache.data["Boston Celtics"] = []model.RawEvent{{Name: "Stale Event"}}
	cache.data["Atlanta Hawks"] = []model.RawEvent{{Name: "Stale Event"}}

	collector := NewCollector(newTestClient(srv.URL), cache, testRegistry())
	batches, err := collector.Collect(context.Background(), CollectorOptions{Window: aprilRange(), RefreshAll: true})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	if apiCalls.Load() != 2 {
		t.Errorf("API called %d times, want 2 with RefreshAll", apiCalls.Load())
	}
	for _, b := range batches {
		if len(b.Events) != 1 || b.Events[0].Name != "Fresh Event" {
			t.Errorf("%s batch = %+v, want refreshed events", b.Team, b.Events)
		}
	}
}

func TestCollectRefreshSingleTeam(t *testing.T) {
	var apiCalls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiCalls.Add(1)
		fmt.Fprint(w, pageJSON(1, "Fresh Event"))
	}))
	defer srv.Close()

	cache := newMemCache()
	cache.data["Boston Celtics"] = []model.RawEvent{{Name: "Stale Event"}}
	cache.data["Atlanta Hawks"] = []model.RawEvent{{Name: "Kept Event"}}

	collector := NewCollector(newTestClient(srv.URL), cache, testRegistry())
	batches, err := collector.Collect(context.Background(), CollectorOptions{
		Window:       aprilRange(),
		RefreshTeams: map[string]bool{"Boston Celtics": true},
	})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	if apiCalls.Load() != 1 {
		t.Errorf("API called %d times, want 1 (only the flagged team)", apiCalls.Load())
	}
	if batches[0].Events[0].Name != "Fresh Event" {
		t.Errorf("flagged team batch = %+v, want refreshed", batches[0].Events)
	}
	if batches[1].Events[0].Name != "Kept Event" {
		t.Errorf("other team batch = %+v, want cache untouched", batches[1].Events)
	}
}

func TestCollectFetchFailureYieldsEmptyBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	collector := NewCollector(newTestClient(srv.URL), newMemCache(), testRegistry())
	batches, err := collector.Collect(context.Background(), CollectorOptions{Window: aprilRange()})
	if err != nil {
		t.Fatalf("Collect should absorb per-team fetch failures, got %v", err)
	}

	if len(batches) != 2 {
		t.Fatalf("got %d batches, want 2", len(batches))
	}
	for _, b := range batches {
		if len(b.Events) != 0 {
			t.Errorf("%s batch has %d events, want 0 after fetch failure", b.Team, len(b.Events))
		}
	}
}

func TestCollectCancelledContextStopsRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, pageJSON(1, "Event"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	collector := NewCollector(newTestClient(srv.URL), newMemCache(), testRegistry())
	if _, err := collector.Collect(ctx, CollectorOptions{Window: aprilRange()}); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestFromCache(t *testing.T) {
	cache := newMemCache()
	cache.data["Boston Celtics"] = []model.RawEvent{{Name: "Cached Event", Date: "2026-04-20"}}

	batches, missing, err := FromCache(context.Background(), cache, testRegistry())
	if err != nil {
		t.Fatalf("FromCache: %v", err)
	}

	if len(batches) != 2 {
		t.Fatalf("got %d batches, want one per registry team", len(batches))
	}
	if len(batches[0].Events) != 1 {
		t.Errorf("cached team has %d events, want 1", len(batches[0].Events))
	}
	if len(batches[1].Events) != 0 {
		t.Errorf("missing team has %d events, want 0", len(batches[1].Events))
	}
	if len(missing) != 1 || missing[0] != "Atlanta Hawks" {
		t.Errorf("missing = %v, want [Atlanta Hawks]", missing)
	}
}

func TestFromCacheErrorPropagates(t *testing.T) {
	cache := newMemCache()
	cache.getErr = errors.New("redis down")

	if _, _, err := FromCache(context.Background(), cache, testRegistry()); err == nil {
		t.Fatal("expected cache error to propagate")
	}
}
