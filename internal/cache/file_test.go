package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/roguetex/courtside/internal/model"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		team string
		want string
	}{
		{"Boston Celtics", "Boston_Celtics"},
		{"Oklahoma City Thunder", "Oklahoma_City_Thunder"},
		{"LA Clippers", "LA_Clippers"},
		{"NoSpaces", "NoSpaces"},
	}
	for _, tt := range tests {
		if got := Slug(tt.team); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.team, got, tt.want)
		}
	}
}

func TestFileCacheRoundtrip(t *testing.T) {
	fc, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	ctx := context.Background()

	events := []model.RawEvent{
		{Name: "Boston Celtics vs New York Knicks", Date: "2026-04-20", Time: "19:30:00", Venue: "TD Garden"},
		{Name: "Concert", Date: "2026-04-22", Venue: "TD Garden"},
	}
	if err := fc.Put(ctx, "Boston Celtics", events); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := fc.Get(ctx, "Boston Celtics")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("Get ok = false after Put")
	}
	if len(got) != 2 || got[0] != events[0] || got[1] != events[1] {
		t.Errorf("Get = %+v, want %+v", got, events)
	}
}

func TestFileCacheMissingTeam(t *testing.T) {
	fc, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	got, ok, err := fc.Get(context.Background(), "Utah Jazz")
	if err != nil {
		t.Fatalf("Get for missing team should not error, got %v", err)
	}
	if ok {
		t.Error("Get ok = true for team never cached")
	}
	if got != nil {
		t.Errorf("Get = %+v for missing team, want nil", got)
	}
}

func TestFileCacheCorruptFile(t *testing.T) {
	dir := t.TempDir()
	fc, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Utah_Jazz.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := fc.Get(context.Background(), "Utah Jazz"); err == nil {
		t.Error("expected decode error for corrupt cache file")
	}
}

func TestFileCachePath(t *testing.T) {
	fc, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	if got := filepath.Base(fc.Path("Golden State Warriors")); got != "Golden_State_Warriors.json" {
		t.Errorf("Path basename = %q, want Golden_State_Warriors.json", got)
	}
}
