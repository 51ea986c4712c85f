package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/roguetex/courtside/internal/model"
)

// Slug turns a team name into its cache key: spaces become
// underscores ("Oklahoma City Thunder" -> "Oklahoma_City_Thunder").
// The slug is deterministic; it names both cache files and Redis keys.
func Slug(team string) string {
	return strings.ReplaceAll(team, " ", "_")
}

// FileCache keeps one JSON file per team under a cache directory,
// matching the raw per-venue cache artifact layout.
type FileCache struct {
	dir string
}

// NewFileCache creates the cache directory if needed.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir %s: %w", dir, err)
	}
	return &FileCache{dir: dir}, nil
}

// Path returns the cache file path for a team.
func (fc *FileCache) Path(team string) string {
	return filepath.Join(fc.dir, Slug(team)+".json")
}

// Get loads a team's cached batch. A missing file means the team has
// no cached source; ok is false and err is nil.
func (fc *FileCache) Get(_ context.Context, team string) ([]model.RawEvent, bool, error) {
	data, err := os.ReadFile(fc.Path(team))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cache for %s: %w", team, err)
	}

	var events []model.RawEvent
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, false, fmt.Errorf("decoding cache for %s: %w", team, err)
	}
	return events, true, nil
}

// Put writes a team's batch to its cache file.
func (fc *FileCache) Put(_ context.Context, team string, events []model.RawEvent) error {
	data, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("encoding cache for %s: %w", team, err)
	}
	if err := os.WriteFile(fc.Path(team), data, 0o644); err != nil {
		return fmt.Errorf("writing cache for %s: %w", team, err)
	}
	return nil
}
