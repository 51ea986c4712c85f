// Package registry holds the venue identity table: one entry per
// tracked team with the canonical arena name and its coordinates.
// Canonical venue names are the ground truth against which free-text
// venue strings from collectors are resolved.
package registry

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Venue is one registry entry. Conference is carried for the bracket
// simulator and the /teams API; it is not part of venue resolution.
type Venue struct {
	Team       string  `json:"team"`
	VenueName  string  `json:"venue"`
	Conference string  `json:"conference,omitempty"`
	Lat        float64 `json:"lat"`
	Long       float64 `json:"long"`
}

// Registry is the loaded venue table, immutable for the run.
type Registry struct {
	venues []Venue
}

// New creates a registry from an explicit venue list.
func New(venues []Venue) *Registry {
	return &Registry{venues: venues}
}

// Load reads a registry CSV with columns Team, Venue Name, Lat, Long.
// An optional Conference column is honored when present; otherwise the
// conference is filled in from the built-in table where the team is
// known. A missing required column is fatal for the run.
func Load(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening venues file %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading venues file %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("venues file %s: empty, no header row", path)
	}

	idx := make(map[string]int, len(records[0]))
	for i, col := range records[0] {
		idx[strings.TrimSpace(col)] = i
	}
	for _, col := range []string{"Team", "Venue Name", "Lat", "Long"} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("venues file %s missing required column %q", path, col)
		}
	}
	confCol, hasConf := idx["Conference"]

	defaults := make(map[string]string, len(defaultVenues))
	for _, v := range defaultVenues {
		defaults[v.Team] = v.Conference
	}

	venues := make([]Venue, 0, len(records)-1)
	for _, row := range records[1:] {
		lat, err := strconv.ParseFloat(strings.TrimSpace(row[idx["Lat"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("venues file %s: bad Lat %q: %w", path, row[idx["Lat"]], err)
		}
		long, err := strconv.ParseFloat(strings.TrimSpace(row[idx["Long"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("venues file %s: bad Long %q: %w", path, row[idx["Long"]], err)
		}

		v := Venue{
			Team:      row[idx["Team"]],
			VenueName: row[idx["Venue Name"]],
			Lat:       lat,
			Long:      long,
		}
		if hasConf {
			v.Conference = row[confCol]
		} else {
			v.Conference = defaults[v.Team]
		}
		venues = append(venues, v)
	}

	return &Registry{venues: venues}, nil
}

// Default returns the built-in 30-team registry.
func Default() *Registry {
	venues := make([]Venue, len(defaultVenues))
	copy(venues, defaultVenues)
	return &Registry{venues: venues}
}

// Venues returns all registry entries in table order.
func (r *Registry) Venues() []Venue {
	return r.venues
}

// Len returns the number of registry entries.
func (r *Registry) Len() int {
	return len(r.venues)
}

// CanonicalNames returns every venue name lowercased and trimmed, the
// form the identity resolver compares against.
func (r *Registry) CanonicalNames() []string {
	names := make([]string, 0, len(r.venues))
	for _, v := range r.venues {
		names = append(names, strings.ToLower(strings.TrimSpace(v.VenueName)))
	}
	return names
}

// ByTeam returns the entry for a team, if present.
func (r *Registry) ByTeam(team string) (Venue, bool) {
	for _, v := range r.venues {
		if v.Team == team {
			return v, true
		}
	}
	return Venue{}, false
}
