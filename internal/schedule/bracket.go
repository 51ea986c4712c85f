// Package schedule simulates a playoff bracket over the canonical
// event data. It is a naive next-available-date stepper: each game
// takes the first open calendar slot at the series venue, with a
// minimum rest gap between games. No optimality is claimed or sought.
package schedule

import (
	"time"
)

const gamesPerSeries = 7

// Series is one best-of-seven matchup with its provisional dates.
type Series struct {
	Round string    `json:"round"`
	Teams [2]string `json:"teams"`
	Dates []string  `json:"dates"`
}

// Bracket groups the simulated rounds per conference plus the finals.
type Bracket struct {
	East   [][]Series `json:"east"`
	West   [][]Series `json:"west"`
	Finals *Series    `json:"finals"`
}

// Result is the full simulation output: the flat schedule in
// generation order and the bracket view of the same series.
type Result struct {
	Schedule []Series `json:"schedule"`
	Bracket  Bracket  `json:"bracket"`
}

// conference rounds in order, with the team count entering each.
var rounds = []struct {
	name  string
	teams int
}{
	{"Quarterfinals", 8},
	{"Semifinals", 4},
	{"Conference Finals", 2},
}

// Generate simulates the bracket for the given seed orders. busyDates
// maps a team to the YYYY-MM-DD dates its arena is already booked;
// teams absent from the map are treated as always available. Higher
// seeds advance every round, and every series books all seven dates at
// the higher seed's arena.
func Generate(eastTeams, westTeams []string, busyDates map[string][]string, minDaysBetween int, start time.Time) *Result {
	if minDaysBetween < 1 {
		minDaysBetween = 1
	}

	busy := make(map[string]map[string]bool, len(busyDates))
	for team, dates := range busyDates {
		set := make(map[string]bool, len(dates))
		for _, d := range dates {
			set[d] = true
		}
		busy[team] = set
	}

	result := &Result{}
	var lastEnd time.Time

	for _, conf := range []struct {
		name  string
		teams []string
	}{{"East", eastTeams}, {"West", westTeams}} {
		roundTeams := append([]string(nil), conf.teams...)
		roundStart := start
		var confRounds [][]Series

		for _, rnd := range rounds {
			pairs := rnd.teams / 2
			if pairs > len(roundTeams)/2 {
				pairs = len(roundTeams) / 2
			}
			if pairs == 0 {
				break
			}

			var rndSeries []Series
			var d time.Time
			for i := 0; i < pairs; i++ {
				high := roundTeams[i]
				low := roundTeams[len(roundTeams)-1-i]

				series := Series{Round: rnd.name, Teams: [2]string{high, low}}
				series.Dates, d = bookSeries(busy[high], roundStart, minDaysBetween)
				rndSeries = append(rndSeries, series)
				result.Schedule = append(result.Schedule, series)
			}

			// Higher seeds advance.
			winners := make([]string, 0, pairs)
			for i := 0; i < pairs; i++ {
				winners = append(winners, roundTeams[i])
			}
			roundTeams = winners
			roundStart = d
			confRounds = append(confRounds, rndSeries)
		}

		if conf.name == "East" {
			result.Bracket.East = confRounds
		} else {
			result.Bracket.West = confRounds
		}
		if roundStart.After(lastEnd) {
			lastEnd = roundStart
		}
	}

	// Finals at the East champion's arena.
	if len(eastTeams) > 0 && len(westTeams) > 0 {
		finals := Series{Round: "NBA Finals", Teams: [2]string{eastTeams[0], westTeams[0]}}
		finals.Dates, _ = bookSeries(busy[eastTeams[0]], lastEnd, minDaysBetween)
		result.Schedule = append(result.Schedule, finals)
		result.Bracket.Finals = &finals
	}

	return result
}

// bookSeries picks seven dates starting at or after from, skipping
// days the arena is busy and spacing games by minDaysBetween. Returns
// the dates and the cursor after the last game.
func bookSeries(arenaBusy map[string]bool, from time.Time, minDaysBetween int) ([]string, time.Time) {
	dates := make([]string, 0, gamesPerSeries)
	d := from
	for g := 0; g < gamesPerSeries; g++ {
		d = nextAvailable(arenaBusy, d)
		dates = append(dates, d.Format("2006-01-02"))
		d = d.AddDate(0, 0, minDaysBetween)
	}
	return dates, d
}

func nextAvailable(arenaBusy map[string]bool, after time.Time) time.Time {
	d := after
	for arenaBusy[d.Format("2006-01-02")] {
		d = d.AddDate(0, 0, 1)
	}
	return d
}
