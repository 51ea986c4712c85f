package store

import (
	"context"
	"fmt"

	"github.com/roguetex/courtside/internal/model"
)

// ReplaceEvents swaps the stored canonical dataset for a new one in a
// single transaction. The table is never left partially written: on
// any failure the previous dataset stays intact.
func (db *Database) ReplaceEvents(ctx context.Context, events []model.Event) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace events: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM events"); err != nil {
		return fmt.Errorf("clearing events: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO events (name, event_date, event_time, venue, team, source)
		VALUES ($1, $2, $3, $4, $5, $6)
	`)
	if err != nil {
		return fmt.Errorf("preparing event insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range events {
		if _, err := stmt.ExecContext(ctx, e.Name, e.Date, e.Time, e.Venue, e.Team, string(e.Source)); err != nil {
			return fmt.Errorf("inserting event %q: %w", e.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace events: %w", err)
	}
	return nil
}

// EventsByVenue returns stored events whose venue contains the given
// name, case-insensitively, ordered by (date, venue).
func (db *Database) EventsByVenue(ctx context.Context, venue string) ([]model.Event, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT name, event_date, event_time, venue, team, source
		FROM events
		WHERE venue ILIKE '%' || $1 || '%'
		ORDER BY event_date, venue
	`, venue)
	if err != nil {
		return nil, fmt.Errorf("querying events for venue %q: %w", venue, err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// EventsByTeam returns stored events for a team, ordered by (date, venue).
func (db *Database) EventsByTeam(ctx context.Context, team string) ([]model.Event, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT name, event_date, event_time, venue, team, source
		FROM events
		WHERE team = $1
		ORDER BY event_date, venue
	`, team)
	if err != nil {
		return nil, fmt.Errorf("querying events for team %q: %w", team, err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// BusyDates returns the distinct YYYY-MM-DD dates on which a team's
// arena already has an event. The bracket simulator treats these as
// unavailable slots.
func (db *Database) BusyDates(ctx context.Context, team string) ([]string, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT DISTINCT to_char(event_date, 'YYYY-MM-DD')
		FROM events
		WHERE team = $1
		ORDER BY 1
	`, team)
	if err != nil {
		return nil, fmt.Errorf("querying busy dates for %q: %w", team, err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// CountByTeam tallies stored events per team.
func (db *Database) CountByTeam(ctx context.Context) (map[string]int, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT team, COUNT(*) FROM events GROUP BY team`)
	if err != nil {
		return nil, fmt.Errorf("counting events by team: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var team string
		var n int
		if err := rows.Scan(&team, &n); err != nil {
			return nil, err
		}
		counts[team] = n
	}
	return counts, rows.Err()
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanEvents(rows rowScanner) ([]model.Event, error) {
	var events []model.Event
	for rows.Next() {
		var e model.Event
		var source string
		if err := rows.Scan(&e.Name, &e.Date, &e.Time, &e.Venue, &e.Team, &source); err != nil {
			return nil, err
		}
		e.Source = model.Source(source)
		events = append(events, e)
	}
	return events, rows.Err()
}
