// Package store persists the canonical event dataset to Postgres for
// the backend service. The file pipeline works without it; the store
// exists so the REST API can serve events and busy dates without
// re-reading CSV artifacts.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// Database wraps the Postgres connection for the event store.
type Database struct {
	conn *sql.DB
}

// NewDatabase opens and verifies a Postgres connection.
func NewDatabase(dsn string) (*Database, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{conn: db}, nil
}

// Close closes the database connection.
func (db *Database) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// DB returns the underlying *sql.DB for queries.
func (db *Database) DB() *sql.DB {
	return db.conn
}

// migrations for the event store, applied in order and tracked in
// schema_migrations.
var migrations = []struct {
	version string
	sql     string
}{
	{
		version: "001_create_events",
		sql: `
			CREATE TABLE IF NOT EXISTS events (
				id         SERIAL PRIMARY KEY,
				name       TEXT NOT NULL,
				event_date DATE NOT NULL,
				event_time TEXT NOT NULL DEFAULT '',
				venue      TEXT NOT NULL,
				team       TEXT NOT NULL,
				source     TEXT NOT NULL DEFAULT 'api',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`,
	},
	{
		version: "002_events_indexes",
		sql: `
			CREATE INDEX IF NOT EXISTS idx_events_date_venue ON events (event_date, venue);
			CREATE INDEX IF NOT EXISTS idx_events_team ON events (team)
		`,
	},
}

// RunMigrations applies any pending migrations.
func (db *Database) RunMigrations() error {
	log.Println("Running database migrations...")

	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	for _, m := range migrations {
		if err := db.runMigration(m.version, m.sql); err != nil {
			return fmt.Errorf("failed to run migration %s: %w", m.version, err)
		}
	}

	log.Println("All migrations completed")
	return nil
}

func (db *Database) runMigration(version, query string) error {
	var exists bool
	err := db.conn.QueryRow("SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)", version).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		log.Printf("  skipping %s (already applied)", version)
		return nil
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(query); err != nil {
		return fmt.Errorf("failed to execute migration: %w", err)
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES ($1)", version); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	log.Printf("  applied %s", version)
	return nil
}

// HealthCheck pings the database with a short timeout.
func (db *Database) HealthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return db.conn.PingContext(ctx)
}
