package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            SERIAL PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		is_admin      BOOLEAN NOT NULL DEFAULT FALSE,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS trains (
		id              SERIAL PRIMARY KEY,
		name            TEXT NOT NULL,
		source          TEXT NOT NULL,
		destination     TEXT NOT NULL,
		total_seats     INTEGER NOT NULL CHECK (total_seats > 0),
		available_seats INTEGER NOT NULL CHECK (available_seats >= 0 AND available_seats <= total_seats)
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id          SERIAL PRIMARY KEY,
		booking_ref TEXT NOT NULL UNIQUE,
		user_id     INTEGER NOT NULL REFERENCES users (id),
		train_id    INTEGER NOT NULL REFERENCES trains (id),
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_trains_route ON trains (source, destination)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_user ON bookings (user_id)`,
}

// Migrate ensures all required tables exist.
// Note: In production, use a proper migration tool.
func (db *DB) Migrate(ctx context.Context) error {
	log.Info().Msg("checking database schema")

	for _, stmt := range schema {
		if _, err := db.SQL.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("error applying schema: %w", err)
		}
	}

	return nil
}
