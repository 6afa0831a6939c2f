package db

import (
	"database/sql"
	"fmt"
)

// migrations is an ordered list of SQL statements to run.
// The unique indexes on users.email and amenities.name are the storage-level
// backstop for the service's check-then-act uniqueness checks, which are not
// atomic under concurrent writers.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT    PRIMARY KEY,
		first_name    TEXT    NOT NULL,
		last_name     TEXT    NOT NULL,
		email         TEXT    NOT NULL UNIQUE,
		password_hash TEXT    NOT NULL,
		is_admin      INTEGER NOT NULL DEFAULT 0,
		created_at    DATETIME NOT NULL,
		updated_at    DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS amenities (
		id         TEXT    PRIMARY KEY,
		name       TEXT    NOT NULL UNIQUE,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS places (
		id          TEXT    PRIMARY KEY,
		title       TEXT    NOT NULL,
		description TEXT    NOT NULL DEFAULT '',
		price       REAL    NOT NULL CHECK (price >= 0),
		latitude    REAL    NOT NULL CHECK (latitude >= -90 AND latitude <= 90),
		longitude   REAL    NOT NULL CHECK (longitude >= -180 AND longitude <= 180),
		owner_id    TEXT    NOT NULL REFERENCES users(id),
		created_at  DATETIME NOT NULL,
		updated_at  DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS place_amenities (
		place_id   TEXT NOT NULL REFERENCES places(id) ON DELETE CASCADE,
		amenity_id TEXT NOT NULL REFERENCES amenities(id) ON DELETE CASCADE,
		PRIMARY KEY (place_id, amenity_id)
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id         TEXT    PRIMARY KEY,
		text       TEXT    NOT NULL,
		rating     INTEGER NOT NULL CHECK (rating >= 1 AND rating <= 5),
		user_id    TEXT    NOT NULL REFERENCES users(id),
		place_id   TEXT    NOT NULL REFERENCES places(id) ON DELETE CASCADE,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_places_owner_id ON places(owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_place_id ON reviews(place_id)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_user_id ON reviews(user_id)`,
}

// migrate runs all migrations in order.
func migrate(database *sql.DB) error {
	for i, m := range migrations {
		if _, err := database.Exec(m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
