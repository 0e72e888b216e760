package repository

import (
	"context"
	"fmt"

	"movie-review/pkg/database"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL UNIQUE,
		password   TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id         TEXT PRIMARY KEY,
		movie_id   TEXT NOT NULL,
		user_id    TEXT NOT NULL,
		user_name  TEXT NOT NULL,
		rating     SMALLINT NOT NULL CHECK (rating BETWEEN 1 AND 5),
		body       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_movie_created_id ON reviews (movie_id, created_at DESC, id COLLATE "C" DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_user_created_id ON reviews (user_id, created_at DESC, id COLLATE "C" DESC)`,
}

// EnsureSchema creates the users and reviews tables when missing.
func EnsureSchema(ctx context.Context, db database.PgxIface) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("exec schema statement: %w", err)
		}
	}
	return nil
}
