// Package kv provides the durable key-value storage backing the seen and
// notification-dedup ledgers.
package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"
)

// ErrKeyNotFound is returned when a key has never been set.
var ErrKeyNotFound = errors.New("key not found")

// Repository provides methods to interact with the kv_entries table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new key-value repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the kv_entries table if it does not exist yet.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS kv_entries (
		    "key"      TEXT PRIMARY KEY,
		    value      TEXT NOT NULL,
		    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
    `

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create kv_entries table: %w", err)
	}

	return nil
}

// Get retrieves the value stored under key.
func (r *Repository) Get(ctx context.Context, key string) (string, error) {
	query := `
		SELECT value
		FROM kv_entries
		WHERE "key" = $1;
    `

	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrKeyNotFound
		}

		return "", fmt.Errorf("failed to get value for %q: %w", key, err)
	}

	return value, nil
}

// Set stores value under key, overwriting any prior value.
func (r *Repository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_entries ("key", value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT ("key") DO UPDATE
		SET value = EXCLUDED.value, updated_at = now();
    `

	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set value for %q: %w", key, err)
	}

	return nil
}
