package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/akashgh003/gen-ai-asgn/internal/db"
)

// Theme values stored under KeyTheme.
const (
	KeyTheme   = "theme"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Store manages persistence of per-client preferences.
type Store struct {
	db *db.DB
}

// NewStore creates a new preferences store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Get returns the value stored under key for client. ok is false when
// nothing is stored.
func (s *Store) Get(ctx context.Context, client, key string) (value string, ok bool, err error) {
	err = s.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE client_id = ? AND key = ?`, client, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("getting preference %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key for client, replacing any previous value.
func (s *Store) Set(ctx context.Context, client, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO preferences (client_id, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(client_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		client, key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("setting preference %s: %w", key, err)
	}
	return nil
}

// Theme returns the stored theme, or "" when the client never chose one.
func (s *Store) Theme(ctx context.Context, client string) (string, error) {
	theme, _, err := s.Get(ctx, client, KeyTheme)
	return theme, err
}

// ToggleTheme flips the client's theme and returns the stored result.
func (s *Store) ToggleTheme(ctx context.Context, client string) (string, error) {
	current, err := s.Theme(ctx, client)
	if err != nil {
		return "", err
	}
	next := NextTheme(current)
	if err := s.Set(ctx, client, KeyTheme, next); err != nil {
		return "", err
	}
	return next, nil
}

// NextTheme returns the theme after a toggle. Only "light" turns dark;
// anything else, including no theme at all, turns light.
func NextTheme(current string) string {
	if current == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}
