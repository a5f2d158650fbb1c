// Package querycache persists recording lookup responses in SQLite so
// repeated and resumed sessions do not re-hit the rate-limited service.
//
// Only successful responses are cached, empty result lists included;
// transport failures always pass through uncached so a flaky call can be
// retried. The database is a disposable cache, never the source of truth.
package querycache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"tunecard/internal/musicbrainz"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS lookup_cache (
    artist     TEXT NOT NULL,
    title      TEXT NOT NULL,
    payload    TEXT NOT NULL,
    created_at TEXT NOT NULL,
    PRIMARY KEY (artist, title)
);
`

// Store manages the lookup cache backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the cache database.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the cached response for a query, if any.
func (s *Store) Get(ctx context.Context, artist, title string) ([]musicbrainz.Recording, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM lookup_cache WHERE artist = ? AND title = ?`,
		cacheKeyPart(artist), cacheKeyPart(title),
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query cache: %w", err)
	}

	var recordings []musicbrainz.Recording
	if err := json.Unmarshal([]byte(payload), &recordings); err != nil {
		return nil, false, fmt.Errorf("decode cached payload: %w", err)
	}
	return recordings, true, nil
}

// Put stores the response for a query, replacing any previous value.
func (s *Store) Put(ctx context.Context, artist, title string, recordings []musicbrainz.Recording) error {
	if recordings == nil {
		recordings = []musicbrainz.Recording{}
	}
	payload, err := json.Marshal(recordings)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO lookup_cache (artist, title, payload, created_at)
         VALUES (?, ?, ?, ?)
         ON CONFLICT (artist, title) DO UPDATE SET payload = excluded.payload, created_at = excluded.created_at`,
		cacheKeyPart(artist), cacheKeyPart(title), string(payload), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("store cache entry: %w", err)
	}
	return nil
}

// Count returns the number of cached queries.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM lookup_cache`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count cache entries: %w", err)
	}
	return count, nil
}

// Clear removes every cached query.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM lookup_cache`); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}

// Path returns the database location.
func (s *Store) Path() string {
	return s.path
}

func cacheKeyPart(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
