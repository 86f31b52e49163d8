// Package cache persists API responses in a SQLite database so repeated
// runs do not hit the collection API for searches and records they have
// already seen.
//
//	store, err := cache.Open("responses.db", 24*time.Hour)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	client := http.NewClient(userAgent, timeout).WithCache(store)
package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver registration
)

const responsesTable = `
  CREATE TABLE IF NOT EXISTS responses (
      hash TEXT PRIMARY KEY,
      body BLOB NOT NULL,
      expiry INT NOT NULL
  )
`

// Store is a SQLite backed response cache. Entries expire ttl after they
// were written.
type Store struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

// Open opens or creates the cache database at path and drops expired entries.
func Open(path string, ttl time.Duration) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	if _, err := db.Exec(responsesTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache table: %w", err)
	}

	store := &Store{db: db, ttl: ttl, now: time.Now}
	if err := store.DeleteExpired(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

// Get returns the cached body for key if it exists and has not expired.
func (s *Store) Get(key string) ([]byte, bool) {
	row := s.db.QueryRow(
		"SELECT body FROM responses WHERE hash = ? AND expiry >= ?",
		key, s.now().Unix(),
	)

	var body []byte
	if err := row.Scan(&body); err != nil {
		return nil, false
	}
	return body, true
}

// Put stores body under key, replacing any previous entry.
func (s *Store) Put(key string, body []byte) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO responses (hash, body, expiry) VALUES (?, ?, ?)",
		key, body, s.now().Add(s.ttl).Unix(),
	)
	if err != nil {
		return fmt.Errorf("storing cached response: %w", err)
	}
	return nil
}

// DeleteExpired removes every entry whose expiry has passed.
func (s *Store) DeleteExpired() error {
	if _, err := s.db.Exec("DELETE FROM responses WHERE expiry < ?", s.now().Unix()); err != nil {
		return fmt.Errorf("purging cache: %w", err)
	}
	return nil
}

// Len returns the number of stored entries, expired or not.
func (s *Store) Len() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM responses").Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return n, err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
