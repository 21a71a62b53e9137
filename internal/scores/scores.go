// Package scores persists skyline runs in SQLite.
// Uses the pure-Go modernc.org/sqlite driver, so no cgo is needed.
package scores

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNoStore is returned by a nil Store.
var ErrNoStore = errors.New("scores: no store")

// Run is one finished game.
type Run struct {
	ID         int64
	Distance   float64
	ShotsFired int
	Hits       int
	Duration   time.Duration
	CreatedAt  time.Time
}

// Store is a SQLite-backed run history.
type Store struct {
	db *sql.DB
}

// Open creates or opens the database at path, creating parent directories and
// the schema as needed. A leading ~ is the home directory.
func Open(path string) (*Store, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("scores: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("scores: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("scores: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("scores: cannot connect to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("scores: migration failed: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			distance REAL NOT NULL,
			shots_fired INTEGER NOT NULL DEFAULT 0,
			hits INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_distance ON runs(distance DESC);
	`)
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record saves r and returns its ID. A zero CreatedAt is set to now.
func (s *Store) Record(r Run) (int64, error) {
	if s == nil {
		return 0, ErrNoStore
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	res, err := s.db.Exec(
		`INSERT INTO runs (distance, shots_fired, hits, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		r.Distance, r.ShotsFired, r.Hits, r.Duration.Milliseconds(), r.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("scores: cannot save run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("scores: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// Best returns up to limit runs ordered by distance, longest first. Ties go
// to the earlier run. A limit of zero or less means 10.
func (s *Store) Best(limit int) ([]Run, error) {
	if s == nil {
		return nil, ErrNoStore
	}
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, distance, shots_fired, hits, duration_ms, created_at
		 FROM runs
		 ORDER BY distance DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("scores: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMS, createdMS int64
		if err := rows.Scan(&r.ID, &r.Distance, &r.ShotsFired, &r.Hits, &durationMS, &createdMS); err != nil {
			return nil, fmt.Errorf("scores: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = time.UnixMilli(createdMS)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scores: row iteration error: %w", err)
	}
	return runs, nil
}

// Count returns the number of recorded runs.
func (s *Store) Count() (int, error) {
	if s == nil {
		return 0, ErrNoStore
	}
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n); err != nil {
		return 0, fmt.Errorf("scores: cannot count runs: %w", err)
	}
	return n, nil
}
