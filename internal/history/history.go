// Package history keeps a local SQLite record of submitted generation
// requests so hordectl can list and resume them.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by Get for an unknown request id.
var ErrNotFound = errors.New("history: request not found")

// Entry is one submitted request.
type Entry struct {
	ID          string
	Prompt      string
	Kudos       float64
	SubmittedAt time.Time

	// FinishedAt is zero until the request is marked finished.
	FinishedAt time.Time
	Faulted    bool
}

// Done reports whether the request was marked finished.
func (e Entry) Done() bool {
	return !e.FinishedAt.IsZero()
}

// Store is a SQLite-backed request history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Store{db: db}
	if err := s.initTables(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS requests (
			id TEXT PRIMARY KEY,
			prompt TEXT NOT NULL DEFAULT '',
			kudos REAL NOT NULL DEFAULT 0,
			submitted_at INTEGER NOT NULL,
			finished_at INTEGER NOT NULL DEFAULT 0,
			faulted INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE INDEX IF NOT EXISTS requests_submitted_at ON requests (submitted_at);`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return fmt.Errorf("initializing history: %w", err)
		}
	}
	return nil
}

// Record stores a newly submitted request. Re-recording an id replaces the
// prompt and cost but keeps its completion state.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.ID == "" {
		return errors.New("history: entry id is required")
	}
	if e.SubmittedAt.IsZero() {
		e.SubmittedAt = time.Now()
	}
	query := `INSERT INTO requests (id, prompt, kudos, submitted_at) VALUES (?, ?, ?, ?)
			  ON CONFLICT(id) DO UPDATE SET prompt = excluded.prompt, kudos = excluded.kudos;`
	_, err := s.db.ExecContext(ctx, query, e.ID, e.Prompt, e.Kudos, e.SubmittedAt.UnixMilli())
	return err
}

// MarkFinished records the final cost and outcome of a request.
func (s *Store) MarkFinished(ctx context.Context, id string, kudos float64, faulted bool) error {
	query := `UPDATE requests SET kudos = ?, finished_at = ?, faulted = ? WHERE id = ?`
	res, err := s.db.ExecContext(ctx, query, kudos, time.Now().UnixMilli(), faulted, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// Get returns one entry.
func (s *Store) Get(ctx context.Context, id string) (Entry, error) {
	query := `SELECT id, prompt, kudos, submitted_at, finished_at, faulted FROM requests WHERE id = ?`
	e, err := scanEntry(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrNotFound
	}
	return e, err
}

// List returns the most recent entries first. A limit of 0 or less returns
// everything.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `SELECT id, prompt, kudos, submitted_at, finished_at, faulted FROM requests
			  ORDER BY submitted_at DESC, id LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (Entry, error) {
	var (
		e                   Entry
		submitted, finished int64
	)
	if err := row.Scan(&e.ID, &e.Prompt, &e.Kudos, &submitted, &finished, &e.Faulted); err != nil {
		return Entry{}, err
	}
	e.SubmittedAt = time.UnixMilli(submitted)
	if finished > 0 {
		e.FinishedAt = time.UnixMilli(finished)
	}
	return e, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
