// Package casestore persists recorded cases in a SQLite database.
package casestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/nomagicln/propverify/pkg/testcase"
)

// MemoryPath opens a store that lives only as long as the process.
const MemoryPath = ":memory:"

// CaseNotFoundError is returned when no case matches an ID.
type CaseNotFoundError struct {
	ID string
}

func (e *CaseNotFoundError) Error() string {
	return fmt.Sprintf("case %q not found", e.ID)
}

// AmbiguousIDError is returned when an ID prefix matches several cases.
type AmbiguousIDError struct {
	Prefix  string
	Matches []string
}

func (e *AmbiguousIDError) Error() string {
	return fmt.Sprintf("case id %q is ambiguous: matches %s", e.Prefix, strings.Join(e.Matches, ", "))
}

// Filter selects cases in List.
type Filter struct {
	Property string
	Outcome  testcase.Outcome
	Limit    int
}

// Store holds recorded cases. It is safe for concurrent use.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

const schema = `
	CREATE TABLE IF NOT EXISTS cases (
		id         TEXT PRIMARY KEY,
		property   TEXT NOT NULL,
		outcome    TEXT NOT NULL,
		message    TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS cases_property ON cases(property);
	CREATE TABLE IF NOT EXISTS objects (
		case_id TEXT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
		seq     INTEGER NOT NULL,
		name    TEXT NOT NULL,
		bytes   BLOB NOT NULL,
		PRIMARY KEY (case_id, seq)
	);
`

// Open opens or creates the store at path. Use MemoryPath for a store that is
// never written to disk.
func Open(path string) (*Store, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	// A memory database exists per connection, and SQLite has one writer anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create case tables: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveCase inserts c, replacing any case with the same ID.
func (s *Store) SaveCase(ctx context.Context, c *testcase.Case) error {
	if err := testcase.Validate(c); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM cases WHERE id = ?", c.ID); err != nil {
		return fmt.Errorf("failed to replace case: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		"INSERT INTO cases (id, property, outcome, message, created_at) VALUES (?, ?, ?, ?, ?)",
		c.ID, c.Property, string(c.Outcome), c.Message, c.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to insert case: %w", err)
	}
	for i, o := range c.Objects {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO objects (case_id, seq, name, bytes) VALUES (?, ?, ?, ?)",
			c.ID, i, o.Name, []byte(o.Bytes))
		if err != nil {
			return fmt.Errorf("failed to insert object %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit case: %w", err)
	}
	return nil
}

// Get returns the case whose ID is id or starts with it.
func (s *Store) Get(ctx context.Context, id string) (*testcase.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fullID, err := s.resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		"SELECT id, property, outcome, message, created_at FROM cases WHERE id = ?", fullID)
	c, err := scanCase(row)
	if err != nil {
		return nil, err
	}
	if err := s.loadObjects(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Store) resolve(ctx context.Context, prefix string) (string, error) {
	if prefix == "" {
		return "", &CaseNotFoundError{ID: prefix}
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT id FROM cases WHERE substr(id, 1, ?) = ? ORDER BY id LIMIT 5", len(prefix), prefix)
	if err != nil {
		return "", fmt.Errorf("failed to look up case: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("failed to scan row: %w", err)
		}
		if id == prefix {
			return id, nil
		}
		matches = append(matches, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("row iteration error: %w", err)
	}

	switch len(matches) {
	case 0:
		return "", &CaseNotFoundError{ID: prefix}
	case 1:
		return matches[0], nil
	default:
		return "", &AmbiguousIDError{Prefix: prefix, Matches: matches}
	}
}

// List returns the cases matching f, newest first.
func (s *Store) List(ctx context.Context, f Filter) ([]*testcase.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := "SELECT id, property, outcome, message, created_at FROM cases"
	var where []string
	var args []any
	if f.Property != "" {
		where = append(where, "property = ?")
		args = append(args, f.Property)
	}
	if f.Outcome != "" {
		where = append(where, "outcome = ?")
		args = append(args, string(f.Outcome))
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	var cases []*testcase.Case
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			_ = rows.Close()
			return nil, err
		}
		cases = append(cases, c)
	}
	err = rows.Err()
	_ = rows.Close()
	if err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	for _, c := range cases {
		if err := s.loadObjects(ctx, c); err != nil {
			return nil, err
		}
	}
	return cases, nil
}

// Delete removes the case whose ID is id or starts with it.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fullID, err := s.resolve(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM cases WHERE id = ?", fullID); err != nil {
		return fmt.Errorf("failed to delete case: %w", err)
	}
	return nil
}

// DeleteProperty removes every case of a property and returns how many there were.
func (s *Store) DeleteProperty(ctx context.Context, property string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM cases WHERE property = ?", property)
	if err != nil {
		return 0, fmt.Errorf("failed to delete cases: %w", err)
	}
	return res.RowsAffected()
}

// IDs returns every stored case ID.
func (s *Store) IDs(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT id FROM cases ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list case ids: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return ids, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCase(row scanner) (*testcase.Case, error) {
	var c testcase.Case
	var outcome, created string
	if err := row.Scan(&c.ID, &c.Property, &outcome, &c.Message, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &CaseNotFoundError{ID: c.ID}
		}
		return nil, fmt.Errorf("failed to scan case: %w", err)
	}
	c.Outcome = testcase.Outcome(outcome)
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return nil, fmt.Errorf("case %s has invalid timestamp %q: %w", c.ID, created, err)
	}
	c.CreatedAt = t
	return &c, nil
}

func (s *Store) loadObjects(ctx context.Context, c *testcase.Case) error {
	rows, err := s.db.QueryContext(ctx, "SELECT name, bytes FROM objects WHERE case_id = ? ORDER BY seq", c.ID)
	if err != nil {
		return fmt.Errorf("failed to load objects of %s: %w", c.ID, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var o testcase.Object
		var b []byte
		if err := rows.Scan(&o.Name, &b); err != nil {
			return fmt.Errorf("failed to scan row: %w", err)
		}
		o.Bytes = testcase.HexBytes(b)
		c.Objects = append(c.Objects, o)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("row iteration error: %w", err)
	}
	return nil
}
