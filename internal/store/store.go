// Package store persists records in a local SQLite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"formchart/internal/models"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// ErrUnavailable is returned when the database cannot be opened or its schema
// cannot be ensured. The application must not start without storage.
var ErrUnavailable = errors.New("record store unavailable")

const schema = `CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT,
	age INTEGER,
	address TEXT,
	height REAL
)`

// Store is the durable table of records.
type Store struct {
	db   *sql.DB
	path string
}

// Open connects to the SQLite file at path, creating parent directories and
// the schema when missing.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		path = "userdata.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("%w: create dirs: %v", ErrUnavailable, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite: %v", ErrUnavailable, err)
	}
	// one connection: ":memory:" databases are per connection and there is a single writer anyway
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping: %v", ErrUnavailable, err)
	}

	s := &Store{db: db, path: path}
	if err := s.CreateSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an already opened database handle. The schema is not touched.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Path returns the database file the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// CreateSchema ensures the users table exists. It is a no-op when it does.
func (s *Store) CreateSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: create users table: %v", ErrUnavailable, err)
	}
	return nil
}

// Insert appends a record and returns the id assigned to it.
func (s *Store) Insert(ctx context.Context, name string, age int, address string, height float64) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (name, age, address, height) VALUES (?, ?, ?, ?)`,
		name, age, address, height)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert user: last id: %w", err)
	}
	return id, nil
}

// Delete removes the record with the given id. A missing id is not an error.
func (s *Store) Delete(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}

// ScanAll returns every record in insertion order.
func (s *Store) ScanAll(ctx context.Context) ([]models.Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, age, address, height FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]models.Record, 0)
	for rows.Next() {
		var (
			id      int64
			name    sql.NullString
			age     sql.NullInt64
			address sql.NullString
			height  sql.NullFloat64
		)
		if err := rows.Scan(&id, &name, &age, &address, &height); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		records = append(records, models.Record{
			ID:      id,
			Name:    name.String,
			Age:     int(age.Int64),
			Address: address.String,
			Height:  height.Float64,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return records, nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Shutdown closes the store, ignoring the error. It lets the shutdown manager
// own the store's lifetime.
func (s *Store) Shutdown() {
	_ = s.Close()
}
