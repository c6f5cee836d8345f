package history

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hupe1980/sortdist"
)

//go:embed schema.sql
var schemaSQL string

// Entry is one recorded input.
type Entry struct {
	ID         int64
	RunID      string
	Input      string
	Kernel     string
	Records    int
	Distance   int64
	Elapsed    time.Duration
	Error      string
	RecordedAt time.Time
}

// OK reports whether the input was processed successfully.
func (e Entry) OK() bool { return e.Error == "" }

// Filter narrows List results. Zero values match everything.
type Filter struct {
	RunID string
	Input string
	// Limit caps the number of entries. 0 means no limit.
	Limit int
}

// Store provides durable storage for run history.
// Uses SQLite with WAL mode for concurrent read access.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithNow replaces time.Now for the recorded_at column.
func WithNow(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Open creates or opens a SQLite database at the given path.
// Applies required pragmas and the schema automatically.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode
//   - 5-second busy timeout for lock contention
func Open(path string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// Record stores the outcome of one input.
func (s *Store) Record(ctx context.Context, r sortdist.Result) error {
	var errText string
	if r.Err != nil {
		errText = r.Err.Error()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (run_id, input, kernel, records, distance, elapsed_ns, error, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Name, r.Kernel.String(), r.Records, r.Distance,
		r.Elapsed.Nanoseconds(), errText, s.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to record %s: %w", r.Name, err)
	}
	return nil
}

// List returns matching entries, newest first.
func (s *Store) List(ctx context.Context, f Filter) ([]Entry, error) {
	var (
		where []string
		args  []any
	)
	if f.RunID != "" {
		where = append(where, "run_id = ?")
		args = append(args, f.RunID)
	}
	if f.Input != "" {
		where = append(where, "input = ?")
		args = append(args, f.Input)
	}

	query := `SELECT id, run_id, input, kernel, records, distance, elapsed_ns, error, recorded_at FROM runs`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY recorded_at DESC, id DESC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e         Entry
			elapsedNS int64
			at        int64
		)
		if err := rows.Scan(&e.ID, &e.RunID, &e.Input, &e.Kernel, &e.Records, &e.Distance, &elapsedNS, &e.Error, &at); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		e.Elapsed = time.Duration(elapsedNS)
		e.RecordedAt = time.UnixMilli(at).UTC()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
