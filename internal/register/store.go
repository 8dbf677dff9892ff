// Package register persists the firm's gifts & hospitality register in
// SQLite and produces the summaries and exports the compliance
// dashboard needs.
package register

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/regbook/regbook/internal/model"
)

// ErrNotFound is returned when an entry ID does not exist.
var ErrNotFound = errors.New("register: entry not found")

// Store is a SQLite-backed gifts & hospitality register.
type Store struct {
	db *sql.DB
}

// Open creates or opens the register database and applies the schema.
// Use ":memory:" for tests.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, fmt.Errorf("register: create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("register: open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("register: ping database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("register: init schema: %w", err)
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS entries (
			id            TEXT PRIMARY KEY,
			kind          TEXT NOT NULL,
			direction     TEXT NOT NULL,
			description   TEXT NOT NULL,
			counterparty  TEXT NOT NULL,
			employee      TEXT NOT NULL,
			value_pence   INTEGER NOT NULL,
			status        TEXT NOT NULL,
			approver      TEXT NOT NULL DEFAULT '',
			conflict_flag INTEGER NOT NULL DEFAULT 0,
			occurred_at   TEXT NOT NULL,
			recorded_at   TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_entries_status ON entries(status);
		CREATE INDEX IF NOT EXISTS idx_entries_kind ON entries(kind);
	`)
	return err
}

// Add inserts a new entry. A missing ID is assigned, a missing status
// defaults to pending, and RecordedAt is stamped.
func (s *Store) Add(ctx context.Context, e model.RegisterEntry) (model.RegisterEntry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Status == "" {
		e.Status = model.StatusPending
	}
	if !model.ValidEntryStatus(e.Status) {
		return model.RegisterEntry{}, fmt.Errorf("register: invalid status %q", e.Status)
	}
	e.RecordedAt = time.Now().UTC()
	if e.OccurredAt.IsZero() {
		e.OccurredAt = e.RecordedAt
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (id, kind, direction, description, counterparty, employee,
			value_pence, status, approver, conflict_flag, occurred_at, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, string(e.Kind), string(e.Direction), e.Description, e.Counterparty, e.Employee,
		e.ValuePence, string(e.Status), e.Approver, boolToInt(e.ConflictFlag),
		e.OccurredAt.Format(time.RFC3339), e.RecordedAt.Format(time.RFC3339))
	if err != nil {
		return model.RegisterEntry{}, fmt.Errorf("register: insert: %w", err)
	}
	return e, nil
}

// Get returns one entry by ID.
func (s *Store) Get(ctx context.Context, id string) (model.RegisterEntry, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.RegisterEntry{}, ErrNotFound
	}
	return e, err
}

// Filter narrows List output. Zero values mean "any".
type Filter struct {
	Kind     model.EntryKind
	Status   model.EntryStatus
	Employee string
}

// List returns entries matching the filter, most recently recorded first.
func (s *Store) List(ctx context.Context, f Filter) ([]model.RegisterEntry, error) {
	query := selectColumns + ` WHERE 1=1`
	var args []any
	if f.Kind != "" {
		query += ` AND kind = ?`
		args = append(args, string(f.Kind))
	}
	if f.Status != "" {
		query += ` AND status = ?`
		args = append(args, string(f.Status))
	}
	if f.Employee != "" {
		query += ` AND employee = ?`
		args = append(args, f.Employee)
	}
	query += ` ORDER BY recorded_at DESC, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("register: list: %w", err)
	}
	defer rows.Close()

	var out []model.RegisterEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// SetStatus transitions an entry's approval state and records the approver.
func (s *Store) SetStatus(ctx context.Context, id string, status model.EntryStatus, approver string) error {
	if !model.ValidEntryStatus(status) {
		return fmt.Errorf("register: invalid status %q", status)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE entries SET status = ?, approver = ? WHERE id = ?`,
		string(status), approver, id)
	if err != nil {
		return fmt.Errorf("register: update status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an entry.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("register: delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

const selectColumns = `
	SELECT id, kind, direction, description, counterparty, employee,
		value_pence, status, approver, conflict_flag, occurred_at, recorded_at
	FROM entries`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(r rowScanner) (model.RegisterEntry, error) {
	var e model.RegisterEntry
	var kind, direction, status, occurred, recorded string
	var conflict int
	err := r.Scan(&e.ID, &kind, &direction, &e.Description, &e.Counterparty, &e.Employee,
		&e.ValuePence, &status, &e.Approver, &conflict, &occurred, &recorded)
	if err != nil {
		return model.RegisterEntry{}, err
	}
	e.Kind = model.EntryKind(kind)
	e.Direction = model.EntryDirection(direction)
	e.Status = model.EntryStatus(status)
	e.ConflictFlag = conflict != 0
	if e.OccurredAt, err = time.Parse(time.RFC3339, occurred); err != nil {
		return model.RegisterEntry{}, fmt.Errorf("register: parse occurred_at: %w", err)
	}
	if e.RecordedAt, err = time.Parse(time.RFC3339, recorded); err != nil {
		return model.RegisterEntry{}, fmt.Errorf("register: parse recorded_at: %w", err)
	}
	return e, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
