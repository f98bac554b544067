package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// timeLayout is fixed width so started_at sorts chronologically as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Status is the outcome of a run.
type Status string

const (
	StatusOK     Status = "ok"
	StatusFailed Status = "failed"
)

// Run is one executed build or count command.
type Run struct {
	ID        string
	Command   string
	StartedAt time.Time
	Duration  time.Duration
	Books     []string
	TermCount int
	Output    string
	Status    Status
	Error     string
}

// NewRun starts a run record for command with a fresh id.
func NewRun(command string, startedAt time.Time) Run {
	return Run{
		ID:        uuid.NewString(),
		Command:   command,
		StartedAt: startedAt.UTC(),
		Status:    StatusOK,
	}
}

// Finish sets the duration and outcome of the run.
func (r *Run) Finish(now time.Time, err error) {
	r.Duration = now.Sub(r.StartedAt)
	if err != nil {
		r.Status = StatusFailed
		r.Error = err.Error()
		return
	}
	r.Status = StatusOK
	r.Error = ""
}

// Record inserts run.
func (s *Store) Record(ctx context.Context, run Run) error {
	if run.ID == "" {
		return errors.New("run id is required")
	}
	books := run.Books
	if books == nil {
		books = []string{}
	}
	booksJSON, err := json.Marshal(books)
	if err != nil {
		return fmt.Errorf("encode books: %w", err)
	}
	_, err = s.execWithRetry(ctx, `INSERT INTO runs (
		id, command, started_at, duration_ms, books_json, term_count, output_path, status, error_message
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Command,
		run.StartedAt.UTC().Format(timeLayout),
		run.Duration.Milliseconds(),
		string(booksJSON),
		run.TermCount,
		run.Output,
		string(run.Status),
		run.Error,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// List returns up to limit runs, newest first. A limit <= 0 returns all runs.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, command, started_at, duration_ms, books_json, term_count, output_path, status, error_message
		FROM runs ORDER BY started_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Get returns the run with id, or nil when it does not exist.
func (s *Store) Get(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, command, started_at, duration_ms, books_json, term_count, output_path, status, error_message
		FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// Clear deletes every run and returns how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.execWithRetry(ctx, `DELETE FROM runs`)
	if err != nil {
		return 0, fmt.Errorf("clear runs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear runs: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var (
		run        Run
		startedAt  string
		durationMS int64
		booksJSON  string
		status     string
	)
	if err := row.Scan(
		&run.ID,
		&run.Command,
		&startedAt,
		&durationMS,
		&booksJSON,
		&run.TermCount,
		&run.Output,
		&status,
		&run.Error,
	); err != nil {
		return Run{}, err
	}
	ts, err := time.Parse(timeLayout, startedAt)
	if err != nil {
		return Run{}, fmt.Errorf("parse started_at for run %s: %w", run.ID, err)
	}
	run.StartedAt = ts
	run.Duration = time.Duration(durationMS) * time.Millisecond
	run.Status = Status(status)
	if err := json.Unmarshal([]byte(booksJSON), &run.Books); err != nil {
		return Run{}, fmt.Errorf("decode books for run %s: %w", run.ID, err)
	}
	return run, nil
}
