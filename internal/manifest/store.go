package manifest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store manages the cache manifest backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the manifest database and applies migrations.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, errors.New("manifest path required")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create manifest directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database location.
func (s *Store) Path() string { return s.path }

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// BeginRun records the start of a pipeline run and returns its identifier.
func (s *Store) BeginRun(ctx context.Context, pipeline string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, pipeline, status, started_at) VALUES (?, ?, ?, ?)`,
		id, pipeline, RunRunning, formatTime(time.Now()),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return id, nil
}

// FinishRun marks runID as succeeded, or failed with runErr's message.
func (s *Store) FinishRun(ctx context.Context, runID string, runErr error) error {
	status := RunSucceeded
	var message any
	if runErr != nil {
		status = RunFailed
		message = runErr.Error()
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET status = ?, error = ?, finished_at = ? WHERE id = ?`,
		status, message, formatTime(time.Now()), runID,
	)
	if err != nil {
		return fmt.Errorf("update run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("run %q not found", runID)
	}
	return nil
}

// RecordEntry inserts or replaces the entry stored at entry.Path.
func (s *Store) RecordEntry(ctx context.Context, entry Entry) error {
	if strings.TrimSpace(entry.Path) == "" {
		return errors.New("manifest entry path required")
	}
	if entry.WrittenAt.IsZero() {
		entry.WrittenAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO entries (path, kind, target, language, bytes, sha256, run_id, written_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT(path) DO UPDATE SET
            kind = excluded.kind,
            target = excluded.target,
            language = excluded.language,
            bytes = excluded.bytes,
            sha256 = excluded.sha256,
            run_id = excluded.run_id,
            written_at = excluded.written_at`,
		entry.Path, entry.Kind, entry.Target, entry.Language, entry.Bytes, entry.SHA256, entry.RunID, formatTime(entry.WrittenAt),
	)
	if err != nil {
		return fmt.Errorf("record entry %s: %w", entry.Path, err)
	}
	return nil
}

// ListEntries returns every entry ordered by kind, target and language.
func (s *Store) ListEntries(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT path, kind, target, language, bytes, sha256, run_id, written_at
         FROM entries ORDER BY kind, target, language, path`)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry     Entry
			writtenAt string
		)
		if err := rows.Scan(&entry.Path, &entry.Kind, &entry.Target, &entry.Language, &entry.Bytes, &entry.SHA256, &entry.RunID, &writtenAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entry.WrittenAt = parseTime(writtenAt)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

// ListRuns returns the most recent runs, newest first. limit <= 0 returns all.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, pipeline, status, error, started_at, finished_at FROM runs ORDER BY started_at DESC, rowid DESC`
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
		var (
			run        Run
			message    sql.NullString
			startedAt  string
			finishedAt sql.NullString
		)
		if err := rows.Scan(&run.ID, &run.Pipeline, &run.Status, &message, &startedAt, &finishedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.Error = message.String
		run.StartedAt = parseTime(startedAt)
		if finishedAt.Valid {
			run.FinishedAt = parseTime(finishedAt.String)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// timeLayout is fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(value string) time.Time {
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
