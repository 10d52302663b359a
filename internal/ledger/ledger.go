// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ledger records conversion runs in a local SQLite database so
// past batches can be inspected after the console output is gone.
package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jhruska/idconvert/pkg/types"
)

// Ledger is the run-history database.
type Ledger struct {
	db *sql.DB
}

// Open opens or creates the ledger database at path and ensures the
// schema exists.
func Open(path string) (*Ledger, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}

	l := &Ledger{db: db}
	if err := l.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating ledger schema: %w", err)
	}
	return l, nil
}

// Close releases the database connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}

func (l *Ledger) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at TEXT NOT NULL,
			input_dir TEXT NOT NULL,
			merge_dir TEXT,
			merge_ids INTEGER NOT NULL,
			converted INTEGER NOT NULL,
			skipped INTEGER NOT NULL,
			failed INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS run_files (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			name TEXT NOT NULL,
			status TEXT NOT NULL,
			ids INTEGER NOT NULL,
			detail TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_files_run_id ON run_files(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := l.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores a finished run and its per-file outcomes. It returns the
// new run's ID.
func (l *Ledger) Record(ctx context.Context, report types.RunReport) (int64, error) {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (started_at, input_dir, merge_dir, merge_ids, converted, skipped, failed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		report.StartedAt.UTC().Format(time.RFC3339),
		report.InputDir, report.MergeDir, report.MergeIDs,
		report.Converted, report.Skipped, report.Failed)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run ID: %w", err)
	}

	for _, f := range report.Files {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO run_files (run_id, name, status, ids, detail) VALUES (?, ?, ?, ?, ?)`,
			runID, f.Name, string(f.Status), f.IDs, f.Detail); err != nil {
			return 0, fmt.Errorf("inserting outcome for %s: %w", f.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// RunSummary is one row of the runs table.
type RunSummary struct {
	ID        int64     `json:"id"`
	StartedAt time.Time `json:"started_at"`
	InputDir  string    `json:"input_dir"`
	MergeDir  string    `json:"merge_dir"`
	MergeIDs  int       `json:"merge_ids"`
	Converted int       `json:"converted"`
	Skipped   int       `json:"skipped"`
	Failed    int       `json:"failed"`
}

// Runs returns the most recent runs, newest first.
func (l *Ledger) Runs(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := l.db.QueryContext(ctx,
		`SELECT id, started_at, input_dir, merge_dir, merge_ids, converted, skipped, failed
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		var started string
		if err := rows.Scan(&r.ID, &started, &r.InputDir, &r.MergeDir,
			&r.MergeIDs, &r.Converted, &r.Skipped, &r.Failed); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339, started); err == nil {
			r.StartedAt = ts
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Files returns the per-file outcomes of one run, in recorded order.
func (l *Ledger) Files(ctx context.Context, runID int64) ([]types.FileReport, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT name, status, ids, detail FROM run_files WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying run files: %w", err)
	}
	defer rows.Close()

	var files []types.FileReport
	for rows.Next() {
		var f types.FileReport
		var status string
		if err := rows.Scan(&f.Name, &status, &f.IDs, &f.Detail); err != nil {
			return nil, fmt.Errorf("scanning run file: %w", err)
		}
		f.Status = types.FileStatus(status)
		files = append(files, f)
	}
	return files, rows.Err()
}
