// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const historyFile = "history.db"

// History records one row per documentation run in a SQLite database under
// the reports directory. It is bookkeeping only: nothing in the pipeline
// reads it back.
type History struct {
	db *sql.DB
}

// RunSummary is one row of the run history.
type RunSummary struct {
	RunID     string
	Timestamp time.Time
	Template  string
	Formats   string
	Artifacts int
	Errors    int
	Warnings  int
	Success   bool
}

// OpenHistory opens or creates the history database at dir/history.db,
// creating the schema if needed.
func OpenHistory(dir string) (*History, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating reports directory: %w", err)
	}

	dbPath := filepath.Join(dir, historyFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	h := &History{db: db}
	if err := h.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return h, nil
}

// Close releases the database connection.
func (h *History) Close() error {
	return h.db.Close()
}

func (h *History) createSchema() error {
	_, err := h.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		timestamp TEXT NOT NULL,
		template TEXT NOT NULL,
		formats TEXT NOT NULL,
		artifacts INTEGER NOT NULL,
		errors INTEGER NOT NULL,
		warnings INTEGER NOT NULL,
		success INTEGER NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record inserts one row for the finished report.
func (h *History) Record(r *Report) error {
	formats := make([]string, len(r.Formats))
	for i, f := range r.Formats {
		formats[i] = string(f)
	}

	_, err := h.db.Exec(
		`INSERT INTO runs (run_id, timestamp, template, formats, artifacts, errors, warnings, success)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID,
		r.Timestamp.Format(time.RFC3339),
		r.Template,
		strings.Join(formats, ","),
		len(r.GeneratedFiles),
		len(r.ValidationErrors),
		len(r.Warnings),
		r.Succeeded(),
	)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// Recent returns up to n runs, newest first.
func (h *History) Recent(n int) ([]RunSummary, error) {
	rows, err := h.db.Query(
		`SELECT run_id, timestamp, template, formats, artifacts, errors, warnings, success
		 FROM runs ORDER BY timestamp DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var (
			r  RunSummary
			ts string
		)
		if err := rows.Scan(&r.RunID, &ts, &r.Template, &r.Formats,
			&r.Artifacts, &r.Errors, &r.Warnings, &r.Success); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		r.Timestamp, err = time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("parsing run timestamp: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
