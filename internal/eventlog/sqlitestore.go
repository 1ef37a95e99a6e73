package eventlog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Mavwarf/appicons/internal/paths"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (or creates) a SQLite database at path and creates
// tables and indexes.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), paths.DirPerm); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Set PRAGMAs before any DDL.
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite pragma: %w", err)
		}
	}

	ddl := `
CREATE TABLE IF NOT EXISTS runs (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp  TEXT    NOT NULL,
    source     TEXT    NOT NULL,
    renderer   TEXT    NOT NULL,
    generated  INTEGER NOT NULL DEFAULT 0,
    failed     INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS outputs (
    id      INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id  INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    seq     INTEGER NOT NULL,
    path    TEXT    NOT NULL,
    pixels  INTEGER NOT NULL,
    error   TEXT    NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp DESC);
CREATE INDEX IF NOT EXISTS idx_outputs_run    ON outputs(run_id, seq);
`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// LogRun stores run and its outputs in one transaction. A zero Time is
// replaced with the current time.
func (s *SQLiteStore) LogRun(run Run) error {
	if run.Time.IsZero() {
		run.Time = time.Now()
	}
	ts := run.Time.Format(time.RFC3339)

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (timestamp, source, renderer, generated, failed)
		 VALUES (?, ?, ?, ?, ?)`,
		ts, run.Source, run.Renderer, run.Generated, run.Failed,
	)
	if err != nil {
		return err
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	for i, o := range run.Outputs {
		if _, err := tx.Exec(
			`INSERT INTO outputs (run_id, seq, path, pixels, error)
			 VALUES (?, ?, ?, ?, ?)`,
			runID, i+1, o.Path, o.Pixels, o.Error,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) Runs(limit int) ([]Run, error) {
	query := `SELECT id, timestamp, source, renderer, generated, failed
		FROM runs ORDER BY id DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var tsStr string
		if err := rows.Scan(&r.ID, &tsStr, &r.Source, &r.Renderer, &r.Generated, &r.Failed); err != nil {
			return nil, err
		}
		// An unparsable timestamp leaves Time zero; the run itself is kept.
		if ts, err := time.Parse(time.RFC3339, tsStr); err == nil {
			r.Time = ts
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range runs {
		outs, err := s.outputs(runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Outputs = outs
	}
	return runs, nil
}

func (s *SQLiteStore) outputs(runID int64) ([]Output, error) {
	rows, err := s.db.Query(
		`SELECT path, pixels, error FROM outputs WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var outs []Output
	for rows.Next() {
		var o Output
		if err := rows.Scan(&o.Path, &o.Pixels, &o.Error); err != nil {
			return nil, err
		}
		outs = append(outs, o)
	}
	return outs, rows.Err()
}

func (s *SQLiteStore) Clear() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	for _, stmt := range []string{`DELETE FROM outputs`, `DELETE FROM runs`} {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) Path() string {
	return s.path
}
