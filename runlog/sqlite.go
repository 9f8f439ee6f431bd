// Package runlog keeps a SQLite history of completed searches, keyed by the
// digest of the grid they ran on.
package runlog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/crucible/batch"
)

// Run is one row of the runs table.
type Run struct {
	ID         int64
	GridDigest string
	Width      int
	Height     int
	Profile    string
	MinRun     int
	MaxRun     int
	Strategy   string
	Reachable  bool
	Cost       int64
	States     int
	ElapsedMs  int64
	RecordedAt time.Time
}

// Index is a SQLite-backed log of finished searches. It holds a single
// connection and is safe for concurrent use.
type Index struct {
	db *sql.DB
}

// Open creates (or reopens) the database at path.
func Open(path string) (*Index, error) {
	if path == "" {
		return nil, fmt.Errorf("runlog: empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Index{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			grid_digest TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			profile TEXT NOT NULL,
			min_run INTEGER NOT NULL,
			max_run INTEGER NOT NULL,
			strategy TEXT NOT NULL,
			reachable INTEGER NOT NULL,
			cost INTEGER NOT NULL,
			states INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			recorded_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_digest ON runs(grid_digest, profile);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the database.
func (x *Index) Close() error { return x.db.Close() }

// Record stores one run. ID and a zero RecordedAt are filled in.
func (x *Index) Record(ctx context.Context, r *Run) error {
	if r.RecordedAt.IsZero() {
		r.RecordedAt = time.Now().UTC()
	}
	res, err := x.db.ExecContext(ctx, `INSERT INTO runs
		(grid_digest, width, height, profile, min_run, max_run, strategy, reachable, cost, states, elapsed_ms, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GridDigest, r.Width, r.Height, r.Profile, r.MinRun, r.MaxRun, r.Strategy,
		boolInt(r.Reachable), r.Cost, r.States, r.ElapsedMs, r.RecordedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("runlog: insert: %w", err)
	}
	r.ID, err = res.LastInsertId()
	return err
}

// RecordReport stores a batch report for the grid identified by digest.
func (x *Index) RecordReport(ctx context.Context, digest string, width, height int, rep batch.Report) (Run, error) {
	r := Run{
		GridDigest: digest,
		Width:      width,
		Height:     height,
		Profile:    rep.Profile.Name,
		MinRun:     rep.Profile.MinRun,
		MaxRun:     rep.Profile.MaxRun,
		Strategy:   rep.Strategy.String(),
		Reachable:  rep.Reachable,
		Cost:       rep.Cost,
		States:     rep.States,
		ElapsedMs:  rep.Elapsed.Milliseconds(),
	}
	err := x.Record(ctx, &r)
	return r, err
}

// Runs lists the runs recorded for a grid digest, oldest first.
func (x *Index) Runs(ctx context.Context, digest string) ([]Run, error) {
	rows, err := x.db.QueryContext(ctx, `SELECT
		id, grid_digest, width, height, profile, min_run, max_run, strategy, reachable, cost, states, elapsed_ms, recorded_at
		FROM runs WHERE grid_digest = ? ORDER BY id`, digest)
	if err != nil {
		return nil, fmt.Errorf("runlog: query: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r         Run
			reachable int
			at        string
		)
		if err := rows.Scan(&r.ID, &r.GridDigest, &r.Width, &r.Height, &r.Profile, &r.MinRun, &r.MaxRun,
			&r.Strategy, &reachable, &r.Cost, &r.States, &r.ElapsedMs, &at); err != nil {
			return nil, err
		}
		r.Reachable = reachable != 0
		if r.RecordedAt, err = time.Parse(time.RFC3339Nano, at); err != nil {
			return nil, fmt.Errorf("runlog: run %d recorded_at %q: %w", r.ID, at, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
