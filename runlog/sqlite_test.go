package runlog

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/crucible/batch"
	"github.com/katalvlaran/crucible/config"
	"github.com/katalvlaran/crucible/dijkstra"
)

func TestIndex_RecordAndList(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "db", "runs.db")

	idx, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	rep := batch.Report{
		Profile:   config.Profile{Name: "ultra", MinRun: 3, MaxRun: 10},
		Strategy:  dijkstra.Eager,
		Reachable: true,
		Cost:      94,
		States:    1234,
		Elapsed:   15 * time.Millisecond,
	}
	r, err := idx.RecordReport(ctx, "abc", 13, 13, rep)
	if err != nil {
		t.Fatalf("RecordReport: %v", err)
	}
	if r.ID == 0 {
		t.Fatalf("ID not assigned")
	}
	if err := idx.Record(ctx, &Run{GridDigest: "abc", Width: 13, Height: 13, Profile: "stuck", MinRun: 5, MaxRun: 5, Strategy: "lazy"}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := idx.Record(ctx, &Run{GridDigest: "other", Profile: "x", MaxRun: 3, Strategy: "lazy"}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	runs, err := idx.Runs(ctx, "abc")
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs; want 2", len(runs))
	}
	got := runs[0]
	if got.Profile != "ultra" || got.Cost != 94 || !got.Reachable || got.Strategy != "eager" || got.ElapsedMs != 15 || got.States != 1234 {
		t.Fatalf("row mismatch: %+v", got)
	}
	if runs[1].Reachable || runs[1].Profile != "stuck" {
		t.Fatalf("row mismatch: %+v", runs[1])
	}
	if err := idx.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// The table is plain SQL for outside tooling.
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	defer db.Close()
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if n != 3 {
		t.Fatalf("count = %d; want 3", n)
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
