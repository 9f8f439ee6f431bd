package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/runlog"
	"github.com/katalvlaran/crucible/tracelog"
)

const scenario = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

func writeGrid(t *testing.T, text string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "grid.txt")
	require.NoError(t, os.WriteFile(p, []byte(text), 0o644))
	return p
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_DefaultProfiles(t *testing.T) {
	code, out, errOut := runCLI(t, "-grid", writeGrid(t, scenario))
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "standard: 102\nultra: 94\n", out)
}

func TestRun_CustomRunsAndStrategy(t *testing.T) {
	code, out, errOut := runCLI(t, "-grid", writeGrid(t, scenario), "-min", "3", "-max", "10", "-strategy", "eager", "-workers", "1")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "custom: 94\n", out)
}

func TestRun_Unreachable(t *testing.T) {
	code, out, _ := runCLI(t, "-grid", writeGrid(t, "11\n11\n"), "-min", "5", "-max", "5")
	require.Equal(t, 0, code)
	assert.Equal(t, "custom: unreachable\n", out)
}

func TestRun_ConfigTraceAndDB(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "profiles.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
strategy: lazy
profiles:
  - {name: a, min_run: 0, max_run: 3}
  - {name: b, min_run: 1, max_run: 3, target: {x: 1, y: 0}}
`), 0o644))
	gridPath := writeGrid(t, "123\n456\n789\n")
	traceDir := filepath.Join(dir, "traces")
	dbPath := filepath.Join(dir, "runs.db")

	code, out, errOut := runCLI(t, "-grid", gridPath, "-config", cfgPath, "-trace", traceDir, "-db", dbPath, "-v")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "a: 20\nb: 2\n", out)
	assert.Contains(t, errOut, "[crucible] ")

	g, err := grid.Load(gridPath)
	require.NoError(t, err)

	entries, err := tracelog.ReadAll(filepath.Join(traceDir, g.Digest()+".jsonl.zst"))
	require.NoError(t, err)
	profiles := map[string]bool{}
	for _, e := range entries {
		profiles[e.Profile] = true
	}
	assert.Equal(t, map[string]bool{"a": true, "b": true}, profiles)

	idx, err := runlog.Open(dbPath)
	require.NoError(t, err)
	defer idx.Close()
	runs, err := idx.Runs(context.Background(), g.Digest())
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, int64(20), runs[0].Cost)
}

func TestRun_Errors(t *testing.T) {
	code, _, errOut := runCLI(t)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "missing -grid")

	code, _, _ = runCLI(t, "-grid", writeGrid(t, scenario), "-min", "4", "-max", "2")
	assert.Equal(t, 2, code)

	code, _, _ = runCLI(t, "-grid", writeGrid(t, scenario), "-strategy", "greedy")
	assert.Equal(t, 2, code)

	code, _, errOut = runCLI(t, "-grid", writeGrid(t, "12\n3x\n"))
	assert.Equal(t, 1, code)
	assert.True(t, strings.Contains(errOut, "not a digit"), errOut)

	code, _, _ = runCLI(t, "-grid", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, 1, code)

	code, _, _ = runCLI(t, "-bogus")
	assert.Equal(t, 2, code)
}
