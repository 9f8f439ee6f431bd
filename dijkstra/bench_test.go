package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/grid"
)

// randomGrid builds a deterministic n×n grid with costs 1..9.
func randomGrid(b *testing.B, n int) *grid.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	values := make([][]int, n)
	for y := range values {
		values[y] = make([]int, n)
		for x := range values[y] {
			values[y][x] = 1 + rng.Intn(9)
		}
	}
	g, err := grid.New(values)
	if err != nil {
		b.Fatalf("setup grid.New failed: %v", err)
	}

	return g
}

// BenchmarkSearch_Lazy141 measures the lazy strategy on a 141×141 grid,
// the size of a full puzzle input. V ≈ 141²·4·10.
func BenchmarkSearch_Lazy141(b *testing.B) {
	g := randomGrid(b, 141)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Search(g, dijkstra.WithRuns(3, 10)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSearch_Eager141 is the same workload with up-front materialization.
func BenchmarkSearch_Eager141(b *testing.B) {
	g := randomGrid(b, 141)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dijkstra.Search(g, dijkstra.WithRuns(3, 10), dijkstra.WithStrategy(dijkstra.Eager)); err != nil {
			b.Fatal(err)
		}
	}
}
