// Package dijkstra finds minimum-cost paths across a cost grid for a mover
// whose straight runs are constrained.
//
// Overview:
//
//   - Entering a cell costs its digit; the origin is free.
//   - The mover may not reverse, may turn only after more than MinRun
//     steps in its current heading, and must turn before exceeding MaxRun.
//   - Because legality depends on the current run, the search runs over
//     (x, y, heading, run) states from package statespace, not bare cells.
//
// When to use:
//
//   - Routing where momentum or turning rules matter: carts that cannot
//     turn on a dime, vehicles with a minimum straight segment, puzzles
//     with "at least N, at most M" moves per direction.
//
// Key features:
//
//   - Functional options (WithRuns, WithStrategy, WithReturnPath, WithTarget, WithOnPop).
//   - Lazy (default) or Eager state graph generation; both give identical results.
//   - Deterministic tie-breaking, so settle traces are reproducible.
//   - Unreachable targets are an explicit outcome (ErrUnreachable / Reachable()).
//
// Performance and complexity:
//
//   - Time:  O(E log V) with V = W·H·4·MaxRun and E ≤ 3V.
//   - Space: O(V) distances, O(E) worst-case heap entries.
//
// API reference:
//
//	func Search(g *grid.Grid, opts ...Option) (*Result, error)
//	func MinHeatLoss(g *grid.Grid, minRun, maxRun int) (int64, error)
//	func Extract(dist map[statespace.State]int64, x, y int) (statespace.State, int64, bool)
//
// Thread safety:
//
//   - A Grid is read-only and may be shared by concurrent searches.
//   - Each Search owns its distance table and heap; a Result must not be
//     mutated concurrently (it exposes no mutators).
package dijkstra
