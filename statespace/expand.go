package statespace

import (
	"fmt"

	"github.com/katalvlaran/crucible/grid"
)

// Successors returns the legal transitions out of s, in deterministic order:
// straight first, then the two turns in heading order. Successors leaving
// the grid are dropped; reversal is never produced.
//
// Complexity: O(1).
func Successors(g *grid.Grid, s State, c Constraints) ([]Edge, error) {
	out := make([]Edge, 0, 3)

	// 1) Straight on, while the run is below MaxRun
	if c.CanContinue(s.Run) {
		e, ok, err := step(g, s, s.Heading, s.Run+1)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, e)
		}
	}
	// 2) Both 90° turns, once the run exceeds MinRun; the run restarts at 1
	if c.CanTurn(s.Run) {
		for _, h := range s.Heading.Turns() {
			e, ok, err := step(g, s, h, 1)
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, e)
			}
		}
	}

	return out, nil
}

// step moves one cell from s in heading h. ok is false when the target is
// outside the grid.
func step(g *grid.Grid, s State, h Heading, run int) (Edge, bool, error) {
	dx, dy := h.Delta()
	x, y := s.X+dx, s.Y+dy
	if !g.InBounds(x, y) {
		return Edge{}, false, nil
	}
	cost, err := g.CostAt(x, y)
	if err != nil {
		return Edge{}, false, err
	}

	return Edge{To: State{X: x, Y: y, Heading: h, Run: run}, Cost: int64(cost)}, true, nil
}

// Expand materializes every state reachable from starts, breadth-first,
// keyed by State. It costs O(W·H·4·MaxRun) memory, but decouples
// traversal order from search order.
//
// Returns ErrInvalidConfiguration for bad constraints.
func Expand(g *grid.Grid, c Constraints, starts []State) (Adjacency, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	// 1) Seed the queue with the in-bounds start states
	adj := make(Adjacency)
	queue := make([]State, 0, len(starts))
	for _, s := range starts {
		if !g.InBounds(s.X, s.Y) {
			return nil, fmt.Errorf("statespace: start %v: %w", s, grid.ErrOutOfRange)
		}
		queue = append(queue, s)
	}

	// 2) Breadth-first: each state is expanded once, the first time it is dequeued
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if _, seen := adj[u]; seen {
			continue
		}

		// 3) Record its edges, then enqueue successors not yet expanded
		edges, err := Successors(g, u, c)
		if err != nil {
			return nil, err
		}
		adj[u] = edges
		for _, e := range edges {
			if _, seen := adj[e.To]; !seen {
				queue = append(queue, e.To)
			}
		}
	}

	return adj, nil
}
