// Package dijkstra implements a constrained Dijkstra search over the
// expanded (position, heading, run) state graph of a cost grid.
//
// Complexity:
//
//   - Time:  O(E log V), V = W·H·4·MaxRun states, E ≤ 3V transitions.
//   - Space: O(V) for the distance table, O(E) worst-case heap entries
//     under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Two start states at the origin (Right and Down, Run 1), both at distance 0.
//   - Lazy decrease-key: duplicates are pushed and stale entries skipped on pop.
//   - Equal distances are ordered by statespace.State.Less, so the settle order
//     (and any trace built from WithOnPop) is reproducible.
//   - The search runs until the heap is empty; it does not stop at the target.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/statespace"
)

// Search computes the minimum accumulated entry cost of every state
// reachable from the two origin states of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Constraints must validate (ErrInvalidConfiguration).
//  3. The target must lie inside g (grid.ErrOutOfRange).
//
// The returned Result is owned by the caller; Search keeps no state between calls.
func Search(g *grid.Grid, opts ...Option) (*Result, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := cfg.Constraints.Validate(); err != nil {
		return nil, err
	}
	target := g.Destination()
	if cfg.Target != nil {
		target = *cfg.Target
	}
	if !g.InBounds(target.X, target.Y) {
		return nil, fmt.Errorf("dijkstra: target (%d,%d): %w", target.X, target.Y, grid.ErrOutOfRange)
	}

	// 3) Eager strategy materializes the graph before any relaxation.
	r := &runner{
		g:    g,
		cfg:  cfg,
		dist: make(map[statespace.State]int64, g.Width*g.Height*2),
	}
	if cfg.ReturnPath {
		r.prev = make(map[statespace.State]statespace.State, g.Width*g.Height*2)
	}
	if cfg.Strategy == Eager {
		adj, err := statespace.Expand(g, cfg.Constraints, statespace.Starts())
		if err != nil {
			return nil, err
		}
		r.adj = adj
	}

	// 4) Seed and run
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{
		Options: cfg,
		Target:  target,
		Settled: r.settled,
		dist:    r.dist,
		prev:    r.prev,
	}, nil
}

// MinHeatLoss is the common case: minimum cost from the top-left to the
// bottom-right cell of g under (minRun, maxRun). Returns ErrUnreachable
// when no legal path exists.
func MinHeatLoss(g *grid.Grid, minRun, maxRun int) (int64, error) {
	res, err := Search(g, WithRuns(minRun, maxRun))
	if err != nil {
		return 0, err
	}

	return res.MinCost()
}

// runner holds the mutable state for a single search.
// adj is nil under Lazy; prev is nil unless ReturnPath.
type runner struct {
	g       *grid.Grid
	cfg     Options
	adj     statespace.Adjacency
	dist    map[statespace.State]int64
	prev    map[statespace.State]statespace.State
	pq      statePQ
	settled int
}

// init records distance 0 for both start states and pushes them.
func (r *runner) init() {
	heap.Init(&r.pq)
	for _, s := range statespace.Starts() {
		r.dist[s] = 0
		heap.Push(&r.pq, &stateItem{state: s, dist: 0})
	}
}

// process pops until the heap is empty, skipping stale entries.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest (dist, state) entry
		item := heap.Pop(&r.pq).(*stateItem)
		u, d := item.state, item.dist

		// 2) Skip stale entries: a strictly smaller distance was recorded
		// after this one was pushed
		if best, ok := r.dist[u]; ok && best < d {
			continue
		}

		// 3) Settle u and report it to the hook
		r.settled++
		if r.cfg.OnPop != nil {
			r.cfg.OnPop(u, d)
		}

		// 4) Relax its outgoing edges
		if err := r.relax(u, d); err != nil {
			return err
		}
	}

	return nil
}

// relax improves every successor of u reachable at a lower cost through u.
func (r *runner) relax(u statespace.State, d int64) error {
	// 1) Successors come from the prebuilt graph (Eager) or on demand (Lazy)
	edges, err := r.successors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: successors of %v: %w", u, err)
	}

	for _, e := range edges {
		// 2) Keep the recorded distance unless the candidate is strictly better
		cand := d + e.Cost
		if best, ok := r.dist[e.To]; ok && cand >= best {
			continue
		}

		// 3) Record the improvement and push a fresh entry; the old one goes stale
		r.dist[e.To] = cand
		if r.prev != nil {
			r.prev[e.To] = u
		}
		heap.Push(&r.pq, &stateItem{state: e.To, dist: cand})
	}

	return nil
}

func (r *runner) successors(u statespace.State) ([]statespace.Edge, error) {
	if r.adj != nil {
		return r.adj[u], nil
	}

	return statespace.Successors(r.g, u, r.cfg.Constraints)
}

// stateItem is a heap entry: a state and the distance it was pushed with.
type stateItem struct {
	state statespace.State
	dist  int64
}

// statePQ is a min-heap of *stateItem ordered by dist, then by State.Less.
type statePQ []*stateItem

func (pq statePQ) Len() int { return len(pq) }

func (pq statePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].state.Less(pq[j].state)
}

func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
