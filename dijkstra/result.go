package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/statespace"
)

// Result is the final distance table of one Search.
type Result struct {
	Options Options    // effective options
	Target  grid.Point // destination cell
	Settled int        // states settled (non-stale pops)

	dist map[statespace.State]int64
	prev map[statespace.State]statespace.State
}

// Extract scans dist for every state standing on (x,y) and returns the
// cheapest one. Equal costs are resolved by State.Less. ok is false when no
// such state was ever relaxed, i.e. the cell is unreachable.
//
// Any run length is a valid endpoint: stopping is not a turn, so MinRun
// does not apply.
func Extract(dist map[statespace.State]int64, x, y int) (best statespace.State, cost int64, ok bool) {
	for s, d := range dist {
		if s.X != x || s.Y != y {
			continue
		}
		if !ok || d < cost || (d == cost && s.Less(best)) {
			best, cost, ok = s, d, true
		}
	}

	return best, cost, ok
}

// MinCost returns the minimum cost of reaching the target, or ErrUnreachable.
func (r *Result) MinCost() (int64, error) {
	cost, ok := r.CostTo(r.Target.X, r.Target.Y)
	if !ok {
		return 0, fmt.Errorf("%w: (%d,%d) with runs %d..%d",
			ErrUnreachable, r.Target.X, r.Target.Y, r.Options.Constraints.MinRun, r.Options.Constraints.MaxRun)
	}

	return cost, nil
}

// Reachable reports whether any state at the target was relaxed.
func (r *Result) Reachable() bool {
	_, ok := r.CostTo(r.Target.X, r.Target.Y)

	return ok
}

// CostTo returns the minimum cost of reaching any cell (x,y).
// One search answers every destination, so this is cheap to call repeatedly.
func (r *Result) CostTo(x, y int) (int64, bool) {
	_, cost, ok := Extract(r.dist, x, y)

	return cost, ok
}

// Distance returns the recorded distance of a single state.
func (r *Result) Distance(s statespace.State) (int64, bool) {
	d, ok := r.dist[s]

	return d, ok
}

// States returns the number of states in the distance table.
func (r *Result) States() int { return len(r.dist) }

// Path rebuilds the cheapest route to the target, from a start state to the
// final state. Requires WithReturnPath.
func (r *Result) Path() ([]statespace.State, error) {
	if r.prev == nil {
		return nil, ErrNoPath
	}
	end, _, ok := Extract(r.dist, r.Target.X, r.Target.Y)
	if !ok {
		return nil, ErrUnreachable
	}

	var path []statespace.State
	for at, more := end, true; more; at, more = r.prev[at] {
		path = append(path, at)
	}
	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
