// Package dijkstra defines configuration options, sentinel errors and the
// result type of the constrained shortest-path search.
//
// Options:
//
//	– Runs:       MinRun / MaxRun straight-run constraints (default 0 / 3).
//	– Strategy:   Lazy (default) generates successors on demand;
//	              Eager materializes the whole state graph first.
//	– ReturnPath: keep predecessors so Result.Path can rebuild the route.
//	– Target:     destination cell (default: bottom-right).
//	– OnPop:      hook called for every state settled by the search.
//
// Errors (sentinel):
//
//	– ErrNilGrid               if the grid pointer is nil.
//	– ErrInvalidConfiguration  if the run constraints are inconsistent.
//	– ErrUnreachable           if no state at the target was ever relaxed.
//	– ErrNoPath                if Path is asked for without WithReturnPath.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/statespace"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Search.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrInvalidConfiguration is statespace.ErrInvalidConfiguration, re-exported
	// so callers of this package need not import statespace.
	ErrInvalidConfiguration = statespace.ErrInvalidConfiguration

	// ErrUnreachable indicates that no legal path reaches the target.
	// It is a legitimate outcome, not a failure of the search.
	ErrUnreachable = errors.New("dijkstra: target unreachable")

	// ErrNoPath indicates that predecessors were not recorded.
	ErrNoPath = errors.New("dijkstra: path not recorded; use WithReturnPath")
)

// Strategy selects how the expanded state graph is produced.
type Strategy int

const (
	// Lazy generates successors inside the search loop. Lower peak memory.
	Lazy Strategy = iota

	// Eager breadth-first materializes the reachable graph, then searches it.
	Eager
)

func (s Strategy) String() string {
	if s == Eager {
		return "eager"
	}

	return "lazy"
}

// PopFunc observes every state the search settles, in settle order,
// with its final distance.
type PopFunc func(s statespace.State, dist int64)

// Options configures the behavior of Search.
type Options struct {
	Constraints statespace.Constraints // MinRun / MaxRun
	Strategy    Strategy               // Lazy or Eager
	ReturnPath  bool                   // record predecessors
	Target      *grid.Point            // nil: bottom-right corner
	OnPop       PopFunc                // optional settle hook
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithRuns sets the straight-run constraints. Validation happens in Search.
func WithRuns(minRun, maxRun int) Option {
	return func(o *Options) {
		o.Constraints = statespace.Constraints{MinRun: minRun, MaxRun: maxRun}
	}
}

// WithConstraints is WithRuns for an existing Constraints value.
func WithConstraints(c statespace.Constraints) Option {
	return func(o *Options) {
		o.Constraints = c
	}
}

// WithStrategy picks Lazy or Eager graph generation.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithReturnPath enables predecessor tracking for Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithTarget overrides the destination cell.
func WithTarget(x, y int) Option {
	return func(o *Options) {
		o.Target = &grid.Point{X: x, Y: y}
	}
}

// WithOnPop installs a settle hook. Settle order is fully determined by
// costs and State.Less, so two runs on the same input yield the same trace.
func WithOnPop(fn PopFunc) Option {
	return func(o *Options) {
		o.OnPop = fn
	}
}

// DefaultOptions returns the defaults: MinRun 0, MaxRun 3, Lazy, no path,
// bottom-right target, no hook.
func DefaultOptions() Options {
	return Options{
		Constraints: statespace.Constraints{MinRun: 0, MaxRun: 3},
		Strategy:    Lazy,
	}
}
