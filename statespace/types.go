// Package statespace defines headings, movement states, run constraints and
// the sentinel errors of the expanded state graph.
package statespace

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration indicates run constraints that cannot describe a mover.
var ErrInvalidConfiguration = errors.New("statespace: invalid run constraints")

// Heading is one of the four axis-aligned directions. There is no idle heading.
type Heading uint8

// Declaration order doubles as the tie-break order between headings.
const (
	Up Heading = iota
	Down
	Left
	Right
)

// Headings lists every heading in tie-break order.
var Headings = [...]Heading{Up, Down, Left, Right}

// Delta returns the (dx,dy) of one step; y grows downwards.
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

// Opposite returns the reversed heading. Movement never uses it; it exists
// so callers and tests can assert that.
func (h Heading) Opposite() Heading {
	switch h {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Turns returns the two 90° turns from h, in tie-break order.
func (h Heading) Turns() [2]Heading {
	if h == Up || h == Down {
		return [2]Heading{Left, Right}
	}

	return [2]Heading{Up, Down}
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}

	return fmt.Sprintf("heading(%d)", uint8(h))
}

// State is a node of the expanded graph: the mover stands on (X,Y) having
// taken Run consecutive steps in Heading. All four fields form its identity.
type State struct {
	X, Y    int
	Heading Heading
	Run     int
}

// Less is the total order used to break cost ties: X, then Y, Heading, Run.
func (s State) Less(o State) bool {
	if s.X != o.X {
		return s.X < o.X
	}
	if s.Y != o.Y {
		return s.Y < o.Y
	}
	if s.Heading != o.Heading {
		return s.Heading < o.Heading
	}

	return s.Run < o.Run
}

func (s State) String() string {
	return fmt.Sprintf("(%d,%d %s×%d)", s.X, s.Y, s.Heading, s.Run)
}

// Starts returns the two seeded origin states, heading Right and Down, each
// with Run 1. Seeding both avoids a "no heading yet" sentinel.
func Starts() []State {
	return []State{
		{X: 0, Y: 0, Heading: Right, Run: 1},
		{X: 0, Y: 0, Heading: Down, Run: 1},
	}
}

// Edge is a transition to To, costing the entry cost of To's cell.
type Edge struct {
	To   State
	Cost int64
}

// Adjacency is a fully materialized state graph.
type Adjacency map[State][]Edge

// Constraints bounds the straight runs of a mover.
//
//	MinRun – a turn is legal only once Run > MinRun.
//	MaxRun – going straight is legal only while Run < MaxRun.
//
// Run already counts the origin as one step, which is why the turn test is
// strict. A start state therefore turns on its first move only when MinRun
// is 0.
type Constraints struct {
	MinRun int
	MaxRun int
}

// Validate rejects MinRun < 0, MaxRun < 1 and MaxRun < MinRun.
func (c Constraints) Validate() error {
	switch {
	case c.MinRun < 0:
		return fmt.Errorf("%w: min run %d is negative", ErrInvalidConfiguration, c.MinRun)
	case c.MaxRun < 1:
		return fmt.Errorf("%w: max run %d must be positive", ErrInvalidConfiguration, c.MaxRun)
	case c.MaxRun < c.MinRun:
		return fmt.Errorf("%w: max run %d < min run %d", ErrInvalidConfiguration, c.MaxRun, c.MinRun)
	}

	return nil
}

// CanContinue reports whether a state with this run may keep its heading.
func (c Constraints) CanContinue(run int) bool { return run < c.MaxRun }

// CanTurn reports whether a state with this run may turn.
func (c Constraints) CanTurn(run int) bool { return run > c.MinRun }
