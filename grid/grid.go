package grid

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of costs.
// values[y][x] is the cost of entering cell (x,y). The input is deep-copied.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrCostRange if a value
// lies outside [MinCost, MaxCost].
// Complexity: O(W×H) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([]int, 0, w*h)
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, v := range row {
			if v < MinCost || v > MaxCost {
				return nil, fmt.Errorf("%w: (%d,%d)=%d", ErrCostRange, x, y, v)
			}
		}
		cells = append(cells, row...)
	}

	return &Grid{Width: w, Height: h, cells: cells}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// CostAt returns the entry cost of cell (x,y).
// Callers are expected to check InBounds first; an out-of-bounds query
// returns ErrOutOfRange.
func (g *Grid) CostAt(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfRange, x, y, g.Width, g.Height)
	}

	return g.cells[g.index(x, y)], nil
}

// Origin is the top-left cell, where every search starts.
func (g *Grid) Origin() Point { return Point{X: 0, Y: 0} }

// Destination is the bottom-right cell, the default search target.
func (g *Grid) Destination() Point { return Point{X: g.Width - 1, Y: g.Height - 1} }

// Rows returns a deep copy of the cost matrix as [y][x].
func (g *Grid) Rows() [][]int {
	out := make([][]int, g.Height)
	for y := 0; y < g.Height; y++ {
		out[y] = make([]int, g.Width)
		copy(out[y], g.cells[y*g.Width:(y+1)*g.Width])
	}

	return out
}

// Digest is a stable hex SHA-256 over the dimensions and costs.
// Two grids with equal digests are equal.
func (g *Grid) Digest() string {
	h := sha256.New()
	var buf [8]byte
	binary.BigEndian.PutUint32(buf[:4], uint32(g.Width))
	binary.BigEndian.PutUint32(buf[4:], uint32(g.Height))
	h.Write(buf[:])
	for _, c := range g.cells {
		h.Write([]byte{byte(c)})
	}

	return hex.EncodeToString(h.Sum(nil))
}

// String renders the grid in the same textual form Parse accepts.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			sb.WriteByte(byte('0' + g.cells[g.index(x, y)]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// index maps (x,y) to the row-major offset in cells.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}
