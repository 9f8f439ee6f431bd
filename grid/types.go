// Package grid defines core types and sentinel errors for the cost matrix.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and queries.
var (
	// ErrMalformedGrid is the parent of every structural grid error.
	ErrMalformedGrid = errors.New("grid: malformed grid")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)
	// ErrParse indicates a character that is not an ASCII digit.
	ErrParse = errors.New("grid: cell is not a digit")
	// ErrCostRange indicates a numeric cost outside [MinCost, MaxCost].
	ErrCostRange = errors.New("grid: cell cost out of range")
	// ErrOutOfRange indicates a query for a cell outside the grid.
	ErrOutOfRange = errors.New("grid: coordinate out of range")
)

const (
	// MinCost is the smallest entry cost a cell may carry.
	MinCost = 0
	// MaxCost is the largest entry cost a cell may carry.
	MaxCost = 9
)

// ParseError reports the position of an invalid character in textual input.
// Line and Column are 1-based.
type ParseError struct {
	Line   int
	Column int
	Char   rune
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("grid: line %d column %d: %q is not a digit", e.Line, e.Column, e.Char)
}

// Unwrap lets errors.Is match both ErrParse and ErrMalformedGrid.
func (e *ParseError) Unwrap() []error { return []error{ErrParse, ErrMalformedGrid} }

// Point is a cell coordinate: X is the column, Y is the row.
type Point struct {
	X, Y int
}

// Grid is an immutable W×H matrix of entry costs.
// cells is stored row-major; use index to address it.
type Grid struct {
	Width, Height int
	cells         []int
}
