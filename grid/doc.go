// Package grid holds the immutable cost matrix searched by crucible.
//
// What:
//
//   - Grid wraps a rectangular matrix of single-digit entry costs (0..9).
//   - The cost of a cell is paid when a mover enters it, never for the origin.
//   - Grids are parsed from plain text (one row of ASCII digits per line),
//     optionally zstd-compressed on disk (*.zst).
//
// Why:
//
//   - Every search over a Grid only reads it, so one Grid can be shared by
//     any number of concurrent searches without locking.
//
// Complexity:
//
//   - New / Parse: O(W×H) time and memory.
//   - InBounds / CostAt: O(1).
//
// Errors:
//
//   - ErrMalformedGrid: empty input, ragged rows or blank lines inside the block.
//     ErrEmptyGrid and ErrNonRectangular both wrap it.
//   - ErrParse: a non-digit character; returned as *ParseError with its position.
//   - ErrCostRange: a value outside [0,9] passed to New.
//   - ErrOutOfRange: CostAt called for a cell outside the grid.
package grid
