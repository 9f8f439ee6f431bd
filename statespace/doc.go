// Package statespace expands grid cells into movement states and enumerates
// the transitions allowed by straight-run constraints.
//
// A plain cell graph cannot express "keep going for at least N steps, then
// turn before M": legality depends on how long the mover has already gone
// straight. A State therefore carries (X, Y, Heading, Run), and the expanded
// graph has at most W·H·4·MaxRun nodes and two or three edges per node.
//
// Rules:
//
//   - straight: allowed while Run < MaxRun; Run grows by one.
//   - turn 90°: allowed once Run > MinRun; Run restarts at one.
//   - reversal is never a move; successors outside the grid are dropped.
//   - the origin is seeded with two states (Right and Down, Run 1).
//     With MinRun 0 either start may turn on its first move, so the Down
//     start can step Right from the origin as (1,0 right×1).
//
// Successors generates transitions lazily; Expand materializes the whole
// reachable graph up front.
package statespace
