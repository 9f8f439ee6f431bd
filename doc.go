// Package crucible finds the cheapest way across a grid of digit costs for
// a mover that cannot turn on a dime.
//
// What is crucible?
//
//	A small, dependency-light toolkit built around one search:
//		• grid/        : immutable cost matrix, text and .zst parsing
//		• statespace/  : (x, y, heading, run) states and legal transitions
//		• dijkstra/    : constrained Dijkstra, result extraction, path rebuild
//		• config/      : YAML search profiles
//		• batch/       : concurrent evaluation of profiles over one grid
//		• tracelog/    : reproducible settle traces as JSONL + zstd
//		• runlog/      : SQLite history of completed runs
//		• cmd/crucible : command-line front end
//
// The rules:
//
//   - Entering a cell costs its digit; the origin (top-left) is free.
//   - The mover never reverses.
//   - It may turn only after more than MinRun straight steps,
//     and must turn before exceeding MaxRun.
//   - The goal is the bottom-right cell, reached with any run length.
//
// Quick example:
//
//	2413
//	3215      standard (0..3):  dijkstra.MinHeatLoss(g, 0, 3)
//	3255      ultra    (3..10): dijkstra.MinHeatLoss(g, 3, 10)
//
//	go install github.com/katalvlaran/crucible/cmd/crucible@latest
package crucible
