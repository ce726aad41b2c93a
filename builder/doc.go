// Package builder generates the input grids of clusterfield: a seeded random
// occupancy grid for real runs, and deterministic fixtures for tests and
// examples. Every constructor returns the grid together with its candidate
// set, so the cluster indexer can start immediately.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the RNG and the empty-cell threshold.
//   - Random generation:
//     – RandomGrid:        N×N grid, each cell occupied when a uniform draw
//     in [0,1) is ≥ EmptyThreshold (occupancy OccupancyProbability).
//   - Fixtures:
//     – Full, Empty, Checkerboard, FromRows.
//   - Shared constants:
//     – EmptyThreshold, OccupancyProbability, MinGridSize.
//
// Guarantees:
//
//   - No hidden global RNG: stochastic generation requires WithSeed or WithRand.
//   - Cells are drawn in row-major order, so a fixed seed reproduces the grid
//     and the candidate insertion order exactly.
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Invalid sizes return errors wrapping ErrInvalidArgument; no partial grid.
//   - WithOccupancy panics with an error wrapping ErrBadProbability outside [0,1].
//
// Complexity: every constructor is O(N²) time and memory.
package builder
