// Package field is the construction interface of clusterfield: Build draws a
// random N×N occupancy grid, labels its clusters, and hands back an immutable
// Field that a presentation layer reads to drive a step-wise reveal.
//
// Build runs synchronously and to completion; nothing is observable before it
// returns. A Field never changes afterwards, so concurrent readers are safe.
// All accessors return copies.
//
// Errors:
//
//   - ErrInvalidArgument: gridSize ≤ 0, or a malformed injected grid.
//   - cluster.ErrLabelCollision and friends: an injected grid whose labels
//     clash with the ids assigned by the run.
package field
