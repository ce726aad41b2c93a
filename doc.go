// Package clusterfield labels the 4-connected clusters of a random N×N
// occupancy grid and replays them one step at a time.
//
// 🚀 What is clusterfield?
//
//	A small, synchronous, in-memory engine that brings together:
//		• Generation: a seeded random 0/1 grid, ~70% occupied
//		• Labeling: iterative stack flood fill, newest candidate first
//		• Results: clusters in creation order, labels 2, 3, 4, …
//		• Replay: a step cursor with undo/redo for presentation layers
//
// ✨ Why clusterfield?
//
//   - Reproducible - every run has a seed and a run id in its logs
//   - Checked - each run is validated as a strict partition before return
//   - Hookable - OnVisit / OnCluster callbacks for tracing or animation
//
// Packages:
//
//	gridgraph/ - Grid, Coordinate, Connectivity, Candidates, reference components
//	builder/   - RandomGrid plus Full, Empty, Checkerboard, FromRows fixtures
//	cluster/   - Index, Keeper, Policy, Validate
//	field/     - Build / FromGrid: the construction interface
//	reveal/    - Cursor (Undo, Redo, Seek, Snapshot) and text rendering
//	config/    - YAML + environment configuration
//
// Quick ASCII example (after labeling):
//
//	4 4 *
//	* * *
//	3 * 2
//
//	three clusters; '*' is empty, the bottom-right cell was found first.
//
//	go run github.com/katalvlaran/clusterfield/cmd/clusterfield -size 16 -steps
package clusterfield
