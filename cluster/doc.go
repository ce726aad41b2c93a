// Package cluster labels the occupied cells of a gridgraph.Grid into maximal
// connected clusters and records the order in which every cluster was
// discovered, so a consumer can reveal clusters one at a time.
//
// What
//
//   - Index consumes a Grid and its Candidates and returns a Keeper: an
//     ordered list of Clusters where Keeper[k] carries label k+2.
//   - Seeds are taken newest-first from the candidate set (Candidates.Last).
//   - Each cluster grows with an explicit work stack (iterative depth-first),
//     scanning neighbours in gridgraph's fixed order
//     (r,c+1), (r+1,c), (r,c-1), (r-1,c).
//   - A Policy decides which neighbour labels may join the current cluster.
//   - Hooks: OnVisit (a cell receives a label), OnCluster (a cluster closes).
//
// Discovery order
//
//	Cluster.Points lists the seed first, then every cell in the order it was
//	relabeled while the stack drained. This order is part of the contract:
//	step-wise reveal replays it verbatim.
//
// Policies
//
//   - StrictPartition (default): only Unlabeled (1) cells join. Cells carrying a
//     label ≥ 2 before the run are walls, so clusters partition the candidate set.
//   - MergeOnContact: any nonzero label other than the current id joins, so
//     pre-labeled regions touching a cluster are absorbed into it.
//
// Determinism
//
//	For a fixed grid and candidate insertion order the Keeper, the labels and
//	the discovery order are fully reproducible.
//
// Complexity (N×N grid, d = 4 or 8)
//
//   - Time:   O(N²·d)  every cell is pushed at most once per run.
//   - Memory: O(N²)    work stack plus Keeper.
//
// Usage
//
//	g, cands, _ := builder.RandomGrid(16, builder.WithSeed(7))
//	keeper, err := cluster.Index(g, cands,
//	    cluster.WithPolicy(cluster.StrictPartition),
//	    cluster.WithOnCluster(func(c cluster.Cluster) { /* ... */ }),
//	)
//
// Errors
//
//   - ErrNilGrid, ErrNilCandidates   for nil inputs.
//   - ErrCandidateMismatch           candidate set sized for another grid, or a
//     live candidate whose cell is not Unlabeled.
//   - ErrOptionViolation             invalid Policy or Connectivity.
//   - Keeper.Validate reports ErrOverlap, ErrLabelMismatch, ErrLabelCollision
//     and ErrUnlabeledCell.
package cluster
