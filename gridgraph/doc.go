// Package gridgraph holds the shared data model of clusterfield: a square
// grid of integer labels, its coordinates, neighbourhoods, and the candidate
// set of occupied cells still waiting for a cluster.
//
// What:
//
//   - Grid stores an N×N row-major buffer of labels.
//     0 = empty, 1 = occupied but unlabeled, ≥2 = cluster identifier.
//   - Coordinate is a (Row, Col) pair; Index/Coordinate convert to and from
//     the row-major offset.
//   - Connectivity selects the neighbourhood (Conn4 or Conn8) and fixes the
//     order in which neighbours are scanned.
//   - Candidates is the insertion-ordered set of unlabeled occupied cells with
//     O(1) removal through an index-addressed liveness table.
//   - ConnectedComponents is a breadth-first reference labeling used to
//     cross-check the cluster indexer.
//
// Why:
//
//   - One place owns bounds checks and the neighbour scan order, so the
//     generator, the indexer and the reveal replay agree on geometry.
//
// Complexity:
//
//   - NewGrid / From2D / Clone: O(N²) time and memory.
//   - At / Set / InBounds / Index / Coordinate: O(1).
//   - Candidates.Add / Remove / Contains: O(1); Last: amortised O(1).
//   - ConnectedComponents: O(N²·d), Memory: O(N²) (d = 4 or 8).
//
// Errors:
//
//   - ErrEmptyGrid: size < 1 or input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNotSquare: row count differs from column count.
//   - ErrOutOfBounds: a coordinate lies outside the grid (Candidates.Add).
package gridgraph
