package gridgraph

import "fmt"

// Cell labels shared by every stage of the pipeline.
const (
	// Empty marks a cell that can never join a cluster.
	Empty = 0
	// Unlabeled marks an occupied cell not yet assigned to a cluster.
	Unlabeled = 1
	// FirstClusterID is the label given to the first cluster; cluster k
	// (0-based creation order) carries FirstClusterID + k.
	FirstClusterID = 2
)

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses the four orthogonal neighbours.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonal neighbours after the orthogonal ones.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// Neighbour offsets as (dRow, dCol). The orthogonal scan order is fixed:
// (r, c+1), (r+1, c), (r, c-1), (r-1, c). Discovery order of every cluster
// depends on it.
var (
	conn4Offsets = [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	conn8Offsets = [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}, {1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
)

// Offsets returns the neighbour offsets for c in scan order.
// Unknown values fall back to Conn4. The returned slice must not be modified.
func (c Connectivity) Offsets() [][2]int {
	if c == Conn8 {
		return conn8Offsets
	}
	return conn4Offsets
}

// Coordinate addresses one cell by row and column.
type Coordinate struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Translate returns the coordinate shifted by (dRow, dCol).
func (c Coordinate) Translate(dRow, dCol int) Coordinate {
	return Coordinate{Row: c.Row + dRow, Col: c.Col + dCol}
}

// Grid is a square matrix of cell labels stored row-major.
// Size is fixed at construction; labels are mutated only through Set.
type Grid struct {
	size  int
	cells []int
}
