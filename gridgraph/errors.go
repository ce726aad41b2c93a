package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the grid would have no cells.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNotSquare indicates the row count differs from the column count.
	ErrNotSquare = errors.New("gridgraph: grid must be square")
	// ErrOutOfBounds indicates a coordinate outside [0,Size)×[0,Size).
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
)
