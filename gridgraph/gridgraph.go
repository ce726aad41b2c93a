package gridgraph

import "fmt"

// NewGrid allocates an n×n grid with every cell Empty.
// Returns ErrEmptyGrid if n < 1.
// Complexity: O(n²) time and memory.
func NewGrid(n int) (*Grid, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewGrid: n=%d: %w", n, ErrEmptyGrid)
	}
	return &Grid{size: n, cells: make([]int, n*n)}, nil
}

// From2D constructs a Grid from a non-empty, square 2D slice.
// It deep-copies the input so later edits to values do not leak in.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrNotSquare otherwise mismatched.
// Complexity: O(n²) time and memory.
func From2D(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if h != w {
		return nil, fmt.Errorf("From2D: %d rows × %d cols: %w", h, w, ErrNotSquare)
	}
	g := &Grid{size: h, cells: make([]int, h*w)}
	for r := 0; r < h; r++ {
		copy(g.cells[r*w:(r+1)*w], values[r])
	}

	return g, nil
}

// Size returns N for an N×N grid.
func (g *Grid) Size() int {
	return g.size
}

// Len returns the number of cells, N².
func (g *Grid) Len() int {
	return len(g.cells)
}

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// Contains reports whether c lies within the grid boundaries.
func (g *Grid) Contains(c Coordinate) bool {
	return g.InBounds(c.Row, c.Col)
}

// Index maps c to its row-major offset: Row*Size + Col.
// Callers must pass an in-bounds coordinate.
// Complexity: O(1).
func (g *Grid) Index(c Coordinate) int {
	return c.Row*g.size + c.Col
}

// Coordinate converts a row-major offset back to (row,col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coordinate {
	return Coordinate{Row: idx / g.size, Col: idx % g.size}
}

// At returns the label at c. Panics on an out-of-bounds coordinate.
func (g *Grid) At(c Coordinate) int {
	g.mustContain(c)
	return g.cells[g.Index(c)]
}

// Set overwrites the label at c. Panics on an out-of-bounds coordinate.
func (g *Grid) Set(c Coordinate, label int) {
	g.mustContain(c)
	g.cells[g.Index(c)] = label
}

// Clone returns an independent deep copy of g.
// Complexity: O(n²).
func (g *Grid) Clone() *Grid {
	cells := make([]int, len(g.cells))
	copy(cells, g.cells)
	return &Grid{size: g.size, cells: cells}
}

// Rows returns a freshly allocated [][]int view of the labels.
// Complexity: O(n²).
func (g *Grid) Rows() [][]int {
	out := make([][]int, g.size)
	for r := 0; r < g.size; r++ {
		out[r] = make([]int, g.size)
		copy(out[r], g.cells[r*g.size:(r+1)*g.size])
	}
	return out
}

// Count returns how many cells carry label.
func (g *Grid) Count(label int) int {
	n := 0
	for _, v := range g.cells {
		if v == label {
			n++
		}
	}
	return n
}

// Neighbors returns the in-bounds neighbours of c under conn, in scan order.
// Complexity: O(d).
func (g *Grid) Neighbors(c Coordinate, conn Connectivity) []Coordinate {
	offsets := conn.Offsets()
	out := make([]Coordinate, 0, len(offsets))
	for _, d := range offsets {
		nb := c.Translate(d[0], d[1])
		if g.Contains(nb) {
			out = append(out, nb)
		}
	}
	return out
}

func (g *Grid) mustContain(c Coordinate) {
	if !g.Contains(c) {
		panic(fmt.Sprintf("gridgraph: coordinate %s outside %d×%d grid", c, g.size, g.size))
	}
}
