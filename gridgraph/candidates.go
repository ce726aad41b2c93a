package gridgraph

import "fmt"

// Candidates is the set of occupied cells that have not yet been assigned to
// a cluster. It remembers insertion order so the indexer can consume seeds
// newest-first, and keeps a per-cell liveness slot so removal is O(1).
//
// slot[i] holds 1 + the position of cell i's live entry in order, or 0 when
// the cell is not a candidate. Removed entries stay in order until Last trims
// them from the tail; an entry is live only if its cell's slot points at it.
// The zero value is not usable; build one with NewCandidates.
type Candidates struct {
	size  int
	order []Coordinate
	slot  []int
	live  int
}

// NewCandidates returns an empty candidate set for an n×n grid.
// Complexity: O(n²) memory for the liveness table.
func NewCandidates(n int) *Candidates {
	if n < 0 {
		n = 0
	}
	return &Candidates{
		size:  n,
		order: make([]Coordinate, 0, n*n),
		slot:  make([]int, n*n),
	}
}

// Size returns the side length of the grid the set was built for.
func (cs *Candidates) Size() int {
	return cs.size
}

// Len returns the number of live candidates.
func (cs *Candidates) Len() int {
	return cs.live
}

// Add inserts c at the tail of the insertion order.
// Adding a live candidate again is a no-op.
// Returns ErrOutOfBounds if c is outside the grid.
func (cs *Candidates) Add(c Coordinate) error {
	if !cs.inBounds(c) {
		return fmt.Errorf("Candidates.Add %s: %w", c, ErrOutOfBounds)
	}
	i := cs.index(c)
	if cs.slot[i] != 0 {
		return nil
	}
	cs.order = append(cs.order, c)
	cs.slot[i] = len(cs.order)
	cs.live++

	return nil
}

// Contains reports whether c is a live candidate.
func (cs *Candidates) Contains(c Coordinate) bool {
	return cs.inBounds(c) && cs.slot[cs.index(c)] != 0
}

// Remove clears c's liveness slot. Removing a coordinate that is not a live
// candidate (or is out of bounds) is a no-op.
// Complexity: O(1).
func (cs *Candidates) Remove(c Coordinate) {
	if !cs.Contains(c) {
		return
	}
	cs.slot[cs.index(c)] = 0
	cs.live--
}

// Last returns the most recently inserted live candidate without removing it.
// ok is false when the set is empty.
// Complexity: amortised O(1); dead tail entries are discarded as they are met.
func (cs *Candidates) Last() (c Coordinate, ok bool) {
	for n := len(cs.order); n > 0; n = len(cs.order) {
		c = cs.order[n-1]
		if cs.slot[cs.index(c)] == n {
			return c, true
		}
		cs.order = cs.order[:n-1]
	}
	return Coordinate{}, false
}

// Slice returns the live candidates in insertion order.
func (cs *Candidates) Slice() []Coordinate {
	out := make([]Coordinate, 0, cs.live)
	for k, c := range cs.order {
		if cs.slot[cs.index(c)] == k+1 {
			out = append(out, c)
		}
	}
	return out
}

// Clone returns an independent copy of the set.
func (cs *Candidates) Clone() *Candidates {
	order := make([]Coordinate, len(cs.order))
	copy(order, cs.order)
	slot := make([]int, len(cs.slot))
	copy(slot, cs.slot)
	return &Candidates{size: cs.size, order: order, slot: slot, live: cs.live}
}

// CandidatesOf collects every Unlabeled cell of g in row-major order.
// Complexity: O(n²).
func CandidatesOf(g *Grid) *Candidates {
	cs := NewCandidates(g.size)
	for i, v := range g.cells {
		if v == Unlabeled {
			cs.order = append(cs.order, g.Coordinate(i))
			cs.slot[i] = len(cs.order)
			cs.live++
		}
	}
	return cs
}

func (cs *Candidates) inBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < cs.size && c.Col >= 0 && c.Col < cs.size
}

func (cs *Candidates) index(c Coordinate) int {
	return c.Row*cs.size + c.Col
}
