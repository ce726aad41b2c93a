package cluster

import (
	"fmt"

	"github.com/katalvlaran/clusterfield/gridgraph"
)

// Len returns the number of clusters.
func (k Keeper) Len() int {
	return len(k)
}

// Clone returns a deep copy of k.
func (k Keeper) Clone() Keeper {
	out := make(Keeper, len(k))
	for i, c := range k {
		out[i] = c.clone()
	}
	return out
}

// Sizes returns the member count of every cluster, in creation order.
func (k Keeper) Sizes() []int {
	out := make([]int, len(k))
	for i, c := range k {
		out[i] = c.Len()
	}
	return out
}

// Cells returns the total number of memberships across all clusters.
// Under StrictPartition this equals the number of original candidates.
func (k Keeper) Cells() int {
	n := 0
	for _, c := range k {
		n += c.Len()
	}
	return n
}

// ByID returns the cluster labeled id.
func (k Keeper) ByID(id int) (Cluster, bool) {
	i := id - gridgraph.FirstClusterID
	if i < 0 || i >= len(k) {
		return Cluster{}, false
	}
	return k[i], true
}

// Validate checks k against the labeled grid g:
//   - cluster i carries id i+2 and every member is in bounds with that label;
//   - no coordinate is listed twice (ErrOverlap);
//   - no cell outside cluster i carries label i+2 (ErrLabelCollision);
//   - no Unlabeled cell remains (ErrUnlabeledCell).
//
// Complexity: O(N² + Σ|cluster|).
func (k Keeper) Validate(g *gridgraph.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	seen := make([]bool, g.Len())
	for i, cl := range k {
		want := gridgraph.FirstClusterID + i
		if cl.id != want {
			return fmt.Errorf("%w: cluster %d has id %d, want %d", ErrLabelMismatch, i, cl.id, want)
		}
		for _, c := range cl.points {
			if !g.Contains(c) {
				return fmt.Errorf("%w: cluster %d member %s", gridgraph.ErrOutOfBounds, cl.id, c)
			}
			if v := g.At(c); v != cl.id {
				return fmt.Errorf("%w: cluster %d member %s has label %d", ErrLabelMismatch, cl.id, c, v)
			}
			idx := g.Index(c)
			if seen[idx] {
				return fmt.Errorf("%w: %s", ErrOverlap, c)
			}
			seen[idx] = true
		}
	}

	last := gridgraph.FirstClusterID + len(k)
	for idx := 0; idx < g.Len(); idx++ {
		c := g.Coordinate(idx)
		v := g.At(c)
		switch {
		case v == gridgraph.Unlabeled:
			return fmt.Errorf("%w: %s", ErrUnlabeledCell, c)
		case v >= gridgraph.FirstClusterID && v < last && !seen[idx]:
			return fmt.Errorf("%w: %s carries label %d", ErrLabelCollision, c, v)
		}
	}
	return nil
}
