package reveal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/clusterfield/cluster"
)

// ErrStepOutOfRange is returned by Seek for a step outside [0, Len()].
var ErrStepOutOfRange = errors.New("reveal: step out of range")

// Source is the read side of a finished run. *field.Field implements it.
type Source interface {
	// Source returns the grid before labeling: 0 empty, 1 occupied.
	Source() [][]int
	// Clusters returns the clusters in creation order.
	Clusters() cluster.Keeper
}

// Cursor steps through the clusters of a run.
type Cursor struct {
	base   [][]int
	keeper cluster.Keeper
	step   int
}

// New returns a fully revealed cursor over src.
// Panics if src is nil or has no source grid (such as a nil *field.Field).
func New(src Source) *Cursor {
	if src == nil {
		panic("reveal: New(nil)")
	}
	base := src.Source()
	if base == nil {
		panic("reveal: New(nil)")
	}
	keeper := src.Clusters()
	return &Cursor{
		base:   base,
		keeper: keeper,
		step:   keeper.Len(),
	}
}

// Len returns the number of clusters, the largest valid step.
func (c *Cursor) Len() int {
	return c.keeper.Len()
}

// Step returns how many clusters are currently revealed.
func (c *Cursor) Step() int {
	return c.step
}

// CanUndo reports whether at least one cluster is revealed.
func (c *Cursor) CanUndo() bool {
	return c.step-1 >= 0
}

// CanRedo reports whether at least one cluster is hidden.
func (c *Cursor) CanRedo() bool {
	return c.step+1 <= c.keeper.Len()
}

// Undo hides the most recently revealed cluster, if any, and reports whether
// Undo and Redo are available afterwards.
func (c *Cursor) Undo() (canUndo, canRedo bool) {
	if c.CanUndo() {
		c.step--
	}
	return c.CanUndo(), c.CanRedo()
}

// Redo reveals the next cluster, if any, and reports whether Undo and Redo
// are available afterwards.
func (c *Cursor) Redo() (canUndo, canRedo bool) {
	if c.CanRedo() {
		c.step++
	}
	return c.CanUndo(), c.CanRedo()
}

// Seek jumps to step. On error the cursor is unchanged.
func (c *Cursor) Seek(step int) error {
	if step < 0 || step > c.keeper.Len() {
		return fmt.Errorf("%w: %d not in [0,%d]", ErrStepOutOfRange, step, c.keeper.Len())
	}
	c.step = step
	return nil
}

// Current returns the cluster revealed last, or false at step 0.
func (c *Cursor) Current() (cluster.Cluster, bool) {
	if c.step == 0 {
		return cluster.Cluster{}, false
	}
	return c.keeper[c.step-1], true
}

// Snapshot returns a fresh grid: the source with the first Step() clusters
// painted with their labels, in discovery order.
// Complexity: O(N² + Σ|revealed cluster|).
func (c *Cursor) Snapshot() [][]int {
	out := make([][]int, len(c.base))
	for r, row := range c.base {
		out[r] = append([]int(nil), row...)
	}
	for _, cl := range c.keeper[:c.step] {
		id := cl.ID()
		for _, p := range cl.Points() {
			out[p.Row][p.Col] = id
		}
	}
	return out
}
