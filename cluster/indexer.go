package cluster

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/clusterfield/gridgraph"
)

// walker encapsulates mutable state of one indexing run.
type walker struct {
	grid    *gridgraph.Grid
	cands   *gridgraph.Candidates
	opts    Options
	offsets [][2]int
	stack   []gridgraph.Coordinate
	keeper  Keeper
}

// Index labels g in place and returns the clusters in creation order.
// cands is consumed: every candidate is removed by the time Index returns.
// Callers that need the original 0/1 grid should pass g.Clone().
//
// Returns ErrNilGrid or ErrNilCandidates for nil input, ErrCandidateMismatch
// if cands was not built for g, and ErrOptionViolation for bad options.
// On error g and cands are left untouched.
func Index(g *gridgraph.Grid, cands *gridgraph.Candidates, opts ...Option) (Keeper, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if cands == nil {
		return nil, ErrNilCandidates
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := checkCandidates(g, cands); err != nil {
		return nil, err
	}

	w := &walker{
		grid:    g,
		cands:   cands,
		opts:    o,
		offsets: o.Conn.Offsets(),
		stack:   make([]gridgraph.Coordinate, 0, g.Size()),
		keeper:  make(Keeper, 0),
	}
	o.Logger.Debug("indexing grid",
		zap.Int("size", g.Size()),
		zap.Int("candidates", cands.Len()),
		zap.Stringer("policy", o.Policy),
		zap.Stringer("conn", o.Conn),
	)

	w.loop()

	o.Logger.Debug("indexing complete", zap.Int("clusters", len(w.keeper)))
	return w.keeper, nil
}

// checkCandidates verifies cands matches g's size and that every live
// candidate is an Unlabeled cell of g.
func checkCandidates(g *gridgraph.Grid, cands *gridgraph.Candidates) error {
	if cands.Size() != g.Size() {
		return fmt.Errorf("%w: candidates for %d×%d, grid is %d×%d",
			ErrCandidateMismatch, cands.Size(), cands.Size(), g.Size(), g.Size())
	}
	for _, c := range cands.Slice() {
		if v := g.At(c); v != gridgraph.Unlabeled {
			return fmt.Errorf("%w: candidate %s has label %d", ErrCandidateMismatch, c, v)
		}
	}
	return nil
}

// loop grows one cluster per remaining candidate, newest candidate first.
func (w *walker) loop() {
	for {
		seed, ok := w.cands.Last()
		if !ok {
			return
		}
		w.grow(seed)
	}
}

// grow floods the cluster rooted at seed with a fresh id until the work
// stack drains, then records it.
func (w *walker) grow(seed gridgraph.Coordinate) {
	id := gridgraph.FirstClusterID + len(w.keeper)
	cl := Cluster{id: id, points: []gridgraph.Coordinate{seed}}

	w.label(seed, id)
	w.stack = append(w.stack[:0], seed)

	var cur gridgraph.Coordinate
	for len(w.stack) > 0 {
		// pop
		cur = w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		for _, d := range w.offsets {
			nb := cur.Translate(d[0], d[1])
			if !w.grid.Contains(nb) {
				continue
			}
			if !w.opts.Policy.accepts(w.grid.At(nb), id) {
				continue
			}
			w.label(nb, id)
			cl.points = append(cl.points, nb)
			w.stack = append(w.stack, nb)
		}
		// cur is settled once its neighbours have been scanned
		w.cands.Remove(cur)
	}

	w.keeper = append(w.keeper, cl)
	w.opts.OnCluster(cl.clone())
	w.opts.Logger.Debug("cluster complete",
		zap.Int("id", id),
		zap.Stringer("seed", seed),
		zap.Int("size", cl.Len()),
	)
}

// label writes id into the grid and notifies OnVisit.
func (w *walker) label(c gridgraph.Coordinate, id int) {
	w.grid.Set(c, id)
	w.opts.OnVisit(c, id)
}
