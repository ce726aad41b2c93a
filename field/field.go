package field

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/clusterfield/builder"
	"github.com/katalvlaran/clusterfield/cluster"
	"github.com/katalvlaran/clusterfield/gridgraph"
)

// ErrInvalidArgument reports a grid dimension that is not a positive integer
// or an injected grid that cannot be used. It is the same value as
// builder.ErrInvalidArgument, so either sentinel matches with errors.Is.
var ErrInvalidArgument = builder.ErrInvalidArgument

// Field is a finished clustering run: the grid as generated, the same grid
// with cluster labels written in, and the clusters in creation order.
type Field struct {
	runID  uuid.UUID
	seed   int64
	seeded bool
	policy cluster.Policy
	source *gridgraph.Grid
	labels *gridgraph.Grid
	keeper cluster.Keeper
}

// Build generates a gridSize×gridSize grid and clusters it.
// Without WithSeed or WithRand a time-based seed is drawn and reported by
// Seed, so every run can be replayed.
//
// Returns an error wrapping ErrInvalidArgument when gridSize ≤ 0; no partial
// Field is returned.
func Build(gridSize int, opts ...Option) (*Field, error) {
	if gridSize <= 0 {
		return nil, fmt.Errorf("field: Build(%d): %w", gridSize, ErrInvalidArgument)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil && !cfg.seeded {
		cfg.seed, cfg.seeded = time.Now().UnixNano(), true
	}

	g, cands, err := builder.RandomGrid(gridSize, cfg.builderOptions()...)
	if err != nil {
		return nil, fmt.Errorf("field: %w", err)
	}
	return finish(g, cands, cfg)
}

// FromGrid clusters a caller-supplied square grid instead of a random one.
// rows use the Grid label convention: 0 empty, 1 occupied, ≥2 pre-assigned.
// Seed-related options are ignored.
func FromGrid(rows [][]int, opts ...Option) (*Field, error) {
	cfg := newConfig(opts...)
	cfg.seeded, cfg.rng = false, nil

	g, cands, err := builder.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("field: FromGrid: %w: %w", ErrInvalidArgument, err)
	}
	return finish(g, cands, cfg)
}

// finish runs the indexer on g, keeping an untouched copy as the source grid.
func finish(g *gridgraph.Grid, cands *gridgraph.Candidates, cfg config) (*Field, error) {
	f := &Field{
		runID:  uuid.New(),
		seed:   cfg.seed,
		seeded: cfg.seeded,
		policy: cfg.policy,
		source: g.Clone(),
		labels: g,
	}
	log := cfg.logger.With(zap.Stringer("run_id", f.runID))
	occupied := cands.Len()

	keeper, err := cluster.Index(g, cands, cfg.clusterOptions(log)...)
	if err != nil {
		return nil, fmt.Errorf("field: %w", err)
	}
	if err = keeper.Validate(g); err != nil {
		if errors.Is(err, cluster.ErrLabelCollision) {
			err = fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
		return nil, fmt.Errorf("field: %w", err)
	}
	f.keeper = keeper

	fields := []zap.Field{
		zap.Int("size", g.Size()),
		zap.Int("occupied", occupied),
		zap.Int("clusters", keeper.Len()),
		zap.Stringer("policy", cfg.policy),
	}
	if f.seeded {
		fields = append(fields, zap.Int64("seed", f.seed))
	}
	log.Info("field built", fields...)

	return f, nil
}

// RunID identifies this run in logs.
func (f *Field) RunID() uuid.UUID {
	return f.runID
}

// Seed returns the generator seed; ok is false for FromGrid fields and for
// fields built with WithRand.
func (f *Field) Seed() (seed int64, ok bool) {
	return f.seed, f.seeded
}

// Policy returns the label-collision policy the run used.
func (f *Field) Policy() cluster.Policy {
	return f.policy
}

// Size returns N for an N×N field.
func (f *Field) Size() int {
	return f.labels.Size()
}

// Label returns the final label at (row, col): 0 empty, ≥2 cluster id.
// Panics if (row, col) is outside the field.
func (f *Field) Label(row, col int) int {
	return f.labels.At(gridgraph.Coordinate{Row: row, Col: col})
}

// Occupied reports whether (row, col) was occupied in the generated grid.
// Panics if (row, col) is outside the field.
func (f *Field) Occupied(row, col int) bool {
	return f.source.At(gridgraph.Coordinate{Row: row, Col: col}) != gridgraph.Empty
}

// Grid returns a copy of the labeled grid.
func (f *Field) Grid() [][]int {
	return f.labels.Rows()
}

// Source returns a copy of the grid as generated (or injected), before labeling.
// A nil Field has no source and returns nil.
func (f *Field) Source() [][]int {
	if f == nil {
		return nil
	}
	return f.source.Rows()
}

// ClusterCount returns the number of clusters.
func (f *Field) ClusterCount() int {
	return f.keeper.Len()
}

// Clusters returns a deep copy of the clusters in creation order.
func (f *Field) Clusters() cluster.Keeper {
	if f == nil {
		return nil
	}
	return f.keeper.Clone()
}

// Cluster returns the k-th cluster (0-based creation order).
func (f *Field) Cluster(k int) (cluster.Cluster, bool) {
	if k < 0 || k >= f.keeper.Len() {
		return cluster.Cluster{}, false
	}
	return f.keeper[k], true
}
