// SPDX-License-Identifier: MIT
// Package: clusterfield/builder
//
// impl_random_grid.go - implementation of RandomGrid(n).
//
// Contract:
//   - n ≥ MinGridSize (else ErrInvalidArgument, no grid).
//   - cfg.rng must be non-nil unless the occupancy is 0 or 1 (else ErrNeedRandSource).
//   - Exactly one rng.Float64() draw per cell, row-major: (0,0), (0,1), …, (n-1,n-1).
//   - draw ≥ cfg.emptyThreshold → label Unlabeled and appended to the candidate set;
//     otherwise the cell stays Empty.
//
// Complexity:
//   - Time:  O(n²) draws.
//   - Space: O(n²) for the grid plus O(n²) for the candidate liveness table.

package builder

import (
	"github.com/katalvlaran/clusterfield/gridgraph"
)

// RandomGrid samples an n×n occupancy grid and its initial candidate set.
// The candidate set lists occupied cells in row-major insertion order.
func RandomGrid(n int, opts ...BuilderOption) (*gridgraph.Grid, *gridgraph.Candidates, error) {
	// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
	if err := validateGridSize(MethodRandomGrid, n); err != nil {
		return nil, nil, err
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil && !cfg.deterministic() {
		return nil, nil, builderErrorf(MethodRandomGrid, ErrNeedRandSource, "occupancy %.2f needs a random source", MaxProbability-cfg.emptyThreshold)
	}

	g, err := gridgraph.NewGrid(n)
	if err != nil {
		return nil, nil, builderErrorf(MethodRandomGrid, ErrInvalidArgument, "%v", err)
	}
	cands := gridgraph.NewCandidates(n)

	// 2) One draw per cell in a stable order keeps a fixed seed reproducible.
	var c gridgraph.Coordinate
	for c.Row = 0; c.Row < n; c.Row++ {
		for c.Col = 0; c.Col < n; c.Col++ {
			if !cfg.occupied() {
				continue
			}
			g.Set(c, gridgraph.Unlabeled)
			_ = cands.Add(c) // in bounds by construction
		}
	}

	return g, cands, nil
}

// occupied draws once and applies the threshold. Without an RNG the
// threshold alone decides (deterministic configs only).
func (c builderConfig) occupied() bool {
	if c.rng == nil {
		return c.emptyThreshold <= MinProbability
	}
	return c.rng.Float64() >= c.emptyThreshold
}
