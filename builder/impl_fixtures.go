// SPDX-License-Identifier: MIT
// Package: clusterfield/builder
//
// impl_fixtures.go - deterministic grids for tests, examples and injected runs.
//
// Every fixture returns the grid and the candidate set of its Unlabeled cells
// in row-major insertion order, exactly what RandomGrid would hand over for
// the same layout.

package builder

import (
	"fmt"

	"github.com/katalvlaran/clusterfield/gridgraph"
)

// Full returns an n×n grid with every cell occupied.
func Full(n int) (*gridgraph.Grid, *gridgraph.Candidates, error) {
	return pattern(MethodFull, n, func(_, _ int) bool { return true })
}

// Empty returns an n×n grid with no occupied cell and an empty candidate set.
func Empty(n int) (*gridgraph.Grid, *gridgraph.Candidates, error) {
	return pattern(MethodEmpty, n, func(_, _ int) bool { return false })
}

// Checkerboard returns an n×n grid occupied where (row+col) is even, so no two
// occupied cells are 4-adjacent.
func Checkerboard(n int) (*gridgraph.Grid, *gridgraph.Candidates, error) {
	return pattern(MethodCheckerboard, n, func(r, c int) bool { return (r+c)%2 == 0 })
}

// FromRows injects a caller-supplied grid, bypassing random generation.
// Labels are copied as-is: 0 empty, 1 candidate, ≥2 a label assigned before
// this run. Negative labels and malformed matrices yield ErrBadRows.
// Complexity: O(n²).
func FromRows(rows [][]int) (*gridgraph.Grid, *gridgraph.Candidates, error) {
	g, err := gridgraph.From2D(rows)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w: %w", MethodFromRows, err, ErrBadRows)
	}
	if err := validateLabels(MethodFromRows, rows); err != nil {
		return nil, nil, err
	}
	return g, gridgraph.CandidatesOf(g), nil
}

// pattern builds an n×n grid where occupied(r,c) decides each cell.
func pattern(method string, n int, occupied func(r, c int) bool) (*gridgraph.Grid, *gridgraph.Candidates, error) {
	if err := validateGridSize(method, n); err != nil {
		return nil, nil, err
	}
	g, err := gridgraph.NewGrid(n)
	if err != nil {
		return nil, nil, builderErrorf(method, ErrInvalidArgument, "%v", err)
	}
	var c gridgraph.Coordinate
	for c.Row = 0; c.Row < n; c.Row++ {
		for c.Col = 0; c.Col < n; c.Col++ {
			if occupied(c.Row, c.Col) {
				g.Set(c, gridgraph.Unlabeled)
			}
		}
	}
	return g, gridgraph.CandidatesOf(g), nil
}
