// SPDX-License-Identifier: MIT
// Package: clusterfield/builder
//
// validators.go - parameter checks shared by the grid constructors.
//
// Each check returns a builderErrorf-wrapped sentinel when its precondition
// is violated, so callers see "<Method>: <detail>: <sentinel text>".

package builder

import (
	"github.com/katalvlaran/clusterfield/gridgraph"
)

// validateGridSize ensures n ≥ MinGridSize.
// Complexity: O(1).
func validateGridSize(method string, n int) error {
	if n < MinGridSize {
		return builderErrorf(method, ErrInvalidArgument, "n=%d < min=%d", n, MinGridSize)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Complexity: O(1).
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return builderErrorf(method, ErrBadProbability, "probability must be in [%.1f,%.1f], got %g", MinProbability, MaxProbability, p)
	}

	return nil
}

// validateLabels rejects negative labels in an injected matrix.
// Complexity: O(n²).
func validateLabels(method string, rows [][]int) error {
	for r, row := range rows {
		for c, v := range row {
			if v < gridgraph.Empty {
				return builderErrorf(method, ErrBadRows, "negative label %d at (%d,%d)", v, r, c)
			}
		}
	}

	return nil
}
