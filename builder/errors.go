// SPDX-License-Identifier: MIT
// Package: clusterfield/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w via builderErrorf.
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a requested grid dimension that is not a
// positive integer. No grid is produced.
// Usage: if errors.Is(err, ErrInvalidArgument) { /* ask for a new size */ }.
var ErrInvalidArgument = errors.New("builder: grid size must be a positive integer")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadProbability indicates an occupancy probability outside
// [MinProbability, MaxProbability].
var ErrBadProbability = errors.New("builder: probability out of range")

// ErrBadRows indicates that FromRows received an empty, ragged or non-square
// matrix, or a negative label.
var ErrBadRows = errors.New("builder: invalid rows")

// builderErrorf prefixes a wrapped error with the constructor name.
// Its result has the form "<Method>: <formatted message>: <err>".
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, inner, err)
}
