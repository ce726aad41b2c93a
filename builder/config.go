// SPDX-License-Identifier: MIT
// Package: clusterfield/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng            = nil             (RandomGrid refuses to run without one)
//   • emptyThreshold = EmptyThreshold  (0.3 → 70% occupancy)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Draws below this value leave a cell empty.
	emptyThreshold float64
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:            nil,
		emptyThreshold: EmptyThreshold,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// deterministic reports whether the configured threshold makes every draw
// irrelevant (all cells empty or all occupied).
func (c builderConfig) deterministic() bool {
	return c.emptyThreshold <= MinProbability || c.emptyThreshold >= MaxProbability
}
