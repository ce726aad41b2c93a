// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed and panics on nil in WithRand.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	// 1. By default, rng should be nil (no hidden randomness)
	if cfg := newBuilderConfig(); cfg.rng != nil {
		t.Error("default rng: expected nil")
	}

	// 2. WithSeed: two configs with the same seed produce the same stream
	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	for i := 0; i < 5; i++ {
		if x, y := a.rng.Float64(), b.rng.Float64(); x != y {
			t.Fatalf("WithSeed: draw %d differs: %v vs %v", i, x, y)
		}
	}

	// 3. WithRand attaches the provided generator as-is
	r := rand.New(rand.NewSource(1))
	if cfg := newBuilderConfig(WithRand(r)); cfg.rng != r {
		t.Error("WithRand: rng not attached")
	}

	// 4. WithRand(nil) panics at option construction
	defer func() {
		if recover() == nil {
			t.Error("WithRand(nil): expected panic")
		}
	}()
	_ = WithRand(nil)
}

// TestOccupancyOption verifies the threshold derived from WithOccupancy and
// the last-wins semantics of option application.
func TestOccupancyOption(t *testing.T) {
	t.Parallel()

	if cfg := newBuilderConfig(); cfg.emptyThreshold != EmptyThreshold {
		t.Errorf("default threshold = %v; want %v", cfg.emptyThreshold, EmptyThreshold)
	}
	cfg := newBuilderConfig(WithOccupancy(0.9), WithOccupancy(0.25))
	if cfg.emptyThreshold != 0.75 {
		t.Errorf("last-wins threshold = %v; want 0.75", cfg.emptyThreshold)
	}
	if !newBuilderConfig(WithOccupancy(1)).deterministic() {
		t.Error("occupancy 1 should be deterministic")
	}
	if newBuilderConfig().deterministic() {
		t.Error("default occupancy should not be deterministic")
	}

	for _, p := range []float64{-0.1, 1.5} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("WithOccupancy(%v): expected panic", p)
				}
			}()
			_ = WithOccupancy(p)
		}()
	}
}

// TestOccupancyOption_Error verifies that an out-of-range probability panics
// with ErrBadProbability rather than the grid-size sentinel.
func TestOccupancyOption_Error(t *testing.T) {
	t.Parallel()

	defer func() {
		err, ok := recover().(error)
		if !ok {
			t.Fatal("WithOccupancy(2): expected panic with error")
		}
		if !errors.Is(err, ErrBadProbability) {
			t.Errorf("err = %v; want ErrBadProbability", err)
		}
		if errors.Is(err, ErrInvalidArgument) || strings.Contains(err.Error(), "grid size") {
			t.Errorf("err = %q; must not report a grid size problem", err)
		}
	}()
	_ = WithOccupancy(2)
}
