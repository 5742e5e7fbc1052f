// Package builder contains unit tests for the configuration primitives
// (config and Option) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"
)

// TestDefaultConfig verifies the deterministic defaults.
func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := newConfig()
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil")
	}
	if cfg.randomWeights {
		t.Errorf("default weights must be constant")
	}
	for i := 0; i < 3; i++ {
		if w := cfg.weight(); w != DefaultEdgeWeight {
			t.Errorf("default weight: expected %d, got %d", DefaultEdgeWeight, w)
		}
	}
}

// TestWeightRange verifies bounds and seed reproducibility of ranged weights.
func TestWeightRange(t *testing.T) {
	t.Parallel()

	a := newConfig(WithSeed(42), WithWeightRange(3, 7))
	b := newConfig(WithWeightRange(3, 7), WithSeed(42))
	if !a.randomWeights {
		t.Fatalf("range 3..7 must draw random weights")
	}
	for i := 0; i < 100; i++ {
		wa, wb := a.weight(), b.weight()
		if wa < 3 || wa > 7 {
			t.Fatalf("weight %d outside [3,7]", wa)
		}
		if wa != wb {
			t.Fatalf("draw %d: same seed gave %d and %d", i, wa, wb)
		}
	}

	fixed := newConfig(WithWeightRange(5, 5))
	if fixed.randomWeights || fixed.weight() != 5 {
		t.Errorf("range 5..5 must be constant 5")
	}
}

// TestOptionOrder verifies last-wins semantics for the RNG.
func TestOptionOrder(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(1))
	cfg := newConfig(WithSeed(9), WithRand(r))
	if cfg.rng != r {
		t.Errorf("WithRand after WithSeed must win")
	}
}

// TestOptionPanics verifies option constructors reject meaningless input.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	cases := map[string]func(){
		"WithRand(nil)":          func() { WithRand(nil) },
		"WithWeightRange(0,3)":   func() { WithWeightRange(0, 3) },
		"WithWeightRange(5,4)":   func() { WithWeightRange(5, 4) },
		"WithWeightRange(-1,-1)": func() { WithWeightRange(-1, -1) },
	}
	for name, fn := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}
