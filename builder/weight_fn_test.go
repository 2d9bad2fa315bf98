// Package builder_test contains unit tests for the WeightFn implementations
// and option constructors, covering both behavior and panic conditions.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathsearch/builder"
)

// assertPanics fails t unless fn panics.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

// TestConstructorsPanic verifies that WeightFn and option constructors panic
// on invalid parameters according to their documented contracts.
func TestConstructorsPanic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"ConstantWeightFn_negative", func() { builder.ConstantWeightFn(-1) }},
		{"UniformWeightFn_minNegative", func() { builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() { builder.UniformWeightFn(5, 4) }},
		{"ExponentialWeightFn_zeroRate", func() { builder.ExponentialWeightFn(0) }},
		{"WithUnknownRatio_above", func() { builder.WithUnknownRatio(1.5) }},
		{"WithUnknownRatio_negative", func() { builder.WithUnknownRatio(-0.1) }},
		{"WithIDScheme_nil", func() { builder.WithIDScheme(nil) }},
		{"WithWeightFn_nil", func() { builder.WithWeightFn(nil) }},
		{"WithRand_nil", func() { builder.WithRand(nil) }},
		{"WithAttrFn_nil", func() { builder.WithAttrFn(nil) }},
		{"SymbolIDFn_range", func() { builder.SymbolIDFn(26) }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assertPanics(t, tc.fn, tc.name)
		})
	}
}

// TestWeightFnValues checks ranges and the nil-RNG fallback.
func TestWeightFnValues(t *testing.T) {
	if got := builder.DefaultWeightFn(nil); got != builder.DefaultEdgeWeight {
		t.Errorf("DefaultWeightFn = %g; want %g", got, builder.DefaultEdgeWeight)
	}
	if got := builder.ConstantWeightFn(2.5)(nil); got != 2.5 {
		t.Errorf("ConstantWeightFn(2.5) = %g", got)
	}
	if got := builder.UniformWeightFn(3, 3)(rand.New(rand.NewSource(1))); got != 3 {
		t.Errorf("UniformWeightFn(3,3) = %g; want 3", got)
	}
	if got := builder.UniformWeightFn(3, 9)(nil); got != builder.DefaultEdgeWeight {
		t.Errorf("UniformWeightFn nil rng = %g; want default", got)
	}

	rng := rand.New(rand.NewSource(7))
	uni, exp := builder.UniformWeightFn(2, 4), builder.ExponentialWeightFn(0.5)
	for i := 0; i < 1000; i++ {
		if w := uni(rng); w < 2 || w >= 4 {
			t.Fatalf("UniformWeightFn(2,4) = %g", w)
		}
		if w := exp(rng); w < 0 {
			t.Fatalf("ExponentialWeightFn = %g < 0", w)
		}
	}
}
