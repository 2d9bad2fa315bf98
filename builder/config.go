// SPDX-License-Identifier: MIT
// Package: pathsearch/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn         = DefaultIDFn        ("0","1","2",...)
//   • rng          = nil                 (pure/deterministic unless seeded)
//   • weightFn     = DefaultWeightFn     (constant DefaultEdgeWeight)
//   • unknownRatio = 0                   (every edge known)
//   • attrFn       = nil                 (no attributes)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn         IDFn
	rng          *rand.Rand
	weightFn     WeightFn
	unknownRatio float64
	attrFn       AttrFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
