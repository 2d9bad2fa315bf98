// SPDX-License-Identifier: MIT
// Package: pathsearch/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// AttrFn returns the attributes of the vertex with the given index.
// The RNG may be nil.
type AttrFn func(idx int, rng *rand.Rand) map[string]any

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithUnknownRatio makes each edge unknown with probability p. Any p > 0
// needs an RNG at build time. Panics unless 0 ≤ p ≤ 1.
func WithUnknownRatio(p float64) BuilderOption {
	if math.IsNaN(p) || p < 0 || p > 1 {
		panic(fmt.Sprintf("builder: WithUnknownRatio(%g) outside [0,1]", p))
	}

	return func(c *builderConfig) { c.unknownRatio = p }
}

// WithAttrFn sets per-vertex attributes. Panics on nil.
func WithAttrFn(fn AttrFn) BuilderOption {
	if fn == nil {
		panic("builder: WithAttrFn(nil)")
	}

	return func(c *builderConfig) { c.attrFn = fn }
}
