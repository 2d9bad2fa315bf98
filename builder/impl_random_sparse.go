// SPDX-License-Identifier: MIT
// Package: pathsearch/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Model: Erdős–Rényi-like generator, each admissible edge included
// independently with probability p.
//   - Undirected: unordered pairs {i,j} with i<j.
//   - Directed: ordered pairs (i,j); self-loops iff g.Looped().
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism: stable trial order (i asc, j asc); one Bernoulli draw per
// trial, then the edge's own draws (unknown flag, weight) when included.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathsearch/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that samples a graph over n vertices
// with independent edge probability p.
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(methodRandomSparse, g, cfg, n); err != nil {
			return err
		}

		directed, loops := g.Directed(), g.Looped()
		for i := 0; i < n; i++ {
			j0 := i + 1
			if directed {
				j0 = 0
			}
			for j := j0; j < n; j++ {
				if i == j && !loops {
					continue
				}
				if !include(cfg, p) {
					continue
				}
				if err := connect(methodRandomSparse, g, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// include runs one Bernoulli(p) trial; p ∈ {0,1} needs no RNG.
func include(cfg builderConfig, p float64) bool {
	switch p {
	case 0:
		return false
	case 1:
		return true
	}

	return cfg.rng.Float64() < p
}
