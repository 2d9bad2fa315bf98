// SPDX-License-Identifier: MIT
// Package: pathsearch/builder
//
// impl_star.go - Star(n) and Complete(n) constructors.
//
// Contract:
//   - Star: n ≥ 2; the hub is idFn(0), leaves idFn(1..n-1); edges hub -> leaf.
//   - Complete: n ≥ 1; edges i -> j for every i < j in lexicographic index
//     order, mirrored j -> i right after on directed graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/core"
)

const (
	methodStar       = "Star"
	methodComplete   = "Complete"
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Star returns a Constructor that builds a star with n-1 leaves.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodStar, g, cfg, n); err != nil {
			return err
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := connect(methodStar, g, cfg, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds the complete graph K_n.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(methodComplete, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				u, v := cfg.idFn(i), cfg.idFn(j)
				if err := connect(methodComplete, g, cfg, u, v); err != nil {
					return err
				}
				if g.Directed() {
					if err := connect(methodComplete, g, cfg, v, u); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
