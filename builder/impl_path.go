// SPDX-License-Identifier: MIT
// Package: pathsearch/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   - Path: n ≥ 2, Cycle: n ≥ 3 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1) -> i for i=1..n-1 in stable increasing order;
//     Cycle closes with (n-1) -> 0.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return chain(methodPath, g, cfg, n, false)
	}
}

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return chain(methodCycle, g, cfg, n, true)
	}
}

func chain(method string, g *core.Graph, cfg builderConfig, n int, closed bool) error {
	if err := addVertices(method, g, cfg, n); err != nil {
		return err
	}
	for i := 1; i < n; i++ {
		if err := connect(method, g, cfg, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
			return err
		}
	}
	if closed {
		return connect(method, g, cfg, cfg.idFn(n-1), cfg.idFn(0))
	}

	return nil
}
