// SPDX-License-Identifier: MIT
// Package: pathsearch/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1 (else ErrTooFewVertices).
//   - Vertex IDs are "r,c" regardless of cfg.idFn; each vertex carries the
//     attributes "row" and "col" plus cfg.attrFn(r*cols+c).
//   - Row-major emission: for each cell, the edge to the right neighbour,
//     then the edge to the one below.
//
// Complexity: O(rows*cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighbourhood lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: %dx%d below %dx%d: %w", methodGrid, rows, cols, minGridDim, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := gridVertexID(r, c)
				if err := addVertex(methodGrid, g, cfg, r*cols+c, id); err != nil {
					return err
				}
				if err := g.AddVertex(id, core.WithAttr("row", r), core.WithAttr("col", c)); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w: %w", methodGrid, id, err, ErrConstructFailed)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := gridVertexID(r, c)
				if c+1 < cols {
					if err := connect(methodGrid, g, cfg, u, gridVertexID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(methodGrid, g, cfg, u, gridVertexID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
