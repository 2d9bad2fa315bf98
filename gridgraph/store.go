// SPDX-License-Identifier: MIT

package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathsearch/store"
	"github.com/katalvlaran/pathsearch/weight"
)

var _ store.VertexStore[Point, Cell] = (*GridGraph)(nil)

type cellView struct {
	cell  Cell
	edges []store.Neighbour[Point]
}

func (v cellView) Neighbours() []Point {
	out := make([]Point, len(v.edges))
	for i, e := range v.edges {
		out[i] = e.ID
	}

	return out
}

func (v cellView) NeighboursWithWeight() []store.Neighbour[Point] {
	out := make([]store.Neighbour[Point], len(v.edges))
	copy(out, v.edges)

	return out
}

func (v cellView) Data() Cell { return v.cell }

// Lookup implements store.VertexStore. Only passable cells are vertices;
// anything else wraps store.ErrInvalidEntity.
//
// The weight of an edge is the entry cost of the cell it leads to, scaled by
// √2 on diagonals. Edges into cells holding the unknown marker are unknown.
func (gg *GridGraph) Lookup(p Point) (store.View[Point, Cell], error) {
	if !gg.Passable(p.X, p.Y) {
		return nil, fmt.Errorf("%w: cell %v", store.ErrInvalidEntity, p)
	}

	return cellView{
		cell:  Cell{Point: p, Value: gg.CellValues[p.Y][p.X]},
		edges: gg.neighbours(p),
	}, nil
}

func (gg *GridGraph) neighbours(p Point) []store.Neighbour[Point] {
	out := make([]store.Neighbour[Point], 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		nx, ny := p.X+d[0], p.Y+d[1]
		if !gg.Passable(nx, ny) {
			continue
		}
		v := gg.CellValues[ny][nx]
		w := weight.Unknown()
		if !gg.isUnknown(v) {
			cost := float64(v)
			if d[0] != 0 && d[1] != 0 {
				cost *= math.Sqrt2
			}
			w = weight.Known(cost)
		}
		out = append(out, store.Neighbour[Point]{ID: Point{nx, ny}, Weight: w})
	}

	return out
}
