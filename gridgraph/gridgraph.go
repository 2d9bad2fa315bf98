// SPDX-License-Identifier: MIT

package gridgraph

import (
	"math"

	"github.com/katalvlaran/pathsearch/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.Conn != Conn4 && opts.Conn != Conn8 {
		return nil, ErrBadConnectivity
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
	}
	if opts.UnknownValue != nil {
		u := *opts.UnknownValue
		gg.unknown = &u
	}

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether (x,y) is in bounds and a vertex of the store:
// its value reaches LandThreshold or equals the unknown marker.
func (gg *GridGraph) Passable(x, y int) bool {
	if !gg.InBounds(x, y) {
		return false
	}
	v := gg.CellValues[y][x]

	return v >= gg.LandThreshold || gg.isUnknown(v)
}

func (gg *GridGraph) isUnknown(v int) bool {
	return gg.unknown != nil && v == *gg.unknown
}

// MinCost returns the smallest known entry cost over passable cells, or 0
// when none is known. Heuristics scale by it to stay admissible.
func (gg *GridGraph) MinCost() float64 {
	low := math.Inf(1)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			v := gg.CellValues[y][x]
			if !gg.Passable(x, y) || gg.isUnknown(v) {
				continue
			}
			if f := float64(v); f < low {
				low = f
			}
		}
	}
	if math.IsInf(low, 1) || low < 0 {
		return 0
	}

	return low
}

// ToCoreGraph converts the GridGraph into a directed *core.Graph.
// Each passable cell at (x,y) becomes a vertex with ID "x,y" and attributes
// {x, y, value}. Edges follow gg.Conn and carry the same entry cost Lookup
// reports, so searches over either representation agree.
// Complexity: O(W×H×d), Memory: O(W×H + E).
func (gg *GridGraph) ToCoreGraph() (*core.Graph, error) {
	g := core.NewGraph(core.WithNegativeWeights())
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue
			}
			err := g.AddVertex(Point{x, y}.String(), core.WithAttrs(map[string]any{
				"x":     x,
				"y":     y,
				"value": gg.CellValues[y][x],
			}))
			if err != nil {
				return nil, err
			}
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue
			}
			from := Point{x, y}
			for _, n := range gg.neighbours(from) {
				var opts []core.EdgeOption
				if w, ok := n.Weight.Get(); ok {
					opts = append(opts, core.WithWeight(w))
				}
				if _, err := g.AddEdge(from.String(), n.ID.String(), opts...); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}
