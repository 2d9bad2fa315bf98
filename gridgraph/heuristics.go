// SPDX-License-Identifier: MIT

package gridgraph

import (
	"math"

	"github.com/katalvlaran/pathsearch/weight"
)

// HeuristicFn estimates the remaining cost from v to goal; it matches the
// astar.Search heuristic for a GridGraph store.
type HeuristicFn func(v, goal Cell) weight.Heuristic

// Manhattan returns |dx|+|dy| scaled by gg.MinCost(). Admissible under Conn4.
func (gg *GridGraph) Manhattan() HeuristicFn {
	scale := gg.MinCost()

	return func(v, goal Cell) weight.Heuristic {
		dx, dy := absDelta(v, goal)

		return weight.Estimate((dx + dy) * scale)
	}
}

// Euclidean returns the straight-line distance scaled by gg.MinCost().
// Admissible under both connectivities.
func (gg *GridGraph) Euclidean() HeuristicFn {
	scale := gg.MinCost()

	return func(v, goal Cell) weight.Heuristic {
		dx, dy := absDelta(v, goal)

		return weight.Estimate(math.Hypot(dx, dy) * scale)
	}
}

// Octile returns the exact move cost on a uniform Conn8 grid: straight steps
// for the difference and diagonal steps for the shared part, scaled by
// gg.MinCost().
func (gg *GridGraph) Octile() HeuristicFn {
	scale := gg.MinCost()

	return func(v, goal Cell) weight.Heuristic {
		dx, dy := absDelta(v, goal)
		lo, hi := math.Min(dx, dy), math.Max(dx, dy)

		return weight.Estimate(((hi - lo) + math.Sqrt2*lo) * scale)
	}
}

// Towards binds goal so h can serve the single-argument heuristic of
// astar.ComputedEnd and astar.MultiEnd.
func Towards(h HeuristicFn, goal Cell) func(Cell) weight.Heuristic {
	return func(v Cell) weight.Heuristic { return h(v, goal) }
}

func absDelta(a, b Cell) (float64, float64) {
	return math.Abs(float64(a.X - b.X)), math.Abs(float64(a.Y - b.Y))
}
