// SPDX-License-Identifier: MIT

package weight

import (
	"fmt"
	"math"
)

// PathWeight is the cumulative cost of a path.
//
// Crossings counts traversed edges whose weight was unknown and that were
// taken under the Infinity policy. Sum accumulates every finite weight on the
// path, across all segments separated by those crossings.
//
// Ordering is lexicographic: fewer Crossings always wins, then smaller Sum.
// A search therefore prefers any all-finite route over one that crosses an
// unknown edge, however cheap the latter looks numerically.
type PathWeight struct {
	Crossings int
	Sum       float64
}

// Zero is the weight of the empty path.
func Zero() PathWeight { return PathWeight{} }

// FromFloat converts a finite budget into a PathWeight.
// +Inf maps to a single crossing, the smallest non-finite weight.
func FromFloat(x float64) PathWeight {
	if math.IsInf(x, 1) {
		return PathWeight{Crossings: 1}
	}

	return PathWeight{Sum: x}
}

// Add returns w extended by a finite edge weight x.
func (w PathWeight) Add(x float64) PathWeight {
	return PathWeight{Crossings: w.Crossings, Sum: w.Sum + x}
}

// Cross returns w extended by one unknown-weight edge.
func (w PathWeight) Cross() PathWeight {
	return PathWeight{Crossings: w.Crossings + 1, Sum: w.Sum}
}

// AddHeuristic combines w with an A* estimate using the same crossing rule:
// the infinite marker counts as one crossing, a finite estimate adds to Sum.
func (w PathWeight) AddHeuristic(h Heuristic) PathWeight {
	if h.infinite {
		return w.Cross()
	}

	return w.Add(h.value)
}

// Compare returns -1, 0 or +1 as w is lighter than, equal to, or heavier than o.
func (w PathWeight) Compare(o PathWeight) int {
	switch {
	case w.Crossings < o.Crossings:
		return -1
	case w.Crossings > o.Crossings:
		return 1
	case w.Sum < o.Sum:
		return -1
	case w.Sum > o.Sum:
		return 1
	default:
		return 0
	}
}

// Less reports whether w is strictly lighter than o.
func (w PathWeight) Less(o PathWeight) bool { return w.Compare(o) < 0 }

// Equal reports whether w and o have identical ordering keys.
func (w PathWeight) Equal(o PathWeight) bool { return w.Compare(o) == 0 }

// Finite reports whether no unknown edge was crossed.
func (w PathWeight) Finite() bool { return w.Crossings == 0 }

// Float collapses w to a float64: Sum when finite, +Inf otherwise.
func (w PathWeight) Float() float64 {
	if w.Crossings > 0 {
		return math.Inf(1)
	}

	return w.Sum
}

// String renders "3.5" for finite weights and "2∞+3.5" otherwise.
func (w PathWeight) String() string {
	if w.Crossings == 0 {
		return fmt.Sprintf("%g", w.Sum)
	}

	return fmt.Sprintf("%d∞+%g", w.Crossings, w.Sum)
}
