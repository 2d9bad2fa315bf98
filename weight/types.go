// SPDX-License-Identifier: MIT

package weight

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for weight handling.
var (
	// ErrNegativeWeight is returned when a finite edge weight below zero is observed.
	// Searches abort as soon as they see one.
	ErrNegativeWeight = errors.New("weight: negative edge weight encountered")

	// ErrBadPolicy is returned for unrecognised policy text and for a
	// non-finite Value substitute.
	ErrBadPolicy = errors.New("weight: unrecognised missing-weight policy")
)

// Edge is the weight of a single edge as reported by a store.
// It is either a known finite value or unknown (absent).
// The zero value is an unknown weight.
type Edge struct {
	value float64
	known bool
}

// Known returns an Edge carrying the finite value x.
// Negative values are representable so that searches can reject them;
// NaN and ±Inf are stored as unknown.
func Known(x float64) Edge {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Edge{}
	}

	return Edge{value: x, known: true}
}

// Unknown returns an Edge with no weight information.
func Unknown() Edge { return Edge{} }

// Get returns the value and whether it is known.
func (e Edge) Get() (float64, bool) { return e.value, e.known }

// IsKnown reports whether the weight is known.
func (e Edge) IsKnown() bool { return e.known }

// String renders the weight, "?" when unknown.
func (e Edge) String() string {
	if !e.known {
		return "?"
	}

	return fmt.Sprintf("%g", e.value)
}

// Heuristic is an A* estimate of the remaining cost to the goal.
// It is either a non-negative finite value or explicitly infinite.
type Heuristic struct {
	value    float64
	infinite bool
}

// Estimate returns a finite heuristic. Negative, NaN or infinite inputs
// collapse to the infinite marker, since they cannot be added to a PathWeight
// without breaking its ordering.
func Estimate(x float64) Heuristic {
	if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return InfiniteHeuristic()
	}

	return Heuristic{value: x}
}

// InfiniteHeuristic returns the explicit infinite marker.
func InfiniteHeuristic() Heuristic { return Heuristic{infinite: true} }

// ZeroHeuristic is the trivial admissible heuristic; A* with it behaves like Dijkstra.
func ZeroHeuristic() Heuristic { return Heuristic{} }

// IsInfinite reports whether h is the infinite marker.
func (h Heuristic) IsInfinite() bool { return h.infinite }

// Value returns the finite estimate, or +Inf for the infinite marker.
func (h Heuristic) Value() float64 {
	if h.infinite {
		return math.Inf(1)
	}

	return h.value
}
