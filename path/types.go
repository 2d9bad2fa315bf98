// SPDX-License-Identifier: MIT

package path

import "errors"

// Sentinel errors for path reconstruction.
var (
	// ErrNoPath is returned when a single-result search exhausts its frontier
	// without reaching the target. It is an expected outcome, not a defect.
	ErrNoPath = errors.New("path: no path to target")

	// ErrInvalidPath is returned when a predecessor chain is cyclic or refers
	// to a vertex that was never recorded.
	ErrInvalidPath = errors.New("path: inconsistent predecessor chain")
)

// Unit is the empty per-node payload of unweighted searches.
type Unit struct{}

// Record is what a search knows about one discovered vertex.
type Record[ID comparable, D any] struct {
	// Prev is the predecessor on the best known route. Valid only if HasPrev.
	Prev    ID
	HasPrev bool
	// Step is the number of edges from the start on that route.
	Step int
	// Dist is the cumulative payload at this vertex.
	Dist D
}

// Node is one element of a GraphPath.
type Node[ID comparable, D any] struct {
	ID      ID
	Payload D
}
