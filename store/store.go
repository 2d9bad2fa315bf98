// SPDX-License-Identifier: MIT

// Package store declares the read-only capabilities a vertex store must
// offer to the search packages.
//
// A store maps an opaque, comparable vertex ID to a View. The View exposes
// the outgoing neighbours in a stable order (with or without edge weights)
// and the vertex's auxiliary data, which predicates and heuristics consume.
// Both come from one Lookup, so a search never needs a second round trip to
// evaluate a predicate on a vertex it just expanded.
//
// Searches never mutate a store and never cache views across calls. A store
// must present a stable view for the duration of one search; concurrent
// searches over a read-only store are safe.
package store

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathsearch/weight"
)

// ErrInvalidEntity is returned when a vertex ID is not present in the store.
var ErrInvalidEntity = errors.New("store: vertex not present")

// Neighbour is one outgoing edge: the target ID and the edge weight.
type Neighbour[ID comparable] struct {
	ID     ID
	Weight weight.Edge
}

// View is a read-only snapshot of one vertex.
type View[ID comparable, D any] interface {
	// Neighbours returns the outgoing neighbour IDs in store order.
	Neighbours() []ID
	// NeighboursWithWeight returns the outgoing edges in the same order.
	NeighboursWithWeight() []Neighbour[ID]
	// Data returns the auxiliary per-vertex payload.
	Data() D
}

// VertexStore resolves vertex IDs to views.
// Lookup must return an error wrapping ErrInvalidEntity for unknown IDs.
type VertexStore[ID comparable, D any] interface {
	Lookup(id ID) (View[ID, D], error)
}

// Require looks up id and wraps a miss with the role it plays in a search
// ("start", "end"), so callers can tell which argument was bad.
func Require[ID comparable, D any](s VertexStore[ID, D], id ID, role string) (View[ID, D], error) {
	v, err := s.Lookup(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s vertex %v", ErrInvalidEntity, role, id)
	}

	return v, nil
}
