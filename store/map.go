// SPDX-License-Identifier: MIT

package store

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/weight"
)

// Vertex is a plain View implementation: an ordered edge list plus data.
type Vertex[ID comparable, D any] struct {
	Edges   []Neighbour[ID]
	Payload D
}

// Neighbours implements View.
func (v *Vertex[ID, D]) Neighbours() []ID {
	ids := make([]ID, len(v.Edges))
	for i, e := range v.Edges {
		ids[i] = e.ID
	}

	return ids
}

// NeighboursWithWeight implements View. The returned slice is a copy.
func (v *Vertex[ID, D]) NeighboursWithWeight() []Neighbour[ID] {
	out := make([]Neighbour[ID], len(v.Edges))
	copy(out, v.Edges)

	return out
}

// Data implements View.
func (v *Vertex[ID, D]) Data() D { return v.Payload }

// Map is the smallest possible VertexStore: a Go map of vertices.
// It is not safe for concurrent mutation; build it first, then search.
type Map[ID comparable, D any] map[ID]*Vertex[ID, D]

// Lookup implements VertexStore.
func (m Map[ID, D]) Lookup(id ID) (View[ID, D], error) {
	v, ok := m[id]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEntity, id)
	}

	return v, nil
}

// Add inserts (or replaces the payload of) vertex id.
func (m Map[ID, D]) Add(id ID, data D) {
	if v, ok := m[id]; ok {
		v.Payload = data

		return
	}
	m[id] = &Vertex[ID, D]{Payload: data}
}

// Link appends the edge from→to with weight w, creating from if needed.
// The target is not created: edges to absent IDs are unreachable by contract.
func (m Map[ID, D]) Link(from, to ID, w weight.Edge) {
	v, ok := m[from]
	if !ok {
		v = &Vertex[ID, D]{}
		m[from] = v
	}
	v.Edges = append(v.Edges, Neighbour[ID]{ID: to, Weight: w})
}
