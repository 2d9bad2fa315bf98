// SPDX-License-Identifier: MIT

package core

import (
	"github.com/katalvlaran/pathsearch/store"
)

var _ store.VertexStore[string, Vertex] = (*Graph)(nil)

// view is an immutable snapshot of one vertex and its outgoing edges.
type view struct {
	data  Vertex
	edges []store.Neighbour[string]
}

func (v *view) Neighbours() []string {
	ids := make([]string, len(v.edges))
	for i, e := range v.edges {
		ids[i] = e.ID
	}

	return ids
}

func (v *view) NeighboursWithWeight() []store.Neighbour[string] {
	out := make([]store.Neighbour[string], len(v.edges))
	copy(out, v.edges)

	return out
}

func (v *view) Data() Vertex { return v.data }

// Lookup implements store.VertexStore. The returned view is a snapshot: later
// insertions do not show through it. Neighbours appear in edge insertion
// order, parallel edges repeated.
func (g *Graph) Lookup(id string) (store.View[string, Vertex], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := g.out[id]
	nv := &view{data: snapshot(v), edges: make([]store.Neighbour[string], len(out))}
	for i, e := range out {
		nv.edges[i] = store.Neighbour[string]{ID: other(e, id), Weight: e.Weight}
	}

	return nv, nil
}
