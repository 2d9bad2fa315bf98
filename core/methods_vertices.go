// SPDX-License-Identifier: MIT

// File: methods_vertices.go
// Role: Vertex insertion & queries.
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.

package core

import "sort"

// AddVertex inserts a vertex if missing and applies opts to its attributes.
// Adding an existing vertex merges the new attributes into the old ones.
//
// Errors: ErrEmptyVertexID if id == "".
// Complexity: O(1) amortized plus the attributes written.
func (g *Graph) AddVertex(id string, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id, opts)

	return nil
}

// addVertexLocked requires g.mu held for writing.
func (g *Graph) addVertexLocked(id string, opts []VertexOption) *Vertex {
	v, ok := g.vertices[id]
	if !ok {
		v = &Vertex{ID: id, Attrs: make(Attrs)}
		g.vertices[id] = v
	}
	for _, opt := range opts {
		opt(v.Attrs)
	}

	return v
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a snapshot of vertex id.
func (g *Graph) Vertex(id string) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}

	return snapshot(v), nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

func snapshot(v *Vertex) Vertex {
	attrs := make(Attrs, len(v.Attrs))
	for k, x := range v.Attrs {
		attrs[k] = x
	}

	return Vertex{ID: v.ID, Attrs: attrs}
}
