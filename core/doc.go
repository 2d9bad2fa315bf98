// SPDX-License-Identifier: MIT

// Package core provides a thread-safe in-memory Graph that every search in
// this module can run on directly: *Graph implements
// store.VertexStore[string, core.Vertex].
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected, directed by default)
//   - Per-edge orientation in “mixed” graphs (WithMixedEdges + WithEdgeDirected)
//   - Known vs. unknown edge weights (WithWeight; edges without it are unknown)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Negative weights for representation only (WithNegativeWeights)
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …)
//
// Vertices carry free-form Attrs (WithAttr, WithAttrs). Searches see them as
// the view's Data, a core.Vertex snapshot holding the ID and a copy of the
// attributes, so predicates and heuristics can read both.
//
// Lookup semantics:
//
//	– Neighbours come back in edge insertion order; parallel edges repeat.
//	– An undirected edge u–v is listed under both u and v.
//	– The view is a snapshot; writes after Lookup are not visible through it.
//	– A missing vertex yields ErrVertexNotFound, which wraps
//	  store.ErrInvalidEntity.
//
// Errors:
//
//	ErrEmptyVertexID        - vertex ID is the empty string.
//	ErrVertexNotFound       - requested vertex does not exist.
//	ErrBadWeight            - NaN/Inf weight, or negative without WithNegativeWeights.
//	ErrLoopNotAllowed       - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed  - parallel edge when multi-edges are disabled.
//	ErrMixedEdgesNotAllowed - per-edge direction override without WithMixedEdges.
//
// Concurrency:
//
// A single sync.RWMutex guards vertices, edges and adjacency. Mutations take
// the write lock and queries the read lock, so concurrent AddEdge and Lookup
// calls are safe. Edge IDs come from an atomic counter.
//
// Complexity:
//
//   - AddVertex, AddEdge: O(1) amortized (O(deg) for the multi-edge check).
//   - Lookup: O(deg(v) + |attrs|).
//   - Vertices, Edges: O(n log n) for the sort.
package core
