// SPDX-License-Identifier: MIT

// File: methods_edges.go
// Role: Edge insertion & queries: AddEdge/HasEdge/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by numeric edge ID (insertion order).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync/atomic"

	"github.com/katalvlaran/pathsearch/weight"
)

// edgeIDPrefix is the textual prefix of edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to, creating missing endpoints, and returns
// its ID. Without WithWeight the edge weight is unknown.
//
// Steps:
//  1. Validate IDs, options, weight and loops.
//  2. Lock mu, check the multi-edge constraint.
//  3. Generate the edge ID, store the edge, append it to out[from]
//     (and out[to] when undirected and not a loop).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	cfg := edgeConfig{directed: g.directed}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.hasDirected && !g.allowMixed {
		return "", ErrMixedEdgesNotAllowed
	}
	if cfg.hasWeight {
		x := cfg.rawWeight
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return "", fmt.Errorf("%w: %v→%v weight %g", ErrBadWeight, from, to, x)
		}
		if x < 0 && !g.allowNegative {
			return "", fmt.Errorf("%w: %v→%v negative weight %g", ErrBadWeight, from, to, x)
		}
		cfg.weight = weight.Known(x)
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti && g.hasEdgeLocked(from, to) {
		return "", ErrMultiEdgeNotAllowed
	}
	g.addVertexLocked(from, nil)
	g.addVertexLocked(to, nil)

	e := &Edge{ID: nextEdgeID(g), From: from, To: to, Weight: cfg.weight, Directed: cfg.directed}
	g.edges[e.ID] = e
	g.out[from] = append(g.out[from], e)
	if !e.Directed && from != to {
		g.out[to] = append(g.out[to], e)
	}

	return e.ID, nil
}

// HasEdge reports whether an edge leads from→to (either stored direction
// for undirected edges).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(from, to)
}

func (g *Graph) hasEdgeLocked(from, to string) bool {
	for _, e := range g.out[from] {
		if other(e, from) == to {
			return true
		}
	}

	return false
}

// Edges returns every edge in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// other returns the endpoint of e reached when leaving from.
func other(e *Edge, from string) string {
	if e.From == from {
		return e.To
	}

	return e.From
}

// nextEdgeID returns "e<n>" using an atomic counter.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)

	return string(strconv.AppendUint(buf, n, 10))
}

func edgeSeq(id string) uint64 {
	n, _ := strconv.ParseUint(id[1:], 10, 64)

	return n
}
