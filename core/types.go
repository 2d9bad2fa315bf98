// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/pathsearch/store"
	"github.com/katalvlaran/pathsearch/weight"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	// It wraps store.ErrInvalidEntity so searches can test for either.
	ErrVertexNotFound = fmt.Errorf("core: vertex not found: %w", store.ErrInvalidEntity)

	// ErrBadWeight indicates a non-finite weight, or a negative one on a graph
	// built without WithNegativeWeights.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMixedEdgesNotAllowed indicates a per-edge direction override when mixed-edges are disabled.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")
)

// Attrs is the free-form per-vertex payload predicates and heuristics read.
type Attrs map[string]any

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Attrs stores arbitrary key-value data; Lookup hands out shallow copies.
type Vertex struct {
	ID    string
	Attrs Attrs
}

// Edge represents a connection between two vertices.
//
// Each Edge has a unique ID, endpoints From→To, an optional Weight, and a
// Directed flag that overrides the Graph's default when mixed edges are enabled.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the traversal cost; unknown unless WithWeight was given.
	Weight weight.Edge

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges
// (true = directed, false = undirected). Graphs are directed by default.
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMixedEdges lets per-edge WithEdgeDirected overrides take effect.
func WithMixedEdges() GraphOption {
	return func(g *Graph) { g.allowMixed = true }
}

// WithNegativeWeights accepts negative edge weights. Searches still reject
// them when they meet one; this only lets such graphs be represented.
func WithNegativeWeights() GraphOption {
	return func(g *Graph) { g.allowNegative = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	weight      weight.Edge
	rawWeight   float64
	hasWeight   bool
	directed    bool
	hasDirected bool
}

// WithWeight gives the edge a known weight.
func WithWeight(x float64) EdgeOption {
	return func(c *edgeConfig) {
		c.rawWeight = x
		c.hasWeight = true
	}
}

// WithEdgeDirected overrides the Graph's default directedness for this edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(c *edgeConfig) {
		c.directed = directed
		c.hasDirected = true
	}
}

// VertexOption configures a vertex when it is added.
type VertexOption func(Attrs)

// WithAttr sets one attribute.
func WithAttr(key string, value any) VertexOption {
	return func(a Attrs) { a[key] = value }
}

// WithAttrs merges every entry of m.
func WithAttrs(m map[string]any) VertexOption {
	return func(a Attrs) {
		for k, v := range m {
			a[k] = v
		}
	}
}

// Graph is the core in-memory graph data structure.
//
// It supports directed vs. undirected edges, parallel edges and self-loops.
// mu protects every field below it; nextEdgeID is updated atomically.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed      bool // default directedness
	allowMulti    bool // allow parallel edges
	allowLoops    bool // allow self-loops
	allowMixed    bool // allow per-edge direction
	allowNegative bool // accept negative weights

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// out[v] lists the edges leaving v in insertion order; undirected edges
	// appear under both endpoints.
	out map[string][]*Edge
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is directed, with no loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		directed: true,
		vertices: make(map[string]*Vertex),
		edges:    make(map[string]*Edge),
		out:      make(map[string][]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports the default edge direction.
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether self-loops are allowed.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are allowed.
func (g *Graph) Multigraph() bool { return g.allowMulti }
