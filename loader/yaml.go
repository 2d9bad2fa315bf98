// SPDX-License-Identifier: MIT

package loader

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathsearch/core"
)

// Document is the YAML shape of a graph file. A missing directed key means
// a directed graph.
type Document struct {
	Directed *bool          `yaml:"directed,omitempty"`
	Loops    bool           `yaml:"loops,omitempty"`
	Multi    bool           `yaml:"multi,omitempty"`
	Vertices []VertexRecord `yaml:"vertices,omitempty"`
	Edges    []EdgeRecord   `yaml:"edges,omitempty"`
}

// VertexRecord declares a vertex and its attributes.
type VertexRecord struct {
	ID    string         `yaml:"id"`
	Attrs map[string]any `yaml:"attrs,omitempty"`
}

// EdgeRecord declares an edge. A nil Weight is an unknown weight.
type EdgeRecord struct {
	From   string   `yaml:"from"`
	To     string   `yaml:"to"`
	Weight *float64 `yaml:"weight,omitempty"`
}

// ReadYAML decodes a Document from r and builds the graph it describes.
// Unknown fields are rejected.
func ReadYAML(r io.Reader) (*core.Graph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	return doc.Graph()
}

// Graph builds a core.Graph from the document.
func (d Document) Graph() (*core.Graph, error) {
	directed := d.Directed == nil || *d.Directed
	opts := []core.GraphOption{core.WithDirected(directed)}
	if d.Loops {
		opts = append(opts, core.WithLoops())
	}
	if d.Multi {
		opts = append(opts, core.WithMultiEdges())
	}
	g := core.NewGraph(opts...)

	for i, v := range d.Vertices {
		if err := g.AddVertex(v.ID, core.WithAttrs(v.Attrs)); err != nil {
			return nil, fmt.Errorf("%w: vertices[%d]: %w", ErrFormat, i, err)
		}
	}
	for i, e := range d.Edges {
		var eopts []core.EdgeOption
		if e.Weight != nil {
			eopts = append(eopts, core.WithWeight(*e.Weight))
		}
		if _, err := g.AddEdge(e.From, e.To, eopts...); err != nil {
			return nil, fmt.Errorf("%w: edges[%d] %s→%s: %w", ErrFormat, i, e.From, e.To, err)
		}
	}

	return g, nil
}

// FromGraph captures g as a Document: vertices sorted by id, edges in
// insertion order.
func FromGraph(g *core.Graph) Document {
	directed := g.Directed()
	doc := Document{Directed: &directed, Loops: g.Looped(), Multi: g.Multigraph()}
	for _, id := range g.Vertices() {
		v, err := g.Vertex(id)
		if err != nil {
			continue
		}
		rec := VertexRecord{ID: id}
		if len(v.Attrs) > 0 {
			rec.Attrs = v.Attrs
		}
		doc.Vertices = append(doc.Vertices, rec)
	}
	for _, e := range g.Edges() {
		rec := EdgeRecord{From: e.From, To: e.To}
		if w, ok := e.Weight.Get(); ok {
			rec.Weight = &w
		}
		doc.Edges = append(doc.Edges, rec)
	}

	return doc
}

// WriteYAML encodes g to w.
func WriteYAML(w io.Writer, g *core.Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("loader: encode: %w", err)
	}

	return enc.Close()
}
