// Package builder_test contains functional tests for the topology
// constructors, verifying counts, emission order, weights and errors.
package builder_test

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"testing"

	"github.com/katalvlaran/pathsearch/builder"
	"github.com/katalvlaran/pathsearch/core"
)

// edgeKey identifies an edge by its endpoints.
type edgeKey struct{ U, V string }

// edgeWeights returns a map from edgeKey to the known weight of every edge;
// unknown edges map to -1.
func edgeWeights(g *core.Graph) map[edgeKey]float64 {
	m := make(map[edgeKey]float64)
	for _, e := range g.Edges() {
		w, ok := e.Weight.Get()
		if !ok {
			w = -1
		}
		m[edgeKey{U: e.From, V: e.To}] = w
	}

	return m
}

// TestBuilders_Functional runs table-driven functional tests for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		gopts        []core.GraphOption
		ctor         builder.Constructor
		wantV, wantE int
		wantEdges    []edgeKey
	}{
		{"Path(4)", nil, builder.Path(4), 4, 3, []edgeKey{{"0", "1"}, {"1", "2"}, {"2", "3"}}},
		{"Cycle(3)", nil, builder.Cycle(3), 3, 3, []edgeKey{{"0", "1"}, {"1", "2"}, {"2", "0"}}},
		{"Star(4)", nil, builder.Star(4), 4, 3, []edgeKey{{"0", "1"}, {"0", "2"}, {"0", "3"}}},
		{"Complete(3)/undirected", []core.GraphOption{core.WithDirected(false)}, builder.Complete(3), 3, 3,
			[]edgeKey{{"0", "1"}, {"0", "2"}, {"1", "2"}}},
		{"Complete(3)/directed", nil, builder.Complete(3), 3, 6,
			[]edgeKey{{"0", "1"}, {"1", "0"}, {"0", "2"}, {"2", "0"}, {"1", "2"}, {"2", "1"}}},
		{"Grid(2,2)", nil, builder.Grid(2, 2), 4, 4,
			[]edgeKey{{"0,0", "0,1"}, {"0,0", "1,0"}, {"0,1", "1,1"}, {"1,0", "1,1"}}},
		{"RandomSparse(4,1)", []core.GraphOption{core.WithDirected(false)}, builder.RandomSparse(4, 1), 4, 6, nil},
		{"RandomSparse(4,0)", nil, builder.RandomSparse(4, 0), 4, 0, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.gopts, nil, tc.ctor)
			if err != nil {
				t.Fatalf("BuildGraph error: %v", err)
			}
			if got := g.VertexCount(); got != tc.wantV {
				t.Errorf("VertexCount = %d; want %d", got, tc.wantV)
			}
			if got := g.EdgeCount(); got != tc.wantE {
				t.Errorf("EdgeCount = %d; want %d", got, tc.wantE)
			}
			if tc.wantEdges == nil {
				return
			}
			var got []edgeKey
			for _, e := range g.Edges() {
				got = append(got, edgeKey{e.From, e.To})
				if w, ok := e.Weight.Get(); !ok || w != builder.DefaultEdgeWeight {
					t.Errorf("edge %s→%s weight = %v; want %g", e.From, e.To, e.Weight, builder.DefaultEdgeWeight)
				}
			}
			if !reflect.DeepEqual(got, tc.wantEdges) {
				t.Errorf("edges = %v; want %v", got, tc.wantEdges)
			}
		})
	}
}

// TestBuilders_Errors checks sentinel errors for invalid parameters.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse(0,.5)", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(p<0)", builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse(p>1)", builder.RandomSparse(3, 1.1), builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildGraph(nil, nil, tc.ctor)
			if !errors.Is(err, tc.want) {
				t.Errorf("error = %v; want %v", err, tc.want)
			}
		})
	}
}

// TestBuilders_CoreRejection checks that core errors stay visible through the wrap.
func TestBuilders_CoreRejection(t *testing.T) {
	// a second Path over the same IDs repeats edges the graph forbids
	_, err := builder.BuildGraph(nil, nil, builder.Path(3), builder.Path(3))
	if !errors.Is(err, builder.ErrConstructFailed) || !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		t.Errorf("error = %v; want ErrConstructFailed wrapping ErrMultiEdgeNotAllowed", err)
	}
}

// TestRandomSparse_Deterministic checks that equal seeds give identical graphs.
func TestRandomSparse_Deterministic(t *testing.T) {
	build := func(seed int64) map[edgeKey]float64 {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(1, 10), builder.WithUnknownRatio(0.3)},
			builder.RandomSparse(12, 0.3))
		if err != nil {
			t.Fatalf("BuildGraph error: %v", err)
		}

		return edgeWeights(g)
	}
	a, b := build(42), build(42)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different graphs")
	}
	if reflect.DeepEqual(a, build(43)) {
		t.Errorf("different seeds produced identical graphs")
	}
	for k, w := range a {
		if k.U == k.V {
			t.Errorf("self-loop %v without WithLoops", k)
		}
		if w != -1 && (w < 1 || w >= 10) {
			t.Errorf("weight %g of %v outside [1,10)", w, k)
		}
	}
}

// TestUnknownRatio checks the all-unknown extreme and its RNG requirement.
func TestUnknownRatio(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithUnknownRatio(1)},
		builder.Path(5))
	if err != nil {
		t.Fatalf("BuildGraph error: %v", err)
	}
	for _, e := range g.Edges() {
		if e.Weight.IsKnown() {
			t.Errorf("edge %s→%s known with ratio 1", e.From, e.To)
		}
	}

	_, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithUnknownRatio(0.5)}, builder.Path(3))
	if !errors.Is(err, builder.ErrNeedRandSource) {
		t.Errorf("error = %v; want ErrNeedRandSource", err)
	}
}

// TestAttrFn checks that attributes reach the vertices, grid coordinates included.
func TestAttrFn(t *testing.T) {
	attrs := builder.WithAttrFn(func(idx int, _ *rand.Rand) map[string]any {
		return map[string]any{"even": idx%2 == 0}
	})
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{attrs}, builder.Grid(2, 3))
	if err != nil {
		t.Fatalf("BuildGraph error: %v", err)
	}
	v, err := g.Vertex("1,2")
	if err != nil {
		t.Fatalf("Vertex error: %v", err)
	}
	want := core.Attrs{"row": 1, "col": 2, "even": false}
	if !reflect.DeepEqual(v.Attrs, want) {
		t.Errorf("attrs = %v; want %v", v.Attrs, want)
	}
}

// TestIDSchemes checks ID generators through a Path build.
func TestIDSchemes(t *testing.T) {
	cases := []struct {
		opt  builder.BuilderOption
		want []string
	}{
		{builder.WithSymbolIDs(), []string{"A", "B", "C"}},
		{builder.WithSymbNumb("v"), []string{"v0", "v1", "v2"}},
		{builder.WithExcelColumnIDs(), []string{"A", "B", "C"}},
	}
	for i, tc := range cases {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			g, err := builder.BuildGraph(nil, []builder.BuilderOption{tc.opt}, builder.Path(3))
			if err != nil {
				t.Fatalf("BuildGraph error: %v", err)
			}
			if got := g.Vertices(); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Vertices = %v; want %v", got, tc.want)
			}
		})
	}
	if got := builder.ExcelColumnIDFn(26); got != "AA" {
		t.Errorf("ExcelColumnIDFn(26) = %q; want AA", got)
	}
	if got := builder.ExcelColumnIDFn(701); got != "ZZ" {
		t.Errorf("ExcelColumnIDFn(701) = %q; want ZZ", got)
	}
}
