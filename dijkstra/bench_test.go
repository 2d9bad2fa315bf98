package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/pathsearch/builder"
	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/dijkstra"
	"github.com/katalvlaran/pathsearch/store"
	"github.com/katalvlaran/pathsearch/weight"
)

// BenchmarkSearch_Grid prices a corner-to-corner route on a 50×50 lattice
// with uniform random weights.
func BenchmarkSearch_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 10)},
		builder.Grid(50, 50))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Search[string, core.Vertex](g, "0,0", "49,49")
	}
}

// BenchmarkMultiEnd_Unknown collects every vertex of a chain whose edges
// alternate between known and unknown weights.
func BenchmarkMultiEnd_Unknown(b *testing.B) {
	const N = 5000
	m := store.Map[int, struct{}]{}
	for i := 0; i <= N; i++ {
		m.Add(i, struct{}{})
		if i > 0 {
			w := weight.Known(1)
			if i%2 == 0 {
				w = weight.Unknown()
			}
			m.Link(i-1, i, w)
		}
	}
	var s store.VertexStore[int, struct{}] = m
	all := func(struct{}) bool { return true }
	opt := dijkstra.WithMissingWeight(weight.Infinity())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.MultiEnd(s, 0, all, opt)
	}
}
