package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/dijkstra"
	"github.com/katalvlaran/pathsearch/store"
	"github.com/katalvlaran/pathsearch/weight"
)

// ExampleSearch shows a route that crosses an unknown edge only when no
// fully known alternative exists.
func ExampleSearch() {
	m := store.Map[string, struct{}]{}
	for _, id := range []string{"depot", "bridge", "ford", "town"} {
		m.Add(id, struct{}{})
	}
	m.Link("depot", "ford", weight.Unknown()) // river crossing of unknown cost
	m.Link("ford", "town", weight.Known(1))
	m.Link("depot", "bridge", weight.Known(7))
	m.Link("bridge", "town", weight.Known(8))

	var s store.VertexStore[string, struct{}] = m
	p, err := dijkstra.Search(s, "depot", "town", dijkstra.WithMissingWeight(weight.Infinity()))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.Forward(), p.Cost())
	// Output:
	// [depot bridge town] 15
}
