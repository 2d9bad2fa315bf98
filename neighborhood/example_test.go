package neighborhood_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/neighborhood"
	"github.com/katalvlaran/pathsearch/weight"
)

func hub() *core.Graph {
	g := core.NewGraph()
	_, _ = g.AddEdge("hub", "a", core.WithWeight(2))
	_, _ = g.AddEdge("hub", "b", core.WithWeight(5))
	_, _ = g.AddEdge("a", "c", core.WithWeight(1))
	_, _ = g.AddEdge("c", "far")

	return g
}

func ExampleWithinSteps() {
	reached, _ := neighborhood.WithinSteps[string, core.Vertex](hub(), "hub", 1)
	fmt.Println(reached)

	ring, _ := neighborhood.AtStep[string, core.Vertex](hub(), "hub", 2)
	fmt.Println(ring)
	// Output:
	// [{hub 0} {a 1} {b 1}]
	// [c]
}

func ExampleWithinDistance() {
	ds, _ := neighborhood.WithinDistance[string, core.Vertex](hub(), "hub", 4)
	fmt.Println(ds)

	ds, _ = neighborhood.WithinDistance[string, core.Vertex](hub(), "hub", math.Inf(1),
		neighborhood.WithMissingWeight(weight.Infinity()))
	fmt.Println(ds)
	// Output:
	// [{hub 0} {a 2} {c 3}]
	// [{hub 0} {a 2} {c 3} {b 5} {far 1∞+3}]
}
