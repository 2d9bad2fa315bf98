package runner_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathsearch/builder"
	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/observe"
	"github.com/katalvlaran/pathsearch/runner"
)

// ExampleRunner_Run runs a route query and a ring query over a 3×3 grid.
func ExampleRunner_Run() {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(false)}, nil, builder.Grid(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	one := 1
	r := runner.New(g, runner.WithLogger(observe.Discard()))
	results, _ := r.Run(context.Background(), []runner.Query{
		{Name: "corner", Algorithm: runner.Dijkstra, From: "0,0", To: "2,2"},
		{Name: "ring", Algorithm: runner.AtStep, From: "1,1", MaxSteps: &one},
	})
	fmt.Println(results[0].Query.Name, results[0].Outcome, len(results[0].Paths[0].Vertices), results[0].Paths[0].Cost)
	fmt.Println(results[1].Query.Name, results[1].Outcome, len(results[1].Hits))
	// Output:
	// corner ok 5 4
	// ring ok 4
}
