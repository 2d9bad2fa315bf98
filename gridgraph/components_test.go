package gridgraph_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/pathsearch/gridgraph"
)

// TestConnectedComponents_Conn4 checks components and their order on a small map.
func TestConnectedComponents_Conn4(t *testing.T) {
	grid := [][]int{
		{1, 0, 1},
		{1, 0, 0},
		{0, 0, 1},
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}
	want := [][]gridgraph.Point{
		{{X: 0, Y: 0}, {X: 0, Y: 1}},
		{{X: 2, Y: 0}},
		{{X: 2, Y: 2}},
	}
	if got := gg.ConnectedComponents(); !reflect.DeepEqual(got, want) {
		t.Errorf("ConnectedComponents = %v; want %v", got, want)
	}
}

// TestConnectedComponents_Diagonal checks that Conn8 joins diagonal cells.
func TestConnectedComponents_Diagonal(t *testing.T) {
	grid := [][]int{
		{1, 0},
		{0, 1},
	}
	cases := []struct {
		name string
		conn gridgraph.Connectivity
		want int
	}{
		{"Conn4", gridgraph.Conn4, 2},
		{"Conn8", gridgraph.Conn8, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := gridgraph.DefaultGridOptions()
			opts.Conn = tc.conn
			gg, _ := gridgraph.NewGridGraph(grid, opts)
			if got := len(gg.ConnectedComponents()); got != tc.want {
				t.Errorf("components = %d; want %d", got, tc.want)
			}
		})
	}
}

// TestComponentOf checks the point → component index map.
func TestComponentOf(t *testing.T) {
	grid := [][]int{
		{1, 0, 1},
	}
	gg, _ := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	of := gg.ComponentOf()
	if len(of) != 2 {
		t.Fatalf("ComponentOf size = %d; want 2", len(of))
	}
	if of[gridgraph.Point{X: 0}] == of[gridgraph.Point{X: 2}] {
		t.Errorf("separated cells share component %d", of[gridgraph.Point{X: 0}])
	}
	if _, ok := of[gridgraph.Point{X: 1}]; ok {
		t.Errorf("water cell has a component")
	}
}
