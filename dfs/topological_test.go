package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/dfs"
	"github.com/katalvlaran/pathsearch/store"
	"github.com/katalvlaran/pathsearch/weight"
)

// position returns index of v in slice or -1 if not found
func position(order []string, v string) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

func chainGraph(t *testing.T, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	return g
}

func topo(g *core.Graph, roots ...string) ([]string, error) {
	if roots == nil {
		roots = g.Vertices()
	}

	return dfs.TopologicalSort[string, core.Vertex](g, roots)
}

func TestTopo_NilStore(t *testing.T) {
	order, err := dfs.TopologicalSort[string, int](nil, []string{"A"})
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrStoreNil)
}

func TestTopo_Empty(t *testing.T) {
	order, err := topo(core.NewGraph())
	assert.NoError(t, err)
	assert.Empty(t, order)
}

func TestTopo_NoEdges(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(id))
	}

	order, err := topo(g)
	assert.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, order)
}

// TestTopo_SimpleChain verifies linear chain A→B→C yields [A,B,C].
func TestTopo_SimpleChain(t *testing.T) {
	g := chainGraph(t, [2]string{"A", "B"}, [2]string{"B", "C"})

	order, err := topo(g)
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, order)
}

// TestTopo_BranchingDAG checks A→B, A→C: A first, then store order reversed.
func TestTopo_BranchingDAG(t *testing.T) {
	g := chainGraph(t, [2]string{"A", "B"}, [2]string{"A", "C"})

	order, err := topo(g, "A")
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B"}, order)
}

// TestTopo_Roots limits the order to what the roots reach.
func TestTopo_Roots(t *testing.T) {
	g := chainGraph(t, [2]string{"X", "Y"}, [2]string{"A", "B"})

	order, err := topo(g, "X")
	assert.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, order)

	order, err = topo(g)
	assert.NoError(t, err)
	assert.Len(t, order, 4)
	assert.Less(t, position(order, "X"), position(order, "Y"))
	assert.Less(t, position(order, "A"), position(order, "B"))

	_, err = topo(g, "nope")
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestTopo_Cycle(t *testing.T) {
	g := chainGraph(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"})

	order, err := topo(g)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	assert.Contains(t, err.Error(), "C→A")

	u := core.NewGraph(core.WithDirected(false))
	_, _ = u.AddEdge("A", "B")
	_, err = topo(u)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

// TestTopo_ComplexDAG builds a DAG of 10 vertices with cross-links and ensures validity.
func TestTopo_ComplexDAG(t *testing.T) {
	edges := [][2]string{
		{"V1", "V3"}, {"V1", "V2"}, {"V2", "V5"}, {"V3", "V5"},
		{"V2", "V4"}, {"V4", "V6"}, {"V5", "V7"}, {"V6", "V8"},
		{"V7", "V9"}, {"V8", "V10"},
	}
	g := chainGraph(t, edges...)

	order, err := topo(g)
	require.NoError(t, err)
	assert.Len(t, order, 10)
	for _, e := range edges {
		assert.Lessf(t, position(order, e[0]), position(order, e[1]), "%s should precede %s", e[0], e[1])
	}
}

// TestTopo_SkipsAbsentNeighbours uses a Map store whose edge points nowhere.
func TestTopo_SkipsAbsentNeighbours(t *testing.T) {
	m := store.Map[string, struct{}]{}
	m.Link("a", "ghost", weight.Unknown())
	m.Link("a", "b", weight.Known(1))
	m.Add("b", struct{}{})

	order, err := dfs.TopologicalSort[string, struct{}](m, []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestTopo_Cancelled(t *testing.T) {
	g := chainGraph(t, [2]string{"A", "B"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.TopologicalSort[string, core.Vertex](g, []string{"A"}, dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
