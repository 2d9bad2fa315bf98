package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathsearch/astar"
	"github.com/katalvlaran/pathsearch/bfs"
	"github.com/katalvlaran/pathsearch/builder"
	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/predicate"
	"github.com/katalvlaran/pathsearch/weight"
)

func vertex(id string, attrs core.Attrs) core.Vertex {
	return core.Vertex{ID: id, Attrs: attrs}
}

func TestCompile(t *testing.T) {
	p, err := predicate.Compile(`has(v.kind) && v.kind == "exit" && v.level >= 2.5`)
	require.NoError(t, err)

	assert.True(t, p(vertex("a", core.Attrs{"kind": "exit", "level": 3})))
	assert.False(t, p(vertex("b", core.Attrs{"kind": "exit", "level": 2})))
	assert.False(t, p(vertex("c", core.Attrs{"level": 9})))
	assert.False(t, p(vertex("d", nil)))

	byID, err := predicate.Compile(`id.startsWith("gate")`)
	require.NoError(t, err)
	assert.True(t, byID(vertex("gate-7", nil)))
	assert.False(t, byID(vertex("door", nil)))
}

func TestCompile_Errors(t *testing.T) {
	for _, expr := range []string{
		`v.kind ==`,   // syntax
		`unknown > 1`, // undeclared
		`id + "x"`,    // string result
		`1 + 2`,       // int result
	} {
		_, err := predicate.Compile(expr)
		assert.ErrorIs(t, err, predicate.ErrCompile, expr)
	}
}

func TestCompile_EvalFailureIsFalse(t *testing.T) {
	// v.level is missing, and comparing a string with an int fails at runtime
	p, err := predicate.Compile(`v.level > 1`)
	require.NoError(t, err)
	assert.False(t, p(vertex("x", core.Attrs{})))
	assert.False(t, p(vertex("y", core.Attrs{"level": "high"})))
}

func TestCompileHeuristic(t *testing.T) {
	h, err := predicate.CompileHeuristic(`math.abs(a.row - b.row) + math.abs(a.col - b.col)`)
	require.NoError(t, err)

	goal := vertex("2,2", core.Attrs{"row": 2, "col": 2})
	assert.Equal(t, weight.Estimate(4), h(vertex("0,0", core.Attrs{"row": 0, "col": 0}), goal))
	assert.Equal(t, weight.Estimate(0), h.Towards(goal)(goal))
	assert.True(t, h(vertex("z", nil), goal).IsInfinite(), "missing attrs")

	neg, err := predicate.CompileHeuristic(`-1.0`)
	require.NoError(t, err)
	assert.True(t, neg(goal, goal).IsInfinite())

	_, err = predicate.CompileHeuristic(`a_id == b_id`)
	assert.ErrorIs(t, err, predicate.ErrCompile)
}

func TestPredicateDrivesSearch(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithConstantWeight(1)}, builder.Grid(3, 3))
	require.NoError(t, err)

	corner, err := predicate.Compile(`v.row == 2 && v.col == 2`)
	require.NoError(t, err)
	p, err := bfs.ComputedEnd[string, core.Vertex](g, "0,0", corner)
	require.NoError(t, err)
	assert.Equal(t, "2,2", p.Destination())
	assert.Equal(t, 5, p.Len())

	h, err := predicate.CompileHeuristic(`double(b.row - a.row + b.col - a.col)`)
	require.NoError(t, err)
	goal, err := g.Vertex("2,2")
	require.NoError(t, err)
	ap, err := astar.ComputedEnd[string, core.Vertex](g, "0,0", h.Towards(goal), corner)
	require.NoError(t, err)
	assert.Equal(t, 4.0, ap.Cost().Sum)
}
