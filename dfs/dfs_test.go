package dfs_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathsearch/dfs"
	"github.com/katalvlaran/pathsearch/path"
	"github.com/katalvlaran/pathsearch/store"
	"github.com/katalvlaran/pathsearch/weight"
)

// build makes a directed store from "A>B" specs. Vertex data is the id.
func build(edges ...string) store.VertexStore[string, string] {
	m := store.Map[string, string]{}
	for _, e := range edges {
		parts := strings.Split(e, ">")
		m.Add(parts[0], parts[0])
		m.Add(parts[1], parts[1])
		m.Link(parts[0], parts[1], weight.Unknown())
	}

	return m
}

// buildChain creates a directed chain 0→1→…→n-1.
func buildChain(n int) store.VertexStore[string, string] {
	m := store.Map[string, string]{}
	for i := 0; i < n; i++ {
		id := "N" + strconv.Itoa(i)
		m.Add(id, id)
		if i > 0 {
			m.Link("N"+strconv.Itoa(i-1), id, weight.Unknown())
		}
	}

	return m
}

func in(ids ...string) func(string) bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}

	return func(d string) bool { return set[d] }
}

func destinations(ps []path.GraphPath[string, path.Unit]) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Destination()
	}

	return out
}

func TestSearch_Errors(t *testing.T) {
	_, err := dfs.Search[string, string](nil, "A", "B")
	assert.ErrorIs(t, err, dfs.ErrStoreNil)

	s := build("A>B")
	_, err = dfs.Search(s, "Z", "B")
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	_, err = dfs.Search(s, "A", "Z")
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	_, err = dfs.Search(s, "B", "A")
	assert.ErrorIs(t, err, path.ErrNoPath)
}

func TestSearch_Chain(t *testing.T) {
	p, err := dfs.Search(build("A>B", "B>C", "C>D"), "A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "C", "B", "A"}, p.IDs())
}

// TestSearch_DepthFirstNotShortest follows the first branch to the bottom
// before trying the direct edge.
func TestSearch_DepthFirstNotShortest(t *testing.T) {
	s := build("A>B", "A>D", "B>C", "C>D")
	p, err := dfs.Search(s, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, p.Forward())
}

func TestSearch_Cycle(t *testing.T) {
	s := build("A>B", "B>A", "B>C")
	p, err := dfs.Search(s, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, p.IDs())

	_, err = dfs.Search(build("A>B", "B>A", "C>A"), "A", "C")
	assert.ErrorIs(t, err, path.ErrNoPath)
}

// TestSearch_DeepChain runs far beyond any sane recursion depth.
func TestSearch_DeepChain(t *testing.T) {
	const n = 100000
	p, err := dfs.Search(buildChain(n), "N0", "N"+strconv.Itoa(n-1))
	require.NoError(t, err)
	assert.Equal(t, n, p.Len())
}

func TestComputedEnd(t *testing.T) {
	s := build("A>B", "A>C", "B>D")

	p, err := dfs.ComputedEnd(s, "A", in("A"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, p.IDs())

	// D is reached through B before C is ever discovered
	p, err = dfs.ComputedEnd(s, "A", in("C", "D"))
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "B", "A"}, p.IDs())

	_, err = dfs.ComputedEnd(s, "A", in("none"))
	assert.ErrorIs(t, err, path.ErrNoPath)
}

func TestMultiEnd(t *testing.T) {
	s := build("A>B", "A>C", "B>D")

	all, err := dfs.MultiEnd(s, "A", in("A", "B", "C", "D"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, destinations(all))

	two, err := dfs.MultiEnd(s, "A", in("B", "C", "D"), dfs.WithMaxResults(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "D"}, destinations(two))

	none, err := dfs.MultiEnd(s, "A", in("x"))
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = dfs.MultiEnd(s, "A", in("B"), dfs.WithMaxResults(0))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}
