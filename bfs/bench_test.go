package bfs_test

import (
	"testing"

	"github.com/katalvlaran/pathsearch/bfs"
	"github.com/katalvlaran/pathsearch/store"
	"github.com/katalvlaran/pathsearch/weight"
)

// BenchmarkSearch_Chain measures BFS on a linear chain graph of size N.
func BenchmarkSearch_Chain(b *testing.B) {
	const N = 10000
	m := store.Map[int, struct{}]{}
	for i := 0; i <= N; i++ {
		m.Add(i, struct{}{})
		if i > 0 {
			m.Link(i-1, i, weight.Unknown())
		}
	}
	var s store.VertexStore[int, struct{}] = m

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search(s, 0, N)
	}
}

// BenchmarkSearch_BinaryTree runs BFS to the last leaf of a complete binary
// tree of depth 10 (~1023 vertices).
func BenchmarkSearch_BinaryTree(b *testing.B) {
	const depth = 10
	nodeCount := (1 << depth) - 1
	m := store.Map[int, struct{}]{}
	for i := 1; i <= nodeCount; i++ {
		m.Add(i, struct{}{})
	}
	for i := 1; i <= (nodeCount-1)/2; i++ {
		m.Link(i, 2*i, weight.Unknown())
		m.Link(i, 2*i+1, weight.Unknown())
	}
	var s store.VertexStore[int, struct{}] = m

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search(s, 1, nodeCount)
	}
}
