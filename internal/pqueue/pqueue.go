// SPDX-License-Identifier: MIT

// Package pqueue is the min-priority queue shared by the weighted searches.
//
// Entries are ordered by Priority (a weight.PathWeight), ties broken by
// insertion order so that equal-cost vertices come out in the order their
// neighbours were enumerated. The queue uses the lazy decrease-key pattern:
// an improved vertex is pushed again and callers skip stale entries when
// they pop them (Entry.Dist no longer matches the recorded distance).
package pqueue

import (
	"container/heap"

	"github.com/katalvlaran/pathsearch/weight"
)

// Entry is one queued vertex.
type Entry[T any] struct {
	Value    T
	Dist     weight.PathWeight // true distance at push time
	Priority weight.PathWeight // Dist for Dijkstra, Dist+h for A*
	seq      uint64
}

// Queue is a min-heap of entries. The zero value is ready to use.
type Queue[T any] struct {
	items entries[T]
	seq   uint64
}

// Len returns the number of queued entries, stale ones included.
func (q *Queue[T]) Len() int { return len(q.items) }

// Push queues v with the given distance and priority.
func (q *Queue[T]) Push(v T, dist, priority weight.PathWeight) {
	q.seq++
	heap.Push(&q.items, &Entry[T]{Value: v, Dist: dist, Priority: priority, seq: q.seq})
}

// Pop removes the entry with the smallest priority. It panics on an empty queue.
func (q *Queue[T]) Pop() Entry[T] {
	return *heap.Pop(&q.items).(*Entry[T])
}

// entries implements heap.Interface.
type entries[T any] []*Entry[T]

func (e entries[T]) Len() int { return len(e) }

func (e entries[T]) Less(i, j int) bool {
	if c := e[i].Priority.Compare(e[j].Priority); c != 0 {
		return c < 0
	}

	return e[i].seq < e[j].seq
}

func (e entries[T]) Swap(i, j int) { e[i], e[j] = e[j], e[i] }

func (e *entries[T]) Push(x any) { *e = append(*e, x.(*Entry[T])) }

func (e *entries[T]) Pop() any {
	old := *e
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*e = old[:n-1]

	return item
}
