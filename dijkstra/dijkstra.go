// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/internal/pqueue"
	"github.com/katalvlaran/pathsearch/path"
	"github.com/katalvlaran/pathsearch/store"
	"github.com/katalvlaran/pathsearch/weight"
)

// Search returns the minimum-weight route from start to end.
//
// Preconditions and validation (in order):
//  1. options must be valid (ErrOptionViolation).
//  2. s must be non-nil (ErrNilStore).
//  3. start and end must be in s (store.ErrInvalidEntity).
//
// During the search a negative known weight, or a negative Value policy
// applied to an unknown edge, aborts with weight.ErrNegativeWeight.
// An unreachable end yields path.ErrNoPath.
func Search[ID comparable, D any](s store.VertexStore[ID, D], start, end ID, opts ...Option) (path.GraphPath[ID, weight.PathWeight], error) {
	r, err := newRunner(s, start, opts)
	if err != nil {
		return path.GraphPath[ID, weight.PathWeight]{}, err
	}
	if _, err = store.Require(s, end, "end"); err != nil {
		return path.GraphPath[ID, weight.PathWeight]{}, err
	}

	return r.first(func(n node[ID, D]) bool { return n.id == end })
}

// ComputedEnd returns the minimum-weight route to the closest vertex whose
// data satisfies pred. The start is a candidate at distance zero.
func ComputedEnd[ID comparable, D any](s store.VertexStore[ID, D], start ID, pred func(D) bool, opts ...Option) (path.GraphPath[ID, weight.PathWeight], error) {
	r, err := newRunner(s, start, opts)
	if err != nil {
		return path.GraphPath[ID, weight.PathWeight]{}, err
	}

	return r.first(func(n node[ID, D]) bool { return pred(n.view.Data()) })
}

// MultiEnd returns minimum-weight routes to vertices satisfying pred in
// non-decreasing distance order, bounded by WithMaxResults, WithMaxDistance
// and WithMaxWeight. No match yields an empty slice, never path.ErrNoPath.
func MultiEnd[ID comparable, D any](s store.VertexStore[ID, D], start ID, pred func(D) bool, opts ...Option) ([]path.GraphPath[ID, weight.PathWeight], error) {
	r, err := newRunner(s, start, opts)
	if err != nil {
		return nil, err
	}
	r.limit, r.bounded = r.options.limit()

	out := make([]path.GraphPath[ID, weight.PathWeight], 0)
	for {
		n, ok := r.next()
		if !ok {
			return out, nil
		}
		if pred(n.view.Data()) {
			p, err := r.visited.DeterminePath(n.id)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
			if r.options.MaxResults > 0 && len(out) >= r.options.MaxResults {
				return out, nil
			}
		}
		if err = r.relax(n); err != nil {
			return nil, err
		}
	}
}

// node is a queued vertex together with the view fetched at discovery.
type node[ID comparable, D any] struct {
	id   ID
	view store.View[ID, D]
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[ID comparable, D any] struct {
	s       store.VertexStore[ID, D]                 // read-only within a call
	options Options                                  // missing policy and bounds
	visited *path.VisitedNodes[ID, weight.PathWeight] // predecessor, step and best distance
	views   map[ID]store.View[ID, D]                 // views fetched at discovery
	settled map[ID]bool                              // distance is final
	pq      pqueue.Queue[node[ID, D]]                // lazy decrease-key heap
	limit   weight.PathWeight                        // MultiEnd distance cap
	bounded bool                                     // limit applies
}

// newRunner validates input and pushes the start at distance zero.
func newRunner[ID comparable, D any](s store.VertexStore[ID, D], start ID, opts []Option) (*runner[ID, D], error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, ErrNilStore
	}
	view, err := store.Require(s, start, "start")
	if err != nil {
		return nil, err
	}

	r := &runner[ID, D]{
		s:       s,
		options: cfg,
		visited: path.NewFromStart[ID, weight.PathWeight](start, weight.Zero()),
		views:   map[ID]store.View[ID, D]{start: view},
		settled: make(map[ID]bool),
	}
	r.pq.Push(node[ID, D]{id: start, view: view}, weight.Zero(), weight.Zero())

	return r, nil
}

// first pops vertices until match accepts one; its popped distance is minimal.
func (r *runner[ID, D]) first(match func(node[ID, D]) bool) (path.GraphPath[ID, weight.PathWeight], error) {
	for {
		n, ok := r.next()
		if !ok {
			return path.GraphPath[ID, weight.PathWeight]{}, fmt.Errorf("%w: queue from %v exhausted", path.ErrNoPath, r.visited.Start())
		}
		if match(n) {
			return r.visited.DeterminePath(n.id)
		}
		if err := r.relax(n); err != nil {
			return path.GraphPath[ID, weight.PathWeight]{}, err
		}
	}
}

// next pops the closest unsettled vertex, skipping stale heap entries.
func (r *runner[ID, D]) next() (node[ID, D], bool) {
	for r.pq.Len() > 0 {
		e := r.pq.Pop()
		if r.settled[e.Value.id] {
			continue
		}
		r.settled[e.Value.id] = true

		return e.Value, true
	}

	return node[ID, D]{}, false
}

// relax examines each edge out of n. Unvisited neighbours are recorded and
// pushed; visited ones are updated only on a strictly smaller distance, so
// the earlier predecessor wins ties.
func (r *runner[ID, D]) relax(n node[ID, D]) error {
	rec, _ := r.visited.Get(n.id)
	for _, nb := range n.view.NeighboursWithWeight() {
		cand, ok, err := r.options.Missing.Extend(rec.Dist, nb.Weight)
		if err != nil {
			return fmt.Errorf("dijkstra: edge %v→%v: %w", n.id, nb.ID, err)
		}
		if !ok {
			continue
		}
		if r.bounded && r.limit.Less(cand) {
			continue
		}

		if old, seen := r.visited.Get(nb.ID); seen {
			if r.settled[nb.ID] || !cand.Less(old.Dist) {
				continue
			}
			r.visited.SetPrevious(nb.ID, n.id, rec.Step+1, cand)
			r.pq.Push(node[ID, D]{id: nb.ID, view: r.views[nb.ID]}, cand, cand)

			continue
		}

		view, err := r.s.Lookup(nb.ID)
		if err != nil {
			// absent ids are unreachable
			continue
		}
		r.views[nb.ID] = view
		r.visited.Insert(nb.ID, n.id, rec.Step+1, cand)
		r.pq.Push(node[ID, D]{id: nb.ID, view: view}, cand, cand)
	}

	return nil
}
