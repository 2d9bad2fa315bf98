// SPDX-License-Identifier: MIT

package astar

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/internal/pqueue"
	"github.com/katalvlaran/pathsearch/path"
	"github.com/katalvlaran/pathsearch/store"
	"github.com/katalvlaran/pathsearch/weight"
)

// Search returns the route from start to end found by A* guided by h, which
// receives the data of the vertex being estimated and of end.
func Search[ID comparable, D any](s store.VertexStore[ID, D], start, end ID, h func(v, end D) weight.Heuristic, opts ...Option) (path.GraphPath[ID, weight.PathWeight], error) {
	if h == nil {
		return path.GraphPath[ID, weight.PathWeight]{}, ErrNilHeuristic
	}
	if s == nil {
		return path.GraphPath[ID, weight.PathWeight]{}, ErrNilStore
	}
	endView, err := store.Require(s, end, "end")
	if err != nil {
		return path.GraphPath[ID, weight.PathWeight]{}, err
	}
	target := endView.Data()
	r, err := newSearch(s, start, func(d D) weight.Heuristic { return h(d, target) }, opts)
	if err != nil {
		return path.GraphPath[ID, weight.PathWeight]{}, err
	}

	return r.first(func(n node[ID, D]) bool { return n.id == end })
}

// ComputedEnd returns the route to the first vertex satisfying pred popped at
// minimal true distance. h estimates the distance to the nearest match.
func ComputedEnd[ID comparable, D any](s store.VertexStore[ID, D], start ID, h func(D) weight.Heuristic, pred func(D) bool, opts ...Option) (path.GraphPath[ID, weight.PathWeight], error) {
	r, err := newSearch(s, start, h, opts)
	if err != nil {
		return path.GraphPath[ID, weight.PathWeight]{}, err
	}

	return r.first(func(n node[ID, D]) bool { return pred(n.view.Data()) })
}

// MultiEnd collects routes to vertices satisfying pred in pop order, bounded
// by WithMaxResults, WithMaxDistance and WithMaxWeight. No match yields an empty slice.
func MultiEnd[ID comparable, D any](s store.VertexStore[ID, D], start ID, h func(D) weight.Heuristic, pred func(D) bool, opts ...Option) ([]path.GraphPath[ID, weight.PathWeight], error) {
	r, err := newSearch(s, start, h, opts)
	if err != nil {
		return nil, err
	}
	r.limit, r.bounded = r.options.limit()

	out := make([]path.GraphPath[ID, weight.PathWeight], 0)
	done := make(map[ID]bool)
	for {
		n, ok := r.next()
		if !ok {
			return out, nil
		}
		// a reopened vertex is reported once
		if !done[n.id] && pred(n.view.Data()) {
			done[n.id] = true
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

type node[ID comparable, D any] struct {
	id   ID
	view store.View[ID, D]
}

// search is the state of one A* call. Unlike Dijkstra there is no settled
// set: a vertex whose true distance improves is pushed again and re-expanded.
type search[ID comparable, D any] struct {
	s         store.VertexStore[ID, D]
	options   Options
	heuristic func(D) weight.Heuristic
	visited   *path.VisitedNodes[ID, weight.PathWeight]
	estimate  map[ID]weight.Heuristic // computed once, at first discovery
	views     map[ID]store.View[ID, D]
	pq        pqueue.Queue[node[ID, D]]
	limit     weight.PathWeight
	bounded   bool
}

func newSearch[ID comparable, D any](s store.VertexStore[ID, D], start ID, h func(D) weight.Heuristic, opts []Option) (*search[ID, D], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if s == nil {
		return nil, ErrNilStore
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	view, err := store.Require(s, start, "start")
	if err != nil {
		return nil, err
	}

	r := &search[ID, D]{
		s:         s,
		options:   cfg,
		heuristic: h,
		visited:   path.NewFromStart[ID, weight.PathWeight](start, weight.Zero()),
		estimate:  make(map[ID]weight.Heuristic),
		views:     map[ID]store.View[ID, D]{start: view},
	}
	est := h(view.Data())
	r.estimate[start] = est
	r.pq.Push(node[ID, D]{id: start, view: view}, weight.Zero(), weight.Zero().AddHeuristic(est))

	return r, nil
}

func (r *search[ID, D]) first(match func(node[ID, D]) bool) (path.GraphPath[ID, weight.PathWeight], error) {
	for {
		n, ok := r.next()
		if !ok {
			return path.GraphPath[ID, weight.PathWeight]{}, fmt.Errorf("%w: open set from %v exhausted", path.ErrNoPath, r.visited.Start())
		}
		if match(n) {
			return r.visited.DeterminePath(n.id)
		}
		if err := r.relax(n); err != nil {
			return path.GraphPath[ID, weight.PathWeight]{}, err
		}
	}
}

// next pops the lowest-priority live entry. An entry is stale once its
// vertex's recorded distance has moved below the distance it was pushed with.
func (r *search[ID, D]) next() (node[ID, D], bool) {
	for r.pq.Len() > 0 {
		e := r.pq.Pop()
		rec, _ := r.visited.Get(e.Value.id)
		if !rec.Dist.Equal(e.Dist) {
			continue
		}

		return e.Value, true
	}

	return node[ID, D]{}, false
}

// relax compares candidates on true distance only; the heuristic affects
// queue priority and nothing else.
func (r *search[ID, D]) relax(n node[ID, D]) error {
	rec, _ := r.visited.Get(n.id)
	for _, nb := range n.view.NeighboursWithWeight() {
		cand, ok, err := r.options.Missing.Extend(rec.Dist, nb.Weight)
		if err != nil {
			return fmt.Errorf("astar: edge %v→%v: %w", n.id, nb.ID, err)
		}
		if !ok || (r.bounded && r.limit.Less(cand)) {
			continue
		}

		if old, seen := r.visited.Get(nb.ID); seen {
			if !cand.Less(old.Dist) {
				continue
			}
			r.visited.SetPrevious(nb.ID, n.id, rec.Step+1, cand)
			r.pq.Push(node[ID, D]{id: nb.ID, view: r.views[nb.ID]}, cand, cand.AddHeuristic(r.estimate[nb.ID]))

			continue
		}

		view, err := r.s.Lookup(nb.ID)
		if err != nil {
			continue
		}
		est := r.heuristic(view.Data())
		r.estimate[nb.ID] = est
		r.views[nb.ID] = view
		r.visited.Insert(nb.ID, n.id, rec.Step+1, cand)
		r.pq.Push(node[ID, D]{id: nb.ID, view: view}, cand, cand.AddHeuristic(est))
	}

	return nil
}
