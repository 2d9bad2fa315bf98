// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/path"
	"github.com/katalvlaran/pathsearch/store"
)

// queueItem pairs a vertex with its view and its BFS layer.
type queueItem[ID comparable, D any] struct {
	id    ID
	view  store.View[ID, D]
	depth int
}

// walker encapsulates mutable BFS state for one call.
type walker[ID comparable, D any] struct {
	store   store.VertexStore[ID, D]
	queue   []queueItem[ID, D]
	visited *path.VisitedNodes[ID, path.Unit]
}

// Search returns the route from start to end with the fewest edges.
// Ties go to the neighbour enumerated first. start == end yields [start].
//
// Errors: ErrStoreNil, store.ErrInvalidEntity if start or end is absent,
// path.ErrNoPath if end is unreachable.
func Search[ID comparable, D any](s store.VertexStore[ID, D], start, end ID) (path.GraphPath[ID, path.Unit], error) {
	w, err := newWalker(s, start)
	if err != nil {
		return path.GraphPath[ID, path.Unit]{}, err
	}
	if _, err = store.Require(s, end, "end"); err != nil {
		return path.GraphPath[ID, path.Unit]{}, err
	}
	if start == end {
		return w.visited.DeterminePath(start)
	}

	return w.run(func(it queueItem[ID, D]) bool { return it.id == end })
}

// ComputedEnd returns the fewest-edge route to the first vertex, in BFS
// discovery order, whose data satisfies pred. The start is tested first.
func ComputedEnd[ID comparable, D any](s store.VertexStore[ID, D], start ID, pred func(D) bool) (path.GraphPath[ID, path.Unit], error) {
	w, err := newWalker(s, start)
	if err != nil {
		return path.GraphPath[ID, path.Unit]{}, err
	}
	if pred(w.queue[0].view.Data()) {
		return w.visited.DeterminePath(start)
	}

	return w.run(func(it queueItem[ID, D]) bool { return pred(it.view.Data()) })
}

// MultiEnd collects the route to every vertex whose data satisfies pred, in
// discovery order, honouring WithMaxResults and WithMaxSteps. It never
// returns path.ErrNoPath: no match yields an empty slice.
func MultiEnd[ID comparable, D any](s store.VertexStore[ID, D], start ID, pred func(D) bool, opts ...Option) ([]path.GraphPath[ID, path.Unit], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	w, err := newWalker(s, start)
	if err != nil {
		return nil, err
	}

	out := make([]path.GraphPath[ID, path.Unit], 0)
	var collectErr error
	full := func() bool { return o.MaxResults > 0 && len(out) >= o.MaxResults }
	collect := func(it queueItem[ID, D]) bool {
		if !pred(it.view.Data()) {
			return false
		}
		p, err := w.visited.DeterminePath(it.id)
		if err != nil {
			collectErr = err

			return true
		}
		out = append(out, p)

		return full()
	}

	if !collect(w.queue[0]) {
		w.drain(o.MaxSteps, collect)
	}
	if collectErr != nil {
		return nil, collectErr
	}

	return out, nil
}

// drain expands layer after layer until stop fires or the layer bound is hit.
func (w *walker[ID, D]) drain(maxSteps int, stop func(queueItem[ID, D]) bool) {
	for len(w.queue) > 0 {
		item := w.dequeue()
		// layers are non-decreasing, so nothing later can be in range either
		if maxSteps >= 0 && item.depth >= maxSteps {
			return
		}
		if _, done := w.enqueueNeighbors(item, stop); done {
			return
		}
	}
}

// newWalker validates s and start and seeds the queue.
func newWalker[ID comparable, D any](s store.VertexStore[ID, D], start ID) (*walker[ID, D], error) {
	if s == nil {
		return nil, ErrStoreNil
	}
	view, err := store.Require(s, start, "start")
	if err != nil {
		return nil, err
	}

	return &walker[ID, D]{
		store:   s,
		queue:   []queueItem[ID, D]{{id: start, view: view, depth: 0}},
		visited: path.NewFromStart[ID, path.Unit](start, path.Unit{}),
	}, nil
}

// run drains the queue until match accepts a newly discovered vertex.
func (w *walker[ID, D]) run(match func(queueItem[ID, D]) bool) (path.GraphPath[ID, path.Unit], error) {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if hit, ok := w.enqueueNeighbors(item, match); ok {
			return w.visited.DeterminePath(hit.id)
		}
	}

	return path.GraphPath[ID, path.Unit]{}, fmt.Errorf("%w: frontier from %v exhausted", path.ErrNoPath, w.visited.Start())
}

// dequeue pops the first item.
func (w *walker[ID, D]) dequeue() queueItem[ID, D] {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}

// enqueueNeighbors records and enqueues each unseen neighbour of item in
// store order, stopping at the first one stop accepts. Neighbours absent
// from the store are unreachable and skipped.
func (w *walker[ID, D]) enqueueNeighbors(item queueItem[ID, D], stop func(queueItem[ID, D]) bool) (queueItem[ID, D], bool) {
	for _, nbr := range item.view.Neighbours() {
		if w.visited.Contains(nbr) {
			continue
		}
		view, err := w.store.Lookup(nbr)
		if err != nil {
			continue
		}
		next := queueItem[ID, D]{id: nbr, view: view, depth: item.depth + 1}
		w.visited.Insert(nbr, item.id, next.depth, path.Unit{})
		w.queue = append(w.queue, next)
		if stop(next) {
			return next, true
		}
	}

	return queueItem[ID, D]{}, false
}
