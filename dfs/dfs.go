// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/pathsearch/path"
	"github.com/katalvlaran/pathsearch/store"
)

// frame is one stack entry: a vertex plus a cursor into its neighbours.
type frame[ID comparable, D any] struct {
	id     ID
	view   store.View[ID, D]
	nbrs   []ID
	cursor int
	depth  int
}

// dfsWalker encapsulates state during one DFS call.
type dfsWalker[ID comparable, D any] struct {
	store   store.VertexStore[ID, D]
	stack   []frame[ID, D]
	visited *path.VisitedNodes[ID, path.Unit]
}

// Search returns a route from start to end in depth-first discovery order.
// start == end yields [start].
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

	return w.run(func(f *frame[ID, D]) bool { return f.id == end })
}

// ComputedEnd returns a route to the first vertex whose data satisfies pred.
func ComputedEnd[ID comparable, D any](s store.VertexStore[ID, D], start ID, pred func(D) bool) (path.GraphPath[ID, path.Unit], error) {
	w, err := newWalker(s, start)
	if err != nil {
		return path.GraphPath[ID, path.Unit]{}, err
	}
	if pred(w.stack[0].view.Data()) {
		return w.visited.DeterminePath(start)
	}

	return w.run(func(f *frame[ID, D]) bool { return pred(f.view.Data()) })
}

// MultiEnd returns a route to every vertex whose data satisfies pred, in
// depth-first discovery order. An empty result is not an error.
func MultiEnd[ID comparable, D any](s store.VertexStore[ID, D], start ID, pred func(D) bool, opts ...Option) ([]path.GraphPath[ID, path.Unit], error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	w, err := newWalker(s, start)
	if err != nil {
		return nil, err
	}

	out := make([]path.GraphPath[ID, path.Unit], 0)
	var collectErr error
	collect := func(f *frame[ID, D]) bool {
		if !pred(f.view.Data()) {
			return false
		}
		p, err := w.visited.DeterminePath(f.id)
		if err != nil {
			collectErr = err

			return true
		}
		out = append(out, p)

		return o.MaxResults > 0 && len(out) >= o.MaxResults
	}

	if !collect(&w.stack[0]) {
		w.walk(collect)
	}
	if collectErr != nil {
		return nil, collectErr
	}

	return out, nil
}

func newWalker[ID comparable, D any](s store.VertexStore[ID, D], start ID) (*dfsWalker[ID, D], error) {
	if s == nil {
		return nil, ErrStoreNil
	}
	view, err := store.Require(s, start, "start")
	if err != nil {
		return nil, err
	}

	return &dfsWalker[ID, D]{
		store:   s,
		stack:   []frame[ID, D]{{id: start, view: view, nbrs: view.Neighbours()}},
		visited: path.NewFromStart[ID, path.Unit](start, path.Unit{}),
	}, nil
}

// run walks until match accepts a discovered vertex and returns its route.
func (w *dfsWalker[ID, D]) run(match func(*frame[ID, D]) bool) (path.GraphPath[ID, path.Unit], error) {
	if hit, ok := w.walk(match); ok {
		return w.visited.DeterminePath(hit)
	}

	return path.GraphPath[ID, path.Unit]{}, fmt.Errorf("%w: stack from %v exhausted", path.ErrNoPath, w.visited.Start())
}

// walk processes frames until stop accepts a newly discovered vertex or the
// stack is empty.
func (w *dfsWalker[ID, D]) walk(stop func(*frame[ID, D]) bool) (ID, bool) {
	var zero ID
	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if top.cursor >= len(top.nbrs) {
			continue
		}
		nbr := top.nbrs[top.cursor]
		top.cursor++
		w.stack = append(w.stack, top)

		if w.visited.Contains(nbr) {
			continue
		}
		view, err := w.store.Lookup(nbr)
		if err != nil {
			// absent ids are unreachable
			continue
		}
		child := frame[ID, D]{id: nbr, view: view, nbrs: view.Neighbours(), depth: top.depth + 1}
		w.visited.Insert(nbr, top.id, child.depth, path.Unit{})
		if stop(&child) {
			return nbr, true
		}
		w.stack = append(w.stack, child)
	}

	return zero, false
}
