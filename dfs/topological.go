// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pathsearch/store"
)

// ErrCycleDetected is returned by TopologicalSort when a back edge is found.
var ErrCycleDetected = errors.New("dfs: cycle detected")

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext makes TopologicalSort stop with ctx.Err() once ctx is
// done. Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// vertex colours of the three-state walk
const (
	white = iota
	gray
	black
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[ID comparable, D any] struct {
	store store.VertexStore[ID, D]
	opts  topoOptions
	state map[ID]int
	order []ID
}

// TopologicalSort orders every vertex reachable from roots so that for each
// edge u→v, u comes before v. Roots are walked in the given order and each
// vertex's neighbours in store order, so the result is deterministic.
//
// Neighbour ids the store does not know are skipped, as in the searches.
// An absent root is store.ErrInvalidEntity; a cycle is ErrCycleDetected,
// wrapped with the edge that closes it. In an undirected store every edge
// is a two-vertex cycle.
//
// Complexity: O(V + E) time, O(V) memory; no recursion.
func TopologicalSort[ID comparable, D any](s store.VertexStore[ID, D], roots []ID, options ...TopoOption) ([]ID, error) {
	if s == nil {
		return nil, ErrStoreNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	t := &topoSorter[ID, D]{
		store: s,
		opts:  opts,
		state: make(map[ID]int, len(roots)),
		order: make([]ID, 0, len(roots)),
	}
	for _, r := range roots {
		if t.state[r] != white {
			continue
		}
		view, err := store.Require(s, r, "root")
		if err != nil {
			return nil, err
		}
		if err = t.visit(r, view); err != nil {
			return nil, err
		}
	}

	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}

	return t.order, nil
}

// visit runs the coloured walk from root with an explicit frame stack. A
// vertex is appended to the post-order once its frame is exhausted.
func (t *topoSorter[ID, D]) visit(root ID, view store.View[ID, D]) error {
	t.state[root] = gray
	stack := []frame[ID, D]{{id: root, view: view, nbrs: view.Neighbours()}}

	for len(stack) > 0 {
		if err := t.opts.ctx.Err(); err != nil {
			return err
		}
		top := &stack[len(stack)-1]
		if top.cursor >= len(top.nbrs) {
			t.state[top.id] = black
			t.order = append(t.order, top.id)
			stack = stack[:len(stack)-1]

			continue
		}
		nbr := top.nbrs[top.cursor]
		top.cursor++

		switch t.state[nbr] {
		case gray:
			return fmt.Errorf("%w: back edge %v→%v", ErrCycleDetected, top.id, nbr)
		case black:
			continue
		}
		nv, err := t.store.Lookup(nbr)
		if err != nil {
			continue
		}
		t.state[nbr] = gray
		stack = append(stack, frame[ID, D]{id: nbr, view: nv, nbrs: nv.Neighbours(), depth: top.depth + 1})
	}

	return nil
}
