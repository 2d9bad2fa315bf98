// SPDX-License-Identifier: MIT

package neighborhood

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pathsearch/internal/pqueue"
	"github.com/katalvlaran/pathsearch/store"
	"github.com/katalvlaran/pathsearch/weight"
)

// WithinSteps returns every vertex reachable from start in at most maxSteps
// edges, layer by layer, each tagged with its layer index. maxSteps == 0
// returns exactly [(start, 0)].
func WithinSteps[ID comparable, D any](s store.VertexStore[ID, D], start ID, maxSteps int) ([]Reached[ID], error) {
	if maxSteps < 0 {
		return nil, fmt.Errorf("%w: maxSteps cannot be negative (%d)", ErrOptionViolation, maxSteps)
	}
	if s == nil {
		return nil, ErrStoreNil
	}
	view, err := store.Require(s, start, "start")
	if err != nil {
		return nil, err
	}

	out := []Reached[ID]{{ID: start, Step: 0}}
	seen := map[ID]bool{start: true}
	layer := []store.View[ID, D]{view}
	for step := 1; step <= maxSteps && len(layer) > 0; step++ {
		var next []store.View[ID, D]
		for _, v := range layer {
			for _, nbr := range v.Neighbours() {
				if seen[nbr] {
					continue
				}
				nv, err := s.Lookup(nbr)
				if err != nil {
					continue
				}
				seen[nbr] = true
				out = append(out, Reached[ID]{ID: nbr, Step: step})
				next = append(next, nv)
			}
		}
		layer = next
	}

	return out, nil
}

// AtStep returns the vertices whose minimal step count from start is exactly k.
func AtStep[ID comparable, D any](s store.VertexStore[ID, D], start ID, k int) ([]ID, error) {
	reached, err := WithinSteps(s, start, k)
	if err != nil {
		return nil, err
	}
	out := make([]ID, 0)
	for _, r := range reached {
		if r.Step == k {
			out = append(out, r.ID)
		}
	}

	return out, nil
}

// WithinDistance returns every vertex whose minimal distance from start is
// at most maxDistance, in settlement order, start first at 0. +Inf disables
// the budget.
func WithinDistance[ID comparable, D any](s store.VertexStore[ID, D], start ID, maxDistance float64, opts ...Option) ([]Distance[ID], error) {
	if math.IsNaN(maxDistance) || maxDistance < 0 {
		return nil, fmt.Errorf("%w: maxDistance must be non-negative (%g)", ErrOptionViolation, maxDistance)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if s == nil {
		return nil, ErrStoreNil
	}
	view, err := store.Require(s, start, "start")
	if err != nil {
		return nil, err
	}
	bounded := !math.IsInf(maxDistance, 1)
	limit := weight.FromFloat(maxDistance)

	type entry struct {
		id   ID
		view store.View[ID, D]
	}
	best := map[ID]weight.PathWeight{start: weight.Zero()}
	settled := make(map[ID]bool)
	var pq pqueue.Queue[entry]
	pq.Push(entry{start, view}, weight.Zero(), weight.Zero())

	out := make([]Distance[ID], 0)
	for pq.Len() > 0 {
		e := pq.Pop()
		if settled[e.Value.id] {
			continue
		}
		settled[e.Value.id] = true
		out = append(out, Distance[ID]{ID: e.Value.id, Distance: e.Dist})

		for _, nb := range e.Value.view.NeighboursWithWeight() {
			cand, ok, err := o.Missing.Extend(e.Dist, nb.Weight)
			if err != nil {
				return nil, fmt.Errorf("neighborhood: edge %v→%v: %w", e.Value.id, nb.ID, err)
			}
			if !ok || settled[nb.ID] || (bounded && limit.Less(cand)) {
				continue
			}
			if old, seen := best[nb.ID]; seen && !cand.Less(old) {
				continue
			}
			nv, err := s.Lookup(nb.ID)
			if err != nil {
				continue
			}
			best[nb.ID] = cand
			pq.Push(entry{nb.ID, nv}, cand, cand)
		}
	}

	return out, nil
}
