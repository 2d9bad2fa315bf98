// SPDX-License-Identifier: MIT

package path

import "fmt"

// VisitedNodes maps each discovered vertex to its Record and remembers the
// order in which vertices were first inserted.
type VisitedNodes[ID comparable, D any] struct {
	start   ID
	records map[ID]Record[ID, D]
	order   []ID
}

// NewFromStart returns a map holding only the start vertex at step 0.
func NewFromStart[ID comparable, D any](start ID, dist D) *VisitedNodes[ID, D] {
	v := &VisitedNodes[ID, D]{
		start:   start,
		records: make(map[ID]Record[ID, D]),
	}
	v.records[start] = Record[ID, D]{Dist: dist}
	v.order = append(v.order, start)

	return v
}

// Start returns the vertex the map was seeded with.
func (v *VisitedNodes[ID, D]) Start() ID { return v.start }

// Insert records id as reached from prev. It reports false, leaving the map
// untouched, if id was already recorded: first discovery wins.
func (v *VisitedNodes[ID, D]) Insert(id, prev ID, step int, dist D) bool {
	if _, ok := v.records[id]; ok {
		return false
	}
	v.records[id] = Record[ID, D]{Prev: prev, HasPrev: true, Step: step, Dist: dist}
	v.order = append(v.order, id)

	return true
}

// SetPrevious overwrites the record of an already discovered vertex after a
// cheaper route was found. Unknown ids are inserted.
func (v *VisitedNodes[ID, D]) SetPrevious(id, prev ID, step int, dist D) {
	if _, ok := v.records[id]; !ok {
		v.order = append(v.order, id)
	}
	v.records[id] = Record[ID, D]{Prev: prev, HasPrev: true, Step: step, Dist: dist}
}

// Contains reports whether id has been discovered.
func (v *VisitedNodes[ID, D]) Contains(id ID) bool {
	_, ok := v.records[id]

	return ok
}

// Get returns the record of id.
func (v *VisitedNodes[ID, D]) Get(id ID) (Record[ID, D], bool) {
	r, ok := v.records[id]

	return r, ok
}

// Len is the number of discovered vertices.
func (v *VisitedNodes[ID, D]) Len() int { return len(v.records) }

// Order returns the discovered vertices in first-insertion order.
func (v *VisitedNodes[ID, D]) Order() []ID {
	out := make([]ID, len(v.order))
	copy(out, v.order)

	return out
}

// DeterminePath follows predecessors from end back to a vertex without one
// and returns the route destination-first.
//
// The walk is capped at Len() hops; exceeding the cap means the chain loops.
func (v *VisitedNodes[ID, D]) DeterminePath(end ID) (GraphPath[ID, D], error) {
	rec, ok := v.records[end]
	if !ok {
		return GraphPath[ID, D]{}, fmt.Errorf("%w: %v not reached", ErrNoPath, end)
	}

	nodes := make([]Node[ID, D], 0, rec.Step+1)
	nodes = append(nodes, Node[ID, D]{ID: end, Payload: rec.Dist})
	cur := end
	for hops := 0; rec.HasPrev; hops++ {
		if hops >= len(v.records) {
			return GraphPath[ID, D]{}, fmt.Errorf("%w: cycle through %v", ErrInvalidPath, cur)
		}
		prev := rec.Prev
		next, ok := v.records[prev]
		if !ok {
			return GraphPath[ID, D]{}, fmt.Errorf("%w: %v points at unrecorded %v", ErrInvalidPath, cur, prev)
		}
		nodes = append(nodes, Node[ID, D]{ID: prev, Payload: next.Dist})
		cur, rec = prev, next
	}

	return GraphPath[ID, D]{Nodes: nodes}, nil
}
