// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a store.VertexStore,
// returning fewest-edge routes as destination-first path.GraphPath values.
//
// What
//
//   - Search(s, start, end): the fewest-edge route from start to end.
//   - ComputedEnd(s, start, pred): the fewest-edge route to the first vertex
//     whose data satisfies pred. The start itself is tested first.
//   - MultiEnd(s, start, pred, opts...): every matching vertex, in discovery
//     order, bounded by WithMaxResults and WithMaxSteps.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Find the nearest vertex of a kind ("nearest depot") without knowing its id.
//
// Determinism
//
//	Neighbours are enqueued in the order the store enumerates them and a
//	vertex keeps the predecessor it was first discovered from, so equal-length
//	routes are resolved by store order and results are reproducible.
//
// Store contract
//
//	The store is read on demand, one Lookup per discovered vertex; views are
//	not cached across calls. Neighbour ids the store does not know are
//	unreachable and silently skipped. Predicates receive the data of the
//	vertex being tested.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	p, err := bfs.Search(s, "A", "D")
//	if errors.Is(err, path.ErrNoPath) {
//	    // unreachable
//	}
//	fmt.Println(p.Forward()) // [A B C D]
//
//	depots, err := bfs.MultiEnd(s, "A", isDepot, bfs.WithMaxSteps(3))
//
// Errors
//
//   - ErrStoreNil             if the store is nil.
//   - ErrOptionViolation      if an invalid Option is supplied.
//   - store.ErrInvalidEntity  if start (or end) is absent from the store.
//   - path.ErrNoPath          if a single-result search exhausts its frontier.
//     MultiEnd never returns it.
package bfs
