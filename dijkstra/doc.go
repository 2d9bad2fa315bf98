// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// store.VertexStore whose edges may have unknown weights.
//
// Dijkstra settles vertices in increasing weight.PathWeight order using a
// min-heap, relaxing each settled vertex's outgoing edges. PathWeight is
// ordered by (unknown-edge crossings, finite sum), so a route that avoids
// unknown edges always beats one that crosses them, whatever the sums.
//
// Entry points:
//
//   - Search(s, start, end, opts...)        one route to a fixed end.
//   - ComputedEnd(s, start, pred, opts...)  route to the closest vertex whose
//     data satisfies pred.
//   - MultiEnd(s, start, pred, opts...)     routes to every match in
//     non-decreasing distance order.
//
// Relaxation:
//
//   - Popping the end (or a match) returns immediately: its popped distance
//     is already minimal.
//   - An unvisited neighbour is recorded and pushed.
//   - A visited neighbour is updated only when the candidate is strictly
//     smaller; equal candidates keep the earlier predecessor.
//   - Stale heap entries are skipped when popped (lazy decrease-key).
//
// Missing weights (WithMissingWeight):
//
//   - weight.Impassable()  unknown edges are skipped. Default.
//   - weight.Infinity()    unknown edges are taken and add one crossing.
//   - weight.Value(x)      unknown edges cost x.
//
// Complexity:
//
//   - Time:  O((V + E) log V).
//   - Space: O(V + E), the heap may hold one entry per relaxation.
//
// Errors (sentinel):
//
//   - ErrNilStore               if the store is nil.
//   - ErrOptionViolation        for MaxResults < 1, a negative/NaN MaxDistance
//     or a negative/non-finite MaxWeight.
//   - store.ErrInvalidEntity    if start (or end) is absent.
//   - weight.ErrNegativeWeight  as soon as a negative finite weight is seen.
//   - path.ErrNoPath            if a single-result search exhausts the queue.
//
// Example usage:
//
//	p, err := dijkstra.Search(s, "A", "D", dijkstra.WithMissingWeight(weight.Infinity()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p.Forward(), p.Cost())
package dijkstra
