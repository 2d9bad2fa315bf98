// SPDX-License-Identifier: MIT

// Package path records what a search discovered and rebuilds routes from it.
//
// What
//
//   - VisitedNodes: per-vertex Record{Prev, Step, Dist}, allocated fresh for
//     every search call and discarded after the call returns.
//   - GraphPath: an ordered list of Node{ID, Payload} running from the
//     destination back to the source. Payload is Unit for BFS/DFS and
//     weight.PathWeight for Dijkstra and A*.
//   - DeterminePath: walks the predecessor chain from a destination to the
//     start and emits the GraphPath.
//
// Invariants
//
//   - The start vertex has no predecessor.
//   - Every other record's predecessor is itself a key of the same map.
//   - A chain longer than Len() hops can only be a cycle; reconstruction
//     stops there and reports ErrInvalidPath instead of looping.
//
// Complexity
//
//   - Insert/Get/Contains: O(1) amortised.
//   - DeterminePath:       O(L) where L is the path length, capped at Len().
//
// Errors
//
//   - ErrNoPath       the destination was never recorded (frontier exhausted).
//   - ErrInvalidPath  the predecessor chain is cyclic or dangling. This marks a
//     bookkeeping defect in a search, never a caller error.
package path
