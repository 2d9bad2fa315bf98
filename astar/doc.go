// SPDX-License-Identifier: MIT

// Package astar implements A* search over a store.VertexStore whose edges may
// have unknown weights.
//
// What
//
//   - Search(s, start, end, h, opts...): h(v, end) estimates the remaining
//     cost from v's data to end's data.
//   - ComputedEnd(s, start, h, pred, opts...): h(v) estimates the cost to the
//     nearest vertex satisfying pred.
//   - MultiEnd(s, start, h, pred, opts...): every match in pop order, bounded
//     by WithMaxResults, WithMaxDistance and WithMaxWeight.
//
// How
//
//   - The heuristic is evaluated exactly once per vertex, at first discovery
//     (the start at initialisation), and cached.
//   - The queue is ordered by distance + heuristic as a weight.PathWeight; an
//     infinite estimate counts as one crossing, so such vertices are tried
//     only after every finite-estimate alternative.
//   - The distance table holds true distances only; relaxation compares true
//     distances, never priorities.
//   - A vertex whose true distance improves after it was expanded is pushed
//     again and re-expanded. Admissible but inconsistent heuristics therefore
//     still produce optimal routes, at the cost of extra expansions.
//
// Caller contract
//
//	Optimality requires an admissible heuristic (never overestimates). This
//	is documented, not verified. A heuristic that is always zero makes A*
//	behave as Dijkstra.
//
// Missing weights and negative weights follow the dijkstra package: the
// policy is set with WithMissingWeight (default weight.Impassable()) and a
// negative finite weight aborts with weight.ErrNegativeWeight.
//
// Errors
//
//   - ErrNilStore, ErrNilHeuristic, ErrOptionViolation.
//   - store.ErrInvalidEntity  start (or end) absent.
//   - weight.ErrNegativeWeight.
//   - path.ErrNoPath          single-result search exhausted the open set.
package astar
