// SPDX-License-Identifier: MIT

// Package neighborhood answers "what is near this vertex" rather than "how do
// I get there": it returns reached vertices with their step count or
// distance instead of routes.
//
//   - WithinSteps(s, start, maxSteps): breadth-first, strictly layer by
//     layer; every vertex reachable in at most maxSteps edges, tagged with its
//     layer. The first element is always (start, 0).
//   - AtStep(s, start, k): the vertices whose layer is exactly k.
//   - WithinDistance(s, start, maxDistance, opts...): Dijkstra-style
//     expansion returning every vertex whose minimal distance is at most
//     maxDistance, in settlement (non-decreasing distance) order. Unknown
//     edges follow WithMissingWeight (default impassable); a negative finite
//     weight aborts with weight.ErrNegativeWeight.
//
// Errors
//
//   - ErrStoreNil, ErrOptionViolation (negative bound, NaN distance).
//   - store.ErrInvalidEntity if start is absent.
package neighborhood
