// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search over a store.VertexStore without
// recursion: every stack frame keeps a cursor into its vertex's neighbour
// list, so enumeration resumes where it left off when the frame is re-pushed.
//
// Key features:
//   - Search(s, start, end): some route from start to end (not the shortest).
//   - ComputedEnd(s, start, pred): route to the first vertex, in depth-first
//     discovery order, whose data satisfies pred. The start is tested first.
//   - MultiEnd(s, start, pred, opts...): every match in discovery order,
//     bounded by WithMaxResults.
//   - TopologicalSort(s, roots, opts...): reverse post-order of everything
//     the roots reach, with the same cursor frames and a white/gray/black
//     colouring; WithCancelContext stops it early.
//
// Frame discipline:
//
//  1. Pop the top frame.
//  2. Exhausted frames are dropped; that is the backtrack.
//  3. Otherwise advance the cursor, re-push the frame, and process the
//     neighbour under the cursor: first discovery records the predecessor,
//     pushes a new frame for the neighbour and may end the search.
//
// Complexity:
//
//   - Time:   O(V + E).
//   - Memory: O(V) for the frame stack and the visited records; stack depth
//     is bounded by the heap, not by the goroutine stack.
//
// Errors:
//
//   - ErrStoreNil             if s is nil.
//   - ErrOptionViolation      if an Option is invalid.
//   - store.ErrInvalidEntity  if start (or end) is absent.
//   - path.ErrNoPath          if a single-result search exhausts the stack.
//   - ErrCycleDetected        if TopologicalSort meets a back edge.
package dfs
