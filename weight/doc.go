// SPDX-License-Identifier: MIT

// Package weight is the cost model shared by every weighted search.
//
// What
//
//   - Edge: the weight of one edge as a store reports it, known or unknown.
//   - PathWeight: cumulative cost as (Crossings, Sum), ordered
//     lexicographically so that fewer unknown-edge crossings always win.
//   - Heuristic: an A* estimate, finite or explicitly infinite.
//   - Missing: the policy for unknown edges (Impassable, Infinity, Value).
//
// Why
//
//	A plain float64 cannot express "this route crosses one edge of unknown
//	cost, that one crosses none". Folding unknown edges into +Inf loses the
//	ability to rank two routes that both cross unknowns, and folding them into
//	a constant hides them. PathWeight keeps both facts in O(1) space.
//
// Errors
//
//   - ErrNegativeWeight  a finite weight below zero was applied.
//   - ErrBadPolicy       unreadable policy text or a non-finite substitute.
package weight
