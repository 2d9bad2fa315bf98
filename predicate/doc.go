// SPDX-License-Identifier: MIT

// Package predicate compiles CEL expressions into the vertex predicates and
// A* heuristics the search packages take, for use with core.Graph stores.
//
// Predicates see two variables:
//
//	v   map(string, dyn)  the vertex attributes
//	id  string            the vertex id
//
// and must yield a bool, e.g. `has(v.kind) && v.kind == "exit"` or
// `id.startsWith("gate")`. Heuristics see the attributes and ids of both
// endpoints as a, b, a_id and b_id and yield a number, e.g.
// `math.abs(a.x - b.x) + math.abs(a.y - b.y)` on a grid with x/y attributes.
//
// Compiled programs are safe for concurrent use. Evaluation failures (a
// missing key, a type mismatch) never panic: predicates report false and
// heuristics report the infinite marker, and both log the failure at debug
// level.
package predicate
