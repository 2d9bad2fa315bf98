// SPDX-License-Identifier: MIT

// Package builder generates deterministic core.Graph fixtures for searches,
// benchmarks and the CLI's generate command.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): creates the graph, resolves options,
//     applies constructors in order.
//   - Topology constructors:
//     – Path(n), Cycle(n), Star(n), Complete(n), Grid(rows, cols),
//     RandomSparse(n, p).
//   - Configuration primitives (BuilderOption):
//     – WithSeed / WithRand: RNG for stochastic choices.
//     – WithIDScheme: index → vertex ID (DefaultIDFn, SymbolIDFn,
//     ExcelColumnIDFn, SymbolNumberIDFn).
//     – WithWeightFn: per-edge known weight (DefaultWeightFn,
//     ConstantWeightFn, UniformWeightFn, ExponentialWeightFn).
//     – WithUnknownRatio(p): each edge is unknown with probability p, so
//     fixtures exercise the missing-weight policies.
//     – WithAttrFn: per-vertex attributes for predicates and heuristics.
//
// Guarantees:
//
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical
//     graphs, edge IDs included.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed).
//   - Undirected graphs get one edge per pair; directed graphs get the
//     documented orientation (Complete mirrors both ways).
package builder
