// SPDX-License-Identifier: MIT

// Package pathsearch is a path-search toolkit over externally managed vertex
// stores: breadth-first, depth-first, Dijkstra and A* search, each in
// fixed-end, predicate-end and bounded multi-end forms, plus neighbourhood
// queries by step count or weighted distance.
//
// What is in the box?
//
//	Search core (generic over any comparable vertex id):
//		• store/        — VertexStore and View, the only thing a search reads
//		• weight/       — optional edge weights, PathWeight, heuristics, unknown-edge policy
//		• path/         — visited records and destination-first GraphPath reconstruction
//		• bfs/, dfs/    — unweighted searches (dfs also sorts topologically)
//		• dijkstra/     — cheapest paths under the PathWeight order
//		• astar/        — Dijkstra guided by a heuristic, with re-opening
//		• neighborhood/ — WithinSteps, AtStep, WithinDistance
//
//	Stores and inputs:
//		• core/         — thread-safe in-memory graph, string ids, attribute maps
//		• gridgraph/    — 2D cell grids with grid heuristics and components
//		• builder/      — deterministic generators (path, cycle, star, grid, random)
//		• loader/       — YAML and adjacency-text graph files
//
//	Around the searches:
//		• predicate/    — CEL vertex predicates and heuristics
//		• observe/      — slog, Prometheus and OpenTelemetry helpers
//		• runner/       — concurrent batches of declarative queries
//		• cmd/pathsearch — the command-line front end
//
// Costs and unknown weights:
//
// An edge weight is either a known non-negative number or unknown. Path costs
// are PathWeight{Crossings, Sum}: fewer unknown crossings always wins, then
// the smaller finite sum. weight.Impassable (default), weight.Infinity and
// weight.Value(x) decide how unknown edges are treated.
//
// Quick example:
//
//	g := core.NewGraph(core.WithDirected(false))
//	_, _ = g.AddEdge("depot", "ford", core.WithWeight(1))
//	_, _ = g.AddEdge("ford", "mill", core.WithWeight(2))
//	p, err := dijkstra.Search[string, core.Vertex](g, "depot", "mill")
//	// p.Forward() == [depot ford mill], p.Cost() == 3
//
//	go get github.com/katalvlaran/pathsearch
package pathsearch
