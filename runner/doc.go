// SPDX-License-Identifier: MIT

// Package runner executes batches of declarative search queries against one
// vertex store.
//
// A Query names an algorithm (bfs, dfs, dijkstra, astar, within-steps,
// at-step, within-distance), a start vertex, and either a fixed end (To) or a
// CEL predicate (Where) compiled by package predicate. Queries run on a
// bounded errgroup; each one is wrapped in an OpenTelemetry span, counted in
// Prometheus, and logged through slog.
//
// Per-query failures never abort the batch: they land in Result.Err. Only
// cancellation of the batch context stops new queries from starting.
//
//	r := runner.New(g, runner.WithWorkers(4))
//	results, err := r.Run(ctx, []runner.Query{
//		{Name: "cheapest", Algorithm: runner.Dijkstra, From: "A", To: "F"},
//		{Name: "depots", Algorithm: runner.BFS, From: "A", Where: `v.kind == "depot"`, MaxResults: -1},
//	})
package runner
