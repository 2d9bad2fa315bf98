// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathsearch/runner"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		graph  string
		q      runner.Query
		multi  bool
		steps  int
		dist   float64
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find a path to a vertex or to vertices matching a CEL predicate",
		Example: `  pathsearch search --graph city.yaml --algorithm dijkstra --from depot --to mill
  pathsearch search --graph city.yaml --from depot --where 'v.kind == "shop"' --multi --max-results 3`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(graph)
			if err != nil {
				return err
			}
			if multi && q.MaxResults == 0 {
				q.MaxResults = -1
			}
			if cmd.Flags().Changed("max-steps") {
				q.MaxSteps = &steps
			}
			if cmd.Flags().Changed("max-distance") {
				q.MaxDistance = &dist
			}

			res := a.runner(g).Execute(cmd.Context(), q)
			if asJSON {
				if err := writeJSON(cmd.OutOrStdout(), res); err != nil {
					return err
				}
			} else {
				writeResult(cmd.OutOrStdout(), res)
			}

			return res.Err
		},
	}

	f := cmd.Flags()
	f.StringVar(&graph, "graph", "", "graph file (.yaml or adjacency text)")
	f.StringVar(&q.Algorithm, "algorithm", runner.BFS, "bfs, dfs, dijkstra or astar")
	f.StringVar(&q.From, "from", "", "start vertex")
	f.StringVar(&q.To, "to", "", "end vertex")
	f.StringVar(&q.Where, "where", "", "CEL predicate over v (attrs) and id")
	f.StringVar(&q.Heuristic, "heuristic", "", "A* CEL heuristic over a, b, a_id, b_id")
	f.StringVar(&q.Goal, "goal", "", "vertex the heuristic aims at when --where is used")
	f.BoolVar(&multi, "multi", false, "collect every match instead of the nearest one")
	f.IntVar(&q.MaxResults, "max-results", 0, "stop after this many matches")
	f.IntVar(&steps, "max-steps", 0, "bfs: only collect matches within this many edges")
	f.Float64Var(&dist, "max-distance", 0, "dijkstra/astar: abandon routes longer than this")
	f.BoolVar(&asJSON, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("from")
	cmd.MarkFlagsMutuallyExclusive("to", "where")
	cmd.MarkFlagsOneRequired("to", "where")

	return cmd
}
