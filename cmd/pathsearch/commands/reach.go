// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathsearch/runner"
)

func newReachCmd(a *app) *cobra.Command {
	var (
		graph  string
		from   string
		steps  int
		at     int
		dist   float64
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "reach",
		Short: "List vertices within a step count or distance budget",
		Example: `  pathsearch reach --graph city.yaml --from depot --steps 2
  pathsearch --missing value:1 reach --graph city.yaml --from depot --distance 7.5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(graph)
			if err != nil {
				return err
			}

			q := runner.Query{From: from}
			switch {
			case cmd.Flags().Changed("steps"):
				q.Algorithm, q.MaxSteps = runner.WithinSteps, &steps
			case cmd.Flags().Changed("at"):
				q.Algorithm, q.MaxSteps = runner.AtStep, &at
			default:
				q.Algorithm, q.MaxDistance = runner.WithinDistance, &dist
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
	f.StringVar(&from, "from", "", "start vertex")
	f.IntVar(&steps, "steps", 0, "every vertex within this many edges")
	f.IntVar(&at, "at", 0, "vertices exactly this many edges away")
	f.Float64Var(&dist, "distance", 0, "every vertex within this weighted distance")
	f.BoolVar(&asJSON, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("from")
	cmd.MarkFlagsMutuallyExclusive("steps", "at", "distance")
	cmd.MarkFlagsOneRequired("steps", "at", "distance")

	return cmd
}
