// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/dfs"
)

func newOrderCmd(a *app) *cobra.Command {
	var (
		graph  string
		roots  []string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:     "order",
		Short:   "Print a topological order of a directed graph",
		Example: `  pathsearch order --graph tasks.yaml --from build,test`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(graph)
			if err != nil {
				return err
			}
			if len(roots) == 0 {
				roots = g.Vertices()
			}

			order, err := dfs.TopologicalSort[string, core.Vertex](g, roots, dfs.WithCancelContext(cmd.Context()))
			if err != nil {
				return err
			}
			a.logger.Debug("topological order", "roots", len(roots), "vertices", len(order))

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), order)
			}
			for _, id := range order {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&graph, "graph", "", "graph file (.yaml or adjacency text)")
	f.StringSliceVar(&roots, "from", nil, "start vertices; every vertex when empty")
	f.BoolVar(&asJSON, "json", false, "print the order as a JSON array")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}
