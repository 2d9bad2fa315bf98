// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathsearch/runner"
)

// ErrQueriesFailed is returned by batch when at least one query failed.
var ErrQueriesFailed = errors.New("pathsearch: queries failed")

// queryFile is the batch input document.
type queryFile struct {
	Queries []runner.Query `yaml:"queries"`
}

func readQueries(path string) ([]runner.Query, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	var doc queryFile
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return doc.Queries, nil
}

func newBatchCmd(a *app) *cobra.Command {
	var (
		graph   string
		queries string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run a YAML file of queries concurrently",
		Example: `  pathsearch batch --graph city.yaml --queries routes.yaml --workers 8

routes.yaml:
  queries:
    - {name: to-mill, algorithm: dijkstra, from: depot, to: mill}
    - {name: shops, algorithm: bfs, from: depot, where: 'v.kind == "shop"', max_results: -1}`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph(graph)
			if err != nil {
				return err
			}
			qs, err := readQueries(queries)
			if err != nil {
				return err
			}

			results, runErr := a.runner(g).Run(cmd.Context(), qs)

			failed := 0
			for _, res := range results {
				if res.Err != nil {
					failed++
				}
			}
			a.logger.Info("batch finished", "queries", len(results), "failed", failed)

			out := cmd.OutOrStdout()
			if asJSON {
				if err := writeJSON(out, results); err != nil {
					return err
				}
			} else {
				for _, res := range results {
					writeResult(out, res)
				}
			}

			switch {
			case runErr != nil:
				return runErr
			case failed > 0:
				return fmt.Errorf("%w: %d of %d", ErrQueriesFailed, failed, len(results))
			default:
				return nil
			}
		},
	}

	f := cmd.Flags()
	f.StringVar(&graph, "graph", "", "graph file (.yaml or adjacency text)")
	f.StringVar(&queries, "queries", "", "YAML file with a top-level queries list")
	f.BoolVar(&asJSON, "json", false, "print the results as a JSON array")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("queries")

	return cmd
}
