// SPDX-License-Identifier: MIT

package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathsearch/builder"
	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/gridgraph"
	"github.com/katalvlaran/pathsearch/loader"
)

// ErrUnknownKind is returned for an unsupported --kind.
var ErrUnknownKind = errors.New("pathsearch: unknown graph kind")

type generateFlags struct {
	kind         string
	n            int
	rows, cols   int
	p            float64
	seed         int64
	undirected   bool
	weight       float64
	weightMin    float64
	weightMax    float64
	unknownRatio float64
	ids          string
	terrain      string
	threshold    int
	conn8        bool
	unknownCell  int
	out          string
}

func newGenerateCmd(a *app) *cobra.Command {
	var gf generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated graph as YAML",
		Example: `  pathsearch generate --kind grid --rows 4 --cols 6 --weight-min 1 --weight-max 5 --seed 7
  pathsearch generate --kind random --n 50 --p 0.1 --unknown-ratio 0.2 --seed 1 --out sparse.yaml
  pathsearch generate --kind terrain --terrain map.txt --conn8 --unknown-cell 9`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				g   *core.Graph
				err error
			)
			if gf.kind == "terrain" {
				g, err = terrainGraph(gf, cmd.Flags().Changed("unknown-cell"))
			} else {
				g, err = builtGraph(gf, cmd.Flags().Changed("weight"), cmd.Flags().Changed("weight-max"))
			}
			if err != nil {
				return err
			}
			a.logger.Info("graph generated", "kind", gf.kind, "vertices", g.VertexCount(), "edges", g.EdgeCount())

			if gf.out == "" {
				return loader.WriteYAML(cmd.OutOrStdout(), g)
			}

			return loader.Save(gf.out, g)
		},
	}

	f := cmd.Flags()
	f.StringVar(&gf.kind, "kind", "path", "path, cycle, star, complete, grid, random or terrain")
	f.IntVar(&gf.n, "n", 5, "vertex count")
	f.IntVar(&gf.rows, "rows", 3, "grid rows")
	f.IntVar(&gf.cols, "cols", 3, "grid columns")
	f.Float64Var(&gf.p, "p", 0.2, "random: edge probability")
	f.Int64Var(&gf.seed, "seed", 1, "random seed")
	f.BoolVar(&gf.undirected, "undirected", false, "emit undirected edges")
	f.Float64Var(&gf.weight, "weight", builder.DefaultEdgeWeight, "constant edge weight")
	f.Float64Var(&gf.weightMin, "weight-min", 1, "uniform weight lower bound")
	f.Float64Var(&gf.weightMax, "weight-max", 1, "uniform weight upper bound")
	f.Float64Var(&gf.unknownRatio, "unknown-ratio", 0, "share of edges left without a weight")
	f.StringVar(&gf.ids, "ids", "numeric", "vertex ids: numeric, symbol, excel or prefix:<p>")
	f.StringVar(&gf.terrain, "terrain", "", "terrain: whitespace-separated integer grid file")
	f.IntVar(&gf.threshold, "threshold", 1, "terrain: lowest passable cell value")
	f.BoolVar(&gf.conn8, "conn8", false, "terrain: include diagonal moves")
	f.IntVar(&gf.unknownCell, "unknown-cell", 0, "terrain: cell value whose cost is unknown")
	f.StringVar(&gf.out, "out", "", "output file; stdout when empty")
	cmd.MarkFlagsMutuallyExclusive("weight", "weight-max")

	return cmd
}

func builtGraph(gf generateFlags, constant, uniform bool) (*core.Graph, error) {
	var cons builder.Constructor
	switch gf.kind {
	case "path":
		cons = builder.Path(gf.n)
	case "cycle":
		cons = builder.Cycle(gf.n)
	case "star":
		cons = builder.Star(gf.n)
	case "complete":
		cons = builder.Complete(gf.n)
	case "grid":
		cons = builder.Grid(gf.rows, gf.cols)
	case "random":
		cons = builder.RandomSparse(gf.n, gf.p)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, gf.kind)
	}

	bopts, err := builderOptions(gf, constant, uniform)
	if err != nil {
		return nil, err
	}
	gopts := []core.GraphOption{core.WithDirected(!gf.undirected)}

	return builder.BuildGraph(gopts, bopts, cons)
}

// builderOptions validates the flag values before handing them to the
// option constructors, which panic on meaningless input.
func builderOptions(gf generateFlags, constant, uniform bool) ([]builder.BuilderOption, error) {
	bopts := []builder.BuilderOption{builder.WithSeed(gf.seed)}

	switch {
	case constant:
		if gf.weight < 0 {
			return nil, fmt.Errorf("--weight %g: %w", gf.weight, builder.ErrConstructFailed)
		}
		bopts = append(bopts, builder.WithConstantWeight(gf.weight))
	case uniform:
		if gf.weightMin < 0 || gf.weightMax < gf.weightMin {
			return nil, fmt.Errorf("--weight-min %g --weight-max %g: %w", gf.weightMin, gf.weightMax, builder.ErrConstructFailed)
		}
		bopts = append(bopts, builder.WithUniformWeight(gf.weightMin, gf.weightMax))
	}

	if gf.unknownRatio < 0 || gf.unknownRatio > 1 {
		return nil, fmt.Errorf("--unknown-ratio %g: %w", gf.unknownRatio, builder.ErrInvalidProbability)
	}
	if gf.unknownRatio > 0 {
		bopts = append(bopts, builder.WithUnknownRatio(gf.unknownRatio))
	}

	switch {
	case gf.ids == "numeric":
	case gf.ids == "symbol":
		bopts = append(bopts, builder.WithSymbolIDs())
	case gf.ids == "excel":
		bopts = append(bopts, builder.WithExcelColumnIDs())
	case strings.HasPrefix(gf.ids, "prefix:"):
		bopts = append(bopts, builder.WithSymbNumb(strings.TrimPrefix(gf.ids, "prefix:")))
	default:
		return nil, fmt.Errorf("--ids %q: %w", gf.ids, ErrUnknownKind)
	}

	return bopts, nil
}

func terrainGraph(gf generateFlags, hasUnknown bool) (*core.Graph, error) {
	if gf.terrain == "" {
		return nil, fmt.Errorf("%w: terrain needs --terrain", ErrUnknownKind)
	}
	values, err := readTerrain(gf.terrain)
	if err != nil {
		return nil, err
	}

	opts := gridgraph.DefaultGridOptions()
	opts.LandThreshold = gf.threshold
	if gf.conn8 {
		opts.Conn = gridgraph.Conn8
	}
	if hasUnknown {
		marker := gf.unknownCell
		opts.UnknownValue = &marker
	}
	gg, err := gridgraph.NewGridGraph(values, opts)
	if err != nil {
		return nil, err
	}

	return gg.ToCoreGraph()
}

// readTerrain parses one grid row per non-blank line.
func readTerrain(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows [][]int
	sc := bufio.NewScanner(f)
	for line := 1; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, s := range fields {
			if row[i], err = strconv.Atoi(s); err != nil {
				return nil, fmt.Errorf("%s:%d: %w", path, line, err)
			}
		}
		rows = append(rows, row)
	}

	return rows, sc.Err()
}
