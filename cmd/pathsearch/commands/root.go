// SPDX-License-Identifier: MIT

// Package commands holds the pathsearch cobra command tree.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/internal/config"
	"github.com/katalvlaran/pathsearch/loader"
	"github.com/katalvlaran/pathsearch/observe"
	"github.com/katalvlaran/pathsearch/runner"
)

// app is the state shared by every subcommand once the root pre-run has
// resolved the configuration.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	logger  *slog.Logger
	reg     *prometheus.Registry
	metrics *observe.Metrics
}

// NewRootCmd builds the command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:          "pathsearch",
		Short:        "Path and neighbourhood search over graph files",
		Long:         "pathsearch loads a graph (YAML or adjacency text) and runs BFS, DFS, Dijkstra, A* or neighbourhood queries on it.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.flushMetrics()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (YAML, TOML or JSON)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")
	pf.Int("workers", runner.DefaultWorkers, "queries run at once")
	pf.String("missing", "impassable", "unknown edge policy: impassable, infinity or value:<x>")
	pf.String("metrics-file", "", "write Prometheus metrics to this file after the run")

	for key, flag := range map[string]string{
		"log.level":    "log-level",
		"log.format":   "log-format",
		"workers":      "workers",
		"missing":      "missing",
		"metrics.file": "metrics-file",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(
		newSearchCmd(a),
		newReachCmd(a),
		newBatchCmd(a),
		newGenerateCmd(a),
		newOrderCmd(a),
	)

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	if cfg.Metrics.File != "" {
		cfg.Metrics.Enabled = true
	}
	logger, err := observe.NewLogger(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	if cfg.Metrics.Enabled {
		a.reg = prometheus.NewRegistry()
		a.metrics = observe.NewMetrics(a.reg)
	}
	logger.Debug("configuration loaded",
		"config", a.v.ConfigFileUsed(),
		"workers", cfg.Workers,
		"missing", cfg.Missing,
		"metrics", cfg.Metrics.Enabled,
	)

	return nil
}

func (a *app) flushMetrics() error {
	if a.reg == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.cfg.Metrics.File, a.reg); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}
	a.logger.Debug("metrics written", "file", a.cfg.Metrics.File)

	return nil
}

func (a *app) loadGraph(file string) (*core.Graph, error) {
	g, err := loader.Load(file)
	if err != nil {
		return nil, err
	}
	a.logger.Info("graph loaded", "file", file, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	return g, nil
}

func (a *app) runner(g *core.Graph) *runner.Runner {
	return runner.New(g,
		runner.WithWorkers(a.cfg.Workers),
		runner.WithLogger(a.logger),
		runner.WithMetrics(a.metrics),
		runner.WithMissing(a.cfg.MissingPolicy()),
	)
}
