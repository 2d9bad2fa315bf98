// SPDX-License-Identifier: MIT

package runner

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pathsearch/observe"
	"github.com/katalvlaran/pathsearch/weight"
)

// DefaultWorkers bounds concurrent queries when WithWorkers is not given.
const DefaultWorkers = 4

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers sets the number of queries run at once. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("runner: WithWorkers(%d) must be ≥ 1", n))
	}

	return func(r *Runner) { r.workers = n }
}

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics records every query on m. A nil m records nothing.
func WithMetrics(m *observe.Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithMissing sets the unknown-edge policy for queries that leave Missing
// empty. The default is weight.Impassable().
func WithMissing(m weight.Missing) Option {
	return func(r *Runner) { r.missing = m }
}
