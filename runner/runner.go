// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/observe"
	"github.com/katalvlaran/pathsearch/store"
	"github.com/katalvlaran/pathsearch/weight"
)

// Runner executes queries against one store. It is safe for concurrent use
// as long as the store is.
type Runner struct {
	store   store.VertexStore[string, core.Vertex]
	workers int
	logger  *slog.Logger
	metrics *observe.Metrics
	missing weight.Missing
}

// New returns a Runner over s.
func New(s store.VertexStore[string, core.Vertex], opts ...Option) *Runner {
	r := &Runner{
		store:   s,
		workers: DefaultWorkers,
		logger:  slog.Default(),
		missing: weight.Impassable(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run executes queries with at most the configured number in flight and
// returns one Result per query, in input order. Queries that had not started
// when ctx was cancelled carry ctx.Err(); the returned error is ctx.Err().
func (r *Runner) Run(ctx context.Context, queries []Query) ([]Result, error) {
	results := make([]Result, len(queries))
	started := make([]bool, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i := range queries {
		if gctx.Err() != nil {
			break
		}
		started[i] = true
		i := i
		g.Go(func() error {
			results[i] = r.Execute(gctx, queries[i])

			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		for i, ok := range started {
			if !ok {
				results[i] = Result{Query: queries[i], Err: err, Error: err.Error(), Outcome: observe.OutcomeError}
			}
		}
		r.logger.Warn("batch cancelled", "queries", len(queries), "error", err)

		return results, err
	}

	return results, nil
}

// Execute runs a single query synchronously.
func (r *Runner) Execute(ctx context.Context, q Query) Result {
	res := Result{Query: q}
	if err := ctx.Err(); err != nil {
		return r.finish(res, err)
	}

	_, span := observe.StartSpan(ctx, q.Algorithm, q.From)
	counted := observe.Count[string, core.Vertex](r.store)
	begin := time.Now()

	err := q.Validate()
	if err == nil {
		err = r.dispatch(counted, q, &res)
	}

	res.Duration = time.Since(begin)
	res.Lookups = counted.Lookups()
	search := observe.Search{
		Algorithm: q.Algorithm,
		Err:       err,
		Duration:  res.Duration,
		Lookups:   res.Lookups,
		Lengths:   lengths(res),
	}
	observe.EndSpan(span, search)
	r.metrics.Observe(search)

	return r.finish(res, err)
}

func (r *Runner) finish(res Result, err error) Result {
	res.Err = err
	res.Outcome = observe.Outcome(err)
	if err != nil {
		res.Error = err.Error()
	}
	r.logger.Debug("query finished",
		"name", res.Query.Name,
		"algorithm", res.Query.Algorithm,
		"from", res.Query.From,
		"outcome", res.Outcome,
		"paths", len(res.Paths),
		"hits", len(res.Hits),
		"lookups", res.Lookups,
		"duration", res.Duration,
	)

	return res
}

func lengths(res Result) []int {
	if res.Hits != nil {
		return []int{len(res.Hits)}
	}
	out := make([]int, len(res.Paths))
	for i, p := range res.Paths {
		out[i] = len(p.Vertices)
	}

	return out
}
