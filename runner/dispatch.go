// SPDX-License-Identifier: MIT

package runner

import (
	"strconv"

	"github.com/katalvlaran/pathsearch/astar"
	"github.com/katalvlaran/pathsearch/bfs"
	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/dfs"
	"github.com/katalvlaran/pathsearch/dijkstra"
	"github.com/katalvlaran/pathsearch/neighborhood"
	"github.com/katalvlaran/pathsearch/path"
	"github.com/katalvlaran/pathsearch/predicate"
	"github.com/katalvlaran/pathsearch/store"
	"github.com/katalvlaran/pathsearch/weight"
)

type vstore = store.VertexStore[string, core.Vertex]

// dispatch runs a validated query and fills res.Paths or res.Hits.
func (r *Runner) dispatch(s vstore, q Query, res *Result) error {
	missing := r.missing
	if q.Missing != "" {
		m, err := weight.ParseMissing(q.Missing)
		if err != nil {
			return err
		}
		missing = m
	}

	var where predicate.Predicate
	if q.Where != "" {
		p, err := predicate.Compile(q.Where, predicate.WithLogger(r.logger))
		if err != nil {
			return err
		}
		where = p
	}

	switch q.Algorithm {
	case BFS:
		return r.runBFS(s, q, where, res)
	case DFS:
		return r.runDFS(s, q, where, res)
	case Dijkstra:
		return r.runDijkstra(s, q, where, missing, res)
	case AStar:
		return r.runAStar(s, q, where, missing, res)
	default:
		return r.runNeighborhood(s, q, missing, res)
	}
}

func (r *Runner) runBFS(s vstore, q Query, where predicate.Predicate, res *Result) error {
	if q.To != "" {
		p, err := bfs.Search[string, core.Vertex](s, q.From, q.To)
		if err != nil {
			return err
		}
		res.Paths = unweighted(p)

		return nil
	}
	if q.MaxResults == 0 {
		p, err := bfs.ComputedEnd[string, core.Vertex](s, q.From, where)
		if err != nil {
			return err
		}
		res.Paths = unweighted(p)

		return nil
	}

	var opts []bfs.Option
	if q.MaxResults > 0 {
		opts = append(opts, bfs.WithMaxResults(q.MaxResults))
	}
	if q.MaxSteps != nil {
		opts = append(opts, bfs.WithMaxSteps(*q.MaxSteps))
	}
	ps, err := bfs.MultiEnd[string, core.Vertex](s, q.From, where, opts...)
	if err != nil {
		return err
	}
	res.Paths = unweighted(ps...)

	return nil
}

func (r *Runner) runDFS(s vstore, q Query, where predicate.Predicate, res *Result) error {
	if q.To != "" {
		p, err := dfs.Search[string, core.Vertex](s, q.From, q.To)
		if err != nil {
			return err
		}
		res.Paths = unweighted(p)

		return nil
	}
	if q.MaxResults == 0 {
		p, err := dfs.ComputedEnd[string, core.Vertex](s, q.From, where)
		if err != nil {
			return err
		}
		res.Paths = unweighted(p)

		return nil
	}

	var opts []dfs.Option
	if q.MaxResults > 0 {
		opts = append(opts, dfs.WithMaxResults(q.MaxResults))
	}
	ps, err := dfs.MultiEnd[string, core.Vertex](s, q.From, where, opts...)
	if err != nil {
		return err
	}
	res.Paths = unweighted(ps...)

	return nil
}

func (r *Runner) runDijkstra(s vstore, q Query, where predicate.Predicate, missing weight.Missing, res *Result) error {
	opts := []dijkstra.Option{dijkstra.WithMissingWeight(missing)}
	if q.MaxDistance != nil {
		opts = append(opts, dijkstra.WithMaxDistance(*q.MaxDistance))
	}

	if q.To != "" {
		p, err := dijkstra.Search[string, core.Vertex](s, q.From, q.To, opts...)
		if err != nil {
			return err
		}
		res.Paths = weighted(p)

		return nil
	}
	if q.MaxResults == 0 {
		p, err := dijkstra.ComputedEnd[string, core.Vertex](s, q.From, where, opts...)
		if err != nil {
			return err
		}
		res.Paths = weighted(p)

		return nil
	}
	if q.MaxResults > 0 {
		opts = append(opts, dijkstra.WithMaxResults(q.MaxResults))
	}
	ps, err := dijkstra.MultiEnd[string, core.Vertex](s, q.From, where, opts...)
	if err != nil {
		return err
	}
	res.Paths = weighted(ps...)

	return nil
}

func (r *Runner) runAStar(s vstore, q Query, where predicate.Predicate, missing weight.Missing, res *Result) error {
	h := predicate.Heuristic(func(_, _ core.Vertex) weight.Heuristic { return weight.ZeroHeuristic() })
	if q.Heuristic != "" {
		compiled, err := predicate.CompileHeuristic(q.Heuristic, predicate.WithLogger(r.logger))
		if err != nil {
			return err
		}
		h = compiled
	}

	opts := []astar.Option{astar.WithMissingWeight(missing)}
	if q.MaxDistance != nil {
		opts = append(opts, astar.WithMaxDistance(*q.MaxDistance))
	}

	if q.To != "" {
		p, err := astar.Search[string, core.Vertex](s, q.From, q.To, h, opts...)
		if err != nil {
			return err
		}
		res.Paths = weighted(p)

		return nil
	}

	toward := func(core.Vertex) weight.Heuristic { return weight.ZeroHeuristic() }
	if q.Goal != "" {
		goal, err := s.Lookup(q.Goal)
		if err != nil {
			return err
		}
		toward = h.Towards(goal.Data())
	}

	if q.MaxResults == 0 {
		p, err := astar.ComputedEnd[string, core.Vertex](s, q.From, toward, where, opts...)
		if err != nil {
			return err
		}
		res.Paths = weighted(p)

		return nil
	}
	if q.MaxResults > 0 {
		opts = append(opts, astar.WithMaxResults(q.MaxResults))
	}
	ps, err := astar.MultiEnd[string, core.Vertex](s, q.From, toward, where, opts...)
	if err != nil {
		return err
	}
	res.Paths = weighted(ps...)

	return nil
}

func (r *Runner) runNeighborhood(s vstore, q Query, missing weight.Missing, res *Result) error {
	switch q.Algorithm {
	case WithinSteps:
		reached, err := neighborhood.WithinSteps[string, core.Vertex](s, q.From, *q.MaxSteps)
		if err != nil {
			return err
		}
		res.Hits = make([]Hit, len(reached))
		for i, v := range reached {
			res.Hits[i] = Hit{ID: v.ID, Step: v.Step}
		}
	case AtStep:
		ids, err := neighborhood.AtStep[string, core.Vertex](s, q.From, *q.MaxSteps)
		if err != nil {
			return err
		}
		res.Hits = make([]Hit, len(ids))
		for i, id := range ids {
			res.Hits[i] = Hit{ID: id, Step: *q.MaxSteps}
		}
	case WithinDistance:
		ds, err := neighborhood.WithinDistance[string, core.Vertex](s, q.From, *q.MaxDistance, neighborhood.WithMissingWeight(missing))
		if err != nil {
			return err
		}
		res.Hits = make([]Hit, len(ds))
		for i, d := range ds {
			res.Hits[i] = Hit{ID: d.ID, Distance: d.Distance.String()}
		}
	}

	return nil
}

func unweighted(ps ...path.GraphPath[string, path.Unit]) []Path {
	out := make([]Path, len(ps))
	for i, p := range ps {
		out[i] = Path{Vertices: p.Forward(), Cost: strconv.Itoa(p.Len() - 1)}
	}

	return out
}

func weighted(ps ...path.GraphPath[string, weight.PathWeight]) []Path {
	out := make([]Path, len(ps))
	for i, p := range ps {
		out[i] = Path{Vertices: p.Forward(), Cost: p.Cost().String()}
	}

	return out
}
