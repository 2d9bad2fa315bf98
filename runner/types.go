// SPDX-License-Identifier: MIT

package runner

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Algorithm names accepted in Query.Algorithm.
const (
	BFS            = "bfs"
	DFS            = "dfs"
	Dijkstra       = "dijkstra"
	AStar          = "astar"
	WithinSteps    = "within-steps"
	AtStep         = "at-step"
	WithinDistance = "within-distance"
)

// ErrInvalidQuery is wrapped by every query validation failure.
var ErrInvalidQuery = errors.New("runner: invalid query")

var validate = validator.New()

// Query describes one search.
//
// Path algorithms take exactly one of To or Where. With Where, MaxResults
// selects the form: 0 runs a computed-end search for the nearest match, a
// positive n collects up to n matches, and -1 collects every match.
//
// Heuristic is a CEL expression over a, b, a_id and b_id (see
// predicate.CompileHeuristic) and is only read by astar. A computed-end A*
// needs Goal to aim the heuristic at.
type Query struct {
	Name        string   `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name" validate:"max=128"`
	Algorithm   string   `json:"algorithm" yaml:"algorithm" mapstructure:"algorithm" validate:"required,oneof=bfs dfs dijkstra astar within-steps at-step within-distance"`
	From        string   `json:"from" yaml:"from" mapstructure:"from" validate:"required"`
	To          string   `json:"to,omitempty" yaml:"to,omitempty" mapstructure:"to"`
	Where       string   `json:"where,omitempty" yaml:"where,omitempty" mapstructure:"where"`
	Heuristic   string   `json:"heuristic,omitempty" yaml:"heuristic,omitempty" mapstructure:"heuristic"`
	Goal        string   `json:"goal,omitempty" yaml:"goal,omitempty" mapstructure:"goal"`
	MaxResults  int      `json:"max_results,omitempty" yaml:"max_results,omitempty" mapstructure:"max_results" validate:"gte=-1"`
	MaxSteps    *int     `json:"max_steps,omitempty" yaml:"max_steps,omitempty" mapstructure:"max_steps" validate:"omitnil,gte=0"`
	MaxDistance *float64 `json:"max_distance,omitempty" yaml:"max_distance,omitempty" mapstructure:"max_distance" validate:"omitnil,gte=0"`
	Missing     string   `json:"missing,omitempty" yaml:"missing,omitempty" mapstructure:"missing"`
}

// Validate checks field tags and the cross-field rules of each algorithm.
func (q Query) Validate() error {
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}

	switch q.Algorithm {
	case BFS, DFS, Dijkstra, AStar:
		if (q.To == "") == (q.Where == "") {
			return fmt.Errorf("%w: %s needs exactly one of to or where", ErrInvalidQuery, q.Algorithm)
		}
		if q.To != "" && q.MaxResults != 0 {
			return fmt.Errorf("%w: max_results needs where", ErrInvalidQuery)
		}
	case WithinSteps, AtStep:
		if q.MaxSteps == nil {
			return fmt.Errorf("%w: %s needs max_steps", ErrInvalidQuery, q.Algorithm)
		}
	case WithinDistance:
		if q.MaxDistance == nil {
			return fmt.Errorf("%w: %s needs max_distance", ErrInvalidQuery, q.Algorithm)
		}
	}

	if q.Heuristic != "" && q.Algorithm != AStar {
		return fmt.Errorf("%w: heuristic is only read by astar", ErrInvalidQuery)
	}
	if q.Goal != "" && (q.Algorithm != AStar || q.Where == "") {
		return fmt.Errorf("%w: goal needs astar with where", ErrInvalidQuery)
	}
	if q.Algorithm == AStar && q.Where != "" && q.Heuristic != "" && q.Goal == "" {
		return fmt.Errorf("%w: heuristic with where needs goal", ErrInvalidQuery)
	}
	if q.MaxSteps != nil && q.Algorithm != BFS && q.Algorithm != WithinSteps && q.Algorithm != AtStep {
		return fmt.Errorf("%w: max_steps is not read by %s", ErrInvalidQuery, q.Algorithm)
	}
	if q.MaxSteps != nil && q.Algorithm == BFS && q.MaxResults == 0 {
		return fmt.Errorf("%w: bfs max_steps needs max_results", ErrInvalidQuery)
	}
	if q.MaxDistance != nil && q.Algorithm != Dijkstra && q.Algorithm != AStar && q.Algorithm != WithinDistance {
		return fmt.Errorf("%w: max_distance is not read by %s", ErrInvalidQuery, q.Algorithm)
	}

	return nil
}

// Path is one returned route, source first.
type Path struct {
	Vertices []string `json:"vertices" yaml:"vertices"`
	// Cost is the edge count for bfs and dfs, the PathWeight for the rest.
	Cost string `json:"cost" yaml:"cost"`
}

// Hit is one vertex returned by a neighbourhood query.
type Hit struct {
	ID       string `json:"id" yaml:"id"`
	Step     int    `json:"step,omitempty" yaml:"step,omitempty"`
	Distance string `json:"distance,omitempty" yaml:"distance,omitempty"`
}

// Result is the outcome of one Query. Exactly one of Paths and Hits is
// filled on success.
type Result struct {
	Query    Query         `json:"query" yaml:"query"`
	Paths    []Path        `json:"paths,omitempty" yaml:"paths,omitempty"`
	Hits     []Hit         `json:"hits,omitempty" yaml:"hits,omitempty"`
	Err      error         `json:"-" yaml:"-"`
	Error    string        `json:"error,omitempty" yaml:"error,omitempty"`
	Outcome  string        `json:"outcome" yaml:"outcome"`
	Duration time.Duration `json:"duration" yaml:"duration"`
	Lookups  int64         `json:"lookups" yaml:"lookups"`
}
