// SPDX-License-Identifier: MIT

package predicate

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/ext"

	"github.com/katalvlaran/pathsearch/core"
	"github.com/katalvlaran/pathsearch/weight"
)

// ErrCompile is returned for expressions that do not parse, do not type-check
// or have the wrong result type.
var ErrCompile = errors.New("predicate: cannot compile expression")

// Predicate reports whether a vertex is a search target.
type Predicate func(core.Vertex) bool

// Heuristic estimates the remaining cost from v to goal.
type Heuristic func(v, goal core.Vertex) weight.Heuristic

// Towards binds goal, yielding the single-argument form astar.ComputedEnd
// and astar.MultiEnd take.
func (h Heuristic) Towards(goal core.Vertex) func(core.Vertex) weight.Heuristic {
	return func(v core.Vertex) weight.Heuristic { return h(v, goal) }
}

// Option configures compilation.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger routes evaluation failures to l instead of slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func resolve(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

var attrMap = cel.MapType(cel.StringType, cel.DynType)

func compile(expr string, want []*cel.Type, vars ...cel.EnvOption) (cel.Program, error) {
	env, err := cel.NewEnv(append(vars,
		cel.CrossTypeNumericComparisons(true),
		ext.Strings(),
		ext.Math(),
	)...)
	if err != nil {
		return nil, fmt.Errorf("predicate: environment: %w", err)
	}
	ast, iss := env.Compile(expr)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrCompile, expr, iss.Err())
	}
	ok := false
	for _, t := range want {
		if ast.OutputType().IsExactType(t) {
			ok = true
			break
		}
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q yields %v", ErrCompile, expr, ast.OutputType())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrCompile, expr, err)
	}

	return prg, nil
}

// Compile turns a boolean CEL expression over v and id into a Predicate.
func Compile(expr string, opts ...Option) (Predicate, error) {
	o := resolve(opts)
	prg, err := compile(expr, []*cel.Type{cel.BoolType, cel.DynType},
		cel.Variable("v", attrMap),
		cel.Variable("id", cel.StringType),
	)
	if err != nil {
		return nil, err
	}

	return func(vx core.Vertex) bool {
		out, _, err := prg.Eval(map[string]any{
			"v":  map[string]any(vx.Attrs),
			"id": vx.ID,
		})
		if err != nil {
			o.logger.Debug("predicate evaluation failed", "expr", expr, "vertex", vx.ID, "error", err)
			return false
		}
		b, ok := out.Value().(bool)
		if !ok {
			o.logger.Debug("predicate result not bool", "expr", expr, "vertex", vx.ID, "type", out.Type())
		}

		return ok && b
	}, nil
}

// CompileHeuristic turns a numeric CEL expression over a, b, a_id and b_id
// into a Heuristic. Negative or non-finite results mean "unreachable".
func CompileHeuristic(expr string, opts ...Option) (Heuristic, error) {
	o := resolve(opts)
	prg, err := compile(expr, []*cel.Type{cel.DoubleType, cel.IntType, cel.UintType, cel.DynType},
		cel.Variable("a", attrMap),
		cel.Variable("b", attrMap),
		cel.Variable("a_id", cel.StringType),
		cel.Variable("b_id", cel.StringType),
	)
	if err != nil {
		return nil, err
	}

	return func(v, goal core.Vertex) weight.Heuristic {
		out, _, err := prg.Eval(map[string]any{
			"a":    map[string]any(v.Attrs),
			"b":    map[string]any(goal.Attrs),
			"a_id": v.ID,
			"b_id": goal.ID,
		})
		if err != nil {
			o.logger.Debug("heuristic evaluation failed", "expr", expr, "vertex", v.ID, "error", err)
			return weight.InfiniteHeuristic()
		}
		switch x := out.Value().(type) {
		case float64:
			return weight.Estimate(x)
		case int64:
			return weight.Estimate(float64(x))
		case uint64:
			return weight.Estimate(float64(x))
		}
		o.logger.Debug("heuristic result not numeric", "expr", expr, "vertex", v.ID, "type", out.Type())

		return weight.InfiniteHeuristic()
	}, nil
}
