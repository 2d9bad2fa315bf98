// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pathsearch/weight"
)

// Sentinel errors returned by the Dijkstra implementation. Negative weights
// surface as weight.ErrNegativeWeight, unknown ids as store.ErrInvalidEntity.
var (
	// ErrNilStore indicates that a nil store was passed.
	ErrNilStore = errors.New("dijkstra: store is nil")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Options configures the behavior of the Dijkstra family.
//
// Missing     – how edges without a known weight are treated.
//
//	Default is weight.Impassable() (unknown edges are skipped).
//
// MaxResults  – MultiEnd only: stop after this many paths. -1 = no cap.
// MaxDistance – MultiEnd only: candidates costing more are abandoned.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// MaxWeight   – MultiEnd only: a PathWeight cap that may admit unknown-edge
//
//	crossings. nil means no cap. With MaxDistance, the tighter one applies.
type Options struct {
	Missing     weight.Missing
	MaxResults  int
	MaxDistance float64
	MaxWeight   *weight.PathWeight

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Missing:     weight.Impassable().
//   - MaxResults:  -1 (no cap).
//   - MaxDistance: +Inf (no cap).
func DefaultOptions() Options {
	return Options{
		Missing:     weight.Impassable(),
		MaxResults:  -1,
		MaxDistance: math.Inf(1),
	}
}

// WithMissingWeight sets the policy applied to edges of unknown weight.
func WithMissingWeight(m weight.Missing) Option {
	return func(o *Options) {
		o.Missing = m
	}
}

// WithMaxResults caps the number of paths MultiEnd returns. n must be ≥ 1.
func WithMaxResults(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxResults must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxResults = n
	}
}

// WithMaxDistance abandons MultiEnd branches whose cumulative finite weight
// exceeds max. Any route crossing an unknown edge exceeds every finite cap.
// max must be non-negative; NaN is rejected.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if math.IsNaN(max) || max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%g)", ErrOptionViolation, max)

			return
		}
		o.MaxDistance = max
	}
}

// WithMaxWeight abandons MultiEnd branches heavier than max under PathWeight
// ordering, so a budget such as {Crossings: 1, Sum: 10} admits routes over
// one unknown edge. max.Crossings must be ≥ 0 and max.Sum finite and ≥ 0.
func WithMaxWeight(max weight.PathWeight) Option {
	return func(o *Options) {
		if max.Crossings < 0 || math.IsNaN(max.Sum) || math.IsInf(max.Sum, 0) || max.Sum < 0 {
			o.err = fmt.Errorf("%w: MaxWeight must be non-negative and finite (%v)", ErrOptionViolation, max)

			return
		}
		o.MaxWeight = &max
	}
}

// limit combines MaxDistance and MaxWeight into one PathWeight cap; ok is
// false when neither bounds the search.
func (o Options) limit() (weight.PathWeight, bool) {
	bounded := !math.IsInf(o.MaxDistance, 1)
	ceiling := weight.FromFloat(o.MaxDistance)
	if o.MaxWeight != nil && (!bounded || o.MaxWeight.Less(ceiling)) {
		return *o.MaxWeight, true
	}

	return ceiling, bounded
}

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}
