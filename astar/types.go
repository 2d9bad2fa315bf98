// SPDX-License-Identifier: MIT

package astar

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pathsearch/weight"
)

var (
	// ErrNilStore indicates that a nil store was passed.
	ErrNilStore = errors.New("astar: store is nil")

	// ErrNilHeuristic indicates that no heuristic function was supplied.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Options configures the A* family. Fields mirror the dijkstra package.
type Options struct {
	// Missing is the unknown-edge policy. Default weight.Impassable().
	Missing weight.Missing
	// MaxResults caps MultiEnd results; -1 means unlimited.
	MaxResults int
	// MaxDistance abandons MultiEnd branches whose true distance exceeds it.
	MaxDistance float64
	// MaxWeight is a PathWeight cap on true distance; nil means none. The
	// tighter of MaxDistance and MaxWeight applies.
	MaxWeight *weight.PathWeight

	err error
}

// Option is a functional option for the A* entry points.
type Option func(*Options)

// DefaultOptions returns impassable unknown edges and no MultiEnd bounds.
func DefaultOptions() Options {
	return Options{
		Missing:     weight.Impassable(),
		MaxResults:  -1,
		MaxDistance: math.Inf(1),
	}
}

// WithMissingWeight sets the policy applied to edges of unknown weight.
func WithMissingWeight(m weight.Missing) Option {
	return func(o *Options) { o.Missing = m }
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

// WithMaxDistance bounds MultiEnd by true (not estimated) distance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if math.IsNaN(max) || max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%g)", ErrOptionViolation, max)

			return
		}
		o.MaxDistance = max
	}
}

// WithMaxWeight bounds MultiEnd by a true-distance PathWeight, which can
// admit unknown-edge crossings under weight.Infinity(). max.Crossings must be
// ≥ 0 and max.Sum finite and ≥ 0.
func WithMaxWeight(max weight.PathWeight) Option {
	return func(o *Options) {
		if max.Crossings < 0 || math.IsNaN(max.Sum) || math.IsInf(max.Sum, 0) || max.Sum < 0 {
			o.err = fmt.Errorf("%w: MaxWeight must be non-negative and finite (%v)", ErrOptionViolation, max)

			return
		}
		o.MaxWeight = &max
	}
}

// limit returns the tighter of MaxDistance and MaxWeight; ok is false when
// MultiEnd is unbounded.
func (o Options) limit() (weight.PathWeight, bool) {
	bounded := !math.IsInf(o.MaxDistance, 1)
	ceiling := weight.FromFloat(o.MaxDistance)
	if o.MaxWeight != nil && (!bounded || o.MaxWeight.Less(ceiling)) {
		return *o.MaxWeight, true
	}

	return ceiling, bounded
}
