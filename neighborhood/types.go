// SPDX-License-Identifier: MIT

package neighborhood

import (
	"errors"

	"github.com/katalvlaran/pathsearch/weight"
)

var (
	// ErrStoreNil is returned if a nil store is passed.
	ErrStoreNil = errors.New("neighborhood: store is nil")

	// ErrOptionViolation is returned for negative or NaN bounds.
	ErrOptionViolation = errors.New("neighborhood: invalid option supplied")
)

// Reached is a vertex and the BFS layer it was discovered in.
type Reached[ID comparable] struct {
	ID   ID
	Step int
}

// Distance is a vertex and its minimal distance from the start. Vertices
// reached only across unknown edges under weight.Infinity() keep their
// crossing count and finite sum; they appear only with an unbounded budget.
type Distance[ID comparable] struct {
	ID       ID
	Distance weight.PathWeight
}

// Option configures WithinDistance.
type Option func(*Options)

// Options holds WithinDistance settings.
type Options struct {
	// Missing is the unknown-edge policy. Default weight.Impassable().
	Missing weight.Missing
}

// DefaultOptions returns impassable unknown edges.
func DefaultOptions() Options {
	return Options{Missing: weight.Impassable()}
}

// WithMissingWeight sets the unknown-edge policy.
func WithMissingWeight(m weight.Missing) Option {
	return func(o *Options) { o.Missing = m }
}
