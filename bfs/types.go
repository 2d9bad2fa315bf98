// SPDX-License-Identifier: MIT

// Package bfs provides tunable options and error definitions
// for breadth-first search over a store.VertexStore.
package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution. Missing vertices, exhausted frontiers
// and broken predecessor chains are reported with store.ErrInvalidEntity,
// path.ErrNoPath and path.ErrInvalidPath respectively.
var (
	// ErrStoreNil is returned if a nil store is passed.
	ErrStoreNil = errors.New("bfs: store is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures MultiEnd via functional arguments.
// If an Option is invalid (e.g. negative step bound), it will be recorded
// internally and surfaced as ErrOptionViolation when MultiEnd is invoked.
type Option func(*Options)

// Options bounds a multi-endpoint search.
type Options struct {
	// MaxResults, if > 0, stops the search once that many paths are collected.
	// -1 means unlimited.
	MaxResults int

	// MaxSteps, if >= 0, limits collection to vertices at most that many
	// edges from the start. 0 inspects only the start. -1 means unlimited.
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no result or step bound.
func DefaultOptions() Options {
	return Options{
		MaxResults: -1,
		MaxSteps:   -1,
		err:        nil,
	}
}

// WithMaxResults caps the number of returned paths.
//
//	n >= 1: at most n paths
//	n < 1:  invalid option → ErrOptionViolation
func WithMaxResults(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxResults must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxResults = n
	}
}

// WithMaxSteps limits the BFS layers that are inspected.
//
//	k >= 0: layers 0..k
//	k < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, k)

			return
		}
		o.MaxSteps = k
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
