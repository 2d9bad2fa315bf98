// SPDX-License-Identifier: MIT

// Package dfs defines options and errors for depth-first search over a
// store.VertexStore.
package dfs

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreNil is returned when a nil store is passed to a search.
	ErrStoreNil = errors.New("dfs: store is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures MultiEnd.
type Option func(*DFSOptions)

// DFSOptions holds the bounds of a multi-endpoint depth-first search.
type DFSOptions struct {
	// MaxResults, if positive, stops the search after that many matches.
	// Default is -1 (no limit).
	MaxResults int

	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - No result limit (MaxResults = -1)
func DefaultOptions() DFSOptions {
	return DFSOptions{MaxResults: -1}
}

// WithMaxResults returns an Option that stops MultiEnd after n matches.
// n must be at least 1.
func WithMaxResults(n int) Option {
	return func(o *DFSOptions) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxResults must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxResults = n
	}
}
