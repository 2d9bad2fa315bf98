// SPDX-License-Identifier: MIT
// Package: pathsearch/builder
//
// errors.go — sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context using %w in the
// form "<Method>: <detail>: <sentinel>".
//
// Priority when several validations fail:
//   • ErrTooFewVertices     — size/domain checks first (n, rows, cols).
//   • ErrInvalidProbability — then probability ranges.
//   • ErrNeedRandSource     — then RNG presence for stochastic choices.
//   • ErrConstructFailed    — core rejected an insertion.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic choice requires a non-nil
// *rand.Rand (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the graph rejected a vertex or edge, or
// that BuildGraph received a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
