// SPDX-License-Identifier: MIT

package observe

import (
	"errors"

	"github.com/katalvlaran/pathsearch/path"
	"github.com/katalvlaran/pathsearch/store"
	"github.com/katalvlaran/pathsearch/weight"
)

// Outcome labels used on metrics and spans.
const (
	OutcomeOK             = "ok"
	OutcomeNoPath         = "no_path"
	OutcomeInvalidEntity  = "invalid_entity"
	OutcomeNegativeWeight = "negative_weight"
	OutcomeInvalidPath    = "invalid_path"
	OutcomeError          = "error"
)

// Outcome classifies a search error into a low-cardinality label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, path.ErrNoPath):
		return OutcomeNoPath
	case errors.Is(err, store.ErrInvalidEntity):
		return OutcomeInvalidEntity
	case errors.Is(err, weight.ErrNegativeWeight):
		return OutcomeNegativeWeight
	case errors.Is(err, path.ErrInvalidPath):
		return OutcomeInvalidPath
	default:
		return OutcomeError
	}
}
