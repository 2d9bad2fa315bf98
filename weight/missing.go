// SPDX-License-Identifier: MIT

package weight

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MissingKind enumerates the policies for edges whose weight is unknown.
type MissingKind int

const (
	// KindImpassable skips unknown-weight edges entirely.
	KindImpassable MissingKind = iota
	// KindInfinity takes the edge but counts it as one infinite crossing.
	KindInfinity
	// KindValue substitutes a caller-chosen finite weight.
	KindValue
)

// Missing decides how a weighted search treats an edge with unknown weight.
// The zero value is Impassable.
type Missing struct {
	kind  MissingKind
	value float64
}

// Impassable skips unknown-weight edges.
func Impassable() Missing { return Missing{kind: KindImpassable} }

// Infinity traverses unknown-weight edges as infinite crossings, so they are
// only used when no all-finite alternative exists.
func Infinity() Missing { return Missing{kind: KindInfinity} }

// Value treats every unknown-weight edge as weighing x.
// A negative x is reported as ErrNegativeWeight and a NaN or infinite x as
// ErrBadPolicy the first time it is applied.
func Value(x float64) Missing { return Missing{kind: KindValue, value: x} }

// Kind returns the policy kind.
func (m Missing) Kind() MissingKind { return m.kind }

// Extend returns pw extended across an edge of weight e.
//
//   - known e < 0           → ErrNegativeWeight
//   - known e ≥ 0           → pw + e
//   - unknown, Impassable   → ok == false, the edge must be skipped
//   - unknown, Infinity     → pw with one more crossing
//   - unknown, Value(x)     → pw + x (ErrBadPolicy if x is not finite,
//     ErrNegativeWeight if x < 0)
func (m Missing) Extend(pw PathWeight, e Edge) (PathWeight, bool, error) {
	if x, known := e.Get(); known {
		if x < 0 {
			return pw, false, fmt.Errorf("%w: %g", ErrNegativeWeight, x)
		}

		return pw.Add(x), true, nil
	}

	switch m.kind {
	case KindInfinity:
		return pw.Cross(), true, nil
	case KindValue:
		if math.IsNaN(m.value) || math.IsInf(m.value, 0) {
			return pw, false, fmt.Errorf("%w: substitute value %g is not finite", ErrBadPolicy, m.value)
		}
		if m.value < 0 {
			return pw, false, fmt.Errorf("%w: substitute value %g", ErrNegativeWeight, m.value)
		}

		return pw.Add(m.value), true, nil
	default:
		return pw, false, nil
	}
}

// String renders the policy in the form accepted by ParseMissing.
func (m Missing) String() string {
	switch m.kind {
	case KindInfinity:
		return "infinity"
	case KindValue:
		return "value:" + strconv.FormatFloat(m.value, 'g', -1, 64)
	default:
		return "impassable"
	}
}

// ParseMissing parses "impassable", "infinity" or "value:<x>".
// The empty string yields Impassable. x must be finite.
func ParseMissing(s string) (Missing, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case s == "" || s == "impassable":
		return Impassable(), nil
	case s == "infinity" || s == "inf":
		return Infinity(), nil
	case strings.HasPrefix(s, "value:"):
		x, err := strconv.ParseFloat(strings.TrimPrefix(s, "value:"), 64)
		if err != nil {
			return Missing{}, fmt.Errorf("%w: %q: %v", ErrBadPolicy, s, err)
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Missing{}, fmt.Errorf("%w: %q: substitute must be finite", ErrBadPolicy, s)
		}

		return Value(x), nil
	default:
		return Missing{}, fmt.Errorf("%w: %q", ErrBadPolicy, s)
	}
}
