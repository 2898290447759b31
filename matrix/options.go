// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper that resolves a final Options value,
//   - RejectNaNInf, a ready-made value policy for float64 grids.
//
// Notes:
//   - The default value is the zero value of T unless WithDefault is given.
//   - The value policy is a per-instance flag preserved by Clone; a nil
//     policy accepts every value.
package matrix

import (
	"fmt"
	"math"
)

const panicNilPolicy = "matrix: WithValuePolicy: policy must not be nil"

// Option mutates internal options. Options are applied in order; later wins.
type Option[T comparable] func(*Options[T])

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public constructors accept ...Option.
type Options[T comparable] struct {
	def    T             // value for new cells
	policy func(T) error // nil ⇒ accept all
}

// WithDefault sets the value used to fill new cells.
//
// Complexity: O(1).
func WithDefault[T comparable](v T) Option[T] {
	return func(o *Options[T]) { o.def = v }
}

// WithValuePolicy installs a guard consulted before any value is stored:
// Set, FillRegion, FillLine, InsertRowValues, InsertColValues, Apply and the
// default value itself at construction. A non-nil error from policy aborts
// the operation with ErrRejectedValue and leaves the matrix unchanged.
//
// Panics when policy is nil (programmer error).
func WithValuePolicy[T comparable](policy func(T) error) Option[T] {
	if policy == nil {
		panic(panicNilPolicy)
	}

	return func(o *Options[T]) { o.policy = policy }
}

// RejectNaNInf is a value policy for float64 grids refusing NaN and ±Inf.
//
//	m, err := matrix.New(3, 3, matrix.WithValuePolicy(matrix.RejectNaNInf))
func RejectNaNInf(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("non-finite value %v", v)
	}

	return nil
}

// gatherOptions resolves opts over zero-value defaults.
func gatherOptions[T comparable](opts []Option[T]) Options[T] {
	var o Options[T]
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
