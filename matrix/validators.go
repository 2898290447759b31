// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for precondition checks used by Dense methods.
//  - Validators return plain sentinel errors; call sites wrap them with the
//    method name and arguments.
//
// Every Dense method runs its validators to completion before it writes to
// storage, which is what keeps failed calls side-effect free.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps a sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateDims checks constructor dimensions (zero is legal).
func validateDims(width, height int) error {
	if width < 0 || height < 0 {
		return ErrInvalidDimensions
	}

	return nil
}

// validateInsertIndex accepts 0 ≤ at ≤ n (n means append).
func validateInsertIndex(at, n int) error {
	if at < 0 || at > n {
		return ErrOutOfRange
	}

	return nil
}

// validateDeleteIndex accepts 0 ≤ at < n.
func validateDeleteIndex(at, n int) error {
	if at < 0 || at >= n {
		return ErrOutOfRange
	}

	return nil
}

// validateLength checks that an inserted line has exactly n values.
func validateLength[T any](vals []T, n int) error {
	if len(vals) != n {
		return ErrSizeMismatch
	}

	return nil
}

// validateRange checks the coordinates of a fill against a rows×cols grid.
// Start coordinates must address an existing cell; end coordinates are
// exclusive and may equal the dimension. end <= start is legal (empty range).
func validateRange(startRow, startCol, endRow, endCol, rows, cols int) error {
	if startRow < 0 || startCol < 0 || endRow < 0 || endCol < 0 {
		return ErrOutOfRange
	}
	if startRow >= rows || endRow > rows {
		return ErrOutOfRange
	}
	if startCol >= cols || endCol > cols {
		return ErrOutOfRange
	}

	return nil
}

// validateStep rejects a line step that does not move on either axis.
func validateStep(dRow, dCol int) error {
	if dRow == 0 && dCol == 0 {
		return ErrInvalidStep
	}

	return nil
}

// axisSteps returns how many positions start, start+d, start+2d, ... stay
// inside [0, end). start is a valid coordinate (>= 0).
//   - d > 0: the walk ends when the position reaches end.
//   - d < 0: the walk ends before the position drops below 0.
//   - d == 0: the axis never ends the walk; -1 stands for "unbounded".
//
// The arithmetic never adds d to a coordinate, so huge deltas cannot wrap.
func axisSteps(start, d, end int) int {
	switch {
	case start >= end:
		return 0
	case d == 0:
		return -1
	case d > 0:
		return (end-start-1)/d + 1
	case d == math.MinInt: // -d overflows; only start itself is reachable
		return 1
	default:
		return start/-d + 1
	}
}

// lineSteps is the number of cells FillLine visits. validateStep guarantees
// at least one axis moves, so the result is never -1.
func lineSteps(startRow, startCol, dRow, dCol, endRow, endCol int) int {
	rs := axisSteps(startRow, dRow, endRow)
	cs := axisSteps(startCol, dCol, endCol)
	switch {
	case rs < 0:
		return cs
	case cs < 0:
		return rs
	case rs < cs:
		return rs
	default:
		return cs
	}
}

// ValidateSameShape ensures a and b have equal dimensions.
// Both arguments must be non-nil.
//
// Complexity: O(1).
func ValidateSameShape[T comparable](a, b Matrix[T]) error {
	if a.Height() != b.Height() {
		return validatorErrorf("ValidateSameShape: Height", ErrDimensionMismatch)
	}
	if a.Width() != b.Width() {
		return validatorErrorf("ValidateSameShape: Width", ErrDimensionMismatch)
	}

	return nil
}
