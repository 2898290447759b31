// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every public method returns one of these sentinels, usually wrapped with
// the method name and arguments. Tests and callers match them with errors.Is.
// No method panics on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: " so wrapped chains stay greppable.

var (
	// ErrInvalidDimensions is returned when a requested width or height is negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row/column index or a range bound lies
	// outside the current grid.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrSizeMismatch indicates that a row or column passed to an insert has a
	// length different from the orthogonal dimension.
	ErrSizeMismatch = errors.New("matrix: values length does not match dimension")

	// ErrNonRectangular indicates rows of differing lengths in NewFromRows.
	ErrNonRectangular = errors.New("matrix: all rows must have the same length")

	// ErrInvalidStep indicates FillLine deltas that are both zero.
	ErrInvalidStep = errors.New("matrix: line step must not be zero on both axes")

	// ErrRejectedValue indicates a value refused by the configured value policy.
	ErrRejectedValue = errors.New("matrix: value rejected by policy")

	// ErrDimensionMismatch indicates two matrices of different shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// errors.Is(err, ErrIndexOutOfBounds) remains true for every range failure.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
