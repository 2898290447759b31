// SPDX-License-Identifier: MIT

// Package matrix: public interface shared by every grid implementation.
// Dense is the only implementation in this package; the interface lets
// callers (and Equal/Hash) accept any grid without naming the concrete type.
package matrix

// Matrix is a mutable two-dimensional grid of T values.
// Each method enforces strict bounds and returns errors instead of panicking.
//
// Complexity notes: accessors are O(1); structural edits and Clone are O(r*c).
type Matrix[T comparable] interface {
	// Height returns the number of rows.
	Height() int

	// Width returns the number of columns.
	Width() int

	// Default returns the value used to fill new cells.
	Default() T

	// At retrieves the element at (row, col).
	// Returns ErrOutOfRange if row<0, row>=Height(), col<0 or col>=Width().
	At(row, col int) (T, error)

	// Set assigns v at (row, col) under the same bounds contract as At.
	Set(row, col int, v T) error

	// InsertRow inserts a row of default values before index at (0..Height()).
	InsertRow(at int) error

	// InsertRowValues inserts vals as a new row before index at.
	// len(vals) must equal Width().
	InsertRowValues(at int, vals []T) error

	// InsertCol inserts a column of default values before index at (0..Width()).
	InsertCol(at int) error

	// InsertColValues inserts vals as a new column before index at.
	// len(vals) must equal Height().
	InsertColValues(at int, vals []T) error

	// DeleteRow removes row at (0..Height()-1).
	DeleteRow(at int) error

	// DeleteCol removes column at (0..Width()-1).
	DeleteCol(at int) error

	// FillRegion sets every cell in [startRow,endRow)×[startCol,endCol) to v.
	FillRegion(startRow, startCol, endRow, endCol int, v T) error

	// FillLine walks from (startRow,startCol) by (dRow,dCol) and sets each
	// visited cell to v until a coordinate reaches endRow or endCol or
	// drops below 0.
	FillLine(startRow, startCol, dRow, dCol, endRow, endCol int, v T) error

	// Clone returns an independent copy with the same shape and default.
	// Element values are copied shallowly.
	Clone() Matrix[T]
}

// Cell addresses a single position in a grid, as listed by Dense.LineCells.
type Cell struct {
	Row, Col int // zero-based coordinates
}
