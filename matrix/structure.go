// SPDX-License-Identifier: MIT

// Package matrix - structural edits: insert/delete one row or column.
//
// Each edit runs in two phases:
//   - validate: index range, then line length, then value policy;
//   - rebuild: splice (rows) or re-layout (columns) the flat buffer, then
//     update the dimension.
//
// Nothing is written before every check has passed.
//
// Row edits splice contiguous runs of the row-major buffer. Column edits
// touch every row, so they lay out a fresh buffer of the new width.

package matrix

import (
	"fmt"

	"golang.org/x/exp/slices"
)

const (
	ctxInsertRow = "InsertRow"
	ctxInsertCol = "InsertCol"
	ctxDeleteRow = "DeleteRow"
	ctxDeleteCol = "DeleteCol"
)

// editErrorf wraps a sentinel with the structural edit name and its index.
func editErrorf(method string, at int, err error) error {
	return fmt.Errorf("Dense.%s(%d): %w", method, at, err)
}

// InsertRow inserts a row of default values so that it becomes row at.
// Rows at and after at shift down by one. at == Height() appends.
//
// Errors: ErrOutOfRange unless 0 ≤ at ≤ Height().
//
// Complexity: Time O(r*c), Space O(c) extra.
func (m *Dense[T]) InsertRow(at int) error {
	if err := validateInsertIndex(at, m.r); err != nil {
		return editErrorf(ctxInsertRow, at, err)
	}
	m.spliceRow(at, filled(m.c, m.def))

	return nil
}

// InsertRowValues inserts a copy of vals as row at.
//
// Errors:
//   - ErrOutOfRange unless 0 ≤ at ≤ Height().
//   - ErrSizeMismatch unless len(vals) == Width().
//   - ErrRejectedValue when the policy refuses any value.
//
// Complexity: Time O(r*c).
func (m *Dense[T]) InsertRowValues(at int, vals []T) error {
	if err := validateInsertIndex(at, m.r); err != nil {
		return editErrorf(ctxInsertRow, at, err)
	}
	if err := validateLength(vals, m.c); err != nil {
		return editErrorf(ctxInsertRow, at, fmt.Errorf("got %d values for width %d: %w", len(vals), m.c, err))
	}
	if err := m.checkValues(vals); err != nil {
		return editErrorf(ctxInsertRow, at, err)
	}
	m.spliceRow(at, vals)

	return nil
}

// spliceRow inserts row (len == c) before row at. Preconditions are checked.
func (m *Dense[T]) spliceRow(at int, row []T) {
	m.data = slices.Insert(m.data, at*m.c, row...)
	m.r++
}

// InsertCol inserts a column of default values so that it becomes column at.
// Columns at and after at shift right by one. at == Width() appends.
//
// Errors: ErrOutOfRange unless 0 ≤ at ≤ Width().
//
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) InsertCol(at int) error {
	if err := validateInsertIndex(at, m.c); err != nil {
		return editErrorf(ctxInsertCol, at, err)
	}
	m.spliceCol(at, func(int) T { return m.def })

	return nil
}

// InsertColValues inserts vals (top to bottom) as column at.
//
// Errors:
//   - ErrOutOfRange unless 0 ≤ at ≤ Width().
//   - ErrSizeMismatch unless len(vals) == Height().
//   - ErrRejectedValue when the policy refuses any value.
//
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) InsertColValues(at int, vals []T) error {
	if err := validateInsertIndex(at, m.c); err != nil {
		return editErrorf(ctxInsertCol, at, err)
	}
	if err := validateLength(vals, m.r); err != nil {
		return editErrorf(ctxInsertCol, at, fmt.Errorf("got %d values for height %d: %w", len(vals), m.r, err))
	}
	if err := m.checkValues(vals); err != nil {
		return editErrorf(ctxInsertCol, at, err)
	}
	m.spliceCol(at, func(i int) T { return vals[i] })

	return nil
}

// spliceCol lays out a buffer of width c+1 with value(i) at (i, at).
func (m *Dense[T]) spliceCol(at int, value func(i int) T) {
	nc := m.c + 1
	next := make([]T, m.r*nc)
	var i, src, dst int
	for i = 0; i < m.r; i++ {
		src, dst = i*m.c, i*nc
		copy(next[dst:dst+at], m.data[src:src+at])
		next[dst+at] = value(i)
		copy(next[dst+at+1:dst+nc], m.data[src+at:src+m.c])
	}
	m.data = next
	m.c = nc
}

// DeleteRow removes row at; later rows shift up by one.
//
// Errors: ErrOutOfRange unless 0 ≤ at < Height().
//
// Complexity: Time O(r*c).
func (m *Dense[T]) DeleteRow(at int) error {
	if err := validateDeleteIndex(at, m.r); err != nil {
		return editErrorf(ctxDeleteRow, at, err)
	}
	m.data = slices.Delete(m.data, at*m.c, (at+1)*m.c)
	m.r--

	return nil
}

// DeleteCol removes column at; later columns shift left by one.
//
// Errors: ErrOutOfRange unless 0 ≤ at < Width().
//
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) DeleteCol(at int) error {
	if err := validateDeleteIndex(at, m.c); err != nil {
		return editErrorf(ctxDeleteCol, at, err)
	}
	nc := m.c - 1
	next := make([]T, m.r*nc)
	var i, src, dst int
	for i = 0; i < m.r; i++ {
		src, dst = i*m.c, i*nc
		copy(next[dst:dst+at], m.data[src:src+at])
		copy(next[dst+at:dst+nc], m.data[src+at+1:src+m.c])
	}
	m.data = next
	m.c = nc

	return nil
}
