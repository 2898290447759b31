// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Keep a flat row-major buffer with the index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep deterministic traversal orders (row-major, no map iteration).
//
// Complexity quicksheet:
//   - New: O(r*c) default fill; At/Set: O(1); Clone: O(r*c); Row/Col: O(c)/O(r).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRow      = "Row"
	ctxCol      = "Col"
	ctxApply    = "Apply"
	ctxNew      = "New"
	ctxFromRows = "NewFromRows"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps a sentinel with the Dense method and its coordinates.
// Callers still match the sentinel via errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major grid.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c (offset = i*c + j).
//   - def fills every new cell.
//   - policy, when non-nil, guards every stored value.
type Dense[T comparable] struct {
	r, c   int
	data   []T
	def    T
	policy func(T) error
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[int]  = (*Dense[int])(nil)
	_ fmt.Stringer = (*Dense[int])(nil)
)

// New creates a height×width grid with every cell set to the default value.
// Without WithDefault the default is the zero value of T.
//
// Implementation:
//   - Stage 1: validate width,height >= 0 (zero is a legal, empty grid).
//   - Stage 2: resolve options; run the value policy on the default.
//   - Stage 3: allocate and fill the buffer.
//
// Errors:
//   - ErrInvalidDimensions for negative sizes.
//   - ErrRejectedValue when the policy refuses the default.
//
// Complexity: Time O(r*c), Space O(r*c).
func New[T comparable](width, height int, opts ...Option[T]) (*Dense[T], error) {
	if err := validateDims(width, height); err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, width, height, err)
	}
	o := gatherOptions(opts)
	m := &Dense[T]{r: height, c: width, def: o.def, policy: o.policy}
	if err := m.checkValue(o.def); err != nil {
		return nil, fmt.Errorf("%s(%d,%d): default: %w", ctxNew, width, height, err)
	}
	m.data = filled(height*width, o.def)

	return m, nil
}

// NewFromRows builds a grid whose row i is a copy of rows[i].
// An empty or nil slice yields a 0×0 grid.
//
// Errors:
//   - ErrNonRectangular when rows differ in length.
//   - ErrRejectedValue when the policy refuses the default or any cell.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewFromRows[T comparable](rows [][]T, opts ...Option[T]) (*Dense[T], error) {
	var width int
	if len(rows) > 0 {
		width = len(rows[0])
	}
	for i := range rows {
		if len(rows[i]) != width {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				ctxFromRows, i, len(rows[i]), width, ErrNonRectangular)
		}
	}

	o := gatherOptions(opts)
	m := &Dense[T]{r: len(rows), c: width, def: o.def, policy: o.policy}
	if err := m.checkValue(o.def); err != nil {
		return nil, fmt.Errorf("%s: default: %w", ctxFromRows, err)
	}
	m.data = make([]T, 0, m.r*m.c)
	for i := range rows {
		if err := m.checkValues(rows[i]); err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", ctxFromRows, i, err)
		}
		m.data = append(m.data, rows[i]...)
	}

	return m, nil
}

// filled returns a slice of n copies of v.
func filled[T any](n int, v T) []T {
	buf := make([]T, n)
	for i := range buf {
		buf[i] = v
	}

	return buf
}

// Height returns the row count. Complexity: O(1).
func (m *Dense[T]) Height() int { return m.r }

// Width returns the column count. Complexity: O(1).
func (m *Dense[T]) Width() int { return m.c }

// Shape packs Height() and Width() into a single call.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Default returns the value used for new cells.
func (m *Dense[T]) Default() T { return m.def }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// The check is strict on both ends: row == Height() or col == Width() is
// outside the grid.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// checkValue runs the value policy, if any.
func (m *Dense[T]) checkValue(v T) error {
	if m.policy == nil {
		return nil
	}
	if err := m.policy(v); err != nil {
		return fmt.Errorf("%w: %v", ErrRejectedValue, err)
	}

	return nil
}

// checkValues runs the value policy over vals, stopping at the first refusal.
func (m *Dense[T]) checkValues(vals []T) error {
	if m.policy == nil {
		return nil
	}
	for i := range vals {
		if err := m.checkValue(vals[i]); err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}
	}

	return nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Complexity: Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrRejectedValue when the policy refuses v.
//
// Complexity: Time O(1), Space O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if err = m.checkValue(v); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if err := validateDeleteIndex(i, m.r); err != nil {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxRow, i, err)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j, top to bottom.
func (m *Dense[T]) Col(j int) ([]T, error) {
	if err := validateDeleteIndex(j, m.c); err != nil {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxCol, j, err)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Rows returns a copy of the grid as a slice of rows.
func (m *Dense[T]) Rows() [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns an independent copy: new buffer, same shape, default and
// value policy. Elements are copied by assignment (shallow).
//
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) Clone() Matrix[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{
		r:      m.r,
		c:      m.c,
		data:   cp,
		def:    m.def,
		policy: m.policy,
	}
}

// String renders one bracketed, comma-separated line per row (fmt %v).
// Intended for logs and debugging.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each cell in row-major order and calls f(i, j, v).
// Iteration stops early when f returns false.
//
// Complexity: Time O(r*c), Space O(1).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each cell with f(i, j, v).
// New values are computed into a scratch buffer and swapped in only when all
// of them pass the value policy, so an error leaves the grid untouched.
//
// Errors:
//   - ErrRejectedValue, wrapped with the first offending coordinates.
//
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) error {
	next := make([]T, len(m.data))
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv := f(i, j, m.data[base+j])
			if err := m.checkValue(nv); err != nil {
				return denseErrorf(ctxApply, i, j, err)
			}
			next[base+j] = nv
		}
	}
	m.data = next

	return nil
}
