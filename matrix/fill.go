// SPDX-License-Identifier: MIT

// Package matrix - bulk fills over a region or a stepped line.

package matrix

import "fmt"

const (
	ctxFillRegion = "FillRegion"
	ctxFillLine   = "FillLine"
	ctxLineCells  = "LineCells"
)

// FillRegion sets every cell with startRow ≤ i < endRow and
// startCol ≤ j < endCol to v. An empty range (end ≤ start) writes nothing.
//
// Errors:
//   - ErrOutOfRange if any coordinate is negative, startRow >= Height(),
//     endRow > Height(), startCol >= Width() or endCol > Width().
//   - ErrRejectedValue when the policy refuses v.
//
// Complexity: Time O((endRow-startRow)*(endCol-startCol)), Space O(1).
func (m *Dense[T]) FillRegion(startRow, startCol, endRow, endCol int, v T) error {
	if err := validateRange(startRow, startCol, endRow, endCol, m.r, m.c); err != nil {
		return fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxFillRegion, startRow, startCol, endRow, endCol, err)
	}
	if err := m.checkValue(v); err != nil {
		return fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxFillRegion, startRow, startCol, endRow, endCol, err)
	}

	var i, j, base int
	for i = startRow; i < endRow; i++ {
		base = i * m.c
		for j = startCol; j < endCol; j++ {
			m.data[base+j] = v
		}
	}

	return nil
}

// FillLine sets the cells (startRow+k*dRow, startCol+k*dCol), k = 0, 1, ...,
// to v. The walk stops as soon as the row or column reaches its end bound or
// drops below 0. (1,1) draws a diagonal, (1,-1) an anti-diagonal, (0,1) a
// horizontal segment and (1,0) a vertical one.
//
// The number of steps is computed before writing: an axis with a zero delta
// never ends the walk on its own, and the other axis bounds it.
//
// Errors:
//   - ErrOutOfRange under the same coordinate rules as FillRegion.
//   - ErrInvalidStep if both deltas are zero.
//   - ErrRejectedValue when the policy refuses v.
//
// Complexity: Time O(steps), Space O(1).
func (m *Dense[T]) FillLine(startRow, startCol, dRow, dCol, endRow, endCol int, v T) error {
	wrap := lineErrorf(ctxFillLine, startRow, startCol, dRow, dCol, endRow, endCol)
	steps, err := m.lineWalk(startRow, startCol, dRow, dCol, endRow, endCol)
	if err != nil {
		return wrap(err)
	}
	if err = m.checkValue(v); err != nil {
		return wrap(err)
	}

	for k := 0; k < steps; k++ {
		m.data[(startRow+k*dRow)*m.c+startCol+k*dCol] = v
	}

	return nil
}

// LineCells returns, in walk order, the cells FillLine would write for the
// same arguments. It fails exactly when FillLine would, except that no value
// is checked.
func (m *Dense[T]) LineCells(startRow, startCol, dRow, dCol, endRow, endCol int) ([]Cell, error) {
	steps, err := m.lineWalk(startRow, startCol, dRow, dCol, endRow, endCol)
	if err != nil {
		return nil, lineErrorf(ctxLineCells, startRow, startCol, dRow, dCol, endRow, endCol)(err)
	}

	cells := make([]Cell, steps)
	for k := range cells {
		cells[k] = Cell{Row: startRow + k*dRow, Col: startCol + k*dCol}
	}

	return cells, nil
}

// lineWalk validates a line and returns how many cells it visits.
func (m *Dense[T]) lineWalk(startRow, startCol, dRow, dCol, endRow, endCol int) (int, error) {
	if err := validateRange(startRow, startCol, endRow, endCol, m.r, m.c); err != nil {
		return 0, err
	}
	if err := validateStep(dRow, dCol); err != nil {
		return 0, err
	}

	return lineSteps(startRow, startCol, dRow, dCol, endRow, endCol), nil
}

func lineErrorf(method string, startRow, startCol, dRow, dCol, endRow, endCol int) func(error) error {
	return func(err error) error {
		return fmt.Errorf("Dense.%s(%d,%d,%d,%d,%d,%d): %w",
			method, startRow, startCol, dRow, dCol, endRow, endCol, err)
	}
}
