// SPDX-License-Identifier: MIT

// Package matrix provides a generic, resizable, dense two-dimensional container.
//
// What:
//
//   - Dense[T] stores Height()×Width() cells of any comparable type T in a
//     flat row-major buffer (offset = i*cols + j).
//   - A configurable default value populates every new cell: on creation,
//     and on row/column insertion without explicit values.
//   - Structural edits insert or delete a single row or column at any index,
//     shifting the remaining cells.
//   - Bulk fills write a half-open rectangular region or a stepped line
//     (horizontal, vertical, diagonal).
//   - Equal/Hash compare whole matrices; Clone copies one.
//
// Why:
//
//   - Tables, seating charts, game boards and spreadsheets-in-memory need
//     a grid whose shape changes over time, not a fixed [][]T.
//
// Errors:
//
//   - ErrInvalidDimensions: negative width or height at construction.
//   - ErrOutOfRange (ErrIndexOutOfBounds): coordinate or range outside the grid.
//   - ErrSizeMismatch: inserted row/column has the wrong length.
//   - ErrInvalidStep: FillLine deltas that are both zero.
//   - ErrRejectedValue: a value refused by the configured value policy.
//
// Every method validates all of its preconditions before touching storage:
// a call that returns an error leaves the matrix exactly as it was.
//
// Complexity:
//
//   - At/Set/Height/Width: O(1).
//   - InsertRow/DeleteRow/InsertCol/DeleteCol/Clone/Equal/Hash: O(rows*cols).
//   - FillRegion: O(area); FillLine: O(steps).
//
// Dense is not safe for concurrent mutation; guard it with a sync.Mutex when
// shared between goroutines.
package matrix
