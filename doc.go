// Package lvgrid is an in-memory toolkit for resizable two-dimensional
// grids of arbitrary values.
//
// What is inside:
//
//	matrix/   — Matrix[T] interface and Dense[T]: a dense row-major grid with
//	            a default fill value, strict bounds checking, row/column
//	            insertion and deletion, region and line fills, Equal/Hash
//	            and Clone.
//	examples/ — a runnable walkthrough (go run ./examples).
//
// Why lvgrid?
//
//   - Generic: any comparable element type, from int to struct keys.
//   - Safe surface: every method returns sentinel errors instead of
//     panicking, and a failed call never leaves a half-edited grid.
//   - Small: no I/O, no goroutines, no hidden global state.
//
// Quick ASCII example:
//
//	[A, ., .]      InsertRow(1)      [A, ., .]
//	[., ., .]   ──────────────────►  [., ., .]
//	                                  [., ., .]
//
//	go get github.com/katalvlaran/lvgrid/matrix
package lvgrid
