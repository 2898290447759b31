// SPDX-License-Identifier: MIT

package matrix

// Test bridge for unexported validators.
//
// Purpose:
//   - Expose private precondition helpers to the external matrix_test package
//     without widening the production API. Being a _test.go file, it only
//     compiles under `go test`.

var (
	ExportedValidateRange       = validateRange
	ExportedValidateStep        = validateStep
	ExportedValidateInsertIndex = validateInsertIndex
	ExportedValidateDeleteIndex = validateDeleteIndex
	ExportedLineSteps           = lineSteps
)
