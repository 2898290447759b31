// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Small, deterministic fixtures and utilities shared by the table tests.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvgrid/matrix"
)

// MustNew ALLOCATES a height×width grid with default def or fails the test.
func MustNew(t testing.TB, width, height, def int) *matrix.Dense[int] {
	t.Helper()
	m, err := matrix.New(width, height, matrix.WithDefault(def))
	if err != nil {
		t.Fatalf("New(%d,%d): %v", width, height, err)
	}

	return m
}

// MustFromRows BUILDS a grid from literal rows or fails the test.
func MustFromRows(t testing.TB, rows [][]int) *matrix.Dense[int] {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// MustAt READS (i,j) or fails the test.
func MustAt[T comparable](t testing.TB, m matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// Snapshot COPIES any Matrix into [][]T through the public accessors, so it
// also works on implementations other than *Dense.
func Snapshot[T comparable](t testing.TB, m matrix.Matrix[T]) [][]T {
	t.Helper()
	out := make([][]T, m.Height())
	for i := range out {
		out[i] = make([]T, m.Width())
		for j := range out[i] {
			out[i][j] = MustAt(t, m, i, j)
		}
	}

	return out
}

// RandomFill FILLS m with deterministic values in [0,100) by seed.
func RandomFill(t testing.TB, m matrix.Matrix[int], seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < m.Height(); i++ {
		for j = 0; j < m.Width(); j++ {
			if err := m.Set(i, j, rng.Intn(100)); err != nil {
				t.Fatalf("Set RandomFill(%d,%d): %v", i, j, err)
			}
		}
	}
}

// RandFilled RETURNS a new width×height grid (default -1) filled by seed.
func RandFilled(t testing.TB, width, height int, seed int64) *matrix.Dense[int] {
	t.Helper()
	m := MustNew(t, width, height, -1)
	RandomFill(t, m, seed)

	return m
}

// hide WRAPS a Matrix to hide its concrete type, forcing generic code paths
// (Equal/Hash without the *Dense fast path).
type hide[T comparable] struct{ matrix.Matrix[T] }
