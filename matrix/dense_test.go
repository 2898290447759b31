// Package matrix_test contains unit tests for Dense construction, access,
// cloning and visitors.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvgrid/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewInvalidDimensions ensures New rejects negative dimensions only.
func TestNewInvalidDimensions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		width, height int
		want          error
	}{
		{"negative width", -1, 2, matrix.ErrInvalidDimensions},
		{"negative height", 2, -1, matrix.ErrInvalidDimensions},
		{"both negative", -3, -3, matrix.ErrInvalidDimensions},
		{"zero by zero", 0, 0, nil},
		{"zero width", 0, 4, nil},
		{"zero height", 4, 0, nil},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.New[string](tc.width, tc.height)
			if tc.want != nil {
				require.ErrorIs(t, err, tc.want)
				require.Nil(t, m)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.height, m.Height())
			require.Equal(t, tc.width, m.Width())
		})
	}
}

// TestNewDefaultFill verifies every cell starts at the configured default,
// and at the zero value of T when no default is given.
func TestNewDefaultFill(t *testing.T) {
	m := MustNew(t, 3, 2, 9) // width 3, height 2
	rows, cols := m.Shape()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)
	require.Equal(t, 9, m.Default())
	want := [][]int{{9, 9, 9}, {9, 9, 9}}
	if diff := cmp.Diff(want, Snapshot[int](t, m)); diff != "" {
		t.Errorf("initial grid mismatch (-want +got):\n%s", diff)
	}

	z, err := matrix.New[*int](2, 2)
	require.NoError(t, err)
	require.Nil(t, MustAt[*int](t, z, 1, 1))
}

// TestSetGet checks set-then-get on every cell and that no other cell moves.
func TestSetGet(t *testing.T) {
	const w, h = 4, 3
	var i, j int
	for i = 0; i < h; i++ {
		for j = 0; j < w; j++ {
			m := MustNew(t, w, h, 0)
			require.NoError(t, m.Set(i, j, 42))
			require.Equal(t, 42, MustAt[int](t, m, i, j))
			m.Do(func(r, c, v int) bool {
				if r != i || c != j {
					require.Equalf(t, 0, v, "cell (%d,%d) changed by Set(%d,%d)", r, c, i, j)
				}
				return true
			})
		}
	}
}

// TestAtSetStrictBounds asserts the half-open bound: row == Height() and
// col == Width() are outside the grid.
func TestAtSetStrictBounds(t *testing.T) {
	t.Parallel()

	m := MustNew(t, 2, 3, 9) // 3 rows, 2 cols
	cases := []struct {
		name     string
		row, col int
	}{
		{"row == height", 3, 0},
		{"col == width", 0, 2},
		{"both at limit", 3, 2},
		{"negative row", -1, 0},
		{"negative col", 0, -1},
		{"far away", 100, 100},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.At(tc.row, tc.col)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
			require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // deprecated alias still matches

			err = m.Set(tc.row, tc.col, 1)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
		})
	}

	// Last valid cell is still addressable.
	require.NoError(t, m.Set(2, 1, 5))
	require.Equal(t, 5, MustAt[int](t, m, 2, 1))
}

// TestAtErrorContext checks the wrapped message names method and coordinates.
func TestAtErrorContext(t *testing.T) {
	m := MustNew(t, 1, 1, 0)
	_, err := m.At(4, 7)
	require.EqualError(t, err, "Dense.At(4,7): matrix: index out of range")
}

// TestNewFromRows builds from literal rows and rejects ragged input.
func TestNewFromRows(t *testing.T) {
	src := [][]int{{1, 2, 3}, {4, 5, 6}}
	m := MustFromRows(t, src)
	require.Equal(t, 2, m.Height())
	require.Equal(t, 3, m.Width())
	if diff := cmp.Diff(src, m.Rows()); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}

	// The input is copied.
	src[0][0] = 100
	require.Equal(t, 1, MustAt[int](t, m, 0, 0))

	_, err := matrix.NewFromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrNonRectangular)

	empty, err := matrix.NewFromRows[int](nil)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Height())
	require.Equal(t, 0, empty.Width())
}

// TestRowCol returns copies of a single line.
func TestRowCol(t *testing.T) {
	m := MustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 6}, row)
	row[0] = 0
	require.Equal(t, 4, MustAt[int](t, m, 1, 0))

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []int{3, 6}, col)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestCloneIndependence ensures Clone shares no storage with the original.
func TestCloneIndependence(t *testing.T) {
	m := RandFilled(t, 3, 4, 7)
	c := m.Clone()
	require.True(t, m.Equal(c))
	require.Equal(t, m.Default(), c.Default())

	require.NoError(t, c.Set(0, 0, -100))
	require.NotEqual(t, -100, MustAt[int](t, m, 0, 0))

	require.NoError(t, m.Set(3, 2, -200))
	require.NotEqual(t, -200, MustAt[int](t, c, 3, 2))

	// Structural edits on the clone leave the original's shape alone.
	require.NoError(t, c.InsertRow(0))
	require.NoError(t, c.DeleteCol(0))
	require.Equal(t, 4, m.Height())
	require.Equal(t, 3, m.Width())
}

// TestCloneShallow documents that pointer elements are shared, not deep-copied.
func TestCloneShallow(t *testing.T) {
	x := 1
	m, err := matrix.New(1, 1, matrix.WithDefault(&x))
	require.NoError(t, err)
	c := m.Clone()
	p := MustAt[*int](t, c, 0, 0)
	*p = 2
	require.Equal(t, 2, *MustAt[*int](t, m, 0, 0))
}

// TestStringOutput checks the row-wise dump format.
func TestStringOutput(t *testing.T) {
	m := MustFromRows(t, [][]int{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())

	empty := MustNew(t, 0, 0, 0)
	require.Equal(t, "", empty.String())
}

// TestDoEarlyStop verifies row-major order and early exit.
func TestDoEarlyStop(t *testing.T) {
	m := MustFromRows(t, [][]int{{1, 2}, {3, 4}})
	var seen []int
	m.Do(func(_, _ int, v int) bool {
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []int{1, 2, 3}, seen)
}

// TestApply maps every cell in place.
func TestApply(t *testing.T) {
	m := MustFromRows(t, [][]int{{1, 2}, {3, 4}})
	require.NoError(t, m.Apply(func(i, j, v int) int { return v*10 + i + j }))
	want := [][]int{{10, 21}, {31, 42}}
	if diff := cmp.Diff(want, m.Rows()); diff != "" {
		t.Errorf("Apply mismatch (-want +got):\n%s", diff)
	}
}

// TestValuePolicy covers the per-instance guard across every writer.
func TestValuePolicy(t *testing.T) {
	_, err := matrix.New(2, 2,
		matrix.WithDefault(math.NaN()),
		matrix.WithValuePolicy(matrix.RejectNaNInf))
	require.ErrorIs(t, err, matrix.ErrRejectedValue)

	m, err := matrix.New(3, 3, matrix.WithDefault(1.0), matrix.WithValuePolicy(matrix.RejectNaNInf))
	require.NoError(t, err)
	before := m.Clone()

	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrRejectedValue)
	require.ErrorIs(t, m.FillRegion(0, 0, 3, 3, math.NaN()), matrix.ErrRejectedValue)
	require.ErrorIs(t, m.FillLine(0, 0, 1, 1, 3, 3, math.Inf(-1)), matrix.ErrRejectedValue)
	require.ErrorIs(t, m.InsertRowValues(1, []float64{1, math.NaN(), 3}), matrix.ErrRejectedValue)
	require.ErrorIs(t, m.InsertColValues(1, []float64{1, 2, math.Inf(1)}), matrix.ErrRejectedValue)
	require.ErrorIs(t, m.Apply(func(i, j int, v float64) float64 {
		if i == 2 && j == 2 {
			return math.NaN()
		}
		return v + 1
	}), matrix.ErrRejectedValue)

	// Nothing above may have changed the grid.
	require.True(t, m.Equal(before))

	// The policy travels with clones.
	c := m.Clone()
	require.ErrorIs(t, c.Set(1, 1, math.NaN()), matrix.ErrRejectedValue)

	// Finite values pass.
	require.NoError(t, m.Set(1, 1, 2.5))
}

// TestWithValuePolicyNilPanics documents the programmer-error contract.
func TestWithValuePolicyNilPanics(t *testing.T) {
	require.PanicsWithValue(t, "matrix: WithValuePolicy: policy must not be nil", func() {
		_ = matrix.WithValuePolicy[int](nil)
	})
}

// TestRejectedValueCause keeps the policy's own error text in the chain.
func TestRejectedValueCause(t *testing.T) {
	odd := errors.New("odd values are not allowed")
	m, err := matrix.New(2, 2, matrix.WithValuePolicy(func(v int) error {
		if v%2 != 0 {
			return odd
		}
		return nil
	}))
	require.NoError(t, err)
	err = m.Set(0, 1, 3)
	require.ErrorIs(t, err, matrix.ErrRejectedValue)
	require.ErrorContains(t, err, "odd values are not allowed")
}
