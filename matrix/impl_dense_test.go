// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage and accessors.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minimat/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{2, 3},
		{6, 6},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
			m.Do(func(i, j int, v float64) bool {
				require.Zerof(t, v, "element [%d,%d]", i, j)
				return true
			})
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{{0, 1}, {1, 0}, {-1, 2}} {
		_, err := matrix.NewDense(tc.rows, tc.cols)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestNewFromRows(t *testing.T) {
	t.Parallel()

	grid := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m := MustRows(t, grid)
	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.False(t, m.IsSquare())
	require.Equal(t, 6.0, MustAt(t, m, 1, 2))

	// The grid is copied, not aliased.
	grid[0][0] = 99
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestNewFromRows_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		grid [][]float64
		want error
	}{
		{"nil grid", nil, matrix.ErrInvalidDimensions},
		{"empty grid", [][]float64{}, matrix.ErrInvalidDimensions},
		{"empty first row", [][]float64{{}}, matrix.ErrInvalidDimensions},
		{"ragged", [][]float64{{1, 2}, {3}}, matrix.ErrRagged},
		{"NaN", [][]float64{{1, math.NaN()}}, matrix.ErrNaNInf},
		{"Inf", [][]float64{{math.Inf(-1)}}, matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewFromRows(tc.grid)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewFromRows_NoValidateNaNInf(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsInf(MustAt(t, m, 0, 0), 1))
	require.NoError(t, m.Set(0, 0, math.NaN()))
}

func TestAtSet_Bounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)
	require.NoError(t, m.Set(1, 0, 7))
	require.Equal(t, 7.0, MustAt(t, m, 1, 0))

	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, m.Set(ij[0], ij[1], 1), matrix.ErrOutOfRange)
	}
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}

func TestRow(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)

	// Returned row is a copy.
	row[0] = 42
	require.Equal(t, 3.0, MustAt(t, m, 1, 0))

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestCloneIndependence(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, -1))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, -1.0, MustAt(t, c, 0, 0))
}

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		grid [][]float64
		want string
	}{
		{"2x2 ints", [][]float64{{1, 2}, {3, 4}}, "1  2 \n3  4 \n"},
		{"1x1 fraction", [][]float64{{0.2}}, "0.2 \n"},
		{"negatives", [][]float64{{-1, -2.5, 0}}, "-1  -2.5  0 \n"},
		{"column", [][]float64{{1}, {2}}, "1 \n2 \n"},
		{"millions stay plain", [][]float64{{1000000, 1234567.5}, {0.2, 100}}, "1000000  1234567.5 \n0.2  100 \n"},
		{"plain range edges", [][]float64{{0.0001, 9999999999999998}}, "0.0001  9999999999999998 \n"},
		{"exponent outside range", [][]float64{{1e16, 0.00001, -2.5e-7}}, "1e+16  1e-05  -2.5e-07 \n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, MustRows(t, tc.grid).String())
		})
	}
}

func TestApply_StopsOnNaN(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	err := m.Apply(func(i, j int, v float64) float64 {
		if i == 1 && j == 0 {
			return math.NaN()
		}
		return v * 10
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	// Elements written before the error stay updated.
	require.Equal(t, [][]float64{{10, 20}, {3, 4}}, m.RawRows())
}

func TestDo_EarlyExit(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	visited := 0
	m.Do(func(_, _ int, _ float64) bool {
		visited++
		return visited < 3
	})
	require.Equal(t, 3, visited)
}
