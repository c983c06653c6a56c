// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minimat/matrix"
)

// tol is the absolute tolerance for floating-point property checks.
const tol = 1e-9

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the gather-through-At path in kernels.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustRows builds a *Dense from a literal grid or fails the test.
func MustRows(t *testing.T, grid [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(grid)
	require.NoError(t, err)

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.Identity(n)
	require.NoError(t, err)

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// RandomDense returns an r×c matrix with entries in [-10, 10) from a seeded source.
func RandomDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, r, c)
	require.NoError(t, m.Apply(func(_, _ int, _ float64) float64 {
		return rng.Float64()*20 - 10
	}))

	return m
}

// RequireGrid asserts that m holds exactly the given grid.
func RequireGrid(t *testing.T, want [][]float64, m *matrix.Dense) {
	t.Helper()
	require.Equal(t, want, m.RawRows())
}

// RequireClose asserts element-wise |a-b| ≤ tol.
func RequireClose(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ beyond %g:\nwant\n%v\ngot\n%v", tol, want, got)
}
