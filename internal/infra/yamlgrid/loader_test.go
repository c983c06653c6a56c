package yamlgrid

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minimat/matrix"
)

func TestLoad(t *testing.T) {
	ops, err := Load(filepath.Join("testdata", "pair.yaml"), nil)
	require.NoError(t, err)

	a, err := ops.RequireA()
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, a.RawRows())

	b, err := ops.RequireB()
	require.NoError(t, err)
	require.Equal(t, [][]float64{{5, 6}, {7, 8}}, b.RawRows())

	s, err := ops.RequireScalar()
	require.NoError(t, err)
	require.Equal(t, 2.0, s)
}

func TestLoad_Stdin(t *testing.T) {
	ops, err := Load(StdinPath, strings.NewReader("a: [[5]]\n"))
	require.NoError(t, err)
	require.NotNil(t, ops.A)
	require.Nil(t, ops.B)

	_, err = ops.RequireB()
	require.ErrorIs(t, err, ErrMissingOperand)
	_, err = ops.RequireScalar()
	require.ErrorIs(t, err, ErrMissingOperand)
}

func TestLoad_Errors(t *testing.T) {
	path := filepath.Join("testdata", "ragged.yaml")
	_, err := Load(path, nil)
	require.ErrorIs(t, err, matrix.ErrRagged)

	var le *LoadError
	require.True(t, errors.As(err, &le))
	require.Equal(t, "yamlgrid.a", le.Op)
	require.Contains(t, err.Error(), path)

	_, err = Load(filepath.Join("testdata", "missing.yaml"), nil)
	require.True(t, errors.As(err, &le))
	require.Equal(t, "yamlgrid.read", le.Op)

	_, err = Parse("inline", []byte("a: [[1, x]]"))
	require.True(t, errors.As(err, &le))
	require.Equal(t, "yamlgrid.decode", le.Op)

	_, err = Parse("inline", []byte("a: []"))
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
