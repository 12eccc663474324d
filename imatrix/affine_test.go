// SPDX-License-Identifier: MIT
package imatrix_test

import (
	"testing"

	"github.com/katalvlaran/intervalm/imatrix"
	"github.com/katalvlaran/intervalm/interval"
	"github.com/katalvlaran/intervalm/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAffine1(t *testing.T) {
	a0 := mustDense(t, [][]float64{{1, 0}, {0, 1}})
	a1 := mustDense(t, [][]float64{{0, 1}, {-1, 0}})
	m, err := imatrix.NewAffine1(a0, a1, iv(-1, 2))
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.True(t, m.Lambda().Equal(iv(-1, 2)))

	got, err := m.Materialize()
	require.NoError(t, err)
	requireEqualMatrix(t, mustPairs(t, [][][2]float64{
		{{1, 1}, {-1, 2}},
		{{-2, 1}, {1, 1}},
	}), got)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, imatrix.ErrOutOfRange)
}

func TestAffine1_ShapeMismatch(t *testing.T) {
	_, err := imatrix.NewAffine1(mustDense(t, [][]float64{{1}}), mustDense(t, [][]float64{{1, 2}}), iv(0, 1))
	require.ErrorIs(t, err, imatrix.ErrDimensionMismatch)
}

func TestAffine(t *testing.T) {
	a0 := mustDense(t, [][]float64{{0, 0}, {0, 0}})
	basis := []*matrix.Dense{
		mustDense(t, [][]float64{{1, 0}, {0, 0}}),
		mustDense(t, [][]float64{{1, 1}, {0, 0}}),
	}
	m, err := imatrix.NewAffine(a0, basis, []interval.Interval{iv(0, 1), iv(2, 3)})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())

	x, err := m.At(0, 0)
	require.NoError(t, err)
	assert.True(t, x.Equal(iv(2, 4)))
	x, err = m.At(0, 1)
	require.NoError(t, err)
	assert.True(t, x.Equal(iv(2, 3)))

	// Kernels accept the lazy form through the Matrix interface.
	sq, err := imatrix.Mul(m, m)
	require.NoError(t, err)
	mat, err := m.Materialize()
	require.NoError(t, err)
	want, err := imatrix.Mul(mat, mat)
	require.NoError(t, err)
	requireEqualMatrix(t, want, sq)
}

func TestAffine_Errors(t *testing.T) {
	a0 := mustDense(t, [][]float64{{0}})
	_, err := imatrix.NewAffine(a0, []*matrix.Dense{a0}, nil)
	require.ErrorIs(t, err, imatrix.ErrDimensionMismatch)

	_, err = imatrix.NewAffine(a0, []*matrix.Dense{mustDense(t, [][]float64{{1, 1}})}, []interval.Interval{iv(0, 1)})
	require.ErrorIs(t, err, imatrix.ErrDimensionMismatch)

	_, err = imatrix.NewAffine(nil, nil, nil)
	require.ErrorIs(t, err, imatrix.ErrNilMatrix)
}
