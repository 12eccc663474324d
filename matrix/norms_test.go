// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/intervalm/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpNorm(t *testing.T) {
	m := MustRows(t, [][]float64{{1, -2}, {-3, 4}})

	cases := []struct {
		name string
		p    float64
		want float64
	}{
		{"one", 1, 6},
		{"inf", math.Inf(1), 7},
		// singular values of [[1,-2],[-3,4]]: sqrt(15 ± sqrt(221))
		{"two", 2, math.Sqrt(15 + math.Sqrt(221))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.OpNorm(m, tc.p)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-10)
		})
	}
}

func TestOpNorm_Unsupported(t *testing.T) {
	_, err := matrix.OpNorm(MustDense(t, 2, 2), 3)
	require.ErrorIs(t, err, matrix.ErrUnsupportedNorm)
}

func TestOpNorm_InfiniteEntry(t *testing.T) {
	m := MustRows(t, [][]float64{{1, math.Inf(1)}})
	for _, p := range []float64{1, 2, math.Inf(1)} {
		got, err := matrix.OpNorm(m, p)
		require.NoError(t, err)
		assert.True(t, math.IsInf(got, 1), "p=%v", p)
	}
}

func TestOpNorm_RectangularTwoNorm(t *testing.T) {
	m := MustRows(t, [][]float64{{3, 0, 0}, {0, 4, 0}})
	got, err := matrix.OpNorm(hide{m}, 2)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, got, 1e-12)
}
