// SPDX-License-Identifier: MIT
// Package imatrix_test contains test helpers.

package imatrix_test

import (
	"testing"

	"github.com/katalvlaran/intervalm/imatrix"
	"github.com/katalvlaran/intervalm/interval"
	"github.com/katalvlaran/intervalm/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps a Matrix to force kernels onto the interface path.
type hide struct{ imatrix.Matrix }

func iv(lo, hi float64) interval.Interval { return interval.MustNew(lo, hi) }

// mustPairs builds an interval matrix from rows of [lo, hi] pairs.
func mustPairs(tb testing.TB, rows [][][2]float64) *imatrix.IntervalMatrix {
	tb.Helper()
	lit := make([][]interval.Interval, len(rows))
	for i, row := range rows {
		lit[i] = make([]interval.Interval, len(row))
		for j, p := range row {
			lit[i][j] = iv(p[0], p[1])
		}
	}
	m, err := imatrix.FromRows(lit)
	require.NoError(tb, err)

	return m
}

func mustDense(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	d, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return d
}

// docMatrix is [[0,1] [1,2]; [2,3] [-4,-2]].
func docMatrix(tb testing.TB) *imatrix.IntervalMatrix {
	return mustPairs(tb, [][][2]float64{
		{{0, 1}, {1, 2}},
		{{2, 3}, {-4, -2}},
	})
}

// requireEqualMatrix compares entries exactly and prints both on failure.
func requireEqualMatrix(tb testing.TB, want, got *imatrix.IntervalMatrix) {
	tb.Helper()
	require.True(tb, imatrix.Equal(want, got), "want\n%vgot\n%v", want, got)
}

// requireSubset asserts a ⊆ b.
func requireSubset(tb testing.TB, a, b imatrix.Matrix) {
	tb.Helper()
	ok, err := imatrix.Subset(a, b)
	require.NoError(tb, err)
	require.True(tb, ok, "expected\n%vto be a subset of\n%v", a, b)
}
