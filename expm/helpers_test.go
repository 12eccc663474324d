// SPDX-License-Identifier: MIT

package expm_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/intervalm/imatrix"
	"github.com/katalvlaran/intervalm/interval"
	"github.com/katalvlaran/intervalm/matrix"
	"github.com/stretchr/testify/require"
)

func iv(lo, hi float64) interval.Interval { return interval.MustNew(lo, hi) }

func pt(x float64) interval.Interval { return interval.Point(x) }

// docMatrix is [[0,1] [1,2]; [2,3] [-4,-2]].
func docMatrix() *imatrix.IntervalMatrix {
	return imatrix.MustFromRows([][]interval.Interval{
		{iv(0, 1), iv(1, 2)},
		{iv(2, 3), iv(-4, -2)},
	})
}

// narrowMatrix has a unit-scale center and radius 0.01 in every entry.
func narrowMatrix() *imatrix.IntervalMatrix {
	return imatrix.MustFromRows([][]interval.Interval{
		{iv(-1.01, -0.99), iv(0.49, 0.51)},
		{iv(0.19, 0.21), iv(-0.81, -0.79)},
	})
}

// diagonalMatrix is diag([-1,-0.5], [0.1,0.2]).
func diagonalMatrix() *imatrix.IntervalMatrix {
	return imatrix.MustFromRows([][]interval.Interval{
		{iv(-1, -0.5), pt(0)},
		{pt(0), iv(0.1, 0.2)},
	})
}

func identity(tb testing.TB, n int) *imatrix.IntervalMatrix {
	tb.Helper()
	id, err := imatrix.Identity(n)
	require.NoError(tb, err)

	return id
}

func requireEqualMatrix(tb testing.TB, want, got *imatrix.IntervalMatrix) {
	tb.Helper()
	require.True(tb, imatrix.Equal(want, got), "want\n%vgot\n%v", want, got)
}

// tb is the subset of testing.TB that GinkgoT also satisfies.
type tb interface {
	require.TestingT
	Helper()
}

func requireSubset(tb testing.TB, a, b imatrix.Matrix) {
	tb.Helper()
	ok, err := imatrix.Subset(a, b)
	require.NoError(tb, err)
	require.True(tb, ok, "\n%v⊄\n%v", a, b)
}

// floatExp approximates exp(M·t) in plain float64 by scaling, a degree-20
// Taylor sum and squaring. Accurate to roughly 1e-14 relative for ‖Mt‖ ≲ 10.
func floatExp(tb tb, m *matrix.Dense, t float64) *matrix.Dense {
	tb.Helper()
	const s = 10
	a, err := matrix.Scale(m, math.Ldexp(t, -s))
	require.NoError(tb, err)
	n := m.Rows()
	sum, _ := matrix.NewIdentity(n)
	term, _ := matrix.NewIdentity(n)
	for k := 1; k <= 20; k++ {
		term, err = matrix.Mul(term, a)
		require.NoError(tb, err)
		term, err = matrix.Scale(term, 1/float64(k))
		require.NoError(tb, err)
		sum, err = matrix.Add(sum, term)
		require.NoError(tb, err)
	}
	for i := 0; i < s; i++ {
		sum, err = matrix.Mul(sum, sum)
		require.NoError(tb, err)
	}

	return sum
}

// requireEncloses asserts that every entry of ref lies in enc up to tol.
func requireEncloses(tb tb, enc *imatrix.IntervalMatrix, ref *matrix.Dense, tol float64) {
	tb.Helper()
	ref.Do(func(i, j int, v float64) bool {
		x, err := enc.At(i, j)
		require.NoError(tb, err)
		require.False(tb, x.IsEmpty(), "entry (%d,%d) empty", i, j)
		require.True(tb, x.Inf()-tol <= v && v <= x.Sup()+tol,
			"entry (%d,%d): %v ∉ %v", i, j, v, x)
		return true
	})
}
