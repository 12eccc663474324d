// SPDX-License-Identifier: MIT

package expm_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/intervalm/expm"
	"github.com/katalvlaran/intervalm/imatrix"
	"github.com/katalvlaran/intervalm/interval"
	"github.com/katalvlaran/intervalm/matrix"
	"github.com/katalvlaran/intervalm/power"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allMethods = []expm.Method{
	expm.Horner{K: 10},
	expm.TaylorOverapproximation{P: 4},
	expm.TaylorUnderapproximation{P: 4},
	expm.ScaleAndSquare{L: 5, P: 4},
}

func TestExpAtZeroIsIdentity(t *testing.T) {
	for _, m := range allMethods {
		t.Run(m.String(), func(t *testing.T) {
			got, err := expm.Exp(docMatrix(), 0, m)
			require.NoError(t, err)
			requireEqualMatrix(t, identity(t, 2), got)
		})
	}
}

func TestExpDispatch(t *testing.T) {
	a := narrowMatrix()

	over, err := expm.Overapproximation(a, 0.5, 6)
	require.NoError(t, err)
	got, err := expm.Exp(a, 0.5, expm.TaylorOverapproximation{P: 6})
	require.NoError(t, err)
	requireEqualMatrix(t, over, got)

	ss, err := expm.ScaleSquare(a, 0.5, expm.DefaultL, expm.DefaultP)
	require.NoError(t, err)
	got, err = expm.Exp(a, 0.5, nil)
	require.NoError(t, err)
	requireEqualMatrix(t, ss, got)

	h, err := expm.HornerExp(a, 0.5, 8)
	require.NoError(t, err)
	got, err = expm.Exp(a, 0.5, expm.Horner{K: 8})
	require.NoError(t, err)
	requireEqualMatrix(t, h, got)
}

func TestValidation(t *testing.T) {
	a := docMatrix()
	calls := map[string]func(t float64, p int, opts ...expm.Option) error{
		"over": func(t float64, p int, opts ...expm.Option) error {
			_, err := expm.Overapproximation(a, t, p, opts...)
			return err
		},
		"under": func(t float64, p int, opts ...expm.Option) error {
			_, err := expm.Underapproximation(a, t, p, opts...)
			return err
		},
		"scale_square": func(t float64, p int, opts ...expm.Option) error {
			_, err := expm.ScaleSquare(a, t, 3, p, opts...)
			return err
		},
		"remainder": func(t float64, p int, opts ...expm.Option) error {
			_, err := expm.Remainder(a, t, p, opts...)
			return err
		},
		"correction_hull": func(t float64, p int, opts ...expm.Option) error {
			_, err := expm.CorrectionHull(a, t, p, opts...)
			return err
		},
		"input_correction": func(t float64, p int, opts ...expm.Option) error {
			_, err := expm.InputCorrection(a, t, p, opts...)
			return err
		},
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, call(-0.1, 4), expm.ErrDomain)
			require.ErrorIs(t, call(math.NaN(), 4), expm.ErrDomain)
			require.ErrorIs(t, call(0.1, 0), expm.ErrDomain)
			require.NoError(t, call(0.1, 4))
			require.NoError(t, call(-0.1, 4, expm.WithoutValidation()))
		})
	}

	_, err := expm.ScaleSquare(a, 0.1, 0, 4)
	require.ErrorIs(t, err, expm.ErrDomain)
}

func TestHornerNormCheck(t *testing.T) {
	// ‖docMatrix‖∞ = 7.
	_, err := expm.HornerExp(docMatrix(), 1, 4)
	require.ErrorIs(t, err, expm.ErrDomain)

	_, err = expm.HornerExp(docMatrix(), 1, 6)
	require.NoError(t, err)

	_, err = expm.HornerExp(docMatrix(), 1, 4, expm.WithoutValidation())
	require.NoError(t, err)
}

func TestNonSquare(t *testing.T) {
	rect := imatrix.MustFromRows([][]interval.Interval{{pt(1), pt(2), pt(3)}})
	for _, m := range allMethods {
		_, err := expm.Exp(rect, 1, m)
		require.ErrorIs(t, err, expm.ErrDimensionMismatch, m.String())
	}
	_, err := expm.CorrectionHull(rect, 1, 3)
	require.ErrorIs(t, err, expm.ErrDimensionMismatch)
	_, err = expm.Overapproximation(nil, 1, 3)
	require.ErrorIs(t, err, imatrix.ErrNilMatrix)
}

func TestDiagonalRange(t *testing.T) {
	a := diagonalMatrix()
	exact := imatrix.MustFromRows([][]interval.Interval{
		{iv(math.Exp(-1), math.Exp(-0.5)), pt(0)},
		{pt(0), iv(math.Exp(0.1), math.Exp(0.2))},
	})

	for _, m := range []expm.Method{
		expm.Horner{K: 12},
		expm.TaylorOverapproximation{P: 12},
		expm.ScaleAndSquare{L: 4, P: 8},
	} {
		over, err := expm.Exp(a, 1, m)
		require.NoError(t, err, m.String())
		requireSubset(t, exact, over)
	}

	under, err := expm.Underapproximation(a, 1, 12)
	require.NoError(t, err)
	requireSubset(t, under, exact)
	for _, ij := range [][2]int{{0, 0}, {1, 1}} {
		x, err := under.At(ij[0], ij[1])
		require.NoError(t, err)
		assert.False(t, x.IsEmpty())
		assert.Greater(t, x.Diam(), 0.0)
	}
	// Off-diagonal entries are point zeros whose enclosures leave no room.
	x, err := under.At(0, 1)
	require.NoError(t, err)
	assert.True(t, x.IsEmpty())
}

func TestUnderInsideOver(t *testing.T) {
	for _, a := range []*imatrix.IntervalMatrix{docMatrix(), narrowMatrix(), diagonalMatrix()} {
		for _, p := range []int{2, 4, 8} {
			over, err := expm.Overapproximation(a, 0.3, p)
			require.NoError(t, err)
			under, err := expm.Underapproximation(a, 0.3, p)
			require.NoError(t, err)
			requireSubset(t, under, over)
		}
	}
}

func TestEnclosesSampledExponentials(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := docMatrix()
	const tt = 0.25

	encs := map[string]*imatrix.IntervalMatrix{}
	for _, m := range []expm.Method{
		expm.Horner{K: 10},
		expm.TaylorOverapproximation{P: 10},
		expm.ScaleAndSquare{L: 5, P: 4},
	} {
		e, err := expm.Exp(a, tt, m)
		require.NoError(t, err)
		encs[m.String()] = e
		e, err = expm.Exp(a, tt, m, expm.WithMulMode(imatrix.ModeFast))
		require.NoError(t, err)
		encs[m.String()+"/fast"] = e
	}

	for s := 0; s < 50; s++ {
		pm, err := imatrix.Sample(rng, a)
		require.NoError(t, err)
		ref := floatExp(t, pm, tt)
		for _, e := range encs {
			requireEncloses(t, e, ref, 1e-12)
		}
	}
}

func TestWidthShrinksWithOrder(t *testing.T) {
	a := narrowMatrix()
	low, err := expm.Overapproximation(a, 1, 2)
	require.NoError(t, err)
	high, err := expm.Overapproximation(a, 1, 10)
	require.NoError(t, err)

	wLow, err := imatrix.DiamNorm(low, math.Inf(1))
	require.NoError(t, err)
	wHigh, err := imatrix.DiamNorm(high, math.Inf(1))
	require.NoError(t, err)
	assert.Less(t, wHigh, wLow)
}

func TestScaleAndSquareWidth(t *testing.T) {
	a := narrowMatrix()
	taylor, err := expm.Overapproximation(a, 1, 10)
	require.NoError(t, err)
	ss, err := expm.ScaleSquare(a, 1, 5, 4)
	require.NoError(t, err)

	wT, err := imatrix.DiamNorm(taylor, 1)
	require.NoError(t, err)
	wS, err := imatrix.DiamNorm(ss, 1)
	require.NoError(t, err)
	assert.Less(t, wS, 5*wT)
}

func TestRemainder(t *testing.T) {
	scalar := imatrix.MustFromRows([][]interval.Interval{{pt(1)}})
	r, err := expm.Remainder(scalar, 1, 2)
	require.NoError(t, err)
	x, _ := r.At(0, 0)
	// e - 5/2 ≤ T = (1/2)(1/3)/(3/4)
	assert.GreaterOrEqual(t, x.Sup(), math.E-2.5)
	assert.InDelta(t, 2.0/9.0, x.Sup(), 1e-12)
	assert.Equal(t, -x.Sup(), x.Inf())

	r, err = expm.Remainder(docMatrix(), 0, 3)
	require.NoError(t, err)
	r.Do(func(_, _ int, v interval.Interval) bool {
		assert.Zero(t, v.Sup())
		return true
	})

	unbounded := imatrix.MustFromRows([][]interval.Interval{
		{iv(0, math.Inf(1)), pt(0)},
		{pt(0), pt(1)},
	})
	r, err = expm.Remainder(unbounded, 1, 3)
	require.NoError(t, err)
	r.Do(func(_, _ int, v interval.Interval) bool {
		assert.True(t, math.IsInf(v.Sup(), 1))
		return true
	})
}

func TestLargeNormRemainderStillFinite(t *testing.T) {
	big := imatrix.MustFromRows([][]interval.Interval{{pt(50)}})
	r, err := expm.Remainder(big, 1, 2)
	require.NoError(t, err)
	x, _ := r.At(0, 0)
	assert.False(t, math.IsInf(x.Sup(), 0))
	assert.GreaterOrEqual(t, x.Sup(), math.Exp(50)-1-50-1250)
}

func TestCorrectionHull(t *testing.T) {
	a := docMatrix()
	e, err := expm.Remainder(a, 0.1, 1)
	require.NoError(t, err)
	f, err := expm.CorrectionHull(a, 0.1, 1)
	require.NoError(t, err)
	requireEqualMatrix(t, e, f)

	e, err = expm.Remainder(a, 0.1, 4)
	require.NoError(t, err)
	f, err = expm.CorrectionHull(a, 0.1, 4)
	require.NoError(t, err)
	requireSubset(t, e, f)

	// 1×1, p = 2: F = E + [-1/4·t², 0]·a²/2.
	scalar := imatrix.MustFromRows([][]interval.Interval{{pt(2)}})
	e, err = expm.Remainder(scalar, 1, 2)
	require.NoError(t, err)
	f, err = expm.CorrectionHull(scalar, 1, 2)
	require.NoError(t, err)
	ex, _ := e.At(0, 0)
	fx, _ := f.At(0, 0)
	assert.Equal(t, ex.Sup(), fx.Sup())
	assert.LessOrEqual(t, fx.Inf(), ex.Inf()-0.5)
	assert.InDelta(t, ex.Inf()-0.5, fx.Inf(), 1e-9)

	z, err := expm.CorrectionHull(a, 0, 4)
	require.NoError(t, err)
	z.Do(func(_, _ int, v interval.Interval) bool {
		assert.Zero(t, v.Sup())
		assert.Zero(t, v.Inf())
		return true
	})
}

func TestInputCorrection(t *testing.T) {
	a := docMatrix()
	e, err := expm.Remainder(a, 0.1, 3)
	require.NoError(t, err)
	et, err := imatrix.Scale(e, 0.1)
	require.NoError(t, err)
	f, err := expm.InputCorrection(a, 0.1, 3)
	require.NoError(t, err)
	requireSubset(t, et, f)

	// 1×1, p = 1: F = E·t + [-1/4·t², 0]·a/2.
	scalar := imatrix.MustFromRows([][]interval.Interval{{pt(2)}})
	f, err = expm.InputCorrection(scalar, 1, 1)
	require.NoError(t, err)
	e, err = expm.Remainder(scalar, 1, 1)
	require.NoError(t, err)
	ex, _ := e.At(0, 0)
	fx, _ := f.At(0, 0)
	assert.InDelta(t, ex.Inf()-0.25, fx.Inf(), 1e-9)
	assert.Equal(t, ex.Sup(), fx.Sup())
}

func TestAffineInput(t *testing.T) {
	a0, _ := matrix.FromRows([][]float64{{-1, 0.5}, {0.2, -0.8}})
	a1, _ := matrix.FromRows([][]float64{{0.1, 0}, {0, 0.1}})
	aff, err := imatrix.NewAffine1(a0, a1, iv(-1, 1))
	require.NoError(t, err)
	dense, err := aff.Materialize()
	require.NoError(t, err)

	want, err := expm.Exp(dense, 0.5, nil)
	require.NoError(t, err)
	got, err := expm.Exp(aff, 0.5, nil)
	require.NoError(t, err)
	requireEqualMatrix(t, want, got)
}

func TestPowerAlgorithmsAllEnclose(t *testing.T) {
	a := docMatrix()
	pm, err := imatrix.Sample(rand.New(rand.NewSource(3)), a)
	require.NoError(t, err)
	ref := floatExp(t, pm, 0.2)
	for _, alg := range []power.Algorithm{power.Multiply, power.Exponentiate, power.DecomposeBinary, power.Intersect} {
		e, err := expm.Overapproximation(a, 0.2, 9, expm.WithPowerAlgorithm(alg))
		require.NoError(t, err, alg.String())
		requireEncloses(t, e, ref, 1e-12)
	}
	assert.Panics(t, func() { expm.WithPowerAlgorithm(power.Algorithm(99)) })
}

func TestParseMethod(t *testing.T) {
	m, err := expm.ParseMethod("Horner", 7, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, expm.Horner{K: 7}, m)

	m, err = expm.ParseMethod(" scale_and_square ", 0, 4, 5)
	require.NoError(t, err)
	assert.Equal(t, expm.ScaleAndSquare{L: 5, P: 4}, m)
	assert.Equal(t, "scale_and_square(L=5, P=4)", m.String())

	m, err = expm.ParseMethod("taylor_under", 0, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, expm.TaylorUnderapproximation{P: 3}, m)

	_, err = expm.ParseMethod("pade", 0, 0, 0)
	require.True(t, errors.Is(err, expm.ErrUnsupported))

	assert.Equal(t, expm.ScaleAndSquare{L: 5, P: 4}, expm.DefaultMethod())
}
