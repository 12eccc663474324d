// SPDX-License-Identifier: MIT
package power_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/intervalm/imatrix"
	"github.com/katalvlaran/intervalm/interval"
	"github.com/katalvlaran/intervalm/power"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iv(lo, hi float64) interval.Interval { return interval.MustNew(lo, hi) }

func pt(x float64) interval.Interval { return interval.Point(x) }

// docBase is [2 [2,3]; 0 [-1,1]].
func docBase() *imatrix.IntervalMatrix {
	return imatrix.MustFromRows([][]interval.Interval{
		{pt(2), iv(2, 3)},
		{pt(0), iv(-1, 1)},
	})
}

func requireEqual(tb testing.TB, want, got *imatrix.IntervalMatrix) {
	tb.Helper()
	require.True(tb, imatrix.Equal(want, got), "want\n%vgot\n%v", want, got)
}

func TestNew(t *testing.T) {
	p, err := power.New(docBase())
	require.NoError(t, err)
	assert.Equal(t, 1, p.Index())
	assert.Equal(t, power.DefaultAlgorithm, p.Algorithm())
	requireEqual(t, docBase(), p.Matrix())
	requireEqual(t, docBase(), p.Base())

	rect, _ := imatrix.New(2, 3)
	_, err = power.New(rect)
	require.ErrorIs(t, err, power.ErrDimensionMismatch)
}

func TestIncrement_DocExample(t *testing.T) {
	p, err := power.New(docBase(), power.WithAlgorithm(power.Multiply))
	require.NoError(t, err)

	sq, err := p.Increment()
	require.NoError(t, err)
	requireEqual(t, imatrix.MustFromRows([][]interval.Interval{
		{pt(4), iv(2, 9)},
		{pt(0), iv(0, 1)},
	}), sq)
	assert.Equal(t, 2, p.Index())

	cube, err := p.IncrementCopy()
	require.NoError(t, err)
	requireEqual(t, imatrix.MustFromRows([][]interval.Interval{
		{pt(8), iv(-1, 21)},
		{pt(0), iv(-1, 1)},
	}), cube)
	assert.Equal(t, 2, p.Index(), "IncrementCopy must not advance")
	requireEqual(t, sq, p.Matrix())
}

func TestIncrement_IntersectTightens(t *testing.T) {
	p, err := power.New(docBase())
	require.NoError(t, err)
	_, err = p.Increment()
	require.NoError(t, err)

	cube, err := p.Increment()
	require.NoError(t, err)
	requireEqual(t, imatrix.MustFromRows([][]interval.Interval{
		{pt(8), iv(4, 21)},
		{pt(0), iv(-1, 1)},
	}), cube)
	assert.Equal(t, 3, p.Index())
}

func TestIncrement_ReturnsCopy(t *testing.T) {
	p, err := power.New(docBase())
	require.NoError(t, err)
	got, err := p.Increment()
	require.NoError(t, err)
	require.NoError(t, got.Set(0, 0, pt(-100)))
	x, _ := p.Matrix().At(0, 0)
	assert.True(t, x.Equal(pt(4)))
}

func TestAlgorithms_AgreeAtPowersOfTwo(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	m, err := imatrix.Rand(rng, 3, 3)
	require.NoError(t, err)
	m, err = imatrix.Scale(m, 0.25)
	require.NoError(t, err)

	algs := []power.Algorithm{power.Multiply, power.Exponentiate, power.DecomposeBinary, power.Intersect}
	for _, k := range []int{2, 4, 8} {
		ref, err := power.Pow(m, k)
		require.NoError(t, err)
		for _, alg := range algs {
			p, err := power.New(m, power.WithAlgorithm(alg))
			require.NoError(t, err)
			got, err := p.Advance(k)
			require.NoError(t, err)
			requireEqual(t, ref, got)
		}
	}
}

func TestExponentiate_MatchesPow(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	m, err := imatrix.Rand(rng, 3, 3)
	require.NoError(t, err)
	m, err = imatrix.Scale(m, 0.3)
	require.NoError(t, err)

	p, err := power.New(m, power.WithAlgorithm(power.Exponentiate))
	require.NoError(t, err)
	for k := 2; k <= 9; k++ {
		got, err := p.Increment()
		require.NoError(t, err)
		want, err := power.Pow(m, k)
		require.NoError(t, err)
		requireEqual(t, want, got)
	}
}

func TestAlgorithms_EncloseSampledPowers(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	m, err := imatrix.Rand(rng, 3, 3)
	require.NoError(t, err)
	m, err = imatrix.Scale(m, 0.2)
	require.NoError(t, err)

	// Every candidate encloses the intersect result, which itself is an enclosure.
	inter, err := power.New(m)
	require.NoError(t, err)
	mult, err := power.New(m, power.WithAlgorithm(power.Multiply))
	require.NoError(t, err)
	for k := 2; k <= 7; k++ {
		a, err := inter.Increment()
		require.NoError(t, err)
		b, err := mult.IncrementCopy(power.WithAlgorithm(power.Multiply))
		require.NoError(t, err)
		ok, err := imatrix.Subset(a, b)
		require.NoError(t, err)
		require.True(t, ok, "k=%d", k)
		_, err = mult.Increment()
		require.NoError(t, err)
	}
}

func TestPow_Errors(t *testing.T) {
	_, err := power.Pow(docBase(), 0)
	require.ErrorIs(t, err, power.ErrDomain)

	rect, _ := imatrix.New(1, 2)
	_, err = power.Pow(rect, 2)
	require.ErrorIs(t, err, power.ErrDimensionMismatch)

	one, err := power.Pow(docBase(), 1)
	require.NoError(t, err)
	requireEqual(t, docBase(), one)
}

func TestParseAlgorithm(t *testing.T) {
	for _, alg := range []power.Algorithm{power.Multiply, power.Exponentiate, power.DecomposeBinary, power.Intersect} {
		got, err := power.ParseAlgorithm(alg.String())
		require.NoError(t, err)
		assert.Equal(t, alg, got)
	}
	got, err := power.ParseAlgorithm("Power")
	require.NoError(t, err)
	assert.Equal(t, power.Exponentiate, got)

	_, err = power.ParseAlgorithm("cube")
	require.ErrorIs(t, err, power.ErrUnsupported)
	assert.Panics(t, func() { power.WithAlgorithm(power.Algorithm(42)) })
}

func TestAdvance_Backwards(t *testing.T) {
	p, err := power.New(docBase())
	require.NoError(t, err)
	_, err = p.Advance(3)
	require.NoError(t, err)
	_, err = p.Advance(2)
	require.ErrorIs(t, err, power.ErrDomain)
}

func TestSoundnessError(t *testing.T) {
	err := error(&power.SoundnessError{Index: 5, Row: 1, Col: 0, Wrapped: power.ErrSoundnessViolation})
	require.ErrorIs(t, err, power.ErrSoundnessViolation)

	var serr *power.SoundnessError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, 5, serr.Index)
	assert.Contains(t, err.Error(), "M^5 entry (1,0)")
}

func TestWithMulMode_FastStillEncloses(t *testing.T) {
	slow, err := power.New(docBase(), power.WithAlgorithm(power.Multiply))
	require.NoError(t, err)
	fast, err := power.New(docBase(), power.WithAlgorithm(power.Multiply), power.WithMulMode(imatrix.ModeFast))
	require.NoError(t, err)
	for k := 2; k <= 5; k++ {
		a, err := slow.Increment()
		require.NoError(t, err)
		b, err := fast.Increment()
		require.NoError(t, err)
		ok, err := imatrix.Subset(a, b)
		require.NoError(t, err)
		assert.True(t, ok, "k=%d", k)
	}
}
