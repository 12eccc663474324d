// SPDX-License-Identifier: MIT

package expm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/intervalm/imatrix"
	"github.com/katalvlaran/intervalm/interval"
)

// Exp encloses exp(A·t) with the given method; a nil method selects
// DefaultMethod. See the per-method entry points for the contracts.
func Exp(a imatrix.Matrix, t float64, method Method, opts ...Option) (*imatrix.IntervalMatrix, error) {
	if method == nil {
		method = DefaultMethod()
	}
	switch m := method.(type) {
	case Horner:
		return HornerExp(a, t, m.K, opts...)
	case TaylorOverapproximation:
		return Overapproximation(a, t, m.P, opts...)
	case TaylorUnderapproximation:
		return Underapproximation(a, t, m.P, opts...)
	case ScaleAndSquare:
		return ScaleSquare(a, t, m.L, m.P, opts...)
	default:
		return nil, fmt.Errorf("%s(%v): %w", opExp, method, ErrUnsupported)
	}
}

// HornerExp evaluates Σ_{i=0}^{K} (At)ⁱ/i! in nested form
//
//	I + At·(I + At/2·(I + … (I + At/K)))
//
// and adds the order-K Remainder.
//
// Errors:
//   - ErrDomain (t < 0, K < 1, or ‖A·t‖∞ ≥ K+2) unless WithoutValidation.
//   - ErrDimensionMismatch, imatrix.ErrNilMatrix.
func HornerExp(a imatrix.Matrix, t float64, k int, opts ...Option) (*imatrix.IntervalMatrix, error) {
	o := gatherOptions(opts...)
	if err := o.checkTime(opHorner, t); err != nil {
		return nil, err
	}
	if err := o.checkOrder(opHorner, "K", k); err != nil {
		return nil, err
	}
	m, err := prepare(opHorner, a)
	if err != nil {
		return nil, err
	}
	if o.validate {
		nrm, err := imatrix.OpNorm(m, math.Inf(1))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opHorner, err)
		}
		if at := interval.UpperMul(nrm, t); at >= float64(k+2) {
			return nil, fmt.Errorf("%s: ‖A·t‖∞ = %g ≥ K+2 = %d: %w", opHorner, at, k+2, ErrDomain)
		}
	}
	k = max(k, 1)

	tI := interval.Point(t)
	step := func(h *imatrix.IntervalMatrix, i int) (*imatrix.IntervalMatrix, error) {
		ati, err := imatrix.ScaleInterval(m, tI.Div(interval.Point(float64(i))))
		if err != nil {
			return nil, err
		}
		if h != nil {
			if ati, err = imatrix.Mul(ati, h, o.mul...); err != nil {
				return nil, err
			}
		}
		return imatrix.AddDiagonal(ati, one)
	}

	h, err := step(nil, k)
	for i := k - 1; i >= 1 && err == nil; i-- {
		h, err = step(h, i)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opHorner, err)
	}
	rem, err := remainder(m, t, k)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opHorner, err)
	}
	if err = h.AddInPlace(rem); err != nil {
		return nil, fmt.Errorf("%s: %w", opHorner, err)
	}

	return h, nil
}

// ScaleSquare encloses exp(A·t·2^-l) with the order-p Taylor
// overapproximation and squares the result l times with the exact interval
// square, using exp(A·t) = exp(A·t·2^-l)^(2^l).
//
// When t·2^-l is not exactly representable, l is lowered until it is, so the
// scaled time is never rounded.
//
// Errors:
//   - ErrDomain (t < 0, l < 1, p < 1) unless WithoutValidation.
//   - ErrDimensionMismatch, imatrix.ErrNilMatrix.
func ScaleSquare(a imatrix.Matrix, t float64, l, p int, opts ...Option) (*imatrix.IntervalMatrix, error) {
	o := gatherOptions(opts...)
	if err := o.checkTime(opScaleSq, t); err != nil {
		return nil, err
	}
	if err := o.checkOrder(opScaleSq, "L", l); err != nil {
		return nil, err
	}
	if err := o.checkOrder(opScaleSq, "p", p); err != nil {
		return nil, err
	}
	m, err := prepare(opScaleSq, a)
	if err != nil {
		return nil, err
	}

	l = max(l, 0)
	for l > 0 && math.Ldexp(math.Ldexp(t, -l), l) != t {
		l--
	}
	e, err := overapproximate(m, math.Ldexp(t, -l), p, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opScaleSq, err)
	}
	for i := 0; i < l; i++ {
		if e, err = imatrix.Square(e); err != nil {
			return nil, fmt.Errorf("%s: %w", opScaleSq, err)
		}
	}

	return e, nil
}
