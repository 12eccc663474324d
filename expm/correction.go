// SPDX-License-Identifier: MIT

package expm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/intervalm/imatrix"
	"github.com/katalvlaran/intervalm/interval"
	"github.com/katalvlaran/intervalm/power"
)

// correctionSlack is the relative widening applied to the two powers in
// correctionCoefficient; it exceeds the error of math.Pow with a rounded
// exponent by a wide margin for any practical i.
const correctionSlack = 0x1p-45

// correctionCoefficient returns a lower bound of
// i^(-i/(i-1)) - i^(-1/(i-1)) for i ≥ 2. The exact value lies in (-1, 0).
func correctionCoefficient(i int) float64 {
	x := float64(i)
	a := math.Pow(x, -x/(x-1))
	b := math.Pow(x, -1/(x-1))
	a = interval.LowerSub(a, interval.UpperMul(a, correctionSlack))
	b = interval.UpperAdd(b, interval.UpperMul(b, correctionSlack))

	return math.Max(interval.LowerSub(a, b), -1)
}

// correctionFactor encloses [cᵢ·tⁱ, 0] / i! given tⁱ and i! enclosures.
func correctionFactor(i int, tpow, fact interval.Interval) interval.Interval {
	lo := interval.Point(correctionCoefficient(i)).Mul(tpow).Inf()
	if math.IsNaN(lo) || lo > 0 {
		lo = 0
	}
	x, _ := interval.New(lo, 0)

	return x.Div(fact)
}

// CorrectionHull returns the correction matrix of the homogeneous
// discretization error:
//
//	F = E(t) + Σ_{i=2}^{p} [cᵢ·tⁱ, 0] · Aⁱ/i!,   cᵢ = i^(-i/(i-1)) - i^(-1/(i-1))
//
// where E(t) is the order-p Remainder.
//
// Errors: as Overapproximation.
func CorrectionHull(a imatrix.Matrix, t float64, p int, opts ...Option) (*imatrix.IntervalMatrix, error) {
	o := gatherOptions(opts...)
	if err := o.checkTime(opCorrHull, t); err != nil {
		return nil, err
	}
	if err := o.checkOrder(opCorrHull, "p", p); err != nil {
		return nil, err
	}
	m, err := prepare(opCorrHull, a)
	if err != nil {
		return nil, err
	}
	p = max(p, 0)

	f, err := remainder(m, t, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCorrHull, err)
	}
	if err = addCorrectionTerms(f, m, t, 2, p, 0, o); err != nil {
		return nil, fmt.Errorf("%s: %w", opCorrHull, err)
	}

	return f, nil
}

// InputCorrection returns the correction matrix of the input discretization
// error:
//
//	F = E(t)·t + Σ_{i=2}^{p+1} [cᵢ·tⁱ, 0] · A^(i-1)/i!
//
// Errors: as Overapproximation.
func InputCorrection(a imatrix.Matrix, t float64, p int, opts ...Option) (*imatrix.IntervalMatrix, error) {
	o := gatherOptions(opts...)
	if err := o.checkTime(opInputCorr, t); err != nil {
		return nil, err
	}
	if err := o.checkOrder(opInputCorr, "p", p); err != nil {
		return nil, err
	}
	m, err := prepare(opInputCorr, a)
	if err != nil {
		return nil, err
	}
	p = max(p, 0)

	e, err := remainder(m, t, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInputCorr, err)
	}
	f, err := imatrix.ScaleInterval(e, interval.Point(t))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInputCorr, err)
	}
	if err = addCorrectionTerms(f, m, t, 2, p+1, 1, o); err != nil {
		return nil, fmt.Errorf("%s: %w", opInputCorr, err)
	}

	return f, nil
}

// addCorrectionTerms adds Σ_{i=from}^{to} [cᵢtⁱ, 0]·A^(i-shift)/i! to f.
func addCorrectionTerms(f, m *imatrix.IntervalMatrix, t float64, from, to, shift int, o options) error {
	if to < from {
		return nil
	}
	pw, err := power.New(m, o.powerOptions()...)
	if err != nil {
		return err
	}
	tI := interval.Point(t)
	tpow, fact := tI, one
	for i := 2; i < from; i++ {
		tpow = tpow.Mul(tI)
		fact = fact.Mul(interval.Point(float64(i)))
	}

	var ai, term *imatrix.IntervalMatrix
	for i := from; i <= to; i++ {
		tpow = tpow.Mul(tI)
		fact = fact.Mul(interval.Point(float64(i)))
		if ai, err = pw.Advance(i - shift); err != nil {
			return err
		}
		if term, err = imatrix.ScaleInterval(ai, correctionFactor(i, tpow, fact)); err != nil {
			return err
		}
		if err = f.AddInPlace(term); err != nil {
			return err
		}
	}

	return nil
}
