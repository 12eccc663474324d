// SPDX-License-Identifier: MIT

package expm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/intervalm/imatrix"
	"github.com/katalvlaran/intervalm/interval"
	"github.com/katalvlaran/intervalm/matrix"
	"github.com/katalvlaran/intervalm/power"
)

// maxExtraTerms caps how many explicit series terms the remainder bound sums
// past the order p before it gives up and reports an unbounded remainder.
const maxExtraTerms = 200

// tailRatio is the geometric ratio at which the remainder tail is closed.
const tailRatio = 0.5

var one = interval.Point(1)

// prepare materializes A and checks that it is square.
func prepare(tag string, a imatrix.Matrix) (*imatrix.IntervalMatrix, error) {
	m, err := imatrix.Materialize(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	if !m.IsSquare() {
		return nil, fmt.Errorf("%s: %dx%d: %w", tag, m.Rows(), m.Cols(), ErrDimensionMismatch)
	}

	return m, nil
}

// Overapproximation returns an enclosure of {exp(M·t) : M ∈ A}:
//
//	I + A·t + A²·t²/2 + Σ_{i=3}^{p} Aⁱ·tⁱ/i! + E(t)
//
// The linear and quadratic terms use the single-use expression form, the
// higher powers come from an incremental power wrapper and E(t) is Remainder.
//
// Errors:
//   - ErrDomain (t < 0, p < 1) unless WithoutValidation.
//   - ErrDimensionMismatch (A not square), imatrix.ErrNilMatrix.
//
// Complexity:
//   - Time O(p·n³) plus the remainder, Space O(n²).
func Overapproximation(a imatrix.Matrix, t float64, p int, opts ...Option) (*imatrix.IntervalMatrix, error) {
	o := gatherOptions(opts...)
	if err := o.checkTime(opOver, t); err != nil {
		return nil, err
	}
	if err := o.checkOrder(opOver, "p", p); err != nil {
		return nil, err
	}
	m, err := prepare(opOver, a)
	if err != nil {
		return nil, err
	}

	return overapproximate(m, t, p, o)
}

func overapproximate(m *imatrix.IntervalMatrix, t float64, p int, o options) (*imatrix.IntervalMatrix, error) {
	p = max(p, 0)
	sum, err := taylorPolynomial(m, t, p, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opOver, err)
	}
	rem, err := remainder(m, t, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opOver, err)
	}
	if err = sum.AddInPlace(rem); err != nil {
		return nil, fmt.Errorf("%s: %w", opOver, err)
	}

	return sum, nil
}

// taylorPolynomial encloses Σ_{i=0}^{p} Aⁱtⁱ/i! over A.
func taylorPolynomial(m *imatrix.IntervalMatrix, t float64, p int, o options) (*imatrix.IntervalMatrix, error) {
	if p == 0 {
		return imatrix.Identity(m.Rows())
	}
	tI := interval.Point(t)
	half := tI.Sqr().Scale(0.5)

	var sum *imatrix.IntervalMatrix
	var err error
	if p == 1 {
		sum, err = imatrix.ScaleInterval(m, tI)
	} else {
		sum, err = imatrix.QuadraticExpansionInterval(m, tI, half)
	}
	if err != nil {
		return nil, err
	}
	if sum, err = imatrix.AddDiagonal(sum, one); err != nil {
		return nil, err
	}
	if p < 3 {
		return sum, nil
	}

	pw, err := power.New(m, o.powerOptions()...)
	if err != nil {
		return nil, err
	}
	if _, err = pw.Increment(); err != nil {
		return nil, err
	}
	coef := half
	var ai, term *imatrix.IntervalMatrix
	for i := 3; i <= p; i++ {
		if ai, err = pw.Increment(); err != nil {
			return nil, err
		}
		coef = coef.Mul(tI).Div(interval.Point(float64(i)))
		if term, err = imatrix.ScaleInterval(ai, coef); err != nil {
			return nil, err
		}
		if err = sum.AddInPlace(term); err != nil {
			return nil, err
		}
	}

	return sum, nil
}

// Remainder returns the symmetric matrix [-T, T] bounding the truncation
// error of the order-p Taylor series of exp(M·t) for every M ∈ A.
//
// Implementation:
//   - C = max(|inf A|, |sup A|) entrywise, so |Mⁱ| ≤ Cⁱ for every M ∈ A.
//   - T = Σ_{i=p+1}^{N} (Ct)ⁱ/i! entrywise plus the geometric tail
//     ‖(Ct)^N/N!‖∞ · (c/(N+1)) / (1 - c/(N+2)) with c = ‖Ct‖∞.
//   - N grows from p until c/(N+2) ≤ 1/2, for at most 200 extra terms; if the
//     tail ratio is still ≥ 1 the remainder is (-Inf, +Inf).
//
// Errors: as Overapproximation.
func Remainder(a imatrix.Matrix, t float64, p int, opts ...Option) (*imatrix.IntervalMatrix, error) {
	o := gatherOptions(opts...)
	if err := o.checkTime(opRemainder, t); err != nil {
		return nil, err
	}
	if err := o.checkOrder(opRemainder, "p", p); err != nil {
		return nil, err
	}
	m, err := prepare(opRemainder, a)
	if err != nil {
		return nil, err
	}

	return remainder(m, t, max(p, 0))
}

func remainder(m *imatrix.IntervalMatrix, t float64, p int) (*imatrix.IntervalMatrix, error) {
	n := m.Rows()
	lo, hi, err := imatrix.Split(m)
	if err != nil {
		return nil, err
	}
	mag, err := matrix.AbsMax(lo, hi)
	if err != nil {
		return nil, err
	}

	tI := interval.Point(math.Abs(t))
	ct, _ := imatrix.New(n, n)
	c := 0.0
	mag.Do(func(i, j int, v float64) bool {
		_ = ct.Set(i, j, interval.Point(v).Mul(tI))
		return true
	})
	for i := 0; i < n; i++ {
		c = math.Max(c, rowSumUp(ct, i))
	}
	if math.IsInf(c, 0) || math.IsNaN(c) {
		return filled(n, interval.Entire()), nil
	}

	slow := imatrix.WithMulMode(imatrix.ModeSlow)
	pk, _ := imatrix.Identity(n)
	for k := 1; k <= p; k++ {
		if pk, err = nextTerm(pk, ct, k, slow); err != nil {
			return nil, err
		}
	}
	sum, _ := imatrix.New(n, n)
	last := p
	for last-p < maxExtraTerms && interval.UpperDiv(c, float64(last+2)) > tailRatio {
		last++
		if pk, err = nextTerm(pk, ct, last, slow); err != nil {
			return nil, err
		}
		if err = sum.AddInPlace(pk); err != nil {
			return nil, err
		}
	}

	tail := math.Inf(1)
	if q := interval.UpperDiv(c, float64(last+2)); q < 1 {
		pn := 0.0
		for i := 0; i < n; i++ {
			pn = math.Max(pn, rowSumUp(pk, i))
		}
		num := interval.UpperMul(pn, interval.UpperDiv(c, float64(last+1)))
		tail = interval.UpperDiv(num, interval.LowerSub(1, q))
	}

	out, _ := imatrix.New(n, n)
	sum.Do(func(i, j int, v interval.Interval) bool {
		_ = out.Set(i, j, interval.Symmetric(interval.UpperAdd(v.Sup(), tail)))
		return true
	})

	return out, nil
}

// nextTerm returns an enclosure of P·Ct/k.
func nextTerm(pk, ct *imatrix.IntervalMatrix, k int, opts ...imatrix.Option) (*imatrix.IntervalMatrix, error) {
	prod, err := imatrix.Mul(pk, ct, opts...)
	if err != nil {
		return nil, err
	}

	return imatrix.ScaleInterval(prod, one.Div(interval.Point(float64(k))))
}

// rowSumUp returns an upper bound of Σ_j sup(m[i, j]).
func rowSumUp(m *imatrix.IntervalMatrix, i int) float64 {
	xs := make([]float64, m.Cols())
	for j := range xs {
		v, _ := m.At(i, j)
		xs[j] = v.Sup()
	}

	return interval.UpperSum(xs...)
}

// filled returns the n×n matrix with every entry equal to x.
func filled(n int, x interval.Interval) *imatrix.IntervalMatrix {
	out, _ := imatrix.New(n, n)
	out.Do(func(i, j int, _ interval.Interval) bool {
		_ = out.Set(i, j, x)
		return true
	})

	return out
}
