// SPDX-License-Identifier: MIT

// Package interval - directed rounding kernels.
//
// Purpose:
//   - Provide lower/upper bounds of a+b, a-b, a*b and a/b computed under the
//     default round-to-nearest mode of Go floats.
//   - The exact rounding error is recovered with error-free transformations
//     (TwoSum for addition, FMA for products and quotients); the result is
//     moved one ulp outward only when the exact value lies on that side.
//
// Notes:
//   - Results that are exact stay exact, so integer-valued computations keep
//     their literal bounds.
//   - Near the subnormal range the FMA residual is no longer exact; such
//     results are widened unconditionally.

package interval

import "math"

// tinyThreshold bounds the region where FMA residuals may be inexact.
const tinyThreshold = 0x1p-960

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

func down(x float64) float64 { return math.Nextafter(x, negInf) }
func up(x float64) float64   { return math.Nextafter(x, posInf) }

// twoSum returns s = fl(a+b) and the exact residual e with a+b = s+e.
func twoSum(a, b float64) (s, e float64) {
	s = a + b
	bb := s - a
	e = (a - (s - bb)) + (b - bb)
	return s, e
}

func isTiny(x float64) bool {
	return x != 0 && math.Abs(x) < tinyThreshold
}

// addDown returns a value ≤ a+b.
func addDown(a, b float64) float64 {
	s, e := twoSum(a, b)
	if math.IsInf(s, 0) {
		if math.IsInf(s, 1) && !math.IsInf(a, 1) && !math.IsInf(b, 1) {
			return math.MaxFloat64 // finite overflow
		}
		return s
	}
	if e < 0 || isTiny(s) {
		return down(s)
	}
	return s
}

// addUp returns a value ≥ a+b.
func addUp(a, b float64) float64 {
	s, e := twoSum(a, b)
	if math.IsInf(s, 0) {
		if math.IsInf(s, -1) && !math.IsInf(a, -1) && !math.IsInf(b, -1) {
			return -math.MaxFloat64
		}
		return s
	}
	if e > 0 || isTiny(s) {
		return up(s)
	}
	return s
}

func subDown(a, b float64) float64 { return addDown(a, -b) }
func subUp(a, b float64) float64   { return addUp(a, -b) }

// mulDown returns a value ≤ a*b. Zero times anything is zero, which is the
// interval convention for unbounded endpoints.
func mulDown(a, b float64) float64 {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if math.IsInf(p, 0) {
		if math.IsInf(p, 1) && !math.IsInf(a, 0) && !math.IsInf(b, 0) {
			return math.MaxFloat64
		}
		return p
	}
	if p == 0 || isTiny(p) {
		return down(p) // underflow
	}
	if e := math.FMA(a, b, -p); e < 0 {
		return down(p)
	}
	return p
}

// mulUp returns a value ≥ a*b.
func mulUp(a, b float64) float64 {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if math.IsInf(p, 0) {
		if math.IsInf(p, -1) && !math.IsInf(a, 0) && !math.IsInf(b, 0) {
			return -math.MaxFloat64
		}
		return p
	}
	if p == 0 || isTiny(p) {
		return up(p)
	}
	if e := math.FMA(a, b, -p); e > 0 {
		return up(p)
	}
	return p
}

// quotientSide reports the side of the exact quotient a/b relative to
// q = fl(a/b): -1 below, +1 above, 0 exact or unknown-but-exact.
func quotientSide(a, b, q float64) int {
	r := math.FMA(-q, b, a) // a - q*b, exact for correctly rounded q
	switch {
	case r == 0:
		return 0
	case (r > 0) == (b > 0):
		return 1
	default:
		return -1
	}
}

// divDown returns a value ≤ a/b for b != 0.
func divDown(a, b float64) float64 {
	if a == 0 {
		return 0
	}
	if math.IsInf(a, 0) && math.IsInf(b, 0) {
		if (a > 0) == (b > 0) {
			return 0
		}
		return negInf
	}
	q := a / b
	if math.IsInf(b, 0) || math.IsInf(a, 0) {
		return q
	}
	if math.IsInf(q, 1) {
		return math.MaxFloat64
	}
	if math.IsInf(q, -1) {
		return q
	}
	if q == 0 || isTiny(q) || isTiny(b) {
		return down(q)
	}
	if quotientSide(a, b, q) < 0 {
		return down(q)
	}
	return q
}

// divUp returns a value ≥ a/b for b != 0.
func divUp(a, b float64) float64 {
	if a == 0 {
		return 0
	}
	if math.IsInf(a, 0) && math.IsInf(b, 0) {
		if (a > 0) == (b > 0) {
			return posInf
		}
		return 0
	}
	q := a / b
	if math.IsInf(b, 0) || math.IsInf(a, 0) {
		return q
	}
	if math.IsInf(q, -1) {
		return -math.MaxFloat64
	}
	if math.IsInf(q, 1) {
		return q
	}
	if q == 0 || isTiny(q) || isTiny(b) {
		return up(q)
	}
	if quotientSide(a, b, q) > 0 {
		return up(q)
	}
	return q
}
