// SPDX-License-Identifier: MIT

// Package interval implements closed real intervals [lo, hi] over float64
// with outward rounding: every operation returns an interval that contains
// the exact mathematical result for all points of its operands.
//
// The empty set is a dedicated sentinel (see Empty); an Interval is never
// encoded with lo > hi. The zero value is the point interval [0, 0].
//
// Unbounded endpoints are allowed: lo may be -Inf and hi may be +Inf, which
// is how divisions by intervals containing zero and overflowing remainders
// are reported.
package interval

import (
	"errors"
	"fmt"
	"math"
)

// ErrDomain is returned for bounds that do not describe a valid interval
// (NaN, lo > hi, lo = +Inf, hi = -Inf) and for negative radii.
var ErrDomain = errors.New("interval: domain error")

// Interval is a closed interval [lo, hi] or the empty set.
type Interval struct {
	lo, hi float64 // lo ≤ hi; both NaN marks the empty set
}

// Compile-time check for fmt.Stringer conformance.
var _ fmt.Stringer = Interval{}

// New returns [lo, hi].
//
// Errors:
//   - ErrDomain when a bound is NaN, lo > hi, lo = +Inf or hi = -Inf.
func New(lo, hi float64) (Interval, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi || math.IsInf(lo, 1) || math.IsInf(hi, -1) {
		return Interval{}, fmt.Errorf("New(%g, %g): %w", lo, hi, ErrDomain)
	}

	return Interval{lo: lo, hi: hi}, nil
}

// MustNew is like New but panics on invalid bounds. Intended for literals.
func MustNew(lo, hi float64) Interval {
	x, err := New(lo, hi)
	if err != nil {
		panic(err)
	}

	return x
}

// Point returns the degenerate interval [x, x]. NaN yields Empty.
func Point(x float64) Interval {
	if math.IsNaN(x) {
		return Empty()
	}

	return Interval{lo: x, hi: x}
}

// MidRad returns an enclosure of [m - r, m + r].
//
// Errors:
//   - ErrDomain when r < 0 or either argument is NaN.
func MidRad(m, r float64) (Interval, error) {
	if math.IsNaN(m) || math.IsNaN(r) || r < 0 {
		return Interval{}, fmt.Errorf("MidRad(%g, %g): %w", m, r, ErrDomain)
	}

	return Interval{lo: subDown(m, r), hi: addUp(m, r)}, nil
}

// Empty returns the empty interval.
func Empty() Interval { return Interval{lo: math.NaN(), hi: math.NaN()} }

// Entire returns (-Inf, +Inf).
func Entire() Interval { return Interval{lo: negInf, hi: posInf} }

// Symmetric returns [-r, r] for r ≥ 0 (negative r is treated as |r|).
func Symmetric(r float64) Interval {
	r = math.Abs(r)
	return Interval{lo: -r, hi: r}
}

// IsEmpty reports whether x is the empty set.
func (x Interval) IsEmpty() bool { return math.IsNaN(x.lo) }

// IsPoint reports whether x is a nonempty degenerate interval.
func (x Interval) IsPoint() bool { return !x.IsEmpty() && x.lo == x.hi }

// IsBounded reports whether both endpoints are finite.
func (x Interval) IsBounded() bool {
	return !x.IsEmpty() && !math.IsInf(x.lo, 0) && !math.IsInf(x.hi, 0)
}

// Inf returns the lower bound (NaN for the empty set).
func (x Interval) Inf() float64 { return x.lo }

// Sup returns the upper bound (NaN for the empty set).
func (x Interval) Sup() float64 { return x.hi }

// Mid returns a midpoint inside x. Unbounded sides are clamped to
// ±MaxFloat64 so the result stays finite for nonempty x.
func (x Interval) Mid() float64 {
	switch {
	case x.IsEmpty():
		return math.NaN()
	case x.lo == x.hi:
		return x.lo
	case math.IsInf(x.lo, -1) && math.IsInf(x.hi, 1):
		return 0
	case math.IsInf(x.lo, -1):
		return -math.MaxFloat64
	case math.IsInf(x.hi, 1):
		return math.MaxFloat64
	}
	m := 0.5*x.lo + 0.5*x.hi
	// keep m inside [lo, hi] even after rounding of the sum
	return math.Min(math.Max(m, x.lo), x.hi)
}

// Radius returns r such that [Mid()-r, Mid()+r] ⊇ x.
func (x Interval) Radius() float64 {
	if x.IsEmpty() {
		return math.NaN()
	}
	m := x.Mid()

	return math.Max(subUp(m, x.lo), subUp(x.hi, m))
}

// MidRad splits x into a center and a radius with x ⊆ [c - r, c + r].
func (x Interval) MidRad() (c, r float64) { return x.Mid(), x.Radius() }

// Diam returns an upper bound of hi - lo.
func (x Interval) Diam() float64 {
	if x.IsEmpty() {
		return math.NaN()
	}

	return subUp(x.hi, x.lo)
}

// Mag returns max |v| over v ∈ x.
func (x Interval) Mag() float64 {
	if x.IsEmpty() {
		return math.NaN()
	}

	return math.Max(math.Abs(x.lo), math.Abs(x.hi))
}

// Mig returns min |v| over v ∈ x.
func (x Interval) Mig() float64 {
	switch {
	case x.IsEmpty():
		return math.NaN()
	case x.lo > 0:
		return x.lo
	case x.hi < 0:
		return -x.hi
	}

	return 0
}

// Add returns an enclosure of x + y.
func (x Interval) Add(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}

	return Interval{lo: addDown(x.lo, y.lo), hi: addUp(x.hi, y.hi)}
}

// Sub returns an enclosure of x - y.
func (x Interval) Sub(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}

	return Interval{lo: subDown(x.lo, y.hi), hi: subUp(x.hi, y.lo)}
}

// Neg returns -x (exact).
func (x Interval) Neg() Interval {
	if x.IsEmpty() {
		return x
	}

	return Interval{lo: -x.hi, hi: -x.lo}
}

// Mul returns an enclosure of x * y.
func (x Interval) Mul(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	if (x.lo == 0 && x.hi == 0) || (y.lo == 0 && y.hi == 0) {
		return Interval{}
	}
	// Sign-case shortcuts avoid four directed products in the common case.
	switch {
	case x.lo >= 0 && y.lo >= 0:
		return Interval{lo: mulDown(x.lo, y.lo), hi: mulUp(x.hi, y.hi)}
	case x.hi <= 0 && y.hi <= 0:
		return Interval{lo: mulDown(x.hi, y.hi), hi: mulUp(x.lo, y.lo)}
	case x.lo >= 0 && y.hi <= 0:
		return Interval{lo: mulDown(x.hi, y.lo), hi: mulUp(x.lo, y.hi)}
	case x.hi <= 0 && y.lo >= 0:
		return Interval{lo: mulDown(x.lo, y.hi), hi: mulUp(x.hi, y.lo)}
	}
	lo := math.Min(
		math.Min(mulDown(x.lo, y.lo), mulDown(x.lo, y.hi)),
		math.Min(mulDown(x.hi, y.lo), mulDown(x.hi, y.hi)),
	)
	hi := math.Max(
		math.Max(mulUp(x.lo, y.lo), mulUp(x.lo, y.hi)),
		math.Max(mulUp(x.hi, y.lo), mulUp(x.hi, y.hi)),
	)

	return Interval{lo: lo, hi: hi}
}

// Scale returns an enclosure of α·x.
func (x Interval) Scale(alpha float64) Interval { return x.Mul(Point(alpha)) }

// Div returns an enclosure of x / y. A divisor containing zero yields
// Entire (or Empty when y = [0, 0]).
func (x Interval) Div(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	if y.lo == 0 && y.hi == 0 {
		return Empty()
	}
	if y.lo <= 0 && y.hi >= 0 {
		return Entire()
	}
	lo := math.Min(
		math.Min(divDown(x.lo, y.lo), divDown(x.lo, y.hi)),
		math.Min(divDown(x.hi, y.lo), divDown(x.hi, y.hi)),
	)
	hi := math.Max(
		math.Max(divUp(x.lo, y.lo), divUp(x.lo, y.hi)),
		math.Max(divUp(x.hi, y.lo), divUp(x.hi, y.hi)),
	)

	return Interval{lo: lo, hi: hi}
}

// Sqr returns an enclosure of {v² : v ∈ x}; tighter than x.Mul(x) whenever
// x straddles zero.
func (x Interval) Sqr() Interval {
	switch {
	case x.IsEmpty():
		return x
	case x.lo >= 0:
		return Interval{lo: mulDown(x.lo, x.lo), hi: mulUp(x.hi, x.hi)}
	case x.hi <= 0:
		return Interval{lo: mulDown(x.hi, x.hi), hi: mulUp(x.lo, x.lo)}
	}
	m := x.Mag()

	return Interval{lo: 0, hi: mulUp(m, m)}
}

// Abs returns {|v| : v ∈ x}.
func (x Interval) Abs() Interval {
	if x.IsEmpty() {
		return x
	}

	return Interval{lo: x.Mig(), hi: x.Mag()}
}

// Intersect returns x ∩ y; disjoint operands give Empty.
func (x Interval) Intersect(y Interval) Interval {
	if x.IsEmpty() || y.IsEmpty() {
		return Empty()
	}
	lo, hi := math.Max(x.lo, y.lo), math.Min(x.hi, y.hi)
	if lo > hi {
		return Empty()
	}

	return Interval{lo: lo, hi: hi}
}

// Hull returns the convex hull of x ∪ y.
func (x Interval) Hull(y Interval) Interval {
	switch {
	case x.IsEmpty():
		return y
	case y.IsEmpty():
		return x
	}

	return Interval{lo: math.Min(x.lo, y.lo), hi: math.Max(x.hi, y.hi)}
}

// Subset reports x ⊆ y. The empty set is a subset of everything.
func (x Interval) Subset(y Interval) bool {
	if x.IsEmpty() {
		return true
	}
	if y.IsEmpty() {
		return false
	}

	return y.lo <= x.lo && x.hi <= y.hi
}

// Interior reports whether x lies in the interior of y.
func (x Interval) Interior(y Interval) bool {
	if x.IsEmpty() {
		return true
	}
	if y.IsEmpty() {
		return false
	}
	loOK := y.lo < x.lo || math.IsInf(y.lo, -1)
	hiOK := x.hi < y.hi || math.IsInf(y.hi, 1)

	return loOK && hiOK
}

// Contains reports v ∈ x.
func (x Interval) Contains(v float64) bool {
	return !x.IsEmpty() && x.lo <= v && v <= x.hi
}

// Equal reports set equality.
func (x Interval) Equal(y Interval) bool {
	if x.IsEmpty() || y.IsEmpty() {
		return x.IsEmpty() && y.IsEmpty()
	}

	return x.lo == y.lo && x.hi == y.hi
}

// String renders x as "[lo, hi]" or "∅".
func (x Interval) String() string {
	if x.IsEmpty() {
		return "∅"
	}

	return fmt.Sprintf("[%g, %g]", x.lo, x.hi)
}

// UpperSum returns an upper bound of Σ xs for finite or +Inf values.
// Used by norm and remainder computations that need one-sided bounds.
func UpperSum(xs ...float64) float64 {
	s := 0.0
	for _, v := range xs {
		s = addUp(s, v)
	}

	return s
}

// UpperMul returns an upper bound of a*b.
func UpperMul(a, b float64) float64 { return mulUp(a, b) }

// LowerMul returns a lower bound of a*b.
func LowerMul(a, b float64) float64 { return mulDown(a, b) }

// UpperDiv returns an upper bound of a/b for b != 0.
func UpperDiv(a, b float64) float64 { return divUp(a, b) }

// LowerDiv returns a lower bound of a/b for b != 0.
func LowerDiv(a, b float64) float64 { return divDown(a, b) }

// UpperAdd returns an upper bound of a+b.
func UpperAdd(a, b float64) float64 { return addUp(a, b) }

// LowerSub returns a lower bound of a-b.
func LowerSub(a, b float64) float64 { return subDown(a, b) }

// UpperSub returns an upper bound of a-b.
func UpperSub(a, b float64) float64 { return subUp(a, b) }
