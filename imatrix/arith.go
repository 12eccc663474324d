// SPDX-License-Identifier: MIT

package imatrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/intervalm/interval"
)

// sameShape validates non-nil operands with equal dimensions and returns
// their materialized forms.
func sameShape(tag string, a, b Matrix) (*IntervalMatrix, *IntervalMatrix, error) {
	ma, err := materialize(tag, a)
	if err != nil {
		return nil, nil, err
	}
	mb, err := materialize(tag, b)
	if err != nil {
		return nil, nil, err
	}
	if ma.r != mb.r || ma.c != mb.c {
		return nil, nil, imatrixErrorf(tag, fmt.Errorf("%dx%d vs %dx%d: %w", ma.r, ma.c, mb.r, mb.c, ErrDimensionMismatch))
	}

	return ma, mb, nil
}

// Add returns the entrywise enclosure of A + B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*IntervalMatrix, error) {
	ma, mb, err := sameShape(opAdd, a, b)
	if err != nil {
		return nil, err
	}
	out := newUnchecked(ma.r, ma.c)
	for idx := range out.data {
		out.data[idx] = ma.data[idx].Add(mb.data[idx])
	}

	return out, nil
}

// Sub returns the entrywise enclosure of A - B. Same contract as Add.
func Sub(a, b Matrix) (*IntervalMatrix, error) {
	ma, mb, err := sameShape(opSub, a, b)
	if err != nil {
		return nil, err
	}
	out := newUnchecked(ma.r, ma.c)
	for idx := range out.data {
		out.data[idx] = ma.data[idx].Sub(mb.data[idx])
	}

	return out, nil
}

// Neg returns -A.
func Neg(a Matrix) (*IntervalMatrix, error) {
	ma, err := materialize(opScale, a)
	if err != nil {
		return nil, err
	}
	out := newUnchecked(ma.r, ma.c)
	for idx := range out.data {
		out.data[idx] = ma.data[idx].Neg()
	}

	return out, nil
}

// Scale returns an enclosure of alpha·A.
// Errors: ErrNilMatrix, ErrDomain when alpha is NaN.
func Scale(a Matrix, alpha float64) (*IntervalMatrix, error) {
	if math.IsNaN(alpha) {
		return nil, imatrixErrorf(opScale, ErrDomain)
	}

	return ScaleInterval(a, interval.Point(alpha))
}

// ScaleInterval returns an enclosure of x·A for an interval scalar x.
func ScaleInterval(a Matrix, x interval.Interval) (*IntervalMatrix, error) {
	ma, err := materialize(opScale, a)
	if err != nil {
		return nil, err
	}
	out := newUnchecked(ma.r, ma.c)
	for idx := range out.data {
		out.data[idx] = x.Mul(ma.data[idx])
	}

	return out, nil
}

// AddInPlace replaces m with an enclosure of m + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch; m is unchanged on error.
func (m *IntervalMatrix) AddInPlace(b Matrix) error {
	_, mb, err := sameShape(opAdd, m, b)
	if err != nil {
		return err
	}
	for idx := range m.data {
		m.data[idx] = m.data[idx].Add(mb.data[idx])
	}

	return nil
}

// ScaleInPlace replaces m with an enclosure of alpha·m.
// Errors: ErrDomain when alpha is NaN; m is unchanged on error.
func (m *IntervalMatrix) ScaleInPlace(alpha float64) error {
	if math.IsNaN(alpha) {
		return imatrixErrorf(opScale, ErrDomain)
	}
	x := interval.Point(alpha)
	for idx := range m.data {
		m.data[idx] = x.Mul(m.data[idx])
	}

	return nil
}

// AddDiagonal returns A + x·I for a square A.
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
func AddDiagonal(a Matrix, x interval.Interval) (*IntervalMatrix, error) {
	ma, err := requireSquare(opAdd, a)
	if err != nil {
		return nil, err
	}
	out := ma.Clone()
	for i := 0; i < out.r; i++ {
		out.data[i*out.c+i] = out.data[i*out.c+i].Add(x)
	}

	return out, nil
}

// Transpose returns Aᵀ.
func Transpose(a Matrix) (*IntervalMatrix, error) {
	ma, err := materialize(opTranspose, a)
	if err != nil {
		return nil, err
	}
	out := newUnchecked(ma.c, ma.r)
	var i, j int
	for i = 0; i < ma.r; i++ {
		for j = 0; j < ma.c; j++ {
			out.data[j*ma.r+i] = ma.data[i*ma.c+j]
		}
	}

	return out, nil
}

// requireSquare materializes a and checks Rows == Cols.
func requireSquare(tag string, a Matrix) (*IntervalMatrix, error) {
	ma, err := materialize(tag, a)
	if err != nil {
		return nil, err
	}
	if ma.r != ma.c {
		return nil, imatrixErrorf(tag, fmt.Errorf("%dx%d is not square: %w", ma.r, ma.c, ErrDimensionMismatch))
	}

	return ma, nil
}
