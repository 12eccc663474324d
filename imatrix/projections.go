// SPDX-License-Identifier: MIT

package imatrix

import (
	"fmt"

	"github.com/katalvlaran/intervalm/interval"
	"github.com/katalvlaran/intervalm/matrix"
)

// project maps every entry through f into a new real matrix.
// Empty entries have no projection and yield ErrDomain.
func project(tag string, a Matrix, f func(interval.Interval) float64) (*matrix.Dense, error) {
	ma, err := materialize(tag, a)
	if err != nil {
		return nil, err
	}
	out, err := matrix.NewDense(ma.r, ma.c)
	if err != nil {
		return nil, imatrixErrorf(tag, err)
	}
	var i, j int
	var x interval.Interval
	for i = 0; i < ma.r; i++ {
		for j = 0; j < ma.c; j++ {
			x = ma.at(i, j)
			if x.IsEmpty() {
				return nil, indexErrorf(tag, i, j, fmt.Errorf("empty entry: %w", ErrDomain))
			}
			if err = out.Set(i, j, f(x)); err != nil {
				return nil, imatrixErrorf(tag, err)
			}
		}
	}

	return out, nil
}

// Inf returns the matrix of lower bounds.
func Inf(a Matrix) (*matrix.Dense, error) {
	return project(opProject, a, interval.Interval.Inf)
}

// Sup returns the matrix of upper bounds.
func Sup(a Matrix) (*matrix.Dense, error) {
	return project(opProject, a, interval.Interval.Sup)
}

// Mid returns the matrix of midpoints; unbounded sides are clamped to
// ±MaxFloat64 so the result stays finite.
func Mid(a Matrix) (*matrix.Dense, error) {
	return project(opProject, a, interval.Interval.Mid)
}

// Diam returns the matrix of diameters (sup - inf, rounded up).
func Diam(a Matrix) (*matrix.Dense, error) {
	return project(opProject, a, interval.Interval.Diam)
}

// Radius returns the matrix of radii about Mid(a), rounded up.
func Radius(a Matrix) (*matrix.Dense, error) {
	return project(opProject, a, interval.Interval.Radius)
}

// MidpointRadius splits A into a center C and a nonnegative radius S with
// C ± S ⊇ A entrywise.
func MidpointRadius(a Matrix) (center, radius *matrix.Dense, err error) {
	if center, err = Mid(a); err != nil {
		return nil, nil, err
	}
	if radius, err = Radius(a); err != nil {
		return nil, nil, err
	}

	return center, radius, nil
}

// FromMidRad builds C ± S: entry (i, j) encloses [C[i,j] - S[i,j], C[i,j] + S[i,j]].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (C and S differ in shape),
//     ErrDomain (a negative radius).
func FromMidRad(center, radius *matrix.Dense) (*IntervalMatrix, error) {
	if center == nil || radius == nil {
		return nil, imatrixErrorf(opFromMidRad, ErrNilMatrix)
	}
	if err := matrix.ValidateSameShape(center, radius); err != nil {
		return nil, imatrixErrorf(opFromMidRad, err)
	}
	out := newUnchecked(center.Rows(), center.Cols())
	var i, j int
	var c, r float64
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			c, _ = center.At(i, j)
			r, _ = radius.At(i, j)
			x, err := interval.MidRad(c, r)
			if err != nil {
				return nil, indexErrorf(opFromMidRad, i, j, err)
			}
			out.data[i*out.c+j] = x
		}
	}

	return out, nil
}
