// SPDX-License-Identifier: MIT

package imatrix

import (
	"fmt"

	"github.com/katalvlaran/intervalm/interval"
	"github.com/katalvlaran/intervalm/matrix"
)

// Subset reports whether A ⊆ B entrywise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Subset(a, b Matrix) (bool, error) {
	ma, mb, err := sameShape(opSubset, a, b)
	if err != nil {
		return false, err
	}
	for idx := range ma.data {
		if !ma.data[idx].Subset(mb.data[idx]) {
			return false, nil
		}
	}

	return true, nil
}

// ContainsMatrix reports whether the real matrix m is a member of A, that is
// m[i,j] ∈ A[i,j] for every entry.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ContainsMatrix(a Matrix, m *matrix.Dense) (bool, error) {
	ma, err := materialize(opContains, a)
	if err != nil {
		return false, err
	}
	if m == nil {
		return false, imatrixErrorf(opContains, ErrNilMatrix)
	}
	if m.Rows() != ma.r || m.Cols() != ma.c {
		return false, imatrixErrorf(opContains, fmt.Errorf("%dx%d vs %dx%d: %w", ma.r, ma.c, m.Rows(), m.Cols(), ErrDimensionMismatch))
	}
	inside := true
	m.Do(func(i, j int, v float64) bool {
		inside = ma.at(i, j).Contains(v)
		return inside
	})

	return inside, nil
}

// Intersect returns A ∩ B entrywise. Disjoint entries become interval.Empty();
// use HasEmpty to detect them.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Intersect(a, b Matrix) (*IntervalMatrix, error) {
	ma, mb, err := sameShape(opIntersect, a, b)
	if err != nil {
		return nil, err
	}
	out := newUnchecked(ma.r, ma.c)
	for idx := range out.data {
		out.data[idx] = ma.data[idx].Intersect(mb.data[idx])
	}

	return out, nil
}

// Hull returns the entrywise interval hull of A and B, the smallest interval
// matrix containing both.
func Hull(a, b Matrix) (*IntervalMatrix, error) {
	ma, mb, err := sameShape(opHull, a, b)
	if err != nil {
		return nil, err
	}
	out := newUnchecked(ma.r, ma.c)
	for idx := range out.data {
		out.data[idx] = ma.data[idx].Hull(mb.data[idx])
	}

	return out, nil
}

// Union is an alias of Hull: interval matrices are closed under hull, not
// under set union.
func Union(a, b Matrix) (*IntervalMatrix, error) { return Hull(a, b) }

// Split returns the lower and upper bound matrices of A, the inverse of
// FromBounds.
func Split(a Matrix) (lo, hi *matrix.Dense, err error) {
	if lo, err = Inf(a); err != nil {
		return nil, nil, err
	}
	if hi, err = Sup(a); err != nil {
		return nil, nil, err
	}

	return lo, hi, nil
}

// IntersectAll folds Intersect over ms and reports the first empty entry.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch from Intersect.
//   - ErrSoundnessViolation (wrapped with the entry coordinates) when some
//     entry has no common point.
func IntersectAll(ms ...Matrix) (*IntervalMatrix, error) {
	if len(ms) == 0 {
		return nil, imatrixErrorf(opIntersect, ErrNilMatrix)
	}
	acc, err := materialize(opIntersect, ms[0])
	if err != nil {
		return nil, err
	}
	acc = acc.Clone()
	for _, m := range ms[1:] {
		if acc, err = Intersect(acc, m); err != nil {
			return nil, err
		}
	}
	var emptyErr error
	acc.Do(func(i, j int, v interval.Interval) bool {
		if v.IsEmpty() {
			emptyErr = indexErrorf(opIntersect, i, j, ErrSoundnessViolation)
			return false
		}
		return true
	})
	if emptyErr != nil {
		return nil, emptyErr
	}

	return acc, nil
}
