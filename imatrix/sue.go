// SPDX-License-Identifier: MIT

// Package imatrix - single-use expression (SUE) kernels.
//
// Interval arithmetic overestimates whenever a variable occurs more than once
// in an expression. Rewriting each entry of A² and αA + βA² so that every
// entry of A occurs once (or once inside an exactly evaluated square) yields
// the exact range of that entry, see Kosheleva, Kreinovich, Mayer, Nguyen,
// "Computing the cube of an interval matrix is NP-hard" (SAC 2005), §6.

package imatrix

import (
	"github.com/katalvlaran/intervalm/interval"
)

// offDiagonalSum returns Σ_{k ∉ {i, j}} a_ik·a_kj (k ≠ j when i == j).
func offDiagonalSum(a *IntervalMatrix, i, j int) interval.Interval {
	n := a.c
	var acc interval.Interval
	for k := 0; k < n; k++ {
		if k == i || k == j {
			continue
		}
		acc = acc.Add(a.data[i*n+k].Mul(a.data[k*n+j]))
	}

	return acc
}

// Square returns an enclosure of A² that is exact entrywise (up to rounding).
//
// Implementation:
//   - Diagonal:     (A²)_jj = Σ_{k≠j} a_jk·a_kj + a_jj²   (interval square).
//   - Off-diagonal: (A²)_ij = Σ_{k∉{i,j}} a_ik·a_kj + (a_ii + a_jj)·a_ij.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Square(a Matrix) (*IntervalMatrix, error) {
	ma, err := requireSquare(opSquare, a)
	if err != nil {
		return nil, err
	}
	n := ma.r
	out := newUnchecked(n, n)
	var i, j int
	var s interval.Interval
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			s = offDiagonalSum(ma, i, j)
			if i == j {
				out.data[i*n+j] = s.Add(ma.data[i*n+i].Sqr())
				continue
			}
			out.data[i*n+j] = s.Add(ma.data[i*n+i].Add(ma.data[j*n+j]).Mul(ma.data[i*n+j]))
		}
	}

	return out, nil
}

// QuadraticExpansion returns an enclosure of αA + βA² using the single-use
// expression form. See QuadraticExpansionInterval.
func QuadraticExpansion(a Matrix, alpha, beta float64) (*IntervalMatrix, error) {
	return QuadraticExpansionInterval(a, interval.Point(alpha), interval.Point(beta))
}

// QuadraticExpansionInterval returns an enclosure of αA + βA² for interval
// coefficients (α and β are taken as enclosures of exact reals).
//
// Implementation:
//   - Diagonal:     b_jj = β·Σ_{k≠j} a_jk·a_kj + (α + β·a_jj)·a_jj.
//   - Off-diagonal: b_ij = β·Σ_{k∉{i,j}} a_ik·a_kj + (α + β·a_ii + β·a_jj)·a_ij.
//
// Behavior highlights:
//   - Every result entry is contained in the naive αA + β(A·A) and is
//     strictly narrower whenever the naive product repeats an uncertain entry.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func QuadraticExpansionInterval(a Matrix, alpha, beta interval.Interval) (*IntervalMatrix, error) {
	ma, err := requireSquare(opQuadExp, a)
	if err != nil {
		return nil, err
	}
	n := ma.r
	out := newUnchecked(n, n)
	var i, j int
	var s, coef, aii interval.Interval
	for i = 0; i < n; i++ {
		aii = ma.data[i*n+i]
		for j = 0; j < n; j++ {
			s = beta.Mul(offDiagonalSum(ma, i, j))
			if i == j {
				coef = alpha.Add(beta.Mul(aii))
				out.data[i*n+i] = s.Add(coef.Mul(aii))
				continue
			}
			coef = alpha.Add(beta.Mul(aii)).Add(beta.Mul(ma.data[j*n+j]))
			out.data[i*n+j] = s.Add(coef.Mul(ma.data[i*n+j]))
		}
	}

	return out, nil
}

// NaiveQuadratic returns αA + β(A·A) evaluated term by term with the slow
// product. It is the reference the SUE form is measured against.
func NaiveQuadratic(a Matrix, alpha, beta float64, opts ...Option) (*IntervalMatrix, error) {
	if _, err := requireSquare(opQuadExp, a); err != nil {
		return nil, err
	}
	sq, err := Mul(a, a, opts...)
	if err != nil {
		return nil, err
	}
	if err = sq.ScaleInPlace(beta); err != nil {
		return nil, err
	}
	lin, err := Scale(a, alpha)
	if err != nil {
		return nil, err
	}

	return Add(lin, sq)
}
