// SPDX-License-Identifier: MIT

package imatrix

import (
	"math"

	"github.com/katalvlaran/intervalm/matrix"
)

// validNorm reports whether p ∈ {1, 2, +Inf}.
func validNorm(p float64) bool { return p == 1 || p == 2 || math.IsInf(p, 1) }

// OpNorm returns the operator p-norm of the entrywise magnitude matrix
// max(|inf A|, |sup A|), for p ∈ {1, 2, +Inf}. It bounds ‖M‖_p for every
// real M ∈ A.
//
// Errors:
//   - ErrDomain for any other p or an empty entry; ErrNilMatrix.
func OpNorm(a Matrix, p float64) (float64, error) {
	if !validNorm(p) {
		return 0, imatrixErrorf(opNorm, ErrDomain)
	}
	lo, hi, err := Split(a)
	if err != nil {
		return 0, imatrixErrorf(opNorm, err)
	}
	mag, err := matrix.AbsMax(lo, hi)
	if err != nil {
		return 0, imatrixErrorf(opNorm, err)
	}
	n, err := matrix.OpNorm(mag, p)
	if err != nil {
		return 0, imatrixErrorf(opNorm, err)
	}

	return n, nil
}

// DiamNorm returns the operator p-norm of the diameter matrix, the usual
// width measure of an enclosure. Same contract as OpNorm.
func DiamNorm(a Matrix, p float64) (float64, error) {
	if !validNorm(p) {
		return 0, imatrixErrorf(opDiamNorm, ErrDomain)
	}
	d, err := Diam(a)
	if err != nil {
		return 0, imatrixErrorf(opDiamNorm, err)
	}
	n, err := matrix.OpNorm(d, p)
	if err != nil {
		return 0, imatrixErrorf(opDiamNorm, err)
	}

	return n, nil
}
