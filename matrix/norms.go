// SPDX-License-Identifier: MIT

package matrix

import "math"

// OpNorm returns the induced operator p-norm of m for p ∈ {1, 2, +Inf}.
//
//   - p = 1:    maximum absolute column sum.
//   - p = +Inf: maximum absolute row sum.
//   - p = 2:    largest singular value, √λmax(MᵀM) via Eigen; tuned by
//     WithEpsilon and WithMaxIter.
//
// Errors:
//   - ErrNilMatrix, ErrUnsupportedNorm (any other p), ErrMatrixEigenFailed.
//
// Complexity:
//   - O(r*c) for p ∈ {1, +Inf}; O(c²·r + Jacobi) for p = 2.
func OpNorm(m Matrix, p float64, opts ...Option) (float64, error) {
	d, err := asDense(opNorm, m)
	if err != nil {
		return 0, err
	}

	switch {
	case p == 1:
		return maxColSum(d), nil
	case math.IsInf(p, 1):
		return maxRowSum(d), nil
	case p == 2:
		return spectralNorm(d, gatherOptions(opts...))
	default:
		return 0, matrixErrorf(opNorm, ErrUnsupportedNorm)
	}
}

func maxColSum(d *Dense) float64 {
	best := NormZero
	var i, j int
	var s float64
	for j = 0; j < d.c; j++ {
		s = NormZero
		for i = 0; i < d.r; i++ {
			s += math.Abs(d.data[i*d.c+j])
		}
		best = math.Max(best, s)
	}

	return best
}

func maxRowSum(d *Dense) float64 {
	best := NormZero
	var i, j int
	var s float64
	for i = 0; i < d.r; i++ {
		s = NormZero
		for j = 0; j < d.c; j++ {
			s += math.Abs(d.data[i*d.c+j])
		}
		best = math.Max(best, s)
	}

	return best
}

// spectralNorm computes √λmax(DᵀD). Infinite entries short-circuit to +Inf.
func spectralNorm(d *Dense, o Options) (float64, error) {
	for _, v := range d.data {
		if math.IsInf(v, 0) {
			return math.Inf(1), nil
		}
	}
	dt, err := Transpose(d)
	if err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	gram, err := Mul(dt, d)
	if err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	// Scale-aware tolerance keeps Jacobi meaningful for large entries.
	scale := math.Max(1, maxRowSum(gram))
	values, _, err := Eigen(gram, o.eps*scale, o.maxIter)
	if err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	lmax := NormZero
	for _, v := range values {
		lmax = math.Max(lmax, v)
	}

	return math.Sqrt(lmax), nil
}
