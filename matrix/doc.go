// Package matrix offers real (float64) dense matrices used as the point-valued
// companion of interval matrices.
//
// The matrix package provides:
//
//   - Dense: row-major storage with bounds-checked At/Set (errors, never panics).
//   - Kernels: Add, Sub, Mul, Scale, Transpose, Hadamard, AbsMax (entrywise max |·|).
//   - Eigen: cyclic Jacobi for symmetric input, used by the spectral norm.
//   - OpNorm: induced 1-, 2- and ∞-norms; WithEpsilon and WithMaxIter tune
//     the Jacobi iteration behind the 2-norm.
//
// Interval matrices project onto this package (inf, sup, mid, radius, diam),
// and affine interval matrices keep their basis as shared *Dense values.
//
// See the examples in this package for usage patterns.
package matrix
