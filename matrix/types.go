// SPDX-License-Identifier: MIT

// Package matrix: the Matrix interface accepted by every kernel.

package matrix

// Matrix is a mutable r×c grid of float64 values. Kernels take Matrix and
// return *Dense; a *Dense argument takes the flat-buffer fast path.
//
// Values are allowed to be ±Inf (projections of unbounded intervals) but
// never NaN; Set rejects NaN with ErrNaN.
type Matrix interface {
	Rows() int
	Cols() int

	// At returns entry (i, j), or ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set stores v at (i, j). Errors: ErrOutOfRange, ErrNaN.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy, O(r*c).
	Clone() Matrix
}

var _ Matrix = (*Dense)(nil)
