// SPDX-License-Identifier: MIT

package imatrix

import (
	"fmt"

	"github.com/katalvlaran/intervalm/interval"
	"github.com/katalvlaran/intervalm/matrix"
)

// Affine is the interval matrix A0 + Σ_k λ_k·A_k over real basis matrices
// A_k and interval coefficients λ_k. Entries are computed on demand by At;
// the basis matrices are shared, not copied, and must not be mutated while
// the Affine is in use.
type Affine struct {
	a0     *matrix.Dense
	basis  []*matrix.Dense
	lambda []interval.Interval
}

// Affine1 is the single-generator case A0 + λ·A1.
type Affine1 struct {
	a0, a1 *matrix.Dense
	lambda interval.Interval
}

var (
	_ Matrix = (*Affine)(nil)
	_ Matrix = (*Affine1)(nil)
)

// NewAffine1 returns A0 + λ·A1.
// Errors: ErrNilMatrix, ErrDimensionMismatch when A0 and A1 differ in shape.
func NewAffine1(a0, a1 *matrix.Dense, lambda interval.Interval) (*Affine1, error) {
	if a0 == nil || a1 == nil {
		return nil, imatrixErrorf(opAffine, ErrNilMatrix)
	}
	if err := matrix.ValidateSameShape(a0, a1); err != nil {
		return nil, imatrixErrorf(opAffine, err)
	}

	return &Affine1{a0: a0, a1: a1, lambda: lambda}, nil
}

// NewAffine returns A0 + Σ λ_k·A_k.
//
// Errors:
//   - ErrNilMatrix (nil A0 or basis entry).
//   - ErrDimensionMismatch when len(basis) != len(lambda) or any shape differs from A0.
func NewAffine(a0 *matrix.Dense, basis []*matrix.Dense, lambda []interval.Interval) (*Affine, error) {
	if a0 == nil {
		return nil, imatrixErrorf(opAffine, ErrNilMatrix)
	}
	if len(basis) != len(lambda) {
		return nil, imatrixErrorf(opAffine, fmt.Errorf("%d basis matrices, %d coefficients: %w", len(basis), len(lambda), ErrDimensionMismatch))
	}
	for k, ak := range basis {
		if ak == nil {
			return nil, imatrixErrorf(opAffine, fmt.Errorf("basis %d: %w", k, ErrNilMatrix))
		}
		if err := matrix.ValidateSameShape(a0, ak); err != nil {
			return nil, imatrixErrorf(opAffine, fmt.Errorf("basis %d: %w", k, err))
		}
	}
	lam := make([]interval.Interval, len(lambda))
	copy(lam, lambda)
	bs := make([]*matrix.Dense, len(basis))
	copy(bs, basis)

	return &Affine{a0: a0, basis: bs, lambda: lam}, nil
}

// Rows returns the row count.
func (m *Affine) Rows() int { return m.a0.Rows() }

// Cols returns the column count.
func (m *Affine) Cols() int { return m.a0.Cols() }

// Len returns the number of generators.
func (m *Affine) Len() int { return len(m.basis) }

// At returns A0[i,j] + Σ λ_k·A_k[i,j].
// Errors: ErrOutOfRange.
func (m *Affine) At(i, j int) (interval.Interval, error) {
	v, err := m.a0.At(i, j)
	if err != nil {
		return interval.Interval{}, indexErrorf(opAt, i, j, ErrOutOfRange)
	}
	acc := interval.Point(v)
	for k, ak := range m.basis {
		v, _ = ak.At(i, j)
		acc = acc.Add(m.lambda[k].Mul(interval.Point(v)))
	}

	return acc, nil
}

// Materialize evaluates every entry into a new IntervalMatrix.
func (m *Affine) Materialize() (*IntervalMatrix, error) { return materialize(opAffine, m) }

// Rows returns the row count.
func (m *Affine1) Rows() int { return m.a0.Rows() }

// Cols returns the column count.
func (m *Affine1) Cols() int { return m.a0.Cols() }

// Lambda returns the generator coefficient.
func (m *Affine1) Lambda() interval.Interval { return m.lambda }

// At returns A0[i,j] + λ·A1[i,j].
// Errors: ErrOutOfRange.
func (m *Affine1) At(i, j int) (interval.Interval, error) {
	v0, err := m.a0.At(i, j)
	if err != nil {
		return interval.Interval{}, indexErrorf(opAt, i, j, ErrOutOfRange)
	}
	v1, _ := m.a1.At(i, j)

	return interval.Point(v0).Add(m.lambda.Mul(interval.Point(v1))), nil
}

// Materialize evaluates every entry into a new IntervalMatrix.
func (m *Affine1) Materialize() (*IntervalMatrix, error) { return materialize(opAffine, m) }
