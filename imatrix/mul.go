// SPDX-License-Identifier: MIT

package imatrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/intervalm/interval"
)

// Mul returns an enclosure of the product A·B.
//
// Implementation:
//   - Stage 1: materialize operands; require a.Cols == b.Rows.
//   - Stage 2: dispatch on the resolved MulMode (default ModeSlow).
//
// Behavior highlights:
//   - ModeSlow: c_ij = Σ_k a_ik·b_kj accumulated in interval arithmetic.
//   - ModeFast: c_ij = Σ_k mA_ik·mB_kj (enclosed) ± Σ_k (|mA_ik|·rB_kj + rA_ik·(|mB_kj|+rB_kj)),
//     radii rounded upward.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed i→j→k order; results are bitwise reproducible.
//
// Complexity:
//   - Time O(r*n*c) interval operations, Space O(r*c) (+O(r*n + n*c) in ModeFast).
func Mul(a, b Matrix, opts ...Option) (*IntervalMatrix, error) {
	ma, err := materialize(opMul, a)
	if err != nil {
		return nil, err
	}
	mb, err := materialize(opMul, b)
	if err != nil {
		return nil, err
	}
	if ma.c != mb.r {
		return nil, imatrixErrorf(opMul, fmt.Errorf("inner %d vs %d: %w", ma.c, mb.r, ErrDimensionMismatch))
	}

	if gatherOptions(opts...).mode == ModeFast {
		return mulFast(ma, mb), nil
	}

	return mulSlow(ma, mb), nil
}

func mulSlow(a, b *IntervalMatrix) *IntervalMatrix {
	out := newUnchecked(a.r, b.c)
	var i, j, k int
	var acc interval.Interval
	for i = 0; i < a.r; i++ {
		for j = 0; j < b.c; j++ {
			acc = interval.Interval{}
			for k = 0; k < a.c; k++ {
				acc = acc.Add(a.data[i*a.c+k].Mul(b.data[k*b.c+j]))
			}
			out.data[i*out.c+j] = acc
		}
	}

	return out
}

// midRadOf splits every entry into center and radius with x ⊆ [m - r, m + r].
func midRadOf(m *IntervalMatrix) (mid, rad []float64) {
	mid = make([]float64, len(m.data))
	rad = make([]float64, len(m.data))
	for idx, x := range m.data {
		mid[idx], rad[idx] = x.MidRad()
	}

	return mid, rad
}

func mulFast(a, b *IntervalMatrix) *IntervalMatrix {
	mA, rA := midRadOf(a)
	mB, rB := midRadOf(b)
	out := newUnchecked(a.r, b.c)

	var i, j, k, ik, kj int
	var center interval.Interval
	var radius, absA float64
	for i = 0; i < a.r; i++ {
		for j = 0; j < b.c; j++ {
			center = interval.Interval{}
			radius = 0
			for k = 0; k < a.c; k++ {
				ik, kj = i*a.c+k, k*b.c+j
				center = center.Add(interval.Point(mA[ik]).Mul(interval.Point(mB[kj])))
				absA = math.Abs(mA[ik])
				radius = interval.UpperSum(radius,
					interval.UpperMul(absA, rB[kj]),
					interval.UpperMul(rA[ik], interval.UpperAdd(math.Abs(mB[kj]), rB[kj])))
			}
			out.data[i*out.c+j] = center.Add(interval.Symmetric(radius))
		}
	}

	return out
}

// Multiplier carries a fixed MulMode for callers that thread one product
// configuration through many calls.
type Multiplier struct {
	mode MulMode
}

// NewMultiplier returns a Multiplier for mode.
// Errors: ErrUnsupportedMode for an unknown mode.
func NewMultiplier(mode MulMode) (Multiplier, error) {
	if !mode.Valid() {
		return Multiplier{}, fmt.Errorf("NewMultiplier: %w", ErrUnsupportedMode)
	}

	return Multiplier{mode: mode}, nil
}

// Mode returns the configured mode.
func (m Multiplier) Mode() MulMode { return m.mode }

// Option converts the Multiplier into a functional option.
func (m Multiplier) Option() Option { return WithMulMode(m.mode) }

// Mul is imatrix.Mul with the Multiplier's mode.
func (m Multiplier) Mul(a, b Matrix) (*IntervalMatrix, error) {
	return Mul(a, b, m.Option())
}
