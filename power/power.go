// SPDX-License-Identifier: MIT

package power

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/intervalm/imatrix"
	"github.com/katalvlaran/intervalm/interval"
)

// Power is an incremental enclosure of Mᵏ for a fixed square interval matrix M.
// The zero value is not usable; construct with New.
type Power struct {
	base    *imatrix.IntervalMatrix
	current *imatrix.IntervalMatrix
	k       int
	pow2    []*imatrix.IntervalMatrix // pow2[j] encloses M^(2^j)
	opts    options
}

// New wraps M with k = 1. The matrix is copied.
//
// Errors:
//   - imatrix.ErrNilMatrix, ErrDimensionMismatch (M not square).
func New(m imatrix.Matrix, opts ...Option) (*Power, error) {
	base, err := imatrix.Materialize(m)
	if err != nil {
		return nil, fmt.Errorf("power.New: %w", err)
	}
	if !base.IsSquare() {
		return nil, fmt.Errorf("power.New: %dx%d: %w", base.Rows(), base.Cols(), ErrDimensionMismatch)
	}

	return &Power{
		base:    base,
		current: base.Clone(),
		k:       1,
		pow2:    []*imatrix.IntervalMatrix{base},
		opts:    defaultOptions().apply(opts...),
	}, nil
}

// Base returns a copy of M.
func (p *Power) Base() *imatrix.IntervalMatrix { return p.base.Clone() }

// Matrix returns a copy of the current power Mᵏ.
func (p *Power) Matrix() *imatrix.IntervalMatrix { return p.current.Clone() }

// Index returns the current exponent k.
func (p *Power) Index() int { return p.k }

// Algorithm returns the wrapper's default algorithm.
func (p *Power) Algorithm() Algorithm { return p.opts.algorithm }

// Increment advances the wrapper to Mᵏ⁺¹ and returns a copy of it.
// Per-call options override the wrapper defaults for this step only.
//
// Errors:
//   - *SoundnessError (wrapping ErrSoundnessViolation) from Intersect; the
//     wrapper is left unchanged on error.
func (p *Power) Increment(opts ...Option) (*imatrix.IntervalMatrix, error) {
	next, err := p.next(p.opts.apply(opts...))
	if err != nil {
		return nil, err
	}
	p.current = next
	p.k++

	return next.Clone(), nil
}

// IncrementCopy returns an enclosure of Mᵏ⁺¹ without advancing the wrapper.
// The squared-power cache may still grow.
func (p *Power) IncrementCopy(opts ...Option) (*imatrix.IntervalMatrix, error) {
	return p.next(p.opts.apply(opts...))
}

// Advance calls Increment until the wrapper reaches exponent k.
// Errors: ErrDomain when k is below the current exponent.
func (p *Power) Advance(k int, opts ...Option) (*imatrix.IntervalMatrix, error) {
	if k < p.k {
		return nil, fmt.Errorf("power.Advance(%d) from %d: %w", k, p.k, ErrDomain)
	}
	for p.k < k {
		if _, err := p.Increment(opts...); err != nil {
			return nil, err
		}
	}

	return p.Matrix(), nil
}

// next computes Mᵏ⁺¹ under o.
func (p *Power) next(o options) (*imatrix.IntervalMatrix, error) {
	target := p.k + 1
	if isPow2(target) {
		sq, err := p.square(bits.TrailingZeros(uint(target)))
		if err != nil {
			return nil, err
		}
		return sq.Clone(), nil
	}

	switch o.algorithm {
	case Multiply:
		return p.byMultiply(o)
	case Exponentiate:
		return p.byExponentiate(target, o)
	case DecomposeBinary:
		return p.byDecompose(target, o)
	default:
		return p.byIntersect(target, o)
	}
}

// square returns the cached M^(2^j), extending the cache by repeated Square.
func (p *Power) square(j int) (*imatrix.IntervalMatrix, error) {
	for len(p.pow2) <= j {
		sq, err := imatrix.Square(p.pow2[len(p.pow2)-1])
		if err != nil {
			return nil, fmt.Errorf("power: square: %w", err)
		}
		p.pow2 = append(p.pow2, sq)
	}

	return p.pow2[j], nil
}

func (p *Power) byMultiply(o options) (*imatrix.IntervalMatrix, error) {
	return imatrix.Mul(p.current, p.base, o.mul...)
}

// byExponentiate multiplies the cached squares selected by the set bits of
// k, lowest bit first. It matches Pow operation for operation.
func (p *Power) byExponentiate(k int, o options) (*imatrix.IntervalMatrix, error) {
	var acc *imatrix.IntervalMatrix
	for j := 0; k>>j != 0; j++ {
		if (k>>j)&1 == 0 {
			continue
		}
		sq, err := p.square(j)
		if err != nil {
			return nil, err
		}
		if acc == nil {
			acc = sq.Clone()
			continue
		}
		if acc, err = imatrix.Mul(acc, sq, o.mul...); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// byDecompose writes k = 2^a + b with a maximal and returns M^(2^a)·M^b.
func (p *Power) byDecompose(k int, o options) (*imatrix.IntervalMatrix, error) {
	a := bits.Len(uint(k)) - 1
	b := k - 1<<a
	high, err := p.square(a)
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return high.Clone(), nil
	}
	low, err := p.byExponentiate(b, o)
	if err != nil {
		return nil, err
	}

	return imatrix.Mul(high, low, o.mul...)
}

func (p *Power) byIntersect(k int, o options) (*imatrix.IntervalMatrix, error) {
	var candidates [3]*imatrix.IntervalMatrix
	var err error
	if candidates[0], err = p.byMultiply(o); err != nil {
		return nil, err
	}
	if candidates[1], err = p.byExponentiate(k, o); err != nil {
		return nil, err
	}
	if candidates[2], err = p.byDecompose(k, o); err != nil {
		return nil, err
	}

	out, err := imatrix.Intersect(candidates[0], candidates[1])
	if err != nil {
		return nil, err
	}
	if out, err = imatrix.Intersect(out, candidates[2]); err != nil {
		return nil, err
	}
	var serr *SoundnessError
	out.Do(func(i, j int, v interval.Interval) bool {
		if v.IsEmpty() {
			serr = &SoundnessError{Index: k, Row: i, Col: j, Wrapped: ErrSoundnessViolation}
			return false
		}
		return true
	})
	if serr != nil {
		return nil, serr
	}

	return out, nil
}

// Pow returns an enclosure of Mᵏ for k ≥ 1 by binary exponentiation with
// exact squaring steps. For k = 2^m the result equals the m-fold Square of M.
//
// Errors:
//   - ErrDomain (k < 1), ErrDimensionMismatch (M not square), imatrix.ErrNilMatrix.
func Pow(m imatrix.Matrix, k int, opts ...Option) (*imatrix.IntervalMatrix, error) {
	if k < 1 {
		return nil, fmt.Errorf("power.Pow(k=%d): %w", k, ErrDomain)
	}
	o := defaultOptions().apply(opts...)
	sq, err := imatrix.Materialize(m)
	if err != nil {
		return nil, fmt.Errorf("power.Pow: %w", err)
	}
	if !sq.IsSquare() {
		return nil, fmt.Errorf("power.Pow: %w", ErrDimensionMismatch)
	}

	var acc *imatrix.IntervalMatrix
	for rest := k; ; {
		if rest&1 == 1 {
			if acc == nil {
				acc = sq
			} else if acc, err = imatrix.Mul(acc, sq, o.mul...); err != nil {
				return nil, err
			}
		}
		if rest >>= 1; rest == 0 {
			break
		}
		if sq, err = imatrix.Square(sq); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

func isPow2(k int) bool { return k > 0 && k&(k-1) == 0 }
