// SPDX-License-Identifier: MIT

package expm

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/intervalm/imatrix"
	"github.com/katalvlaran/intervalm/power"
)

// Sentinels shared with the lower layers.
var (
	ErrDomain            = imatrix.ErrDomain
	ErrDimensionMismatch = imatrix.ErrDimensionMismatch
	ErrUnsupported       = imatrix.ErrUnsupportedMode
)

// Operation tags used in wrapped errors.
const (
	opExp       = "expm.Exp"
	opOver      = "expm.Overapproximation"
	opUnder     = "expm.Underapproximation"
	opHorner    = "expm.HornerExp"
	opScaleSq   = "expm.ScaleSquare"
	opRemainder = "expm.Remainder"
	opCorrHull  = "expm.CorrectionHull"
	opInputCorr = "expm.InputCorrection"
	opParseMeth = "expm.ParseMethod"
)

// Option configures a single enclosure call.
type Option func(*options)

type options struct {
	validate  bool
	mul       []imatrix.Option
	algorithm power.Algorithm
}

func gatherOptions(opts ...Option) options {
	o := options{validate: true, algorithm: power.DefaultAlgorithm}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithoutValidation skips the t ≥ 0, positive order and Horner norm checks.
// Shape checks always run.
func WithoutValidation() Option {
	return func(o *options) { o.validate = false }
}

// WithMulMode selects the interval product for every multiplication of the
// call (series terms, Horner steps, power increments).
func WithMulMode(mode imatrix.MulMode) Option {
	opt := imatrix.WithMulMode(mode)

	return func(o *options) { o.mul = append(o.mul, opt) }
}

// WithPowerAlgorithm selects how the series powers Aⁱ are advanced.
// Panics on an unknown Algorithm value.
func WithPowerAlgorithm(a power.Algorithm) Option {
	if !a.Valid() {
		panic("expm: WithPowerAlgorithm: unknown algorithm")
	}

	return func(o *options) { o.algorithm = a }
}

func (o options) powerOptions() []power.Option {
	return []power.Option{
		power.WithAlgorithm(o.algorithm),
		power.WithMulMode(imatrix.ResolveOptions(o.mul...).Mode()),
	}
}

// checkTime validates t ≥ 0 and finite.
func (o options) checkTime(tag string, t float64) error {
	if !o.validate {
		return nil
	}
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		return fmt.Errorf("%s: t = %g: %w", tag, t, ErrDomain)
	}

	return nil
}

// checkOrder validates a positive order parameter.
func (o options) checkOrder(tag, name string, v int) error {
	if o.validate && v < 1 {
		return fmt.Errorf("%s: %s = %d must be positive: %w", tag, name, v, ErrDomain)
	}

	return nil
}

// Method selects an enclosure algorithm. The set is closed: Horner,
// TaylorOverapproximation, TaylorUnderapproximation and ScaleAndSquare.
type Method interface {
	fmt.Stringer
	sealed()
}

// Horner evaluates the degree-K series in nested form.
type Horner struct{ K int }

// TaylorOverapproximation is the order-P Taylor outer enclosure.
type TaylorOverapproximation struct{ P int }

// TaylorUnderapproximation is the order-P inner enclosure.
type TaylorUnderapproximation struct{ P int }

// ScaleAndSquare scales by 2^-L, encloses at order P, then squares L times.
type ScaleAndSquare struct{ L, P int }

func (Horner) sealed()                   {}
func (TaylorOverapproximation) sealed()  {}
func (TaylorUnderapproximation) sealed() {}
func (ScaleAndSquare) sealed()           {}

func (m Horner) String() string                   { return fmt.Sprintf("horner(K=%d)", m.K) }
func (m TaylorOverapproximation) String() string  { return fmt.Sprintf("taylor_over(P=%d)", m.P) }
func (m TaylorUnderapproximation) String() string { return fmt.Sprintf("taylor_under(P=%d)", m.P) }
func (m ScaleAndSquare) String() string           { return fmt.Sprintf("scale_and_square(L=%d, P=%d)", m.L, m.P) }

// Default method parameters.
const (
	DefaultL = 5
	DefaultP = 4
	DefaultK = 10
)

// DefaultMethod returns ScaleAndSquare{L: 5, P: 4}.
func DefaultMethod() Method { return ScaleAndSquare{L: DefaultL, P: DefaultP} }

// Method names accepted by ParseMethod.
const (
	MethodHorner         = "horner"
	MethodTaylorOver     = "taylor_over"
	MethodTaylorUnder    = "taylor_under"
	MethodScaleAndSquare = "scale_and_square"
)

// ParseMethod builds a Method from its name and parameters; parameters that
// the method does not use are ignored.
// Errors: ErrUnsupported for an unknown name.
func ParseMethod(name string, k, p, l int) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case MethodHorner:
		return Horner{K: k}, nil
	case MethodTaylorOver, "taylor", "over":
		return TaylorOverapproximation{P: p}, nil
	case MethodTaylorUnder, "under":
		return TaylorUnderapproximation{P: p}, nil
	case MethodScaleAndSquare, "ss":
		return ScaleAndSquare{L: l, P: p}, nil
	default:
		return nil, fmt.Errorf("%s(%q): %w", opParseMeth, name, ErrUnsupported)
	}
}
