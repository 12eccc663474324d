// SPDX-License-Identifier: MIT

package power

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/intervalm/imatrix"
)

// Algorithm selects how Mᵏ⁺¹ is computed from the wrapper state.
type Algorithm uint8

const (
	Multiply        Algorithm = iota // Mᵏ·M
	Exponentiate                     // binary exponentiation, named "power"
	DecomposeBinary                  // M^(2^a)·M^b
	Intersect                        // intersection of the three above
)

// DefaultAlgorithm is used when no WithAlgorithm option is given.
const DefaultAlgorithm = Intersect

var algorithmNames = [...]string{
	Multiply:        "multiply",
	Exponentiate:    "power",
	DecomposeBinary: "decompose_binary",
	Intersect:       "intersect",
}

// String returns the lower-case name accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	if int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}

	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// Valid reports whether a is a known algorithm.
func (a Algorithm) Valid() bool { return int(a) < len(algorithmNames) }

// ParseAlgorithm maps "multiply", "power", "decompose_binary" or "intersect"
// (case-insensitive) to an Algorithm.
// Errors: ErrUnsupported for any other name.
func ParseAlgorithm(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for a, s := range algorithmNames {
		if s == n {
			return Algorithm(a), nil
		}
	}

	return 0, fmt.Errorf("ParseAlgorithm(%q): %w", name, ErrUnsupported)
}

// Option configures a Power wrapper or a single Increment.
type Option func(*options)

type options struct {
	algorithm Algorithm
	mul       []imatrix.Option
}

// WithAlgorithm selects the increment algorithm.
// Panics on an unknown Algorithm value; parse user input with ParseAlgorithm.
func WithAlgorithm(a Algorithm) Option {
	if !a.Valid() {
		panic("power: WithAlgorithm: unknown algorithm")
	}

	return func(o *options) { o.algorithm = a }
}

// WithMulMode selects the interval product used by the non-squaring steps.
func WithMulMode(mode imatrix.MulMode) Option {
	opt := imatrix.WithMulMode(mode)

	return func(o *options) { o.mul = append(o.mul, opt) }
}

func (o options) apply(opts ...Option) options {
	o.mul = append([]imatrix.Option(nil), o.mul...)
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func defaultOptions() options { return options{algorithm: DefaultAlgorithm} }
