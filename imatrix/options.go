// SPDX-License-Identifier: MIT

// Package imatrix: functional configuration for multiplication kernels.
// This file defines:
//   - MulMode (the product algorithm) and its text form,
//   - Option / Options (functional options with internal state),
//   - gatherOptions helper that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state. The mode travels with each
//     call as an explicit value.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package imatrix

import (
	"fmt"
	"strings"
)

// MulMode selects the interval matrix product algorithm.
type MulMode uint8

const (
	// ModeSlow evaluates every entry as an interval dot product. Tightest,
	// O(n³) interval operations.
	ModeSlow MulMode = iota
	// ModeFast uses the midpoint-radius product: C = mA·mB ± (|mA|·rB + rA·(|mB|+rB)).
	// Fewer interval operations, overestimates by at most a factor of 1.5.
	ModeFast
)

// DefaultMulMode is the mode used when no option is given.
const DefaultMulMode = ModeSlow

// Mode names accepted by ParseMulMode and produced by String.
const (
	modeNameSlow = "slow"
	modeNameFast = "fast"
)

const panicModeInvalid = "imatrix: WithMulMode: unknown mode"

// String returns "slow" or "fast".
func (m MulMode) String() string {
	switch m {
	case ModeSlow:
		return modeNameSlow
	case ModeFast:
		return modeNameFast
	default:
		return fmt.Sprintf("MulMode(%d)", uint8(m))
	}
}

// ParseMulMode maps "slow"/"fast" (case-insensitive) to a MulMode.
// Errors: ErrUnsupportedMode for any other name.
func ParseMulMode(name string) (MulMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case modeNameSlow:
		return ModeSlow, nil
	case modeNameFast:
		return ModeFast, nil
	default:
		return 0, fmt.Errorf("ParseMulMode(%q): %w", name, ErrUnsupportedMode)
	}
}

// Valid reports whether m is a known mode.
func (m MulMode) Valid() bool { return m == ModeSlow || m == ModeFast }

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	mode MulMode // DefaultMulMode
}

// Mode returns the resolved multiplication mode.
func (o Options) Mode() MulMode { return o.mode }

// WithMulMode selects the product algorithm.
// Panics when mode is not ModeSlow or ModeFast; parse user input with
// ParseMulMode first.
func WithMulMode(mode MulMode) Option {
	if !mode.Valid() {
		panic(panicModeInvalid)
	}

	return func(o *Options) { o.mode = mode }
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{mode: DefaultMulMode}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// ResolveOptions exposes the effective Options for a set of setters; packages
// layered on top of imatrix use it to report the mode they run with.
func ResolveOptions(opts ...Option) Options { return gatherOptions(opts...) }
