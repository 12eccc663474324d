// SPDX-License-Identifier: MIT

package power

import (
	"fmt"

	"github.com/katalvlaran/intervalm/imatrix"
)

// Sentinels re-exported for callers that only import power.
var (
	ErrDimensionMismatch  = imatrix.ErrDimensionMismatch
	ErrSoundnessViolation = imatrix.ErrSoundnessViolation
	ErrUnsupported        = imatrix.ErrUnsupportedMode
	ErrDomain             = imatrix.ErrDomain
)

// SoundnessError wraps ErrSoundnessViolation with the power and entry at
// which the candidate enclosures had no common point.
type SoundnessError struct {
	Index    int // exponent being computed
	Row, Col int // first empty entry in row-major order
	Wrapped  error
}

func (e *SoundnessError) Error() string {
	return fmt.Sprintf("power: M^%d entry (%d,%d): %v", e.Index, e.Row, e.Col, e.Wrapped)
}

func (e *SoundnessError) Unwrap() error {
	return e.Wrapped
}
