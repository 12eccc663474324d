// SPDX-License-Identifier: MIT

// Package power tracks successive powers M, M², M³, … of a square interval
// matrix.
//
// A Power wrapper holds the base M, the current power Mᵏ and a cache of the
// squared powers M^(2^j). Each Increment computes Mᵏ⁺¹ with one of four
// algorithms:
//
//   - Multiply:        Mᵏ·M.
//   - Exponentiate:    binary exponentiation from the cached squares.
//   - DecomposeBinary: k+1 = 2^a + b with a maximal; M^(2^a)·M^b.
//   - Intersect:       the entrywise intersection of the three above.
//
// Whenever k+1 is a power of two the result is the exact square of the
// cached M^((k+1)/2), so every algorithm agrees there. Intersect reports
// disjoint candidates as a *SoundnessError.
package power
