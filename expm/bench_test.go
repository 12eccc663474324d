// SPDX-License-Identifier: MIT

package expm_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/intervalm/expm"
	"github.com/katalvlaran/intervalm/imatrix"
)

var sink *imatrix.IntervalMatrix

func benchExp(b *testing.B, m expm.Method) {
	a, err := imatrix.Rand(rand.New(rand.NewSource(1)), 8, 8)
	if err != nil {
		b.Fatal(err)
	}
	if a, err = imatrix.Scale(a, 0.1); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if sink, err = expm.Exp(a, 1, m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHorner(b *testing.B)         { benchExp(b, expm.Horner{K: 10}) }
func BenchmarkTaylorOver(b *testing.B)     { benchExp(b, expm.TaylorOverapproximation{P: 10}) }
func BenchmarkScaleAndSquare(b *testing.B) { benchExp(b, expm.DefaultMethod()) }
