// SPDX-License-Identifier: MIT
package imatrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/intervalm/imatrix"
)

var sinkIM *imatrix.IntervalMatrix

func BenchmarkMul(b *testing.B) {
	for _, mode := range []imatrix.MulMode{imatrix.ModeSlow, imatrix.ModeFast} {
		for _, n := range []int{16, 64} {
			b.Run(fmt.Sprintf("%s/n=%d", mode, n), func(b *testing.B) {
				rng := rand.New(rand.NewSource(int64(n)))
				x, _ := imatrix.Rand(rng, n, n)
				y, _ := imatrix.Rand(rng, n, n)
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					m, err := imatrix.Mul(x, y, imatrix.WithMulMode(mode))
					if err != nil {
						b.Fatal(err)
					}
					sinkIM = m
				}
			})
		}
	}
}

func BenchmarkSquare(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	x, _ := imatrix.Rand(rng, 64, 64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := imatrix.Square(x)
		if err != nil {
			b.Fatal(err)
		}
		sinkIM = m
	}
}
