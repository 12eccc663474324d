// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/intervalm/matrix"
)

// ExampleOpNorm prints the three supported operator norms of a small matrix.
func ExampleOpNorm() {
	m, _ := matrix.FromRows([][]float64{{3, 0}, {0, -4}})
	n1, _ := matrix.OpNorm(m, 1)
	n2, _ := matrix.OpNorm(m, 2)
	nInf, _ := matrix.OpNorm(m, math.Inf(1))
	fmt.Printf("%.1f %.1f %.1f\n", n1, n2, nInf)
	// Output:
	// 4.0 4.0 4.0
}

// ExampleMul multiplies two matrices.
func ExampleMul() {
	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.FromRows([][]float64{{0, 1}, {1, 0}})
	c, _ := matrix.Mul(a, b)
	fmt.Print(c)
	// Output:
	// [2, 1]
	// [4, 3]
}
