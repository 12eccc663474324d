// SPDX-License-Identifier: MIT

package expm_test

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/intervalm/expm"
	"github.com/katalvlaran/intervalm/imatrix"
	"github.com/katalvlaran/intervalm/interval"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func subsetOf(a, b *imatrix.IntervalMatrix) bool {
	ok, err := imatrix.Subset(a, b)
	Expect(err).NotTo(HaveOccurred())

	return ok
}

var _ = Describe("interval matrix exponential", func() {
	var (
		rng *rand.Rand
		a   *imatrix.IntervalMatrix
	)

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(GinkgoRandomSeed()))
		var err error
		a, err = imatrix.Rand(rng, 3, 3)
		Expect(err).NotTo(HaveOccurred())
		a, err = imatrix.Scale(a, 0.3)
		Expect(err).NotTo(HaveOccurred())
	})

	DescribeTable("every outer method encloses sampled exponentials",
		func(m expm.Method) {
			e, err := expm.Exp(a, 0.5, m)
			Expect(err).NotTo(HaveOccurred())
			for s := 0; s < 20; s++ {
				pm, err := imatrix.Sample(rng, a)
				Expect(err).NotTo(HaveOccurred())
				ref := floatExp(GinkgoT(), pm, 0.5)
				requireEncloses(GinkgoT(), e, ref, 1e-12)
			}
		},
		Entry("horner", expm.Horner{K: 12}),
		Entry("taylor", expm.TaylorOverapproximation{P: 10}),
		Entry("scale and square", expm.ScaleAndSquare{L: 5, P: 4}),
	)

	It("keeps the inner enclosure inside the outer one", func() {
		for _, p := range []int{2, 4, 6} {
			over, err := expm.Overapproximation(a, 0.5, p)
			Expect(err).NotTo(HaveOccurred())
			under, err := expm.Underapproximation(a, 0.5, p)
			Expect(err).NotTo(HaveOccurred())
			Expect(subsetOf(under, over)).To(BeTrue())
		}
	})

	It("has no certified interior for a point matrix", func() {
		mid, err := imatrix.Mid(a)
		Expect(err).NotTo(HaveOccurred())
		point, err := imatrix.FromDense(mid)
		Expect(err).NotTo(HaveOccurred())
		under, err := expm.Underapproximation(point, 0.5, 6)
		Expect(err).NotTo(HaveOccurred())
		under.Do(func(_, _ int, v interval.Interval) bool {
			Expect(v.IsEmpty()).To(BeTrue())
			return true
		})
	})

	It("narrows the remainder as the order grows", func() {
		prev := math.Inf(1)
		for _, p := range []int{2, 4, 8, 16} {
			r, err := expm.Remainder(a, 0.5, p)
			Expect(err).NotTo(HaveOccurred())
			w, err := imatrix.DiamNorm(r, math.Inf(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(w).To(BeNumerically("<=", prev))
			prev = w
		}
	})
})
