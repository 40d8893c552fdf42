// SPDX-License-Identifier: MIT

package combinat_test

import (
	"testing"

	"github.com/katalvlaran/kembed/combinat"
)

// BenchmarkCombinations_12_5 drains C(12,5)=792 tuples per op.
func BenchmarkCombinations_12_5(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for range combinat.Combinations(5, 12) {
		}
	}
}

// BenchmarkPermutations_7 drains 7!=5040 tuples per op.
func BenchmarkPermutations_7(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for range combinat.Permutations(7) {
		}
	}
}

// BenchmarkBinomial exercises the big.Int path on a mid-sized argument.
func BenchmarkBinomial(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = combinat.Binomial(60, 30)
	}
}
