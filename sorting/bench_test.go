// SPDX-License-Identifier: MIT

package sorting_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/algoviz/sorting"
)

// BenchmarkSort measures frame generation for every algorithm on 64 values.
func BenchmarkSort(b *testing.B) {
	const N = 64
	r := rand.New(rand.NewSource(42))
	in := make([]int, N)
	for i := range in {
		in[i] = r.Intn(1000)
	}

	for _, alg := range sorting.Algorithms {
		b.Run(string(alg), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = sorting.Sort(alg, in)
			}
		})
	}
}
