package kway_test

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/heapcraft/kway"
)

// sortedSources builds k deterministic pre-sorted sources of m elements each.
func sortedSources(k, m int) [][]int {
	r := rand.New(rand.NewSource(42))
	seqs := make([][]int, k)
	for s := range seqs {
		seqs[s] = make([]int, m)
		for i := range seqs[s] {
			seqs[s][i] = r.Int()
		}
		sort.Ints(seqs[s])
	}

	return seqs
}

// BenchmarkMerge measures merging with a growing source count at a fixed
// total volume, isolating the O(log k) factor.
func BenchmarkMerge(b *testing.B) {
	const total = 100000
	for _, k := range []int{2, 8, 64} {
		seqs := sortedSources(k, total/k)
		b.Run(fmt.Sprintf("k=%d", k), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = kway.Merge(seqs...)
			}
		})
	}
}
