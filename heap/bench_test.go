package heap_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/heapcraft/heap"
)

// randomInts returns a deterministic pseudo-random input of size n.
func randomInts(n int) []int {
	r := rand.New(rand.NewSource(42))
	out := make([]int, n)
	for i := range out {
		out[i] = r.Int()
	}

	return out
}

// BenchmarkPush measures n sequential pushes into an empty min-heap.
func BenchmarkPush(b *testing.B) {
	for _, n := range []int{1000, 10000, 100000} {
		in := randomInts(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				h := heap.NewMin[int]()
				for _, v := range in {
					h.Push(v)
				}
			}
		})
	}
}

// BenchmarkFromSlice measures linear heapify against the same inputs;
// compare with BenchmarkPush to see the O(n) vs O(n log n) gap.
func BenchmarkFromSlice(b *testing.B) {
	for _, n := range []int{1000, 10000, 100000} {
		in := randomInts(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = heap.FromSlice(heap.MinHeap, in)
			}
		})
	}
}

// BenchmarkPop measures a full drain of a pre-built heap.
func BenchmarkPop(b *testing.B) {
	for _, n := range []int{1000, 10000} {
		in := randomInts(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				h := heap.FromSlice(heap.MinHeap, in)
				b.StartTimer()
				for !h.IsEmpty() {
					_, _ = h.Pop()
				}
			}
		})
	}
}

// BenchmarkSorted measures the non-destructive full extraction (clone + drain).
func BenchmarkSorted(b *testing.B) {
	h := heap.FromSlice(heap.MinHeap, randomInts(10000))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Sorted()
	}
}
