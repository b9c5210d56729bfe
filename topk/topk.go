// Package topk selects the k most extreme elements of a slice in one pass,
// holding at most k elements in memory at any point.
package topk

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/heapcraft/heap"
)

// Largest returns the k greatest elements of in, greatest first.
// k <= 0 or an empty input yields an empty result; k >= len(in) yields the
// whole input sorted descending. The input is never mutated.
//
// A bounded min-heap guards the current k best: its root is the weakest
// member and is replaced only when a candidate strictly improves on it.
// Complexity: O(n log k), O(k) extra memory.
func Largest[T constraints.Ordered](in []T, k int) []T {
	return guarded(in, k, heap.MinHeap, func(a, b T) bool { return a < b })
}

// Smallest returns the k least elements of in, least first.
// Boundary behavior mirrors Largest; the guard is a bounded max-heap.
// Complexity: O(n log k), O(k) extra memory.
func Smallest[T constraints.Ordered](in []T, k int) []T {
	return guarded(in, k, heap.MaxHeap, func(a, b T) bool { return a < b })
}

// guarded runs the bounded-heap selection. The guard mode decides which
// extreme survives: a min-guard keeps the k largest, a max-guard the k
// smallest.
func guarded[T any](in []T, k int, guard heap.Mode, less heap.LessFunc[T]) []T {
	// 1) Degenerate requests produce an empty result, never an error.
	if k <= 0 || len(in) == 0 {
		return []T{}
	}

	// 2) Single pass: fill the guard to k, then replace its root only on
	//    strict improvement. Ties keep the earlier resident.
	h := heap.NewFunc(guard, less)
	var improves bool
	for _, v := range in {
		if h.Len() < k {
			h.Push(v)

			continue
		}
		top, _ := h.Peek() // guard is non-empty here
		if guard == heap.MinHeap {
			improves = less(top, v)
		} else {
			improves = less(v, top)
		}
		if improves {
			_ = h.UpdateAt(0, v) // index 0 is always in range
		}
	}

	// 3) Drain the guard and reverse so the most extreme element comes first.
	out := h.Sorted()
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}

	return out
}
