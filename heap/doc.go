// Package heap provides a generic, array-backed binary heap with a fixed
// ordering mode and a pluggable comparison strategy.
//
// Overview:
//
//   - A Heap[T] stores elements of one type T in a slice interpreted as a
//     complete binary tree: parent (i-1)/2, children 2i+1 and 2i+2.
//   - The Mode (MinHeap or MaxHeap) is chosen at construction and never
//     changes; there is no subclass hierarchy and no virtual dispatch, just
//     one generic type and thin NewMin/NewMax factories.
//   - Custom orderings plug in through a LessFunc; the natural ordering of
//     any constraints.Ordered type is available out of the box.
//
// When to use:
//
//   - As a priority buffer wherever the next-best element must be available
//     in O(1) and removable in O(log n).
//   - As the engine underneath selection, merging, ordering and
//     shortest-path code: see the heapsort, topk, kway, pqueue and dijkstra
//     packages, which all consume this one.
//
// Key features:
//
//   - Bulk construction: FromSlice heapifies a copy of the input in O(n),
//     strictly cheaper than n repeated Push calls.
//   - Positional surgery: RemoveAt and UpdateAt repair the invariant in the
//     single direction the displaced value requires, never both blindly.
//   - Non-destructive queries: TopK, Sorted and Items operate on private
//     deep copies or copied snapshots; the original heap is never mutated
//     by a read.
//   - Merge folds one heap into another of the same mode, element by
//     element, leaving the source untouched.
//   - IsValid is an O(n) audit of the invariant at every index, handy in
//     tests and invariants-after-surgery checks.
//
// Complexity:
//
//	Push, Pop, RemoveAt, UpdateAt:  O(log n)
//	Peek, Len, IsEmpty, Mode:       O(1)
//	FromSlice (heapify):            O(n)
//	IsValid, Clone, Items:          O(n)
//	Sorted, TopK:                   O(n log n), O(n + k log n)
//	Merge:                          O(m log(n+m))
//
// Errors:
//
//   - ErrEmptyHeap       - Pop or Peek on an empty heap.
//   - ErrIndexOutOfRange - RemoveAt or UpdateAt outside [0, Len).
//   - ErrModeMismatch    - Merge across different ordering modes.
//
// All failures are local and synchronous; nothing is retried or swallowed.
// Callers that want to avoid an error check Len or IsEmpty first.
//
// Thread safety:
//
//   - A single Heap instance is not safe for concurrent use; synchronize
//     externally if one instance must be shared.
//   - Distinct instances share no state and may be used from different
//     goroutines freely.
//
// See also:
//
//   - pqueue for FIFO-within-priority ordering on top of this heap.
//   - heapsort and topk for slice-level ordering and bounded selection.
package heap
