// Package heapsort orders whole slices through heap extraction.
//
// Overview:
//
//   - Sort heapifies a private copy of the input in O(n), then drains the
//     heap back to front: each Pop is the current extreme of what remains,
//     so the result fills tail-first into its final order.
//   - The heap mode is always the opposite of the requested Direction:
//     Ascending output drains a max-heap, Descending output a min-heap.
//   - SortFunc accepts a caller-supplied base ordering for element types
//     with no natural one.
//
// Complexity:
//
//	Sort, SortFunc: O(n log n) time, O(n) extra memory.
//
// The input slice is never mutated; empty or nil input yields an empty
// result. Heap extraction does not preserve the relative order of equal
// elements, so the sort is not stable.
//
// See also:
//
//   - heap for the extraction engine.
//   - topk when only the k most extreme elements are needed.
package heapsort
