// Package topk selects the k most extreme elements of a slice without
// sorting the whole input.
//
// Overview:
//
//   - Largest keeps a bounded min-heap of the k best candidates seen so
//     far; its root is the weakest member, evicted only when a new value
//     strictly beats it. Smallest mirrors the scheme with a max-heap guard.
//   - The guard never grows past k elements, so selection over an input of
//     any length costs O(k) extra memory.
//   - Ties keep the earlier resident: a candidate equal to the guard's root
//     does not evict it.
//
// When to use:
//
//   - Leaderboards, "top N offenders" reports, nearest-k style cutoffs over
//     inputs too large to sort outright.
//
// Complexity:
//
//	Largest, Smallest: O(n log k) time, O(k) extra memory.
//
// Degenerate requests (k <= 0, empty input) yield an empty slice, never an
// error. The input slice is never mutated.
//
// See also:
//
//   - heap for the bounded guard underneath.
//   - heapsort when the entire input must be ordered anyway.
package topk
