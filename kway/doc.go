// Package kway merges k individually sorted sequences into one sorted
// result in a single pass.
//
// Overview:
//
//   - A min-heap holds one cursor per non-empty source: the cursor carries
//     the source's current value, the source index and the offset of the
//     next unread element. Each round pops the least cursor, appends its
//     value to the output and re-inserts the advanced cursor if the source
//     still has elements.
//   - The heap never holds more than k cursors, so merging N total elements
//     costs O(N log k) regardless of how the elements are distributed.
//   - MergeFunc accepts a caller-supplied ordering; Merge uses the natural
//     one. Both treat nil and empty sources as contributing nothing.
//
// When to use:
//
//   - Combining sorted runs from external sort, log-file interleaving by
//     timestamp, merging per-shard sorted query results.
//
// Complexity:
//
//	Merge, MergeFunc: O(N log k) time, O(k) heap memory plus the output.
//
// Elements that compare equal across different sources appear in the output
// in no particular relative order. Input slices are never mutated and never
// aliased by the result.
//
// See also:
//
//   - heap for the cursor heap underneath.
//   - heapsort for ordering a single unsorted slice.
package kway
