// Package heapsort sorts slices through full heap extraction.
//
// The heap mode is always the opposite of the requested output direction:
// ascending output drains a max-heap into the tail of the result, descending
// output drains a min-heap the same way. Inputs are copied, never mutated.
//
// Complexity: O(n) to heapify plus O(n log n) to drain; O(n) extra memory.
package heapsort

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/heapcraft/heap"
)

// ErrBadDirection is the panic message for a Direction that is neither
// Ascending nor Descending.
var ErrBadDirection = errors.New("heapsort: unknown sort direction")

// Direction selects the order of the sorted output.
type Direction int

const (
	// Ascending sorts least to greatest.
	Ascending Direction = iota

	// Descending sorts greatest to least.
	Descending
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unknown"
	}
}

// Sort returns a new slice holding the elements of in ordered by dir under
// the natural ordering of T. The input is left untouched; empty or nil input
// yields an empty result.
//
// Panics with ErrBadDirection on an unknown Direction.
// Complexity: O(n log n).
func Sort[T constraints.Ordered](in []T, dir Direction) []T {
	return SortFunc(in, func(a, b T) bool { return a < b }, dir)
}

// SortFunc is Sort under a caller-supplied base ordering.
// Panics with ErrBadDirection on an unknown Direction and propagates the
// heap package's panic on a nil less.
// Complexity: O(n log n).
func SortFunc[T any](in []T, less heap.LessFunc[T], dir Direction) []T {
	// 1) Pick the mode opposite to the requested direction: the extraction
	//    sequence of that heap fills the result from the tail.
	var mode heap.Mode
	switch dir {
	case Ascending:
		mode = heap.MaxHeap
	case Descending:
		mode = heap.MinHeap
	default:
		panic(ErrBadDirection.Error())
	}

	// 2) Heapify a private copy of the input in O(n).
	h := heap.FromSliceFunc(mode, less, in)

	// 3) Drain back to front: each Pop is the current extreme of what remains.
	out := make([]T, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		v, _ := h.Pop() // cannot fail: exactly Len() extractions
		out[i] = v
	}

	return out
}
