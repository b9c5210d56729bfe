// Package heap defines the core types, ordering modes, and sentinel errors
// for the array-backed binary heap.
//
// A Heap is parameterized by its element type T and by a comparison strategy:
// the base ordering is a LessFunc, and the Mode (MinHeap or MaxHeap) decides
// which end of that ordering sits at the root. The mode is fixed at
// construction and never changes during the heap's lifetime.
//
// Errors (sentinel):
//
//	- ErrEmptyHeap        if Pop or Peek is called on a heap with no elements.
//	- ErrIndexOutOfRange  if RemoveAt or UpdateAt receives an index outside [0, Len).
//	- ErrModeMismatch     if Merge receives a heap built with a different Mode.
//	- ErrNilLess          panic message for constructors given a nil LessFunc.
//	- ErrBadMode          panic message for constructors given an unknown Mode.
package heap

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned (or carried in panics) by heap operations.
var (
	// ErrEmptyHeap indicates a read or removal of the root of an empty heap.
	ErrEmptyHeap = errors.New("heap: heap is empty")

	// ErrIndexOutOfRange indicates an index outside the current [0, Len) range.
	ErrIndexOutOfRange = errors.New("heap: index out of range")

	// ErrModeMismatch indicates an attempt to merge heaps with different ordering modes.
	ErrModeMismatch = errors.New("heap: ordering modes differ")

	// ErrNilLess indicates a nil LessFunc passed to a *Func constructor.
	ErrNilLess = errors.New("heap: comparison function is nil")

	// ErrBadMode indicates a Mode value that is neither MinHeap nor MaxHeap.
	ErrBadMode = errors.New("heap: unknown ordering mode")
)

// Mode selects which extreme of the base ordering occupies the root.
//
// MinHeap - the least element (under LessFunc) is at the root; Pop yields
// elements in ascending order.
// MaxHeap - the greatest element is at the root; Pop yields elements in
// descending order.
type Mode int

const (
	// MinHeap keeps the least element at the root.
	MinHeap Mode = iota

	// MaxHeap keeps the greatest element at the root.
	MaxHeap
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case MinHeap:
		return "min"
	case MaxHeap:
		return "max"
	default:
		return "unknown"
	}
}

// LessFunc reports whether a orders strictly before b. It must define a
// strict weak ordering; elements comparing equal are interchangeable as far
// as the heap invariant is concerned.
type LessFunc[T any] func(a, b T) bool

// Heap is an array-backed complete binary tree. For index i the parent lives
// at (i-1)/2 and the children at 2i+1 and 2i+2. The invariant: for every
// non-root index, the parent compares no worse than the child under the
// heap's mode.
//
// The heap owns its backing slice exclusively. Constructors copy the input,
// queries copy the output, and Clone produces a deep copy; no storage is ever
// shared between two Heap instances.
//
// A Heap is not safe for concurrent use; callers that share one instance
// across goroutines must synchronize externally. Distinct instances are
// fully independent.
type Heap[T any] struct {
	mode  Mode        // fixed at construction
	less  LessFunc[T] // base ordering
	items []T         // array-encoded complete binary tree
}

// naturalLess is the base ordering used by the constraints.Ordered constructors.
func naturalLess[T constraints.Ordered](a, b T) bool { return a < b }

// newHeap validates configuration and allocates an empty heap.
// Invalid configuration (nil less, unknown mode) panics, mirroring the
// treatment of invalid functional-option values elsewhere in the library.
func newHeap[T any](mode Mode, less LessFunc[T]) *Heap[T] {
	if less == nil {
		panic(ErrNilLess.Error())
	}
	if mode != MinHeap && mode != MaxHeap {
		panic(ErrBadMode.Error())
	}

	return &Heap[T]{mode: mode, less: less}
}

// New returns an empty heap of the given mode over the natural ordering of T.
// Panics with ErrBadMode on an unknown mode. Complexity: O(1).
func New[T constraints.Ordered](mode Mode) *Heap[T] {
	return newHeap(mode, naturalLess[T])
}

// NewFunc returns an empty heap of the given mode ordered by less.
// Panics with ErrNilLess or ErrBadMode on invalid configuration.
// Complexity: O(1).
func NewFunc[T any](mode Mode, less LessFunc[T]) *Heap[T] {
	return newHeap(mode, less)
}

// NewMin returns an empty min-heap over the natural ordering of T.
// Complexity: O(1).
func NewMin[T constraints.Ordered]() *Heap[T] {
	return newHeap(MinHeap, naturalLess[T])
}

// NewMax returns an empty max-heap over the natural ordering of T.
// Complexity: O(1).
func NewMax[T constraints.Ordered]() *Heap[T] {
	return newHeap(MaxHeap, naturalLess[T])
}

// NewMinFunc returns an empty min-heap ordered by less.
// Panics with ErrNilLess if less is nil. Complexity: O(1).
func NewMinFunc[T any](less LessFunc[T]) *Heap[T] {
	return newHeap(MinHeap, less)
}

// NewMaxFunc returns an empty max-heap ordered by less.
// Panics with ErrNilLess if less is nil. Complexity: O(1).
func NewMaxFunc[T any](less LessFunc[T]) *Heap[T] {
	return newHeap(MaxHeap, less)
}

// FromSlice builds a heap over a copy of items using the natural ordering of T.
// The input slice is left untouched.
//
// Construction sifts each internal node down once, from the last non-leaf to
// the root, which is O(n) total - strictly cheaper than n repeated Push calls.
func FromSlice[T constraints.Ordered](mode Mode, items []T) *Heap[T] {
	return FromSliceFunc(mode, naturalLess[T], items)
}

// FromSliceFunc builds a heap over a copy of items ordered by less.
// Panics with ErrNilLess if less is nil; see FromSlice for cost notes.
// Complexity: O(n).
func FromSliceFunc[T any](mode Mode, less LessFunc[T], items []T) *Heap[T] {
	// 1) Validate configuration and allocate.
	h := newHeap(mode, less)

	// 2) Take ownership of a private copy of the input.
	h.items = make([]T, len(items))
	copy(h.items, items)

	// 3) Heapify: sift-down every internal node, last non-leaf first.
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}

	return h
}
