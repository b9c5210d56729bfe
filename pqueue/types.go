// Package pqueue defines the stable priority queue type, its two ordering
// configurations, and the sentinel error shared by all read operations.
//
// A Queue pairs every payload with a caller-chosen priority and a private,
// monotonically increasing insertion sequence number. The priority decides
// who leaves first; the sequence number breaks ties, so elements of equal
// priority leave in arrival order.
//
// Errors:
//
//	- ErrEmptyQueue  if Pop, PopWithPriority, Peek or PeekPriority is called
//	  on a queue with no elements.
package pqueue

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/heapcraft/heap"
)

// ErrEmptyQueue indicates a read or removal from a queue with no elements.
var ErrEmptyQueue = errors.New("pqueue: queue is empty")

// entry binds a payload to its priority and to the insertion sequence number
// that arbitrates between equal priorities.
type entry[T any, P constraints.Ordered] struct {
	payload T
	pri     P
	seq     uint64
}

// Queue is a stable priority queue: the best priority leaves first, and
// elements sharing a priority leave in the order they were pushed.
//
// The sequence counter is scoped to the instance. It starts at zero, grows
// by one on every Push, and is never reused or reset; two queues never
// influence each other's tie-breaking.
//
// A Queue is not safe for concurrent use; synchronize externally if one
// instance must be shared. Distinct instances share no state and may be used
// from different goroutines freely.
type Queue[T any, P constraints.Ordered] struct {
	h   *heap.Heap[entry[T, P]]
	seq uint64 // next insertion sequence number
}

// entryLess builds the composite ordering for the underlying heap: priority
// first, insertion sequence second. The sequence leg flips for a max-heap so
// that, among equal priorities, the earliest insertion is the one the heap
// ranks greatest and therefore pops first.
func entryLess[T any, P constraints.Ordered](mode heap.Mode) heap.LessFunc[entry[T, P]] {
	return func(a, b entry[T, P]) bool {
		if a.pri != b.pri {
			return a.pri < b.pri
		}
		if mode == heap.MaxHeap {
			return a.seq > b.seq
		}

		return a.seq < b.seq
	}
}

// New returns an empty queue in which the HIGHEST priority leaves first.
// Complexity: O(1).
func New[T any, P constraints.Ordered]() *Queue[T, P] {
	return &Queue[T, P]{h: heap.NewMaxFunc(entryLess[T, P](heap.MaxHeap))}
}

// NewMin returns an empty queue in which the LOWEST priority leaves first,
// the configuration cost-driven consumers such as shortest-path search want.
// Complexity: O(1).
func NewMin[T any, P constraints.Ordered]() *Queue[T, P] {
	return &Queue[T, P]{h: heap.NewMinFunc(entryLess[T, P](heap.MinHeap))}
}
