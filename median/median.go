// Package median maintains the running median of a numeric stream.
//
// A Tracker splits the samples seen so far into two balanced halves: lower
// keeps the smaller half behind a max-heap root, upper keeps the larger half
// behind a min-heap root. Every Add places the sample on the correct side
// and rebalances, so the median is always one or two root reads away and
// Median costs O(1).
package median

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/heapcraft/heap"
)

// ErrNoSamples indicates a Median query before any sample was added.
var ErrNoSamples = errors.New("median: no samples")

// Number covers the sample types a Tracker accepts.
type Number interface {
	constraints.Integer | constraints.Float
}

// Tracker maintains the median over every sample added so far.
//
// The balance invariant: the two halves never differ in size by more than
// one sample, and every element of lower orders at or below every element
// of upper.
//
// A Tracker is not safe for concurrent use; synchronize externally if one
// instance must be shared.
type Tracker[T Number] struct {
	lower *heap.Heap[T] // max-heap over the smaller half
	upper *heap.Heap[T] // min-heap over the larger half
}

// New returns an empty tracker. Complexity: O(1).
func New[T Number]() *Tracker[T] {
	return &Tracker[T]{
		lower: heap.NewMax[T](),
		upper: heap.NewMin[T](),
	}
}

// Add absorbs one sample. Complexity: O(log n).
func (t *Tracker[T]) Add(v T) {
	// 1) Route: the lower half takes v when it is empty or when v does not
	//    exceed its root; everything larger goes upstairs.
	if t.lower.IsEmpty() {
		t.lower.Push(v)
	} else {
		top, _ := t.lower.Peek()
		if v <= top {
			t.lower.Push(v)
		} else {
			t.upper.Push(v)
		}
	}

	// 2) Rebalance: move one root across whenever a half runs two ahead.
	if t.lower.Len() > t.upper.Len()+1 {
		x, _ := t.lower.Pop()
		t.upper.Push(x)
	} else if t.upper.Len() > t.lower.Len()+1 {
		x, _ := t.upper.Pop()
		t.lower.Push(x)
	}
}

// Median returns the current median: the mean of the two roots when the
// halves hold equally many samples, otherwise the root of the larger half.
// Returns ErrNoSamples before the first Add. Complexity: O(1).
func (t *Tracker[T]) Median() (float64, error) {
	nl, nu := t.lower.Len(), t.upper.Len()
	if nl+nu == 0 {
		return 0, ErrNoSamples
	}

	switch {
	case nl == nu:
		lo, _ := t.lower.Peek()
		hi, _ := t.upper.Peek()
		return (float64(lo) + float64(hi)) / 2, nil
	case nl > nu:
		lo, _ := t.lower.Peek()
		return float64(lo), nil
	default:
		hi, _ := t.upper.Peek()
		return float64(hi), nil
	}
}

// Len returns the number of samples absorbed so far. Complexity: O(1).
func (t *Tracker[T]) Len() int { return t.lower.Len() + t.upper.Len() }
