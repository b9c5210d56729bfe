package heap

import "fmt"

// Len returns the number of elements currently stored.
// Complexity: O(1).
func (h *Heap[T]) Len() int { return len(h.items) }

// IsEmpty reports whether the heap holds no elements.
// Complexity: O(1).
func (h *Heap[T]) IsEmpty() bool { return len(h.items) == 0 }

// Mode returns the ordering mode fixed at construction.
// Complexity: O(1).
func (h *Heap[T]) Mode() Mode { return h.mode }

// Peek returns the root element without mutating the heap.
// Returns ErrEmptyHeap when the heap has no elements.
// Complexity: O(1).
func (h *Heap[T]) Peek() (T, error) {
	if len(h.items) == 0 {
		var zero T

		return zero, ErrEmptyHeap
	}

	return h.items[0], nil
}

// Push inserts v, then restores the invariant by sifting it up.
// Complexity: O(log n).
func (h *Heap[T]) Push(v T) {
	// 1) Append at the end of the backing sequence (next free leaf).
	h.items = append(h.items, v)

	// 2) Swap with the parent while the invariant is violated.
	h.siftUp(len(h.items) - 1)
}

// Pop removes and returns the root element.
// Returns ErrEmptyHeap when the heap has no elements.
//
// Steps:
//  1. Capture the root.
//  2. Overwrite the root with the last element and shrink by one.
//  3. If elements remain, sift the new root down.
//
// Complexity: O(log n).
func (h *Heap[T]) Pop() (T, error) {
	if len(h.items) == 0 {
		var zero T

		return zero, ErrEmptyHeap
	}

	root := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]
	if len(h.items) > 0 {
		h.siftDown(0)
	}

	return root, nil
}

// RemoveAt removes and returns the element at index i in the backing array.
// Returns ErrIndexOutOfRange when i is outside [0, Len).
//
// The vacated slot is overwritten with the last element; the replacement is
// then sifted in the single direction it requires. One comparison against the
// parent decides that direction: when the replacement beats its parent the
// whole subtree below the slot already dominates it (parent <= old slot value
// <= descendants on a valid heap), so only an upward pass can be needed, and
// symmetrically only a downward pass otherwise. container/heap fixes both
// directions unconditionally; the single-probe form is kept here.
//
// Complexity: O(log n).
func (h *Heap[T]) RemoveAt(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(h.items) {
		return zero, fmt.Errorf("%w: index %d outside [0,%d)", ErrIndexOutOfRange, i, len(h.items))
	}

	// 1) Capture the removed element.
	removed := h.items[i]

	// 2) Move the last element into the vacated slot and shrink.
	last := len(h.items) - 1
	if i == last {
		// Removing the final leaf needs no repair.
		h.items = h.items[:last]

		return removed, nil
	}
	h.items[i] = h.items[last]
	h.items = h.items[:last]

	// 3) Repair in one direction only, chosen by the parent probe.
	if i > 0 && h.prefer(i, (i-1)/2) {
		h.siftUp(i)
	} else {
		h.siftDown(i)
	}

	return removed, nil
}

// UpdateAt replaces the element at index i with v and restores the invariant.
// Returns ErrIndexOutOfRange when i is outside [0, Len).
//
// The sift direction follows from whether v improves on the old value under
// the heap's mode: an improvement can only violate the invariant upward, a
// regression only downward.
//
// Complexity: O(log n).
func (h *Heap[T]) UpdateAt(i int, v T) error {
	if i < 0 || i >= len(h.items) {
		return fmt.Errorf("%w: index %d outside [0,%d)", ErrIndexOutOfRange, i, len(h.items))
	}

	old := h.items[i]
	h.items[i] = v
	if h.better(v, old) {
		h.siftUp(i)
	} else {
		h.siftDown(i)
	}

	return nil
}

// Merge inserts every element of other into h, one Push at a time.
// Returns ErrModeMismatch when the two heaps were built with different modes,
// whether or not other holds any elements; h is left untouched in that case.
// A nil other is a no-op.
//
// Both heaps must share the same base ordering; LessFunc identity cannot be
// checked at runtime, so that part of the contract rests on the caller.
// other is never mutated.
//
// Complexity: O(m log(n+m)) for m = other.Len().
func (h *Heap[T]) Merge(other *Heap[T]) error {
	if other == nil {
		return nil
	}
	if other.mode != h.mode {
		return fmt.Errorf("%w: %s vs %s", ErrModeMismatch, h.mode, other.mode)
	}

	// Snapshot first so merging a heap into itself sees a stable source.
	for _, v := range other.Items() {
		h.Push(v)
	}

	return nil
}

// IsValid scans the whole array and reports whether the invariant holds at
// every index. Pure query, no mutation.
// Complexity: O(n).
func (h *Heap[T]) IsValid() bool {
	for i := 1; i < len(h.items); i++ {
		if h.prefer(i, (i-1)/2) {
			// Child strictly beats its parent: invariant broken.
			return false
		}
	}

	return true
}

// TopK returns the k best elements in extraction order. It works on a private
// deep copy, so the receiver is left untouched. k <= 0 or an empty heap
// yields an empty result; k larger than Len is clamped.
// Complexity: O(n + k log n).
func (h *Heap[T]) TopK(k int) []T {
	if k <= 0 || len(h.items) == 0 {
		return []T{}
	}
	if k > len(h.items) {
		k = len(h.items)
	}

	c := h.Clone()
	out := make([]T, 0, k)
	for i := 0; i < k; i++ {
		v, _ := c.Pop() // the clone holds at least k elements
		out = append(out, v)
	}

	return out
}

// Sorted returns every element in extraction order: ascending for MinHeap,
// descending for MaxHeap. Works on a private deep copy; the receiver is
// left untouched.
// Complexity: O(n log n).
func (h *Heap[T]) Sorted() []T {
	return h.TopK(len(h.items))
}

// Clone returns a deep copy: same mode, same base ordering, private copy of
// the backing storage.
// Complexity: O(n).
func (h *Heap[T]) Clone() *Heap[T] {
	c := &Heap[T]{mode: h.mode, less: h.less, items: make([]T, len(h.items))}
	copy(c.items, h.items)

	return c
}

// Items returns a copied snapshot of the backing array in storage order
// (not extraction order). Mutating the result does not affect the heap.
// Complexity: O(n).
func (h *Heap[T]) Items() []T {
	out := make([]T, len(h.items))
	copy(out, h.items)

	return out
}

// better reports whether a must sit closer to the root than b under the mode.
func (h *Heap[T]) better(a, b T) bool {
	if h.mode == MaxHeap {
		return h.less(b, a)
	}

	return h.less(a, b)
}

// prefer is better on stored elements, by index.
func (h *Heap[T]) prefer(i, j int) bool { return h.better(h.items[i], h.items[j]) }

// siftUp swaps the element at i with its parent until the invariant holds.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !h.prefer(i, p) {
			break
		}
		h.items[i], h.items[p] = h.items[p], h.items[i]
		i = p
	}
}

// siftDown swaps the element at i with its preferred child until the
// invariant holds. When both children beat the parent, the one that belongs
// closer to the root under the mode is chosen.
func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		l := 2*i + 1
		if l >= n || l < 0 { // l < 0 after int overflow
			break
		}
		best := l
		if r := l + 1; r < n && h.prefer(r, l) {
			best = r
		}
		if !h.prefer(best, i) {
			break
		}
		h.items[i], h.items[best] = h.items[best], h.items[i]
		i = best
	}
}
