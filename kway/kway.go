// Package kway merges any number of individually sorted sequences into one
// sorted sequence.
//
// The driver keeps one cursor per non-empty source in a min-heap: the value
// currently at the source's head, the source index, and the offset of the
// next unread element. Popping the least head and advancing its cursor costs
// O(log k) for k sources, so merging N total elements costs O(N log k).
//
// Inputs are never mutated and the output is freshly allocated. Sources must
// each be sorted under the ordering in use; ties between different sources
// resolve in no particular order.
package kway

import (
	"time"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/heapcraft/heap"
	"github.com/katalvlaran/heapcraft/logger"
)

// cursor marks the read position of one source: the element exposed at its
// head, the owning source, and the offset of the next unread element. Read
// positions belong to the merge driver alone; sources are never written.
type cursor[T any] struct {
	value T   // element currently exposed at the head
	src   int // index of the owning source
	pos   int // offset of the next element within that source
}

// Merge combines ascending sequences into one ascending sequence using the
// natural ordering of T. Empty and nil sources contribute nothing; with no
// sources at all the result is empty. Complexity: O(N log k).
func Merge[T constraints.Ordered](seqs ...[]T) []T {
	return MergeFunc(func(a, b T) bool { return a < b }, seqs...)
}

// MergeFunc combines sequences that are each sorted under less into one
// sequence sorted under less. Panics with heap.ErrNilLess if less is nil.
// Complexity: O(N log k).
func MergeFunc[T any](less heap.LessFunc[T], seqs ...[]T) []T {
	start := time.Now()

	// 1) Seed the cursor heap with the head of every non-empty source.
	h := heap.NewMinFunc(func(a, b cursor[T]) bool { return less(a.value, b.value) })
	total := 0
	for s, seq := range seqs {
		total += len(seq)
		if len(seq) > 0 {
			h.Push(cursor[T]{value: seq[0], src: s, pos: 1})
		}
	}

	// 2) Drain: pop the least head, emit it, advance the owning source.
	out := make([]T, 0, total)
	for !h.IsEmpty() {
		c, _ := h.Pop()
		out = append(out, c.value)
		if c.pos < len(seqs[c.src]) {
			h.Push(cursor[T]{value: seqs[c.src][c.pos], src: c.src, pos: c.pos + 1})
		}
	}

	// 3) One debug event per merge; a no-op unless the host enabled logging.
	log := logger.Logger()
	log.Debug().
		Int("sources", len(seqs)).
		Int("elements", total).
		Dur("took", time.Since(start)).
		Msg("k-way merge done")

	return out
}
