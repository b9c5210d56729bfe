// Package heapcraft is a binary-heap toolbox: one generic indexed heap and
// the algorithms that are naturally built on top of it — sorting, bounded
// selection, stable priority queues, shortest paths, k-way merging and
// running medians.
//
// 🚀 What is heapcraft?
//
//	A small, focused library that brings together:
//		• Core engine: a generic array-backed heap with min/max modes,
//		  positional removal and update, O(n) heapify, merge and audit
//		• Ordering: heap-sort over slices, ascending or descending
//		• Selection: bounded k-largest / k-smallest in O(n log k)
//		• Queueing: a stable priority queue — FIFO within equal priority
//		• Paths: lazy-deletion Dijkstra over a compact integer digraph
//		• Streams: k-way merge of sorted sequences, running-median tracker
//
// ✨ Why choose heapcraft?
//
//   - One engine, many faces – every package consumes the same heap core
//   - Predictable ownership – constructors copy in, queries copy out,
//     no shared backing storage, ever
//   - Honest failures – sentinel errors for empty containers and bad
//     indices, never silent zero values
//   - Generic throughout – natural ordering out of the box, custom
//     orderings via a single LessFunc
//
// Under the hood, everything is organized under focused subpackages:
//
//	heap/     — the indexed binary heap engine (start here)
//	heapsort/ — slice sorting via heap extraction
//	topk/     — bounded k-largest / k-smallest selection
//	pqueue/   — stable FIFO-within-priority queue
//	dijkstra/ — shortest paths on a compact digraph
//	kway/     — k-way merge of sorted sequences
//	median/   — running median over two balanced heaps
//	logger/   — zerolog-backed instrumentation shared by the above
//
// Quick ASCII example:
//
//	        2            index:  parent (i-1)/2
//	      /   \                  children 2i+1, 2i+2
//	     5     3
//	    / \
//	  11   8
//
//	a min-heap of five elements laid out in the slice [2 5 3 11 8].
//
// Dive into the per-package docs for contracts, complexity tables and
// runnable examples.
//
//	go get github.com/katalvlaran/heapcraft
package heapcraft
