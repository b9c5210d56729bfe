// Package pqueue provides a stable priority queue: the best priority leaves
// first, and elements that share a priority leave in the exact order they
// arrived.
//
// Overview:
//
//   - Plain binary heaps reorder equal elements freely; two pushes with the
//     same priority may pop in either order. Queue removes that freedom by
//     pairing every payload with a monotonically increasing insertion
//     sequence number and using it as the secondary sort key.
//   - The counter is scoped to the instance: it starts at zero, never resets
//     and never repeats, so tie-breaking stays deterministic for the whole
//     lifetime of the queue and independent queues cannot disturb each other.
//   - Two configurations exist. New builds a queue where the HIGHEST
//     priority wins; NewMin builds one where the LOWEST priority wins, which
//     is what cost-driven consumers such as the dijkstra package use.
//
// When to use:
//
//   - Task scheduling where submission order must be honored among tasks of
//     equal urgency.
//   - Any algorithm that needs "ordered by score, then by arrival" without
//     hand-rolling composite comparison keys.
//
// Complexity:
//
//	Push, Pop, PopWithPriority:     O(log n)
//	Peek, PeekPriority, Len:        O(1)
//
// Errors:
//
//   - ErrEmptyQueue - Pop, PopWithPriority, Peek or PeekPriority on an empty
//     queue. A zero payload is never returned silently.
//
// Thread safety:
//
//   - A single Queue instance is not safe for concurrent use; synchronize
//     externally if one instance must be shared.
//   - Distinct instances share no state, including their sequence counters.
//
// See also:
//
//   - heap for the underlying binary heap engine.
//   - dijkstra for a consumer that relies on the min-priority configuration.
package pqueue
