// Package dijkstra provides single-source shortest paths on a compact
// integer-vertex digraph with non-negative arc weights.
//
// Overview:
//
//   - ShortestPaths finalizes vertices in increasing distance order using a
//     stable min-priority queue, in O((V + E) log V) time for V vertices and
//     E arcs.
//   - Decrease-key is lazy: a shorter path pushes a duplicate queue entry,
//     and stale entries are skipped on extraction via a dense bitset of
//     finalized vertices. Intentional, and cheaper in practice than an
//     indexed heap for sparse graphs.
//   - The graph is deliberately small: a fixed vertex set 0..n-1 and
//     append-only adjacency lists. No labels, no deletion, no edge lookup.
//
// When to use:
//
//   - Exact shortest distances on static, non-negatively weighted digraphs:
//     routing tables, dependency costs, grid reachability.
//   - As the skeleton for heuristic searches that replace the priority with
//     distance-plus-estimate.
//
// Key features:
//
//   - WithReturnPath records predecessors; Result.PathTo rebuilds one
//     shortest path per vertex in O(path length).
//   - WithMaxDistance caps exploration: vertices farther than the cap are
//     never finalized and keep Inf. The cap must be non-negative; a negative
//     value panics with ErrBadMaxDistance.
//   - Unreached vertices are reported as Inf (math.MaxInt64), never zero.
//
// Errors:
//
//   - ErrBadVertexCount - NewGraph with a negative vertex count.
//   - ErrVertexRange    - AddEdge endpoint outside [0, n).
//   - ErrNilGraph       - ShortestPaths on a nil graph.
//   - ErrSourceRange    - ShortestPaths source outside [0, n).
//
// Negative arc weights are NOT validated. Dijkstra's invariants do not hold
// under them, and the result is unspecified; callers own that precondition.
//
// Thread safety:
//
//   - A Graph must not be mutated while a run is in flight. Concurrent runs
//     over one immutable graph are safe; each run owns its state.
//
// See also:
//
//   - pqueue for the stable min-priority frontier this package consumes.
//   - heap for the underlying binary heap engine.
package dijkstra
