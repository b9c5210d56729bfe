// Package dijkstra implements the lazy-deletion form of Dijkstra's algorithm
// over the compact digraph defined in types.go.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: an improvement pushes a duplicate queue entry
//     instead of reordering the queue; stale entries are recognized by the
//     finalization bit and skipped on extraction. This is intentional, not
//     a leak: every entry is popped exactly once.
//   - The frontier is a stable min-priority queue (pqueue.NewMin); among
//     equal distances the earlier push is served first, which keeps runs
//     deterministic for a given insertion order.
//   - Finalized vertices live in a dense bitset over 0..n-1.
//   - Exploration stops as soon as the extracted distance exceeds
//     MaxDistance; nothing nearer can surface from a min-priority queue.
package dijkstra

import (
	"fmt"
	"time"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/heapcraft/logger"
	"github.com/katalvlaran/heapcraft/pqueue"
)

// ShortestPaths computes minimum distances from source to every vertex of g.
//
// Returns:
//
//   - Result.Dist: per-vertex minimum distance, Inf when unreached.
//   - Result.Prev: predecessor slice when WithReturnPath was given, else nil.
//   - err: ErrNilGraph or ErrSourceRange on invalid input.
//
// Negative arc weights are not detected; the outcome on such graphs is
// unspecified. Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPaths(g *Graph, source int, opts ...Option) (*Result, error) {
	// 1) Validate the graph handle.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Validate the source against the fixed vertex range.
	if source < 0 || source >= g.VertexCount() {
		return nil, fmt.Errorf("%w: source=%d outside [0,%d)", ErrSourceRange, source, g.VertexCount())
	}

	// 3) Build and apply options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 4) Initialize runner state and execute the main loop.
	r := &runner{g: g, options: cfg, source: source}
	start := time.Now()
	r.init()
	r.process()

	// 5) One debug event per run; a no-op unless the host enabled logging.
	log := logger.Logger()
	log.Debug().
		Int("vertices", g.VertexCount()).
		Int("edges", g.EdgeCount()).
		Uint("finalized", r.visited.Count()).
		Int("pops", r.pops).
		Dur("took", time.Since(start)).
		Msg("dijkstra done")

	// 6) Assemble the result; the slices transfer to the caller.
	res := &Result{Source: source, Dist: r.dist}
	if cfg.ReturnPath {
		res.Prev = r.prev
	}

	return res, nil
}

// runner holds the mutable state for a single ShortestPaths execution.
type runner struct {
	g       *Graph                    // input graph; read-only during the run
	options Options                   // configuration (ReturnPath, MaxDistance)
	source  int                       // start vertex
	dist    []int64                   // dist[v] = current best distance from source
	prev    []int                     // predecessor slice; nil unless ReturnPath
	visited *bitset.BitSet            // finalized vertices
	pq      *pqueue.Queue[int, int64] // distance-keyed min-priority frontier
	pops    int                       // total queue extractions, stale ones included
}

// init sets every distance to Inf, seeds the source at zero, and pushes the
// first frontier entry.
func (r *runner) init() {
	n := r.g.VertexCount()

	// 1) dist[v] = Inf for every vertex; the source is the lone exception.
	r.dist = make([]int64, n)
	for i := range r.dist {
		r.dist[i] = Inf
	}
	r.dist[r.source] = 0

	// 2) Predecessors are recorded only when the caller asked for paths.
	if r.options.ReturnPath {
		r.prev = make([]int, n)
		for i := range r.prev {
			r.prev[i] = -1
		}
	}

	// 3) Dense finalization set over 0..n-1.
	r.visited = bitset.New(uint(n))

	// 4) Seed the frontier with (source, 0).
	r.pq = pqueue.NewMin[int, int64]()
	r.pq.Push(r.source, 0)
}

// process repeatedly extracts the closest frontier vertex and relaxes its
// outgoing arcs.
//
// Loop termination:
//
//   - The queue empties (every reachable vertex finalized).
//   - The extracted distance exceeds MaxDistance (nothing nearer remains).
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the closest entry; the loop condition guarantees success.
		u, d, _ := r.pq.PopWithPriority()
		r.pops++

		// 2) Skip stale entries: a finalized vertex may surface again
		//    because improvements push duplicates instead of rekeying.
		if r.visited.Test(uint(u)) {
			continue
		}

		// 3) Beyond the cap nothing nearer can ever surface; stop without
		//    finalizing u.
		if d > r.options.MaxDistance {
			break
		}

		// 4) Finalize u; d is now its exact distance.
		r.visited.Set(uint(u))

		// 5) Relax every arc leaving u.
		r.relax(u)
	}
}

// relax scans u's adjacency list and records every strictly shorter path it
// finds, pushing a fresh frontier entry per improvement.
//
// Assumes dist[u] is final before the call.
func (r *runner) relax(u int) {
	// Direct adjacency access: Neighbors would copy once per finalized vertex.
	var cand int64
	for _, e := range r.g.adj[u] {
		// 1) Skip hops that would reach or pass Inf. They cannot improve any
		//    finite bound, and the addition below would overflow.
		if e.Weight >= Inf-r.dist[u] {
			continue
		}
		cand = r.dist[u] + e.Weight

		// 2) Respect the exploration cap.
		if cand > r.options.MaxDistance {
			continue
		}

		// 3) Record strict improvements only; ties never repush.
		if cand >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = cand
		if r.prev != nil {
			r.prev[e.To] = u
		}

		// 4) Lazy decrease-key: push the better entry and let the stale one
		//    be skipped when it eventually pops.
		r.pq.Push(e.To, cand)
	}
}
