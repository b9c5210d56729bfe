// Package dijkstra defines the compact digraph, configuration options, and
// result carrier for the lazy-deletion shortest-path algorithm.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a directed graph with non-negative arc weights.
// The algorithm keeps a min-priority queue of (vertex, tentative distance)
// entries and finalizes vertices in increasing order of distance.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |vertices|, E = |edges|
//	   • Each vertex is finalized at most once (V useful extractions).
//	   • Each relaxation may push one queue entry (up to E pushes).
//	   • Each queue operation costs O(log N), N ≤ V + E, simplified to O(log V).
//	– Space: O(V + E)
//	   • O(V) for the distance and predecessor slices.
//	   • O(E) worst-case queue entries under lazy decrease-key.
//
// Options:
//
//	– WithReturnPath:  record predecessors so Result.PathTo can rebuild paths.
//	– WithMaxDistance: stop exploring beyond a distance cap (must be ≥ 0).
//
// Errors (sentinel):
//
//	– ErrBadVertexCount if NewGraph receives a negative vertex count.
//	– ErrNilGraph       if ShortestPaths receives a nil graph.
//	– ErrVertexRange    if AddEdge receives an endpoint outside [0, n).
//	– ErrSourceRange    if ShortestPaths receives a source outside [0, n).
//	– ErrBadMaxDistance panic message for a negative WithMaxDistance value.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Inf marks a vertex that no admissible path from the source has reached.
const Inf int64 = math.MaxInt64

// Sentinel errors returned by graph construction and ShortestPaths.
var (
	// ErrBadVertexCount indicates a negative vertex count passed to NewGraph.
	ErrBadVertexCount = errors.New("dijkstra: vertex count must be non-negative")

	// ErrNilGraph indicates that a nil *Graph was passed to ShortestPaths.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexRange indicates an edge endpoint outside the graph's [0, n) range.
	ErrVertexRange = errors.New("dijkstra: vertex outside graph range")

	// ErrSourceRange indicates a source vertex outside the graph's [0, n) range.
	ErrSourceRange = errors.New("dijkstra: source vertex outside graph range")

	// ErrBadMaxDistance indicates that WithMaxDistance was given a negative
	// value, which is not meaningful for a distance cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Edge is a single outgoing arc of the digraph.
//
// Weights are assumed non-negative; AddEdge does not validate them, and the
// algorithm's behavior on negative weights is unspecified.
type Edge struct {
	To     int   // destination vertex
	Weight int64 // arc cost
}

// Graph is a compact directed graph over the fixed vertex set 0..n-1.
//
// The vertex count is chosen at construction and never changes. Each vertex
// carries an append-only adjacency list: AddEdge only ever appends, so
// Neighbors reports arcs in insertion order and parallel arcs are allowed.
//
// A Graph is not safe for concurrent mutation; concurrent ShortestPaths runs
// over one immutable graph are fine.
type Graph struct {
	adj [][]Edge // adj[u] lists the arcs leaving u, in insertion order
}

// NewGraph returns an empty digraph over the vertices 0..n-1.
// Returns ErrBadVertexCount if n is negative. Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadVertexCount, n)
	}

	return &Graph{adj: make([][]Edge, n)}, nil
}

// AddEdge appends the directed arc from→to with the given weight.
// Returns ErrVertexRange when either endpoint lies outside [0, n).
// Negative weights are accepted but leave ShortestPaths undefined.
// Complexity: amortized O(1).
func (g *Graph) AddEdge(from, to int, w int64) error {
	// 1) Validate both endpoints against the fixed vertex range.
	if from < 0 || from >= len(g.adj) {
		return fmt.Errorf("%w: from=%d outside [0,%d)", ErrVertexRange, from, len(g.adj))
	}
	if to < 0 || to >= len(g.adj) {
		return fmt.Errorf("%w: to=%d outside [0,%d)", ErrVertexRange, to, len(g.adj))
	}

	// 2) Append; adjacency lists only ever grow.
	g.adj[from] = append(g.adj[from], Edge{To: to, Weight: w})

	return nil
}

// VertexCount returns the fixed number of vertices n. Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount returns the total number of arcs. Complexity: O(n).
func (g *Graph) EdgeCount() int {
	total := 0
	for _, edges := range g.adj {
		total += len(edges)
	}

	return total
}

// Neighbors returns a copy of u's outgoing arcs in insertion order.
// An out-of-range u yields nil. Complexity: O(deg u).
func (g *Graph) Neighbors(u int) []Edge {
	if u < 0 || u >= len(g.adj) {
		return nil
	}

	out := make([]Edge, len(g.adj[u]))
	copy(out, g.adj[u])

	return out
}

// Options configures the behavior of a ShortestPaths run.
//
// ReturnPath  – if true, record predecessors and expose Result.Prev/PathTo.
// MaxDistance – cap on distances to explore; vertices beyond it stay at Inf.
//
//	Must be ≥ 0. Default is Inf (no cap).
type Options struct {
	ReturnPath  bool  // whether to record the predecessor slice
	MaxDistance int64 // maximum distance to explore
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// WithReturnPath enables predecessor recording in the result, so that
// Result.PathTo can reconstruct one shortest path per vertex.
// If absent (default), Result.Prev is nil.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance cap. Vertices whose shortest
// distance exceeds the cap are never finalized and keep Inf.
// Must pass a non-negative value; negative values panic with
// ErrBadMaxDistance. Default (if not set) is Inf (no cap).
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with the defaults:
// no predecessor recording, no distance cap.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: Inf,
	}
}

// Result carries the outcome of one ShortestPaths run.
type Result struct {
	// Source is the vertex the run started from.
	Source int

	// Dist[v] is the minimum distance from Source to v, or Inf when no
	// admissible path reached v.
	Dist []int64

	// Prev[v] is the predecessor of v on one shortest path from Source,
	// or -1 when v is the source or unreached. Nil unless the run was
	// configured WithReturnPath.
	Prev []int
}

// PathTo reconstructs one shortest path from the source to v as a vertex
// sequence beginning with the source and ending with v.
//
// It returns nil when v is out of range, when v was never reached, or when
// the run did not record predecessors. Complexity: O(path length).
func (r *Result) PathTo(v int) []int {
	// 1) Path reconstruction needs recorded predecessors and a reached target.
	if r.Prev == nil || v < 0 || v >= len(r.Dist) || r.Dist[v] == Inf {
		return nil
	}

	// 2) Walk the predecessor chain back to the source.
	path := []int{v}
	for u := v; u != r.Source; {
		u = r.Prev[u]
		path = append(path, u)
	}

	// 3) Reverse in place so the source comes first.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
