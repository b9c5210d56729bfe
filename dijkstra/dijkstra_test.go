// Package dijkstra_test contains unit tests for the shortest-path runner:
// input validation, distance correctness on small digraphs, predecessor
// reconstruction, MaxDistance capping, and the compact graph container.
package dijkstra_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/heapcraft/dijkstra"
)

// buildMediumGraph returns the 6-vertex digraph used across these tests.
//
//	0→1(4), 0→2(2), 1→2(1), 1→3(5), 2→3(8), 2→4(10), 3→4(2), 3→5(6), 4→5(3)
//
// Shortest distances from 0 are [0, 4, 2, 9, 11, 14].
func buildMediumGraph(t *testing.T) *dijkstra.Graph {
	t.Helper()

	g, err := dijkstra.NewGraph(6)
	if err != nil {
		t.Fatal(err)
	}
	edges := []struct {
		u, v int
		w    int64
	}{
		{0, 1, 4}, {0, 2, 2}, {1, 2, 1}, {1, 3, 5}, {2, 3, 8},
		{2, 4, 10}, {3, 4, 2}, {3, 5, 6}, {4, 5, 3},
	}
	for _, e := range edges {
		if err := g.AddEdge(e.u, e.v, e.w); err != nil {
			t.Fatalf("AddEdge(%d,%d,%d): %v", e.u, e.v, e.w, err)
		}
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation: construction and run inputs must be rejected cleanly.
// ------------------------------------------------------------------------

func TestNewGraph_NegativeCount(t *testing.T) {
	_, err := dijkstra.NewGraph(-1)
	if !errors.Is(err, dijkstra.ErrBadVertexCount) {
		t.Fatalf("expected ErrBadVertexCount, got %v", err)
	}
}

func TestAddEdge_EndpointRange(t *testing.T) {
	g, err := dijkstra.NewGraph(3)
	if err != nil {
		t.Fatal(err)
	}

	// Both endpoints are range-checked against the fixed vertex set.
	if err := g.AddEdge(-1, 0, 1); !errors.Is(err, dijkstra.ErrVertexRange) {
		t.Errorf("from=-1: expected ErrVertexRange, got %v", err)
	}
	if err := g.AddEdge(0, 3, 1); !errors.Is(err, dijkstra.ErrVertexRange) {
		t.Errorf("to=3: expected ErrVertexRange, got %v", err)
	}

	// An in-range arc is accepted.
	if err := g.AddEdge(0, 2, 7); err != nil {
		t.Fatalf("valid AddEdge failed: %v", err)
	}
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount = %d; want 1", got)
	}
}

func TestShortestPaths_NilGraph(t *testing.T) {
	_, err := dijkstra.ShortestPaths(nil, 0)
	if !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestShortestPaths_SourceOutOfRange(t *testing.T) {
	g, err := dijkstra.NewGraph(2)
	if err != nil {
		t.Fatal(err)
	}

	for _, src := range []int{-1, 2, 99} {
		_, err := dijkstra.ShortestPaths(g, src)
		if !errors.Is(err, dijkstra.ErrSourceRange) {
			t.Errorf("source=%d: expected ErrSourceRange, got %v", src, err)
		}
	}
}

func TestShortestPaths_EmptyGraphRejectsAnySource(t *testing.T) {
	g, err := dijkstra.NewGraph(0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := dijkstra.ShortestPaths(g, 0); !errors.Is(err, dijkstra.ErrSourceRange) {
		t.Fatalf("expected ErrSourceRange on a zero-vertex graph, got %v", err)
	}
}

func TestWithMaxDistance_NegativePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on negative MaxDistance")
		}
	}()
	g, _ := dijkstra.NewGraph(1)
	_, _ = dijkstra.ShortestPaths(g, 0, dijkstra.WithMaxDistance(-1))
}

// ------------------------------------------------------------------------
// 2. Distance correctness.
// ------------------------------------------------------------------------

func TestShortestPaths_MediumDirectedGraph(t *testing.T) {
	g := buildMediumGraph(t)

	res, err := dijkstra.ShortestPaths(g, 0)
	if err != nil {
		t.Fatal(err)
	}

	want := []int64{0, 4, 2, 9, 11, 14}
	for v, d := range want {
		if res.Dist[v] != d {
			t.Errorf("dist[%d] = %d; want %d", v, res.Dist[v], d)
		}
	}

	// Prev must stay nil when path recording was not requested.
	if res.Prev != nil {
		t.Errorf("expected nil Prev, got %v", res.Prev)
	}
}

func TestShortestPaths_AlternateSource(t *testing.T) {
	g := buildMediumGraph(t)

	// From vertex 2, arcs only lead forward: 2→3(8), 2→4(10), 3→4(2), ...
	res, err := dijkstra.ShortestPaths(g, 2)
	if err != nil {
		t.Fatal(err)
	}

	want := []int64{dijkstra.Inf, dijkstra.Inf, 0, 8, 10, 13}
	for v, d := range want {
		if res.Dist[v] != d {
			t.Errorf("dist[%d] = %d; want %d", v, res.Dist[v], d)
		}
	}
}

func TestShortestPaths_ParallelArcsPickCheapest(t *testing.T) {
	g, err := dijkstra.NewGraph(2)
	if err != nil {
		t.Fatal(err)
	}

	// Append-only adjacency permits parallel arcs; relaxation sees both.
	for _, w := range []int64{9, 3, 6} {
		if err := g.AddEdge(0, 1, w); err != nil {
			t.Fatal(err)
		}
	}

	res, err := dijkstra.ShortestPaths(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist[1] != 3 {
		t.Errorf("dist[1] = %d; want 3", res.Dist[1])
	}
}

func TestShortestPaths_SelfLoopIsHarmless(t *testing.T) {
	g, err := dijkstra.NewGraph(2)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(0, 0, 0); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(0, 1, 5); err != nil {
		t.Fatal(err)
	}

	res, err := dijkstra.ShortestPaths(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist[0] != 0 || res.Dist[1] != 5 {
		t.Errorf("dist = %v; want [0 5]", res.Dist)
	}
}

func TestShortestPaths_UnreachedKeepInf(t *testing.T) {
	g, err := dijkstra.NewGraph(3)
	if err != nil {
		t.Fatal(err)
	}
	// Vertex 2 has no incoming arcs.
	if err := g.AddEdge(0, 1, 1); err != nil {
		t.Fatal(err)
	}

	res, err := dijkstra.ShortestPaths(g, 0, dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}

	if res.Dist[2] != dijkstra.Inf {
		t.Errorf("dist[2] = %d; want Inf", res.Dist[2])
	}
	if res.Prev[2] != -1 {
		t.Errorf("prev[2] = %d; want -1", res.Prev[2])
	}
	if p := res.PathTo(2); p != nil {
		t.Errorf("PathTo(2) = %v; want nil for an unreached vertex", p)
	}
}

// ------------------------------------------------------------------------
// 3. Path reconstruction.
// ------------------------------------------------------------------------

func TestShortestPaths_PathReconstruction(t *testing.T) {
	g := buildMediumGraph(t)

	res, err := dijkstra.ShortestPaths(g, 0, dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}

	// The cheapest route to 5 is 0→1→3→4→5 (4+5+2+3 = 14).
	want := []int{0, 1, 3, 4, 5}
	got := res.PathTo(5)
	if len(got) != len(want) {
		t.Fatalf("PathTo(5) = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PathTo(5) = %v; want %v", got, want)
		}
	}

	// The source's path is just itself.
	if p := res.PathTo(0); len(p) != 1 || p[0] != 0 {
		t.Errorf("PathTo(0) = %v; want [0]", p)
	}

	// Out-of-range targets yield nil, not a panic.
	if p := res.PathTo(-1); p != nil {
		t.Errorf("PathTo(-1) = %v; want nil", p)
	}
	if p := res.PathTo(6); p != nil {
		t.Errorf("PathTo(6) = %v; want nil", p)
	}
}

func TestPathTo_NilWithoutReturnPath(t *testing.T) {
	g := buildMediumGraph(t)

	res, err := dijkstra.ShortestPaths(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if p := res.PathTo(5); p != nil {
		t.Errorf("PathTo without recorded predecessors = %v; want nil", p)
	}
}

// ------------------------------------------------------------------------
// 4. MaxDistance: vertices beyond the cap are never finalized.
// ------------------------------------------------------------------------

func TestShortestPaths_MaxDistanceLimits(t *testing.T) {
	// Chain 0→1→2→3, unit weights.
	g, err := dijkstra.NewGraph(4)
	if err != nil {
		t.Fatal(err)
	}
	for u := 0; u < 3; u++ {
		if err := g.AddEdge(u, u+1, 1); err != nil {
			t.Fatal(err)
		}
	}

	res, err := dijkstra.ShortestPaths(g, 0, dijkstra.WithMaxDistance(1))
	if err != nil {
		t.Fatal(err)
	}

	want := []int64{0, 1, dijkstra.Inf, dijkstra.Inf}
	for v, d := range want {
		if res.Dist[v] != d {
			t.Errorf("dist[%d] = %d; want %d", v, res.Dist[v], d)
		}
	}
}

func TestShortestPaths_MaxDistanceZero(t *testing.T) {
	g, err := dijkstra.NewGraph(2)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(0, 1, 1); err != nil {
		t.Fatal(err)
	}

	// Cap zero: only the source itself is finalized.
	res, err := dijkstra.ShortestPaths(g, 0, dijkstra.WithMaxDistance(0))
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist[0] != 0 {
		t.Errorf("dist[0] = %d; want 0", res.Dist[0])
	}
	if res.Dist[1] != dijkstra.Inf {
		t.Errorf("dist[1] = %d; want Inf", res.Dist[1])
	}
}

// ------------------------------------------------------------------------
// 5. Edge cases and the graph container.
// ------------------------------------------------------------------------

func TestShortestPaths_SingleVertex(t *testing.T) {
	g, err := dijkstra.NewGraph(1)
	if err != nil {
		t.Fatal(err)
	}

	res, err := dijkstra.ShortestPaths(g, 0, dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist[0] != 0 {
		t.Errorf("dist[0] = %d; want 0", res.Dist[0])
	}
	if res.Prev[0] != -1 {
		t.Errorf("prev[0] = %d; want -1", res.Prev[0])
	}
}

func TestGraph_NeighborsIsACopy(t *testing.T) {
	g, err := dijkstra.NewGraph(2)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(0, 1, 7); err != nil {
		t.Fatal(err)
	}

	// Mutating the returned slice must not disturb the graph.
	n := g.Neighbors(0)
	n[0].Weight = 1000

	res, err := dijkstra.ShortestPaths(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist[1] != 7 {
		t.Errorf("dist[1] = %d; want 7 (graph must own its arcs)", res.Dist[1])
	}

	// Out-of-range queries yield nil.
	if got := g.Neighbors(5); got != nil {
		t.Errorf("Neighbors(5) = %v; want nil", got)
	}
}

func TestGraph_InsertionOrderPreserved(t *testing.T) {
	g, err := dijkstra.NewGraph(4)
	if err != nil {
		t.Fatal(err)
	}
	order := []int{3, 1, 2}
	for _, v := range order {
		if err := g.AddEdge(0, v, int64(v)); err != nil {
			t.Fatal(err)
		}
	}

	n := g.Neighbors(0)
	if len(n) != len(order) {
		t.Fatalf("Neighbors(0) has %d arcs; want %d", len(n), len(order))
	}
	for i, v := range order {
		if n[i].To != v {
			t.Errorf("arc %d points to %d; want %d (append-only order)", i, n[i].To, v)
		}
	}
}
