package dijkstra_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/heapcraft/dijkstra"
)

// randomGraph builds a deterministic sparse digraph with n vertices and
// roughly deg arcs per vertex.
func randomGraph(n, deg int) *dijkstra.Graph {
	r := rand.New(rand.NewSource(42))
	g, _ := dijkstra.NewGraph(n)
	for u := 0; u < n; u++ {
		for d := 0; d < deg; d++ {
			_ = g.AddEdge(u, r.Intn(n), int64(r.Intn(100)))
		}
	}

	return g
}

// BenchmarkShortestPaths measures full runs over sparse random digraphs.
func BenchmarkShortestPaths(b *testing.B) {
	for _, n := range []int{1000, 10000, 100000} {
		g := randomGraph(n, 4)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = dijkstra.ShortestPaths(g, 0)
			}
		})
	}
}

// BenchmarkShortestPaths_WithPath adds predecessor recording to the run.
func BenchmarkShortestPaths_WithPath(b *testing.B) {
	g := randomGraph(10000, 4)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.ShortestPaths(g, 0, dijkstra.WithReturnPath())
	}
}
