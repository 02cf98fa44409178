package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// randomGrid builds an n×n mask with roughly 30% walls and open corners.
func randomGrid(b *testing.B, n int) *gridgraph.Grid {
	rng := rand.New(rand.NewSource(42))
	walls := make([][]bool, n)
	for r := 0; r < n; r++ {
		walls[r] = make([]bool, n)
		for c := 0; c < n; c++ {
			walls[r][c] = rng.Intn(10) < 3
		}
	}
	walls[0][0], walls[n-1][n-1] = false, false
	g, err := gridgraph.NewGrid(walls, gridgraph.Coordinate{}, gridgraph.Coordinate{Row: n - 1, Col: n - 1})
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	return g
}

// BenchmarkConnectedComponents measures ConnectedComponents on a 500×500 grid.
// Complexity: O(W×H)
func BenchmarkConnectedComponents(b *testing.B) {
	g := randomGrid(b, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents()
	}
}

// BenchmarkShortestDistance measures corner-to-corner BFS on a 500×500 grid.
func BenchmarkShortestDistance(b *testing.B) {
	g := randomGrid(b, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.ShortestDistance(g.Start, g.Goal)
	}
}
