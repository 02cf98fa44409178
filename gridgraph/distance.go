package gridgraph

import "fmt"

// ShortestDistance returns the minimum number of orthogonal moves needed to
// walk from one open cell to another.
//
// Behavior:
//  1. Validate both coordinates are open, in-bounds cells.
//  2. Single-source BFS from `from`, every move costing 1.
//  3. Stop as soon as `to` is dequeued.
//
// Returns ErrOutOfBounds for a coordinate outside the grid,
// ErrBlockedEndpoint for a wall, and ErrNoPath when `to` is unreachable.
//
// Complexity: O(W·H) time, O(W·H) memory for the distance table.
func (g *Grid) ShortestDistance(from, to Coordinate) (int, error) {
	for _, c := range [...]Coordinate{from, to} {
		if !g.InBounds(c) {
			return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
		}
		if g.walls[c.Row][c.Col] {
			return 0, fmt.Errorf("%w: %v", ErrBlockedEndpoint, c)
		}
	}

	dist := make([]int, g.Width*g.Height)
	for i := range dist {
		dist[i] = -1
	}
	dist[g.index(from)] = 0
	queue := []Coordinate{from}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == to {
			return dist[g.index(u)], nil
		}
		for _, st := range g.Neighbors(u) {
			vi := g.index(st.State)
			if dist[vi] < 0 {
				dist[vi] = dist[g.index(u)] + 1
				queue = append(queue, st.State)
			}
		}
	}

	return 0, fmt.Errorf("%w: %v to %v", ErrNoPath, from, to)
}
