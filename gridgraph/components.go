package gridgraph

// ConnectedComponents finds all contiguous regions of open cells under
// four-directional connectivity.
// Components are ordered by their first cell in row-major order; cells inside
// a component are in breadth-first discovery order.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]Coordinate {
	seen := make([]bool, g.Width*g.Height)
	var comps [][]Coordinate

	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			origin := Coordinate{Row: r, Col: c}
			if g.walls[r][c] || seen[g.index(origin)] {
				continue
			}
			// BFS to collect component
			queue := []Coordinate{origin}
			seen[g.index(origin)] = true
			for qi := 0; qi < len(queue); qi++ {
				for _, st := range g.Neighbors(queue[qi]) {
					vi := g.index(st.State)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, st.State)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// Reachable reports whether an open route joins from and to.
func (g *Grid) Reachable(from, to Coordinate) bool {
	_, err := g.ShortestDistance(from, to)
	return err == nil
}
