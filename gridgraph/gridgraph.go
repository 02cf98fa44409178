// Package gridgraph provides utilities to treat a maze of walls and open
// cells as a graph. It supports:
//
//   - Construction from a boolean wall mask (NewGrid) or maze text (Parse)
//   - Ordered four-neighbor queries (Neighbors)
//   - Identification of connected regions of open cells
//   - Unweighted shortest distances between two cells
//
// Cells outside the grid behave as walls.
package gridgraph

import (
	"fmt"
	"io"
	"strings"
)

// Maze text runes.
const (
	StartRune = 'A'
	GoalRune  = 'B'
	OpenRune  = ' '
)

// NewGrid constructs a Grid from a non-empty, rectangular wall mask.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if walls has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrOutOfBounds if start or
// goal lies outside the mask, and ErrBlockedEndpoint if either is a wall.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(walls [][]bool, start, goal Coordinate) (*Grid, error) {
	if len(walls) == 0 || len(walls[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(walls), len(walls[0])
	for _, row := range walls {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]bool, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]bool, w)
		copy(cells[r], walls[r])
	}
	g := &Grid{
		Width:  w,
		Height: h,
		Start:  start,
		Goal:   goal,
		walls:  cells,
	}
	for _, c := range [...]Coordinate{start, goal} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, h, w)
		}
		if g.walls[c.Row][c.Col] {
			return nil, fmt.Errorf("%w: %v", ErrBlockedEndpoint, c)
		}
	}

	return g, nil
}

// Parse reads maze text from r. Height is the number of lines, width the
// length (in runes) of the longest line. 'A' and 'B' mark the start and
// goal, ' ' an open cell; every other rune, and every position past the end
// of a short line, is a wall.
// Returns ErrStartCount or ErrGoalCount unless the text holds exactly one
// of each marker.
func Parse(r io.Reader) (*Grid, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gridgraph: read maze: %w", err)
	}
	return ParseString(string(raw))
}

// ParseString is Parse over an in-memory string.
func ParseString(text string) (*Grid, error) {
	if n := strings.Count(text, string(StartRune)); n != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrStartCount, n)
	}
	if n := strings.Count(text, string(GoalRune)); n != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrGoalCount, n)
	}

	lines := splitLines(text)
	width := 0
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
		if len(rows[i]) > width {
			width = len(rows[i])
		}
	}

	var start, goal Coordinate
	walls := make([][]bool, len(rows))
	for r, row := range rows {
		walls[r] = make([]bool, width)
		for c := 0; c < width; c++ {
			if c >= len(row) {
				walls[r][c] = true // padding
				continue
			}
			switch row[c] {
			case StartRune:
				start = Coordinate{Row: r, Col: c}
			case GoalRune:
				goal = Coordinate{Row: r, Col: c}
			case OpenRune:
			default:
				walls[r][c] = true
			}
		}
	}

	return NewGrid(walls, start, goal)
}

// splitLines breaks text on "\n", "\r\n" or "\r". A single trailing line
// break does not start a new row.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.Height && c.Col >= 0 && c.Col < g.Width
}

// IsWall reports whether c is a wall. Out-of-bounds coordinates count as walls.
// Complexity: O(1).
func (g *Grid) IsWall(c Coordinate) bool {
	return !g.InBounds(c) || g.walls[c.Row][c.Col]
}

// Neighbors returns the in-bounds, open cells orthogonally adjacent to state,
// each paired with the action that reaches it, in the order Up, Down, Left,
// Right. The order is part of the contract.
// Complexity: O(1).
func (g *Grid) Neighbors(state Coordinate) []Step {
	steps := make([]Step, 0, len(moveOrder))
	for _, a := range moveOrder {
		next := a.Apply(state)
		if g.IsWall(next) {
			continue
		}
		steps = append(steps, Step{Action: a, State: next})
	}
	return steps
}

// Walls returns a deep copy of the wall mask.
func (g *Grid) Walls() [][]bool {
	out := make([][]bool, g.Height)
	for r := range g.walls {
		out[r] = make([]bool, g.Width)
		copy(out[r], g.walls[r])
	}
	return out
}

// OpenCells counts the non-wall cells.
func (g *Grid) OpenCells() int {
	n := 0
	for _, row := range g.walls {
		for _, wall := range row {
			if !wall {
				n++
			}
		}
	}
	return n
}

// index maps c to a row-major index: Row*Width + Col.
// Complexity: O(1).
func (g *Grid) index(c Coordinate) int {
	return c.Row*g.Width + c.Col
}

// CoordinateAt converts a row-major index back to a Coordinate.
// Complexity: O(1).
func (g *Grid) CoordinateAt(idx int) Coordinate {
	return Coordinate{Row: idx / g.Width, Col: idx % g.Width}
}
