// Package gridgraph defines the coordinate, action and grid types shared by
// the frontier and search packages of github.com/katalvlaran/mazepath.
package gridgraph

import (
	"fmt"
)

// Coordinate identifies a cell by its row and column. Two coordinates are
// equal iff both components are equal, so Coordinate is usable as a map key.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String formats the coordinate as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Action is the direction moved to reach a cell from its orthogonal neighbor.
type Action int

const (
	// NoAction marks the start node, which was not reached by any move.
	NoAction Action = iota
	// Up moves one row towards row 0.
	Up
	// Down moves one row away from row 0.
	Down
	// Left moves one column towards column 0.
	Left
	// Right moves one column away from column 0.
	Right
)

var actionNames = [...]string{
	NoAction: "none",
	Up:       "up",
	Down:     "down",
	Left:     "left",
	Right:    "right",
}

// String returns the lower-case direction name.
func (a Action) String() string {
	if a < NoAction || int(a) >= len(actionNames) {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// MarshalText encodes the action by name, so JSON output reads "up" rather than 1.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Apply returns the coordinate reached by moving one cell from c in direction a.
// NoAction leaves c unchanged.
func (a Action) Apply(c Coordinate) Coordinate {
	switch a {
	case Up:
		return Coordinate{Row: c.Row - 1, Col: c.Col}
	case Down:
		return Coordinate{Row: c.Row + 1, Col: c.Col}
	case Left:
		return Coordinate{Row: c.Row, Col: c.Col - 1}
	case Right:
		return Coordinate{Row: c.Row, Col: c.Col + 1}
	default:
		return c
	}
}

// moveOrder is the fixed neighbor enumeration order.
// Search parity between runs depends on it.
var moveOrder = [...]Action{Up, Down, Left, Right}

// Step pairs a reachable neighbor with the action that reaches it.
type Step struct {
	Action Action
	State  Coordinate
}

// Grid is an immutable rectangular wall mask plus a start and a goal cell.
// walls[r][c] == true marks a wall. Start and Goal are always open.
type Grid struct {
	Width, Height int
	Start, Goal   Coordinate
	walls         [][]bool
}
