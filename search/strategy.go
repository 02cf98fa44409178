package search

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/mazepath/frontier"
	"github.com/katalvlaran/mazepath/gridgraph"
)

// Strategy selects the frontier variant that drives a search.
// The numeric values are the public algorithm selectors 0–3.
type Strategy int

const (
	// DFS explores depth-first with a Stack frontier.
	DFS Strategy = iota
	// BFS explores breadth-first with a Queue frontier.
	BFS
	// GBFS explores greedy best-first with a Greedy frontier.
	GBFS
	// AStar explores by distance-to-goal plus path cost with an AStar frontier.
	AStar
)

// Strategies lists every selector in numeric order.
var Strategies = []Strategy{DFS, BFS, GBFS, AStar}

// StrategyFromNumber maps a numeric selector to a Strategy.
// Any value outside 0–3 falls back to DFS.
func StrategyFromNumber(n int) Strategy {
	return Strategy(n).normalize()
}

// ParseStrategy accepts a numeric selector ("0".."3", other numbers fall back
// to DFS) or a case-insensitive name: dfs, bfs, gbfs, greedy, astar, a*.
// Unknown names return ErrUnknownStrategy.
func ParseStrategy(s string) (Strategy, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return StrategyFromNumber(n), nil
	}
	switch strings.ToLower(s) {
	case "dfs", "depth-first":
		return DFS, nil
	case "bfs", "breadth-first":
		return BFS, nil
	case "gbfs", "greedy", "best-first":
		return GBFS, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	}
	return DFS, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

func (s Strategy) normalize() Strategy {
	if s < DFS || s > AStar {
		return DFS
	}
	return s
}

// String returns the short lower-case name used in logs and metric labels.
func (s Strategy) String() string {
	switch s.normalize() {
	case BFS:
		return "bfs"
	case GBFS:
		return "gbfs"
	case AStar:
		return "astar"
	default:
		return "dfs"
	}
}

// Title returns the human-readable algorithm name.
func (s Strategy) Title() string {
	switch s.normalize() {
	case BFS:
		return "Breadth-First Search"
	case GBFS:
		return "Greedy Best-First Search"
	case AStar:
		return "A* Search"
	default:
		return "Depth-First Search"
	}
}

// NewFrontier builds an empty frontier of this strategy over arena.
// Heuristic variants score against g.Goal.
func (s Strategy) NewFrontier(arena *frontier.Arena, g *gridgraph.Grid) frontier.Frontier {
	switch s.normalize() {
	case BFS:
		return frontier.NewQueue(arena)
	case GBFS:
		return frontier.NewGreedy(arena, g.Goal)
	case AStar:
		return frontier.NewAStar(arena, g.Goal)
	default:
		return frontier.NewStack(arena)
	}
}
