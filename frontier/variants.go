package frontier

import (
	"github.com/katalvlaran/mazepath/gridgraph"
)

// Stack removes the most recently added node (depth-first search).
type Stack struct{ bag }

// NewStack returns an empty LIFO frontier over arena.
func NewStack(arena *Arena) *Stack {
	return &Stack{bag: newBag(arena)}
}

// Remove extracts the last added node.
func (s *Stack) Remove() (int, error) {
	if s.Empty() {
		return 0, ErrEmptyFrontier
	}
	return s.take(len(s.items) - 1), nil
}

// Queue removes the earliest added node (breadth-first search).
type Queue struct{ bag }

// NewQueue returns an empty FIFO frontier over arena.
func NewQueue(arena *Arena) *Queue {
	return &Queue{bag: newBag(arena)}
}

// Remove extracts the first added node.
func (q *Queue) Remove() (int, error) {
	if q.Empty() {
		return 0, ErrEmptyFrontier
	}
	node := q.items[0]
	q.items = q.items[1:]
	q.forget(node)
	return node, nil
}

// Greedy removes the node whose state is farthest, by Manhattan distance,
// from the goal. Ties go to the earliest added node.
type Greedy struct {
	bag
	goal gridgraph.Coordinate
}

// NewGreedy returns an empty greedy frontier scoring against goal.
func NewGreedy(arena *Arena, goal gridgraph.Coordinate) *Greedy {
	return &Greedy{bag: newBag(arena), goal: goal}
}

// Remove extracts the first node with the largest Manhattan distance to the goal.
func (g *Greedy) Remove() (int, error) {
	if g.Empty() {
		return 0, ErrEmptyFrontier
	}
	i := g.firstMax(func(node int) int {
		return Manhattan(g.arena.Node(node).State, g.goal)
	})
	return g.take(i), nil
}

// AStar removes the node with the largest Manhattan distance to the goal plus
// cost so far, where cost so far is the node's depth in the search tree.
// Ties go to the earliest added node.
type AStar struct {
	bag
	goal gridgraph.Coordinate
}

// NewAStar returns an empty A* frontier scoring against goal.
func NewAStar(arena *Arena, goal gridgraph.Coordinate) *AStar {
	return &AStar{bag: newBag(arena), goal: goal}
}

// Remove extracts the first node with the largest h+g score.
func (a *AStar) Remove() (int, error) {
	if a.Empty() {
		return 0, ErrEmptyFrontier
	}
	i := a.firstMax(func(node int) int {
		return Manhattan(a.arena.Node(node).State, a.goal) + a.arena.Depth(node)
	})
	return a.take(i), nil
}

// Compile-time interface checks.
var (
	_ Frontier = (*Stack)(nil)
	_ Frontier = (*Queue)(nil)
	_ Frontier = (*Greedy)(nil)
	_ Frontier = (*AStar)(nil)
)
