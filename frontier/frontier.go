package frontier

import (
	"errors"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// ErrEmptyFrontier is returned by Remove on an empty frontier. A search loop
// that checks Empty first never sees it.
var ErrEmptyFrontier = errors.New("frontier: empty frontier")

// Frontier is the bag of node indices awaiting expansion.
// Add performs no uniqueness check; callers consult ContainsState first.
type Frontier interface {
	Add(node int)
	ContainsState(state gridgraph.Coordinate) bool
	Empty() bool
	Len() int
	Remove() (int, error)
}

// bag is the shared storage behind every variant: nodes in insertion order
// plus a per-state count for O(1) ContainsState.
type bag struct {
	arena   *Arena
	items   []int
	pending map[gridgraph.Coordinate]int
}

func newBag(arena *Arena) bag {
	return bag{arena: arena, pending: make(map[gridgraph.Coordinate]int)}
}

// Add appends node to the bag.
func (b *bag) Add(node int) {
	b.items = append(b.items, node)
	b.pending[b.arena.Node(node).State]++
}

// ContainsState reports whether some pending node has the given state.
func (b *bag) ContainsState(state gridgraph.Coordinate) bool {
	return b.pending[state] > 0
}

// Empty reports whether the bag holds no nodes.
func (b *bag) Empty() bool {
	return len(b.items) == 0
}

// Len reports the number of pending nodes.
func (b *bag) Len() int {
	return len(b.items)
}

// take removes and returns the item at position i, preserving the order of
// the rest.
func (b *bag) take(i int) int {
	node := b.items[i]
	b.items = append(b.items[:i], b.items[i+1:]...)
	b.forget(node)
	return node
}

// forget drops node's state from the pending counts.
func (b *bag) forget(node int) {
	st := b.arena.Node(node).State
	if b.pending[st]--; b.pending[st] <= 0 {
		delete(b.pending, st)
	}
}

// firstMax returns the position of the first item with the largest score.
// The bag must not be empty.
func (b *bag) firstMax(score func(node int) int) int {
	best, bestScore := 0, score(b.items[0])
	for i := 1; i < len(b.items); i++ {
		if s := score(b.items[i]); s > bestScore {
			best, bestScore = i, s
		}
	}
	return best
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
func Manhattan(a, b gridgraph.Coordinate) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
