package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/frontier"
	"github.com/katalvlaran/mazepath/gridgraph"
)

func at(r, c int) gridgraph.Coordinate { return gridgraph.Coordinate{Row: r, Col: c} }

// fill adds one root-level node per state and returns their indices.
func fill(t *testing.T, a *frontier.Arena, f frontier.Frontier, states ...gridgraph.Coordinate) []int {
	t.Helper()
	ids := make([]int, len(states))
	for i, st := range states {
		ids[i] = a.New(st, frontier.NoParent, gridgraph.NoAction)
		f.Add(ids[i])
	}
	return ids
}

// drain removes everything and returns the states in removal order.
func drain(t *testing.T, a *frontier.Arena, f frontier.Frontier) []gridgraph.Coordinate {
	t.Helper()
	var out []gridgraph.Coordinate
	for !f.Empty() {
		i, err := f.Remove()
		require.NoError(t, err)
		out = append(out, a.Node(i).State)
	}
	return out
}

func TestEmptyFrontier(t *testing.T) {
	goal := at(0, 0)
	cases := map[string]frontier.Frontier{
		"stack":  frontier.NewStack(frontier.NewArena(0)),
		"queue":  frontier.NewQueue(frontier.NewArena(0)),
		"greedy": frontier.NewGreedy(frontier.NewArena(0), goal),
		"astar":  frontier.NewAStar(frontier.NewArena(0), goal),
	}
	for name, f := range cases {
		t.Run(name, func(t *testing.T) {
			assert.True(t, f.Empty())
			assert.Zero(t, f.Len())
			_, err := f.Remove()
			assert.ErrorIs(t, err, frontier.ErrEmptyFrontier)
		})
	}
}

func TestStack_LIFO(t *testing.T) {
	a := frontier.NewArena(4)
	s := frontier.NewStack(a)
	fill(t, a, s, at(0, 0), at(0, 1), at(0, 2))

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []gridgraph.Coordinate{at(0, 2), at(0, 1), at(0, 0)}, drain(t, a, s))
}

func TestQueue_FIFO(t *testing.T) {
	a := frontier.NewArena(4)
	q := frontier.NewQueue(a)
	fill(t, a, q, at(0, 0), at(0, 1), at(0, 2))

	assert.Equal(t, []gridgraph.Coordinate{at(0, 0), at(0, 1), at(0, 2)}, drain(t, a, q))
}

func TestContainsState(t *testing.T) {
	a := frontier.NewArena(4)
	q := frontier.NewQueue(a)
	fill(t, a, q, at(1, 1), at(2, 2))

	assert.True(t, q.ContainsState(at(1, 1)))
	assert.False(t, q.ContainsState(at(3, 3)))

	_, err := q.Remove()
	require.NoError(t, err)
	assert.False(t, q.ContainsState(at(1, 1)), "removed state must no longer be pending")
	assert.True(t, q.ContainsState(at(2, 2)))
}

func TestContainsState_Duplicates(t *testing.T) {
	a := frontier.NewArena(4)
	s := frontier.NewStack(a)
	fill(t, a, s, at(1, 1), at(1, 1))

	_, err := s.Remove()
	require.NoError(t, err)
	assert.True(t, s.ContainsState(at(1, 1)), "second copy is still pending")
	_, err = s.Remove()
	require.NoError(t, err)
	assert.False(t, s.ContainsState(at(1, 1)))
}

func TestGreedy_SelectsFarthestFirst(t *testing.T) {
	goal := at(0, 0)
	a := frontier.NewArena(4)
	g := frontier.NewGreedy(a, goal)
	// distances 2, 4, 1, 4: the first 4 wins, then the second 4
	fill(t, a, g, at(1, 1), at(2, 2), at(0, 1), at(4, 0))

	assert.Equal(t,
		[]gridgraph.Coordinate{at(2, 2), at(4, 0), at(1, 1), at(0, 1)},
		drain(t, a, g))
}

func TestAStar_AddsDepth(t *testing.T) {
	goal := at(0, 0)
	a := frontier.NewArena(8)
	f := frontier.NewAStar(a, goal)

	// root (3,0) distance 3, depth 0
	root := a.New(at(3, 0), frontier.NoParent, gridgraph.NoAction)
	// (2,0) distance 2, depth 1 → 3
	mid := a.New(at(2, 0), root, gridgraph.Up)
	// (1,0) distance 1, depth 2 → 3
	leaf := a.New(at(1, 0), mid, gridgraph.Up)
	// (0,2) distance 2, depth 0 → 2
	other := a.New(at(0, 2), frontier.NoParent, gridgraph.NoAction)

	f.Add(other)
	f.Add(leaf)
	f.Add(root)
	f.Add(mid)

	got := drain(t, a, f)
	// scores: other=2, leaf=3, root=3, mid=3 → leaf, root, mid, other
	assert.Equal(t, []gridgraph.Coordinate{at(1, 0), at(3, 0), at(2, 0), at(0, 2)}, got)
}

func TestAStar_DiffersFromGreedy(t *testing.T) {
	goal := at(0, 0)
	a := frontier.NewArena(8)
	root := a.New(at(0, 3), frontier.NoParent, gridgraph.NoAction)
	deep := a.New(at(0, 1), a.New(at(0, 2), root, gridgraph.Left), gridgraph.Left)
	far := a.New(at(0, 2), frontier.NoParent, gridgraph.NoAction)

	g := frontier.NewGreedy(a, goal)
	g.Add(deep)
	g.Add(far)
	i, err := g.Remove()
	require.NoError(t, err)
	assert.Equal(t, far, i, "greedy ignores depth")

	s := frontier.NewAStar(a, goal)
	s.Add(deep)
	s.Add(far)
	i, err = s.Remove()
	require.NoError(t, err)
	assert.Equal(t, deep, i, "A* counts depth 2 + distance 1 over depth 0 + distance 2")
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, frontier.Manhattan(at(2, 3), at(2, 3)))
	assert.Equal(t, 5, frontier.Manhattan(at(0, 0), at(2, 3)))
	assert.Equal(t, 5, frontier.Manhattan(at(2, 3), at(0, 0)))
}
