package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mazepath/search"
)

func TestStrategyFromNumber(t *testing.T) {
	cases := []struct {
		in   int
		want search.Strategy
	}{
		{0, search.DFS},
		{1, search.BFS},
		{2, search.GBFS},
		{3, search.AStar},
		{4, search.DFS},
		{-1, search.DFS},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, search.StrategyFromNumber(tc.in), "selector %d", tc.in)
	}
}

func TestParseStrategy(t *testing.T) {
	cases := map[string]search.Strategy{
		"0":             search.DFS,
		"1":             search.BFS,
		" 2 ":           search.GBFS,
		"3":             search.AStar,
		"17":            search.DFS,
		"DFS":           search.DFS,
		"bfs":           search.BFS,
		"greedy":        search.GBFS,
		"gbfs":          search.GBFS,
		"A*":            search.AStar,
		"astar":         search.AStar,
		"a-star":        search.AStar,
		"breadth-first": search.BFS,
	}
	for in, want := range cases {
		got, err := search.ParseStrategy(in)
		assert.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	_, err := search.ParseStrategy("dijkstra")
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)
}

func TestStrategy_Names(t *testing.T) {
	assert.Equal(t, "dfs", search.DFS.String())
	assert.Equal(t, "astar", search.AStar.String())
	assert.Equal(t, "dfs", search.Strategy(8).String())
	assert.Equal(t, "Greedy Best-First Search", search.GBFS.Title())
	assert.Equal(t, "Breadth-First Search", search.BFS.Title())
	assert.Equal(t, "A* Search", search.AStar.Title())
	assert.Equal(t, "Depth-First Search", search.Strategy(-1).Title())
}
