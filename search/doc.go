// Package search provides a maze solver over a gridgraph.Grid with four
// interchangeable strategies sharing one graph-search loop.
//
// What
//
//   - Solve(g, strategy, opts...) searches from g.Start to g.Goal.
//   - Strategy selects the frontier: DFS (0), BFS (1), GBFS (2), AStar (3).
//     Any other selector falls back to DFS.
//   - Returns a Result containing:
//   - Solution: ordered Actions and Cells from start to goal (start excluded)
//   - Explored: the set of expanded states
//   - ExploredCount: the number of nodes removed from the frontier
//
// Loop
//
//  1. Seed the frontier with the start node.
//  2. If the frontier is empty, fail with ErrNoSolution.
//  3. Remove one node. If it is the goal, rebuild the route from its parent
//     chain and stop.
//  4. Mark it explored and add every neighbor that is neither pending in the
//     frontier nor explored.
//
// Determinism
//
//	gridgraph.Grid.Neighbors always enumerates Up, Down, Left, Right, and
//	the Greedy and AStar frontiers break ties by insertion order, so
//	repeated solves of the same grid with the same strategy are identical.
//
// Guarantees
//
//   - BFS returns a route with the minimum number of moves.
//   - DFS, GBFS and AStar return some valid route when one exists.
//   - No state is ever pending twice or pending after being explored.
//
// Complexity (V = open cells)
//
//   - DFS, BFS: O(V) time and memory.
//   - GBFS:     O(V²) time (linear frontier scan per removal).
//   - AStar:    O(V²·d) time, d = route depth recomputed per score.
//
// Usage
//
//	g, err := gridgraph.ParseString(maze)
//	res, err := search.Solve(g, search.BFS)
//	if errors.Is(err, search.ErrNoSolution) {
//	    // goal unreachable; res.Explored still describes the search
//	}
//
//	// With functional options:
//	res, err := search.Solve(
//	    g, search.AStar,
//	    search.WithContext(ctx),
//	    search.WithMaxExplored(10_000),
//	    search.WithLogger(logger),
//	    search.WithObserver(recorder),
//	    search.WithOnRemove(func(c gridgraph.Coordinate, n int) { /* ... */ }),
//	    search.WithOnEnqueue(func(c gridgraph.Coordinate, a gridgraph.Action) { /* ... */ }),
//	)
//
// Concurrency
//
//	Each Solve call owns its arena, frontier and explored set, and only
//	reads the Grid, so concurrent solves over one Grid are safe.
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxExplored).
//   - ErrNoSolution       if the goal is unreachable.
//   - ErrExploreLimit     if WithMaxExplored stopped the search.
//   - ErrInternal         wrapping frontier.ErrEmptyFrontier on a broken invariant.
//   - context errors      from WithContext cancellation or deadline.
package search
