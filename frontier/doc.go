// Package frontier holds the discovered-but-not-yet-expanded nodes of a maze
// search, and the arena of immutable search nodes they point into.
//
// What
//
//   - Arena stores every Node created during one search. A Node records the
//     cell it reached, the arena index of the node that discovered it, and
//     the Action taken. Parents are indices, not pointers, so the whole tree
//     is dropped with the arena once the search returns.
//   - Frontier is the bag of pending node indices. Four variants differ only
//     in which node Remove extracts:
//   - Stack:  last added (depth-first).
//   - Queue:  first added (breadth-first).
//   - Greedy: largest Manhattan distance to the goal.
//   - AStar:  largest Manhattan distance to the goal plus depth in the tree.
//
// Greedy and AStar select the maximum score, not the minimum, and break ties
// by the first maximal node in insertion order. This matches the reference
// solver output exactly; see DESIGN.md.
//
// Complexity (n = nodes currently in the frontier, d = node depth)
//
//   - Add, ContainsState, Empty, Len: O(1).
//   - Stack.Remove, Queue.Remove:     O(1) amortized.
//   - Greedy.Remove:                  O(n).
//   - AStar.Remove:                   O(n·d); depth is recomputed from the
//     parent chain on every call.
//
// Errors
//
//   - ErrEmptyFrontier if Remove is called on an empty frontier.
package frontier
