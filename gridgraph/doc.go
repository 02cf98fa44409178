// Package gridgraph treats a rectangular maze of walls and open cells as a
// graph, enabling neighbor queries for search engines plus simple
// connectivity analysis.
//
// What:
//
//   - Grid wraps an immutable height×width wall mask with a single Start
//     and a single Goal cell.
//   - Neighbors returns the orthogonally adjacent, in-bounds, open cells of
//     a coordinate together with the Action that reaches each, always in the
//     fixed order Up, Down, Left, Right.
//   - Parse reads the textual maze format: 'A' marks the start, 'B' the
//     goal, ' ' an open cell, any other rune a wall. Short lines are padded
//     with walls up to the longest line.
//   - ConnectedComponents and ShortestDistance answer reachability questions
//     without running a full search.
//
// Why:
//
//   - A fixed neighbor enumeration order keeps every search strategy
//     deterministic: the same grid always yields the same exploration.
//
// Complexity:
//
//   - Neighbors:           O(1).
//   - Parse / NewGrid:     O(W×H) time and memory.
//   - ConnectedComponents: O(W×H), Memory: O(W×H).
//   - ShortestDistance:    O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrStartCount / ErrGoalCount: maze text lacks exactly one 'A' / 'B'.
//   - ErrOutOfBounds: start or goal lies outside the grid.
//   - ErrBlockedEndpoint: start or goal is a wall cell.
//   - ErrNoPath: no open route joins two coordinates.
package gridgraph
