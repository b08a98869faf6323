// Package bfs provides breadth-first search over a maze.Maze, returning
// exact move-count distances, parent links, and visit order.
//
// What
//
//   - Explore cells in non-decreasing distance (moves) from a start cell,
//     following only the directed moves each cell lists.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from cell → distance from start
//   - Parent / Via: predecessor cell and entering move in the BFS tree
//   - OnVisit hook (may abort with an error), neighbor filtering, MaxDepth.
//
// Why
//
//   - Reachability: which cells can be reached at all from a start, which
//     matters because one-way moves make the maze asymmetric.
//   - A brute-force reference for A*: every edge has unit weight, so BFS
//     depth is the true shortest distance.
//
// Determinism
//
//	maze.Neighbors yields moves in a fixed order (x X y Y z Z w W), so the
//	visit sequence is fully reproducible.
//
// Complexity (V = reachable cells, E ≤ 8V)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrMazeNil          if the maze pointer is nil.
//   - ErrStartOutOfBounds if the start lies outside the grid.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
