// Package astar implements heuristic best-first (A*) shortest-path search over
// a directed, unit-weight maze.Maze.
//
// Search settles frontier nodes in order of g + h, where g counts moves from
// the origin and h is the Manhattan distance to the goal restricted to the
// maze's labelled axes. Each move changes exactly one axis by one unit, so the
// heuristic is admissible and consistent and the returned path is minimal.
//
// Complexity:
//
//	– Time:  O(V log V), V = cells reachable before the goal is settled.
//	– Space: O(V) for the g-score map, came-from map, closed set and heap.
//
// Frontier:
//
//	– container/heap min-heap keyed by (f, insertion sequence), so ties break
//	  deterministically in insertion order.
//	– Lazy decrease-key: improved nodes are pushed again and stale entries
//	  are skipped when popped.
//
// Options:
//
//	– WithContext(ctx):        cancellation, checked once per expansion.
//	– WithMaxExpansions(n):    settle at most n nodes (ErrBudgetExceeded).
//	– WithOnExpand(fn):        hook called for every settled node.
//
// Errors (sentinel):
//
//	– ErrNilMaze         if the maze pointer is nil.
//	– ErrOutOfBounds     if start or goal lies outside the grid.
//	– ErrNoPath          if the frontier drains; one-way moves make this a
//	                     normal outcome, not a fault.
//	– ErrBudgetExceeded  if the expansion budget runs out; matches ErrNoPath.
//	– ErrOptionViolation if an option value is invalid.
//
// Example usage:
//
//	path, err := astar.ShortestPath(m, maze.Coord{0, 0}, maze.Coord{3, 2})
//	if errors.Is(err, astar.ErrNoPath) {
//	    // unreachable
//	}
//	fmt.Println(path.Len(), path.Moves())
package astar
