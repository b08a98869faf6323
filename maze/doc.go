// Package maze treats a four-dimensional grid of cells as a directed,
// unit-weight graph.
//
// What:
//
//   - Coord is an (x, y, z, w) value usable as a map key.
//   - Move is one of eight symbols: x/X, y/Y, z/Z, w/W. Lowercase steps +1
//     along its axis, uppercase steps -1.
//   - Maze stores one MoveSet per cell in a flat slice of Size^4 entries,
//     addressed by ((x*size+y)*size+z)*size+w.
//
// Why:
//
//   - Puzzle mazes whose passages are one-way: the return edge is only
//     present if the author lists it on the neighboring cell.
//   - Lower-dimensional problems padded to four axes; unlabelled axes are
//     never considered by distance heuristics.
//
// Complexity:
//
//   - Build:     O(size^4 + cells), Memory: O(size^4).
//   - MovesAt:   O(1).
//   - Neighbors: O(1) (at most 8 entries).
//
// Errors:
//
//   - ErrInvalidMove: a move string holds an unknown symbol.
//   - ErrDimensionMismatch: labels are not exactly four.
//   - ErrBadSize: size outside [1, MaxSize].
//   - ErrOutOfBounds: a coordinate outside [0, Size) was looked up.
//   - ErrMoveLeavesGrid: a listed move would step off the grid.
package maze
