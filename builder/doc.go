// Package builder provides reusable functional-options constructors for
// maze fixtures: fully open grids, hand-carved corridors and random sparse
// one-way mazes.
//
//   - Draft runs constructors in order and returns sorted maze.CellSpec values,
//     suitable for maze.Build or for writing a descriptor file.
//   - BuildMaze is Draft followed by maze.Build.
//   - WithSeed / WithRand feed stochastic constructors; WithTwoWay mirrors
//     every emitted move so passages can be walked back.
//
// Constructors write only moves along labelled axes and never panic; invalid
// parameters surface as sentinel errors (ErrTooSmall, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed).
package builder
