package maze

import "errors"

var (
	// ErrInvalidMove indicates a symbol outside the eight recognised moves.
	ErrInvalidMove = errors.New("maze: invalid move symbol")
	// ErrDimensionMismatch indicates the dimension labels are not exactly four.
	ErrDimensionMismatch = errors.New("maze: exactly 4 dimension labels required")
	// ErrBadSize indicates a non-positive grid extent.
	ErrBadSize = errors.New("maze: size must be at least 1")
	// ErrOutOfBounds indicates a coordinate component outside [0, size).
	ErrOutOfBounds = errors.New("maze: coordinate out of bounds")
	// ErrMoveLeavesGrid indicates a cell lists a move whose target lies outside the grid.
	ErrMoveLeavesGrid = errors.New("maze: move leads outside the grid")
)
