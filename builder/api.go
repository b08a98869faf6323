// SPDX-License-Identifier: MIT
// Package: tesseract/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Draft(labels, size, bopts, cons...). Creates the draft,
//     resolves cfg, runs cons in order, and returns sorted cell specs.
//   - BuildMaze feeds the same specs to maze.Build.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical mazes.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tesseract/maze"
)

// Constructor applies a deterministic mutation to a maze draft using the
// resolved builderConfig. Constructors validate parameters early, return
// sentinel errors and preserve determinism for the same config and call order.
type Constructor func(d *draft, cfg builderConfig) error

// draft is the mutable cell table constructors write into.
type draft struct {
	size   int
	active []int
	cells  map[maze.Coord]maze.MoveSet
}

func (d *draft) inBounds(c maze.Coord) bool {
	for _, v := range c {
		if v < 0 || v >= d.size {
			return false
		}
	}

	return true
}

// addMove records mv on cell c. With twoWay, the reverse move is also recorded
// on the target cell. The target must be in bounds.
func (d *draft) addMove(c maze.Coord, mv maze.Move, twoWay bool) error {
	to, err := maze.Apply(c, mv)
	if err != nil {
		return err
	}
	if !d.inBounds(c) || !d.inBounds(to) {
		return fmt.Errorf("%v via %s leaves size %d: %w", c, mv, d.size, ErrConstructFailed)
	}
	set, _ := maze.ParseMoves(mv.String())
	d.cells[c] |= set
	if twoWay {
		back, _ := maze.Reverse(mv)
		rset, _ := maze.ParseMoves(back.String())
		d.cells[to] |= rset
	}

	return nil
}

// Draft runs the constructors over an empty size^4 grid and returns the
// resulting non-empty cells as specs, ordered by maze key.
// Labels follow maze.Build: four entries, empty for padded axes. Constructors
// only step along labelled axes.
//
// Errors:
//   - maze.ErrDimensionMismatch if len(labels) != 4.
//   - ErrTooSmall if size < 1.
//   - ErrConstructFailed for a nil constructor; constructor errors wrapped with "Draft: %w".
func Draft(labels []string, size int, bopts []BuilderOption, cons ...Constructor) ([]maze.CellSpec, error) {
	if len(labels) != maze.Dimensions {
		return nil, fmt.Errorf("Draft: got %d labels: %w", len(labels), maze.ErrDimensionMismatch)
	}
	if size < 1 {
		return nil, fmt.Errorf("Draft: size=%d: %w", size, ErrTooSmall)
	}

	d := &draft{size: size, cells: make(map[maze.Coord]maze.MoveSet)}
	for i, l := range labels {
		if l != "" {
			d.active = append(d.active, i)
		}
	}

	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Draft: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("Draft: %w", err)
		}
	}

	return d.specs(), nil
}

// BuildMaze drafts the constructors and builds the resulting maze.
func BuildMaze(labels []string, size int, bopts []BuilderOption, cons ...Constructor) (*maze.Maze, error) {
	specs, err := Draft(labels, size, bopts, cons...)
	if err != nil {
		return nil, err
	}

	return maze.Build(labels, size, specs)
}

// specs lists non-empty cells in row-major (x, y, z, w) order.
func (d *draft) specs() []maze.CellSpec {
	out := make([]maze.CellSpec, 0, len(d.cells))
	eachCell(d.size, func(c maze.Coord) {
		if set := d.cells[c]; set != 0 {
			out = append(out, maze.CellSpec{At: c, Moves: set.String()})
		}
	})

	return out
}

// eachActiveCell visits, in row-major order, every cell whose padded axes are 0.
func (d *draft) eachActiveCell(fn func(c maze.Coord)) {
	eachCell(d.size, func(c maze.Coord) {
		for axis := 0; axis < maze.Dimensions; axis++ {
			if c[axis] != 0 && !d.isActive(axis) {
				return
			}
		}
		fn(c)
	})
}

func (d *draft) isActive(axis int) bool {
	for _, a := range d.active {
		if a == axis {
			return true
		}
	}

	return false
}

// activeMoves lists the move symbols along labelled axes, positive first.
func (d *draft) activeMoves() []maze.Move {
	out := make([]maze.Move, 0, 2*len(d.active))
	for _, axis := range d.active {
		out = append(out, axisMoves[axis][0], axisMoves[axis][1])
	}

	return out
}

var axisMoves = [maze.Dimensions][2]maze.Move{
	{maze.MoveXPos, maze.MoveXNeg},
	{maze.MoveYPos, maze.MoveYNeg},
	{maze.MoveZPos, maze.MoveZNeg},
	{maze.MoveWPos, maze.MoveWNeg},
}

// eachCell visits every coordinate of a size^4 grid in row-major order.
func eachCell(size int, fn func(c maze.Coord)) {
	var c maze.Coord
	for c[0] = 0; c[0] < size; c[0]++ {
		for c[1] = 0; c[1] < size; c[1]++ {
			for c[2] = 0; c[2] < size; c[2]++ {
				for c[3] = 0; c[3] < size; c[3]++ {
					fn(c)
				}
			}
		}
	}
}
