// SPDX-License-Identifier: MIT
// Package: tesseract/builder
//
// impl_corridor.go — implementation of Corridor(start, moves) constructor.
//
// Canonical model:
//   • Walk from start following the move string, recording each move on the
//     cell it leaves. With WithTwoWay the reverse move is recorded on the cell
//     entered, making the corridor walkable both ways.
//
// Contract:
//   • start must be in the grid and every step must stay in it
//     (else ErrConstructFailed).
//   • An unknown symbol yields maze.ErrInvalidMove.
//
// Complexity:
//   • Time: O(len(moves)).

package builder

import (
	"fmt"

	"github.com/katalvlaran/tesseract/maze"
)

const methodCorridor = "Corridor"

// Corridor returns a Constructor that carves the walk described by moves,
// starting at start.
func Corridor(start maze.Coord, moves string) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if !d.inBounds(start) {
			return fmt.Errorf("%s: start %v outside size %d: %w", methodCorridor, start, d.size, ErrConstructFailed)
		}
		cur := start
		for i := 0; i < len(moves); i++ {
			mv := maze.Move(moves[i])
			if err := d.addMove(cur, mv, cfg.twoWay); err != nil {
				return fmt.Errorf("%s: step %d: %w", methodCorridor, i, err)
			}
			cur, _ = maze.Apply(cur, mv)
		}

		return nil
	}
}
