// SPDX-License-Identifier: MIT
// Package: tesseract/builder
//
// impl_open.go — implementation of the Open() constructor.
//
// Canonical model:
//   • Every cell whose padded axes are 0 gets every move along a labelled axis
//     that stays inside the grid. The result is symmetric by construction.
//
// Complexity:
//   • Time: O(size^k · 2k) for k labelled axes.

package builder

import (
	"github.com/katalvlaran/tesseract/maze"
)

// Open returns a Constructor that connects every active cell to all of its
// in-grid neighbours along labelled axes, in both directions.
func Open() Constructor {
	return func(d *draft, _ builderConfig) error {
		moves := d.activeMoves()
		d.eachActiveCell(func(c maze.Coord) {
			for _, mv := range moves {
				to, _ := maze.Apply(c, mv)
				if d.inBounds(to) {
					_ = d.addMove(c, mv, false)
				}
			}
		})

		return nil
	}
}
