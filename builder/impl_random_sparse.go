// SPDX-License-Identifier: MIT
// Package: tesseract/builder
//
// impl_random_sparse.go — implementation of RandomSparse(p) constructor.
//
// Canonical model:
//   • Erdős–Rényi-like generator over grid edges: every in-grid move along a
//     labelled axis out of every active cell is kept independently with prob p.
//   • Directed by default, so a kept x on one cell says nothing about X on its
//     neighbour. WithTwoWay mirrors each kept move.
//
// Contract:
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   • Stable trial order: cells in row-major order, moves in maze order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tesseract/maze"
)

const (
	methodRandomSparse = "RandomSparse"
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor that keeps each candidate move with probability p.
func RandomSparse(p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		moves := d.activeMoves()
		d.eachActiveCell(func(c maze.Coord) {
			for _, mv := range moves {
				to, _ := maze.Apply(c, mv)
				if !d.inBounds(to) {
					continue
				}
				keep := p >= probMax
				if p > probMin && p < probMax {
					keep = cfg.rng.Float64() < p
				}
				if keep {
					_ = d.addMove(c, mv, cfg.twoWay)
				}
			}
		})

		return nil
	}
}
