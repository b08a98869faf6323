package maze

import (
	"fmt"
	"strconv"
	"strings"
)

// Dimensions is the fixed number of axes every maze carries.
const Dimensions = 4

// Coord is a position in the 4D grid, ordered (x, y, z, w).
// It is a comparable value and may be used directly as a map key.
type Coord [Dimensions]int

// String renders c as "(x,y,z,w)". The delimited form is injective.
func (c Coord) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range c {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(')')

	return sb.String()
}

// Move is a single move symbol. Lowercase symbols step +1 along their axis,
// uppercase symbols step -1.
type Move byte

// The eight move symbols, two per axis, in axis order.
const (
	MoveXPos Move = 'x'
	MoveXNeg Move = 'X'
	MoveYPos Move = 'y'
	MoveYNeg Move = 'Y'
	MoveZPos Move = 'z'
	MoveZNeg Move = 'Z'
	MoveWPos Move = 'w'
	MoveWNeg Move = 'W'
)

// String returns the symbol as a one-character string.
func (m Move) String() string {
	return string(rune(m))
}

// MoveSet is the set of legal moves out of one cell, stored as a bitmask.
// Bit i corresponds to allMoves[i].
type MoveSet uint8

// Has reports whether m belongs to the set. Unknown symbols are never members.
func (s MoveSet) Has(m Move) bool {
	bit, ok := moveBit(m)
	return ok && s&bit != 0
}

// Len returns the number of moves in the set.
func (s MoveSet) Len() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}

	return n
}

// Moves lists the members in fixed order: axis 0..3, positive before negative.
func (s MoveSet) Moves() []Move {
	out := make([]Move, 0, s.Len())
	for i, m := range allMoves {
		if s&(1<<uint(i)) != 0 {
			out = append(out, m)
		}
	}

	return out
}

// String renders the set as its move symbols, e.g. "xYw".
func (s MoveSet) String() string {
	var sb strings.Builder
	for _, m := range s.Moves() {
		sb.WriteByte(byte(m))
	}

	return sb.String()
}

// CellSpec describes the legal moves of one cell as supplied by a loader.
type CellSpec struct {
	At    Coord  // Cell position; omitted axes are expected to be 0
	Moves string // Move symbols, e.g. "xY"
}

// Neighbor is one outgoing directed edge: the move taken and where it lands.
type Neighbor struct {
	Move Move
	To   Coord
}

// Maze is a dense, immutable 4D table of per-cell move sets.
// Size is the extent of every axis. Labels name the axes; an empty label marks
// an axis padded in by the loader that never varies.
type Maze struct {
	Size   int
	Labels [Dimensions]string
	cells  []MoveSet
	active []int
}

// GoString is used by %#v in test failure output.
func (m *Maze) GoString() string {
	return fmt.Sprintf("maze.Maze{Size:%d, Labels:%q, Cells:%d}", m.Size, m.Labels, len(m.cells))
}
