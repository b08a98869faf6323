package maze

import (
	"fmt"
)

// MaxSize bounds the per-axis extent so that Size^4 cells fit comfortably in memory.
const MaxSize = 128

// Build constructs a Maze from exactly four dimension labels, a shared axis
// extent and a sparse list of cell specifications.
// Returns ErrDimensionMismatch if len(labels) != 4, ErrBadSize for a size
// outside [1, MaxSize], ErrInvalidMove for an unknown move symbol,
// ErrOutOfBounds for a cell outside the grid and ErrMoveLeavesGrid for a move
// whose target is outside the grid. Later specs for the same cell replace earlier ones.
// Complexity: O(size^4 + len(cells)) time and memory.
func Build(labels []string, size int, cells []CellSpec) (*Maze, error) {
	if len(labels) != Dimensions {
		return nil, fmt.Errorf("%w: got %d", ErrDimensionMismatch, len(labels))
	}
	if size < 1 || size > MaxSize {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, size)
	}

	m := &Maze{
		Size:  size,
		cells: make([]MoveSet, size*size*size*size),
	}
	for i, l := range labels {
		m.Labels[i] = l
		if l != "" {
			m.active = append(m.active, i)
		}
	}

	for _, spec := range cells {
		if !m.InBounds(spec.At) {
			return nil, fmt.Errorf("%w: cell %v with size %d", ErrOutOfBounds, spec.At, size)
		}
		set, err := ParseMoves(spec.Moves)
		if err != nil {
			return nil, fmt.Errorf("cell %v: %w", spec.At, err)
		}
		for _, mv := range set.Moves() {
			to, _ := Apply(spec.At, mv)
			if !m.InBounds(to) {
				return nil, fmt.Errorf("%w: %v via %s", ErrMoveLeavesGrid, spec.At, mv)
			}
		}
		m.cells[m.index(spec.At)] = set
	}

	return m, nil
}

// InBounds reports whether every component of c lies in [0, Size).
// Complexity: O(1).
func (m *Maze) InBounds(c Coord) bool {
	for _, v := range c {
		if v < 0 || v >= m.Size {
			return false
		}
	}

	return true
}

// index maps c to its strided offset ((x*size+y)*size+z)*size+w.
// The caller guarantees c is in bounds.
func (m *Maze) index(c Coord) int {
	return ((c[0]*m.Size+c[1])*m.Size+c[2])*m.Size + c[3]
}

// Key returns the canonical integer encoding of c. It is injective over the
// grid and doubles as the dense table offset.
func (m *Maze) Key(c Coord) (int, error) {
	if !m.InBounds(c) {
		return 0, fmt.Errorf("%w: %v with size %d", ErrOutOfBounds, c, m.Size)
	}

	return m.index(c), nil
}

// Coordinate converts a Key back to its coordinate.
func (m *Maze) Coordinate(key int) (Coord, error) {
	if key < 0 || key >= len(m.cells) {
		return Coord{}, fmt.Errorf("%w: key %d with size %d", ErrOutOfBounds, key, m.Size)
	}
	var c Coord
	for axis := Dimensions - 1; axis >= 0; axis-- {
		c[axis] = key % m.Size
		key /= m.Size
	}

	return c, nil
}

// Cells returns the number of cells in the dense table (Size^4).
func (m *Maze) Cells() int {
	return len(m.cells)
}

// ActiveCells returns the number of cells spanned by the labelled axes
// (Size^len(ActiveAxes())). Padded axes contribute only coordinate 0.
func (m *Maze) ActiveCells() int {
	n := 1
	for range m.active {
		n *= m.Size
	}

	return n
}

// ActiveAxes returns the indices of labelled axes, in order. Padded axes are
// excluded. The returned slice is a copy.
func (m *Maze) ActiveAxes() []int {
	out := make([]int, len(m.active))
	copy(out, m.active)

	return out
}

// MovesAt returns the legal move set at c.
// Returns ErrOutOfBounds if any component is outside [0, Size).
// Complexity: O(1).
func (m *Maze) MovesAt(c Coord) (MoveSet, error) {
	if !m.InBounds(c) {
		return 0, fmt.Errorf("%w: %v with size %d", ErrOutOfBounds, c, m.Size)
	}

	return m.cells[m.index(c)], nil
}

// Neighbors lists the directed edges out of c in fixed move order.
// Each call returns a fresh slice of at most 8 entries. Targets are
// bounds-checked even though Build already rejects moves leaving the grid.
func (m *Maze) Neighbors(c Coord) ([]Neighbor, error) {
	set, err := m.MovesAt(c)
	if err != nil {
		return nil, err
	}
	out := make([]Neighbor, 0, set.Len())
	for _, mv := range set.Moves() {
		to, _ := Apply(c, mv)
		if !m.InBounds(to) {
			continue
		}
		out = append(out, Neighbor{Move: mv, To: to})
	}

	return out, nil
}
