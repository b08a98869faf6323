package maze

import "fmt"

// allMoves fixes neighbor iteration order: axis 0..3, positive before negative.
var allMoves = [2 * Dimensions]Move{
	MoveXPos, MoveXNeg,
	MoveYPos, MoveYNeg,
	MoveZPos, MoveZNeg,
	MoveWPos, MoveWNeg,
}

// moveIndex returns the position of m in allMoves.
// Complexity: O(1).
func moveIndex(m Move) (int, bool) {
	switch m {
	case MoveXPos:
		return 0, true
	case MoveXNeg:
		return 1, true
	case MoveYPos:
		return 2, true
	case MoveYNeg:
		return 3, true
	case MoveZPos:
		return 4, true
	case MoveZNeg:
		return 5, true
	case MoveWPos:
		return 6, true
	case MoveWNeg:
		return 7, true
	}

	return -1, false
}

func moveBit(m Move) (MoveSet, bool) {
	i, ok := moveIndex(m)
	if !ok {
		return 0, false
	}

	return MoveSet(1) << uint(i), true
}

// Decode maps a move symbol to its axis index and signed unit delta.
// Returns ErrInvalidMove for any other symbol.
func Decode(m Move) (axis, delta int, err error) {
	i, ok := moveIndex(m)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidMove, byte(m))
	}
	delta = 1
	if i%2 == 1 {
		delta = -1
	}

	return i / 2, delta, nil
}

// Apply returns c moved one step by m. The result is not bounds-checked;
// validate it with InBounds before using it as a lookup key.
func Apply(c Coord, m Move) (Coord, error) {
	axis, delta, err := Decode(m)
	if err != nil {
		return c, err
	}
	c[axis] += delta

	return c, nil
}

// ParseMoves builds a MoveSet from a string of move symbols.
// Duplicate symbols are accepted; any unrecognised byte yields ErrInvalidMove.
func ParseMoves(s string) (MoveSet, error) {
	var set MoveSet
	for i := 0; i < len(s); i++ {
		bit, ok := moveBit(Move(s[i]))
		if !ok {
			return 0, fmt.Errorf("%w: %q at offset %d", ErrInvalidMove, s[i], i)
		}
		set |= bit
	}

	return set, nil
}

// Reverse returns the move that undoes m (x <-> X and so on).
func Reverse(m Move) (Move, error) {
	i, ok := moveIndex(m)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMove, byte(m))
	}

	return allMoves[i^1], nil
}
