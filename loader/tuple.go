package loader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/tesseract/maze"
)

// ParseTuple reads coordinate text such as "(2, 3)" and pads it with zeros to
// four components, giving (2,3,0,0). Whitespace around the parentheses and
// the components is ignored.
func ParseTuple(s string) (maze.Coord, error) {
	c, _, err := parseTuple(s)

	return c, err
}

// parseTuple is ParseTuple that also reports how many components were written.
func parseTuple(s string) (maze.Coord, int, error) {
	var c maze.Coord
	body := strings.TrimSpace(s)
	if !strings.HasPrefix(body, "(") || !strings.HasSuffix(body, ")") {
		return c, 0, fmt.Errorf("%w: %q needs parentheses", ErrBadTuple, s)
	}
	body = strings.TrimSpace(body[1 : len(body)-1])
	if body == "" {
		return c, 0, fmt.Errorf("%w: %q is empty", ErrBadTuple, s)
	}

	parts := strings.Split(body, ",")
	if len(parts) > maze.Dimensions {
		return c, 0, fmt.Errorf("%w: %q has %d components, at most %d allowed",
			ErrBadTuple, s, len(parts), maze.Dimensions)
	}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return c, 0, fmt.Errorf("%w: %q component %d: %v", ErrBadTuple, s, i, err)
		}
		if n < 0 {
			return c, 0, fmt.Errorf("%w: %q component %d is negative", ErrBadTuple, s, i)
		}
		c[i] = n
	}

	return c, len(parts), nil
}
