// Package astar defines core types and configuration options for A* search
// over a maze.Maze.
package astar

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/tesseract/maze"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilMaze indicates that a nil *maze.Maze was passed to Search.
	ErrNilMaze = errors.New("astar: maze is nil")

	// ErrOutOfBounds indicates that the start or goal lies outside the grid.
	// It wraps maze.ErrOutOfBounds, so errors.Is works with either sentinel.
	ErrOutOfBounds = fmt.Errorf("astar: endpoint outside the grid: %w", maze.ErrOutOfBounds)

	// ErrNoPath indicates that the frontier drained without reaching the goal.
	// Because edges are directed, a path from a to b says nothing about b to a.
	ErrNoPath = errors.New("astar: no path found")

	// ErrBudgetExceeded indicates the expansion budget ran out before the goal
	// was settled. It wraps ErrNoPath so budget-limited callers can treat both alike.
	ErrBudgetExceeded = fmt.Errorf("%w: expansion budget exceeded", ErrNoPath)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Step is one node of a path: the coordinate reached and the move used to enter it.
// The origin step has HasVia == false.
type Step struct {
	At     maze.Coord
	Via    maze.Move
	HasVia bool
}

// Path is an ordered sequence of steps from origin to destination.
// Every edge has unit weight, so the cost equals Len().
type Path struct {
	Steps []Step
}

// Len returns the number of edges traversed (len(Steps)-1), or 0 for an empty path.
func (p Path) Len() int {
	if len(p.Steps) == 0 {
		return 0
	}

	return len(p.Steps) - 1
}

// From returns the origin coordinate. The path must be non-empty.
func (p Path) From() maze.Coord { return p.Steps[0].At }

// To returns the destination coordinate. The path must be non-empty.
func (p Path) To() maze.Coord { return p.Steps[len(p.Steps)-1].At }

// Moves concatenates the move symbols along the path, e.g. "xxyW".
func (p Path) Moves() string {
	var sb strings.Builder
	for _, s := range p.Steps {
		if s.HasVia {
			sb.WriteByte(byte(s.Via))
		}
	}

	return sb.String()
}

// Coords lists the coordinates visited, origin first.
func (p Path) Coords() []maze.Coord {
	out := make([]maze.Coord, len(p.Steps))
	for i, s := range p.Steps {
		out[i] = s.At
	}

	return out
}

// Result is the outcome of a Search: the path, if found, plus the number of
// nodes settled along the way.
type Result struct {
	Path     Path
	Expanded int
	Found    bool
}

// Options configures the behavior of Search.
//
// Ctx           – checked once per expansion; cancellation aborts the search.
// MaxExpansions – if > 0, settle at most this many nodes before giving up.
// OnExpand      – called when a node is settled, with its g-score.
type Options struct {
	Ctx           context.Context
	MaxExpansions int
	OnExpand      func(c maze.Coord, g int)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with no budget, a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnExpand: func(maze.Coord, int) {},
	}
}

// WithContext sets a context for cancellation. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions caps the number of settled nodes.
//
//	n > 0: limit to n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback invoked each time a node is settled.
func WithOnExpand(fn func(c maze.Coord, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
