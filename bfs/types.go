// Package bfs provides tunable options and error definitions
// for breadth-first search over a maze.Maze.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/tesseract/maze"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartOutOfBounds is returned when the start lies outside the grid.
	ErrStartOutOfBounds = fmt.Errorf("bfs: start outside the grid: %w", maze.ErrOutOfBounds)

	// ErrMazeNil is returned if a nil maze pointer is passed.
	ErrMazeNil = errors.New("bfs: maze is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreached is returned by PathTo for a cell the search never reached.
	ErrUnreached = errors.New("bfs: cell not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(c maze.Coord, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each directed edge curr→next.
	FilterNeighbor func(curr maze.Coord, nb maze.Neighbor) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op OnVisit hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnVisit:        func(maze.Coord, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(maze.Coord, maze.Neighbor) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(c maze.Coord, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips edges when fn returns false.
func WithFilterNeighbor(fn func(curr maze.Coord, nb maze.Neighbor) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: cells visited, in visit sequence.
//   - Depth: map from cell to its distance (in moves) from the start.
//   - Parent: map from cell to its predecessor in the BFS tree.
//   - Via: map from cell to the move that entered it.
type BFSResult struct {
	Start  maze.Coord
	Order  []maze.Coord
	Depth  map[maze.Coord]int
	Parent map[maze.Coord]maze.Coord
	Via    map[maze.Coord]maze.Move
}

// Reached reports whether the traversal reached c.
func (r *BFSResult) Reached(c maze.Coord) bool {
	_, ok := r.Depth[c]
	return ok
}

// PathTo reconstructs the cell sequence from the start to dest.
// Returns ErrUnreached if dest was not reached.
func (r *BFSResult) PathTo(dest maze.Coord) ([]maze.Coord, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %v", ErrUnreached, dest)
	}
	// build reversed path
	path := []maze.Coord{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
