package bfs

import (
	"fmt"

	"github.com/katalvlaran/tesseract/maze"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	at    maze.Coord
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	m     *maze.Maze
	opts  BFSOptions
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on m starting from start, following only the
// directed moves each cell lists, and applying any number of functional Options.
// Returns ErrMazeNil or ErrStartOutOfBounds for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
// Depth is the exact unweighted shortest distance from start.
func BFS(m *maze.Maze, start maze.Coord, opts ...Option) (*BFSResult, error) {
	if m == nil {
		return nil, ErrMazeNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !m.InBounds(start) {
		return nil, fmt.Errorf("%w: %v with size %d", ErrStartOutOfBounds, start, m.Size)
	}

	w := &walker{
		m:     m,
		opts:  o,
		queue: make([]queueItem, 0, 64),
		res: &BFSResult{
			Start:  start,
			Depth:  make(map[maze.Coord]int),
			Parent: make(map[maze.Coord]maze.Coord),
			Via:    make(map[maze.Coord]maze.Move),
		},
	}

	// Seed queue with start cell (no parent)
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem{at: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.at)
		if err := w.opts.OnVisit(item.at, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.at, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.m.Neighbors(item.at)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %v: %w", item.at, err)
	}
	for _, nb := range neighbors {
		if !w.opts.FilterNeighbor(item.at, nb) {
			continue
		}
		if _, seen := w.res.Depth[nb.To]; seen {
			continue
		}
		w.res.Depth[nb.To] = nextDepth
		w.res.Parent[nb.To] = item.at
		w.res.Via[nb.To] = nb.Move
		w.queue = append(w.queue, queueItem{at: nb.To, depth: nextDepth})
	}

	return nil
}
