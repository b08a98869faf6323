package prize

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tesseract/astar"
	"github.com/katalvlaran/tesseract/maze"
)

// Evaluate decides, independently for each prize, whether a detour from some
// node of base to the prize and back costs strictly fewer moves than the prize
// is worth. It returns one Detour per worthwhile prize, in input order.
//
// For every base node the outbound shortest path to the prize is searched. In
// Mirrored mode the round trip costs twice its length; in Directed mode the
// return path is searched too and the two lengths are added. A node with no
// path (including a query whose budget runs out) is not viable. The cheapest
// viable node wins, and ties go to the node earliest on the base path.
//
// Errors:
//   - ErrOptionViolation for invalid options.
//   - astar.ErrNilMaze for a nil maze.
//   - ErrEmptyPath if base has no steps.
//   - ErrInvalidPrize, ErrOutOfBounds for a malformed prize.
//   - any other search error (out-of-bounds base node, cancellation) aborts the pass.
//
// Complexity: O(P · N · S), P prizes, N base nodes, S one A* query; Directed
// doubles the query count. Prizes run on up to Options.Workers goroutines.
func Evaluate(m *maze.Maze, base astar.Path, prizes []Prize, opts ...Option) ([]Detour, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if m == nil {
		return nil, astar.ErrNilMaze
	}
	if len(base.Steps) == 0 {
		return nil, ErrEmptyPath
	}
	for i, p := range prizes {
		if p.Points <= 0 {
			return nil, fmt.Errorf("%w: prize %d at %v has %d", ErrInvalidPrize, i, p.At, p.Points)
		}
		if !m.InBounds(p.At) {
			return nil, fmt.Errorf("%w: prize %d at %v with size %d", ErrOutOfBounds, i, p.At, m.Size)
		}
	}

	found := make([]*Detour, len(prizes))
	group, ctx := errgroup.WithContext(cfg.Ctx)
	group.SetLimit(cfg.Workers)
	for i := range prizes {
		group.Go(func() error {
			e := &evaluator{m: m, base: base, cfg: cfg, ctx: ctx, axes: m.ActiveAxes()}
			d, err := e.evaluate(prizes[i])
			if err != nil {
				return fmt.Errorf("prize %d at %v: %w", i, prizes[i].At, err)
			}
			found[i] = d

			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	out := make([]Detour, 0, len(prizes))
	for _, d := range found {
		if d != nil {
			out = append(out, *d)
		}
	}

	return out, nil
}

// Total sums the round-trip cost and the points of the given detours.
func Total(detours []Detour) (cost, points int) {
	for _, d := range detours {
		cost += d.Cost
		points += d.Prize.Points
	}

	return cost, points
}

// evaluator judges one prize against the base path.
type evaluator struct {
	m    *maze.Maze
	base astar.Path
	cfg  Options
	ctx  context.Context
	axes []int
}

// evaluate returns the best detour for p, or nil if none is worth it.
func (e *evaluator) evaluate(p Prize) (*Detour, error) {
	var best *Detour
	for i, step := range e.base.Steps {
		// Each leg is at least the Manhattan distance, so a node that
		// cannot beat the current best is skipped without searching.
		if best != nil && 2*e.lowerBound(step.At, p.At) >= best.Cost {
			continue
		}
		d, err := e.detour(i, step.At, p)
		if err != nil {
			return nil, err
		}
		if d != nil && (best == nil || d.Cost < best.Cost) {
			best = d
		}
	}

	log := e.cfg.Logger.With("prize", p.At.String(), "points", p.Points, "mode", e.cfg.RoundTrip.String())
	switch {
	case best == nil:
		log.Debug("Prize unreachable from base path")
		return nil, nil
	case best.Cost >= p.Points:
		log.Debug("Prize not worth the detour", "from", best.From.String(), "cost", best.Cost)
		return nil, nil
	}
	best.Profit = p.Points - best.Cost
	log.Debug("Prize worth collecting", "from", best.From.String(), "cost", best.Cost, "profit", best.Profit)

	return best, nil
}

// detour prices the round trip from base node at (index i) to p. It returns
// nil without error when the node is not viable.
func (e *evaluator) detour(i int, at maze.Coord, p Prize) (*Detour, error) {
	out, ok, err := e.search(at, p.At)
	if !ok {
		return nil, err
	}
	d := &Detour{Prize: p, From: at, FromIndex: i, Outbound: out, Cost: 2 * out.Len()}
	if e.cfg.RoundTrip == Directed {
		in, ok, err := e.search(p.At, at)
		if !ok {
			return nil, err
		}
		d.Inbound = &in
		d.Cost = out.Len() + in.Len()
	}

	return d, nil
}

// search runs one pathfinder query. ok is false both for "no path", where
// err is nil, and for a hard failure, where err is set.
func (e *evaluator) search(from, to maze.Coord) (path astar.Path, ok bool, err error) {
	opts := append(append([]astar.Option(nil), e.cfg.Search...), astar.WithContext(e.ctx))
	path, err = astar.ShortestPath(e.m, from, to, opts...)
	switch {
	case err == nil:
		return path, true, nil
	case errors.Is(err, astar.ErrNoPath):
		return astar.Path{}, false, nil
	default:
		return astar.Path{}, false, err
	}
}

// lowerBound is the Manhattan distance between a and b over the active axes.
func (e *evaluator) lowerBound(a, b maze.Coord) int {
	n := 0
	for _, axis := range e.axes {
		d := a[axis] - b[axis]
		if d < 0 {
			d = -d
		}
		n += d
	}

	return n
}
