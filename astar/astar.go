package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/tesseract/maze"
)

// ShortestPath returns a minimum-length directed path from one coordinate to
// another. It is Search without the statistics.
func ShortestPath(m *maze.Maze, from, to maze.Coord, opts ...Option) (Path, error) {
	res, err := Search(m, from, to, opts...)
	if err != nil {
		return Path{}, err
	}

	return res.Path, nil
}

// Search runs A* from one coordinate to another over the directed maze m.
//
// Priority of a frontier entry is g + h, where g is the number of moves taken
// from the origin and h is the Manhattan distance to the goal summed over the
// maze's active axes only. Every move changes one axis by one unit, so h never
// overestimates and the first time the goal is popped its g is minimal.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. m must be non-nil (ErrNilMaze).
//  3. from and to must lie inside the grid (ErrOutOfBounds).
//
// Outcomes:
//
//   - success: Result.Found is true and Result.Path runs from → to.
//   - exhausted frontier: ErrNoPath, with Result.Expanded still reported.
//   - budget reached: ErrBudgetExceeded (which also matches ErrNoPath).
//   - cancelled context: the context's error.
//
// Complexity:
//
//   - Time:  O(V log V) with V the number of reachable cells (at most 8 edges each).
//   - Space: O(V) for g-scores, predecessors, closed set and lazy heap entries.
func Search(m *maze.Maze, from, to maze.Coord, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate inputs
	if m == nil {
		return nil, ErrNilMaze
	}
	if !m.InBounds(from) {
		return nil, fmt.Errorf("%w: start %v with size %d", ErrOutOfBounds, from, m.Size)
	}
	if !m.InBounds(to) {
		return nil, fmt.Errorf("%w: goal %v with size %d", ErrOutOfBounds, to, m.Size)
	}

	// 3) Run
	r := &runner{
		m:        m,
		options:  cfg,
		from:     from,
		goal:     to,
		axes:     m.ActiveAxes(),
		g:        make(map[maze.Coord]int),
		cameFrom: make(map[maze.Coord]link),
		closed:   make(map[maze.Coord]bool),
		pq:       make(nodePQ, 0, 64),
		res:      &Result{},
	}
	r.init()

	return r.process()
}

// link records how a node was entered: its predecessor and the move taken.
type link struct {
	parent maze.Coord
	via    maze.Move
}

// runner holds the mutable state for a single A* execution.
// Nothing here outlives the call.
type runner struct {
	m        *maze.Maze
	options  Options
	from     maze.Coord
	goal     maze.Coord
	axes     []int
	g        map[maze.Coord]int  // best known moves from origin
	cameFrom map[maze.Coord]link // predecessor on the best known route
	closed   map[maze.Coord]bool // settled nodes
	pq       nodePQ              // lazy min-heap on (f, seq)
	seq      uint64              // insertion counter for deterministic ties
	res      *Result
}

// heuristic is the Manhattan distance from c to the goal over the active axes.
func (r *runner) heuristic(c maze.Coord) int {
	h := 0
	for _, axis := range r.axes {
		d := c[axis] - r.goal[axis]
		if d < 0 {
			d = -d
		}
		h += d
	}

	return h
}

// init seeds the frontier with the origin at g = 0.
func (r *runner) init() {
	r.g[r.from] = 0
	heap.Init(&r.pq)
	r.push(r.from, 0)
}

func (r *runner) push(c maze.Coord, g int) {
	heap.Push(&r.pq, &nodeItem{at: c, g: g, f: g + r.heuristic(c), seq: r.seq})
	r.seq++
}

// process repeatedly settles the lowest-priority frontier node until the goal
// is settled, the frontier drains, the budget is spent or the context ends.
func (r *runner) process() (*Result, error) {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return r.res, ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.at

		// Skip stale heap entries.
		if r.closed[u] || item.g > r.g[u] {
			continue
		}
		if r.options.MaxExpansions > 0 && r.res.Expanded >= r.options.MaxExpansions {
			return r.res, fmt.Errorf("%w: %d expansions from %v to %v",
				ErrBudgetExceeded, r.res.Expanded, r.from, r.goal)
		}

		r.closed[u] = true
		r.res.Expanded++
		r.options.OnExpand(u, item.g)

		if u == r.goal {
			r.res.Found = true
			r.res.Path = r.reconstruct()
			return r.res, nil
		}

		if err := r.relax(u, item.g); err != nil {
			return r.res, err
		}
	}

	return r.res, fmt.Errorf("%w: from %v to %v", ErrNoPath, r.from, r.goal)
}

// relax pushes every unsettled neighbor of u whose g-score improves.
func (r *runner) relax(u maze.Coord, gu int) error {
	neighbors, err := r.m.Neighbors(u)
	if err != nil {
		return fmt.Errorf("astar: neighbors of %v: %w", u, err)
	}
	for _, nb := range neighbors {
		if r.closed[nb.To] {
			continue
		}
		ng := gu + 1
		if old, seen := r.g[nb.To]; seen && ng >= old {
			continue
		}
		r.g[nb.To] = ng
		r.cameFrom[nb.To] = link{parent: u, via: nb.Move}
		r.push(nb.To, ng)
	}

	return nil
}

// reconstruct walks cameFrom from the goal back to the origin and reverses it.
func (r *runner) reconstruct() Path {
	steps := make([]Step, 0, r.g[r.goal]+1)
	cur := r.goal
	for cur != r.from {
		l := r.cameFrom[cur]
		steps = append(steps, Step{At: cur, Via: l.via, HasVia: true})
		cur = l.parent
	}
	steps = append(steps, Step{At: r.from})

	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	return Path{Steps: steps}
}

// nodeItem is one frontier entry. Outdated entries stay in the heap and are
// ignored when popped.
type nodeItem struct {
	at  maze.Coord
	g   int
	f   int
	seq uint64
}

// nodePQ is a min-heap of *nodeItem ordered by f, then by insertion order.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by f ascending; equal f falls back to earlier insertion.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
