package prize_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tesseract/astar"
	"github.com/katalvlaran/tesseract/bfs"
	"github.com/katalvlaran/tesseract/builder"
	"github.com/katalvlaran/tesseract/maze"
	"github.com/katalvlaran/tesseract/prize"
)

var (
	labels2D = []string{"x", "y", "", ""}
	labels4D = []string{"x", "y", "z", "w"}
)

// spur builds a 4D maze with a five-move base corridor along x and a one-way
// spur of two y moves from the origin to (0,2,0,0). It returns the maze and
// the base path.
func spur(t *testing.T) (*maze.Maze, astar.Path) {
	t.Helper()
	m, err := builder.BuildMaze(labels4D, 6, nil,
		builder.Corridor(maze.Coord{}, "xxxxx"),
		builder.Corridor(maze.Coord{}, "yy"),
	)
	require.NoError(t, err)
	base, err := astar.ShortestPath(m, maze.Coord{}, maze.Coord{5, 0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, 5, base.Len())

	return m, base
}

// ------------------------------------------------------------------------
// 1. Worth check
// ------------------------------------------------------------------------

func TestEvaluate_WorthCheck(t *testing.T) {
	m, base := spur(t)
	at := maze.Coord{0, 2, 0, 0}

	got, err := prize.Evaluate(m, base, []prize.Prize{{At: at, Points: 5}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	d := got[0]
	assert.Equal(t, maze.Coord{}, d.From)
	assert.Equal(t, 0, d.FromIndex)
	assert.Equal(t, 4, d.Cost)
	assert.Equal(t, 1, d.Profit)
	assert.Equal(t, "yy", d.Outbound.Moves())
	assert.Nil(t, d.Inbound)

	// Cost 4 is not strictly below 4.
	got, err = prize.Evaluate(m, base, []prize.Prize{{At: at, Points: 4}})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEvaluate_NoViableNode(t *testing.T) {
	m, base := spur(t)

	// (3,1,0,0) has no incoming moves at all.
	got, err := prize.Evaluate(m, base, []prize.Prize{{At: maze.Coord{3, 1, 0, 0}, Points: 1000}})
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestEvaluate_PrizeOnBasePath costs nothing and is always worth it.
func TestEvaluate_PrizeOnBasePath(t *testing.T) {
	m, base := spur(t)

	got, err := prize.Evaluate(m, base, []prize.Prize{{At: maze.Coord{3, 0, 0, 0}, Points: 1}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].FromIndex)
	assert.Equal(t, 0, got[0].Cost)
	assert.Equal(t, 1, got[0].Profit)
}

// TestEvaluate_TieGoesToEarliestNode: the prize at (1,1) is two moves from
// both (0,0) and (2,0); the earlier base node wins.
func TestEvaluate_TieGoesToEarliestNode(t *testing.T) {
	m, err := builder.BuildMaze(labels2D, 3, nil,
		builder.Corridor(maze.Coord{0, 0}, "xx"),
		builder.Corridor(maze.Coord{0, 0}, "yx"),
		builder.Corridor(maze.Coord{2, 0}, "yX"),
	)
	require.NoError(t, err)
	base, err := astar.ShortestPath(m, maze.Coord{0, 0}, maze.Coord{2, 0})
	require.NoError(t, err)
	require.Equal(t, "xx", base.Moves())

	got, err := prize.Evaluate(m, base, []prize.Prize{{At: maze.Coord{1, 1}, Points: 10}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].FromIndex)
	assert.Equal(t, "yx", got[0].Outbound.Moves())
	assert.Equal(t, 4, got[0].Cost)
}

func TestEvaluate_KeepsInputOrder(t *testing.T) {
	m, base := spur(t)

	prizes := []prize.Prize{
		{At: maze.Coord{4, 0, 0, 0}, Points: 2},
		{At: maze.Coord{0, 2, 0, 0}, Points: 1}, // dropped
		{At: maze.Coord{0, 1, 0, 0}, Points: 3},
	}
	got, err := prize.Evaluate(m, base, prizes, prize.WithWorkers(3))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, prizes[0], got[0].Prize)
	assert.Equal(t, prizes[2], got[1].Prize)

	cost, points := prize.Total(got)
	assert.Equal(t, 2, cost)
	assert.Equal(t, 5, points)
}

// ------------------------------------------------------------------------
// 2. Directed round trips
// ------------------------------------------------------------------------

// loop: out of (0,0) by x in one move, back by y X Y in three.
func loop(t *testing.T) (*maze.Maze, astar.Path) {
	t.Helper()
	m, err := builder.BuildMaze(labels2D, 3, nil,
		builder.Corridor(maze.Coord{0, 0}, "xyXY"),
	)
	require.NoError(t, err)
	base, err := astar.ShortestPath(m, maze.Coord{0, 0}, maze.Coord{0, 0})
	require.NoError(t, err)

	return m, base
}

func TestEvaluate_DirectedAsymmetric(t *testing.T) {
	m, base := loop(t)
	at := maze.Coord{1, 0}

	// Mirrored charges 2 × 1.
	got, err := prize.Evaluate(m, base, []prize.Prize{{At: at, Points: 3}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Cost)

	// Directed charges 1 + 3.
	got, err = prize.Evaluate(m, base, []prize.Prize{{At: at, Points: 3}},
		prize.WithRoundTrip(prize.Directed))
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = prize.Evaluate(m, base, []prize.Prize{{At: at, Points: 5}},
		prize.WithRoundTrip(prize.Directed))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].Cost)
	assert.Equal(t, 1, got[0].Profit)
	require.NotNil(t, got[0].Inbound)
	assert.Equal(t, "yXY", got[0].Inbound.Moves())
}

func TestEvaluate_DirectedNoReturn(t *testing.T) {
	m, base := spur(t)
	p := []prize.Prize{{At: maze.Coord{0, 2, 0, 0}, Points: 100}}

	got, err := prize.Evaluate(m, base, p)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = prize.Evaluate(m, base, p, prize.WithRoundTrip(prize.Directed))
	require.NoError(t, err)
	assert.Empty(t, got)
}

// ------------------------------------------------------------------------
// 3. Brute-force oracle and parallelism
// ------------------------------------------------------------------------

// TestEvaluate_MatchesBFSOracle checks every cell of a random one-way maze as
// a prize against BFS distances from each base node.
func TestEvaluate_MatchesBFSOracle(t *testing.T) {
	m, err := builder.BuildMaze(labels4D, 4, []builder.BuilderOption{builder.WithSeed(11)},
		builder.RandomSparse(0.6))
	require.NoError(t, err)

	origin := maze.Coord{}
	reach, err := bfs.BFS(m, origin)
	require.NoError(t, err)
	goal := reach.Order[len(reach.Order)-1]
	base, err := astar.ShortestPath(m, origin, goal)
	require.NoError(t, err)

	depths := make([]*bfs.BFSResult, len(base.Steps))
	for i, s := range base.Steps {
		depths[i], err = bfs.BFS(m, s.At)
		require.NoError(t, err)
	}

	prizes := make([]prize.Prize, 0, m.Cells())
	for key := 0; key < m.Cells(); key++ {
		c, err := m.Coordinate(key)
		require.NoError(t, err)
		prizes = append(prizes, prize.Prize{At: c, Points: 1 + key%9})
	}

	seq, err := prize.Evaluate(m, base, prizes)
	require.NoError(t, err)
	par, err := prize.Evaluate(m, base, prizes, prize.WithWorkers(8))
	require.NoError(t, err)
	assert.Equal(t, seq, par)

	kept := make(map[maze.Coord]prize.Detour, len(seq))
	for _, d := range seq {
		kept[d.Prize.At] = d
	}
	for _, p := range prizes {
		best, bestIdx := -1, -1
		for i, r := range depths {
			if dist, ok := r.Depth[p.At]; ok && (best < 0 || dist < best) {
				best, bestIdx = dist, i
			}
		}
		d, ok := kept[p.At]
		if best < 0 || 2*best >= p.Points {
			assert.False(t, ok, "prize %v should be dropped", p.At)
			continue
		}
		require.True(t, ok, "prize %v should be kept", p.At)
		assert.Equal(t, 2*best, d.Cost, "prize %v", p.At)
		assert.Equal(t, bestIdx, d.FromIndex, "prize %v", p.At)
		assert.Equal(t, p.Points-d.Cost, d.Profit)
		assert.Equal(t, base.Steps[d.FromIndex].At, d.Outbound.From())
		assert.Equal(t, p.At, d.Outbound.To())
	}
}

func TestEvaluate_DirectedParallelMatchesSequential(t *testing.T) {
	m, err := builder.BuildMaze(labels4D, 3, []builder.BuilderOption{builder.WithSeed(5)},
		builder.RandomSparse(0.7))
	require.NoError(t, err)
	reach, err := bfs.BFS(m, maze.Coord{})
	require.NoError(t, err)
	base, err := astar.ShortestPath(m, maze.Coord{}, reach.Order[len(reach.Order)-1])
	require.NoError(t, err)

	prizes := make([]prize.Prize, 0, len(reach.Order))
	for i, c := range reach.Order {
		prizes = append(prizes, prize.Prize{At: c, Points: 4 + i%5})
	}

	seq, err := prize.Evaluate(m, base, prizes, prize.WithRoundTrip(prize.Directed))
	require.NoError(t, err)
	par, err := prize.Evaluate(m, base, prizes, prize.WithRoundTrip(prize.Directed), prize.WithWorkers(4))
	require.NoError(t, err)
	assert.Equal(t, seq, par)
	for _, d := range par {
		require.NotNil(t, d.Inbound)
		assert.Equal(t, d.Outbound.Len()+d.Inbound.Len(), d.Cost)
		assert.Equal(t, d.From, d.Inbound.To())
	}
}

// ------------------------------------------------------------------------
// 4. Errors, budgets, hooks
// ------------------------------------------------------------------------

func TestEvaluate_Errors(t *testing.T) {
	m, base := spur(t)
	ok := []prize.Prize{{At: maze.Coord{0, 1, 0, 0}, Points: 3}}

	_, err := prize.Evaluate(nil, base, ok)
	assert.ErrorIs(t, err, astar.ErrNilMaze)

	_, err = prize.Evaluate(m, astar.Path{}, ok)
	assert.ErrorIs(t, err, prize.ErrEmptyPath)

	_, err = prize.Evaluate(m, base, []prize.Prize{{At: maze.Coord{0, 1, 0, 0}, Points: 0}})
	assert.ErrorIs(t, err, prize.ErrInvalidPrize)

	_, err = prize.Evaluate(m, base, []prize.Prize{{At: maze.Coord{0, 9, 0, 0}, Points: 3}})
	assert.ErrorIs(t, err, prize.ErrOutOfBounds)
	assert.ErrorIs(t, err, maze.ErrOutOfBounds)

	_, err = prize.Evaluate(m, base, ok, prize.WithWorkers(0))
	assert.ErrorIs(t, err, prize.ErrOptionViolation)

	_, err = prize.Evaluate(m, base, ok, prize.WithRoundTrip(prize.RoundTrip(9)))
	assert.ErrorIs(t, err, prize.ErrOptionViolation)

	// A base node outside the grid is a hard failure, not "no path".
	bad := astar.Path{Steps: []astar.Step{{At: maze.Coord{7, 0, 0, 0}}}}
	_, err = prize.Evaluate(m, bad, ok)
	assert.ErrorIs(t, err, astar.ErrOutOfBounds)
}

func TestEvaluate_Cancelled(t *testing.T) {
	m, base := spur(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := prize.Evaluate(m, base, []prize.Prize{{At: maze.Coord{0, 2, 0, 0}, Points: 5}},
		prize.WithContext(ctx), prize.WithWorkers(2))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestEvaluate_BudgetMeansNotViable: a one-expansion budget cannot reach the
// prize two moves away, which drops it instead of failing the pass.
func TestEvaluate_BudgetMeansNotViable(t *testing.T) {
	m, base := spur(t)

	got, err := prize.Evaluate(m, base, []prize.Prize{{At: maze.Coord{0, 2, 0, 0}, Points: 5}},
		prize.WithSearchOptions(astar.WithMaxExpansions(1)))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEvaluate_Logs(t *testing.T) {
	m, base := spur(t)
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := prize.Evaluate(m, base, []prize.Prize{
		{At: maze.Coord{0, 2, 0, 0}, Points: 5},
		{At: maze.Coord{0, 2, 0, 0}, Points: 4},
		{At: maze.Coord{3, 1, 0, 0}, Points: 4},
	}, prize.WithLogger(log))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Prize worth collecting")
	assert.Contains(t, out, "Prize not worth the detour")
	assert.Contains(t, out, "Prize unreachable from base path")
	assert.Contains(t, out, "mode=mirrored")
}

func TestRoundTrip_String(t *testing.T) {
	assert.Equal(t, "mirrored", prize.Mirrored.String())
	assert.Equal(t, "directed", prize.Directed.String())
	assert.Equal(t, "RoundTrip(7)", prize.RoundTrip(7).String())
}
