package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tesseract/bfs"
	"github.com/katalvlaran/tesseract/builder"
	"github.com/katalvlaran/tesseract/maze"
)

var labels2D = []string{"x", "y", "", ""}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, maze.Coord{}); !errors.Is(err, bfs.ErrMazeNil) {
		t.Errorf("nil maze: want ErrMazeNil, got %v", err)
	}
	m, err := maze.Build(labels2D, 2, nil)
	require.NoError(t, err)

	_, err = bfs.BFS(m, maze.Coord{2, 0})
	assert.ErrorIs(t, err, bfs.ErrStartOutOfBounds)
	assert.ErrorIs(t, err, maze.ErrOutOfBounds)

	_, err = bfs.BFS(m, maze.Coord{}, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_OpenGridDepths checks that depth equals Manhattan distance on an open grid.
func TestBFS_OpenGridDepths(t *testing.T) {
	m, err := builder.BuildMaze([]string{"x", "y", "z", "w"}, 3, nil, builder.Open())
	require.NoError(t, err)

	res, err := bfs.BFS(m, maze.Coord{})
	require.NoError(t, err)
	assert.Len(t, res.Order, 81)
	for c, d := range res.Depth {
		assert.Equal(t, c[0]+c[1]+c[2]+c[3], d, "depth of %v", c)
	}
	assert.Equal(t, maze.Coord{}, res.Order[0])
}

// TestBFS_Directed follows a one-way corridor and cannot come back.
func TestBFS_Directed(t *testing.T) {
	m, err := builder.BuildMaze(labels2D, 3, nil, builder.Corridor(maze.Coord{0, 0}, "xxy"))
	require.NoError(t, err)

	fwd, err := bfs.BFS(m, maze.Coord{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []maze.Coord{{0, 0}, {1, 0}, {2, 0}, {2, 1}}, fwd.Order)
	assert.Equal(t, maze.Move('y'), fwd.Via[maze.Coord{2, 1}])

	path, err := fwd.PathTo(maze.Coord{2, 1})
	require.NoError(t, err)
	assert.Equal(t, []maze.Coord{{0, 0}, {1, 0}, {2, 0}, {2, 1}}, path)

	back, err := bfs.BFS(m, maze.Coord{2, 1})
	require.NoError(t, err)
	assert.False(t, back.Reached(maze.Coord{0, 0}))
	_, err = back.PathTo(maze.Coord{0, 0})
	assert.ErrorIs(t, err, bfs.ErrUnreached)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	m, err := builder.BuildMaze(labels2D, 4, nil, builder.Open())
	require.NoError(t, err)

	res, err := bfs.BFS(m, maze.Coord{}, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Len(t, res.Order, 3)

	// Refuse every y move: only the x row is reachable.
	res, err = bfs.BFS(m, maze.Coord{}, bfs.WithFilterNeighbor(func(_ maze.Coord, nb maze.Neighbor) bool {
		return nb.Move != maze.MoveYPos
	}))
	require.NoError(t, err)
	assert.Len(t, res.Order, 4)
}

func TestBFS_HooksAndCancel(t *testing.T) {
	m, err := builder.BuildMaze(labels2D, 4, nil, builder.Open())
	require.NoError(t, err)

	stop := errors.New("stop")
	visits := 0
	_, err = bfs.BFS(m, maze.Coord{}, bfs.WithOnVisit(func(maze.Coord, int) error {
		visits++
		if visits == 5 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 5, visits)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(m, maze.Coord{}, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
