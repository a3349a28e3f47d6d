package gridgraph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/statespace/gridgraph"
	"github.com/katalvlaran/statespace/search"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		opts gridgraph.GridOptions
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.DefaultGridOptions(), gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGridGraph_DeepCopy ensures later edits of the input do not leak in.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	grid := [][]int{{1, 1}, {1, 1}}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn4)
	require.NoError(t, err)

	grid[0][1] = 0
	assert.True(t, gg.Walkable(gridgraph.Cell{X: 1, Y: 0}))
}

// TestInBounds checks InBounds on a 3×2 grid under Conn4.
func TestInBounds(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{1, 0, 1},
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}

	assert.ErrorIs(t, gg.Check(gridgraph.Cell{X: 5, Y: 0}), gridgraph.ErrOutOfBounds)
	assert.ErrorIs(t, gg.Check(gridgraph.Cell{X: 0, Y: 0}), gridgraph.ErrBlocked)
	assert.NoError(t, gg.Check(gridgraph.Cell{X: 1, Y: 0}))
}

//----------------------------------------------------------------------------//
// Neighbors Tests
//----------------------------------------------------------------------------//

func c(x, y int) gridgraph.Cell { return gridgraph.Cell{X: x, Y: y} }

// TestNeighbors_Order covers the middle, corner and walled cases of a 3×3 maze.
func TestNeighbors_Order(t *testing.T) {
	open, err := gridgraph.ParseMaze("   \n   \n   ", gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	assert.Equal(t, []gridgraph.Cell{c(1, 0), c(2, 1), c(1, 2), c(0, 1)}, open.Neighbors(c(1, 1)), "middle")
	assert.Equal(t, []gridgraph.Cell{c(1, 0), c(0, 1)}, open.Neighbors(c(0, 0)), "corner")

	walled, err := gridgraph.ParseMaze("XXX\nX  \nX  ", gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Cell{c(2, 1), c(1, 2)}, walled.Neighbors(c(1, 1)), "wall corner")
}

// TestNeighbors_Conn8 verifies the clockwise diagonal order.
func TestNeighbors_Conn8(t *testing.T) {
	grid := [][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 0},
	}
	gg, err := gridgraph.From2D(grid, gridgraph.Conn8)
	require.NoError(t, err)

	want := []gridgraph.Cell{c(1, 0), c(2, 0), c(2, 1), c(1, 2), c(0, 2), c(0, 1), c(0, 0)}
	assert.Equal(t, want, gg.Neighbors(c(1, 1)))
}

//----------------------------------------------------------------------------//
// Cost and Heuristic Tests
//----------------------------------------------------------------------------//

func TestCost(t *testing.T) {
	grid := [][]int{
		{1, 3},
		{2, 5},
	}
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	plain, err := gridgraph.NewGridGraph(grid, opts)
	require.NoError(t, err)
	assert.Equal(t, 1.0, plain.Cost(c(0, 0), c(1, 0)))
	assert.InDelta(t, math.Sqrt2, plain.Cost(c(0, 0), c(1, 1)), 1e-12)

	opts.Weighted = true
	weighted, err := gridgraph.NewGridGraph(grid, opts)
	require.NoError(t, err)
	assert.Equal(t, 3.0, weighted.Cost(c(0, 0), c(1, 0)))
	assert.InDelta(t, 5*math.Sqrt2, weighted.Cost(c(0, 0), c(1, 1)), 1e-12)
}

func TestHeuristic(t *testing.T) {
	grid := make([][]int, 5)
	for y := range grid {
		grid[y] = []int{2, 2, 2, 2, 2}
	}

	manhattan, err := gridgraph.From2D(grid, gridgraph.Conn4)
	require.NoError(t, err)
	assert.Equal(t, 7.0, manhattan.Heuristic(c(0, 0), c(4, 3)))

	octile, err := gridgraph.From2D(grid, gridgraph.Conn8)
	require.NoError(t, err)
	assert.InDelta(t, 1+3*math.Sqrt2, octile.Heuristic(c(0, 0), c(4, 3)), 1e-12)

	opts := gridgraph.DefaultGridOptions()
	opts.Weighted = true
	weighted, err := gridgraph.NewGridGraph(grid, opts)
	require.NoError(t, err)
	assert.Equal(t, 14.0, weighted.Heuristic(c(0, 0), c(4, 3)))
}

//----------------------------------------------------------------------------//
// Search integration
//----------------------------------------------------------------------------//

// TestSearch_OpenMaze3x3 runs BFS and A* corner to corner on an open maze.
func TestSearch_OpenMaze3x3(t *testing.T) {
	gg, err := gridgraph.ParseMaze("   \n   \n   \n", gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	for _, alg := range []search.Algorithm{search.AlgorithmBreadthFirst, search.AlgorithmAStar} {
		res, err := search.Run[gridgraph.Cell](gg, alg, c(0, 0), c(2, 2))
		require.NoError(t, err, alg)
		assert.Len(t, res.Path, 5, alg)
		assert.Equal(t, 4.0, res.Cost, alg)
	}
}

// TestSearch_WalledOff reports ErrNoPath for every algorithm.
func TestSearch_WalledOff(t *testing.T) {
	gg, err := gridgraph.ParseMaze("  X  \n  X  \n  X  ", gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	require.False(t, gg.SameComponent(c(0, 0), c(4, 2)))

	for _, alg := range search.Algorithms() {
		_, err := search.Run[gridgraph.Cell](gg, alg, c(0, 0), c(4, 2), search.WithSeed(3))
		assert.ErrorIs(t, err, search.ErrNoPath, alg)
	}
}

// TestSearch_WeightedAvoidsSwamp checks that Dijkstra and A* route around
// expensive cells while BFS still takes the straight line.
func TestSearch_WeightedAvoidsSwamp(t *testing.T) {
	grid := [][]int{
		{1, 9, 1},
		{1, 1, 1},
	}
	opts := gridgraph.DefaultGridOptions()
	opts.Weighted = true
	gg, err := gridgraph.NewGridGraph(grid, opts)
	require.NoError(t, err)

	bfs, err := search.BreadthFirst[gridgraph.Cell](gg, c(0, 0), c(2, 0))
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Cell{c(0, 0), c(1, 0), c(2, 0)}, bfs.Path)

	for _, alg := range []search.Algorithm{search.AlgorithmDijkstra, search.AlgorithmAStar} {
		res, err := search.Run[gridgraph.Cell](gg, alg, c(0, 0), c(2, 0))
		require.NoError(t, err)
		assert.Equal(t, []gridgraph.Cell{c(0, 0), c(0, 1), c(1, 1), c(2, 1), c(2, 0)}, res.Path, alg)
		assert.Equal(t, 4.0, res.Cost, alg)
	}
}

// TestSearch_DiagonalShortcut confirms Conn8 uses diagonal steps.
func TestSearch_DiagonalShortcut(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.ParseMaze("    \n    \n    \n    ", opts)
	require.NoError(t, err)

	res, err := search.AStar[gridgraph.Cell](gg, c(0, 0), c(3, 3))
	require.NoError(t, err)
	assert.Len(t, res.Path, 4)
	assert.InDelta(t, 3*math.Sqrt2, res.Cost, 1e-9)
}

// TestParseMaze_Weights reads digits as terrain weights.
func TestParseMaze_Weights(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Weighted = true
	gg, err := gridgraph.ParseMaze("1 9\r\n X5\r\n", opts)
	require.NoError(t, err)

	assert.Equal(t, [][]int{{1, 1, 9}, {1, 0, 5}}, gg.CellValues)
	assert.Equal(t, 9.0, gg.Cost(c(1, 0), c(2, 0)))
	assert.Equal(t, "   \n X \n", gg.Render(nil, nil, nil))

	_, err = gridgraph.ParseMaze("   \n  ", opts)
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)
	_, err = gridgraph.ParseMaze("\n", opts)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}
