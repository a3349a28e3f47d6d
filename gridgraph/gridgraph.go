package gridgraph

import (
	"math"
	"strings"

	"github.com/katalvlaran/statespace/core"
)

var (
	_ core.HeuristicStateSpace[Cell] = (*GridGraph)(nil)

	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	minWeight := math.Inf(1)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
		for _, v := range values[y] {
			if v >= opts.LandThreshold && float64(v) < minWeight {
				minWeight = float64(v)
			}
		}
	}
	if math.IsInf(minWeight, 1) || minWeight < 0 {
		minWeight = 0
	}

	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		Weighted:        opts.Weighted,
		neighborOffsets: offsets,
		minWeight:       minWeight,
	}, nil
}

// From2D builds an unweighted GridGraph with the default land threshold.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// ParseMaze reads a text maze: 'X' is a wall, the digits '1' to '9' are
// ground of that weight and any other rune is ground of weight 1.
// Rows are separated by '\n'; a trailing newline and '\r' line endings are
// tolerated. Walls become 0, so opts.LandThreshold should stay at its
// default of 1. Weights only affect costs when opts.Weighted is set.
func ParseMaze(text string, opts GridOptions) (*GridGraph, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}

	lines := strings.Split(text, "\n")
	values := make([][]int, len(lines))
	for y, line := range lines {
		row := make([]int, 0, len(line))
		for _, r := range line {
			switch {
			case r == 'X':
				row = append(row, 0)
			case r >= '1' && r <= '9':
				row = append(row, int(r-'0'))
			default:
				row = append(row, 1)
			}
		}
		values[y] = row
	}

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Walkable reports whether c is inside the grid and at or above the land threshold.
func (gg *GridGraph) Walkable(c Cell) bool {
	return gg.InBounds(c.X, c.Y) && gg.CellValues[c.Y][c.X] >= gg.LandThreshold
}

// Check returns ErrOutOfBounds or ErrBlocked when c cannot be a search endpoint.
func (gg *GridGraph) Check(c Cell) error {
	switch {
	case !gg.InBounds(c.X, c.Y):
		return ErrOutOfBounds
	case !gg.Walkable(c):
		return ErrBlocked
	}

	return nil
}

// NeighborOffsets returns the precomputed neighbor offsets in yield order.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Neighbors returns the walkable in-bounds cells adjacent to c, in
// N, E, S, W order (Conn8 adds the diagonals clockwise from NE).
// Complexity: O(d).
func (gg *GridGraph) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if gg.Walkable(n) {
			out = append(out, n)
		}
	}

	return out
}

// Cost prices a single step. Diagonal steps are √2 long; when Weighted the
// length is multiplied by the value of next.
func (gg *GridGraph) Cost(current, next Cell) float64 {
	step := 1.0
	if current.X != next.X && current.Y != next.Y {
		step = math.Sqrt2
	}
	if gg.Weighted {
		step *= float64(gg.CellValues[next.Y][next.X])
	}

	return step
}

// Heuristic is the Manhattan (Conn4) or octile (Conn8) distance to goal,
// scaled by the cheapest walkable value when Weighted. It never
// overestimates the remaining cost.
func (gg *GridGraph) Heuristic(state, goal Cell) float64 {
	dx := math.Abs(float64(state.X - goal.X))
	dy := math.Abs(float64(state.Y - goal.Y))

	var d float64
	if gg.Conn == Conn8 {
		lo, hi := math.Min(dx, dy), math.Max(dx, dy)
		d = hi - lo + math.Sqrt2*lo
	} else {
		d = dx + dy
	}
	if gg.Weighted {
		d *= gg.minWeight
	}

	return d
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to a Cell.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Cell {
	return Cell{X: idx % gg.Width, Y: idx / gg.Width}
}
