package gridgraph

import "fmt"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell is a grid coordinate and the search state of a GridGraph.
// X grows to the east, Y grows to the south.
type Cell struct {
	X, Y int
}

// String renders the cell as "(x,y)".
func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// GridOptions contains tunable parameters for grid analysis and search.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered walkable.
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Weighted multiplies every step by the value of the destination cell.
	// When false each step costs its length (1, or √2 for a diagonal).
	Weighted bool
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are walkable), Conn=Conn4, unweighted.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer grid as a state space over Cell. It is
// immutable once built and safe for concurrent searches.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	LandThreshold   int
	Weighted        bool
	neighborOffsets [][2]int
	minWeight       float64 // smallest walkable value, floor for the heuristic
}
