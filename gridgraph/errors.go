package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice or maze text is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrBlocked indicates a cell that is not walkable.
	ErrBlocked = errors.New("gridgraph: cell is not walkable")
)
