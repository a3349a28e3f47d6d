// Package knight models the moves of a chess knight on a rectangular board
// as a search space: the state is the square the knight stands on.
//
// Every move costs 1. Heuristic is a lower bound on the number of moves
// left, so A* and greedy search may be used alongside the uninformed
// algorithms.
package knight

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/statespace/core"
)

// ErrInvalidBoard indicates a board with a non-positive dimension.
var ErrInvalidBoard = errors.New("knight: board dimensions must be positive")

// ErrOffBoard indicates a square outside the board.
var ErrOffBoard = errors.New("knight: square is off the board")

var _ core.HeuristicStateSpace[Square] = Board{}

// Square is a board coordinate; (0,0) is a corner.
type Square struct {
	X, Y int
}

func (s Square) String() string { return fmt.Sprintf("(%d,%d)", s.X, s.Y) }

// moves lists the knight offsets in the order Neighbors yields them.
var moves = [8][2]int{
	{-1, -2}, {1, -2}, {2, -1}, {2, 1},
	{1, 2}, {-1, 2}, {-2, 1}, {-2, -1},
}

// Board is a Width×Height board.
type Board struct {
	Width, Height int
}

// NewBoard validates the dimensions.
func NewBoard(width, height int) (Board, error) {
	if width <= 0 || height <= 0 {
		return Board{}, fmt.Errorf("%w: %dx%d", ErrInvalidBoard, width, height)
	}

	return Board{Width: width, Height: height}, nil
}

// Contains reports whether s lies on the board.
func (b Board) Contains(s Square) bool {
	return s.X >= 0 && s.Y >= 0 && s.X < b.Width && s.Y < b.Height
}

// Check returns ErrOffBoard when s cannot be a search endpoint.
func (b Board) Check(s Square) error {
	if !b.Contains(s) {
		return fmt.Errorf("%w: %v on %dx%d", ErrOffBoard, s, b.Width, b.Height)
	}

	return nil
}

// Neighbors returns the on-board squares one knight move away from s.
func (b Board) Neighbors(s Square) []Square {
	out := make([]Square, 0, len(moves))
	for _, m := range moves {
		n := Square{X: s.X + m[0], Y: s.Y + m[1]}
		if b.Contains(n) {
			out = append(out, n)
		}
	}

	return out
}

// Cost is 1 for every move.
func (Board) Cost(_, _ Square) float64 { return 1 }

// Heuristic bounds the remaining moves from below: a move changes one
// coordinate by at most 2 and both together by at most 3.
func (Board) Heuristic(s, goal Square) float64 {
	dx, dy := abs(s.X-goal.X), abs(s.Y-goal.Y)

	return float64(max(ceilDiv(dx, 2), ceilDiv(dy, 2), ceilDiv(dx+dy, 3)))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }
