package core

import "errors"

// Sentinel errors for path validation.
var (
	// ErrEmptyPath indicates that a path with no states was supplied.
	ErrEmptyPath = errors.New("core: path is empty")

	// ErrInvalidTransition indicates two consecutive path states are not neighbours.
	ErrInvalidTransition = errors.New("core: invalid transition between consecutive states")
)

// StateSpace is the base capability: neighbour enumeration.
//
// Neighbors returns every state directly reachable from state in one step.
// The order is significant for depth-first and random search (it decides
// exploration order and tie-breaking) but not for the other algorithms.
// The result may contain state itself; algorithms skip self-loops.
// Neighbors must be a pure function of its input.
type StateSpace[S comparable] interface {
	Neighbors(state S) []S
}

// CostStateSpace extends StateSpace with an edge cost function.
//
// Cost is only consulted for pairs returned by Neighbors. It must be
// deterministic and, for Dijkstra and A* to be optimal, non-negative.
type CostStateSpace[S comparable] interface {
	StateSpace[S]
	Cost(current, next S) float64
}

// HeuristicStateSpace extends CostStateSpace with a goal-distance estimate.
//
// A* is optimal only if Heuristic never overestimates the true remaining
// cost (admissibility). The engine does not verify this.
type HeuristicStateSpace[S comparable] interface {
	CostStateSpace[S]
	Heuristic(state, goal S) float64
}

// ProgressDisplayer is an optional extension of any StateSpace.
// DisplayProgress is invoked once per search iteration with the current open
// set; open is a copy and may be retained. It must not affect the search.
type ProgressDisplayer[S comparable] interface {
	DisplayProgress(init, goal S, open []S)
}

// NeighborsFunc adapts an ordinary function to the StateSpace interface.
type NeighborsFunc[S comparable] func(state S) []S

// Neighbors calls f(state).
func (f NeighborsFunc[S]) Neighbors(state S) []S { return f(state) }
