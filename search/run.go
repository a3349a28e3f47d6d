package search

import (
	"fmt"

	"github.com/katalvlaran/statespace/core"
)

// Run dispatches to the algorithm named by alg. Because it accepts any
// algorithm, space must provide the full heuristic capability; call the
// individual functions directly for spaces with fewer capabilities.
func Run[S comparable](space core.HeuristicStateSpace[S], alg Algorithm, init, goal S, opts ...Option) (*Result[S], error) {
	switch alg {
	case AlgorithmRandom:
		return Random[S](space, init, goal, opts...)
	case AlgorithmBreadthFirst:
		return BreadthFirst[S](space, init, goal, opts...)
	case AlgorithmDepthFirst:
		return DepthFirst[S](space, init, goal, opts...)
	case AlgorithmDijkstra:
		return Dijkstra[S](space, init, goal, opts...)
	case AlgorithmGreedy:
		return Greedy[S](space, init, goal, opts...)
	case AlgorithmAStar:
		return AStar[S](space, init, goal, opts...)
	}

	return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
}
