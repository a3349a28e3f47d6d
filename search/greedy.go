package search

import (
	"github.com/katalvlaran/statespace/core"
	"github.com/katalvlaran/statespace/pqueue"
)

// Greedy runs greedy best-first search: the frontier is a min-queue keyed
// purely by Heuristic(state, goal); accumulated cost is ignored.
//
// Expansion mirrors BreadthFirst: a neighbour is enqueued once, when it is
// neither in the frontier nor closed. The closed set keeps it from cycling.
//
// Properties: not optimal; complete on finite spaces.
// Result.Cost is the accumulated Cost along the returned path.
func Greedy[S comparable](space core.HeuristicStateSpace[S], init, goal S, opts ...Option) (*Result[S], error) {
	r, err := begin[S](AlgorithmGreedy, space, init, goal, opts)
	if err != nil {
		return nil, err
	}

	queue := pqueue.New[S]()
	queue.Enqueue(space.Heuristic(init, goal), init)

	for !queue.IsEmpty() {
		if err := r.checkpoint(queue.Len()); err != nil {
			return r.fail(err)
		}

		current, _ := queue.Dequeue()
		r.visit()
		if current == goal {
			return r.found(current, func(path []S) float64 {
				return core.PathCost[S](space, path)
			})
		}

		for _, nbr := range space.Neighbors(current) {
			if nbr == current || queue.Contains(nbr) || r.isClosed(nbr) {
				continue
			}
			queue.Enqueue(space.Heuristic(nbr, goal), nbr)
			r.parents[nbr] = current
		}

		r.close(current, queue.Len(), queue.Elements)
	}

	return r.fail(r.noPath())
}
