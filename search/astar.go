package search

import (
	"github.com/katalvlaran/statespace/core"
	"github.com/katalvlaran/statespace/pqueue"
)

// AStar runs A* search: the frontier is a min-queue keyed by
// dist(state) + Heuristic(state, goal).
//
// Expanding current considers every neighbour that is not closed. With
// tentative = dist[current] + Cost(current, neighbour), the neighbour's
// distance and predecessor are (re)written and it is enqueued at
// tentative + Heuristic(neighbour, goal) when it is not in the frontier, has
// no distance yet, or tentative improves on the recorded one.
//
// Closed states are never reopened, even when a cheaper route to them turns
// up later. This is exact for consistent heuristics; with a merely
// admissible one the returned path may be suboptimal.
//
// Properties: complete, optimal for consistent heuristics and non-negative
// costs. Time and space: O(min(b^(d+1), b·|S|)).
func AStar[S comparable](space core.HeuristicStateSpace[S], init, goal S, opts ...Option) (*Result[S], error) {
	r, err := begin[S](AlgorithmAStar, space, init, goal, opts)
	if err != nil {
		return nil, err
	}

	queue := pqueue.New[S]()
	dist := map[S]float64{init: 0}
	queue.Enqueue(space.Heuristic(init, goal), init)

	for !queue.IsEmpty() {
		if err := r.checkpoint(queue.Len()); err != nil {
			return r.fail(err)
		}

		current, _ := queue.Dequeue()
		if r.isClosed(current) {
			continue // stale entry
		}
		r.visit()
		if current == goal {
			d := dist[current]
			return r.found(current, func([]S) float64 { return d })
		}

		d := dist[current]
		for _, nbr := range space.Neighbors(current) {
			if nbr == current || r.isClosed(nbr) {
				continue
			}
			c := space.Cost(current, nbr)
			if c < 0 {
				return r.fail(negativeCost(current, nbr, c))
			}
			tentative := d + c
			old, seen := dist[nbr]
			if !queue.Contains(nbr) || !seen || old > tentative {
				dist[nbr] = tentative
				r.parents[nbr] = current
				queue.Enqueue(tentative+space.Heuristic(nbr, goal), nbr)
			}
		}

		r.close(current, queue.Len(), queue.Elements)
	}

	return r.fail(r.noPath())
}
