package search

import (
	"fmt"

	"github.com/katalvlaran/statespace/core"
	"github.com/katalvlaran/statespace/pqueue"
)

// Dijkstra runs uniform-cost search: the frontier is a min-queue keyed by
// the accumulated distance from init.
//
// The distance mapping starts as {init: 0}. Expanding current relaxes every
// neighbour: tentative = dist[current] + Cost(current, neighbour). When the
// neighbour has no distance yet, or tentative improves on it, the distance
// and predecessor are updated and the neighbour is re-enqueued at the new
// key. Older entries stay in the queue ("lazy decrease-key") and are skipped
// when they surface for an already closed state.
//
// Properties: complete and optimal for non-negative costs.
// Time: O((V + E) log V), space: O(V + E).
//
// A negative cost aborts with ErrNegativeCost; a NaN cost panics when it
// reaches the queue.
func Dijkstra[S comparable](space core.CostStateSpace[S], init, goal S, opts ...Option) (*Result[S], error) {
	r, err := begin[S](AlgorithmDijkstra, space, init, goal, opts)
	if err != nil {
		return nil, err
	}

	queue := pqueue.New[S]()
	dist := map[S]float64{init: 0}
	queue.Enqueue(0, init)

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
			if nbr == current {
				continue
			}
			c := space.Cost(current, nbr)
			if c < 0 {
				return r.fail(negativeCost(current, nbr, c))
			}
			tentative := d + c
			if old, seen := dist[nbr]; !seen || tentative < old {
				dist[nbr] = tentative
				queue.Enqueue(tentative, nbr)
				r.parents[nbr] = current
			}
		}

		r.close(current, queue.Len(), queue.Elements)
	}

	return r.fail(r.noPath())
}

func negativeCost[S comparable](from, to S, c float64) error {
	return fmt.Errorf("%w: %v→%v cost=%g", ErrNegativeCost, from, to, c)
}
