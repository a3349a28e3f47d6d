package search

import (
	"math/rand/v2"

	"github.com/katalvlaran/statespace/core"
)

// Random searches space by expanding a uniformly random frontier state on
// every iteration.
//
// Properties: not complete on infinite spaces, not optimal. On finite spaces
// the closed set guarantees termination.
// Time and space: O(b^d).
//
// Random draws from the source set with WithRand or WithSeed. Without one a
// private PCG source is seeded from the runtime and runs differ.
func Random[S comparable](space core.StateSpace[S], init, goal S, opts ...Option) (*Result[S], error) {
	r, err := begin[S](AlgorithmRandom, space, init, goal, opts)
	if err != nil {
		return nil, err
	}
	rng := r.opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return uninformed(r, space, uniform(rng))
}

// BreadthFirst searches space level by level with a FIFO frontier.
//
// Properties: complete, optimal in edge count (every edge counts as 1);
// states are expanded in non-decreasing distance from init.
// Time and space: O(b^d).
func BreadthFirst[S comparable](space core.StateSpace[S], init, goal S, opts ...Option) (*Result[S], error) {
	r, err := begin[S](AlgorithmBreadthFirst, space, init, goal, opts)
	if err != nil {
		return nil, err
	}

	return uninformed(r, space, fifo)
}

// DepthFirst searches space by following the most recently discovered state
// first (LIFO frontier). Neighbour order decides which branch is tried.
//
// Properties: complete on finite spaces, not optimal.
// Time: O(b^m), space: O(b·m) frontier.
func DepthFirst[S comparable](space core.StateSpace[S], init, goal S, opts ...Option) (*Result[S], error) {
	r, err := begin[S](AlgorithmDepthFirst, space, init, goal, opts)
	if err != nil {
		return nil, err
	}

	return uninformed(r, space, lifo)
}

// uninformed is the loop shared by Random, BreadthFirst and DepthFirst.
//
// Steps:
//  1. Seed the frontier with init.
//  2. Until the frontier is empty:
//     2.1 Take the state chosen by pick. If it is the goal, reconstruct.
//     2.2 Push every neighbour that is not the state itself, not already
//     in the frontier and not closed, recording its predecessor.
//     2.3 Close the state and report progress.
//  3. An exhausted frontier yields ErrNoPath.
func uninformed[S comparable](r *runner[S], space core.StateSpace[S], pick func(int) int) (*Result[S], error) {
	open := newOpenList[S](pick)
	open.push(r.init)

	for open.len() > 0 {
		if err := r.checkpoint(open.len()); err != nil {
			return r.fail(err)
		}

		current := open.pop()
		r.visit()
		if current == r.goal {
			return r.found(current, edgeCount[S])
		}

		for _, nbr := range space.Neighbors(current) {
			if nbr == current || open.contains(nbr) || r.isClosed(nbr) {
				continue
			}
			open.push(nbr)
			r.parents[nbr] = current
		}

		r.close(current, open.len(), open.snapshot)
	}

	return r.fail(r.noPath())
}

// edgeCount is the cost of a path when every edge counts as 1.
func edgeCount[S comparable](path []S) float64 { return float64(len(path) - 1) }
