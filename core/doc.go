// Package core defines the state-space capability set that every search
// algorithm in github.com/katalvlaran/statespace operates against, plus the
// shared path utilities built on top of it.
//
// A state space is described by three nested capabilities, each a strict
// superset of the previous one:
//
//	StateSpace[S]           Neighbors(state) []S
//	CostStateSpace[S]       + Cost(current, next) float64
//	HeuristicStateSpace[S]  + Heuristic(state, goal) float64
//
// An algorithm declares the minimum tier it needs as its parameter type, so
// running Dijkstra on a space without a cost function is a compile error
// rather than a runtime failure.
//
// States (the type parameter S) are plain comparable values: they are used as
// map keys for the visited set, the predecessor mapping and the distance
// mapping, and are copied freely into frontier containers. A problem instance
// never owns the states it hands out and must not be mutated by a search.
//
// Progress reporting:
//
//	A space may additionally implement ProgressDisplayer[S]. Algorithms detect
//	it with a type assertion and call DisplayProgress once per iteration with
//	a snapshot of the open set. The hook is for observation only (logging,
//	animation) and never influences the outcome of a search.
//
// Path utilities:
//
//   - ReconstructPath(parents, terminal) - turns a predecessor mapping into an
//     initial→terminal slice, consuming the mapping.
//   - PathCost(space, path)             - accumulated edge cost of a path.
//   - ValidatePath(space, path)         - checks every consecutive pair is a
//     neighbour transition.
//
// Errors:
//
//   - ErrEmptyPath          if ValidatePath is given no states.
//   - ErrInvalidTransition  if two consecutive states are not neighbours.
package core
