// Package statespace is a small toolkit for searching implicit state
// spaces: puzzles, mazes, route planning, anything where the graph is
// described by a successor function rather than stored in memory.
//
// 🚀 What is statespace?
//
//	A generic, single-goroutine search engine that brings together:
//		• Capability interfaces: StateSpace, CostStateSpace, HeuristicStateSpace
//		• Uninformed search: random, breadth-first, depth-first
//		• Cost-aware search: Dijkstra (uniform cost)
//		• Informed search: greedy best-first, A*
//		• A NaN-safe minimum priority queue
//		• Progress hooks, cancellation, expansion limits and OpenTelemetry spans
//
// ✨ Why choose statespace?
//
//   - Generic: any comparable type is a state, no adapters or IDs
//   - Pay for what you use: an algorithm asks only for the capabilities it needs
//   - Deterministic: neighbour order and seeded randomness fix every result
//   - Observable: slog debug logs, spans and metrics per search call
//
// Under the hood, everything is organized under these subpackages:
//
//	core/      - capability interfaces and path reconstruction
//	pqueue/    - minimum priority queue with validated priorities
//	search/    - the six algorithms, options and results
//	gridgraph/ - grids and text mazes as a state space, rendering and animation
//	knight/    - knight moves on a rectangular board
//	cmd/statespace - command-line driver for the maze and knight puzzles
//
// Quick example:
//
//	gg, _ := gridgraph.ParseMaze("    \n XX \n    ", gridgraph.DefaultGridOptions())
//	res, err := search.AStar[gridgraph.Cell](gg, gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 3, Y: 2})
//	if err != nil {
//		// errors.Is(err, search.ErrNoPath) when the goal is unreachable
//	}
//	fmt.Print(gg.Render(res.Path, nil, nil))
//
// See each subpackage for details.
package statespace
