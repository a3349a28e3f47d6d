// Package search implements state-space search over the capability set
// defined in package core.
//
// What
//
//   - Random, BreadthFirst, DepthFirst - uninformed; need core.StateSpace.
//   - Dijkstra                         - uniform-cost; needs core.CostStateSpace.
//   - Greedy, AStar                    - heuristic-driven; need core.HeuristicStateSpace.
//   - Run                              - dispatch by Algorithm value.
//
// Every call returns a *Result holding the initial→goal path, its cost and
// expansion statistics. When the frontier empties without reaching the goal
// the call returns ErrNoPath; unreachable goals are a normal outcome, not a
// contract violation. If init == goal the path is the single state [init].
//
// Shared expansion rules
//
//   - Self-loops returned by Neighbors are ignored.
//   - A closed (already expanded) state is never expanded again.
//   - Predecessors are recorded when a state is pushed (or improved), and
//     the path is rebuilt with core.ReconstructPath at the goal.
//   - If the space implements core.ProgressDisplayer it is called once per
//     iteration with a snapshot of the open set.
//
// Determinism
//
//	BreadthFirst, DepthFirst, Dijkstra, Greedy and AStar are deterministic for
//	a deterministic Neighbors order up to ties between equal queue keys.
//	Random is deterministic when given a seeded source (WithSeed, WithRand).
//
// Usage
//
//	res, err := search.AStar(maze, start, goal)
//	if errors.Is(err, search.ErrNoPath) {
//	    // goal unreachable
//	}
//	fmt.Println(res.Path, res.Cost)
//
//	res, err = search.Random(board, from, to,
//	    search.WithSeed(42),
//	    search.WithMaxExpansions(10_000),
//	    search.WithContext(ctx),
//	    search.WithLogger(logger),
//	)
//
// Options
//
//   - DefaultOptions():         background context, slog.Default, no limit.
//   - WithContext(ctx):         telemetry parent and cancellation (checked per iteration).
//   - WithMaxExpansions(n):     abort with ErrExpansionLimit after n expansions.
//   - WithSeed(s), WithRand(r): random source for Random.
//   - WithLogger(l):            Debug-level lifecycle logging.
//   - WithOnExpand(fn):         per-expansion callback (expanded, frontier size).
//
// Errors
//
//   - ErrNoPath            frontier exhausted, goal unreachable.
//   - ErrExpansionLimit    WithMaxExpansions exceeded.
//   - ErrNegativeCost      Dijkstra/AStar met a negative edge cost.
//   - ErrOptionViolation   invalid Option (e.g. negative MaxExpansions).
//   - ErrUnknownAlgorithm  ParseAlgorithm / Run with an unknown algorithm.
//   - context errors       when the WithContext context is done.
//
// A NaN cost or heuristic is a contract violation and panics inside
// package pqueue.
//
// Telemetry
//
//	Each call opens an OpenTelemetry span "search.<algorithm>" and records
//	search_total, search_expanded_states and search_duration_seconds through
//	the global otel providers.
package search
