// Package search defines the options, results and sentinel errors shared by
// every search algorithm in this package.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
)

// Sentinel errors for search execution.
var (
	// ErrNoPath is returned when the frontier is exhausted without reaching
	// the goal. The accompanying Result still carries expansion statistics.
	ErrNoPath = errors.New("search: goal unreachable from initial state")

	// ErrExpansionLimit is returned when WithMaxExpansions is exceeded.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrNegativeCost is returned by Dijkstra and A* when Cost yields a
	// negative edge weight.
	ErrNegativeCost = errors.New("search: negative edge cost encountered")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm and Run for names or
	// values outside the known set.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Algorithm identifies one of the search strategies.
type Algorithm int

const (
	// AlgorithmRandom expands a uniformly random frontier state each iteration.
	AlgorithmRandom Algorithm = iota
	// AlgorithmBreadthFirst expands states in FIFO order.
	AlgorithmBreadthFirst
	// AlgorithmDepthFirst expands states in LIFO order.
	AlgorithmDepthFirst
	// AlgorithmDijkstra expands the state with the lowest accumulated cost.
	AlgorithmDijkstra
	// AlgorithmGreedy expands the state with the lowest heuristic estimate.
	AlgorithmGreedy
	// AlgorithmAStar expands the state with the lowest cost + heuristic.
	AlgorithmAStar
)

var algorithmNames = [...]string{
	AlgorithmRandom:       "random",
	AlgorithmBreadthFirst: "bfs",
	AlgorithmDepthFirst:   "dfs",
	AlgorithmDijkstra:     "dijkstra",
	AlgorithmGreedy:       "greedy",
	AlgorithmAStar:        "astar",
}

// String returns the short, lower-case name used by ParseAlgorithm.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// Algorithms lists every known algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{
		AlgorithmRandom, AlgorithmBreadthFirst, AlgorithmDepthFirst,
		AlgorithmDijkstra, AlgorithmGreedy, AlgorithmAStar,
	}
}

// ParseAlgorithm maps a name (case-insensitive; "a*", "ucs", "breadth-first"
// and similar aliases accepted) to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "random", "rand":
		return AlgorithmRandom, nil
	case "bfs", "breadth-first", "breadthfirst":
		return AlgorithmBreadthFirst, nil
	case "dfs", "depth-first", "depthfirst":
		return AlgorithmDepthFirst, nil
	case "dijkstra", "ucs", "uniform-cost":
		return AlgorithmDijkstra, nil
	case "greedy", "best-first", "gbfs":
		return AlgorithmGreedy, nil
	case "astar", "a*", "a-star":
		return AlgorithmAStar, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Option configures search behaviour via functional arguments.
// If an Option is invalid it is recorded and surfaced as ErrOptionViolation
// when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customise a search call.
type Options struct {
	// Ctx carries telemetry context and allows cooperative cancellation,
	// checked once per iteration.
	Ctx context.Context

	// Rand is the source random search draws from. When nil, random search
	// seeds a private PCG source from the runtime, and runs are not
	// reproducible.
	Rand *rand.Rand

	// Logger receives Debug-level lifecycle records.
	Logger *slog.Logger

	// MaxExpansions, if > 0, aborts with ErrExpansionLimit once that many
	// states have been expanded. 0 disables the limit.
	MaxExpansions int

	// OnExpand is called after each expansion with the number of states
	// expanded so far and the current frontier size.
	OnExpand func(expanded, frontier int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no random source (seeded lazily by random search)
//   - slog.Default() logger
//   - no expansion limit
//   - no-op OnExpand
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Rand:          nil,
		Logger:        slog.Default(),
		MaxExpansions: 0,
		OnExpand:      func(int, int) {},
		err:           nil,
	}
}

// WithContext sets a custom context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRand makes random search draw from r. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed makes random search deterministic by seeding a PCG source.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxExpansions bounds the number of expanded states.
//
//	n > 0:  abort with ErrExpansionLimit after n expansions
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback run after every expansion.
func WithOnExpand(fn func(expanded, frontier int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result holds the outcome of a search call.
type Result[S comparable] struct {
	// Algorithm that produced the result.
	Algorithm Algorithm

	// Path is the ordered sequence of states from init to goal, nil when no
	// path was found.
	Path []S

	// Cost is the accumulated edge cost of Path for cost-aware algorithms
	// and the edge count (len(Path)-1) for the uninformed ones.
	Cost float64

	// Expanded counts the states taken off the frontier and processed.
	Expanded int

	// MaxFrontier is the largest frontier size observed.
	MaxFrontier int
}

// Found reports whether the search produced a path.
func (r *Result[S]) Found() bool { return r != nil && r.Path != nil }

// Len returns the number of edges in the path, or -1 when not found.
func (r *Result[S]) Len() int {
	if !r.Found() {
		return -1
	}

	return len(r.Path) - 1
}
