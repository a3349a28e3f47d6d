package core

import "fmt"

// ReconstructPath turns a predecessor mapping into the ordered sequence of
// states from the initial state to terminal.
//
// Starting at terminal it repeatedly removes the current state's predecessor
// from parents until it reaches a state without one (the initial state), then
// reverses the accumulator. The mapping is consumed: ownership passes to this
// function and entries along the path are deleted.
//
// If terminal has no predecessor the result is the single-element path
// [terminal]. A mapping that loops back onto an already collected state is
// cut at the repetition, so the function always terminates.
//
// Complexity: O(L) time and memory, L = path length.
func ReconstructPath[S comparable](parents map[S]S, terminal S) []S {
	path := []S{terminal}
	seen := map[S]struct{}{terminal: {}}

	current := terminal
	for {
		prev, ok := parents[current]
		if !ok {
			break
		}
		delete(parents, current)
		if _, dup := seen[prev]; dup {
			break
		}
		seen[prev] = struct{}{}
		path = append(path, prev)
		current = prev
	}

	// reverse to get init → terminal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// PathCost sums space.Cost over every consecutive pair of path.
// Paths with fewer than two states cost 0.
func PathCost[S comparable](space CostStateSpace[S], path []S) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += space.Cost(path[i-1], path[i])
	}

	return total
}

// ValidatePath reports whether every consecutive pair of path is a neighbour
// transition of space. It returns ErrEmptyPath for an empty path and a
// wrapped ErrInvalidTransition naming the first offending step.
func ValidatePath[S comparable](space StateSpace[S], path []S) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	for i := 1; i < len(path); i++ {
		if !isNeighbor(space, path[i-1], path[i]) {
			return fmt.Errorf("%w: step %d %v→%v", ErrInvalidTransition, i, path[i-1], path[i])
		}
	}

	return nil
}

func isNeighbor[S comparable](space StateSpace[S], from, to S) bool {
	for _, n := range space.Neighbors(from) {
		if n == to {
			return true
		}
	}

	return false
}
