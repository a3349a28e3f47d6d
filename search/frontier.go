package search

import "math/rand/v2"

// openList is the frontier of the uninformed searches: an ordered slice with
// a membership index. pick chooses which index pop removes, which is the only
// difference between random, breadth-first and depth-first search.
type openList[S comparable] struct {
	items   []S
	members map[S]struct{}
	pick    func(n int) int
}

func newOpenList[S comparable](pick func(n int) int) *openList[S] {
	return &openList[S]{
		items:   make([]S, 0, 16),
		members: make(map[S]struct{}),
		pick:    pick,
	}
}

func (l *openList[S]) push(s S) {
	l.items = append(l.items, s)
	l.members[s] = struct{}{}
}

// pop removes the element chosen by pick, preserving the order of the rest.
func (l *openList[S]) pop() S {
	i := l.pick(len(l.items))
	s := l.items[i]
	switch i {
	case 0:
		l.items = l.items[1:]
	case len(l.items) - 1:
		l.items = l.items[:i]
	default:
		l.items = append(l.items[:i], l.items[i+1:]...)
	}
	delete(l.members, s)

	return s
}

func (l *openList[S]) len() int { return len(l.items) }

func (l *openList[S]) contains(s S) bool {
	_, ok := l.members[s]
	return ok
}

// snapshot returns a copy of the frontier in insertion order.
func (l *openList[S]) snapshot() []S {
	out := make([]S, len(l.items))
	copy(out, l.items)
	return out
}

// fifo picks the oldest element (breadth-first).
func fifo(int) int { return 0 }

// lifo picks the newest element (depth-first).
func lifo(n int) int { return n - 1 }

// uniform picks a uniformly random element (random search).
func uniform(r *rand.Rand) func(n int) int {
	return func(n int) int { return r.IntN(n) }
}
