package pqueue

import "container/heap"

// MinQueue is a minimum-priority queue of elements of type T.
// The zero value is not usable; construct with New.
type MinQueue[T comparable] struct {
	h     entryHeap[T]
	count map[T]int // element → number of live entries, for O(1) Contains
}

// New returns an empty MinQueue.
func New[T comparable]() *MinQueue[T] {
	return &MinQueue[T]{
		h:     make(entryHeap[T], 0),
		count: make(map[T]int),
	}
}

// Enqueue inserts element with the given key.
// It panics with ErrNaNPriority if priority is NaN.
func (q *MinQueue[T]) Enqueue(priority float64, element T) {
	heap.Push(&q.h, entry[T]{priority: MustPriority(priority), element: element})
	q.count[element]++
}

// Dequeue removes and returns the element with the smallest key.
// ok is false when the queue is empty.
func (q *MinQueue[T]) Dequeue() (element T, ok bool) {
	if len(q.h) == 0 {
		return element, false
	}
	e := heap.Pop(&q.h).(entry[T])
	if q.count[e.element]--; q.count[e.element] == 0 {
		delete(q.count, e.element)
	}

	return e.element, true
}

// Peek returns the element with the smallest key and that key without
// removing it. ok is false when the queue is empty.
func (q *MinQueue[T]) Peek() (element T, priority float64, ok bool) {
	if len(q.h) == 0 {
		return element, 0, false
	}

	return q.h[0].element, q.h[0].priority.Float64(), true
}

// Contains reports whether at least one entry holds element.
func (q *MinQueue[T]) Contains(element T) bool {
	return q.count[element] > 0
}

// Len returns the number of entries, counting duplicates.
func (q *MinQueue[T]) Len() int { return len(q.h) }

// IsEmpty reports whether the queue holds no entries.
func (q *MinQueue[T]) IsEmpty() bool { return len(q.h) == 0 }

// Elements returns the queued elements in heap (unspecified) order.
// The slice is a fresh copy; duplicates appear once per entry.
func (q *MinQueue[T]) Elements() []T {
	out := make([]T, len(q.h))
	for i, e := range q.h {
		out[i] = e.element
	}

	return out
}

// Clone returns an independent copy of q.
func (q *MinQueue[T]) Clone() *MinQueue[T] {
	c := &MinQueue[T]{
		h:     make(entryHeap[T], len(q.h)),
		count: make(map[T]int, len(q.count)),
	}
	copy(c.h, q.h)
	for k, v := range q.count {
		c.count[k] = v
	}

	return c
}

// entry is a (key, element) pair stored in the heap.
type entry[T comparable] struct {
	priority Priority
	element  T
}

// entryHeap implements heap.Interface ordered by ascending priority.
type entryHeap[T comparable] []entry[T]

func (h entryHeap[T]) Len() int           { return len(h) }
func (h entryHeap[T]) Less(i, j int) bool { return h[i].priority.Less(h[j].priority) }
func (h entryHeap[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be an entry[T].
func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

// Pop is called by heap.Pop and removes the last element.
func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
