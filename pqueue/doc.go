// Package pqueue provides a minimum-priority queue with float64 keys that
// are guaranteed never to be NaN.
//
// What
//
//   - Priority wraps a float64 and rejects NaN at construction, which gives
//     keys a true total order: no comparison inside the heap can fail.
//   - MinQueue[T] always yields the element with the smallest key. It is a
//     binary heap (container/heap) with lazy decrease-key semantics: the same
//     element may be enqueued several times with different keys and each
//     entry surfaces independently.
//
// Contract
//
//	Enqueuing a NaN key is a programming error, not a recoverable outcome:
//	Enqueue panics with ErrNaNPriority. Costs and heuristics that satisfy the
//	state-space contract are never NaN, so the panic points at the bug.
//
// Complexity (N = entries in the queue)
//
//   - Enqueue, Dequeue: O(log N)
//   - Peek, Len, IsEmpty, Contains: O(1)
//   - Elements, Clone: O(N)
//
// Ties between equal keys are broken arbitrarily; heap order is not stable.
package pqueue
