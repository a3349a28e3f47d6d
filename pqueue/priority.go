package pqueue

import (
	"errors"
	"fmt"
	"math"
)

// ErrNaNPriority is returned (or panicked with) when a NaN key is supplied.
var ErrNaNPriority = errors.New("pqueue: priority must not be NaN")

// Priority is a float64 queue key that is never NaN.
// The zero value is a valid priority of 0.
type Priority struct {
	v float64
}

// NewPriority validates v and wraps it. Infinities are accepted.
func NewPriority(v float64) (Priority, error) {
	if math.IsNaN(v) {
		return Priority{}, ErrNaNPriority
	}

	return Priority{v: v}, nil
}

// MustPriority is like NewPriority but panics on NaN.
func MustPriority(v float64) Priority {
	p, err := NewPriority(v)
	if err != nil {
		panic(err)
	}

	return p
}

// Float64 returns the wrapped value.
func (p Priority) Float64() float64 { return p.v }

// Less reports whether p orders strictly before q.
func (p Priority) Less(q Priority) bool { return p.v < q.v }

// Compare returns -1, 0 or +1 as p is less than, equal to, or greater than q.
func (p Priority) Compare(q Priority) int {
	switch {
	case p.v < q.v:
		return -1
	case p.v > q.v:
		return 1
	default:
		return 0
	}
}

// String implements fmt.Stringer.
func (p Priority) String() string { return fmt.Sprintf("%g", p.v) }
