// Package schedule runs delayed callbacks on the caller's goroutine.
//
// Nothing fires on its own: the game loop calls Advance with the current time
// and every due callback runs inline, in due order. This keeps timed effects
// inside the same single-threaded flow as player input.
package schedule

import (
	"time"

	"github.com/zyedidia/generic/heap"
)

type entry struct {
	due time.Time
	seq uint64
	fn  func()
}

// Queue is a min-heap of pending callbacks keyed by due time.
type Queue struct {
	pending *heap.Heap[entry]
	seq     uint64
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{
		pending: heap.New(func(a, b entry) bool {
			if a.due.Equal(b.due) {
				return a.seq < b.seq
			}
			return a.due.Before(b.due)
		}),
	}
}

// At schedules fn to run on the first Advance at or after due.
func (q *Queue) At(due time.Time, fn func()) {
	q.seq++
	q.pending.Push(entry{due: due, seq: q.seq, fn: fn})
}

// Advance runs every callback due at or before now and returns how many ran.
// Callbacks scheduled while advancing run in the same call if they are due.
func (q *Queue) Advance(now time.Time) int {
	ran := 0
	for {
		next, ok := q.pending.Peek()
		if !ok || next.due.After(now) {
			return ran
		}
		q.pending.Pop()
		next.fn()
		ran++
	}
}

// Len returns the number of pending callbacks.
func (q *Queue) Len() int {
	return q.pending.Size()
}
