package schedule

import (
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestAdvance_RunsOnlyDue(t *testing.T) {
	q := NewQueue()
	var ran []string
	q.At(epoch.Add(2*time.Second), func() { ran = append(ran, "b") })
	q.At(epoch.Add(1*time.Second), func() { ran = append(ran, "a") })
	q.At(epoch.Add(5*time.Second), func() { ran = append(ran, "c") })

	if n := q.Advance(epoch); n != 0 {
		t.Errorf("Advance(t0) ran %d, want 0", n)
	}
	if n := q.Advance(epoch.Add(2 * time.Second)); n != 2 {
		t.Errorf("Advance(t0+2s) ran %d, want 2", n)
	}
	if got := len(ran); got != 2 || ran[0] != "a" || ran[1] != "b" {
		t.Errorf("ran = %v, want [a b]", ran)
	}
	if q.Len() != 1 {
		t.Errorf("Len() = %d, want 1", q.Len())
	}
	q.Advance(epoch.Add(time.Hour))
	if len(ran) != 3 || ran[2] != "c" {
		t.Errorf("ran = %v, want [a b c]", ran)
	}
	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0", q.Len())
	}
}

func TestAdvance_TiesRunInScheduleOrder(t *testing.T) {
	q := NewQueue()
	var ran []int
	due := epoch.Add(time.Second)
	for i := 0; i < 5; i++ {
		i := i
		q.At(due, func() { ran = append(ran, i) })
	}
	q.Advance(due)
	for i, v := range ran {
		if v != i {
			t.Fatalf("ran = %v, want 0..4 in order", ran)
		}
	}
}

func TestAdvance_CallbackSchedulesAnother(t *testing.T) {
	q := NewQueue()
	count := 0
	q.At(epoch, func() {
		count++
		q.At(epoch, func() { count++ })
		q.At(epoch.Add(time.Minute), func() { count++ })
	})
	if n := q.Advance(epoch); n != 2 {
		t.Errorf("Advance ran %d, want 2", n)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	if q.Len() != 1 {
		t.Errorf("Len() = %d, want 1", q.Len())
	}
}
