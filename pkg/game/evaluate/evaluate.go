// Package evaluate scores the current placements against a journey's target order.
package evaluate

import (
	"solitaire/pkg/game/catalog"
	"solitaire/pkg/game/placement"
)

// Result is the derived correctness of one placement set.
// Empty slots have no entry in PerSlot: they are neither correct nor wrong.
type Result struct {
	PerSlot  map[int]bool
	Complete bool
}

// Evaluate compares every placement with the target order. It is a pure
// function of its inputs and is meant to be recomputed after every change.
func Evaluate(p *catalog.Puzzle, s placement.Set) Result {
	r := Result{PerSlot: make(map[int]bool, s.Len())}
	allCorrect := true
	for _, pl := range s.Placements() {
		want, ok := p.TargetAt(pl.Slot)
		correct := ok && want == pl.Item
		r.PerSlot[pl.Slot] = correct
		if !correct {
			allCorrect = false
		}
	}
	r.Complete = s.Len() == p.Size() && allCorrect
	return r
}

// Correct reports whether slot is correct, and whether it is known at all.
func (r Result) Correct(slot int) (correct, known bool) {
	correct, known = r.PerSlot[slot]
	return correct, known
}

// Removable reports whether the card in slot may be taken back out.
// Only wrong cards can be removed; a correct card stays locked in place.
func (r Result) Removable(slot int) bool {
	correct, known := r.PerSlot[slot]
	return known && !correct
}

// CorrectCount returns how many slots hold the right card.
func (r Result) CorrectCount() int {
	n := 0
	for _, ok := range r.PerSlot {
		if ok {
			n++
		}
	}
	return n
}
