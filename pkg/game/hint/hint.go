// Package hint suggests the next card to place.
package hint

import (
	"solitaire/pkg/game/catalog"
	"solitaire/pkg/game/placement"
)

// Suggestion is the outcome of a hint request. Either Item names the card for
// the lowest empty Slot, or AllFilled is set and there is nothing to suggest.
type Suggestion struct {
	Slot      int
	Item      catalog.Item
	AllFilled bool
}

// Next returns the card that belongs in the first empty slot.
// Slots holding a wrong card are not empty and are never hinted.
func Next(p *catalog.Puzzle, s placement.Set) Suggestion {
	for slot := 0; slot < p.Size(); slot++ {
		if s.Filled(slot) {
			continue
		}
		id, _ := p.TargetAt(slot)
		it, ok := p.Item(id)
		if !ok {
			continue
		}
		return Suggestion{Slot: slot, Item: it}
	}
	return Suggestion{Slot: -1, AllFilled: true}
}
