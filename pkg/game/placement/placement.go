// Package placement tracks which card sits in which slot.
//
// A slot holds at most one card and a card sits in at most one slot. Both
// rules are enforced by storing placements in a bidirectional map, and any
// drop that would break them is rejected without error.
package placement

import (
	"sort"

	"github.com/zyedidia/generic/bimap"

	"solitaire/pkg/game/catalog"
)

// Placement is the fact that Item currently occupies Slot.
type Placement struct {
	Item catalog.ItemID
	Slot int
}

// Store is the mutable slot/card mapping for the journey in progress.
type Store struct {
	size  int
	slots bimap.Bimap[int, catalog.ItemID]
}

// NewStore creates an empty store with size slots, numbered 0..size-1.
func NewStore(size int) *Store {
	if size < 0 {
		size = 0
	}
	return &Store{size: size}
}

// Size returns the number of slots.
func (s *Store) Size() int {
	return s.size
}

// Len returns the number of placed cards.
func (s *Store) Len() int {
	return s.slots.Len()
}

// Place puts item into slot. The drop is rejected (false) when the slot is
// out of range, already holds a card, or the card is already placed.
func (s *Store) Place(item catalog.ItemID, slot int) bool {
	if slot < 0 || slot >= s.size {
		return false
	}
	if s.slots.ContainsForward(slot) || s.slots.ContainsReverse(item) {
		return false
	}
	s.slots.Add(slot, item)
	return true
}

// Remove takes item out of whatever slot holds it. It reports whether a card
// was removed.
func (s *Store) Remove(item catalog.ItemID) bool {
	if !s.slots.ContainsReverse(item) {
		return false
	}
	s.slots.RemoveReverse(item)
	return true
}

// Clear empties every slot.
func (s *Store) Clear() {
	s.slots.Clear()
}

// Snapshot returns a read-only copy of the current placements.
func (s *Store) Snapshot() Set {
	set := Set{
		size:   s.size,
		bySlot: make(map[int]catalog.ItemID, s.slots.Len()),
		byItem: make(map[catalog.ItemID]int, s.slots.Len()),
	}
	s.slots.Each(func(slot int, item catalog.ItemID) {
		set.bySlot[slot] = item
		set.byItem[item] = slot
	})
	return set
}

// Set is an immutable view of the placements at one point in time.
type Set struct {
	size   int
	bySlot map[int]catalog.ItemID
	byItem map[catalog.ItemID]int
}

// NewSet builds a view directly from placements. It is meant for callers that
// hold placements from elsewhere; entries that would break the one-card-per-
// slot rules are dropped the same way Store.Place drops them.
func NewSet(size int, placements ...Placement) Set {
	st := NewStore(size)
	for _, p := range placements {
		st.Place(p.Item, p.Slot)
	}
	return st.Snapshot()
}

// Size returns the number of slots.
func (s Set) Size() int {
	return s.size
}

// Len returns the number of placed cards.
func (s Set) Len() int {
	return len(s.bySlot)
}

// At returns the card in slot.
func (s Set) At(slot int) (catalog.ItemID, bool) {
	id, ok := s.bySlot[slot]
	return id, ok
}

// Filled reports whether slot holds a card.
func (s Set) Filled(slot int) bool {
	_, ok := s.bySlot[slot]
	return ok
}

// SlotOf returns the slot holding item.
func (s Set) SlotOf(item catalog.ItemID) (int, bool) {
	slot, ok := s.byItem[item]
	return slot, ok
}

// Placements lists every placement ordered by slot.
func (s Set) Placements() []Placement {
	out := make([]Placement, 0, len(s.bySlot))
	for slot, item := range s.bySlot {
		out = append(out, Placement{Item: item, Slot: slot})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slot < out[j].Slot })
	return out
}
