// Package catalog holds the journeys that can be played: their cards and the
// single correct order each journey expects.
package catalog

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// MinItems is the smallest number of cards a journey may have.
const MinItems = 2

// ItemID identifies a card. IDs are unique within a journey.
type ItemID int

// Item is one card of a journey
type Item struct {
	ID          ItemID
	Label       string
	Description string
	Icon        string // Icon reference (an emoji in the bundled content)
	Hint        string // Shown when this card is the next one to place
}

// Puzzle is one journey: a set of cards and the order they must end up in.
// Puzzles returned by a Catalog are shared and must be treated as read-only.
type Puzzle struct {
	Key         string
	Title       string
	Description string
	Items       []Item
	TargetOrder []ItemID

	byID map[ItemID]int
}

// Size returns the number of cards, which is also the number of slots.
func (p *Puzzle) Size() int {
	return len(p.TargetOrder)
}

// Item looks up a card by ID.
func (p *Puzzle) Item(id ItemID) (Item, bool) {
	if p.byID == nil {
		for _, it := range p.Items {
			if it.ID == id {
				return it, true
			}
		}
		return Item{}, false
	}
	idx, ok := p.byID[id]
	if !ok {
		return Item{}, false
	}
	return p.Items[idx], true
}

// Has reports whether the card belongs to this journey.
func (p *Puzzle) Has(id ItemID) bool {
	_, ok := p.Item(id)
	return ok
}

// TargetAt returns the card that belongs in the given slot.
func (p *Puzzle) TargetAt(slot int) (ItemID, bool) {
	if slot < 0 || slot >= len(p.TargetOrder) {
		return 0, false
	}
	return p.TargetOrder[slot], true
}

// clone deep-copies the puzzle so the catalog never shares slices with its caller.
func (p Puzzle) clone() *Puzzle {
	c := p
	c.Items = append([]Item(nil), p.Items...)
	c.TargetOrder = append([]ItemID(nil), p.TargetOrder...)
	c.byID = make(map[ItemID]int, len(c.Items))
	for i, it := range c.Items {
		c.byID[it.ID] = i
	}
	return &c
}

// validate checks that TargetOrder is a permutation of the item IDs.
func (p *Puzzle) validate() error {
	if p.Key == "" {
		return &MalformedPuzzleError{Key: p.Key, Reason: "empty key"}
	}
	if len(p.Items) < MinItems {
		return &MalformedPuzzleError{Key: p.Key, Reason: fmt.Sprintf("%d items, need at least %d", len(p.Items), MinItems)}
	}

	ids := mapset.New[ItemID]()
	for _, it := range p.Items {
		if ids.Has(it.ID) {
			return &MalformedPuzzleError{Key: p.Key, Reason: fmt.Sprintf("duplicate item id %d", it.ID)}
		}
		ids.Put(it.ID)
	}

	if len(p.TargetOrder) != len(p.Items) {
		return &MalformedPuzzleError{Key: p.Key, Reason: fmt.Sprintf("target order has %d entries for %d items", len(p.TargetOrder), len(p.Items))}
	}

	seen := mapset.New[ItemID]()
	for _, id := range p.TargetOrder {
		if !ids.Has(id) {
			return &MalformedPuzzleError{Key: p.Key, Reason: fmt.Sprintf("target order names unknown item %d", id)}
		}
		if seen.Has(id) {
			return &MalformedPuzzleError{Key: p.Key, Reason: fmt.Sprintf("target order repeats item %d", id)}
		}
		seen.Put(id)
	}
	return nil
}

// Catalog is an immutable, insertion-ordered registry of puzzles.
type Catalog struct {
	puzzles []*Puzzle
	byKey   map[string]*Puzzle
}

// New validates and registers the given puzzles. Any malformed puzzle fails
// the whole catalog; nothing is registered in that case.
func New(puzzles ...Puzzle) (*Catalog, error) {
	c := &Catalog{
		puzzles: make([]*Puzzle, 0, len(puzzles)),
		byKey:   make(map[string]*Puzzle, len(puzzles)),
	}
	for _, p := range puzzles {
		if err := p.validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byKey[p.Key]; dup {
			return nil, &MalformedPuzzleError{Key: p.Key, Reason: "duplicate key"}
		}
		stored := p.clone()
		c.puzzles = append(c.puzzles, stored)
		c.byKey[p.Key] = stored
	}
	return c, nil
}

// List returns every puzzle in the order it was registered.
func (c *Catalog) List() []*Puzzle {
	return append([]*Puzzle(nil), c.puzzles...)
}

// Get returns the puzzle registered under key.
func (c *Catalog) Get(key string) (*Puzzle, error) {
	p, ok := c.byKey[key]
	if !ok {
		return nil, &NotFoundError{Key: key}
	}
	return p, nil
}

// Len returns the number of registered puzzles.
func (c *Catalog) Len() int {
	return len(c.puzzles)
}
