package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"solitaire/pkg/game/catalog"
	"solitaire/pkg/game/evaluate"
	"solitaire/pkg/game/state"
)

// PlaceItem drops a card into a slot. Cards from another journey, slots out
// of range, occupied slots and cards already on the board are ignored.
func (c *Controller) PlaceItem(item catalog.ItemID, slot int) bool {
	s, ok := c.playing()
	if !ok {
		return false
	}
	it, ok := s.Puzzle.Item(item)
	if !ok {
		return false
	}
	if !s.Placements.Place(item, slot) {
		return false
	}
	c.logMessage("LOG_PLACED", it.Label, slot+1)
	return true
}

// RemoveItem takes a wrongly placed card back to the deck. A card sitting in
// its correct slot stays where it is; a card not on the board is a no-op.
func (c *Controller) RemoveItem(item catalog.ItemID) bool {
	s, ok := c.playing()
	if !ok {
		return false
	}
	board := s.Board()
	slot, placed := board.SlotOf(item)
	if !placed {
		return false
	}
	if !evaluate.Evaluate(s.Puzzle, board).Removable(slot) {
		return false
	}
	s.Placements.Remove(item)
	if it, ok := s.Puzzle.Item(item); ok {
		c.logMessage("LOG_REMOVED", it.Label)
	}
	return true
}

// Submit checks the board. A complete board moves the session to Completed
// and starts the celebration; anything else leaves it Playing with a failure
// message. The current hint is cleared either way.
func (c *Controller) Submit() {
	s, ok := c.playing()
	if !ok {
		return
	}
	s.LastHint = nil

	result := evaluate.Evaluate(s.Puzzle, s.Board())
	c.logMessage("LOG_SUBMITTED", result.CorrectCount(), s.Puzzle.Size())
	if !result.Complete {
		s.Message = &state.Message{Kind: state.Error, Key: "SUBMIT_FAILURE", Text: gotext.Get("SUBMIT_FAILURE")}
		return
	}

	s.Message = &state.Message{Kind: state.Success, Key: "SUBMIT_SUCCESS", Text: gotext.Get("SUBMIT_SUCCESS")}
	s.Phase = state.Completed
	c.celebrate(s)
}

// celebrate turns the confetti on and schedules it to wind down. Both steps
// are tied to the current epoch and session; once either changes they do
// nothing.
func (c *Controller) celebrate(s *state.Session) {
	s.Celebration = state.Celebration{Active: true, Recycling: true}

	epoch := c.epoch
	now := c.opts.Clock()
	c.timers.At(now.Add(c.opts.RecycleFor), func() {
		if c.epoch != epoch || c.session != s {
			return
		}
		s.Celebration.Recycling = false
	})
	c.timers.At(now.Add(c.opts.CelebrateFor), func() {
		if c.epoch != epoch || c.session != s {
			return
		}
		s.Celebration.Active = false
	})
}
