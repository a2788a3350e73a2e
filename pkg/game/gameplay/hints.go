package gameplay

import (
	"solitaire/pkg/game/hint"
	"solitaire/pkg/game/state"
)

// RequestHint records the next card to place, or that every slot is filled.
// A failure message is dropped so the hint can be seen. Ignored unless
// Playing.
func (c *Controller) RequestHint() *hint.Suggestion {
	s, ok := c.playing()
	if !ok {
		return nil
	}

	sug := hint.Next(s.Puzzle, s.Board())
	s.LastHint = &sug
	if s.Message != nil && s.Message.Kind == state.Error {
		s.Message = nil
	}
	if !sug.AllFilled {
		c.logMessage("LOG_HINT", sug.Slot+1)
	}
	out := sug
	return &out
}
