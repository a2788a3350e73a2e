package gameplay

import (
	"solitaire/pkg/game/catalog"
	"solitaire/pkg/game/state"
)

// SelectPuzzle starts a fresh play-through of the journey registered under
// key. An unknown key returns catalog.ErrNotFound and changes nothing.
func (c *Controller) SelectPuzzle(key string) error {
	p, err := c.catalog.Get(key)
	if err != nil {
		return err
	}

	c.epoch++
	c.session = state.NewSession(p, c.shuffler.Shuffle(p.Items))
	c.logMessage("LOG_SELECTED", p.Title)
	return nil
}

// Reset starts the current journey over: new deck order, empty board, no
// feedback. Does nothing while Idle.
func (c *Controller) Reset() {
	s := c.session
	if s == nil {
		return
	}

	c.epoch++
	s.Placements.Clear()
	s.SetPresentation(c.shuffler.Shuffle(s.Puzzle.Items))
	s.ClearFeedback()
	s.Celebration = state.Celebration{}
	s.Phase = state.Playing
	c.logMessage("LOG_RESET")
}

// Back discards the session and returns to journey selection.
func (c *Controller) Back() {
	c.epoch++
	c.session = nil
}

// Puzzle returns the active journey, or nil while Idle.
func (c *Controller) Puzzle() *catalog.Puzzle {
	if c.session == nil {
		return nil
	}
	return c.session.Puzzle
}
