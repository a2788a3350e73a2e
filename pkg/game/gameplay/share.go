package gameplay

import (
	"solitaire/pkg/game/catalog"
	"solitaire/pkg/game/state"
)

// ShareText builds the post announcing a finished journey, followed by
// siteURL when one is set.
func ShareText(p *catalog.Puzzle, siteURL string) string {
	text := dynamicGet("SHARE_POST", p.Title, p.Key)
	if siteURL != "" {
		text += " " + siteURL
	}
	return text
}

// ShareText returns the post for the active journey. It is only available
// once the journey is completed.
func (c *Controller) ShareText() (string, bool) {
	if c.Phase() != state.Completed {
		return "", false
	}
	return ShareText(c.session.Puzzle, c.opts.ShareURL), true
}
