package gameplay

import (
	"errors"
	"strconv"
	"strings"

	"github.com/leonelquinteros/gotext"

	engineinput "solitaire/pkg/engine/input"
	"solitaire/pkg/game/catalog"
	"solitaire/pkg/game/menu"
	"solitaire/pkg/game/state"
)

// Outcome is what a renderer should do after an intent was handled.
type Outcome struct {
	Quit   bool
	Notice string // text to show the player outside the board, may hold markup
}

// ProcessIntent handles a high-level input intent from any renderer.
func ProcessIntent(c *Controller, intent engineinput.Intent) Outcome {
	switch intent.Action {
	case engineinput.ActionNone:
		return Outcome{}

	case engineinput.ActionQuit:
		return Outcome{Quit: true}

	case engineinput.ActionHelp:
		return Outcome{Notice: HelpText()}

	case engineinput.ActionSelect:
		key := c.ResolveKey(intent.Key)
		if err := c.SelectPuzzle(key); err != nil {
			var nf *catalog.NotFoundError
			if errors.As(err, &nf) {
				return Outcome{Notice: err.Error()}
			}
			return Outcome{Notice: gotext.Get("UNKNOWN_COMMAND")}
		}
		return Outcome{}

	case engineinput.ActionShare:
		text, ok := c.ShareText()
		if !ok {
			return Outcome{Notice: gotext.Get("SHARE_UNAVAILABLE")}
		}
		return Outcome{Notice: text}
	}

	if c.Phase() == state.Idle {
		if intent.Action == engineinput.ActionInvalid {
			return Outcome{Notice: gotext.Get("UNKNOWN_COMMAND")}
		}
		return Outcome{Notice: gotext.Get("NO_JOURNEY")}
	}

	switch intent.Action {
	case engineinput.ActionPlace:
		c.PlaceItem(catalog.ItemID(intent.Item), intent.Slot)
	case engineinput.ActionRemove:
		c.RemoveItem(catalog.ItemID(intent.Item))
	case engineinput.ActionHint:
		c.RequestHint()
	case engineinput.ActionSubmit:
		c.Submit()
	case engineinput.ActionReset:
		c.Reset()
	case engineinput.ActionBack:
		c.Back()
	default:
		return Outcome{Notice: gotext.Get("UNKNOWN_COMMAND")}
	}
	return Outcome{}
}

// ResolveKey maps what the player typed to a journey key: an exact key, a
// key in any letter case, or a 1-based position in the journey list.
// Anything else is returned unchanged.
func (c *Controller) ResolveKey(typed string) string {
	puzzles := c.catalog.List()
	for _, p := range puzzles {
		if p.Key == typed {
			return typed
		}
	}
	for _, p := range puzzles {
		if strings.EqualFold(p.Key, typed) {
			return p.Key
		}
	}
	if n, err := strconv.Atoi(typed); err == nil && n >= 1 && n <= len(puzzles) {
		return puzzles[n-1].Key
	}
	return typed
}

// HelpText lists the commands and then every alias, one per line, with
// ACTION{} markup.
func HelpText() string {
	lines := []string{
		gotext.Get("HELP_SELECT"),
		gotext.Get("HELP_PLACE"),
		gotext.Get("HELP_REMOVE"),
		gotext.Get("HELP_OTHER"),
	}
	lines = append(lines, menu.NewBindingsMenu().Lines()...)
	return strings.Join(lines, "\n")
}
