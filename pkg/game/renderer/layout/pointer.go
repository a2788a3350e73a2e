package layout

import (
	"strconv"

	"solitaire/pkg/engine/input"
	"solitaire/pkg/game/catalog"
	"solitaire/pkg/game/state"
)

// Intent returns what pressing the button asks for.
func (b Button) Intent() input.Intent {
	switch b {
	case ButtonSubmit:
		return input.Intent{Action: input.ActionSubmit}
	case ButtonHint:
		return input.Intent{Action: input.ActionHint}
	case ButtonShare:
		return input.Intent{Action: input.ActionShare}
	case ButtonReset:
		return input.Intent{Action: input.ActionReset}
	default:
		return input.Intent{Action: input.ActionBack}
	}
}

// Press works out what a pointer press at x, y does on the game screen.
// Pressing an unplaced deck card picks it up and sets dragging;
// pressing a wrong card in a slot takes it back; pressing a button fires it.
func (b Board) Press(snap state.Snapshot, x, y float64) (drag catalog.ItemID, dragging bool, intent input.Intent) {
	none := input.Intent{Action: input.ActionNone}
	if btn, ok := b.ButtonAt(x, y); ok {
		return 0, false, btn.Intent()
	}
	if snap.Phase != state.Playing {
		return 0, false, none
	}
	if i, ok := b.DeckAt(x, y); ok && i < len(snap.Presentation) {
		it := snap.Presentation[i]
		if snap.Placed[it.ID] {
			return 0, false, none
		}
		return it.ID, true, none
	}
	if slot, ok := b.SlotAt(x, y); ok && snap.Evaluation != nil && snap.Evaluation.Removable(slot) {
		id, _ := snap.Board.At(slot)
		return 0, false, input.Intent{Action: input.ActionRemove, Item: int(id)}
	}
	return 0, false, none
}

// Release drops a dragged card at x, y. Dropping outside every slot puts
// the card back in the deck.
func (b Board) Release(item catalog.ItemID, x, y float64) input.Intent {
	slot, ok := b.SlotAt(x, y)
	if !ok {
		return input.Intent{Action: input.ActionNone}
	}
	return input.Intent{Action: input.ActionPlace, Item: int(item), Slot: slot}
}

// SelectAt returns the select intent for the journey card under the pointer.
// Journeys are picked by their 1-based position.
func SelectAt(rects []Rect, x, y float64) input.Intent {
	i, ok := JourneyAt(rects, x, y)
	if !ok {
		return input.Intent{Action: input.ActionNone}
	}
	return input.Intent{Action: input.ActionSelect, Key: strconv.Itoa(i + 1)}
}
