// Package ebiten provides an Ebiten-based 2D graphical renderer for the journey puzzles.
package ebiten

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "solitaire/pkg/engine/input"
	"solitaire/pkg/game/renderer/layout"
	"solitaire/pkg/game/state"
)

// keyCodes maps keys to the command words they stand for; the input bindings
// turn those into intents.
var keyCodes = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyNumpadEnter, "enter"},
	{ebiten.KeyH, "hint"},
	{ebiten.KeyR, "reset"},
	{ebiten.KeyF5, "f5"},
	{ebiten.KeyEscape, "escape"},
	{ebiten.KeyBackspace, "back"},
	{ebiten.KeyF1, "help"},
	{ebiten.KeyQ, "quit"},
	{ebiten.KeyDigit1, "1"},
	{ebiten.KeyDigit2, "2"},
	{ebiten.KeyDigit3, "3"},
	{ebiten.KeyDigit4, "4"},
	{ebiten.KeyDigit5, "5"},
	{ebiten.KeyDigit6, "6"},
	{ebiten.KeyDigit7, "7"},
	{ebiten.KeyDigit8, "8"},
	{ebiten.KeyDigit9, "9"},
}

// Update handles input and animation (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if e.quitting.Load() {
		return ebiten.Termination
	}

	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	snap, ok := e.currentSnapshot()
	if !ok {
		return nil
	}

	e.updateConfetti(snap.Celebration, e.windowWidth, e.windowHeight)

	if intent := e.checkPointer(snap); intent.Action != engineinput.ActionNone {
		e.send(intent)
	} else if intent := e.checkKeys(snap.Phase); intent.Action != engineinput.ActionNone {
		e.send(intent)
	}
	return nil
}

// checkPointer turns mouse presses, drags and drops into intents
func (e *EbitenRenderer) checkPointer(snap state.Snapshot) engineinput.Intent {
	none := engineinput.Intent{Action: engineinput.ActionNone}
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	w, h := float64(e.windowWidth), float64(e.windowHeight)

	if snap.Phase == state.Idle {
		e.drag = dragState{}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			return layout.SelectAt(layout.Journeys(w, len(snap.Puzzles)), x, y)
		}
		return none
	}

	board := layout.Game(w, h, len(snap.Presentation), snap.Phase)

	if e.drag.active && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		item := e.drag.item
		e.drag = dragState{}
		return board.Release(item, x, y)
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return none
	}
	item, dragging, intent := board.Press(snap, x, y)
	if dragging {
		i, _ := board.DeckAt(x, y)
		card := board.Deck[i]
		e.drag = dragState{
			active:  true,
			item:    item,
			label:   snap.Presentation[i].Label,
			offsetX: x - card.X,
			offsetY: y - card.Y,
			w:       card.W,
			h:       card.H,
		}
	}
	return intent
}

// checkKeys maps keyboard shortcuts to intents. Number keys only pick a
// journey on the selection screen.
func (e *EbitenRenderer) checkKeys(phase state.Phase) engineinput.Intent {
	for _, k := range keyCodes {
		if !inpututil.IsKeyJustPressed(k.key) {
			continue
		}
		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
			Device: engineinput.DeviceKeyboard,
			Code:   k.code,
		}))
		if intent.Action == engineinput.ActionSelect && phase != state.Idle {
			continue
		}
		return intent
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.windowWidth || outsideHeight != e.windowHeight {
		e.windowWidth = outsideWidth
		e.windowHeight = outsideHeight
		e.invalidateFontCache()
	}
	return outsideWidth, outsideHeight
}
