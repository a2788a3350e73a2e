// Package ebiten provides an Ebiten-based 2D graphical renderer for the journey puzzles.
package ebiten

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"solitaire/pkg/game/catalog"
	"solitaire/pkg/game/renderer"
	"solitaire/pkg/game/renderer/layout"
	"solitaire/pkg/game/state"
)

const cardPadding = 10.0

// dynamicGet is used for translation keys chosen at runtime, which go vet's
// printf check would otherwise reject.
var dynamicGet = gotext.Get

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	snap, ok := e.currentSnapshot()
	if !ok || e.sansFontSource == nil {
		return
	}

	w, h := float64(e.windowWidth), float64(e.windowHeight)
	if snap.Phase == state.Idle {
		e.drawSelection(screen, snap, w)
	} else {
		e.drawBoard(screen, snap, w, h)
	}

	e.drawMessages(screen, e.windowWidth, e.windowHeight)
	e.drawConfetti(screen)
}

// drawPanel draws a bordered rectangle
func drawPanel(screen *ebiten.Image, r layout.Rect, fill, border color.Color) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	vector.DrawFilledRect(screen, x-1, y-1, w+2, h+2, border, false)
	vector.DrawFilledRect(screen, x, y, w, h, fill, false)
}

// drawSelection draws one card per journey
func (e *EbitenRenderer) drawSelection(screen *ebiten.Image, snap state.Snapshot, width float64) {
	e.drawCenteredText(screen, gotext.Get("SELECT_TITLE"), width/2, layout.Margin, colorTitle, e.getTitleFontFace())
	e.drawCenteredText(screen, gotext.Get("SELECT_SUBTITLE"), width/2, layout.Margin+e.getTitleFontFace().Size+8, colorSubtle, e.getSansFontFace())

	cx, cy := ebiten.CursorPosition()
	for i, r := range layout.Journeys(width, len(snap.Puzzles)) {
		p := snap.Puzzles[i]
		fill := color.Color(colorCard)
		if r.Contains(float64(cx), float64(cy)) {
			fill = colorButtonHover
		}
		drawPanel(screen, r, fill, colorCardBorder)

		inner := r.W - 2*cardPadding
		y := r.Y + cardPadding
		e.drawColoredText(screen, fmt.Sprintf("%d", i+1), r.X+r.W-cardPadding-e.getTextWidth("9"), y, colorSubtle, e.getSansFontFace())
		y += e.drawWrappedText(screen, p.Title, r.X+cardPadding, y, inner-20, colorItem, e.getSansBoldFontFace())
		e.drawWrappedText(screen, p.Description, r.X+cardPadding, y+4, inner, colorText, e.getSmallFontFace())
	}
}

// drawBoard draws the deck, the journey path, the buttons and the footer
func (e *EbitenRenderer) drawBoard(screen *ebiten.Image, snap state.Snapshot, width, height float64) {
	board := layout.Game(width, height, len(snap.Presentation), snap.Phase)
	ui := e.getSansFontFace()

	e.drawColoredText(screen, snap.Puzzle.Title, layout.Margin, layout.Margin-8, colorTitle, e.getTitleFontFace())
	e.drawColoredText(screen, gotext.Get("GAME_SUBTITLE"), layout.Margin, layout.Margin+e.getTitleFontFace().Size, colorSubtle, ui)
	if snap.Celebration.Active {
		celebrate := gotext.Get("CELEBRATE")
		e.drawColoredText(screen, celebrate, width-layout.Margin-e.getTextWidthWithFace(celebrate, e.getTitleFontFace()), layout.Margin-8, colorCorrect, e.getTitleFontFace())
	}

	// Deck
	if len(board.Deck) > 0 {
		e.drawColoredText(screen, gotext.Get("DECK"), board.Deck[0].X, board.Deck[0].Y-ui.Size-6, colorSubtle, ui)
	}
	for i, r := range board.Deck {
		it := snap.Presentation[i]
		if snap.Placed[it.ID] || (e.drag.active && e.drag.item == it.ID) {
			drawPanel(screen, r, colorCardPlaced, colorCardBorder)
			continue
		}
		e.drawCard(screen, r, it.ID, it.Label, it.Description, colorCard, colorCardBorder)
	}

	// Journey path
	if len(board.Slots) > 0 {
		e.drawColoredText(screen, gotext.Get("JOURNEY_PATH"), board.Slots[0].X, board.Slots[0].Y-ui.Size-6, colorSubtle, ui)
	}
	for slot, r := range board.Slots {
		e.drawSlot(screen, snap, slot, r)
	}

	e.drawButtons(screen, board)
	e.drawFooter(screen, snap, board.Footer)

	if e.drag.active {
		cx, cy := ebiten.CursorPosition()
		r := layout.Rect{X: float64(cx) - e.drag.offsetX, Y: float64(cy) - e.drag.offsetY, W: e.drag.w, H: e.drag.h}
		e.drawCard(screen, r, e.drag.item, e.drag.label, "", colorButtonHover, colorAction)
	}
}

// drawCard draws a card face with its number, label and description
func (e *EbitenRenderer) drawCard(screen *ebiten.Image, r layout.Rect, id catalog.ItemID, label, description string, fill, border color.Color) {
	drawPanel(screen, r, fill, border)
	inner := r.W - 2*cardPadding
	y := r.Y + cardPadding
	e.drawColoredText(screen, fmt.Sprintf("#%d", id), r.X+cardPadding, y, colorSubtle, e.getSmallFontFace())
	y += e.getSmallFontFace().Size * 1.5
	y += e.drawWrappedText(screen, label, r.X+cardPadding, y, inner, colorItem, e.getSansBoldFontFace())
	if description != "" && y < r.Y+r.H-e.getSmallFontFace().Size {
		e.drawWrappedText(screen, description, r.X+cardPadding, y+2, inner, colorText, e.getSmallFontFace())
	}
}

// drawSlot draws one position on the journey path
func (e *EbitenRenderer) drawSlot(screen *ebiten.Image, snap state.Snapshot, slot int, r layout.Rect) {
	small := e.getSmallFontFace()
	number := fmt.Sprintf("%d", slot+1)

	id, filled := snap.Board.At(slot)
	if !filled {
		border := color.Color(colorCardBorder)
		if snap.ShowHint() && !snap.Hint.AllFilled && snap.Hint.Slot == slot {
			border = e.getPulsingHintColor()
		}
		drawPanel(screen, r, colorSlot, border)
		e.drawColoredText(screen, number, r.X+cardPadding, r.Y+cardPadding, colorSubtle, small)
		cx, cy := r.Center()
		e.drawCenteredText(screen, gotext.Get("DROP_HERE"), cx, cy-small.Size/2, colorSubtle, small)
		return
	}

	it, _ := snap.Puzzle.Item(id)
	correct, _ := snap.Evaluation.Correct(slot)
	if correct {
		e.drawCard(screen, r, it.ID, it.Label, "", colorSlotCorrect, colorCorrect)
		return
	}
	e.drawCard(screen, r, it.ID, it.Label, "", colorSlotWrong, e.getPulsingWrongColor())
	e.drawColoredText(screen, gotext.Get("WRONG_STEP"), r.X+cardPadding, r.Y+r.H-small.Size-cardPadding, colorDenied, small)
}

// drawButtons draws the action buttons, highlighting the one under the pointer
func (e *EbitenRenderer) drawButtons(screen *ebiten.Image, board layout.Board) {
	cx, cy := ebiten.CursorPosition()
	face := e.getSansBoldFontFace()
	for i, r := range board.Buttons {
		fill := color.Color(colorButton)
		if r.Contains(float64(cx), float64(cy)) {
			fill = colorButtonHover
		}
		drawPanel(screen, r, fill, colorCardBorder)
		x, y := r.Center()
		e.drawCenteredText(screen, dynamicGet(board.Names[i].Label()), x, y-face.Size/2-2, colorText, face)
	}
}

// drawFooter shows the message or hint on the left and the activity log on the right
func (e *EbitenRenderer) drawFooter(screen *ebiten.Image, snap state.Snapshot, r layout.Rect) {
	drawPanel(screen, r, colorPanelBackground, colorCardBorder)
	ui := e.getSansFontFace()
	half := r.W / 2

	x := r.X + cardPadding
	y := r.Y + cardPadding
	switch {
	case snap.Message != nil:
		col := colorDenied
		if snap.Message.Kind == state.Success {
			col = colorCorrect
		}
		e.drawWrappedText(screen, snap.Message.Text, x, y, half-2*cardPadding, col, ui)
	case snap.ShowHint():
		txt := snap.Hint.Item.Hint
		if snap.Hint.AllFilled {
			txt = gotext.Get("HINT_ALL_PLACED")
		}
		e.drawWrappedText(screen, txt, x, y, half-2*cardPadding, colorHint, ui)
	}

	// Activity log
	x = r.X + half + cardPadding
	e.drawColoredText(screen, gotext.Get("ACTIVITY"), x, y, colorSubtle, ui)
	lineH := ui.Size + 4
	for i, entry := range snap.Log {
		ly := y + float64(i+1)*lineH
		if ly+lineH > r.Y+r.H {
			break
		}
		e.drawColoredText(screen, entry, x, ly, colorText, ui)
	}
}

// drawMessages draws queued notices along the bottom edge, fading out with age
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, screenWidth, screenHeight int) {
	now := time.Now().UnixMilli()

	e.messagesMutex.Lock()
	kept := e.trackedMessages[:0]
	for _, m := range e.trackedMessages {
		if now-m.Timestamp < messageLifetime {
			kept = append(kept, m)
		}
	}
	e.trackedMessages = kept
	messages := make([]messageEntry, len(kept))
	copy(messages, kept)
	e.messagesMutex.Unlock()

	if len(messages) == 0 {
		return
	}

	type visibleMessage struct {
		segments []textSegment
		width    float64
	}
	visible := make([]visibleMessage, 0, len(messages))
	maxTextWidth := 0.0
	for _, m := range messages {
		age := now - m.Timestamp
		// Fade starts at 70% of the lifetime
		fadeStart := int64(messageLifetime * 7 / 10)
		alpha := 1.0
		if age > fadeStart {
			alpha = 1.0 - float64(age-fadeStart)/float64(messageLifetime-fadeStart)
		}

		// Long plain lines (a share post) are wrapped; marked-up lines are short
		lines := []string{m.Text}
		if renderer.PlainText(m.Text) == m.Text {
			lines = e.wrapText(m.Text, float64(screenWidth)-60, e.getSansFontFace())
		}
		for _, line := range lines {
			vm := visibleMessage{}
			for _, seg := range e.parseMarkup(line) {
				vm.segments = append(vm.segments, textSegment{text: seg.text, color: e.applyAlpha(seg.color, alpha)})
				vm.width += e.getTextWidth(seg.text)
			}
			if vm.width > maxTextWidth {
				maxTextWidth = vm.width
			}
			visible = append(visible, vm)
		}
	}

	lineHeight := e.getUIFontSize() + 6
	panelWidth := maxTextWidth + 20
	if panelWidth > float64(screenWidth)-40 {
		panelWidth = float64(screenWidth) - 40
	}
	panelHeight := float64(len(visible))*lineHeight + 12

	// Centered horizontally, aligned to the bottom of the window
	r := layout.Rect{
		X: (float64(screenWidth) - panelWidth) / 2,
		Y: float64(screenHeight) - 20 - panelHeight,
		W: panelWidth,
		H: panelHeight,
	}
	if r.Y < 0 {
		r.Y = 0
	}
	drawPanel(screen, r, colorPanelBackground, colorCardBorder)
	for i, vm := range visible {
		e.drawColoredTextSegments(screen, vm.segments, r.X+10, r.Y+6+float64(i)*lineHeight)
	}
}
