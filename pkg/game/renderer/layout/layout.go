// Package layout computes where things go on a graphical screen and which
// thing sits under the pointer. It draws nothing, so it works without a
// display.
package layout

import "solitaire/pkg/game/state"

// Spacing, in logical pixels
const (
	Margin     = 24.0
	Gap        = 16.0
	HeaderH    = 96.0
	CardH      = 120.0
	SlotH      = 120.0
	ButtonH    = 40.0
	ButtonW    = 168.0
	MaxCardW   = 220.0
	JourneyH   = 150.0
	MinScreenW = 480.0
)

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the middle of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Offset moves r by dx, dy.
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Button names one of the action buttons under the board.
type Button int

const (
	ButtonSubmit Button = iota
	ButtonHint
	ButtonShare
	ButtonReset
	ButtonBack
)

// Label returns the translation key for a button.
func (b Button) Label() string {
	switch b {
	case ButtonSubmit:
		return "BUTTON_SUBMIT"
	case ButtonHint:
		return "BUTTON_HINT"
	case ButtonShare:
		return "BUTTON_SHARE"
	case ButtonReset:
		return "BUTTON_RESET"
	default:
		return "BUTTON_BACK"
	}
}

// VisibleButtons lists the buttons for a phase, left to right. The hint
// button goes away once the journey is completed and share takes its place.
func VisibleButtons(p state.Phase) []Button {
	switch p {
	case state.Playing:
		return []Button{ButtonSubmit, ButtonHint, ButtonReset, ButtonBack}
	case state.Completed:
		return []Button{ButtonSubmit, ButtonShare, ButtonReset, ButtonBack}
	default:
		return nil
	}
}

// Board is the placement of everything on the game screen.
type Board struct {
	Deck    []Rect
	Slots   []Rect
	Buttons []Rect
	Names   []Button
	Footer  Rect // hint and message box
}

// row lays out n equal boxes centred on one row.
func row(width, y, h float64, n int) []Rect {
	if n <= 0 {
		return nil
	}
	avail := width - 2*Margin - float64(n-1)*Gap
	w := avail / float64(n)
	if w > MaxCardW {
		w = MaxCardW
	}
	total := w*float64(n) + Gap*float64(n-1)
	x := (width - total) / 2
	out := make([]Rect, n)
	for i := range out {
		out[i] = Rect{X: x + float64(i)*(w+Gap), Y: y, W: w, H: h}
	}
	return out
}

// Game lays out the play screen for a deck of cards and the same number of
// slots, with the buttons for phase.
func Game(width, height float64, cards int, phase state.Phase) Board {
	if width < MinScreenW {
		width = MinScreenW
	}
	deckY := HeaderH
	slotsY := deckY + CardH + 2*Gap + Gap*2
	buttonsY := slotsY + SlotH + 2*Gap

	b := Board{
		Deck:  row(width, deckY, CardH, cards),
		Slots: row(width, slotsY, SlotH, cards),
		Names: VisibleButtons(phase),
	}

	n := len(b.Names)
	if n > 0 {
		total := ButtonW*float64(n) + Gap*float64(n-1)
		x := (width - total) / 2
		for i := 0; i < n; i++ {
			b.Buttons = append(b.Buttons, Rect{X: x + float64(i)*(ButtonW+Gap), Y: buttonsY, W: ButtonW, H: ButtonH})
		}
	}

	footerY := buttonsY + ButtonH + Gap
	footerH := height - footerY - Margin
	if footerH < ButtonH {
		footerH = ButtonH
	}
	b.Footer = Rect{X: Margin, Y: footerY, W: width - 2*Margin, H: footerH}
	return b
}

// DeckAt returns the index of the deck card under the point.
func (b Board) DeckAt(x, y float64) (int, bool) {
	return hit(b.Deck, x, y)
}

// SlotAt returns the slot under the point.
func (b Board) SlotAt(x, y float64) (int, bool) {
	return hit(b.Slots, x, y)
}

// ButtonAt returns the button under the point.
func (b Board) ButtonAt(x, y float64) (Button, bool) {
	i, ok := hit(b.Buttons, x, y)
	if !ok {
		return 0, false
	}
	return b.Names[i], true
}

// Journeys lays out the selection screen: one card per journey, up to three
// per row.
func Journeys(width float64, n int) []Rect {
	if width < MinScreenW {
		width = MinScreenW
	}
	const perRow = 3
	var out []Rect
	for start := 0; start < n; start += perRow {
		count := perRow
		if n-start < count {
			count = n - start
		}
		y := HeaderH + float64(start/perRow)*(JourneyH+Gap)
		out = append(out, row(width, y, JourneyH, count)...)
	}
	return out
}

// JourneyAt returns the journey card under the point.
func JourneyAt(rects []Rect, x, y float64) (int, bool) {
	return hit(rects, x, y)
}

func hit(rects []Rect, x, y float64) (int, bool) {
	for i, r := range rects {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return -1, false
}
