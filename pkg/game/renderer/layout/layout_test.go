package layout

import (
	"testing"

	"solitaire/pkg/game/state"
)

func overlaps(a, b Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 20, true},
		{109.9, 69.9, true},
		{110, 30, false},
		{50, 70, false},
		{9.9, 30, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if cx, cy := r.Center(); cx != 60 || cy != 45 {
		t.Errorf("Center() = %v, %v, want 60, 45", cx, cy)
	}
}

func TestGame_Geometry(t *testing.T) {
	b := Game(1280, 800, 4, state.Playing)
	if len(b.Deck) != 4 || len(b.Slots) != 4 {
		t.Fatalf("len(Deck), len(Slots) = %d, %d, want 4, 4", len(b.Deck), len(b.Slots))
	}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if overlaps(b.Deck[i], b.Deck[j]) || overlaps(b.Slots[i], b.Slots[j]) {
				t.Errorf("cards %d and %d overlap", i, j)
			}
		}
		if overlaps(b.Deck[i], b.Slots[i]) {
			t.Errorf("deck card %d overlaps slot %d", i, i)
		}
		if b.Deck[i].X < 0 || b.Deck[i].X+b.Deck[i].W > 1280 {
			t.Errorf("deck card %d is off screen: %+v", i, b.Deck[i])
		}
	}
	for i := 1; i < 4; i++ {
		if b.Slots[i].X <= b.Slots[i-1].X {
			t.Errorf("slots not left to right at %d", i)
		}
	}
	if b.Footer.Y < b.Buttons[0].Y+b.Buttons[0].H {
		t.Errorf("footer %+v overlaps buttons", b.Footer)
	}
}

func TestGame_NarrowScreenShrinksCards(t *testing.T) {
	b := Game(600, 800, 4, state.Playing)
	last := b.Deck[3]
	if last.X+last.W > 600-Margin+0.001 {
		t.Errorf("last card ends at %v, past the margin", last.X+last.W)
	}
}

func TestHitTesting(t *testing.T) {
	b := Game(1280, 800, 4, state.Playing)

	x, y := b.Deck[2].Center()
	if i, ok := b.DeckAt(x, y); !ok || i != 2 {
		t.Errorf("DeckAt(center of 2) = %d, %v", i, ok)
	}
	x, y = b.Slots[1].Center()
	if i, ok := b.SlotAt(x, y); !ok || i != 1 {
		t.Errorf("SlotAt(center of 1) = %d, %v", i, ok)
	}
	if _, ok := b.DeckAt(x, y); ok {
		t.Error("DeckAt hit a card at a slot position")
	}
	x, y = b.Buttons[1].Center()
	if btn, ok := b.ButtonAt(x, y); !ok || btn != ButtonHint {
		t.Errorf("ButtonAt(second button) = %v, %v, want hint", btn, ok)
	}
	if _, ok := b.ButtonAt(1, 1); ok {
		t.Error("ButtonAt(1, 1) hit something")
	}
}

func TestVisibleButtons(t *testing.T) {
	has := func(bs []Button, want Button) bool {
		for _, b := range bs {
			if b == want {
				return true
			}
		}
		return false
	}
	playing := VisibleButtons(state.Playing)
	if !has(playing, ButtonHint) || has(playing, ButtonShare) {
		t.Errorf("Playing buttons = %v, want hint and no share", playing)
	}
	done := VisibleButtons(state.Completed)
	if has(done, ButtonHint) || !has(done, ButtonShare) {
		t.Errorf("Completed buttons = %v, want share and no hint", done)
	}
	if got := VisibleButtons(state.Idle); len(got) != 0 {
		t.Errorf("Idle buttons = %v, want none", got)
	}
}

func TestJourneys(t *testing.T) {
	rects := Journeys(1280, 4)
	if len(rects) != 4 {
		t.Fatalf("len(Journeys()) = %d, want 4", len(rects))
	}
	if rects[3].Y <= rects[0].Y {
		t.Errorf("fourth journey not on a second row: %+v", rects[3])
	}
	x, y := rects[1].Center()
	if i, ok := JourneyAt(rects, x, y); !ok || i != 1 {
		t.Errorf("JourneyAt(center of 1) = %d, %v", i, ok)
	}
	if got := Journeys(1280, 0); len(got) != 0 {
		t.Errorf("Journeys(0) = %v, want none", got)
	}
}

func TestButtonLabels(t *testing.T) {
	for _, b := range []Button{ButtonSubmit, ButtonHint, ButtonShare, ButtonReset, ButtonBack} {
		if b.Label() == "" {
			t.Errorf("button %d has no label", b)
		}
	}
}
