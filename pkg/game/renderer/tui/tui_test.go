package tui

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"

	"solitaire/pkg/game/content"
	"solitaire/pkg/game/gameplay"
	"solitaire/pkg/game/i18n"
	"solitaire/pkg/game/shuffle"
)

func TestMain(m *testing.M) {
	if err := i18n.Load("en"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// newTestRenderer returns a renderer writing into a buffer, and a controller
// over the bundled journeys.
func newTestRenderer(t *testing.T) (*TUIRenderer, *bytes.Buffer, *gameplay.Controller) {
	t.Helper()
	cat, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default() error = %v", err)
	}
	var buf bytes.Buffer
	r := NewWithWriter(&buf, func() int { return 60 })
	r.Init()
	c := gameplay.New(cat, shuffle.NewSeeded(3, 4), gameplay.Options{Clock: func() time.Time { return time.Unix(0, 0) }})
	return r, &buf, c
}

func render(r *TUIRenderer, buf *bytes.Buffer, c *gameplay.Controller) string {
	buf.Reset()
	r.RenderFrame(c.Snapshot())
	return color.ClearCode(buf.String())
}

func TestRenderFrame_Selection(t *testing.T) {
	r, buf, c := newTestRenderer(t)
	out := render(r, buf, c)

	for _, want := range []string{
		"Build Your Ideal Commerce Experience",
		"1. Direct-to-Consumer Acceleration (dtc)",
		"2. Seamless Omnichannel Integration (omnichannel)",
		"3. Retail Media & Monetization (retailMedia)",
		"select <n|key>",
		"> ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("selection screen missing %q:\n%s", want, out)
		}
	}
}

func TestRenderFrame_Board(t *testing.T) {
	r, buf, c := newTestRenderer(t)
	if err := c.SelectPuzzle("dtc"); err != nil {
		t.Fatalf("SelectPuzzle() error = %v", err)
	}
	c.PlaceItem(1, 0)
	c.PlaceItem(3, 1)
	out := render(r, buf, c)

	for _, want := range []string{
		"Direct-to-Consumer Acceleration",
		"Your deck",
		"[2] Dynamic Pricing & Checkout",
		"1. " + IconCorrect + " 🔍 Smart Search & Personalization",
		"2. " + IconWrong + " 🚚 Order Fulfillment & Logistics",
		"remove 3",
		"3. " + IconEmpty + " Drop card here",
		"Activity",
		"Placed Smart Search & Personalization in slot 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("board missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "[1] Smart Search") && !strings.Contains(out, IconPlaced+" [1]") {
		t.Errorf("placed card 1 not marked as placed in the deck:\n%s", out)
	}
}

func TestRenderFrame_HintHiddenByMessage(t *testing.T) {
	r, buf, c := newTestRenderer(t)
	if err := c.SelectPuzzle("dtc"); err != nil {
		t.Fatalf("SelectPuzzle() error = %v", err)
	}
	c.RequestHint()
	out := render(r, buf, c)
	if !strings.Contains(out, "A great D2C journey starts with discovery") {
		t.Errorf("hint not shown:\n%s", out)
	}

	c.Submit()
	out = render(r, buf, c)
	if strings.Contains(out, "A great D2C journey") {
		t.Errorf("hint shown after submit:\n%s", out)
	}
	if !strings.Contains(out, "Incorrect sequence") {
		t.Errorf("failure message missing:\n%s", out)
	}
}

func TestRenderFrame_Completed(t *testing.T) {
	r, buf, c := newTestRenderer(t)
	if err := c.SelectPuzzle("dtc"); err != nil {
		t.Fatalf("SelectPuzzle() error = %v", err)
	}
	for slot, id := range c.Puzzle().TargetOrder {
		c.PlaceItem(id, slot)
	}
	c.Submit()
	out := render(r, buf, c)
	for _, want := range []string{"Journey complete!", "Correct sequence!", "share"} {
		if !strings.Contains(out, want) {
			t.Errorf("completed screen missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "hint,") {
		t.Errorf("hint command offered after completion:\n%s", out)
	}
}

func TestFormatText(t *testing.T) {
	r, _, _ := newTestRenderer(t)
	got := color.ClearCode(r.FormatText("ACTION{place} ITEM{%s} OK{yes} WRONG{no} GT{BUTTON_RESET}", "Card"))
	if got != "place Card yes no Reset" {
		t.Errorf("FormatText() = %q", got)
	}
}

func TestShowMessage(t *testing.T) {
	r, buf, _ := newTestRenderer(t)
	r.ShowMessage("hello")
	if buf.String() != "hello\n" {
		t.Errorf("ShowMessage wrote %q", buf.String())
	}
}
