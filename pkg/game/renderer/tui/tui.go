package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"solitaire/pkg/engine/input"
	"solitaire/pkg/engine/terminal"
	"solitaire/pkg/game/catalog"
	"solitaire/pkg/game/renderer"
	"solitaire/pkg/game/state"
)

// Icons
const (
	IconCorrect  = "✓"
	IconWrong    = "✗"
	IconEmpty    = "·"
	IconPlaced   = "▪"
	IconConfetti = "🎉 ✨ 🎊"
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out   io.Writer
	width func() int
	term  *terminal.Terminal // nil when not writing to a terminal

	colorTitle       color.Style
	colorItem        color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorCorrect     color.Style
	colorDenied      color.Style
	colorHint        color.Style
	colorSuccess     color.Style
	colorSubtle      color.Style
}

// New creates a new TUI renderer on stdout
func New() *TUIRenderer {
	term := terminal.Stdout()
	t := NewWithWriter(os.Stdout, term.Width)
	t.term = &term
	return t
}

// NewWithWriter creates a TUI renderer that writes to out, sized by width.
func NewWithWriter(out io.Writer, width func() int) *TUIRenderer {
	return &TUIRenderer{out: out, width: width}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorTitle = color.Style{color.FgCyan, color.OpBold}
	t.colorItem = color.Style{color.FgMagenta}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorCorrect = color.Style{color.FgGreen, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorHint = color.Style{color.FgYellow}
	t.colorSuccess = color.Style{color.FgGreen}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	if t.term != nil {
		t.term.Clear(t.out)
	}
}

// GetInput reads a command line from the terminal and returns a high-level Intent.
func (t *TUIRenderer) GetInput() input.Intent {
	return input.GetInput()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleCorrect:
		return t.colorCorrect.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleHint:
		return t.colorHint.Sprint(text)
	case renderer.StyleSuccess:
		return t.colorSuccess.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	var b strings.Builder
	for _, seg := range renderer.ParseMarkup(fmt.Sprintf(msg, args...)) {
		switch seg.Func {
		case renderer.MarkupItem:
			b.WriteString(t.colorItem.Sprint(seg.Text))
		case renderer.MarkupAction:
			b.WriteString(t.colorActionShort.Sprint(seg.Text[0:1]) + t.colorAction.Sprint(seg.Text[1:]))
		case renderer.MarkupOK:
			b.WriteString(t.colorCorrect.Sprint(seg.Text))
		case renderer.MarkupWrong:
			b.WriteString(t.colorDenied.Sprint(seg.Text))
		default:
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// Quit says goodbye
func (t *TUIRenderer) Quit() {
	fmt.Fprintln(t.out)
}

// RenderFrame renders a complete frame
func (t *TUIRenderer) RenderFrame(snap state.Snapshot) {
	if snap.Phase == state.Idle {
		t.printSelection(snap)
	} else {
		t.printBoard(snap)
	}
	t.printCommands(snap.Phase)

	// Input prompt
	fmt.Fprint(t.out, "\n> ")
}

// printString prints a formatted string
func (t *TUIRenderer) printString(msg string, a ...any) {
	fmt.Fprint(t.out, t.FormatText(msg, a...))
}

// printBullet prints a bulleted item
func (t *TUIRenderer) printBullet(txt string) {
	fmt.Fprint(t.out, "- "+t.FormatText("%s", txt)+"\n")
}

func (t *TUIRenderer) printSelection(snap state.Snapshot) {
	fmt.Fprintln(t.out, t.colorTitle.Sprint(gotext.Get("SELECT_TITLE")))
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(gotext.Get("SELECT_SUBTITLE")))
	fmt.Fprintln(t.out)
	for i, p := range snap.Puzzles {
		t.printString("%d. ITEM{%s} (%s)\n", i+1, p.Title, p.Key)
		if p.Description != "" {
			fmt.Fprintf(t.out, "   %s\n", p.Description)
		}
	}
}

func (t *TUIRenderer) printBoard(snap state.Snapshot) {
	p := snap.Puzzle

	if snap.Celebration.Active {
		banner := IconConfetti + "  " + gotext.Get("CELEBRATE")
		if snap.Celebration.Recycling {
			banner += "  " + IconConfetti
		}
		fmt.Fprintln(t.out, t.colorSuccess.Sprint(banner))
	}

	fmt.Fprintln(t.out, t.colorTitle.Sprint(p.Title))
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(gotext.Get("GAME_SUBTITLE")))
	fmt.Fprintln(t.out)

	// Deck
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(gotext.Get("DECK")))
	for _, it := range snap.Presentation {
		if snap.Placed[it.ID] {
			fmt.Fprintln(t.out, t.colorSubtle.Sprintf("  %s [%d] %s", IconPlaced, it.ID, it.Label))
			continue
		}
		fmt.Fprintf(t.out, "  %s [%d] %s\n", it.Icon, it.ID, t.colorItem.Sprint(it.Label))
		if it.Description != "" {
			fmt.Fprintf(t.out, "        %s\n", it.Description)
		}
	}
	fmt.Fprintln(t.out)

	// Journey path
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(gotext.Get("JOURNEY_PATH")))
	for slot := 0; slot < p.Size(); slot++ {
		fmt.Fprintln(t.out, t.slotLine(snap, slot))
	}

	t.printFeedback(snap)
	t.printActivityPane(snap.Log)
}

// slotLine renders one slot of the journey path
func (t *TUIRenderer) slotLine(snap state.Snapshot, slot int) string {
	id, filled := snap.Board.At(slot)
	if !filled {
		return fmt.Sprintf("  %d. %s %s", slot+1, IconEmpty, t.colorSubtle.Sprint(gotext.Get("DROP_HERE")))
	}
	it, _ := snap.Puzzle.Item(id)
	correct, _ := snap.Evaluation.Correct(slot)
	if correct {
		return fmt.Sprintf("  %d. %s %s %s", slot+1, t.colorCorrect.Sprint(IconCorrect), it.Icon, t.colorCorrect.Sprint(it.Label))
	}
	return fmt.Sprintf("  %d. %s %s %s  %s", slot+1, t.colorDenied.Sprint(IconWrong), it.Icon,
		t.colorDenied.Sprint(it.Label), t.FormatText("(ACTION{remove} %d)", it.ID))
}

// printFeedback shows the message box, or the hint box when no message is up
func (t *TUIRenderer) printFeedback(snap state.Snapshot) {
	if snap.Message != nil {
		fmt.Fprintln(t.out)
		style := t.colorDenied
		if snap.Message.Kind == state.Success {
			style = t.colorSuccess
		}
		fmt.Fprintln(t.out, style.Sprint(snap.Message.Text))
		return
	}
	if snap.ShowHint() {
		fmt.Fprintln(t.out)
		fmt.Fprintln(t.out, t.colorHint.Sprint("💡 "+hintText(snap.Hint.Item, snap.Hint.AllFilled)))
	}
}

func hintText(it catalog.Item, allFilled bool) string {
	if allFilled {
		return gotext.Get("HINT_ALL_PLACED")
	}
	return it.Hint
}

// printActivityPane renders the activity log pane
func (t *TUIRenderer) printActivityPane(entries []string) {
	width := t.width()

	label := " " + gotext.Get("ACTIVITY") + " "
	labelLen := len([]rune(label))
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen)))
	if len(entries) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  (none)"))
	} else {
		for _, e := range entries {
			fmt.Fprintf(t.out, "  %s\n", e)
		}
	}
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(strings.Repeat("─", max(width, 1))))
}

// printCommands lists what can be typed in this phase
func (t *TUIRenderer) printCommands(phase state.Phase) {
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(gotext.Get("COMMANDS")))
	switch phase {
	case state.Idle:
		t.printBullet(gotext.Get("HELP_SELECT"))
		t.printBullet("ACTION{help}, ACTION{quit}")
	case state.Playing:
		t.printBullet(gotext.Get("HELP_PLACE"))
		t.printBullet(gotext.Get("HELP_REMOVE"))
		t.printBullet("ACTION{hint}, ACTION{submit}, ACTION{reset}, ACTION{back}, ACTION{quit}")
	case state.Completed:
		t.printBullet("ACTION{share}, ACTION{reset}, ACTION{back}, ACTION{quit}")
	}
}
