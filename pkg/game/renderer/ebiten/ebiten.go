// Package ebiten provides an Ebiten-based 2D graphical renderer for the journey puzzles.
// Ebiten is a 2D game library for Go: https://ebitengine.org/
//
// Ebiten owns the main goroutine: the game loop runs elsewhere and talks to
// the renderer through RenderFrame (state in) and GetInput (intents out).
package ebiten

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"

	engineinput "solitaire/pkg/engine/input"
	"solitaire/pkg/game/renderer"
	"solitaire/pkg/game/state"
)

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
		inputChan:    make(chan engineinput.Intent, 16),
	}
}

// Init sets up the window and loads fonts
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("SELECT_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := e.loadFonts(); err != nil {
		log.Fatalf("ebiten renderer: %v", err)
	}
}

// Clear is a no-op; Draw repaints the whole screen every frame
func (e *EbitenRenderer) Clear() {}

// GetInput waits briefly for the next intent from the window. It returns
// ActionNone when nothing happened so the game loop can run its timers.
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	timer := time.NewTimer(inputPollInterval)
	defer timer.Stop()

	select {
	case intent := <-e.inputChan:
		return intent
	case <-timer.C:
		return engineinput.Intent{Action: engineinput.ActionNone}
	}
}

// StyleText wraps text in markup that Draw knows how to color
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleItem:
		return renderer.MarkupItem + "{" + text + "}"
	case renderer.StyleAction, renderer.StyleActionShort:
		return renderer.MarkupAction + "{" + text + "}"
	case renderer.StyleCorrect, renderer.StyleSuccess:
		return renderer.MarkupOK + "{" + text + "}"
	case renderer.StyleDenied:
		return renderer.MarkupWrong + "{" + text + "}"
	default:
		return text
	}
}

// FormatText formats a message and keeps its markup for Draw to color
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	return fmt.Sprintf(msg, args...)
}

// ShowMessage queues a notice. Each line fades out on its own.
func (e *EbitenRenderer) ShowMessage(msg string) {
	now := time.Now().UnixMilli()

	e.messagesMutex.Lock()
	defer e.messagesMutex.Unlock()
	for _, line := range strings.Split(msg, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		e.trackedMessages = append(e.trackedMessages, messageEntry{Text: line, Timestamp: now})
	}
	if len(e.trackedMessages) > maxVisibleLines {
		e.trackedMessages = e.trackedMessages[len(e.trackedMessages)-maxVisibleLines:]
	}
}

// RenderFrame stores the snapshot for the next Draw
func (e *EbitenRenderer) RenderFrame(snap state.Snapshot) {
	e.snapshotMutex.Lock()
	e.snapshot = snap
	e.snapshotValid = true
	e.snapshotMutex.Unlock()
}

// currentSnapshot returns the latest snapshot handed over by the game loop
func (e *EbitenRenderer) currentSnapshot() (state.Snapshot, bool) {
	e.snapshotMutex.RLock()
	defer e.snapshotMutex.RUnlock()
	return e.snapshot, e.snapshotValid
}

// Quit closes the window on the next Update
func (e *EbitenRenderer) Quit() {
	e.quitting.Store(true)
}

// Run starts the Ebiten game loop. It must be called from the main goroutine
// and returns when the window closes.
func (e *EbitenRenderer) Run() error {
	return ebiten.RunGame(e)
}

// send pushes an intent to the game loop without blocking Update
func (e *EbitenRenderer) send(intent engineinput.Intent) {
	if intent.Action == engineinput.ActionNone {
		return
	}
	select {
	case e.inputChan <- intent:
	default:
		// Channel full, drop input
	}
}
