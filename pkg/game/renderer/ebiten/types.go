// Package ebiten provides an Ebiten-based 2D graphical renderer for the journey puzzles.
package ebiten

import (
	"image/color"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "solitaire/pkg/engine/input"
	"solitaire/pkg/game/catalog"
	"solitaire/pkg/game/state"
)

// messageEntry represents a notice with timestamp for fade-out
type messageEntry struct {
	Text      string
	Timestamp int64 // Unix timestamp in milliseconds when message was added
}

// dragState tracks a card being carried from the deck to a slot
type dragState struct {
	active bool
	item   catalog.ItemID
	label  string
	// Pointer offset from the card's top-left corner when it was picked up
	offsetX, offsetY float64
	// Size of the card being dragged
	w, h float64
}

// confettiPiece represents a single particle in the celebration animation
type confettiPiece struct {
	x, y          float64 // Position
	vx, vy        float64 // Velocity
	w, h          float64 // Size
	color         color.Color
	rotation      float64 // Rotation angle in radians
	rotationSpeed float64 // Rotation speed
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Window dimensions
	windowWidth  int
	windowHeight int

	// Font sources for text rendering
	sansFontSource     *text.GoTextFaceSource // Sans-serif font for UI text
	sansBoldFontSource *text.GoTextFaceSource // Sans-serif bold for titles

	// Cached font faces
	cachedSansFace      *text.GoTextFace
	cachedSansBoldFace  *text.GoTextFace
	cachedTitleFace     *text.GoTextFace
	cachedSmallFace     *text.GoTextFace
	cachedUIFontSize    float64
	cachedTitleFontSize float64

	// Latest frame handed over by the game loop (set by RenderFrame)
	snapshot      state.Snapshot
	snapshotValid bool
	snapshotMutex sync.RWMutex

	// Input channel for communication between Ebiten and game loop
	inputChan chan engineinput.Intent

	// Set by Quit; Update then ends the Ebiten loop
	quitting atomic.Bool

	// Flag to track if we've logged window opening
	windowOpenedLogged bool

	// Notices to display with timestamps for fade-out
	trackedMessages []messageEntry
	messagesMutex   sync.RWMutex

	// Card being dragged; only touched from Update and Draw
	drag dragState

	// Celebration confetti
	confetti      []confettiPiece
	confettiMutex sync.RWMutex
}
