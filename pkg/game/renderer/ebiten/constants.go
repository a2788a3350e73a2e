// Package ebiten provides an Ebiten-based 2D graphical renderer for the journey puzzles.
package ebiten

import (
	"image/color"
	"time"
)

// Color palette
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorCard            = color.RGBA{44, 46, 78, 255}    // Deck card face
	colorCardPlaced      = color.RGBA{34, 34, 54, 255}    // Deck card already on the board
	colorCardBorder      = color.RGBA{80, 80, 100, 255}   // Card and panel border
	colorSlot            = color.RGBA{20, 20, 36, 255}    // Empty slot
	colorSlotCorrect     = color.RGBA{30, 70, 45, 255}    // Correct card in slot
	colorSlotWrong       = color.RGBA{80, 30, 30, 255}    // Wrong card in slot
	colorButton          = color.RGBA{60, 60, 100, 255}   // Button face
	colorButtonHover     = color.RGBA{90, 80, 150, 255}   // Button under the pointer
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorTitle           = color.RGBA{140, 220, 255, 255} // Cyan
	colorItem            = color.RGBA{220, 170, 255, 255} // Bright purple
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple (less pink, more blue)
	colorCorrect         = color.RGBA{100, 255, 150, 255} // Green for success
	colorDenied          = color.RGBA{255, 100, 100, 255} // Bright red
	colorHint            = color.RGBA{255, 220, 100, 255} // Yellow
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
)

// Confetti colors
var confettiColors = []color.Color{
	color.RGBA{255, 99, 132, 255},
	color.RGBA{54, 162, 235, 255},
	color.RGBA{255, 206, 86, 255},
	color.RGBA{75, 192, 192, 255},
	color.RGBA{153, 102, 255, 255},
	color.RGBA{255, 159, 64, 255},
}

// Font sizes
const (
	baseFontSize  = 16.0
	titleFontSize = 28.0
	smallFontSize = 13.0
)

const (
	defaultWindowWidth  = 1280
	defaultWindowHeight = 800

	// How long GetInput waits before letting the game loop run its timers
	inputPollInterval = 100 * time.Millisecond

	// Notices fade out over their last 30%
	messageLifetime = 10000 // milliseconds
	maxVisibleLines = 16
)
