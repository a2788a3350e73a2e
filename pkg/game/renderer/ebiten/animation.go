// Package ebiten provides an Ebiten-based 2D graphical renderer for the journey puzzles.
package ebiten

import (
	"image/color"
	"math"
	"time"
)

// getPulsingHintColor returns a pulsing border color for the slot a hint points at
func (e *EbitenRenderer) getPulsingHintColor() color.Color {
	return pulse(colorHint, 0.4, 1.0)
}

// getPulsingWrongColor returns a pulsing border color for a wrong card, which can be taken back
func (e *EbitenRenderer) getPulsingWrongColor() color.Color {
	return pulse(colorDenied, 0.5, 1.0)
}

// pulse scales base between minBrightness and maxBrightness on a 2 second sine wave
func pulse(base color.RGBA, minBrightness, maxBrightness float64) color.Color {
	const pulsePeriod = 2000.0
	now := time.Now().UnixMilli()

	pulsePhase := float64(now%int64(pulsePeriod)) / pulsePeriod
	pulseValue := (math.Sin(pulsePhase*2*math.Pi) + 1.0) / 2.0 // 0.0 to 1.0
	brightness := minBrightness + (maxBrightness-minBrightness)*pulseValue

	return color.RGBA{
		uint8(float64(base.R) * brightness),
		uint8(float64(base.G) * brightness),
		uint8(float64(base.B) * brightness),
		base.A,
	}
}
