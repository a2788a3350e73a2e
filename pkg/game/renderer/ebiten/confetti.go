// Package ebiten provides the confetti animation shown after a journey is completed.
package ebiten

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"

	"solitaire/pkg/game/state"
)

const (
	confettiPerFrame = 4
	confettiGravity  = 0.06
	maxConfetti      = 400
)

// confettiPixel is a 1x1 white image scaled and tinted into each piece
var confettiPixel *ebiten.Image

// updateConfetti spawns pieces while the celebration is recycling and moves
// the ones already falling. Pieces that leave the screen are dropped; once
// the celebration ends everything is cleared.
func (e *EbitenRenderer) updateConfetti(c state.Celebration, screenWidth, screenHeight int) {
	e.confettiMutex.Lock()
	defer e.confettiMutex.Unlock()

	if !c.Active {
		e.confetti = e.confetti[:0]
		return
	}
	if screenWidth <= 0 || screenHeight <= 0 {
		return
	}

	if c.Recycling && len(e.confetti) < maxConfetti {
		for i := 0; i < confettiPerFrame; i++ {
			e.confetti = append(e.confetti, newConfettiPiece(screenWidth))
		}
	}

	kept := e.confetti[:0]
	for _, p := range e.confetti {
		p.x += p.vx
		p.y += p.vy
		p.vy += confettiGravity

		// Sideways flutter
		if rand.Float64() < 0.05 {
			p.vx += (rand.Float64() - 0.5) * 0.4
		}

		p.rotation += p.rotationSpeed
		if p.rotation > 2*math.Pi {
			p.rotation -= 2 * math.Pi
		} else if p.rotation < 0 {
			p.rotation += 2 * math.Pi
		}

		if p.y < float64(screenHeight)+p.h {
			kept = append(kept, p)
		}
	}
	e.confetti = kept
}

// newConfettiPiece starts a piece just above the top edge
func newConfettiPiece(screenWidth int) confettiPiece {
	return confettiPiece{
		x:             rand.Float64() * float64(screenWidth),
		y:             -10 - rand.Float64()*40,
		vx:            (rand.Float64() - 0.5) * 2,
		vy:            1 + rand.Float64()*2,
		w:             6 + rand.Float64()*6,
		h:             3 + rand.Float64()*4,
		color:         confettiColors[rand.IntN(len(confettiColors))],
		rotation:      rand.Float64() * 2 * math.Pi,
		rotationSpeed: (rand.Float64() - 0.5) * 0.3,
	}
}

// drawConfetti draws the falling pieces over everything else
func (e *EbitenRenderer) drawConfetti(screen *ebiten.Image) {
	e.confettiMutex.RLock()
	pieces := make([]confettiPiece, len(e.confetti))
	copy(pieces, e.confetti)
	e.confettiMutex.RUnlock()

	if len(pieces) == 0 {
		return
	}
	if confettiPixel == nil {
		confettiPixel = ebiten.NewImage(1, 1)
		confettiPixel.Fill(color.White)
	}

	for _, p := range pieces {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(p.w, p.h)
		op.GeoM.Translate(-p.w/2, -p.h/2)
		op.GeoM.Rotate(p.rotation)
		op.GeoM.Translate(p.x, p.y)
		op.ColorScale.ScaleWithColor(p.color)
		screen.DrawImage(confettiPixel, op)
	}
}
