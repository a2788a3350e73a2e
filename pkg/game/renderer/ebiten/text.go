// Package ebiten provides an Ebiten-based 2D graphical renderer for the journey puzzles.
package ebiten

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"solitaire/pkg/game/renderer"
)

// textSegment represents a segment of text with a specific color
type textSegment struct {
	text  string
	color color.Color
}

// parseMarkup parses a message string with markup (ITEM{}, ACTION{}, OK{}, WRONG{}, GT{}) and returns colored segments
func (e *EbitenRenderer) parseMarkup(msg string) []textSegment {
	var segments []textSegment
	for _, seg := range renderer.ParseMarkup(msg) {
		var segColor color.Color
		switch seg.Func {
		case renderer.MarkupItem:
			segColor = colorItem
		case renderer.MarkupAction:
			segColor = colorAction
		case renderer.MarkupOK:
			segColor = colorCorrect
		case renderer.MarkupWrong:
			segColor = colorDenied
		default:
			segColor = colorText
		}
		segments = append(segments, textSegment{text: seg.Text, color: segColor})
	}
	return segments
}

// applyAlpha applies an alpha value to a color
func (e *EbitenRenderer) applyAlpha(c color.Color, alpha float64) color.Color {
	if alpha <= 0 {
		alpha = 0
	}
	if alpha > 1.0 {
		alpha = 1.0
	}

	r, g, b, a := c.RGBA()
	// Scale RGB too so colors fade to transparent black
	return color.RGBA{
		uint8(float64(r>>8) * alpha),
		uint8(float64(g>>8) * alpha),
		uint8(float64(b>>8) * alpha),
		uint8(float64(a>>8) * alpha),
	}
}

// drawColoredText draws text with a specific color and face, top-left at x, y
func (e *EbitenRenderer) drawColoredText(screen *ebiten.Image, str string, x, y float64, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

// drawCenteredText draws text centred horizontally on cx
func (e *EbitenRenderer) drawCenteredText(screen *ebiten.Image, str string, cx, y float64, col color.Color, face *text.GoTextFace) {
	w := e.getTextWidthWithFace(str, face)
	e.drawColoredText(screen, str, cx-w/2, y, col, face)
}

// drawColoredTextSegments draws multiple text segments with different colors
func (e *EbitenRenderer) drawColoredTextSegments(screen *ebiten.Image, segments []textSegment, x, y float64) {
	face := e.getSansFontFace()
	currentX := x
	for _, seg := range segments {
		if seg.text == "" {
			continue
		}
		e.drawColoredText(screen, seg.text, currentX, y, seg.color, face)
		currentX += e.getTextWidthWithFace(seg.text, face)
	}
}

// drawWrappedText draws str inside a box maxW wide and returns the height used
func (e *EbitenRenderer) drawWrappedText(screen *ebiten.Image, str string, x, y, maxW float64, col color.Color, face *text.GoTextFace) float64 {
	lineH := face.Size * 1.3
	lines := e.wrapText(str, maxW, face)
	for i, line := range lines {
		e.drawColoredText(screen, line, x, y+float64(i)*lineH, col, face)
	}
	return float64(len(lines)) * lineH
}

// wrapText breaks str into lines no wider than maxW. A single word wider
// than maxW gets a line of its own.
func (e *EbitenRenderer) wrapText(str string, maxW float64, face *text.GoTextFace) []string {
	words := strings.Fields(str)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if e.getTextWidthWithFace(candidate, face) > maxW {
			lines = append(lines, line)
			line = w
			continue
		}
		line = candidate
	}
	return append(lines, line)
}

// getTextWidth returns the width of a string in pixels at UI font size
func (e *EbitenRenderer) getTextWidth(str string) float64 {
	return e.getTextWidthWithFace(str, e.getSansFontFace())
}

// getTextWidthWithFace returns the width of a string in pixels using the given font face.
func (e *EbitenRenderer) getTextWidthWithFace(str string, face *text.GoTextFace) float64 {
	w, _ := text.Measure(str, face, 0)
	return w
}
