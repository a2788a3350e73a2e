// Package ebiten provides an Ebiten-based 2D graphical renderer for the journey puzzles.
package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the bundled Go fonts
func (e *EbitenRenderer) loadFonts() error {
	sans, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return fmt.Errorf("load bold font: %w", err)
	}
	e.sansFontSource = sans
	e.sansBoldFontSource = bold
	e.invalidateFontCache()
	return nil
}

// getUIFontSize returns the font size for UI text, scaled down on narrow windows
func (e *EbitenRenderer) getUIFontSize() float64 {
	size := baseFontSize
	if e.windowWidth > 0 && e.windowWidth < defaultWindowWidth {
		size = baseFontSize * float64(e.windowWidth) / defaultWindowWidth
	}
	if size < 10 {
		size = 10
	}
	return size
}

// getSansFontFace returns a cached sans-serif font face for UI text
func (e *EbitenRenderer) getSansFontFace() *text.GoTextFace {
	size := e.getUIFontSize()
	if e.cachedSansFace == nil || e.cachedUIFontSize != size {
		e.cachedUIFontSize = size
		e.cachedSansFace = &text.GoTextFace{Source: e.sansFontSource, Size: size}
		e.cachedSansBoldFace = &text.GoTextFace{Source: e.sansBoldFontSource, Size: size}
		e.cachedSmallFace = &text.GoTextFace{Source: e.sansFontSource, Size: size * smallFontSize / baseFontSize}
	}
	return e.cachedSansFace
}

// getSansBoldFontFace returns a cached bold face at UI size, for card labels
func (e *EbitenRenderer) getSansBoldFontFace() *text.GoTextFace {
	e.getSansFontFace()
	return e.cachedSansBoldFace
}

// getSmallFontFace returns a cached face for card descriptions
func (e *EbitenRenderer) getSmallFontFace() *text.GoTextFace {
	e.getSansFontFace()
	return e.cachedSmallFace
}

// getTitleFontFace returns a cached bold face for screen titles
func (e *EbitenRenderer) getTitleFontFace() *text.GoTextFace {
	size := titleFontSize * e.getUIFontSize() / baseFontSize
	if e.cachedTitleFace == nil || e.cachedTitleFontSize != size {
		e.cachedTitleFontSize = size
		e.cachedTitleFace = &text.GoTextFace{Source: e.sansBoldFontSource, Size: size}
	}
	return e.cachedTitleFace
}

// invalidateFontCache clears cached font faces
func (e *EbitenRenderer) invalidateFontCache() {
	e.cachedSansFace = nil
	e.cachedSansBoldFace = nil
	e.cachedSmallFace = nil
	e.cachedTitleFace = nil
}
