package render

import "image/color"

// Palette used when a frame is shown on color hardware or previewed.
// The Sharp panel itself only knows set and clear bits.
var (
	Foreground color.Color = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	Background color.Color = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

const (
	// DefaultGlyphSize is the nominal glyph height used by the menu.
	DefaultGlyphSize = 30

	// GlyphGap is added to half the glyph size to get the text advance.
	GlyphGap = 5
)
