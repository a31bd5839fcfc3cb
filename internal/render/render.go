// Package render rasterizes lines, rectangles and stroke glyphs into a
// monochrome canvas. Everything here is integer-only and deterministic.
package render

import (
	"image"
	"image/color"

	"github.com/rook-computer/sharpmenu/internal/fb"
)

// Canvas is the single primitive the drawing routines rely on.
// Implementations must ignore coordinates outside their bounds.
type Canvas interface {
	SetPixel(x, y int, black bool)
}

var _ Canvas = (*fb.Buffer)(nil)

// Screen draws one complete frame.
type Screen interface {
	Draw(c Canvas)
}

// ScreenFunc adapts a function to Screen.
type ScreenFunc func(c Canvas)

func (f ScreenFunc) Draw(c Canvas) { f(c) }

// Tinted presents a frame as a color image using the given palette.
// Sinks that drive color hardware and the simulator preview use it.
type Tinted struct {
	Frame      *fb.Buffer
	Foreground color.Color
	Background color.Color
}

// Tint wraps frame with the configured Foreground and Background.
func Tint(frame *fb.Buffer) Tinted {
	return Tinted{Frame: frame, Foreground: Foreground, Background: Background}
}

func (t Tinted) ColorModel() color.Model { return color.RGBAModel }

func (t Tinted) Bounds() image.Rectangle { return t.Frame.Bounds() }

func (t Tinted) At(x, y int) color.Color {
	if t.Frame.Pixel(x, y) {
		return t.Foreground
	}
	return t.Background
}
