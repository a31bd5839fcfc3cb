package fb

import (
	"image"
	"image/color"
)

// The methods below make Buffer a draw.Image, so decoded bitmaps and font
// rasterizers can paint into it. Colors are thresholded on luminance.

func (b *Buffer) ColorModel() color.Model { return color.GrayModel }

func (b *Buffer) Bounds() image.Rectangle { return image.Rect(0, 0, Width, Height) }

func (b *Buffer) At(x, y int) color.Color {
	if b.Pixel(x, y) {
		return color.Gray{Y: 0x00}
	}
	return color.Gray{Y: 0xFF}
}

func (b *Buffer) Set(x, y int, c color.Color) {
	b.SetPixel(x, y, IsDark(c))
}

// IsDark reports whether c should be drawn as a black pixel.
// Fully transparent colors count as background.
func IsDark(c color.Color) bool {
	_, _, _, a := c.RGBA()
	if a == 0 {
		return false
	}
	gray := color.GrayModel.Convert(c).(color.Gray)
	return gray.Y < 0x80
}
