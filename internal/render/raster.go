package render

import (
	"image"

	"github.com/rook-computer/sharpmenu/internal/fb"
)

// canvasBounds is the drawable area of c. Canvases without Bounds are
// assumed to be panel sized.
func canvasBounds(c Canvas) image.Rectangle {
	if b, ok := c.(interface{ Bounds() image.Rectangle }); ok {
		return b.Bounds()
	}
	return image.Rect(0, 0, fb.Width, fb.Height)
}

// DrawRect paints the half-open rectangle [x, x+w) x [y, y+h).
// With fill unset only the one-pixel border is drawn. Empty extents draw nothing.
// Loops are clipped to the canvas, so huge extents cost no more than the
// visible part.
func DrawRect(c Canvas, x, y, w, h int, black, fill bool) {
	if w <= 0 || h <= 0 {
		return
	}
	bounds := canvasBounds(c)
	right, bottom := x+w-1, y+h-1
	x0, x1 := max(x, bounds.Min.X), min(x+w, bounds.Max.X)
	y0, y1 := max(y, bounds.Min.Y), min(y+h, bounds.Max.Y)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	if fill {
		for py := y0; py < y1; py++ {
			for px := x0; px < x1; px++ {
				c.SetPixel(px, py, black)
			}
		}
		return
	}
	for px := x0; px < x1; px++ {
		if y >= y0 {
			c.SetPixel(px, y, black)
		}
		if bottom < y1 {
			c.SetPixel(px, bottom, black)
		}
	}
	for py := max(y+1, y0); py < min(bottom, y1); py++ {
		if x >= x0 {
			c.SetPixel(x, py, black)
		}
		if right < x1 {
			c.SetPixel(right, py, black)
		}
	}
}

// DrawLine draws the segment from (x0, y0) to (x1, y1), both endpoints
// included, with Bresenham's integer error stepping. It covers every octant.
func DrawLine(c Canvas, x0, y0, x1, y1 int, black bool) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.SetPixel(x0, y0, black)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
