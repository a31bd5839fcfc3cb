package menu

import (
	"github.com/rook-computer/sharpmenu/internal/fb"
	"github.com/rook-computer/sharpmenu/internal/render"
	"github.com/rook-computer/sharpmenu/internal/render/layout"
)

// Layout constants. Horizontal centering uses CharWidth per character,
// which is only an estimate of the stroke glyph advance.
const (
	RowHeight = 45
	CharWidth = 20

	ArrowOffsetX = 40
	ArrowOffsetY = 7
	ArrowArm     = 15
	ArrowWeight  = 3
)

// Draw lays out all items and marks the selected one.
func Draw(c render.Canvas, items []string, selected int) {
	rows := layout.StackRows(fb.Height, len(items), RowHeight)
	for i, label := range items {
		y := rows[i]
		x := layout.CenterLabel(fb.Width, label, CharWidth)
		render.DrawText(c, x, y, label, render.DefaultGlyphSize)
		if i == selected {
			DrawIndicator(c, x-ArrowOffsetX, y+ArrowOffsetY)
		}
	}
}

// DrawIndicator draws a right-pointing chevron whose top-left corner is
// (x, y), ArrowWeight pixels thick.
func DrawIndicator(c render.Canvas, x, y int) {
	for i := 0; i < ArrowWeight; i++ {
		render.DrawLine(c, x+i, y, x+ArrowArm+i, y+ArrowArm, true)
		render.DrawLine(c, x+i, y+2*ArrowArm, x+ArrowArm+i, y+ArrowArm, true)
	}
}
