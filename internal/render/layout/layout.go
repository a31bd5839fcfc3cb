// Package layout holds the integer layout arithmetic shared by screens.
package layout

import (
	"image"
	"unicode/utf8"
)

// StackRows returns the top edge of count rows of rowHeight stacked and
// centered vertically inside a canvas of the given height.
func StackRows(canvasHeight, count, rowHeight int) []int {
	if count <= 0 {
		return nil
	}
	start := (canvasHeight - count*rowHeight) / 2
	rows := make([]int, count)
	for i := range rows {
		rows[i] = start + i*rowHeight
	}
	return rows
}

// CenterApprox centers a run of charCount characters assuming every
// character is charWidth wide. The result may be negative for long runs.
func CenterApprox(canvasWidth, charCount, charWidth int) int {
	return (canvasWidth - charCount*charWidth) / 2
}

// CenterLabel is CenterApprox for a text label, counting characters rather
// than bytes to match the per-rune text advance.
func CenterLabel(canvasWidth int, label string, charWidth int) int {
	return CenterApprox(canvasWidth, utf8.RuneCountInString(label), charWidth)
}

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// SplitHorizontal splits rect into top and bottom parts.
// topHeightPx is clamped to [0, rect.Dy()].
func SplitHorizontal(rect image.Rectangle, topHeightPx int) (top image.Rectangle, bottom image.Rectangle) {
	rect = Normalize(rect)
	topHeightPx = max(0, min(topHeightPx, rect.Dy()))
	top = image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+topHeightPx)
	bottom = image.Rect(rect.Min.X, rect.Min.Y+topHeightPx, rect.Max.X, rect.Max.Y)
	return top, bottom
}
