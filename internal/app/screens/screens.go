// Package screens draws the frames shown after a menu item is committed.
package screens

import (
	"image"

	"github.com/rook-computer/sharpmenu/internal/fb"
	"github.com/rook-computer/sharpmenu/internal/render"
	"github.com/rook-computer/sharpmenu/internal/render/layout"
)

const (
	borderInset = 6
	titleHeight = 50
	charWidth   = 20
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Title is a bordered screen with one centered label.
type Title struct {
	Label string
}

func (s Title) Draw(c render.Canvas) {
	frame := layout.Inset(image.Rect(0, 0, fb.Width, fb.Height), borderInset)
	drawBorder(c, frame)
	y := frame.Min.Y + (frame.Dy()-render.DefaultGlyphSize)/2
	drawLabel(c, s.Label, y)
}

// Credits shows the label at the top and, when URL is set, a QR code
// linking to it below.
type Credits struct {
	Label  string
	URL    string
	Logger Logger
}

func (s Credits) Draw(c render.Canvas) {
	if s.URL == "" {
		Title{Label: s.Label}.Draw(c)
		return
	}
	frame := layout.Inset(image.Rect(0, 0, fb.Width, fb.Height), borderInset)
	drawBorder(c, frame)
	top, bottom := layout.SplitHorizontal(frame, titleHeight)
	drawLabel(c, s.Label, top.Min.Y+(top.Dy()-render.DefaultGlyphSize)/2)
	if _, err := render.DrawQRCode(c, s.URL, layout.Inset(bottom, borderInset)); err != nil && s.Logger != nil {
		s.Logger.Errorf("screens", "credits qr code: %v", err)
	}
}

// ForLabel picks the screen for a committed menu item.
func ForLabel(label, creditsURL string, logger Logger) render.Screen {
	if label == "CREDITS" {
		return Credits{Label: label, URL: creditsURL, Logger: logger}
	}
	return Title{Label: label}
}

func drawBorder(c render.Canvas, r image.Rectangle) {
	render.DrawRect(c, r.Min.X, r.Min.Y, r.Dx(), r.Dy(), true, false)
}

func drawLabel(c render.Canvas, label string, y int) {
	x := layout.CenterLabel(fb.Width, label, charWidth)
	render.DrawText(c, x, y, label, render.DefaultGlyphSize)
}
