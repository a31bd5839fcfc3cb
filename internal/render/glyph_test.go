package render_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rook-computer/sharpmenu/internal/fb"
	"github.com/rook-computer/sharpmenu/internal/render"
)

func TestDrawTextEmpty(t *testing.T) {
	r := newRecorder()
	render.DrawText(r, 10, 10, "", render.DefaultGlyphSize)
	assert.Zero(t, r.calls)
	assert.Empty(t, setPixels(r.Buffer))
}

func TestSpaceDrawsNothing(t *testing.T) {
	r := newRecorder()
	render.DrawText(r, 10, 10, "   ", render.DefaultGlyphSize)
	assert.Zero(t, r.calls)
}

func TestGlyphsAdvanceMonospaced(t *testing.T) {
	var got []render.Placement
	for p := range render.Glyphs(10, 20, "NEW FILE", 30) {
		got = append(got, p)
	}
	assert.Len(t, got, 8)
	for i, p := range got {
		assert.Equal(t, 10+i*20, p.X)
		assert.Equal(t, 20, p.Y)
		assert.Equal(t, 30, p.Size)
	}
	assert.Equal(t, 'N', got[0].Char)
	assert.Equal(t, ' ', got[3].Char)
}

func TestGlyphsStopsEarly(t *testing.T) {
	n := 0
	for range render.Glyphs(0, 0, "CREDITS", 30) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestMenuVocabularyHasGlyphs(t *testing.T) {
	for _, ch := range "NEWFILOPSTGCRD" {
		assert.True(t, render.HasGlyph(ch), "missing glyph %q", ch)
	}
	assert.False(t, render.HasGlyph('a'))
	assert.False(t, render.HasGlyph('?'))
}

func TestDrawCharL(t *testing.T) {
	b := fb.New()
	render.DrawChar(b, 100, 100, 'L', 30)

	pts := setPixels(b)
	assert.Len(t, pts, 31+16-1)
	assert.True(t, b.Pixel(100, 100))
	assert.True(t, b.Pixel(100, 130))
	assert.True(t, b.Pixel(115, 130))
	assert.False(t, b.Pixel(116, 130))
}

func TestDrawCharOIsRectangle(t *testing.T) {
	b := fb.New()
	render.DrawChar(b, 50, 50, 'O', 30)
	assert.Len(t, setPixels(b), 2*15+2*28)
	assert.True(t, b.Pixel(64, 79))
	assert.False(t, b.Pixel(57, 65))
}

func TestUnknownCharacterFallback(t *testing.T) {
	for _, ch := range []rune{'?', 'a', '7', 'é'} {
		b := fb.New()
		render.DrawChar(b, 0, 0, ch, 30)
		pts := setPixels(b)
		assert.Len(t, pts, 7*15, "fallback for %q", ch)
		for _, p := range pts {
			assert.True(t, p.In(image.Rect(3, 7, 10, 22)), "%v outside fallback square", p)
		}
	}
}

func TestDrawTextDeterministic(t *testing.T) {
	a, b := fb.New(), fb.New()
	render.DrawText(a, 120, 30, "SETTINGS", 30)
	render.DrawText(b, 120, 30, "SETTINGS", 30)
	assert.Equal(t, a.Bytes(), b.Bytes())
	assert.NotEmpty(t, setPixels(a))
}

func TestDrawTextMatchesCharByChar(t *testing.T) {
	a, b := fb.New(), fb.New()
	render.DrawText(a, 5, 5, "CRED", 20)
	for i, ch := range "CRED" {
		render.DrawChar(b, 5+i*render.Advance(20), 5, ch, 20)
	}
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestDrawTextClipsAtCanvasEdge(t *testing.T) {
	b := fb.New()
	assert.NotPanics(t, func() {
		render.DrawText(b, 380, 225, "WIDE TEXT", 30)
		render.DrawText(b, -50, -10, "NEW FILE", 30)
	})
}
