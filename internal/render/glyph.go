package render

import "iter"

// pen draws strokes relative to a glyph cell at (x, y) with width w and height h.
type pen struct {
	c    Canvas
	x, y int
	w, h int
}

func (p pen) line(x0, y0, x1, y1 int) {
	DrawLine(p.c, p.x+x0, p.y+y0, p.x+x1, p.y+y1, true)
}

func (p pen) box(x, y, w, h int, fill bool) {
	DrawRect(p.c, p.x+x, p.y+y, w, h, true, fill)
}

type strokeFunc func(p pen)

// strokes maps a character to its skeleton. Shapes are stylized, not typographic.
var strokes = map[rune]strokeFunc{
	' ': func(pen) {},
	'A': func(p pen) {
		p.line(0, p.h, p.w/2, 0)
		p.line(p.w/2, 0, p.w, p.h)
		p.line(p.w/4, p.h/2, 3*p.w/4, p.h/2)
	},
	'C': func(p pen) {
		p.line(0, 0, p.w, 0)
		p.line(0, 0, 0, p.h)
		p.line(0, p.h, p.w, p.h)
	},
	'D': func(p pen) {
		p.line(0, 0, 0, p.h)
		p.line(0, 0, p.w-5, 5)
		p.line(p.w-5, 5, p.w, p.h/2)
		p.line(p.w, p.h/2, p.w-5, p.h-5)
		p.line(p.w-5, p.h-5, 0, p.h)
	},
	'E': func(p pen) {
		p.line(0, 0, 0, p.h)
		p.line(0, 0, p.w, 0)
		p.line(0, p.h/2, p.w-5, p.h/2)
		p.line(0, p.h, p.w, p.h)
	},
	'F': func(p pen) {
		p.line(0, 0, 0, p.h)
		p.line(0, 0, p.w, 0)
		p.line(0, p.h/2, p.w-5, p.h/2)
	},
	'G': func(p pen) {
		p.box(0, 0, p.w, p.h, false)
		p.line(p.w/2, p.h/2, p.w, p.h/2)
		p.line(p.w, p.h/2, p.w, p.h)
	},
	'H': func(p pen) {
		p.line(0, 0, 0, p.h)
		p.line(p.w, 0, p.w, p.h)
		p.line(0, p.h/2, p.w, p.h/2)
	},
	'I': func(p pen) {
		p.line(0, 0, p.w, 0)
		p.line(p.w/2, 0, p.w/2, p.h)
		p.line(0, p.h, p.w, p.h)
	},
	'K': func(p pen) {
		p.line(0, 0, 0, p.h)
		p.line(0, p.h/2, p.w, 0)
		p.line(0, p.h/2, p.w, p.h)
	},
	'L': func(p pen) {
		p.line(0, 0, 0, p.h)
		p.line(0, p.h, p.w, p.h)
	},
	'M': func(p pen) {
		p.line(0, p.h, 0, 0)
		p.line(0, 0, p.w/2, p.h/2)
		p.line(p.w/2, p.h/2, p.w, 0)
		p.line(p.w, 0, p.w, p.h)
	},
	'N': func(p pen) {
		p.line(0, 0, 0, p.h)
		p.line(0, 0, p.w, p.h)
		p.line(p.w, 0, p.w, p.h)
	},
	'O': func(p pen) {
		p.box(0, 0, p.w, p.h, false)
	},
	'P': func(p pen) {
		p.line(0, 0, 0, p.h)
		p.line(0, 0, p.w, 0)
		p.line(p.w, 0, p.w, p.h/2)
		p.line(0, p.h/2, p.w, p.h/2)
	},
	'R': func(p pen) {
		p.line(0, 0, 0, p.h)
		p.line(0, 0, p.w, 0)
		p.line(p.w, 0, p.w, p.h/2)
		p.line(0, p.h/2, p.w, p.h/2)
		p.line(p.w/2, p.h/2, p.w, p.h)
	},
	'S': func(p pen) {
		p.line(0, 0, p.w, 0)
		p.line(0, 0, 0, p.h/2)
		p.line(0, p.h/2, p.w, p.h/2)
		p.line(p.w, p.h/2, p.w, p.h)
		p.line(0, p.h, p.w, p.h)
	},
	'T': func(p pen) {
		p.line(0, 0, p.w, 0)
		p.line(p.w/2, 0, p.w/2, p.h)
	},
	'U': func(p pen) {
		p.line(0, 0, 0, p.h)
		p.line(0, p.h, p.w, p.h)
		p.line(p.w, p.h, p.w, 0)
	},
	'V': func(p pen) {
		p.line(0, 0, p.w/2, p.h)
		p.line(p.w/2, p.h, p.w, 0)
	},
	'W': func(p pen) {
		p.line(0, 0, p.w/3, p.h)
		p.line(p.w/3, p.h, p.w/2, p.h/2)
		p.line(p.w/2, p.h/2, 2*p.w/3, p.h)
		p.line(2*p.w/3, p.h, p.w, 0)
	},
	'X': func(p pen) {
		p.line(0, 0, p.w, p.h)
		p.line(p.w, 0, 0, p.h)
	},
	'Y': func(p pen) {
		p.line(0, 0, p.w/2, p.h/2)
		p.line(p.w, 0, p.w/2, p.h/2)
		p.line(p.w/2, p.h/2, p.w/2, p.h)
	},
	'Z': func(p pen) {
		p.line(0, 0, p.w, 0)
		p.line(p.w, 0, 0, p.h)
		p.line(0, p.h, p.w, p.h)
	},
}

// unknownGlyph flags characters without a skeleton with a small filled square.
func unknownGlyph(p pen) {
	p.box(p.w/4, p.h/4, p.w/2, p.h/2, true)
}

// HasGlyph reports whether ch has its own stroke skeleton.
func HasGlyph(ch rune) bool {
	_, ok := strokes[ch]
	return ok
}

// DrawChar draws ch in a cell of height size and width size/2 anchored at (x, y).
func DrawChar(c Canvas, x, y int, ch rune, size int) {
	draw, ok := strokes[ch]
	if !ok {
		draw = unknownGlyph
	}
	draw(pen{c: c, x: x, y: y, w: size / 2, h: size})
}

// Placement is the position of one character of a text run.
type Placement struct {
	X, Y int
	Char rune
	Size int
}

// Advance is the monospaced cursor step for glyphs of the given size.
func Advance(size int) int {
	return size/2 + GlyphGap
}

// Glyphs yields the placements of text left to right, one per character.
func Glyphs(x, y int, text string, size int) iter.Seq[Placement] {
	return func(yield func(Placement) bool) {
		cursor := x
		for _, ch := range text {
			if !yield(Placement{X: cursor, Y: y, Char: ch, Size: size}) {
				return
			}
			cursor += Advance(size)
		}
	}
}

// DrawText draws text starting at (x, y). Spacing ignores each glyph's drawn width.
func DrawText(c Canvas, x, y int, text string, size int) {
	for p := range Glyphs(x, y, text, size) {
		DrawChar(c, p.X, p.Y, p.Char, p.Size)
	}
}
