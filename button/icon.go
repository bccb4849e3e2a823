package button

import (
	"termui/ui"

	"github.com/mattn/go-runewidth"
)

// GlyphIcon is an icon made of a single character.
type GlyphIcon struct {
	glyph    rune
	align    ui.Align
	released bool
}

func NewGlyphIcon(glyph rune, align ui.Align) *GlyphIcon {
	return &GlyphIcon{glyph: glyph, align: align}
}

func (g *GlyphIcon) Glyph() rune { return g.glyph }

func (g *GlyphIcon) IconAlign() ui.Align { return g.align }

func (g *GlyphIcon) Width() int { return runewidth.RuneWidth(g.glyph) }

func (g *GlyphIcon) Height() int { return 1 }

func (g *GlyphIcon) Release() { g.released = true }

func (g *GlyphIcon) Released() bool { return g.released }
