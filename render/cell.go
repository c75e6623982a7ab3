package render

// Braille patterns start at U+2800; each cell holds a 2x4 dot matrix
const brailleBase = 0x2800

// brailleBits maps [row][col] of the 2x4 dot matrix to its pattern bit
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Particle glyphs by radius in virtual pixels
const (
	glyphSmall  = '·'
	glyphMedium = '•'
	glyphLarge  = '●'
)

// cell is one terminal position; particle glyphs take precedence over line dots
type cell struct {
	bg RGB

	dots   uint8
	lineFg RGB

	glyph   rune
	glyphFg RGB
}

// Rune returns the character to emit for the cell
func (c *cell) Rune() rune {
	switch {
	case c.glyph != 0:
		return c.glyph
	case c.dots != 0:
		return brailleBase + rune(c.dots)
	default:
		return ' '
	}
}

// Fg returns the foreground color matching Rune
func (c *cell) Fg() RGB {
	if c.glyph != 0 {
		return c.glyphFg
	}
	return c.lineFg
}

func particleGlyph(r float64) rune {
	switch {
	case r < 1.0:
		return glyphSmall
	case r < 1.5:
		return glyphMedium
	default:
		return glyphLarge
	}
}
