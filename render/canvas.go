package render

import (
	"math"

	"github.com/lixenwraith/particle-field/core"
)

// Canvas is a core.Surface backed by a terminal cell grid
// One cell spans cellW x cellH virtual pixels; lines rasterise onto a 2x4 braille sub-grid
type Canvas struct {
	cols, rows   int
	cellW, cellH float64
	background   RGB
	cells        []cell
}

// NewCanvas creates a canvas of cols x rows cells
func NewCanvas(cols, rows int, cellW, cellH float64, background RGB) *Canvas {
	c := &Canvas{
		cellW:      cellW,
		cellH:      cellH,
		background: background,
	}
	c.Resize(cols, rows)
	return c
}

// Resize adjusts the grid, reallocating only if capacity is insufficient
func (c *Canvas) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	size := cols * rows
	if cap(c.cells) < size {
		c.cells = make([]cell, size)
	} else {
		c.cells = c.cells[:size]
	}
	c.cols, c.rows = cols, rows
	c.Clear()
}

// GridSize returns the grid dimensions in cells
func (c *Canvas) GridSize() (cols, rows int) {
	return c.cols, c.rows
}

// PixelSize returns the virtual pixel dimensions covered by the grid
func (c *Canvas) PixelSize() (w, h float64) {
	return float64(c.cols) * c.cellW, float64(c.rows) * c.cellH
}

// CellCenter maps a cell coordinate to the virtual pixel at its center
func (c *Canvas) CellCenter(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * c.cellW, (float64(row) + 0.5) * c.cellH
}

// Clear resets all cells to the background using exponential copy
func (c *Canvas) Clear() {
	if len(c.cells) == 0 {
		return
	}
	c.cells[0] = cell{bg: c.background}
	for filled := 1; filled < len(c.cells); filled *= 2 {
		copy(c.cells[filled:], c.cells[:filled])
	}
}

func (c *Canvas) at(col, row int) *cell {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return nil
	}
	return &c.cells[row*c.cols+col]
}

// FillCircle draws a dot glyph for sub-cell radii and a filled disc of cell backgrounds otherwise
func (c *Canvas) FillCircle(cx, cy, r float64, t core.Tint) {
	if r*2 < c.cellW {
		dst := c.at(int(math.Floor(cx/c.cellW)), int(math.Floor(cy/c.cellH)))
		if dst == nil {
			return
		}
		dst.glyph = particleGlyph(r)
		dst.glyphFg = composite(dst.glyphFg, Blend(dst.bg, t.RGB, t.A), BlendMax, 1)
		return
	}

	minCol := int(math.Floor((cx - r) / c.cellW))
	maxCol := int(math.Floor((cx + r) / c.cellW))
	minRow := int(math.Floor((cy - r) / c.cellH))
	maxRow := int(math.Floor((cy + r) / c.cellH))

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			dst := c.at(col, row)
			if dst == nil {
				continue
			}
			x, y := c.CellCenter(col, row)
			if math.Hypot(x-cx, y-cy) > r {
				continue
			}
			dst.bg = composite(dst.bg, t.RGB, BlendAlpha, t.A)
			dst.glyph = 0
			dst.dots = 0
		}
	}
}

// StrokeLine plots the segment on the braille sub-grid
// Widths below one dot are not representable and are ignored
func (c *Canvas) StrokeLine(x0, y0, x1, y1, _ float64, t core.Tint) {
	dotW, dotH := c.cellW/2, c.cellH/4
	if dotW <= 0 || dotH <= 0 {
		return
	}

	ax, ay := x0/dotW, y0/dotH
	bx, by := x1/dotW, y1/dotH
	steps := int(math.Ceil(math.Max(math.Abs(bx-ax), math.Abs(by-ay))))
	if steps < 1 {
		steps = 1
	}

	src := t.RGB.Scale(t.A)
	lastCol, lastRow := math.MinInt, math.MinInt
	for i := 0; i <= steps; i++ {
		f := float64(i) / float64(steps)
		dc := int(math.Floor(ax + (bx-ax)*f))
		dr := int(math.Floor(ay + (by-ay)*f))
		if dc == lastCol && dr == lastRow {
			continue
		}
		lastCol, lastRow = dc, dr

		if dc < 0 || dr < 0 {
			continue
		}
		dst := c.at(dc/2, dr/4)
		if dst == nil {
			continue
		}
		dst.dots |= brailleBits[dr%4][dc%2]
		dst.lineFg = composite(dst.lineFg, src, BlendScreen, 1)
	}
}
