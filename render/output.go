package render

import "github.com/gdamore/tcell/v2"

// Flush writes every cell to screen; the caller decides when to Show
func (c *Canvas) Flush(screen tcell.Screen, mode ColorMode) {
	sw, sh := screen.Size()
	cols, rows := min(c.cols, sw), min(c.rows, sh)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cl := &c.cells[row*c.cols+col]
			style := tcell.StyleDefault.
				Foreground(tcellColor(cl.Fg(), mode)).
				Background(tcellColor(cl.bg, mode))
			screen.SetContent(col, row, cl.Rune(), nil, style)
		}
	}
}
