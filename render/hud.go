package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUD is the status line shown in the top-right corner
type HUD struct {
	Particles    int
	Links        int
	PointerLinks int
	FPS          float64
	Paused       bool
}

func (h HUD) String() string {
	s := fmt.Sprintf(" %d particles · %d links · %d pointer · %.0f fps ", h.Particles, h.Links, h.PointerLinks, h.FPS)
	if h.Paused {
		s = " paused ·" + s
	}
	return s
}

// DrawHUD right-aligns the status text on row 0, truncating to the screen width
func DrawHUD(screen tcell.Screen, h HUD, fg, bg RGB, mode ColorMode) {
	w, _ := screen.Size()
	if w <= 0 {
		return
	}

	text := runewidth.Truncate(h.String(), w, "…")
	x := w - runewidth.StringWidth(text)
	style := tcell.StyleDefault.
		Foreground(tcellColor(fg, mode)).
		Background(tcellColor(bg, mode))

	for _, r := range text {
		screen.SetContent(x, 0, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
