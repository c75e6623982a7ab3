package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/particle-field/render"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		in      string
		w, h    float64
		wantErr bool
	}{
		{"10x20", 10, 20, false},
		{"8X16", 8, 16, false},
		{"12.5x25", 12.5, 25, false},
		{"10", 0, 0, true},
		{"0x20", 0, 0, true},
		{"ax20", 0, 0, true},
		{"10x-1", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := parseCell(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseCell(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && (w != tt.w || h != tt.h) {
				t.Errorf("parseCell(%q) = %vx%v, want %vx%v", tt.in, w, h, tt.w, tt.h)
			}
		})
	}
}

func TestResolveColorModeExplicit(t *testing.T) {
	if got := resolveColorMode("256"); got != render.ColorMode256 {
		t.Errorf("resolveColorMode(256) = %v", got)
	}
	if got := resolveColorMode("truecolor"); got != render.ColorModeTrueColor {
		t.Errorf("resolveColorMode(truecolor) = %v", got)
	}
}

func TestIsQuit(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want bool
	}{
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true},
		{"p", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), false},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isQuit(tt.ev); got != tt.want {
				t.Errorf("isQuit = %v, want %v", got, tt.want)
			}
		})
	}
}
