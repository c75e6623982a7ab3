package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorMode selects how RGB values reach the terminal
type ColorMode uint8

const (
	ColorMode256 ColorMode = iota
	ColorModeTrueColor
)

func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// ParseColorMode resolves a -color flag value; "auto" detects from the environment
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return DetectColorMode(), nil
	case "256":
		return ColorMode256, nil
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, nil
	default:
		return 0, fmt.Errorf("unknown color mode %q (want auto, truecolor or 256)", s)
	}
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := os.Getenv("TERM")
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// Levels of the xterm color cube: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeIndex maps 0-255 to the nearest cube level
var cubeIndex [256]uint8

func init() {
	for i := 0; i < 256; i++ {
		best := 0
		bestDist := abs(i - int(cubeValues[0]))
		for j := 1; j < 6; j++ {
			if d := abs(i - int(cubeValues[j])); d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RGBTo256 finds the nearest xterm 256-palette index
// Cube: 16 + 36r + 6g + b; grayscale ramp 232-255 at levels 8 + 10n
func RGBTo256(c RGB) uint8 {
	r, g, b := int(c.R), int(c.G), int(c.B)
	cr, cg, cb := cubeIndex[c.R], cubeIndex[c.G], cubeIndex[c.B]
	cube := 16 + 36*cr + 6*cg + cb

	gray := (r + g + b) / 3
	if max(abs(r-gray), abs(g-gray), abs(b-gray)) >= 10 {
		return cube
	}
	if gray < 4 {
		return 16
	}
	if gray > 243 {
		return 231
	}

	grayIdx := min(232+(gray-8)/10, 255)
	level := 8 + (grayIdx-232)*10
	grayDist := abs(r-level) + abs(g-level) + abs(b-level)
	cubeDist := abs(r-int(cubeValues[cr])) + abs(g-int(cubeValues[cg])) + abs(b-int(cubeValues[cb]))
	if grayDist < cubeDist {
		return uint8(grayIdx)
	}
	return cube
}

// tcellColor converts c for the given mode
func tcellColor(c RGB, mode ColorMode) tcell.Color {
	if mode == ColorModeTrueColor {
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.PaletteColor(int(RGBTo256(c)))
}
