package constants

import "time"

// Display Timing
const (
	// DefaultFPS drives the terminal host's repaint ticker
	DefaultFPS = 60

	// FrameUpdateInterval is the repaint period at DefaultFPS
	FrameUpdateInterval = time.Second / DefaultFPS
)

// Terminal Cell Geometry
const (
	// CellWidth and CellHeight map one terminal cell to virtual pixels
	CellWidth  = 10
	CellHeight = 20

	BackgroundColorHex = "#000000"
)

// Loader
const (
	LoaderDuration      = 2 * time.Second
	LoaderRingPeriod    = 1 * time.Second
	LoaderCenterPeriod  = 2 * time.Second
	LoaderOrbitRadius   = 50.0
	LoaderOrbBorder     = 16.0
	LoaderOrbFill       = 12.0
	LoaderOrbCore       = 8.0
	LoaderCenterBorder  = 24.0
	LoaderCenterFill    = 12.0
	LoaderParallax      = 0.02
	LoaderNotchDistance = 18.0
	LoaderNotchRadius   = 3.0
)

// Window Host
const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "particle-field"
)
