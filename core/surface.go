package core

import "time"

// Surface is a 2D drawing target in virtual pixel coordinates
// Implementations decide how sub-pixel geometry maps onto their output
type Surface interface {
	Clear()
	FillCircle(cx, cy, r float64, c Tint)
	StrokeLine(x0, y0, x1, y1, width float64, c Tint)
}

// Clock provides the current time; implemented by engine.TimeProvider and its mock
type Clock interface {
	Now() time.Time
}
