package render

// BlendMode selects how a draw composites into a cell
type BlendMode uint8

const (
	BlendReplace BlendMode = iota
	BlendAlpha
	BlendMax
	BlendScreen
)

// composite applies mode to dst with src at the given opacity
func composite(dst, src RGB, mode BlendMode, alpha float64) RGB {
	switch mode {
	case BlendReplace:
		return src
	case BlendAlpha:
		return Blend(dst, src, alpha)
	case BlendMax:
		return Max(dst, src, alpha)
	case BlendScreen:
		return Screen(dst, src, alpha)
	default:
		return dst
	}
}
