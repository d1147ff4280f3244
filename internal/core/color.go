package core

// Color is a palette entry shared by every frontend.
// The terminal maps it to ANSI 256-color codes, the window to RGBA.
type Color uint8

// Palette used by the dodge games.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorGray
	ColorBlack
)

// String returns the palette name, used in logs and config dumps.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorBrightRed:
		return "bright-red"
	case ColorBrightYellow:
		return "bright-yellow"
	case ColorBrightCyan:
		return "bright-cyan"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	case ColorBlack:
		return "black"
	default:
		return "unknown"
	}
}

// ParseColor resolves a palette name. Unknown names map to ColorDefault.
func ParseColor(name string) Color {
	for c := ColorDefault; c <= ColorBlack; c++ {
		if c.String() == name {
			return c
		}
	}
	return ColorDefault
}
