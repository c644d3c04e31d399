package core

// Color is a logical colour for a drawn cell. Frontends map it to ANSI
// 256-colour codes (terminal) or RGBA (window).
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlack
	ColorGreen
	ColorBlue
	ColorWhite
	ColorGray
)

// Colours used by the game itself.
const (
	ColorBackground = ColorBlack
	ColorSnake      = ColorGreen
	ColorFood       = ColorBlue
)

func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBlack:
		return "black"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
