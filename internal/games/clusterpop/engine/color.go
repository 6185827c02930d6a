package engine

import "strings"

// Color identifies one of the fixed palette colors a bubble can have.
type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
	ColorYellow
	ColorMagenta
	ColorCount // Sentinel value for iteration
)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorMagenta:
		return "magenta"
	default:
		return "unknown"
	}
}

// Char returns a single character representation of the color for ASCII boards.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorYellow:
		return 'Y'
	case ColorMagenta:
		return 'M'
	default:
		return '?'
	}
}

// Valid reports whether c is a palette color.
func (c Color) Valid() bool {
	return c < ColorCount
}

// ParseColor converts a color name or its single-letter form to a Color.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "red", "r":
		return ColorRed, true
	case "green", "g":
		return ColorGreen, true
	case "blue", "b":
		return ColorBlue, true
	case "yellow", "y":
		return ColorYellow, true
	case "magenta", "m":
		return ColorMagenta, true
	default:
		return ColorRed, false
	}
}

// AllColors returns the palette in order.
func AllColors() []Color {
	return []Color{ColorRed, ColorGreen, ColorBlue, ColorYellow, ColorMagenta}
}
