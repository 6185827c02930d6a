package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI color code.
type Color uint8

// Colors available to games. ColorDefault leaves the terminal color alone.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorGray
)
