package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGold
	ColorPink
	ColorGray
	ColorDarkGray
	ColorStar
)
