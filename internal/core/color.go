package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to a terminal style.
type Color uint8

// Palette used by the snake front end.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorGray
)
