package core

// Color is the foreground color of a screen cell.
// The platform layer maps each value to an ANSI 256 color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorGray
	ColorOrange
	ColorBrightGreen
	ColorBrightYellow
)
