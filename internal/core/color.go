package core

// Color is a foreground color for a screen cell, a small palette the
// render layer maps to ANSI codes. Modes pick palette entries; they
// never deal with escape sequences.
type Color uint8

// Palette entries for lab rendering.
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
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)
