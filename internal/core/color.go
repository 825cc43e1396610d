package core

// Color is the ANSI 256 foreground code a screen cell is drawn with.
// The zero value means the terminal's default foreground.
type Color uint8

// The runner's palette. Each constant carries the ANSI 256 code the platform
// layer feeds to the terminal.
const (
	ColorDefault Color = 0

	// Health lines in the battle overlay
	ColorRed   Color = 1
	ColorGreen Color = 2

	// Highlights: obstacles, banners, coins, overlays, the player glyph
	ColorBrightRed    Color = 9
	ColorBrightGreen  Color = 10
	ColorBrightYellow Color = 11
	ColorBrightBlue   Color = 12
	ColorBrightCyan   Color = 14
	ColorBrightWhite  Color = 15

	// Ground line, key hints and the status line
	ColorGray Color = 245
)
