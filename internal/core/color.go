package core

// Color is the foreground colour of a screen cell. The terminal renderer maps
// each value to an ANSI 256-colour code; plain-text output ignores it.
type Color uint8

// Palette.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorYellow
	ColorCyan
	ColorOrange
	ColorBrightRed
	ColorBrightYellow
	ColorBrightWhite
)

// Plot element colours.
const (
	ColorGrid    = ColorGray
	ColorGround  = ColorWhite
	ColorPath    = ColorCyan
	ColorApex    = ColorBrightYellow
	ColorLanding = ColorBrightRed
	ColorCannon  = ColorOrange
	ColorBarrel  = ColorBrightWhite
	ColorBall    = ColorBrightRed
	ColorCaption = ColorBrightWhite
	ColorDetail  = ColorWhite
)
