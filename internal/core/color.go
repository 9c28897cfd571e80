package core

// Color represents a foreground color for a screen cell.
// Values are abstract; the platform layer maps them to a terminal palette.
type Color uint8

// Predefined colors for game elements. The palette leans pastel because the
// games target young players.
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
	ColorPink
	ColorSky
)
