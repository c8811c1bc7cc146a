package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for board elements.
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

// tilePalette cycles through readable colors for numbered tiles.
var tilePalette = [...]Color{
	ColorBrightYellow,
	ColorBrightGreen,
	ColorBrightCyan,
	ColorBrightMagenta,
	ColorOrange,
	ColorBrightRed,
	ColorBrightBlue,
	ColorBrightWhite,
}

// TileColor returns the color used for the tile with the given value.
func TileColor(value int) Color {
	if value <= 0 {
		return ColorGray
	}
	return tilePalette[(value-1)%len(tilePalette)]
}
