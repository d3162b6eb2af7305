package core

// Color represents a terminal color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors for game elements.
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
	ColorDarkGray
	ColorBlack
)

// Style combines foreground and background colors with text attributes.
type Style struct {
	Fg     Color
	Bg     Color
	Bold   bool
	Italic bool
}

// Plain is the zero style: default colors, no attributes.
var Plain = Style{}
