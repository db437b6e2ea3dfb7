package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
// ColorDefault doubles as the "inherit" color carried by empty cells.
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

var colorNames = map[Color]string{
	ColorDefault:       "inherit",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "purple",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightRed:     "lightred",
	ColorBrightGreen:   "lightgreen",
	ColorBrightYellow:  "lightyellow",
	ColorBrightBlue:    "lightblue",
	ColorBrightMagenta: "pink",
	ColorBrightCyan:    "lightcyan",
	ColorBrightWhite:   "brightwhite",
	ColorOrange:        "orange",
	ColorGray:          "gray",
}

// String returns the color's config name.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseColor resolves a config color name. Returns false for unknown names.
func ParseColor(name string) (Color, bool) {
	for c, n := range colorNames {
		if n == name {
			return c, true
		}
	}
	return ColorDefault, false
}
