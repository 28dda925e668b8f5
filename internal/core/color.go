package core

import (
	"fmt"
	"strings"
)

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
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

var colorNames = [...]string{
	ColorDefault:       "default",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightRed:     "bright_red",
	ColorBrightGreen:   "bright_green",
	ColorBrightYellow:  "bright_yellow",
	ColorBrightBlue:    "bright_blue",
	ColorBrightMagenta: "bright_magenta",
	ColorBrightCyan:    "bright_cyan",
	ColorBrightWhite:   "bright_white",
	ColorOrange:        "orange",
	ColorGray:          "gray",
}

// String returns the config name of the color.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

// ColorByName looks up a color by its config name (case-insensitive,
// "-" and "_" are interchangeable).
func ColorByName(name string) (Color, bool) {
	name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return ColorDefault, false
}

// MarshalText encodes the color by name, so configs stay readable.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a color name.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, ok := ColorByName(string(text))
	if !ok {
		return fmt.Errorf("unknown color %q", string(text))
	}
	*c = parsed
	return nil
}
