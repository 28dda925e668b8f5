package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme: ThemeConfig{
			Head:   core.ColorBrightCyan,
			Body:   core.ColorCyan,
			Border: core.ColorBrightWhite,
			Grid:   core.ColorGray,
			Text:   core.ColorWhite,
		},
		Display: DisplayConfig{
			ShowGrid: true,
			ShowHelp: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
