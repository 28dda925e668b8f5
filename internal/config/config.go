// Package config provides YAML-based configuration loading for the snake
// platform: colours, display toggles and logging. Gameplay constants are
// fixed in the game package and are not configurable.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Config is the full platform configuration.
type Config struct {
	Theme   ThemeConfig   `yaml:"theme"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

// ThemeConfig holds the colours used to draw the board.
// Food colours belong to the food types and are not themed.
type ThemeConfig struct {
	Head   core.Color `yaml:"head"`
	Body   core.Color `yaml:"body"`
	Border core.Color `yaml:"border"`
	Grid   core.Color `yaml:"grid"`
	Text   core.Color `yaml:"text"`
}

// DisplayConfig toggles optional parts of the screen.
type DisplayConfig struct {
	ShowGrid bool `yaml:"show_grid"` // Dot every empty cell
	ShowHelp bool `yaml:"show_help"` // Key help line under the board
}

// LogConfig controls the file logger. The terminal belongs to the game,
// so logs never go to stdout or stderr while playing.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty means ~/.snake/snake.log
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Theme.Head == c.Theme.Body && c.Theme.Head != core.ColorDefault {
		errs = append(errs, fmt.Errorf("theme: head and body share colour %s", c.Theme.Head))
	}
	return errors.Join(errs...)
}
