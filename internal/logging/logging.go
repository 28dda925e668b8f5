// Package logging builds the application logger. Bubble Tea owns the
// terminal while a game runs, so the logger writes to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Prefix tags every line written by the application.
const Prefix = "snake"

// New opens the log file named by cfg (default ~/.snake/snake.log) and
// returns a logger writing to it together with a function that closes it.
func New(cfg config.LogConfig) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	path := cfg.File
	if path == "" {
		path = config.UserPath("snake.log")
	}
	if path == "" {
		return NewWriter(io.Discard, level), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	return NewWriter(f, level), f.Close, nil
}

// NewWriter returns a logger writing to w at the given level.
func NewWriter(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           level,
	})
}
