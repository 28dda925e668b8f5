// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, and pacing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a command that fires one tick after interval.
// The game picks the interval again after every step, so speed boosts
// take effect on the next tick.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
