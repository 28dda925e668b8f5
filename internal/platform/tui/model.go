package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Options tune the terminal front end.
type Options struct {
	Logger        *log.Logger
	ShowHelp      bool   // Reserve the bottom line for key help
	ScreenshotDir string // Where ctrl+s writes the board; empty disables it
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		config:     cfg,
		opts:       opts,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	w, h := m.boardSize(cfg.ScreenW, cfg.ScreenH)
	m.config.ScreenW, m.config.ScreenH = w, h
	m.screen = core.NewScreen(w, h)
	return m
}

// boardSize is the part of the terminal left to the game.
func (m Model) boardSize(width, height int) (int, int) {
	if m.opts.ShowHelp && height > 0 {
		height--
	}
	return width, height
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started",
		"game", m.game.ID(),
		"seed", m.config.Seed,
		"screen", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH),
	)
	return tickCmd(m.game.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize passes the new size on without resetting play.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	w, h := m.boardSize(msg.Width, msg.Height)
	m.config.ScreenW, m.config.ScreenH = w, h
	m.screen.Resize(w, h)
	m.help.Width = msg.Width
	m.game.Resize(w, h)
	m.logger.Debug("resize", "width", w, "height", h)
	return m, nil
}

// handleTick runs one simulation step and schedules the next one at the
// interval the game asks for now.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	switch {
	case m.gameState.GameOver && !wasOver:
		m.logger.Info("game over", "game", m.game.ID(), "score", m.gameState.Score)
	case !m.gameState.GameOver && wasOver:
		m.logger.Info("game restarted", "game", m.game.ID())
	}

	return m, tickCmd(m.game.TickInterval())
}

// saveScreenshot writes the current board as plain text.
func (m Model) saveScreenshot() (string, error) {
	if m.opts.ScreenshotDir == "" {
		return "", fmt.Errorf("screenshot directory not set")
	}
	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot directory: %w", err)
	}

	m.game.Render(m.screen)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.opts.ShowHelp {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

// Run starts the Bubble Tea program for game and blocks until it quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run %s: %w", game.ID(), err)
	}
	return nil
}
