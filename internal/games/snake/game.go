package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Screen layout: one HUD line above the bordered board.
const (
	hudHeight = 1
	boardW    = GridWidth + 2
	boardH    = GridHeight + 2

	// MinScreenW and MinScreenH are the smallest screen the board fits on.
	MinScreenW = boardW
	MinScreenH = boardH + hudHeight
)

// Theme holds the colours used to draw the snake and the board.
type Theme struct {
	Head     core.Color
	Body     core.Color
	Border   core.Color
	Grid     core.Color
	Text     core.Color
	ShowGrid bool
}

// DefaultTheme returns the theme of the built-in configuration.
func DefaultTheme() Theme {
	return ThemeFromConfig(config.Default())
}

// ThemeFromConfig extracts the board theme from the platform configuration.
func ThemeFromConfig(cfg config.Config) Theme {
	return Theme{
		Head:     cfg.Theme.Head,
		Body:     cfg.Theme.Body,
		Border:   cfg.Theme.Border,
		Grid:     cfg.Theme.Grid,
		Text:     cfg.Theme.Text,
		ShowGrid: cfg.Display.ShowGrid,
	}
}

// Game adapts the Engine to the platform: it filters input, handles pause
// and restart, paces itself through the engine's tick interval and draws
// the board.
type Game struct {
	engine *Engine
	opts   []Option
	rng    *rand.Rand // Seeds restarts
	theme  Theme

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates a Snake game. opts are passed to every Engine it builds;
// the seed always comes from the RuntimeConfig given to Reset.
func New(theme Theme, opts ...Option) *Game {
	return &Game{
		theme: theme,
		opts:  opts,
	}
}

func init() {
	registry.Register("snake", func(env registry.Env) registry.Game {
		return New(ThemeFromConfig(env.Config), WithLogger(env.Logger))
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset starts a new game seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	opts := append(append([]Option(nil), g.opts...), WithSeed(g.rng.Int63()))
	g.engine = NewEngine(opts...)
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Engine exposes the simulation for read-only inspection.
func (g *Game) Engine() *Engine {
	return g.engine
}

// RequestDirection turns the snake unless d reverses the current direction.
// It reports whether the request was taken.
func (g *Game) RequestDirection(d Direction) bool {
	if g.engine == nil || d.IsOpposite(g.engine.Direction()) {
		return false
	}
	g.engine.SetDirection(d)
	return true
}

// RequestReset throws the current game away and starts a fresh one.
func (g *Game) RequestReset() {
	if g.engine == nil {
		return
	}
	g.engine.Reset()
	g.paused = false
}

// Resize records the new screen size. Play pauses on its own while the
// board does not fit and resumes when it does.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.tooSmall = width < MinScreenW || height < MinScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.engine == nil {
		return core.StepResult{}
	}

	if input.Has(core.ActionRestart) && g.engine.GameOver() {
		g.RequestReset()
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.engine.GameOver() {
		g.paused = !g.paused
	}

	if g.engine.GameOver() || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)
	g.engine.Update()

	return core.StepResult{State: g.State(), Advanced: true}
}

// processInput handles direction changes. One turn per tick; when several
// direction keys arrive together the first match below wins.
func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.RequestDirection(DirUp)
	case input.Has(core.ActionDown):
		g.RequestDirection(DirDown)
	case input.Has(core.ActionLeft):
		g.RequestDirection(DirLeft)
	case input.Has(core.ActionRight):
		g.RequestDirection(DirRight)
	}
}

// TickInterval returns the engine's current pacing.
func (g *Game) TickInterval() time.Duration {
	if g.engine == nil {
		return NormalSpeed
	}
	return g.engine.CurrentTickInterval()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.GameOver(),
		Paused:   g.paused,
	}
}
