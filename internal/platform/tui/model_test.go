package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// stubGame records what the model asks of it.
type stubGame struct {
	resets   []core.RuntimeConfig
	steps    []core.InputFrame
	sizes    [][2]int
	interval time.Duration
	state    core.GameState
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) { g.resets = append(g.resets, cfg) }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a, ok := range in.Actions {
		if ok {
			frame.Set(a)
		}
	}
	g.steps = append(g.steps, frame)
	return core.StepResult{State: g.state, Advanced: true}
}

func (g *stubGame) TickInterval() time.Duration { return g.interval }
func (g *stubGame) Resize(w, h int)             { g.sizes = append(g.sizes, [2]int{w, h}) }
func (g *stubGame) State() core.GameState       { return g.state }

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func newTestModel(game *stubGame, opts Options) Model {
	return NewModel(game, core.RuntimeConfig{ScreenW: 50, ScreenH: 40, Seed: 9}, opts)
}

func TestModelInitResetsGame(t *testing.T) {
	game := &stubGame{interval: 100 * time.Millisecond}
	m := newTestModel(game, Options{ShowHelp: true})

	cmd := m.Init()

	require.NotNil(t, cmd)
	require.Len(t, game.resets, 1)
	assert.Equal(t, core.RuntimeConfig{ScreenW: 50, ScreenH: 39, Seed: 9}, game.resets[0],
		"help line is taken from the board")
}

func TestModelRandomSeedWhenUnset(t *testing.T) {
	m := NewModel(&stubGame{}, core.RuntimeConfig{ScreenW: 50, ScreenH: 40}, Options{})

	assert.NotZero(t, m.config.Seed)
}

func TestModelKeysReachNextTick(t *testing.T) {
	game := &stubGame{interval: 50 * time.Millisecond}
	var model tea.Model = newTestModel(game, Options{})

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	model, cmd := model.Update(TickMsg(time.Now()))
	require.NotNil(t, cmd)

	require.Len(t, game.steps, 1)
	assert.True(t, game.steps[0].Has(core.ActionUp))
	assert.True(t, game.steps[0].Has(core.ActionPause))

	_, _ = model.Update(TickMsg(time.Now()))
	require.Len(t, game.steps, 2)
	assert.Empty(t, game.steps[1].Actions, "input is cleared after each tick")
}

func TestModelQuit(t *testing.T) {
	var model tea.Model = newTestModel(&stubGame{}, Options{})

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, model.View())
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &stubGame{}
	var model tea.Model = newTestModel(game, Options{ShowHelp: true})

	model, _ = model.Update(tea.WindowSizeMsg{Width: 60, Height: 30})

	assert.Empty(t, game.resets, "resize never resets play")
	assert.Equal(t, [][2]int{{60, 29}}, game.sizes)
	assert.Equal(t, 60, model.(Model).screen.Width())
	assert.Equal(t, 29, model.(Model).screen.Height())
}

func TestModelViewShowsHelp(t *testing.T) {
	withHelp := newTestModel(&stubGame{}, Options{ShowHelp: true})
	without := newTestModel(&stubGame{}, Options{})

	assert.Contains(t, withHelp.View(), "quit")
	assert.NotContains(t, without.View(), "quit")
	assert.Contains(t, without.View(), "stub")
}

func TestModelScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	m := newTestModel(&stubGame{}, Options{ScreenshotDir: dir})

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Regexp(t, `^stub_\d{8}_\d{6}\.txt$`, entries[0].Name())

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "stub")
}

func TestModelScreenshotDisabled(t *testing.T) {
	m := newTestModel(&stubGame{}, Options{})

	_, err := m.saveScreenshot()

	assert.Error(t, err)
}
