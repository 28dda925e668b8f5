package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorGreen)
	s.SetColored(5, 1, '@', core.Color(200))

	out := ansi.Strip(RenderScreen(s))

	assert.Equal(t, "abcd  \n     @", out)
	assert.Equal(t, s.String(), out)
}
