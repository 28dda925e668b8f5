package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	glyphHead     = '@'
	glyphHeadDead = 'X'
	glyphBody     = 'o'
	glyphGrid     = '·'
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst,
			"Window too small",
			fmt.Sprintf("Need %dx%d, have %dx%d", MinScreenW, MinScreenH, dst.Width(), dst.Height()),
		)
		return
	}

	ox, oy := g.boardOrigin(dst)
	dst.DrawBox(core.NewRect(ox-1, oy-1, boardW, boardH), g.theme.Border)

	if g.theme.ShowGrid {
		for y := 0; y < GridHeight; y++ {
			for x := 0; x < GridWidth; x++ {
				dst.SetColored(ox+x, oy+y, glyphGrid, g.theme.Grid)
			}
		}
	}

	if food, ok := g.engine.Food(); ok {
		dst.SetColored(ox+food.Pos.X, oy+food.Pos.Y, food.Type.Glyph(), food.Type.Color())
	}

	g.renderSnake(dst, ox, oy)

	switch {
	case g.engine.GameOver():
		g.renderOverlay(dst,
			"Game Over",
			fmt.Sprintf("Your Score: %d", g.engine.Score()),
			"Press R to restart",
		)
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// boardOrigin returns the screen cell of grid cell (0, 0).
func (g *Game) boardOrigin(dst *core.Screen) (int, int) {
	return (dst.Width()-boardW)/2 + 1, hudHeight + 1
}

// renderHUD draws the top status line.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake — Score: %d  Length: %d", g.engine.Score(), visibleLength(g.engine.snake))
	if left := g.engine.BoostRemaining(); left > 0 {
		hud += fmt.Sprintf("  FAST %.1fs", left.Seconds())
	}
	dst.DrawTextColored(0, 0, hud, g.theme.Text)
}

// renderSnake draws the body tail first so the head ends up on top.
// Pending growth segments are off the board and are skipped.
func (g *Game) renderSnake(dst *core.Screen, ox, oy int) {
	bounds := Bounds()
	body := g.engine.snake
	for i := len(body) - 1; i >= 0; i-- {
		seg := body[i]
		if !bounds.Contains(seg.X, seg.Y) {
			continue
		}
		switch {
		case i > 0:
			dst.SetColored(ox+seg.X, oy+seg.Y, glyphBody, g.theme.Body)
		case g.engine.GameOver():
			dst.SetColored(ox+seg.X, oy+seg.Y, glyphHeadDead, g.theme.Head)
		default:
			dst.SetColored(ox+seg.X, oy+seg.Y, glyphHead, g.theme.Head)
		}
	}
}

// renderOverlay draws a centered box holding one line of text per row.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}
	boxW := maxLen + 4
	boxH := len(lines)*2 + 1
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, g.theme.Border)

	for i, line := range lines {
		dst.DrawTextCentered(boxY+1+i*2, line)
	}
}

// visibleLength counts the segments that are on the board.
func visibleLength(body []Position) int {
	n := 0
	for _, seg := range body {
		if !seg.IsOffGrid() {
			n++
		}
	}
	return n
}
