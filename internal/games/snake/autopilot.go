package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// NextDirection picks a greedy move for the headless simulator: among the
// turns the player could make, the non-fatal one closest to the food.
// It keeps the current direction when every option is fatal.
func NextDirection(e *Engine) Direction {
	current := e.Direction()
	head := e.Head()
	food, hasFood := e.Food()

	best := current
	bestDist := -1
	for _, d := range []Direction{current, DirUp, DirRight, DirDown, DirLeft} {
		if d.IsOpposite(current) {
			continue
		}
		next := head.Step(d)
		if IsFatal(next, Bounds(), e.snake) {
			continue
		}
		dist := 0
		if hasFood {
			dist = core.Abs(food.Pos.X-next.X) + core.Abs(food.Pos.Y-next.Y)
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best
}
