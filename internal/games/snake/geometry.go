package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Board geometry. The playfield is a fixed canvas cut into square tiles;
// positions are always expressed in tiles.
const (
	CanvasWidth  = 800
	CanvasHeight = 600
	TileSize     = 20

	GridWidth  = CanvasWidth / TileSize
	GridHeight = CanvasHeight / TileSize
)

// Speed tiers, expressed as the time between two ticks.
const (
	NormalSpeed = 100 * time.Millisecond // 10 ticks per second
	FastSpeed   = 50 * time.Millisecond  // 20 ticks per second
)

// Bounds returns the playable area in grid cells.
func Bounds() core.Rect {
	return core.NewRect(0, 0, GridWidth, GridHeight)
}
