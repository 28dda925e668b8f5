package snake

import "time"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the observable game state for determinism tests and the
// headless simulator. Reading it never changes the game.
type Snapshot struct {
	Tick        uint64        `yaml:"tick"`
	Score       int           `yaml:"score"`
	SnakeLen    int           `yaml:"snake_len"`
	PendingGrow int           `yaml:"pending_grow"`
	Head        Position      `yaml:"head"`
	Dir         Direction     `yaml:"dir"`
	Food        Position      `yaml:"food"`
	FoodType    FoodType      `yaml:"food_type"`
	BoostLeft   time.Duration `yaml:"boost_left"`
	Collision   CollisionKind `yaml:"collision"`
	State       GameStateType `yaml:"state"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.engine == nil {
		return Snapshot{State: StatePlaying}
	}

	state := StatePlaying
	switch {
	case g.engine.GameOver():
		state = StateGameOver
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	return g.engine.snapshot(state)
}

func (e *Engine) snapshot(state GameStateType) Snapshot {
	pending := 0
	for _, seg := range e.snake {
		if seg.IsOffGrid() {
			pending++
		}
	}
	food, _ := e.Food()

	return Snapshot{
		Tick:        e.ticks,
		Score:       e.score,
		SnakeLen:    len(e.snake),
		PendingGrow: pending,
		Head:        e.Head(),
		Dir:         e.direction,
		Food:        food.Pos,
		FoodType:    food.Type,
		BoostLeft:   e.BoostRemaining(),
		Collision:   e.collision,
		State:       state,
	}
}
