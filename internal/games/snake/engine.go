package snake

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
)

// Engine owns the simulation state and advances it one tick at a time.
//
// It is not safe for concurrent use: one caller drives Update, and readers
// must only look at the state between ticks.
type Engine struct {
	snake     []Position // Head at index 0
	food      Food
	hasFood   bool
	direction Direction
	score     int
	gameOver  bool
	collision CollisionKind
	ticks     uint64

	interval   time.Duration
	boostUntil time.Time

	rng    *rand.Rand
	clock  clockwork.Clock
	logger *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used for food placement.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithSeed seeds a new random source used for food placement.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithClock sets the monotonic clock used for speed boost expiry.
func WithClock(clock clockwork.Clock) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// WithLogger sets the logger. The engine logs nothing by default.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine in its starting configuration.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		clock:  clockwork.NewRealClock(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.Reset()
	return e
}

// Reset discards the current game and starts a new one: a three segment
// snake centred on the board heading right, fresh food, score 0, normal speed.
func (e *Engine) Reset() {
	cx, cy := Bounds().Center()
	e.snake = []Position{
		{X: cx, Y: cy}, // Head
		{X: cx - 1, Y: cy},
		{X: cx - 2, Y: cy},
	}
	e.direction = DirRight
	e.score = 0
	e.gameOver = false
	e.collision = CollisionNone
	e.ticks = 0
	e.interval = NormalSpeed
	e.boostUntil = time.Time{}
	e.spawnFood()
}

// Update advances the simulation by one step. It does nothing once the game is over.
//
// A fatal move ends the game and leaves the snake exactly as it was before the
// move. Otherwise the new head is committed; eating keeps the tail (and applies
// the food's effects), not eating drops it.
func (e *Engine) Update() {
	if e.gameOver || len(e.snake) == 0 {
		return
	}
	e.ticks++

	head := e.snake[0].Step(e.direction)
	if kind := Collision(head, Bounds(), e.snake); kind != CollisionNone {
		e.gameOver = true
		e.collision = kind
		e.logger.Info("game over",
			"cause", kind,
			"score", e.score,
			"length", len(e.snake),
			"tick", e.ticks,
		)
		return
	}

	e.snake = append(e.snake, Position{})
	copy(e.snake[1:], e.snake)
	e.snake[0] = head

	if e.hasFood && head == e.food.Pos {
		e.consumeFood()
		return
	}
	e.snake = e.snake[:len(e.snake)-1]
}

// consumeFood scores the current food, applies its effects and places a new one.
func (e *Engine) consumeFood() {
	eaten := e.food
	e.score += eaten.Type.Score()
	for _, eff := range eaten.Type.Effects() {
		ApplyEffect(eff, e)
	}
	e.spawnFood()

	e.logger.Debug("food eaten",
		"type", eaten.Type,
		"at", eaten.Pos,
		"score", e.score,
		"length", len(e.snake),
	)
}

func (e *Engine) spawnFood() {
	e.food, e.hasFood = Spawn(e.snake, GridWidth, GridHeight, e.rng)
	if !e.hasFood {
		e.logger.Warn("no free cell for food", "length", len(e.snake))
	}
}

// GrowSnake appends n pending segments to the tail. They sit off the board
// and drop off one per tick while the snake moves without eating, so the
// visible growth lags the meal.
func (e *Engine) GrowSnake(n int) {
	for iter := 0; iter < n; iter++ {
		e.snake = append(e.snake, OffGrid)
	}
}

// SetSpeed overrides the tick interval until duration has passed on the
// engine clock. A new call replaces any running boost.
func (e *Engine) SetSpeed(interval, duration time.Duration) {
	e.interval = interval
	e.boostUntil = e.clock.Now().Add(duration)
}

// CurrentTickInterval returns how long the driver should wait before the next
// Update. An expired boost is cleared here, on read.
func (e *Engine) CurrentTickInterval() time.Duration {
	if e.clock.Now().After(e.boostUntil) {
		e.interval = NormalSpeed
	}
	return e.interval
}

// BoostRemaining returns the time left on the active speed boost, or zero.
// Unlike CurrentTickInterval it never changes state.
func (e *Engine) BoostRemaining() time.Duration {
	now := e.clock.Now()
	if now.After(e.boostUntil) {
		return 0
	}
	return e.boostUntil.Sub(now)
}

// SetDirection sets the direction used by the next Update. Filtering out
// reversals is the caller's job; any value is accepted.
func (e *Engine) SetDirection(d Direction) {
	e.direction = d
}

// Direction returns the current direction.
func (e *Engine) Direction() Direction {
	return e.direction
}

// Snake returns a copy of the body, head first. Pending growth shows up as
// OffGrid segments at the tail.
func (e *Engine) Snake() []Position {
	return append([]Position(nil), e.snake...)
}

// Length returns the number of body segments, pending ones included.
func (e *Engine) Length() int {
	return len(e.snake)
}

// Head returns the head cell.
func (e *Engine) Head() Position {
	if len(e.snake) == 0 {
		return OffGrid
	}
	return e.snake[0]
}

// Food returns the current food. ok is false when the board had no free cell.
func (e *Engine) Food() (food Food, ok bool) {
	return e.food, e.hasFood
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// GameOver reports whether a fatal collision has ended the game.
func (e *Engine) GameOver() bool {
	return e.gameOver
}

// LastCollision returns what ended the game, or CollisionNone while active.
func (e *Engine) LastCollision() CollisionKind {
	return e.collision
}

// Ticks returns the number of updates run since the last reset.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}
