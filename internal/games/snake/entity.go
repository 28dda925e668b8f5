package snake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Position is a grid cell (column, row). It has no validity of its own;
// whether it is on the board depends on the bounds it is checked against.
type Position struct {
	X, Y int
}

// OffGrid marks a body segment that represents growth not yet resolved into
// a real trailing cell. It is never inside the board.
var OffGrid = Position{X: -1, Y: -1}

// Step returns the neighbouring cell in direction d.
func (p Position) Step(d Direction) Position {
	switch d {
	case DirUp:
		return Position{X: p.X, Y: p.Y - 1}
	case DirDown:
		return Position{X: p.X, Y: p.Y + 1}
	case DirLeft:
		return Position{X: p.X - 1, Y: p.Y}
	case DirRight:
		return Position{X: p.X + 1, Y: p.Y}
	default:
		return p
	}
}

// IsOffGrid reports whether p is the growth sentinel.
func (p Position) IsOffGrid() bool {
	return p == OffGrid
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return d
	}
}

// IsOpposite checks if two directions are opposite.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other && d != other
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// MarshalText lets directions appear by name in YAML snapshots.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// EffectKind tags the variant held by an Effect.
type EffectKind int

const (
	// EffectGrow appends Amount pending segments to the tail.
	EffectGrow EffectKind = iota
	// EffectSpeedBoost overrides the tick interval until Duration elapses.
	EffectSpeedBoost
)

// Effect is the consequence of eating a food. Only the fields of its Kind are meaningful.
type Effect struct {
	Kind     EffectKind
	Amount   int           // EffectGrow
	Interval time.Duration // EffectSpeedBoost: tick interval while active
	Duration time.Duration // EffectSpeedBoost: how long the boost lasts
}

// Grow builds a growth effect.
func Grow(n int) Effect {
	return Effect{Kind: EffectGrow, Amount: n}
}

// SpeedBoost builds a temporary tick interval override.
func SpeedBoost(interval, duration time.Duration) Effect {
	return Effect{Kind: EffectSpeedBoost, Interval: interval, Duration: duration}
}

func (e Effect) String() string {
	switch e.Kind {
	case EffectGrow:
		return fmt.Sprintf("grow +%d", e.Amount)
	case EffectSpeedBoost:
		return fmt.Sprintf("speed %s for %s", e.Interval, e.Duration)
	default:
		return "none"
	}
}

// FoodType is the closed set of foods that can appear on the board.
type FoodType int

const (
	FoodApple FoodType = iota
	FoodGoldenApple
	FoodGreen

	foodTypeCount
)

type foodTypeDef struct {
	name    string
	glyph   rune
	color   core.Color
	score   int
	effects []Effect
}

var foodTypeDefs = [foodTypeCount]foodTypeDef{
	FoodApple: {
		name:    "apple",
		glyph:   '●',
		color:   core.ColorRed,
		score:   1,
		effects: []Effect{Grow(1)},
	},
	FoodGoldenApple: {
		name:    "golden apple",
		glyph:   '◆',
		color:   core.ColorBrightYellow,
		score:   5,
		effects: []Effect{Grow(1), SpeedBoost(FastSpeed, 6*time.Second)},
	},
	FoodGreen: {
		name:    "green food",
		glyph:   '♣',
		color:   core.ColorBrightGreen,
		score:   10,
		effects: []Effect{Grow(5)},
	},
}

// FoodTypes returns every food variant in declaration order.
func FoodTypes() []FoodType {
	types := make([]FoodType, 0, foodTypeCount)
	for t := FoodType(0); t < foodTypeCount; t++ {
		types = append(types, t)
	}
	return types
}

func (t FoodType) def() foodTypeDef {
	if t < 0 || t >= foodTypeCount {
		return foodTypeDef{name: "unknown", glyph: '?'}
	}
	return foodTypeDefs[t]
}

// Score is the number of points awarded for eating this food.
func (t FoodType) Score() int { return t.def().score }

// Effects lists what eating this food does, in application order.
func (t FoodType) Effects() []Effect {
	return append([]Effect(nil), t.def().effects...)
}

// Color is the display colour of the food. The simulation never reads it.
func (t FoodType) Color() core.Color { return t.def().color }

// Glyph is the display character of the food.
func (t FoodType) Glyph() rune { return t.def().glyph }

func (t FoodType) String() string { return t.def().name }

// MarshalText lets food types appear by name in YAML snapshots.
func (t FoodType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Food is a piece of food on the board.
type Food struct {
	Pos  Position
	Type FoodType
}
