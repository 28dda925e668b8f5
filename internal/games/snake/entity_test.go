package snake

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGridGeometry(t *testing.T) {
	assert.Equal(t, 40, GridWidth)
	assert.Equal(t, 30, GridHeight)

	b := Bounds()
	assert.Equal(t, GridWidth, b.W)
	assert.Equal(t, GridHeight, b.H)
	assert.False(t, b.Contains(OffGrid.X, OffGrid.Y))
}

func TestPositionStep(t *testing.T) {
	p := Position{X: 5, Y: 5}

	assert.Equal(t, Position{X: 5, Y: 4}, p.Step(DirUp))
	assert.Equal(t, Position{X: 5, Y: 6}, p.Step(DirDown))
	assert.Equal(t, Position{X: 4, Y: 5}, p.Step(DirLeft))
	assert.Equal(t, Position{X: 6, Y: 5}, p.Step(DirRight))
	assert.Equal(t, p, p.Step(Direction(42)), "unknown direction stays put")
}

func TestDirectionOpposite(t *testing.T) {
	pairs := [][2]Direction{
		{DirUp, DirDown},
		{DirLeft, DirRight},
	}
	for _, pair := range pairs {
		a, b := pair[0], pair[1]
		assert.Equal(t, b, a.Opposite())
		assert.Equal(t, a, b.Opposite())
		assert.True(t, a.IsOpposite(b), "%s vs %s", a, b)
		assert.True(t, b.IsOpposite(a), "%s vs %s", b, a)
	}

	assert.False(t, DirUp.IsOpposite(DirUp))
	assert.False(t, DirUp.IsOpposite(DirLeft))
	assert.False(t, Direction(42).IsOpposite(Direction(42)))
}

func TestFoodTypes(t *testing.T) {
	tests := []struct {
		food    FoodType
		score   int
		effects []Effect
	}{
		{FoodApple, 1, []Effect{Grow(1)}},
		{FoodGoldenApple, 5, []Effect{Grow(1), SpeedBoost(FastSpeed, 6*time.Second)}},
		{FoodGreen, 10, []Effect{Grow(5)}},
	}

	assert.Equal(t, []FoodType{FoodApple, FoodGoldenApple, FoodGreen}, FoodTypes())

	for _, tc := range tests {
		t.Run(tc.food.String(), func(t *testing.T) {
			assert.Equal(t, tc.score, tc.food.Score())
			assert.Equal(t, tc.effects, tc.food.Effects())
			assert.NotEqual(t, '?', tc.food.Glyph())
		})
	}
}

func TestFoodTypeEffectsAreCopies(t *testing.T) {
	effects := FoodGreen.Effects()
	effects[0].Amount = 100

	assert.Equal(t, 5, FoodGreen.Effects()[0].Amount)
}

func TestUnknownFoodType(t *testing.T) {
	unknown := FoodType(99)
	assert.Equal(t, "unknown", unknown.String())
	assert.Zero(t, unknown.Score())
	assert.Empty(t, unknown.Effects())
}

func TestEffectString(t *testing.T) {
	assert.Equal(t, "grow +5", Grow(5).String())
	assert.Equal(t, "speed 50ms for 6s", SpeedBoost(FastSpeed, 6*time.Second).String())
}
