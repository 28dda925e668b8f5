package snake

import "time"

// EffectTarget is the mutable game state an effect acts on.
// The Engine implements it.
type EffectTarget interface {
	GrowSnake(n int)
	SetSpeed(interval, duration time.Duration)
}

// ApplyEffect performs eff against target. It runs synchronously and exactly
// once per consumed food effect; unknown kinds do nothing.
func ApplyEffect(eff Effect, target EffectTarget) {
	switch eff.Kind {
	case EffectGrow:
		target.GrowSnake(eff.Amount)
	case EffectSpeedBoost:
		target.SetSpeed(eff.Interval, eff.Duration)
	}
}
