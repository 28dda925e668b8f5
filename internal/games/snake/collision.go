package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// CollisionKind describes why a move is fatal.
type CollisionKind int

const (
	CollisionNone CollisionKind = iota
	CollisionWall
	CollisionSelf
)

func (c CollisionKind) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	default:
		return "unknown"
	}
}

// Collision classifies moving the head to head, given the body as it is
// before the move (index 0 is the current head).
//
// Every segment after the current head is checked, the tail included, even
// though the tail cell is about to be vacated when nothing is eaten. Moving
// into the outgoing tail cell is therefore fatal.
func Collision(head Position, bounds core.Rect, body []Position) CollisionKind {
	if !bounds.Contains(head.X, head.Y) {
		return CollisionWall
	}
	for i := 1; i < len(body); i++ {
		if body[i] == head {
			return CollisionSelf
		}
	}
	return CollisionNone
}

// IsFatal reports whether moving the head to head ends the game.
// Food never makes a move fatal.
func IsFatal(head Position, bounds core.Rect, body []Position) bool {
	return Collision(head, bounds, body) != CollisionNone
}

// MarshalText lets collision kinds appear by name in YAML snapshots.
func (c CollisionKind) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
