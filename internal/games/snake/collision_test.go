package snake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollisionWalls(t *testing.T) {
	body := []Position{{X: 10, Y: 10}}

	tests := []struct {
		name  string
		head  Position
		fatal bool
	}{
		{"left of column 0", Position{X: -1, Y: 5}, true},
		{"right of last column", Position{X: GridWidth, Y: 5}, true},
		{"above row 0", Position{X: 5, Y: -1}, true},
		{"below last row", Position{X: 5, Y: GridHeight}, true},
		{"top-left cell", Position{X: 0, Y: 0}, false},
		{"bottom-right cell", Position{X: GridWidth - 1, Y: GridHeight - 1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.fatal, IsFatal(tc.head, Bounds(), body))
			if tc.fatal {
				assert.Equal(t, CollisionWall, Collision(tc.head, Bounds(), body))
			}
		})
	}
}

func TestCollisionSelf(t *testing.T) {
	// Head at (5,5), body wraps down and back left.
	body := []Position{
		{X: 5, Y: 5},
		{X: 6, Y: 5},
		{X: 6, Y: 6},
		{X: 5, Y: 6}, // Tail
	}

	tests := []struct {
		name string
		head Position
		want CollisionKind
	}{
		{"into neck", Position{X: 6, Y: 5}, CollisionSelf},
		{"into middle", Position{X: 6, Y: 6}, CollisionSelf},
		{"into outgoing tail cell", Position{X: 5, Y: 6}, CollisionSelf},
		{"free cell", Position{X: 4, Y: 5}, CollisionNone},
		{"current head cell is not checked", Position{X: 5, Y: 5}, CollisionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Collision(tc.head, Bounds(), body))
		})
	}
}

func TestCollisionIgnoresPendingGrowth(t *testing.T) {
	body := []Position{{X: 0, Y: 0}, {X: 1, Y: 0}, OffGrid, OffGrid}

	assert.False(t, IsFatal(Position{X: 0, Y: 1}, Bounds(), body))
}

func TestCollisionKindString(t *testing.T) {
	assert.Equal(t, "wall", CollisionWall.String())
	assert.Equal(t, "self", CollisionSelf.String())
	assert.Equal(t, "none", CollisionNone.String())
}
