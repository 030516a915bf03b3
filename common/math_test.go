package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{0, 48, 0},
		{47, 48, 0},
		{48, 48, 1},
		{-1, 48, -1},
		{-48, 48, -1},
		{-49, 48, -2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FloorDiv(tt.a, tt.b), "%d / %d", tt.a, tt.b)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(5, 0, 10))
	assert.Equal(t, 0, Clamp(-3, 0, 10))
	assert.Equal(t, 10, Clamp(12, 0, 10))
	// Rooms smaller than the viewport have hi < lo.
	assert.Equal(t, 0, Clamp(7, 0, -100))
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	assert.Equal(t, 40, r.Right())
	assert.Equal(t, 60, r.Bottom())
	assert.Equal(t, 25, r.CenterX())
	assert.Equal(t, Rect{X: 11, Y: 21, W: 28, H: 38}, r.Inset(1, 1, 1, 1))
	assert.Equal(t, Rect{X: 13, Y: 16, W: 30, H: 40}, r.Move(Vec{X: 3, Y: -4}))
}
