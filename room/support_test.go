package room

import (
	"testing"

	"github.com/milk9111/worldtree/common"
	"github.com/milk9111/worldtree/tile"
	"github.com/stretchr/testify/assert"
)

func TestIsSupported(t *testing.T) {
	d := newData(6, 6)
	set(d, 1, 4, tile.BoundTop)
	set(d, 3, 4, tile.BoundBottom)
	r := build(t, d)
	top := 4 * ts

	tests := []struct {
		name string
		hb   common.Rect
		want bool
	}{
		{"resting on solid top", common.Rect{X: ts + 4, Y: top - 31, W: 20, H: 30}, true},
		{"one pixel above", common.Rect{X: ts + 4, Y: top - 32, W: 20, H: 30}, false},
		{"over open space", common.Rect{X: 2*ts + 4, Y: top - 31, W: 20, H: 30}, false},
		{"over a bottom-only tile", common.Rect{X: 3*ts + 4, Y: top - 31, W: 20, H: 30}, false},
		{"below the grid", common.Rect{X: ts, Y: 6*ts - 31, W: 20, H: 30}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.IsSupported(tt.hb))
		})
	}
}

func TestIsTileSupported(t *testing.T) {
	d := newData(6, 6)
	set(d, 2, 5, tile.BoundTop)
	r := build(t, d)
	assert.True(t, r.IsTileSupported(2, 4))
	assert.False(t, r.IsTileSupported(3, 4))
	assert.False(t, r.IsTileSupported(2, 5))
}

func TestFallingLandsAndIsSupported(t *testing.T) {
	d := newData(6, 6)
	set(d, 1, 4, tile.BoundTop)
	r := build(t, d)

	hb := common.Rect{X: ts + 4, Y: 4*ts - 3 - 30, W: 20, H: 30}
	got := r.AttemptMove(mover{hb: hb}, common.Vec{Y: 5})
	assert.Equal(t, 2, got.Y)
	assert.True(t, r.IsSupported(hb.Move(got)))
}
