package room

import (
	"testing"

	"github.com/milk9111/worldtree/common"
	"github.com/milk9111/worldtree/tile"
	"github.com/stretchr/testify/assert"
)

func TestAttemptMoveLandsOnTopSolidTile(t *testing.T) {
	d := newData(6, 8)
	set(d, 2, 5, tile.BoundTop)
	r := build(t, d)

	top := r.RectForTile(2, 5).Top()
	hb := common.Rect{X: 2*ts + 5, Y: top - 20, W: 30, H: 10}
	got := r.AttemptMove(mover{hb: hb}, common.Vec{Y: 10})
	assert.Equal(t, common.Vec{Y: top - hb.Bottom() - 1}, got)
	assert.Equal(t, top-1, hb.Move(got).Bottom())
}

func TestAttemptMoveNeverSinksIntoTopSolidTile(t *testing.T) {
	d := newData(6, 8)
	set(d, 2, 5, tile.BoundTop)
	set(d, 3, 5, tile.BoundTop)
	r := build(t, d)
	top := r.RectForTile(2, 5).Top()

	for dy := 1; dy <= 60; dy++ {
		for gap := 1; gap <= 12; gap++ {
			hb := common.Rect{X: 2*ts + 10, Y: top - gap - 40, W: 40, H: 40}
			got := r.AttemptMove(mover{hb: hb}, common.Vec{X: 3, Y: dy})
			assert.LessOrEqual(t, hb.Move(got).Bottom(), top-1, "dy=%d gap=%d", dy, gap)
			assert.Equal(t, 3, got.X)
		}
	}
}

func TestAttemptMoveOpenTilesPassThrough(t *testing.T) {
	r := build(t, newData(10, 10))
	hb := common.Rect{X: 100, Y: 100, W: 40, H: 60}
	for _, v := range []common.Vec{{X: 7, Y: 0}, {X: -9, Y: 4}, {X: 0, Y: -10}, {X: 10, Y: 10}} {
		assert.Equal(t, v, r.AttemptMove(mover{hb: hb}, v))
		assert.True(t, r.IsMoveLegal(mover{hb: hb}, v))
	}
}

func TestAttemptMoveDirectionalSides(t *testing.T) {
	d := newData(10, 10)
	set(d, 5, 5, tile.BoundLeft|tile.BoundRight|tile.BoundBottom)
	r := build(t, d)
	cell := r.RectForTile(5, 5)

	tests := []struct {
		name string
		hb   common.Rect
		v    common.Vec
		want common.Vec
	}{
		{
			name: "moving right into solid left",
			hb:   common.Rect{X: cell.Left() - 12, Y: cell.Top() + 5, W: 10, H: 10},
			v:    common.Vec{X: 8},
			want: common.Vec{X: 1},
		},
		{
			name: "moving left into solid right",
			hb:   common.Rect{X: cell.Right() + 4, Y: cell.Top() + 5, W: 10, H: 10},
			v:    common.Vec{X: -8},
			want: common.Vec{X: -3},
		},
		{
			name: "moving up into solid bottom",
			hb:   common.Rect{X: cell.Left() + 5, Y: cell.Bottom() + 6, W: 10, H: 10},
			v:    common.Vec{Y: -10},
			want: common.Vec{Y: -5},
		},
		{
			name: "falling onto a tile without a solid top",
			hb:   common.Rect{X: cell.Left() + 5, Y: cell.Top() - 15, W: 10, H: 10},
			v:    common.Vec{Y: 10},
			want: common.Vec{Y: 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.AttemptMove(mover{hb: tt.hb}, tt.v))
		})
	}
}

func TestAttemptMoveIgnoresCellsDestinationSkips(t *testing.T) {
	d := newData(6, 6)
	set(d, 1, 2, tile.BoundTop)
	r := build(t, d)

	// Starts in cell (1,1) and ends in column 2; (1,2) is only under the
	// diagonal path, never under the destination.
	hb := common.Rect{X: 58, Y: 66, W: 20, H: 20}
	assert.Equal(t, common.Vec{X: 40, Y: 20}, r.AttemptMove(mover{hb: hb}, common.Vec{X: 40, Y: 20}))

	// Straight down the destination does land on it.
	assert.Equal(t, common.Vec{Y: 2*ts - hb.Bottom() - 1}, r.AttemptMove(mover{hb: hb}, common.Vec{Y: 20}))
}

func TestAttemptMoveMostRestrictiveClampWins(t *testing.T) {
	d := newData(10, 10)
	set(d, 3, 4, tile.BoundTop)
	set(d, 4, 5, tile.BoundTop)
	r := build(t, d)

	// Straddles columns 3 and 4; the row-4 tile is nearer.
	hb := common.Rect{X: 3*ts + 20, Y: 4*ts - 30, W: 40, H: 20}
	got := r.AttemptMove(mover{hb: hb}, common.Vec{Y: 60})
	assert.Equal(t, 4*ts-hb.Bottom()-1, got.Y)
}

func TestAttemptMoveOutOfBoundsPolicy(t *testing.T) {
	r := build(t, newData(5, 5))
	hb := common.Rect{X: 3, Y: 100, W: 20, H: 20}

	enemy := r.AttemptMove(mover{hb: hb}, common.Vec{X: -10})
	assert.Equal(t, common.Vec{X: -3}, enemy)

	player := r.AttemptMove(mover{hb: hb, player: true}, common.Vec{X: -10})
	assert.Equal(t, common.Vec{X: -10}, player)
}
