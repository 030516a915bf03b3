package room

import (
	"github.com/milk9111/worldtree/common"
	"github.com/zyedidia/generic/mapset"
)

// AttemptMove returns v corrected so that m does not pass into any solid
// side. Each axis is clamped independently; when several tiles clamp the
// same axis the smallest displacement wins.
func (r *Room) AttemptMove(m Mover, v common.Vec) common.Vec {
	if v.IsZero() {
		return v
	}
	hb := m.Hitbox()
	dest := hb.Move(v)
	player := m.IsPlayer()

	out := v
	for _, c := range r.enteredCells(hb, dest) {
		t := r.tileFor(c.Col, c.Row, player)
		if t.IsOpen() {
			continue
		}
		cr := r.RectForTile(c.Col, c.Row)
		if t.SolidTop && hb.Bottom() < cr.Top() && dest.Bottom() >= cr.Top() {
			out.Y = restrict(out.Y, cr.Top()-hb.Bottom()-1)
		}
		if t.SolidBottom && hb.Top() > cr.Bottom() && dest.Top() <= cr.Bottom() {
			out.Y = restrict(out.Y, cr.Bottom()-hb.Top()+1)
		}
		if t.SolidLeft && hb.Right() < cr.Left() && dest.Right() >= cr.Left() {
			out.X = restrict(out.X, cr.Left()-hb.Right()-1)
		}
		if t.SolidRight && hb.Left() > cr.Right() && dest.Left() <= cr.Right() {
			out.X = restrict(out.X, cr.Right()-hb.Left()+1)
		}
	}
	return out
}

// IsMoveLegal reports whether v passes through unmodified.
func (r *Room) IsMoveLegal(m Mover, v common.Vec) bool {
	return r.AttemptMove(m, v) == v
}

// enteredCells returns the cells dest overlaps that hb does not.
func (r *Room) enteredCells(hb, dest common.Rect) []Cell {
	old := mapset.New[Cell]()
	for _, c := range r.TilesForRect(hb) {
		old.Put(c)
	}
	var out []Cell
	for _, c := range r.TilesForRect(dest) {
		if !old.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func restrict(cur, limit int) int {
	if common.Abs(limit) < common.Abs(cur) {
		return limit
	}
	return cur
}
