package room

import "github.com/milk9111/worldtree/common"

// IsSupported reports whether a cell entered by moving hitbox one unit down
// has a solid top. Cells outside the grid never support.
func (r *Room) IsSupported(hitbox common.Rect) bool {
	below := hitbox.Move(common.Vec{Y: 1})
	for _, c := range r.enteredCells(hitbox, below) {
		if r.InBounds(c.Col, c.Row) && r.cells[c.Col][c.Row].Tile().SolidTop {
			return true
		}
	}
	return false
}

// IsTileSupported applies IsSupported to a single cell, which amounts to
// asking whether the cell below has a solid top.
func (r *Room) IsTileSupported(col, row int) bool {
	return r.IsSupported(r.RectForTile(col, row))
}
