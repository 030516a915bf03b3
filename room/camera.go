package room

import "github.com/milk9111/worldtree/common"

func (r *Room) Offset() common.Vec { return r.offset }

// MaxOffset is the largest camera offset that still keeps the viewport
// inside the room. It is zero on an axis where the room is smaller.
func (r *Room) MaxOffset() common.Vec {
	return common.Vec{
		X: max(0, r.PixelWidth()-r.cfg.Viewport.W),
		Y: max(0, r.PixelHeight()-r.cfg.Viewport.H),
	}
}

// SetOffset moves the camera, clamped to the room.
func (r *Room) SetOffset(v common.Vec) {
	maxOff := r.MaxOffset()
	v.X = common.Clamp(v.X, 0, maxOff.X)
	v.Y = common.Clamp(v.Y, 0, maxOff.Y)
	if v != r.offset {
		r.offset = v
		r.dirty = true
	}
}

// CenterOn points the camera at the center of a map-space rect.
func (r *Room) CenterOn(mapRect common.Rect) {
	r.SetOffset(common.Vec{
		X: mapRect.CenterX() - r.cfg.Viewport.W/2,
		Y: mapRect.CenterY() - r.cfg.Viewport.H/2,
	})
}

// Scroll keeps the tracked screen rect inside the viewport margins. The
// returned vector must be applied to every screen-space rect in the room.
func (r *Room) Scroll(tracked common.Rect) common.Vec {
	local := tracked.Move(common.Vec{X: -r.cfg.Viewport.X, Y: -r.cfg.Viewport.Y})
	maxOff := r.MaxOffset()
	s := common.Vec{
		X: scrollAxis(local.CenterX(), r.cfg.Viewport.W, r.cfg.Margin.X, r.offset.X, maxOff.X),
		Y: scrollAxis(local.CenterY(), r.cfg.Viewport.H, r.cfg.Margin.Y, r.offset.Y, maxOff.Y),
	}
	if s.IsZero() {
		return s
	}
	r.offset = r.offset.Sub(s)
	r.dirty = true
	return s
}

func scrollAxis(center, size, margin, offset, maxOff int) int {
	switch {
	case center < margin && offset > 0:
		return min(margin-center, offset)
	case center > size-margin && offset < maxOff:
		return -min(center-(size-margin), maxOff-offset)
	}
	return 0
}

// Dirty reports whether the room needs a full redraw.
func (r *Room) Dirty() bool { return r.dirty }

func (r *Room) ClearDirty() { r.dirty = false }
