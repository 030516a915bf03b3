package common

// Vec is an integer displacement. +X is right, +Y is down.
type Vec struct {
	X, Y int
}

func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec) IsZero() bool  { return v.X == 0 && v.Y == 0 }

// Rect is an integer rectangle. Right and Bottom are X+W and Y+H, so a
// rect of width W touches W+1 pixel columns.
type Rect struct {
	X, Y int
	W, H int
}

func (r Rect) Left() int    { return r.X }
func (r Rect) Top() int     { return r.Y }
func (r Rect) Right() int   { return r.X + r.W }
func (r Rect) Bottom() int  { return r.Y + r.H }
func (r Rect) CenterX() int { return r.X + r.W/2 }
func (r Rect) CenterY() int { return r.Y + r.H/2 }
func (r Rect) Pos() Vec     { return Vec{X: r.X, Y: r.Y} }

func (r Rect) Move(v Vec) Rect {
	r.X += v.X
	r.Y += v.Y
	return r
}

func (r Rect) MoveTo(x, y int) Rect {
	r.X, r.Y = x, y
	return r
}

// Inset shrinks the rect by the given amount on each side.
func (r Rect) Inset(left, top, right, bottom int) Rect {
	return Rect{X: r.X + left, Y: r.Y + top, W: r.W - left - right, H: r.H - top - bottom}
}
