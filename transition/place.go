package transition

import (
	"fmt"

	"github.com/milk9111/worldtree/common"
)

// Sizer reports a room's size in tiles.
type Sizer interface {
	RoomSize(region int, room string) (width, height int, ok bool)
}

// Exit describes the tracked actor leaving a room.
type Exit struct {
	Region int
	Room   string
	Dir    Direction
	// Hitbox is in the source room's map space.
	Hitbox common.Rect
	// Camera is the source room's camera offset.
	Camera common.Vec
}

// Arrival is where the actor and camera end up in the destination room.
type Arrival struct {
	Edge   Edge
	Hitbox common.Rect
	Camera common.Vec
}

// ExitDirection reports which side of a w x h pixel room the hitbox center
// has crossed, if any.
func ExitDirection(hitbox common.Rect, w, h int) (Direction, bool) {
	cx, cy := hitbox.CenterX(), hitbox.CenterY()
	switch {
	case cx < 0:
		return Left, true
	case cx >= w:
		return Right, true
	case cy < 0:
		return Up, true
	case cy >= h:
		return Down, true
	}
	return 0, false
}

// BoundaryIndex is the tile index along the crossed edge, taken from the
// hitbox top-left corner, plus the pixel remainder within that tile.
func BoundaryIndex(hitbox common.Rect, dir Direction, tileSize int) (index, remainder int) {
	p := hitbox.Left()
	if dir.Horizontal() {
		p = hitbox.Top()
	}
	index = common.FloorDiv(p, tileSize)
	return index, p - index*tileSize
}

// Place positions the hitbox in a destW x destH tile room after leaving
// through edge. The perpendicular coordinate keeps its sub-tile remainder;
// the crossed axis snaps to the opposite side with the hitbox fully inside.
// The camera keeps the actor at the same place on screen where the room
// allows it.
func Place(exit Exit, edge Edge, destW, destH, tileSize int, viewport common.Vec) Arrival {
	index, rem := BoundaryIndex(exit.Hitbox, exit.Dir, tileSize)
	along := (index+edge.Offset)*tileSize + rem
	pw, ph := destW*tileSize, destH*tileSize

	hb := exit.Hitbox
	switch exit.Dir {
	case Left:
		hb = hb.MoveTo(pw-1-hb.W, along)
	case Right:
		hb = hb.MoveTo(0, along)
	case Up:
		hb = hb.MoveTo(along, ph-1-hb.H)
	case Down:
		hb = hb.MoveTo(along, 0)
	}

	onScreen := exit.Hitbox.Pos().Sub(exit.Camera)
	camera := hb.Pos().Sub(onScreen)
	camera.X = common.Clamp(camera.X, 0, max(0, pw-viewport.X))
	camera.Y = common.Clamp(camera.Y, 0, max(0, ph-viewport.Y))

	return Arrival{Edge: edge, Hitbox: hb, Camera: camera}
}

// Enter resolves the edge for exit and places the actor in the destination.
func (g *Graph) Enter(exit Exit, sizes Sizer, tileSize int, viewport common.Vec) (Arrival, error) {
	index, _ := BoundaryIndex(exit.Hitbox, exit.Dir, tileSize)
	edge, err := g.Resolve(exit.Region, exit.Room, exit.Dir, index)
	if err != nil {
		return Arrival{}, err
	}
	w, h, ok := sizes.RoomSize(edge.Region, edge.Dest)
	if !ok {
		return Arrival{}, fmt.Errorf("%w: destination %d/%s does not exist", ErrNoTransition, edge.Region, edge.Dest)
	}
	return Place(exit, edge, w, h, tileSize, viewport), nil
}
