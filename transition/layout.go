package transition

import "github.com/milk9111/worldtree/common"

// Layout places the rooms of one region on a shared tile grid, with start
// at the origin. Rooms are reached breadth-first through same-region edges;
// each edge's offset fixes the relative position of the two rooms. Rooms
// that cannot be reached from start are left out.
func (g *Graph) Layout(region int, start string, sizes Sizer) map[string]common.Vec {
	if _, _, ok := sizes.RoomSize(region, start); !ok {
		return nil
	}
	layout := map[string]common.Vec{start: {}}
	queue := []string{start}

	for len(queue) > 0 {
		room := queue[0]
		queue = queue[1:]
		pos := layout[room]
		rw, rh, _ := sizes.RoomSize(region, room)

		for _, dir := range []Direction{Left, Right, Up, Down} {
			for _, e := range g.Edges(region, room, dir) {
				if e.Region != region {
					continue
				}
				if _, placed := layout[e.Dest]; placed {
					continue
				}
				dw, dh, ok := sizes.RoomSize(region, e.Dest)
				if !ok {
					continue
				}
				var p common.Vec
				switch dir {
				case Left:
					p = common.Vec{X: pos.X - dw, Y: pos.Y - e.Offset}
				case Right:
					p = common.Vec{X: pos.X + rw, Y: pos.Y - e.Offset}
				case Up:
					p = common.Vec{X: pos.X - e.Offset, Y: pos.Y - dh}
				case Down:
					p = common.Vec{X: pos.X - e.Offset, Y: pos.Y + rh}
				}
				layout[e.Dest] = p
				queue = append(queue, e.Dest)
			}
		}
	}
	return layout
}
