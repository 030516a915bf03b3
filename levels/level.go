package levels

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrMalformedRoom = errors.New("levels: malformed room")
	ErrUnknownRoom   = errors.New("levels: unknown room")
)

// Room is the on-disk description of one room. Layout, Bounds and Mapcodes
// are row-major: Layout[row][col].
type Room struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Tileset    string  `json:"tileset"`
	Layout     [][]int `json:"layout"`
	Bounds     [][]int `json:"bounds"`
	Mapcodes   [][]int `json:"mapcodes"`
	Music      string  `json:"music,omitempty"`
	Background string  `json:"background,omitempty"`
	// Source names a TMX file that supplies the grids instead.
	Source string `json:"source,omitempty"`
}

// Region is one region file: a named set of rooms.
type Region struct {
	ID    int              `json:"region"`
	Name  string           `json:"name"`
	Start string           `json:"start"`
	Rooms map[string]*Room `json:"rooms"`
}

// Edge is one exit range on one side of a room.
type Edge struct {
	First  int    `json:"first"`
	Last   int    `json:"last"`
	Region int    `json:"region"`
	Dest   string `json:"dest"`
	Offset int    `json:"offset"`
}

// Transitions maps region -> room -> direction name -> ordered edges.
type Transitions map[int]map[string]map[string][]Edge

// World is every region plus the transition table.
type World struct {
	Regions     map[int]*Region
	Transitions Transitions
}

func (w *World) Room(region int, name string) (*Room, error) {
	reg, ok := w.Regions[region]
	if !ok {
		return nil, fmt.Errorf("%w: region %d", ErrUnknownRoom, region)
	}
	room, ok := reg.Rooms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %d/%s", ErrUnknownRoom, region, name)
	}
	return room, nil
}

// RoomSize reports a room's size in tiles.
func (w *World) RoomSize(region int, name string) (width, height int, ok bool) {
	room, err := w.Room(region, name)
	if err != nil {
		return 0, 0, false
	}
	return room.Width, room.Height, true
}

// RegionIDs returns the loaded region ids in ascending order.
func (w *World) RegionIDs() []int {
	ids := make([]int, 0, len(w.Regions))
	for id := range w.Regions {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// RoomNames returns the room names of a region in ascending order.
func (w *World) RoomNames(region int) []string {
	reg, ok := w.Regions[region]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(reg.Rooms))
	for name := range reg.Rooms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Check verifies that every grid matches the declared size.
func (r *Room) Check() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrMalformedRoom, r.Width, r.Height)
	}
	grids := []struct {
		name string
		rows [][]int
	}{
		{"layout", r.Layout},
		{"bounds", r.Bounds},
		{"mapcodes", r.Mapcodes},
	}
	for _, g := range grids {
		if len(g.rows) != r.Height {
			return fmt.Errorf("%w: %s has %d rows, want %d", ErrMalformedRoom, g.name, len(g.rows), r.Height)
		}
		for i, row := range g.rows {
			if len(row) != r.Width {
				return fmt.Errorf("%w: %s row %d has %d columns, want %d", ErrMalformedRoom, g.name, i, len(row), r.Width)
			}
		}
	}
	return nil
}
