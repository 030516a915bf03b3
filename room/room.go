// Package room holds the static tile grid of one room together with its
// camera offset, and answers collision and support queries against it.
package room

import (
	"errors"
	"fmt"
	"sort"

	"github.com/milk9111/worldtree/common"
	"github.com/milk9111/worldtree/levels"
	"github.com/milk9111/worldtree/tile"
)

var ErrUnknownMapcode = errors.New("room: unknown mapcode")

// Config is the geometry shared by every room.
type Config struct {
	TileSize int
	// Viewport is the on-screen area the room is drawn into.
	Viewport common.Rect
	Margin   common.Vec
}

// Mover is anything that can ask the room to resolve a move.
type Mover interface {
	// Hitbox is in map coordinates.
	Hitbox() common.Rect
	IsPlayer() bool
}

// Codebook resolves mapcodes found in room data.
type Codebook interface {
	Lookup(code int) (area bool, ok bool)
}

// Spawn is a decoded mapcode. Area spawns cover Width tiles starting at
// Col; every other spawn has Width 1.
type Spawn struct {
	Code  int
	Col   int
	Row   int
	Width int
	Area  bool
}

type Cell struct {
	Col, Row int
}

type Room struct {
	Name       string
	Region     int
	Width      int
	Height     int
	Tileset    string
	Music      string
	Background string
	Spawns     []Spawn

	cfg    Config
	cells  [][]tile.ID // [col][row]
	layout [][]int     // [col][row]
	offset common.Vec
	dirty  bool
}

// New builds a room from level data. Every mapcode must be known to codes.
func New(region int, name string, data *levels.Room, cfg Config, codes Codebook) (*Room, error) {
	if err := data.Check(); err != nil {
		return nil, fmt.Errorf("room %d/%s: %w", region, name, err)
	}
	if cfg.TileSize <= 0 {
		return nil, fmt.Errorf("room %d/%s: tile size %d", region, name, cfg.TileSize)
	}

	r := &Room{
		Name:       name,
		Region:     region,
		Width:      data.Width,
		Height:     data.Height,
		Tileset:    data.Tileset,
		Music:      data.Music,
		Background: data.Background,
		cfg:        cfg,
		cells:      make([][]tile.ID, data.Width),
		layout:     make([][]int, data.Width),
		dirty:      true,
	}
	for col := range r.cells {
		r.cells[col] = make([]tile.ID, data.Height)
		r.layout[col] = make([]int, data.Height)
	}

	areas := make(map[int][]Cell)
	for row := 0; row < data.Height; row++ {
		for col := 0; col < data.Width; col++ {
			if id := data.Layout[row][col]; id != 0 {
				r.layout[col][row] = id
				r.cells[col][row] = tile.IDForBounds(data.Bounds[row][col])
			}

			code := data.Mapcodes[row][col]
			if code == 0 {
				continue
			}
			area, ok := codes.Lookup(code)
			if !ok {
				return nil, fmt.Errorf("room %d/%s: %w %d at (%d,%d)", region, name, ErrUnknownMapcode, code, col, row)
			}
			if area {
				areas[code] = append(areas[code], Cell{Col: col, Row: row})
				continue
			}
			r.Spawns = append(r.Spawns, Spawn{Code: code, Col: col, Row: row, Width: 1})
		}
	}
	r.Spawns = append(r.Spawns, mergeAreas(areas)...)
	return r, nil
}

// mergeAreas joins horizontally adjacent cells of the same code into runs.
// Cells arrive in row-major order.
func mergeAreas(areas map[int][]Cell) []Spawn {
	codes := make([]int, 0, len(areas))
	for code := range areas {
		codes = append(codes, code)
	}
	sort.Ints(codes)

	var out []Spawn
	for _, code := range codes {
		cells := areas[code]
		for i := 0; i < len(cells); {
			start := cells[i]
			width := 1
			for i+width < len(cells) &&
				cells[i+width].Row == start.Row &&
				cells[i+width].Col == start.Col+width {
				width++
			}
			out = append(out, Spawn{Code: code, Col: start.Col, Row: start.Row, Width: width, Area: true})
			i += width
		}
	}
	return out
}

func (r *Room) Config() Config { return r.cfg }

func (r *Room) TileSize() int { return r.cfg.TileSize }

func (r *Room) PixelWidth() int  { return r.Width * r.cfg.TileSize }
func (r *Room) PixelHeight() int { return r.Height * r.cfg.TileSize }

func (r *Room) InBounds(col, row int) bool {
	return col >= 0 && col < r.Width && row >= 0 && row < r.Height
}

// Tile returns the tile at (col, row). Out-of-grid cells read as Empty.
func (r *Room) Tile(col, row int) tile.Tile {
	if !r.InBounds(col, row) {
		return tile.Empty
	}
	return r.cells[col][row].Tile()
}

// LayoutID is the tileset image index at (col, row); 0 draws nothing.
func (r *Room) LayoutID(col, row int) int {
	if !r.InBounds(col, row) {
		return 0
	}
	return r.layout[col][row]
}

// tileFor applies the out-of-grid policy: solid for everything except the
// player, so enemies stay in the room and the player can leave it.
func (r *Room) tileFor(col, row int, player bool) tile.Tile {
	if r.InBounds(col, row) {
		return r.cells[col][row].Tile()
	}
	if player {
		return tile.Empty
	}
	return tile.Solid
}

// RectForTile is the map-space rect of a cell. Its size is one less than the
// tile size so that neighbouring cells never share a pixel.
func (r *Room) RectForTile(col, row int) common.Rect {
	t := r.cfg.TileSize
	return common.Rect{X: col * t, Y: row * t, W: t - 1, H: t - 1}
}

func (r *Room) TileIndexForPoint(x, y int) (col, row int) {
	t := r.cfg.TileSize
	return common.FloorDiv(x, t), common.FloorDiv(y, t)
}

// TilesForRect lists every cell the rect touches, column-major.
func (r *Room) TilesForRect(rect common.Rect) []Cell {
	left, top := r.TileIndexForPoint(rect.Left(), rect.Top())
	right, bottom := r.TileIndexForPoint(rect.Right(), rect.Bottom())
	out := make([]Cell, 0, (right-left+1)*(bottom-top+1))
	for col := left; col <= right; col++ {
		for row := top; row <= bottom; row++ {
			out = append(out, Cell{Col: col, Row: row})
		}
	}
	return out
}

// IsOutsideMap reports whether the hitbox center has left the grid.
func (r *Room) IsOutsideMap(hitbox common.Rect) bool {
	col, row := r.TileIndexForPoint(hitbox.CenterX(), hitbox.CenterY())
	return !r.InBounds(col, row)
}

// ScreenToMap converts a screen-space rect into map space.
func (r *Room) ScreenToMap(rect common.Rect) common.Rect {
	return rect.Move(r.offset.Sub(r.cfg.Viewport.Pos()))
}

func (r *Room) MapToScreen(rect common.Rect) common.Rect {
	return rect.Move(r.cfg.Viewport.Pos().Sub(r.offset))
}
