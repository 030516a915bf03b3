package levels

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// TMX layer names and tileset tile properties read by LoadTMXRoom.
const (
	tmxLayoutLayer   = "layout"
	tmxMapcodeLayer  = "mapcodes"
	tmxBoundsProp    = "bounds"
	tmxMapcodeProp   = "mapcode"
	tmxFallbackTiles = "tiles"
)

// LoadTMXRoom builds a Room from a Tiled map. The "layout" layer gives the
// tile images, with the bound byte taken from each tileset tile's "bounds"
// property. The optional "mapcodes" layer gives spawn codes through each
// tile's "mapcode" property.
func LoadTMXRoom(fsys fs.FS, tmxPath string) (*Room, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	room := &Room{
		Width:    m.Width,
		Height:   m.Height,
		Tileset:  tmxFallbackTiles,
		Layout:   makeGrid(m.Width, m.Height),
		Bounds:   makeGrid(m.Width, m.Height),
		Mapcodes: makeGrid(m.Width, m.Height),
	}
	if len(m.Tilesets) > 0 && m.Tilesets[0].Name != "" {
		room.Tileset = m.Tilesets[0].Name
	}

	var sawLayout bool
	for _, layer := range m.Layers {
		switch layer.Name {
		case tmxLayoutLayer:
			sawLayout = true
			err = eachTile(m, layer, func(x, y int, t *tiled.LayerTile) error {
				room.Layout[y][x] = int(t.ID) + 1
				room.Bounds[y][x] = tileProp(t, tmxBoundsProp)
				return nil
			})
		case tmxMapcodeLayer:
			err = eachTile(m, layer, func(x, y int, t *tiled.LayerTile) error {
				code := tileProp(t, tmxMapcodeProp)
				if code == 0 {
					return fmt.Errorf("tile %d at (%d,%d) has no %s property", t.ID, x, y, tmxMapcodeProp)
				}
				room.Mapcodes[y][x] = code
				return nil
			})
		}
		if err != nil {
			return nil, fmt.Errorf("TMX %s layer %s: %w", tmxPath, layer.Name, err)
		}
	}
	if !sawLayout {
		return nil, fmt.Errorf("TMX %s: missing %q layer: %w", tmxPath, tmxLayoutLayer, ErrMalformedRoom)
	}
	return room, nil
}

func eachTile(m *tiled.Map, layer *tiled.Layer, fn func(x, y int, t *tiled.LayerTile) error) error {
	if len(layer.Tiles) < m.Width*m.Height {
		return fmt.Errorf("%w: %d tiles for %dx%d map", ErrMalformedRoom, len(layer.Tiles), m.Width, m.Height)
	}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			t := layer.Tiles[y*m.Width+x]
			if t == nil || t.IsNil() {
				continue
			}
			if err := fn(x, y, t); err != nil {
				return err
			}
		}
	}
	return nil
}

func tileProp(t *tiled.LayerTile, name string) int {
	if t.Tileset == nil {
		return 0
	}
	tt, err := t.Tileset.GetTilesetTile(t.ID)
	if err != nil {
		return 0
	}
	return tt.Properties.GetInt(name)
}

func makeGrid(w, h int) [][]int {
	rows := make([][]int, h)
	for i := range rows {
		rows[i] = make([]int, w)
	}
	return rows
}
