package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
)

//go:embed *.json *.tmx
var LevelsFS embed.FS

const transitionsFile = "transitions.json"

// Open loads the world from dir, or from the embedded levels when dir is empty.
func Open(dir string) (*World, error) {
	if dir == "" {
		return Load(LevelsFS)
	}
	return Load(os.DirFS(dir))
}

// Load reads every region*.json file and transitions.json from fsys. Rooms
// with a Source are filled in from their TMX file.
func Load(fsys fs.FS) (*World, error) {
	matches, err := fs.Glob(fsys, "region*.json")
	if err != nil {
		return nil, fmt.Errorf("levels: glob regions: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("levels: no region files found")
	}
	sort.Strings(matches)

	world := &World{Regions: make(map[int]*Region, len(matches))}
	for _, name := range matches {
		reg, err := LoadRegionFromFS(fsys, name)
		if err != nil {
			return nil, err
		}
		if _, dup := world.Regions[reg.ID]; dup {
			return nil, fmt.Errorf("levels: %s: duplicate region %d", name, reg.ID)
		}
		world.Regions[reg.ID] = reg
	}

	trans, err := LoadTransitionsFromFS(fsys, transitionsFile)
	if err != nil {
		return nil, err
	}
	world.Transitions = trans
	return world, nil
}

func LoadRegionFromFS(fsys fs.FS, name string) (*Region, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read region: %w", err)
	}
	var reg Region
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("levels: unmarshal region %s: %w", name, err)
	}
	for roomName, room := range reg.Rooms {
		if room == nil {
			return nil, fmt.Errorf("levels: %s: room %s is empty", name, roomName)
		}
		if room.Source != "" {
			tmx, err := LoadTMXRoom(fsys, path.Join(path.Dir(name), room.Source))
			if err != nil {
				return nil, fmt.Errorf("levels: %s: room %s: %w", name, roomName, err)
			}
			tmx.Music, tmx.Background, tmx.Source = room.Music, room.Background, room.Source
			reg.Rooms[roomName] = tmx
			room = tmx
		}
		if err := room.Check(); err != nil {
			return nil, fmt.Errorf("levels: %s: room %s: %w", name, roomName, err)
		}
	}
	if reg.Start != "" {
		if _, ok := reg.Rooms[reg.Start]; !ok {
			return nil, fmt.Errorf("levels: %s: start room %s: %w", name, reg.Start, ErrUnknownRoom)
		}
	}
	return &reg, nil
}

func LoadTransitionsFromFS(fsys fs.FS, name string) (Transitions, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read transitions: %w", err)
	}
	var trans Transitions
	if err := json.Unmarshal(data, &trans); err != nil {
		return nil, fmt.Errorf("levels: unmarshal transitions: %w", err)
	}
	return trans, nil
}
