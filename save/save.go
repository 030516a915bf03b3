// Package save persists game progress through gdata.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/quasilyte/gdata"
	"github.com/zyedidia/generic/mapset"
)

var ErrNoSave = errors.New("save: no saved game")

const progressKey = "progress"

// Store is the part of gdata.Manager this package uses.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
	DeleteItem(key string) error
}

var _ Store = (*gdata.Manager)(nil)

// Open returns the platform save store for app.
func Open(app string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		return nil, fmt.Errorf("save: open %s: %w", app, err)
	}
	return m, nil
}

// Position is where the hero was when the game was saved.
type Position struct {
	Region int    `json:"region"`
	Room   string `json:"room"`
	Col    int    `json:"col"`
	Row    int    `json:"row"`
}

// Stats are the permanent hero upgrades.
type Stats struct {
	MaxHP    int `json:"maxHp"`
	MaxJumps int `json:"maxJumps"`
	MaxAmmo  int `json:"maxAmmo"`
}

// Progress tracks visited rooms and collected unique pickups.
type Progress struct {
	Position Position
	Stats    Stats

	visited   mapset.Set[string]
	collected mapset.Set[string]
}

func NewProgress() *Progress {
	return &Progress{
		visited:   mapset.New[string](),
		collected: mapset.New[string](),
	}
}

// RoomKey names a room the same way everywhere progress is recorded.
func RoomKey(region int, room string) string {
	return fmt.Sprintf("%d/%s", region, room)
}

func (p *Progress) Visit(region int, room string) {
	p.visited.Put(RoomKey(region, room))
}

func (p *Progress) Visited(region int, room string) bool {
	return p.visited.Has(RoomKey(region, room))
}

func (p *Progress) Collect(key string) {
	p.collected.Put(key)
}

func (p *Progress) Collected(key string) bool {
	return p.collected.Has(key)
}

// VisitedRooms lists visited room keys in sorted order.
func (p *Progress) VisitedRooms() []string {
	return sorted(p.visited)
}

func (p *Progress) CollectedItems() []string {
	return sorted(p.collected)
}

func sorted(s mapset.Set[string]) []string {
	out := make([]string, 0, s.Size())
	s.Each(func(k string) {
		out = append(out, k)
	})
	sort.Strings(out)
	return out
}

type record struct {
	Position  Position `json:"position"`
	Stats     Stats    `json:"stats"`
	Visited   []string `json:"visited"`
	Collected []string `json:"collected"`
}

func (p *Progress) MarshalJSON() ([]byte, error) {
	return json.Marshal(record{
		Position:  p.Position,
		Stats:     p.Stats,
		Visited:   p.VisitedRooms(),
		Collected: p.CollectedItems(),
	})
}

func (p *Progress) UnmarshalJSON(data []byte) error {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	p.Position = r.Position
	p.Stats = r.Stats
	p.visited = mapset.New[string]()
	p.collected = mapset.New[string]()
	for _, k := range r.Visited {
		p.visited.Put(k)
	}
	for _, k := range r.Collected {
		p.collected.Put(k)
	}
	return nil
}

// Load reads saved progress. It returns ErrNoSave when nothing was saved.
func Load(s Store) (*Progress, error) {
	data, err := s.LoadItem(progressKey)
	if err != nil {
		return nil, fmt.Errorf("save: load: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrNoSave
	}
	p := NewProgress()
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("save: parse: %w", err)
	}
	return p, nil
}

func Save(s Store, p *Progress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("save: encode: %w", err)
	}
	if err := s.SaveItem(progressKey, data); err != nil {
		return fmt.Errorf("save: write: %w", err)
	}
	return nil
}

// Clear forgets saved progress.
func Clear(s Store) error {
	if err := s.DeleteItem(progressKey); err != nil {
		return fmt.Errorf("save: clear: %w", err)
	}
	return nil
}
