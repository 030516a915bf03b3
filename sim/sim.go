// Package sim runs the fixed-step simulation of the current room: input,
// movement, camera, room transitions and the interaction sweep.
package sim

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/milk9111/worldtree/actor"
	"github.com/milk9111/worldtree/ai"
	"github.com/milk9111/worldtree/common"
	"github.com/milk9111/worldtree/levels"
	"github.com/milk9111/worldtree/prefabs"
	"github.com/milk9111/worldtree/room"
	"github.com/milk9111/worldtree/save"
	"github.com/milk9111/worldtree/transition"
	"go.uber.org/zap"
)

var ErrNoContent = errors.New("sim: missing content")

type State int

const (
	Playing State = iota
	Paused
	GameOver
	Won
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	case Won:
		return "won"
	}
	return "unknown"
}

// Content is everything loaded from data files that the simulation reads.
type Content struct {
	Game   *prefabs.GameSpec
	Hero   *prefabs.HeroSpec
	Spawns *prefabs.SpawnTable
	World  *levels.World
	Graph  *transition.Graph
}

type Options struct {
	// Logger defaults to a no-op logger.
	Logger *zap.Logger
	// Progress resumes a saved game when its position is set.
	Progress *save.Progress
	// Start overrides the start location from game.yaml.
	Start *prefabs.StartSpec
	Seed  uint64
}

type Sim struct {
	log      *zap.Logger
	content  Content
	cfg      room.Config
	brains   *ai.Cache
	rng      *rand.Rand
	progress *save.Progress

	room    *room.Room
	hero    *actor.Actor
	actors  []*actor.Actor
	pending []*actor.Actor
	events  EventQueue

	state   State
	hitstop int
	nextID  int
	tick    uint64
}

var _ actor.World = (*Sim)(nil)

// RoomConfig derives the room geometry from game.yaml.
func RoomConfig(g *prefabs.GameSpec) room.Config {
	return room.Config{
		TileSize: g.TileSize,
		Viewport: common.Rect{X: g.Viewport.X, Y: g.Viewport.Y, W: g.Viewport.Width, H: g.Viewport.Height},
		Margin:   common.Vec{X: g.ScrollMargin.X, Y: g.ScrollMargin.Y},
	}
}

func New(c Content, opts Options) (*Sim, error) {
	if c.Game == nil || c.Hero == nil || c.Spawns == nil || c.World == nil || c.Graph == nil {
		return nil, ErrNoContent
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	progress := opts.Progress
	if progress == nil {
		progress = save.NewProgress()
	}

	s := &Sim{
		log:      log,
		content:  c,
		cfg:      RoomConfig(c.Game),
		brains:   ai.NewCache(),
		rng:      rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
		progress: progress,
	}

	start := c.Game.Start
	if opts.Start != nil {
		start = *opts.Start
	}
	if p := progress.Position; p.Room != "" {
		start = prefabs.StartSpec{Region: p.Region, Room: p.Room, Col: p.Col, Row: p.Row}
	}

	env, err := s.buildRoom(start.Region, start.Room)
	if err != nil {
		return nil, err
	}
	col := common.Clamp(start.Col, 0, env.Width-1)
	row := common.Clamp(start.Row, 0, env.Height-1)
	s.hero = actor.NewHero(env, c.Hero, col, row)
	s.nextID++
	s.hero.ID = s.nextID
	s.applyStats()

	s.enter(env, s.hero.Hitbox(), nil)
	s.log.Info("simulation started",
		zap.Int("region", env.Region),
		zap.String("room", env.Name),
		zap.Int("col", col),
		zap.Int("row", row))
	return s, nil
}

func (s *Sim) buildRoom(region int, name string) (*room.Room, error) {
	data, err := s.content.World.Room(region, name)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	env, err := room.New(region, name, data, s.cfg, s.content.Spawns)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	return env, nil
}

// enter makes env the current room with the hero's hitbox at hb. A nil
// camera centers the view on the hero.
func (s *Sim) enter(env *room.Room, hb common.Rect, camera *common.Vec) {
	if camera == nil {
		env.CenterOn(hb)
	} else {
		env.SetOffset(*camera)
	}
	s.hero.ChangeRooms(env, hb)
	s.room = env
	s.actors = nil
	s.pending = nil
	s.spawnActors()
	s.progress.Visit(env.Region, env.Name)
	s.events.Push(Event{Kind: EventRoomDirty})
}

func itemKey(region int, roomName string, col, row int) string {
	return fmt.Sprintf("%s/%d,%d", save.RoomKey(region, roomName), col, row)
}

func (s *Sim) spawnActors() {
	env := s.room
	for _, sp := range env.Spawns {
		a, err := s.spawnFor(sp)
		if err != nil {
			s.log.Warn("spawn failed",
				zap.String("room", env.Name),
				zap.Int("code", sp.Code),
				zap.Error(err))
			continue
		}
		if a != nil {
			s.add(a)
		}
	}
}

func (s *Sim) spawnFor(sp room.Spawn) (*actor.Actor, error) {
	env, table := s.room, s.content.Spawns
	if sp.Area {
		spec, ok := table.Areas[sp.Code]
		if !ok {
			return nil, fmt.Errorf("%w %d", room.ErrUnknownMapcode, sp.Code)
		}
		return actor.NewArea(env, sp.Code, spec, sp.Col, sp.Row, sp.Width), nil
	}
	if spec, ok := table.Enemies[sp.Code]; ok {
		var brain ai.Brain = ai.Patrol{}
		if spec.Behavior == "" || spec.Behavior == actor.BehaviorWalker {
			b, err := s.brains.Brain(spec.Script)
			if err != nil {
				s.log.Warn("enemy script unavailable, patrolling instead",
					zap.String("enemy", spec.Name),
					zap.String("script", spec.Script),
					zap.Error(err))
			} else {
				brain = b
			}
		}
		return actor.NewEnemy(env, sp.Code, spec, sp.Col, sp.Row, brain), nil
	}
	if spec, ok := table.Items[sp.Code]; ok {
		key := itemKey(env.Region, env.Name, sp.Col, sp.Row)
		if spec.Unique && s.progress.Collected(key) {
			return nil, nil
		}
		return actor.NewItem(env, sp.Code, spec, sp.Col, sp.Row, key), nil
	}
	return nil, fmt.Errorf("%w %d", room.ErrUnknownMapcode, sp.Code)
}

func (s *Sim) add(a *actor.Actor) {
	s.nextID++
	a.ID = s.nextID
	s.actors = append(s.actors, a)
}

func (s *Sim) flushSpawns() {
	for _, a := range s.pending {
		s.add(a)
	}
	s.pending = nil
}

// Step advances the simulation one tick.
func (s *Sim) Step(in actor.Actions) {
	if s.state != Playing {
		return
	}
	s.tick++
	if s.hitstop > 0 {
		s.hitstop--
		return
	}

	prev := s.hero.Hitbox()
	s.hero.HandleInput(in, s)
	s.hero.Update(s)
	for _, a := range s.actors {
		a.Update(s)
	}
	s.flushSpawns()

	s.scroll()
	if s.exitRoom(prev) {
		return
	}
	s.interact()
	s.reap()
}

func (s *Sim) scroll() {
	v := s.room.Scroll(s.hero.Rect)
	if v.IsZero() {
		return
	}
	s.hero.Rect = s.hero.Rect.Move(v)
	for _, a := range s.actors {
		a.Rect = a.Rect.Move(v)
	}
	s.events.Push(scrolled(v))
}

// exitRoom moves the hero into the neighbouring room once its hitbox
// center leaves the grid. Without a matching edge the hero is put back at
// prev and held at the boundary.
func (s *Sim) exitRoom(prev common.Rect) bool {
	hb := s.hero.Hitbox()
	dir, ok := transition.ExitDirection(hb, s.room.PixelWidth(), s.room.PixelHeight())
	if !ok {
		return false
	}
	from := transition.RoomKey{Region: s.room.Region, Room: s.room.Name}
	exit := transition.Exit{Region: from.Region, Room: from.Room, Dir: dir, Hitbox: hb, Camera: s.room.Offset()}
	vp := s.cfg.Viewport

	arr, err := s.content.Graph.Enter(exit, s.content.World, s.cfg.TileSize, common.Vec{X: vp.W, Y: vp.H})
	if err == nil {
		var env *room.Room
		env, err = s.buildRoom(arr.Edge.Region, arr.Edge.Dest)
		if err == nil {
			s.enter(env, arr.Hitbox, &arr.Camera)
			to := transition.RoomKey{Region: env.Region, Room: env.Name}
			s.events.Push(Event{Kind: EventTransitioned, Data: Transitioned{
				From:      from,
				To:        to,
				Dir:       dir,
				Music:     env.Music,
				NewRegion: from.Region != to.Region,
			}})
			s.log.Info("room transition",
				zap.Stringer("from", from),
				zap.Stringer("to", to),
				zap.Stringer("dir", dir))
			return true
		}
	}

	s.log.Warn("no way out, holding at boundary",
		zap.Stringer("room", from),
		zap.Stringer("dir", dir),
		zap.Error(err))
	s.hero.SetHitbox(prev)
	if dir.Horizontal() {
		s.hero.Move.X = 0
	} else {
		s.hero.Move.Y = 0
	}
	return false
}

func (s *Sim) reap() {
	live := s.actors[:0]
	for _, a := range s.actors {
		if !a.Dead {
			live = append(live, a)
		}
	}
	clear(s.actors[len(live):])
	s.actors = live
	s.flushSpawns()
}

// TogglePause switches between Playing and Paused.
func (s *Sim) TogglePause() {
	switch s.state {
	case Playing:
		s.state = Paused
	case Paused:
		s.state = Playing
	}
}

// Reload swaps in freshly loaded content and rebuilds the current room
// around the hero. The hero keeps its state.
func (s *Sim) Reload(c Content) error {
	if c.Game == nil || c.Hero == nil || c.Spawns == nil || c.World == nil || c.Graph == nil {
		return ErrNoContent
	}
	old := s.content
	s.content = c
	s.brains.Reset()
	env, err := s.buildRoom(s.room.Region, s.room.Name)
	if err != nil {
		s.content = old
		return err
	}
	cam := s.room.Offset()
	s.enter(env, s.hero.Hitbox(), &cam)
	s.log.Info("content reloaded", zap.String("room", env.Name))
	return nil
}

// Progress records the hero's position and returns the save state.
func (s *Sim) Progress() *save.Progress {
	hb := s.hero.Hitbox()
	col, row := s.room.TileIndexForPoint(hb.Left(), hb.Bottom())
	s.progress.Position = save.Position{
		Region: s.room.Region,
		Room:   s.room.Name,
		Col:    common.Clamp(col, 0, s.room.Width-1),
		Row:    common.Clamp(row, 0, s.room.Height-1),
	}
	return s.progress
}

// RegionMap lays out the current region's rooms in tiles, relative to the
// region's start room.
func (s *Sim) RegionMap() map[string]common.Vec {
	reg, ok := s.content.World.Regions[s.room.Region]
	if !ok {
		return nil
	}
	return s.content.Graph.Layout(s.room.Region, reg.Start, s.content.World)
}

func (s *Sim) Room() *room.Room { return s.room }
func (s *Sim) Hero() *actor.Actor { return s.hero }
func (s *Sim) Actors() []*actor.Actor { return s.actors }
func (s *Sim) State() State { return s.state }
func (s *Sim) Tick() uint64 { return s.tick }
func (s *Sim) HitStop() int { return s.hitstop }
func (s *Sim) Logger() *zap.Logger { return s.log }
func (s *Sim) Content() Content { return s.content }
func (s *Sim) Events() []Event { return s.events.Drain() }
func (s *Sim) Spawn(a *actor.Actor) { s.pending = append(s.pending, a) }
func (s *Sim) Sound(name string) { s.events.Push(Event{Kind: EventSound, Data: name}) }

func (s *Sim) Visited(region int, name string) bool {
	return s.progress.Visited(region, name)
}
