package main

import (
	"errors"
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/worldtree/levels"
	"github.com/milk9111/worldtree/prefabs"
	"github.com/milk9111/worldtree/save"
	"github.com/milk9111/worldtree/sim"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
	"golang.design/x/clipboard"
)

type Options struct {
	DataDir string
	Strict  bool
	Debug   bool
	// Start overrides game.yaml and any saved position.
	Start *prefabs.StartSpec
	// Store is nil when saving is disabled.
	Store     save.Store
	Watcher   *levels.Watcher
	Clipboard bool
}

type Game struct {
	log  *zap.Logger
	opts Options

	sim     *sim.Sim
	input   *Input
	render  *renderer
	pauseUI *ebitenui.UI
	store   save.Store

	fade      *gween.Tween
	fadeAlpha float32
	music     string

	screenW, screenH int
	debug            bool
	quit             bool
}

func NewGame(log *zap.Logger, content sim.Content, opts Options) (*Game, error) {
	g := &Game{
		log:     log,
		opts:    opts,
		input:   NewInput(),
		render:  newRenderer(newPalette(content.Game.Colors)),
		store:   opts.Store,
		screenW: content.Game.Screen.Width,
		screenH: content.Game.Screen.Height,
		debug:   opts.Debug,
	}
	if err := g.start(content); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) start(content sim.Content) error {
	progress := g.loadProgress()
	if g.opts.Start != nil && progress != nil {
		progress.Position = save.Position{}
	}
	s, err := sim.New(content, sim.Options{
		Logger:   g.log,
		Progress: progress,
		Start:    g.opts.Start,
		Seed:     uint64(content.Game.TickRate),
	})
	if err != nil {
		return err
	}
	g.sim = s
	g.music = s.Room().Music
	g.pauseUI = nil
	return nil
}

func (g *Game) loadProgress() *save.Progress {
	if g.store == nil {
		return nil
	}
	p, err := save.Load(g.store)
	if errors.Is(err, save.ErrNoSave) {
		return nil
	}
	if err != nil {
		g.log.Warn("could not load saved game", zap.Error(err))
		return nil
	}
	g.log.Info("resuming saved game",
		zap.Int("region", p.Position.Region),
		zap.String("room", p.Position.Room))
	return p
}

func (g *Game) save() {
	if g.store == nil {
		return
	}
	if err := save.Save(g.store, g.sim.Progress()); err != nil {
		g.log.Warn("could not save game", zap.Error(err))
		return
	}
	g.log.Debug("game saved")
}

func (g *Game) restart() {
	if g.store != nil {
		if err := save.Clear(g.store); err != nil {
			g.log.Warn("could not clear saved game", zap.Error(err))
		}
	}
	if err := g.start(g.sim.Content()); err != nil {
		g.log.Error("restart failed", zap.Error(err))
	}
}

func (g *Game) togglePause() {
	g.sim.TogglePause()
	if g.sim.State() == sim.Paused {
		g.pauseUI = NewPauseUI(g)
	}
}

// reload drains the watcher and swaps in new content when something
// relevant changed on disk.
func (g *Game) reload() {
	w := g.opts.Watcher
	if w == nil {
		return
	}
	changed := false
	for _, c := range w.Pending() {
		switch c.Kind {
		case levels.ContentLevel, levels.ContentPrefab, levels.ContentScript:
			g.log.Info("content changed", zap.String("path", c.Path))
			changed = true
		}
	}
	select {
	case err := <-w.Errors:
		g.log.Warn("watcher", zap.Error(err))
	default:
	}
	if !changed {
		return
	}
	content, err := sim.LoadContent(g.opts.DataDir, g.opts.Strict, g.log)
	if err != nil {
		g.log.Error("reload failed, keeping current content", zap.Error(err))
		return
	}
	if err := g.sim.Reload(content); err != nil {
		g.log.Error("reload failed, keeping current content", zap.Error(err))
	}
}

func (g *Game) copyLocation() {
	if !g.opts.Clipboard {
		return
	}
	env := g.sim.Room()
	hb := g.sim.Hero().Hitbox()
	col, row := env.TileIndexForPoint(hb.Left(), hb.Bottom())
	loc := fmt.Sprintf("-region %d -room %s -col %d -row %d", env.Region, env.Name, col, row)
	clipboard.Write(clipboard.FmtText, []byte(loc))
	g.log.Info("copied location", zap.String("location", loc))
}

func (g *Game) handleEvents(events []sim.Event) {
	for _, e := range events {
		switch e.Kind {
		case sim.EventTransitioned:
			tr := e.Data.(sim.Transitioned)
			g.startFade()
			if tr.Music != "" && tr.Music != g.music {
				g.log.Info("music", zap.String("track", tr.Music))
				g.music = tr.Music
			}
			g.save()
		case sim.EventSound:
			g.log.Debug("sound", zap.Any("name", e.Data))
		case sim.EventItemCollected:
			it := e.Data.(sim.Collected)
			g.log.Info("item collected", zap.String("item", it.Name), zap.String("effect", it.Effect))
			if it.Key != "" {
				g.save()
			}
		case sim.EventPlayerDied:
			g.log.Info("game over")
		case sim.EventWon:
			g.log.Info("region cleared")
			g.save()
		}
	}
}

func (g *Game) startFade() {
	secs := g.sim.Content().Game.FadeSeconds
	if secs <= 0 {
		return
	}
	g.fade = gween.New(1, 0, secs, ease.Linear)
	g.fadeAlpha = 1
}

func (g *Game) updateFade() {
	if g.fade == nil {
		return
	}
	alpha, done := g.fade.Update(1 / float32(ebiten.TPS()))
	g.fadeAlpha = alpha
	if done {
		g.fade = nil
		g.fadeAlpha = 0
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.input.Update()
	g.reload()

	if g.input.DebugPressed {
		g.debug = !g.debug
	}
	if g.input.CopyPressed {
		g.copyLocation()
	}
	if g.input.PausePressed {
		g.togglePause()
	}

	switch g.sim.State() {
	case sim.Paused:
		if g.pauseUI != nil {
			g.pauseUI.Update()
		}
		return nil
	case sim.GameOver, sim.Won:
		if g.input.RestartPressed {
			g.restart()
		}
	}
	if g.input.SavePressed {
		g.save()
	}

	g.sim.Step(g.input.Held)
	g.handleEvents(g.sim.Events())
	g.updateFade()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.drawRoom(screen, g.sim.Room())
	g.render.drawActors(screen, g.sim, g.debug)
	g.render.drawHUD(screen, g.sim, g.screenW)
	if g.debug {
		g.render.drawDebug(screen, g.sim)
	}
	drawFade(screen, g.fadeAlpha)

	if g.sim.State() == sim.Paused && g.pauseUI != nil {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.screenW), float64(g.screenH)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
