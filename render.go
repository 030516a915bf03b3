package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/worldtree/actor"
	"github.com/milk9111/worldtree/common"
	"github.com/milk9111/worldtree/prefabs"
	"github.com/milk9111/worldtree/room"
	"github.com/milk9111/worldtree/sim"
	"github.com/milk9111/worldtree/tile"
	"golang.org/x/image/colornames"
)

type palette struct {
	background color.Color
	solid      color.Color
	platform   color.Color
	hero       color.Color
	enemy      color.Color
	item       color.Color
	hazard     color.Color
	projectile color.Color
	hud        color.Color
}

func newPalette(c prefabs.PaletteSpec) palette {
	return palette{
		background: c.Background.Or(colornames.Black),
		solid:      c.Solid.Or(colornames.Darkolivegreen),
		platform:   c.Platform.Or(colornames.Sienna),
		hero:       c.Hero.Or(colornames.Lime),
		enemy:      c.Enemy.Or(colornames.Crimson),
		item:       c.Item.Or(colornames.Gold),
		hazard:     c.Hazard.Or(colornames.Darkorange),
		projectile: c.Projectile.Or(colornames.Whitesmoke),
		hud:        c.HUD.Or(colornames.Black),
	}
}

// renderer draws the room through a viewport-sized tile cache that is only
// repainted when the room reports itself dirty.
type renderer struct {
	pal   palette
	tiles *ebiten.Image
	shown *room.Room
}

func newRenderer(pal palette) *renderer {
	return &renderer{pal: pal}
}

func (r *renderer) roomBackground(env *room.Room) color.Color {
	if env.Background == "" {
		return r.pal.background
	}
	c, err := prefabs.ParseHexColor(env.Background)
	if err != nil {
		return r.pal.background
	}
	return c
}

func (r *renderer) drawRoom(screen *ebiten.Image, env *room.Room) {
	vp := env.Config().Viewport
	if r.tiles == nil || r.tiles.Bounds().Dx() != vp.W || r.tiles.Bounds().Dy() != vp.H {
		r.tiles = ebiten.NewImage(vp.W, vp.H)
		r.shown = nil
	}
	if env != r.shown || env.Dirty() {
		r.paintTiles(env)
		env.ClearDirty()
		r.shown = env
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(vp.X), float64(vp.Y))
	screen.DrawImage(r.tiles, op)
}

func (r *renderer) paintTiles(env *room.Room) {
	r.tiles.Fill(r.roomBackground(env))
	vp := env.Config().Viewport
	off := env.Offset()
	ts := env.TileSize()

	firstCol, firstRow := env.TileIndexForPoint(off.X, off.Y)
	lastCol, lastRow := env.TileIndexForPoint(off.X+vp.W, off.Y+vp.H)
	for col := max(0, firstCol); col <= min(lastCol, env.Width-1); col++ {
		for row := max(0, firstRow); row <= min(lastRow, env.Height-1); row++ {
			t := env.Tile(col, row)
			if t.IsOpen() || env.LayoutID(col, row) == 0 {
				continue
			}
			clr := r.pal.platform
			h := float32(ts) / 4
			if t == tile.Solid {
				clr = r.pal.solid
				h = float32(ts)
			}
			tr := env.RectForTile(col, row)
			vector.FillRect(r.tiles, float32(tr.X-off.X), float32(tr.Y-off.Y), float32(ts), h, clr, false)
		}
	}
}

func (r *renderer) actorColor(a *actor.Actor) color.Color {
	switch a.Kind {
	case actor.KindHero:
		return r.pal.hero
	case actor.KindEnemy:
		return r.pal.enemy
	case actor.KindItem:
		return r.pal.item
	case actor.KindArea:
		return r.pal.hazard
	}
	return r.pal.projectile
}

func fillRect(dst *ebiten.Image, rc common.Rect, clr color.Color) {
	vector.FillRect(dst, float32(rc.X), float32(rc.Y), float32(rc.W), float32(rc.H), clr, false)
}

func strokeRect(dst *ebiten.Image, rc common.Rect, clr color.Color) {
	vector.StrokeRect(dst, float32(rc.X), float32(rc.Y), float32(rc.W), float32(rc.H), 1, clr, false)
}

// drawActors paints every actor clipped to the viewport. Actor rects are
// already in screen space.
func (r *renderer) drawActors(screen *ebiten.Image, s *sim.Sim, debug bool) {
	env := s.Room()
	vp := env.Config().Viewport
	view := screen.SubImage(image.Rect(vp.X, vp.Y, vp.X+vp.W, vp.Y+vp.H)).(*ebiten.Image)

	for _, a := range s.Actors() {
		fillRect(view, a.Rect, r.actorColor(a))
	}

	hero := s.Hero()
	if hero.Invulnerable == 0 || (hero.Invulnerable/4)%2 == 0 {
		fillRect(view, hero.Rect, r.pal.hero)
	}
	if box, ok := hero.AttackBox(); ok {
		fillRect(view, env.MapToScreen(box), color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x50})
	}

	if !debug {
		return
	}
	for _, a := range append([]*actor.Actor{hero}, s.Actors()...) {
		strokeRect(view, env.MapToScreen(a.Hitbox()), colornames.Magenta)
	}
}

func (r *renderer) drawHUD(screen *ebiten.Image, s *sim.Sim, screenW int) {
	vp := s.Room().Config().Viewport
	vector.FillRect(screen, 0, 0, float32(screenW), float32(vp.Y), r.pal.hud, false)

	hero := s.Hero()
	env := s.Room()
	region := ""
	if reg, ok := s.Content().World.Regions[env.Region]; ok {
		region = reg.Name
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP %d/%d   SEEDS %d/%d   JUMPS %d",
		hero.HP, hero.MaxHP, hero.Hero.Ammo, hero.Hero.MaxAmmo, hero.Hero.MaxJumps), 8, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s - %s", region, env.Name), 8, 28)

	switch s.State() {
	case sim.GameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER - press R to restart", vp.X+vp.W/2-90, vp.Y+vp.H/2)
	case sim.Won:
		ebitenutil.DebugPrintAt(screen, "THE ROOTS ARE SAFE - press R to play again", vp.X+vp.W/2-126, vp.Y+vp.H/2)
	}
}

func (r *renderer) drawDebug(screen *ebiten.Image, s *sim.Sim) {
	hb := s.Hero().Hitbox()
	col, row := s.Room().TileIndexForPoint(hb.Left(), hb.Bottom())
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.1f  FPS %.1f  tick %d  tile %d,%d  cam %v",
		ebiten.ActualTPS(), ebiten.ActualFPS(), s.Tick(), col, row, s.Room().Offset()), 8, 48)
}

func drawFade(screen *ebiten.Image, alpha float32) {
	if alpha <= 0 {
		return
	}
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.NRGBA{A: uint8(common.Clamp(alpha, 0, 1) * 255)}, false)
}
