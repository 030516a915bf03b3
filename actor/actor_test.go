package actor

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/worldtree/common"
	"github.com/milk9111/worldtree/levels"
	"github.com/milk9111/worldtree/prefabs"
	"github.com/milk9111/worldtree/room"
	"github.com/milk9111/worldtree/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const ts = 48

type noCodes struct{}

func (noCodes) Lookup(int) (bool, bool) { return false, false }

type fakeWorld struct {
	hero    *Actor
	spawned []*Actor
	sounds  []string
	log     *zap.Logger
}

func (w *fakeWorld) Hero() *Actor        { return w.hero }
func (w *fakeWorld) Spawn(a *Actor)      { w.spawned = append(w.spawned, a) }
func (w *fakeWorld) Sound(name string)   { w.sounds = append(w.sounds, name) }
func (w *fakeWorld) Logger() *zap.Logger {
	if w.log != nil {
		return w.log
	}
	return zap.NewNop()
}

// solid lists cells (col, row) that get all four sides solid.
type solid [][2]int

// floorRoom is 10x6 tiles with a solid floor on row 5.
func floorRoom(t *testing.T, extra solid) *room.Room {
	t.Helper()
	const w, h = 10, 6
	grid := func() [][]int {
		rows := make([][]int, h)
		for i := range rows {
			rows[i] = make([]int, w)
		}
		return rows
	}
	d := &levels.Room{Width: w, Height: h, Tileset: "test", Layout: grid(), Bounds: grid(), Mapcodes: grid()}
	all := tile.BoundTop | tile.BoundLeft | tile.BoundRight | tile.BoundBottom
	for col := 0; col < w; col++ {
		d.Layout[h-1][col] = 1
		d.Bounds[h-1][col] = int(all)
	}
	for _, c := range extra {
		d.Layout[c[1]][c[0]] = 1
		d.Bounds[c[1]][c[0]] = int(all)
	}
	r, err := room.New(1, "Test", d, room.Config{
		TileSize: ts,
		Viewport: common.Rect{W: 960, H: 640},
		Margin:   common.Vec{X: 160, Y: 160},
	}, noCodes{})
	require.NoError(t, err)
	return r
}

func heroSpec() *prefabs.HeroSpec {
	return &prefabs.HeroSpec{
		Name:             "hero",
		Width:            40,
		Height:           40,
		HP:               10,
		Damage:           2,
		Accel:            2,
		Speed:            5,
		Gravity:          2,
		TerminalVelocity: 10,
		JumpForce:        10,
		JumpDuration:     3,
		MaxJumps:         1,
		AttackDuration:   3,
		AttackReach:      10,
		ShootCooldown:    5,
		Ammo:             2,
		InvulnFrames:     4,
		Pushback:         8,
		Projectile: prefabs.ProjectileSpec{
			Name: "seed", Width: 8, Height: 8, Speed: 6, Damage: 1, Lifetime: 10,
		},
	}
}

// groundedHero stands on the floor at column 2.
func groundedHero(t *testing.T, env *room.Room, w *fakeWorld) *Actor {
	t.Helper()
	h := NewHero(env, heroSpec(), 2, 4)
	w.hero = h
	h.Update(w)
	require.Equal(t, Grounded, h.Vertical)
	return h
}

func TestPlaceAtSitsOnTileBottom(t *testing.T) {
	env := floorRoom(t, nil)
	h := NewHero(env, heroSpec(), 2, 4)
	assert.Equal(t, common.Rect{X: 96, Y: 199, W: 40, H: 40}, h.Rect)
	assert.Equal(t, h.Rect, h.Hitbox())
}

func TestSupportedKeepsHeroUpwardVelocity(t *testing.T) {
	env := floorRoom(t, nil)
	h := NewHero(env, heroSpec(), 2, 4)
	h.Move.Y = -6
	h.Supported()
	assert.Equal(t, Grounded, h.Vertical)
	assert.Equal(t, -6, h.Move.Y)

	h.Move.Y = 4
	h.Supported()
	assert.Equal(t, 0, h.Move.Y)

	e := NewEnemy(env, 1, walkerSpec(), 5, 4, nil)
	e.Move.Y = -6
	e.Supported()
	assert.Equal(t, 0, e.Move.Y)
}

func TestWalkAndStop(t *testing.T) {
	env := floorRoom(t, nil)
	w := &fakeWorld{}
	h := groundedHero(t, env, w)

	for _, want := range []int{2, 4, 5, 5} {
		h.Walk(FacingRight)
		assert.Equal(t, want, h.Move.X)
	}
	assert.Equal(t, Walk, h.Action)

	h.Move.X = 9
	h.Walk(FacingRight)
	assert.Equal(t, 7, h.Move.X, "above speed slows by the gravity step")

	h.Move.X = 3
	h.StopMoving()
	assert.Equal(t, 1, h.Move.X)
	h.StopMoving()
	assert.Equal(t, 0, h.Move.X)
	assert.Equal(t, Stand, h.Action)
}

func TestGravityCapsAtTerminalVelocity(t *testing.T) {
	env := floorRoom(t, nil)
	h := NewHero(env, heroSpec(), 2, 1)
	for range 10 {
		h.ApplyGravity()
	}
	assert.Equal(t, 10, h.Move.Y)
}

func TestTakeHit(t *testing.T) {
	env := floorRoom(t, nil)
	w := &fakeWorld{}
	h := groundedHero(t, env, w)

	assert.False(t, h.TakeHit(3, w))
	assert.Equal(t, 7, h.HP)
	assert.Equal(t, 4, h.Invulnerable)

	assert.True(t, h.TakeHit(7, w))
	assert.True(t, h.Dead)
	assert.Equal(t, []string{"hit", "hit", "death"}, w.sounds)
}

func TestInvulnerabilityCountsDown(t *testing.T) {
	env := floorRoom(t, nil)
	w := &fakeWorld{}
	h := groundedHero(t, env, w)
	h.TakeHit(1, w)
	for range 4 {
		h.Update(w)
	}
	assert.Zero(t, h.Invulnerable)
}

func TestCollisionPushback(t *testing.T) {
	env := floorRoom(t, nil)
	a := &Actor{Env: env, Rect: common.Rect{X: 0, Y: 0, W: 10, H: 10}}
	b := &Actor{Env: env, Rect: common.Rect{X: 20, Y: 0, W: 10, H: 10}, Pushback: 8}

	a.CollisionPushback(b)
	assert.Equal(t, common.Vec{X: -8}, a.Move)

	t.Run("coincident centers", func(t *testing.T) {
		c := &Actor{Env: env, Rect: b.Rect}
		c.CollisionPushback(b)
		assert.True(t, c.Move.IsZero())
	})
}

func TestTouches(t *testing.T) {
	env := floorRoom(t, nil)
	a := &Actor{Env: env, Rect: common.Rect{X: 0, Y: 0, W: 10, H: 10}}
	b := &Actor{Env: env, Rect: common.Rect{X: 5, Y: 5, W: 10, H: 10}}
	c := &Actor{Env: env, Rect: common.Rect{X: 40, Y: 0, W: 10, H: 10}}
	assert.True(t, a.Touches(b))
	assert.False(t, a.Touches(c))
}

func TestRectBB(t *testing.T) {
	bb := RectBB(common.Rect{X: 10, Y: 20, W: 30, H: 40})
	assert.Equal(t, cp.BB{L: 10, B: 20, R: 40, T: 60}, bb)
	assert.True(t, bb.Intersects(RectBB(common.Rect{X: 40, Y: 60, W: 5, H: 5})), "edges touch")
	assert.False(t, bb.Intersects(RectBB(common.Rect{X: 41, Y: 20, W: 5, H: 5})))
}

func TestRecoverHealthClampsToMax(t *testing.T) {
	a := &Actor{HP: 8, MaxHP: 10}
	a.RecoverHealth(5)
	assert.Equal(t, 10, a.HP)
	a.RaiseMaxHP(5)
	assert.Equal(t, 15, a.MaxHP)
	assert.Equal(t, 15, a.HP)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "hero", KindHero.String())
	assert.Equal(t, "projectile", KindProjectile.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
