// Package actor holds everything that moves or can be touched in a room:
// the hero, enemies, pickups, hazard areas and projectiles.
package actor

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/worldtree/common"
	"github.com/milk9111/worldtree/room"
	"go.uber.org/zap"
)

type Kind int

const (
	KindHero Kind = iota
	KindEnemy
	KindItem
	KindArea
	KindProjectile
)

func (k Kind) String() string {
	switch k {
	case KindHero:
		return "hero"
	case KindEnemy:
		return "enemy"
	case KindItem:
		return "item"
	case KindArea:
		return "area"
	case KindProjectile:
		return "projectile"
	}
	return "unknown"
}

// Action is the horizontal/combat state.
type Action int

const (
	Stand Action = iota
	Walk
	Attack
)

// Vertical is the airborne state.
type Vertical int

const (
	Fall Vertical = iota
	Jump
	Grounded
)

type Facing int

const (
	FacingLeft  Facing = -1
	FacingRight Facing = 1
)

func (f Facing) Flip() Facing { return -f }

// Insets shrink the screen rect into the hitbox.
type Insets struct {
	Left, Top, Right, Bottom int
}

// Body holds the movement tunables.
type Body struct {
	Accel            int
	Speed            int
	Gravity          int
	TerminalVelocity int
}

// World is the part of the simulation an actor may use during its update.
type World interface {
	Hero() *Actor
	Spawn(a *Actor)
	Sound(name string)
	Logger() *zap.Logger
}

type Actor struct {
	ID   int
	Kind Kind
	Name string
	// Code is the mapcode the actor was spawned from, or 0.
	Code int

	Env *room.Room
	// Rect is in screen space; scrolling moves it.
	Rect   common.Rect
	Insets Insets
	Move   common.Vec
	Body   Body

	Action   Action
	Vertical Vertical
	Facing   Facing

	HP           int
	MaxHP        int
	Invulnerable int
	InvulnFrames int
	Damage       int
	Pushback     int
	Dead         bool
	Player       bool

	Hero       *HeroState
	Enemy      *EnemyState
	Item       *ItemState
	Area       *AreaState
	Projectile *ProjectileState
}

var _ room.Mover = (*Actor)(nil)

// Hitbox is the inset rect in map space.
func (a *Actor) Hitbox() common.Rect {
	return a.Env.ScreenToMap(a.Rect).Inset(a.Insets.Left, a.Insets.Top, a.Insets.Right, a.Insets.Bottom)
}

func (a *Actor) IsPlayer() bool { return a.Player }

// SetHitbox moves the actor so that its hitbox lands on hb (map space).
func (a *Actor) SetHitbox(hb common.Rect) {
	m := common.Rect{X: hb.X - a.Insets.Left, Y: hb.Y - a.Insets.Top, W: a.Rect.W, H: a.Rect.H}
	a.Rect = a.Env.MapToScreen(m)
}

// placeAt aligns a w x h actor with the left and bottom of a tile.
func placeAt(env *room.Room, col, row, w, h int) common.Rect {
	tr := env.RectForTile(col, row)
	return env.MapToScreen(common.Rect{X: tr.Left(), Y: tr.Bottom() - h, W: w, H: h})
}

// Walk accelerates toward Speed in direction f. Above Speed it slows by the
// gravity step instead.
func (a *Actor) Walk(f Facing) {
	if a.Action != Attack {
		a.Action = Walk
	}
	a.Facing = f
	b := a.Body
	if f == FacingLeft {
		if a.Move.X < -b.Speed {
			a.Move.X += b.Gravity
		} else {
			a.Move.X = max(a.Move.X-b.Accel, -b.Speed)
		}
		return
	}
	if a.Move.X > b.Speed {
		a.Move.X -= b.Gravity
	} else {
		a.Move.X = min(a.Move.X+b.Accel, b.Speed)
	}
}

// StopMoving decelerates horizontally by the gravity step.
func (a *Actor) StopMoving() {
	g := a.Body.Gravity
	if a.Move.X > 0 {
		a.Move.X = max(a.Move.X-g, 0)
	} else if a.Move.X < 0 {
		a.Move.X = min(a.Move.X+g, 0)
	}
	if a.Vertical != Jump && a.Action != Attack && a.Move.X == 0 {
		a.Action = Stand
	}
}

func (a *Actor) ApplyGravity() {
	b := a.Body
	if a.Move.Y < b.TerminalVelocity {
		a.Move.Y = min(a.Move.Y+b.Gravity, b.TerminalVelocity)
	}
}

// Supported lands the actor. The hero keeps upward velocity so a jump that
// starts on the ground is not cancelled; everyone else stops dead.
func (a *Actor) Supported() {
	a.Vertical = Grounded
	if a.Hero != nil {
		a.Move.Y = min(0, a.Move.Y)
		a.Hero.jumpsLeft = a.Hero.MaxJumps
		return
	}
	a.Move.Y = 0
}

// advance applies the corrected move and updates support. It returns the
// displacement that was actually applied.
func (a *Actor) advance() common.Vec {
	got := a.Env.AttemptMove(a, a.Move)
	a.Rect = a.Rect.Move(got)
	return got
}

func (a *Actor) settle() {
	if a.Env.IsSupported(a.Hitbox()) {
		a.Supported()
		return
	}
	if a.Vertical != Jump {
		a.Vertical = Fall
		a.ApplyGravity()
	}
}

// TakeHit applies damage and reports whether the actor died.
func (a *Actor) TakeHit(damage int, w World) bool {
	w.Sound("hit")
	a.HP -= damage
	if a.HP <= 0 {
		a.Die(w)
		return true
	}
	a.Invulnerable = a.InvulnFrames
	return false
}

func (a *Actor) Die(w World) {
	if a.Dead {
		return
	}
	w.Sound("death")
	a.Dead = true
}

// CollisionPushback knocks the actor away from other's center. Coincident
// centers give no direction, so nothing happens.
func (a *Actor) CollisionPushback(other *Actor) {
	d := cp.Vector{
		X: float64(a.Rect.CenterX() - other.Rect.CenterX()),
		Y: float64(a.Rect.CenterY() - other.Rect.CenterY()),
	}
	if d.Length() == 0 || other.Pushback == 0 {
		return
	}
	p := d.Normalize().Mult(float64(other.Pushback))
	a.Move.X += int(math.Round(p.X))
	a.Move.Y += int(math.Round(p.Y))
}

func (a *Actor) RecoverHealth(amount int) {
	a.HP = min(a.MaxHP, a.HP+amount)
}

func (a *Actor) RaiseMaxHP(amount int) {
	a.MaxHP += amount
	a.RecoverHealth(amount)
}

// BB is the hitbox as a chipmunk bounding box, used for overlap tests.
func (a *Actor) BB() cp.BB {
	return RectBB(a.Hitbox())
}

// RectBB maps a rect into a BB. Screen y grows downward, so the rect's top
// becomes the box's minimum y.
func RectBB(r common.Rect) cp.BB {
	return cp.BB{L: float64(r.Left()), B: float64(r.Top()), R: float64(r.Right()), T: float64(r.Bottom())}
}

// Touches reports whether the two hitboxes overlap.
func (a *Actor) Touches(other *Actor) bool {
	return a.BB().Intersects(other.BB())
}

func (a *Actor) tickInvulnerable() {
	if a.Invulnerable > 0 {
		a.Invulnerable--
	}
}

// Update runs one tick of movement for everything except hero input, which
// HandleInput covers.
func (a *Actor) Update(w World) {
	if a.Dead {
		return
	}
	switch a.Kind {
	case KindHero:
		a.updateHero(w)
	case KindEnemy:
		a.updateEnemy(w)
	case KindProjectile:
		a.updateProjectile()
	}
}
