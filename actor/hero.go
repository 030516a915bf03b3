package actor

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/worldtree/common"
	"github.com/milk9111/worldtree/prefabs"
	"github.com/milk9111/worldtree/room"
)

// Actions is the set of buttons held this tick.
type Actions uint8

const (
	ActLeft Actions = 1 << iota
	ActRight
	ActJump
	ActAttack
	ActShoot
)

func (a Actions) Has(b Actions) bool { return a&b != 0 }

type HeroState struct {
	MaxJumps       int
	JumpForce      int
	JumpDuration   int
	AttackDuration int
	AttackReach    int
	ShootCooldown  int
	Ammo           int
	MaxAmmo        int
	Shot           prefabs.ProjectileSpec

	jumpsLeft   int
	jumpFrames  int
	jumpReady   bool
	attackReady bool
	attacking   int
	cooldown    int
}

func NewHero(env *room.Room, spec *prefabs.HeroSpec, col, row int) *Actor {
	maxJumps := max(1, spec.MaxJumps)
	a := &Actor{
		Kind:   KindHero,
		Name:   spec.Name,
		Env:    env,
		Rect:   placeAt(env, col, row, spec.Width, spec.Height),
		Insets: Insets(spec.Hitbox),
		Body: Body{
			Accel:            spec.Accel,
			Speed:            spec.Speed,
			Gravity:          spec.Gravity,
			TerminalVelocity: spec.TerminalVelocity,
		},
		Facing:       FacingRight,
		Vertical:     Fall,
		HP:           spec.HP,
		MaxHP:        spec.HP,
		InvulnFrames: spec.InvulnFrames,
		Damage:       spec.Damage,
		Pushback:     spec.Pushback,
		Player:       true,
		Hero: &HeroState{
			MaxJumps:       maxJumps,
			JumpForce:      spec.JumpForce,
			JumpDuration:   spec.JumpDuration,
			AttackDuration: spec.AttackDuration,
			AttackReach:    spec.AttackReach,
			ShootCooldown:  spec.ShootCooldown,
			Ammo:           spec.Ammo,
			MaxAmmo:        spec.Ammo,
			Shot:           spec.Projectile,
			jumpsLeft:      maxJumps,
			jumpReady:      true,
			attackReady:    true,
		},
	}
	return a
}

// Attacking reports whether the melee lockout is running.
func (a *Actor) Attacking() bool {
	return a.Hero != nil && a.Hero.attacking > 0
}

// JumpsLeft is the number of jumps available before landing again.
func (a *Actor) JumpsLeft() int {
	if a.Hero == nil {
		return 0
	}
	return a.Hero.jumpsLeft
}

// HandleInput turns the held buttons into velocity and state changes.
func (a *Actor) HandleInput(in Actions, w World) {
	h := a.Hero
	if h == nil || a.Dead {
		return
	}

	if h.attacking > 0 {
		a.StopMoving()
	}
	left, right := in.Has(ActLeft), in.Has(ActRight)
	switch {
	case left == right:
		a.StopMoving()
	case a.Vertical == Grounded && h.attacking > 0:
		// Rooted while swinging on the ground.
	case left:
		a.Walk(FacingLeft)
	default:
		a.Walk(FacingRight)
	}

	if in.Has(ActJump) {
		a.doJump(w)
		h.jumpReady = false
	} else {
		a.stopUpwardMovement()
		h.jumpReady = true
	}

	if in.Has(ActAttack) {
		if h.attacking <= 0 && h.attackReady {
			a.startAttack(w)
		}
		h.attackReady = false
	} else {
		h.attackReady = true
		if in.Has(ActShoot) && h.attacking <= 0 && h.cooldown <= 0 && h.Ammo > 0 {
			a.shoot(w)
		}
	}

	if h.attacking > 0 {
		h.attacking--
		if h.attacking == 0 {
			a.Action = Stand
		}
	}
}

func (a *Actor) doJump(w World) {
	h := a.Hero
	if h.jumpReady && h.jumpsLeft > 0 {
		w.Sound("jump")
		a.Vertical = Jump
		h.jumpsLeft--
		h.jumpFrames = h.JumpDuration
		a.Move.Y = -h.JumpForce
		return
	}
	if a.Vertical == Jump {
		h.jumpFrames--
		if h.jumpFrames <= 0 {
			a.Vertical = Fall
		}
	}
}

func (a *Actor) stopUpwardMovement() {
	if a.Vertical == Jump {
		a.Vertical = Fall
		a.Hero.jumpFrames = 0
	}
}

func (a *Actor) startAttack(w World) {
	w.Sound("attack")
	a.Hero.attacking = a.Hero.AttackDuration
	a.Action = Attack
}

func (a *Actor) shoot(w World) {
	h := a.Hero
	h.Ammo--
	h.cooldown = h.ShootCooldown
	w.Sound("shoot")

	x := a.Rect.Right()
	if a.Facing == FacingLeft {
		x = a.Rect.Left() - h.Shot.Width
	}
	origin := common.Vec{X: x, Y: a.Rect.CenterY() - h.Shot.Height/2}
	w.Spawn(NewProjectile(a.Env, h.Shot, origin, cp.Vector{X: float64(a.Facing)}, true))
}

// AttackBox is the melee reach in map space while an attack is running.
func (a *Actor) AttackBox() (common.Rect, bool) {
	if !a.Attacking() {
		return common.Rect{}, false
	}
	hb := a.Hitbox()
	reach := a.Hero.AttackReach
	if a.Facing == FacingLeft {
		hb.X -= reach
	}
	hb.W += reach
	return hb, true
}

func (a *Actor) updateHero(w World) {
	want := a.Move
	got := a.advance()
	if a.Vertical == Jump && got.Y > want.Y {
		// Hit a ceiling.
		a.Vertical = Fall
		a.Hero.jumpFrames = 0
	}
	a.settle()
	a.tickInvulnerable()
	if a.Hero.cooldown > 0 {
		a.Hero.cooldown--
	}
}

// Collect applies a pickup's effect to the hero.
func (a *Actor) Collect(item *ItemState) {
	h := a.Hero
	if h == nil || item == nil {
		return
	}
	switch item.Effect {
	case EffectMaxHP:
		a.RaiseMaxHP(item.Amount)
	case EffectMaxJumps:
		h.MaxJumps += item.Amount
		h.jumpsLeft = min(h.jumpsLeft+item.Amount, h.MaxJumps)
	case EffectMaxAmmo:
		h.MaxAmmo += item.Amount
		h.Ammo = min(h.Ammo+item.Amount, h.MaxAmmo)
	case EffectHeal:
		a.RecoverHealth(item.Amount)
	case EffectAmmo:
		h.Ammo = min(h.Ammo+item.Amount, h.MaxAmmo)
	}
}

// ChangeRooms moves the hero into env with its hitbox at hb (map space of
// env). The caller sets env's camera first.
func (a *Actor) ChangeRooms(env *room.Room, hb common.Rect) {
	a.Env = env
	a.SetHitbox(hb)
}
