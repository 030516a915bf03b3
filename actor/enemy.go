package actor

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/worldtree/ai"
	"github.com/milk9111/worldtree/common"
	"github.com/milk9111/worldtree/prefabs"
	"github.com/milk9111/worldtree/room"
	"go.uber.org/zap"
)

// Enemy movement routines.
const (
	BehaviorWalker  = "walker"
	BehaviorFlyer   = "flyer"
	BehaviorShooter = "shooter"
)

type EnemyState struct {
	Behavior  string
	Brain     ai.Brain
	Range     int
	Cooldown  int
	Boss      bool
	Shot      prefabs.ProjectileSpec
	JumpForce int

	cooldown  int
	brainDown bool
}

func NewEnemy(env *room.Room, code int, spec prefabs.EnemySpec, col, row int, brain ai.Brain) *Actor {
	if brain == nil {
		brain = ai.Patrol{}
	}
	return &Actor{
		Kind:   KindEnemy,
		Name:   spec.Name,
		Code:   code,
		Env:    env,
		Rect:   placeAt(env, col, row, spec.Width, spec.Height),
		Insets: Insets{Left: 1, Top: 1, Right: 1, Bottom: 1},
		Body: Body{
			Accel:            spec.Accel,
			Speed:            spec.Speed,
			Gravity:          spec.Gravity,
			TerminalVelocity: spec.TerminalVelocity,
		},
		Facing:       FacingLeft,
		Vertical:     Fall,
		HP:           spec.HP,
		MaxHP:        spec.HP,
		InvulnFrames: spec.InvulnFrames,
		Damage:       spec.Damage,
		Pushback:     spec.Pushback,
		Enemy: &EnemyState{
			Behavior:  spec.Behavior,
			Brain:     brain,
			Range:     spec.Range,
			Cooldown:  spec.Cooldown,
			Boss:      spec.Boss,
			Shot:      spec.Projectile,
			JumpForce: spec.JumpForce,
			cooldown:  spec.Cooldown,
		},
	}
}

func (a *Actor) updateEnemy(w World) {
	switch a.Enemy.Behavior {
	case BehaviorFlyer:
		a.fly(w)
	case BehaviorShooter:
		a.aimAndShoot(w)
	default:
		a.walkBackAndForth(w)
	}
	a.advance()
	a.settle()
	a.tickInvulnerable()
	if a.Env.IsOutsideMap(a.Hitbox()) {
		a.Dead = true
	}
}

// Senses gathers what a walker's brain needs: whether its next step is
// blocked and whether there is floor under the leading edge.
func (a *Actor) Senses(w World) ai.Senses {
	hb := a.Hitbox()
	checkX := hb.Left() + a.Move.X
	if a.Facing == FacingRight {
		checkX = hb.Right() + a.Move.X
	}
	col, row := a.Env.TileIndexForPoint(checkX, hb.Bottom())
	s := ai.Senses{
		Blocked:     !a.Env.IsMoveLegal(a, a.Move),
		GroundAhead: a.Env.IsTileSupported(col, row),
		Facing:      int(a.Facing),
	}
	if hero := w.Hero(); hero != nil && !hero.Dead {
		s.HeroDX = hero.Rect.CenterX() - a.Rect.CenterX()
		s.HeroDY = hero.Rect.CenterY() - a.Rect.CenterY()
	}
	return s
}

func (a *Actor) walkBackAndForth(w World) {
	a.Walk(a.Facing)
	if a.Vertical != Grounded {
		return
	}
	d, err := a.Enemy.Brain.Decide(a.Senses(w))
	if err != nil {
		if !a.Enemy.brainDown {
			fields := []zap.Field{zap.String("enemy", a.Name), zap.Int("id", a.ID), zap.Error(err)}
			if s, ok := a.Enemy.Brain.(*ai.Script); ok {
				fields = append(fields, zap.String("script", s.Name()))
			}
			w.Logger().Warn("enemy script failed, patrolling instead", fields...)
			a.Enemy.brainDown = true
		}
		a.Enemy.Brain = ai.Patrol{}
		d, _ = a.Enemy.Brain.Decide(a.Senses(w))
	}
	if d.Turn {
		a.Facing = a.Facing.Flip()
	}
	if d.Jump && a.Enemy.JumpForce > 0 {
		a.Move.Y = -a.Enemy.JumpForce
		a.Vertical = Fall
	}
}

// fly homes in on the hero when it is within range and drifts to a stop
// otherwise.
func (a *Actor) fly(w World) {
	hero := w.Hero()
	if hero == nil || hero.Dead || !a.inRange(hero) {
		a.Move.X = approach(a.Move.X, 0, a.Body.Accel)
		a.Move.Y = approach(a.Move.Y, 0, a.Body.Accel)
		return
	}
	dx := hero.Rect.CenterX() - a.Rect.CenterX()
	dy := hero.Rect.CenterY() - a.Rect.CenterY()
	a.Move.X = approach(a.Move.X, common.Sign(dx)*a.Body.Speed, a.Body.Accel)
	a.Move.Y = approach(a.Move.Y, common.Sign(dy)*a.Body.Speed, a.Body.Accel)
	if dx != 0 {
		a.Facing = Facing(common.Sign(dx))
		a.Action = Walk
	}
}

// aimAndShoot stands still, faces the hero and fires when the cooldown
// allows.
func (a *Actor) aimAndShoot(w World) {
	a.StopMoving()
	e := a.Enemy
	if e.cooldown > 0 {
		e.cooldown--
	}
	hero := w.Hero()
	if hero == nil || hero.Dead || !a.inRange(hero) {
		return
	}
	aim := cp.Vector{
		X: float64(hero.Rect.CenterX() - a.Rect.CenterX()),
		Y: float64(hero.Rect.CenterY() - a.Rect.CenterY()),
	}
	if aim.X < 0 {
		a.Facing = FacingLeft
	} else if aim.X > 0 {
		a.Facing = FacingRight
	}
	if e.cooldown > 0 {
		return
	}
	e.cooldown = e.Cooldown
	w.Sound("shoot")
	origin := common.Vec{
		X: a.Rect.CenterX() - e.Shot.Width/2,
		Y: a.Rect.CenterY() - e.Shot.Height/2,
	}
	p := NewProjectile(a.Env, e.Shot, origin, cp.Vector{X: float64(a.Facing)}, false)
	p.Projectile.SetAim(aim)
	w.Spawn(p)
}

func (a *Actor) inRange(other *Actor) bool {
	if a.Enemy.Range <= 0 {
		return true
	}
	d := cp.Vector{
		X: float64(other.Rect.CenterX() - a.Rect.CenterX()),
		Y: float64(other.Rect.CenterY() - a.Rect.CenterY()),
	}
	return d.Length() <= float64(a.Enemy.Range)
}

func approach(v, target, step int) int {
	if step <= 0 {
		return target
	}
	switch {
	case v < target:
		return min(v+step, target)
	case v > target:
		return max(v-step, target)
	}
	return v
}
