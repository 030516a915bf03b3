package actor

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/worldtree/common"
	"github.com/milk9111/worldtree/prefabs"
	"github.com/milk9111/worldtree/room"
)

type ProjectileState struct {
	// Aim is a unit vector.
	Aim      cp.Vector
	Speed    int
	Life     int
	FromHero bool
}

// SetAim points the projectile along v. A zero vector has no direction, so
// the previous aim is kept.
func (p *ProjectileState) SetAim(v cp.Vector) {
	if v.Length() > 0 {
		p.Aim = v.Normalize()
	}
}

// Velocity is the aim scaled to speed, rounded to whole pixels.
func (p *ProjectileState) Velocity() common.Vec {
	v := p.Aim.Mult(float64(p.Speed))
	return common.Vec{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}

// NewProjectile creates a shot whose screen rect starts at origin.
func NewProjectile(env *room.Room, spec prefabs.ProjectileSpec, origin common.Vec, aim cp.Vector, fromHero bool) *Actor {
	p := &ProjectileState{
		Aim:      cp.Vector{X: 1},
		Speed:    spec.Speed,
		Life:     spec.Lifetime,
		FromHero: fromHero,
	}
	p.SetAim(aim)
	return &Actor{
		Kind:       KindProjectile,
		Name:       spec.Name,
		Env:        env,
		Rect:       common.Rect{X: origin.X, Y: origin.Y, W: spec.Width, H: spec.Height},
		Damage:     spec.Damage,
		HP:         1,
		MaxHP:      1,
		Projectile: p,
	}
}

func (a *Actor) updateProjectile() {
	p := a.Projectile
	a.Move = p.Velocity()
	if got := a.advance(); got != a.Move {
		a.Dead = true
		return
	}
	if p.Life > 0 {
		p.Life--
		if p.Life == 0 {
			a.Dead = true
		}
	}
}
