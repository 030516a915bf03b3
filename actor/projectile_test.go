package actor

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/worldtree/common"
	"github.com/milk9111/worldtree/prefabs"
	"github.com/stretchr/testify/assert"
)

var seed = prefabs.ProjectileSpec{Name: "seed", Width: 8, Height: 8, Speed: 6, Damage: 1, Lifetime: 10}

func TestProjectileExpires(t *testing.T) {
	env := floorRoom(t, nil)
	w := &fakeWorld{}
	p := NewProjectile(env, seed, common.Vec{X: 136, Y: 215}, cp.Vector{X: 1}, true)

	for range 9 {
		p.Update(w)
	}
	assert.False(t, p.Dead)
	p.Update(w)
	assert.True(t, p.Dead)
	assert.Equal(t, 196, p.Rect.X)
}

func TestProjectileStopsAtWall(t *testing.T) {
	env := floorRoom(t, solid{{4, 4}})
	w := &fakeWorld{}
	p := NewProjectile(env, seed, common.Vec{X: 136, Y: 215}, cp.Vector{X: 1}, true)

	for range 7 {
		p.Update(w)
	}
	assert.False(t, p.Dead)
	p.Update(w)
	assert.True(t, p.Dead)
}

func TestProjectileAim(t *testing.T) {
	env := floorRoom(t, nil)
	p := NewProjectile(env, seed, common.Vec{}, cp.Vector{}, false)
	assert.Equal(t, cp.Vector{X: 1}, p.Projectile.Aim, "zero aim keeps the default")

	p.Projectile.Speed = 5
	p.Projectile.SetAim(cp.Vector{X: -3, Y: 4})
	assert.Equal(t, common.Vec{X: -3, Y: 4}, p.Projectile.Velocity())

	p.Projectile.SetAim(cp.Vector{})
	assert.Equal(t, common.Vec{X: -3, Y: 4}, p.Projectile.Velocity())
}

func TestNewItemAndArea(t *testing.T) {
	env := floorRoom(t, nil)

	it := NewItem(env, 129, prefabs.ItemSpec{Name: "heart", Effect: EffectMaxHP, Amount: 5, Unique: true}, 3, 4, "1/Map1/3,4")
	assert.Equal(t, common.Rect{X: 152, Y: 207, W: 32, H: 32}, it.Rect)
	assert.Equal(t, KindItem, it.Kind)
	assert.True(t, it.Item.Unique)
	assert.Equal(t, "1/Map1/3,4", it.Item.Key)

	ar := NewArea(env, 254, prefabs.AreaSpec{Name: "spike", Damage: 5}, 1, 4, 3)
	assert.Equal(t, common.Rect{X: 48, Y: 192, W: 143, H: 47}, ar.Rect)
	assert.Equal(t, 5, ar.Area.Damage)
}
