package actor

import (
	"errors"
	"testing"

	"github.com/milk9111/worldtree/ai"
	"github.com/milk9111/worldtree/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func walkerSpec() prefabs.EnemySpec {
	return prefabs.EnemySpec{
		Name:             "beaver",
		Behavior:         BehaviorWalker,
		Width:            40,
		Height:           40,
		HP:               3,
		Damage:           2,
		Accel:            1,
		Speed:            2,
		Gravity:          2,
		TerminalVelocity: 10,
		Pushback:         16,
	}
}

type brokenBrain struct{}

func (brokenBrain) Decide(ai.Senses) (ai.Decision, error) {
	return ai.Decision{}, errors.New("boom")
}

func TestWalkerTurnsAtRoomEdge(t *testing.T) {
	env := floorRoom(t, nil)
	w := &fakeWorld{}
	e := NewEnemy(env, 1, walkerSpec(), 0, 4, nil)
	require.Equal(t, FacingLeft, e.Facing)

	for range 5 {
		e.Update(w)
		if e.Facing == FacingRight {
			break
		}
	}
	assert.Equal(t, FacingRight, e.Facing)
	assert.Equal(t, Grounded, e.Vertical)
	assert.GreaterOrEqual(t, e.Hitbox().Left(), 0)
}

func TestWalkerSenses(t *testing.T) {
	env := floorRoom(t, solid{{3, 4}})
	w := &fakeWorld{}
	e := NewEnemy(env, 1, walkerSpec(), 5, 4, nil)
	for range 3 {
		e.Update(w)
	}
	require.Equal(t, Grounded, e.Vertical)

	s := e.Senses(w)
	assert.True(t, s.GroundAhead)
	assert.False(t, s.Blocked)
	assert.Equal(t, -1, s.Facing)
	assert.Zero(t, s.HeroDX, "no hero")
}

func TestBrokenBrainFallsBackToPatrol(t *testing.T) {
	env := floorRoom(t, nil)
	core, logs := observer.New(zap.WarnLevel)
	w := &fakeWorld{log: zap.New(core)}
	e := NewEnemy(env, 1, walkerSpec(), 5, 4, brokenBrain{})

	for range 5 {
		e.Update(w)
	}
	assert.IsType(t, ai.Patrol{}, e.Enemy.Brain)
	assert.False(t, e.Dead)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "beaver", logs.All()[0].ContextMap()["enemy"])
}

func TestFlyerChasesHeroInRange(t *testing.T) {
	env := floorRoom(t, nil)
	w := &fakeWorld{}
	groundedHero(t, env, w)

	spec := prefabs.EnemySpec{
		Name: "dragonfly", Behavior: BehaviorFlyer,
		Width: 40, Height: 30, HP: 2, Accel: 1, Speed: 3, Range: 1000,
	}
	e := NewEnemy(env, 2, spec, 6, 1, nil)
	start := e.Rect

	e.Update(w)
	assert.Equal(t, start.X-1, e.Rect.X)
	assert.Equal(t, start.Y+1, e.Rect.Y)
	assert.Equal(t, FacingLeft, e.Facing)

	t.Run("out of range drifts to a stop", func(t *testing.T) {
		spec.Range = 10
		e := NewEnemy(env, 2, spec, 6, 1, nil)
		e.Move.X, e.Move.Y = 3, 3
		e.Update(w)
		assert.Equal(t, 2, e.Move.X)
		assert.Equal(t, 2, e.Move.Y)
	})
}

func TestShooterFiresOnCooldown(t *testing.T) {
	env := floorRoom(t, nil)
	w := &fakeWorld{}
	groundedHero(t, env, w)

	spec := prefabs.EnemySpec{
		Name: "shooter", Behavior: BehaviorShooter,
		Width: 40, Height: 60, HP: 4, Gravity: 2, TerminalVelocity: 10, Cooldown: 3,
		Projectile: prefabs.ProjectileSpec{Name: "spit", Width: 8, Height: 8, Speed: 4, Damage: 1, Lifetime: 30},
	}
	e := NewEnemy(env, 4, spec, 7, 4, nil)

	e.Update(w)
	e.Update(w)
	assert.Empty(t, w.spawned)
	e.Update(w)
	require.Len(t, w.spawned, 1)

	p := w.spawned[0]
	assert.False(t, p.Projectile.FromHero)
	assert.Less(t, p.Projectile.Aim.X, 0.0)
	assert.Equal(t, FacingLeft, e.Facing)
	assert.Contains(t, w.sounds, "shoot")
}

func TestEnemyOutsideMapDies(t *testing.T) {
	env := floorRoom(t, nil)
	w := &fakeWorld{}
	e := NewEnemy(env, 1, walkerSpec(), 5, 4, nil)
	e.Rect.Y += 1000
	e.Update(w)
	assert.True(t, e.Dead)
}
