package actor

import (
	"github.com/milk9111/worldtree/common"
	"github.com/milk9111/worldtree/prefabs"
	"github.com/milk9111/worldtree/room"
)

// Pickup effects.
const (
	EffectMaxHP    = "max_hp"
	EffectMaxJumps = "max_jumps"
	EffectMaxAmmo  = "max_ammo"
	EffectHeal     = "heal"
	EffectAmmo     = "ammo"
)

type ItemState struct {
	Effect string
	Amount int
	Unique bool
	// Key identifies a unique pickup across visits.
	Key string
}

type AreaState struct {
	Damage int
}

const pickupSize = 32

// NewItem places a pickup centered on the bottom of a tile.
func NewItem(env *room.Room, code int, spec prefabs.ItemSpec, col, row int, key string) *Actor {
	tr := env.RectForTile(col, row)
	pad := (tr.W + 1 - pickupSize) / 2
	m := common.Rect{X: tr.Left() + pad, Y: tr.Bottom() - pickupSize, W: pickupSize, H: pickupSize}
	return &Actor{
		Kind: KindItem,
		Name: spec.Name,
		Code: code,
		Env:  env,
		Rect: env.MapToScreen(m),
		HP:   1,
		Item: &ItemState{
			Effect: spec.Effect,
			Amount: spec.Amount,
			Unique: spec.Unique,
			Key:    key,
		},
	}
}

// NewArea creates a hazard strip width tiles wide.
func NewArea(env *room.Room, code int, spec prefabs.AreaSpec, col, row, width int) *Actor {
	tr := env.RectForTile(col, row)
	m := common.Rect{X: tr.Left(), Y: tr.Top(), W: width*(tr.W+1) - 1, H: tr.H}
	return &Actor{
		Kind:   KindArea,
		Name:   spec.Name,
		Code:   code,
		Env:    env,
		Rect:   env.MapToScreen(m),
		HP:     1,
		Damage: spec.Damage,
		Area:   &AreaState{Damage: spec.Damage},
	}
}
