package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/worldtree/actor"
)

// Input samples the keyboard and the first gamepad once per tick.
type Input struct {
	Held actor.Actions

	PausePressed   bool
	RestartPressed bool
	CopyPressed    bool
	DebugPressed   bool
	SavePressed    bool
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Update() {
	const stickDeadzone = 0.2

	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	jump := ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyW)
	attack := ebiten.IsKeyPressed(ebiten.KeyJ) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	shoot := ebiten.IsKeyPressed(ebiten.KeyK) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)

	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
	i.RestartPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.CopyPressed = inpututil.IsKeyJustPressed(ebiten.KeyF2)
	i.DebugPressed = inpututil.IsKeyJustPressed(ebiten.KeyF3)
	i.SavePressed = inpututil.IsKeyJustPressed(ebiten.KeyF5)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			left = left || leftX < 0
			right = right || leftX > 0
		}
		left = left || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		right = right || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		jump = jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		attack = attack || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft)
		shoot = shoot || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightRight)
		i.PausePressed = i.PausePressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
		i.RestartPressed = i.RestartPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterLeft)
	}

	var held actor.Actions
	if left {
		held |= actor.ActLeft
	}
	if right {
		held |= actor.ActRight
	}
	if jump {
		held |= actor.ActJump
	}
	if attack {
		held |= actor.ActAttack
	}
	if shoot {
		held |= actor.ActShoot
	}
	i.Held = held
}
