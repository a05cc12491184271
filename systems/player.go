package systems

import (
	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns this tick's input into fighter actions.
// Must run AFTER UpdateInput.
func UpdatePlayer(ecs *ecs.ECS) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	ApplyPlayerInput(components.Fighter.Get(entry), getOrCreateInput(ecs))
}

// ApplyPlayerInput handles one-shot presses first, then held movement.
// Opposing directions cancel out. A dash keeps going with no direction held.
func ApplyPlayerInput(f *components.FighterData, input *components.InputData) {
	left := GetAction(input, cfg.ActionMoveLeft).Pressed
	right := GetAction(input, cfg.ActionMoveRight).Pressed

	var held float64
	switch {
	case left && !right:
		held = cfg.DirectionLeft
	case right && !left:
		held = cfg.DirectionRight
	}

	if GetAction(input, cfg.ActionAttack).JustPressed {
		f.Attack()
	}
	if GetAction(input, cfg.ActionJump).JustPressed {
		f.Jump()
	}
	if GetAction(input, cfg.ActionAerialAttack).JustPressed {
		f.AerialAttack()
	}
	if GetAction(input, cfg.ActionDash).JustPressed {
		f.Dash(held)
	}

	if held != 0 {
		f.Move(held * f.Speed)
	} else if f.Dashing {
		f.Move(0)
	}
}
