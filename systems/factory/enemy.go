package factory

import (
	"github.com/automoto/stickfight/archetypes"
	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy standing at x. Health and speed come from the
// wave director's scaling.
func CreateEnemy(ecs *ecs.ECS, x float64, facingRight bool, health, speed float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	fighter := components.NewFighter(
		components.SideEnemy,
		x, facingRight,
		health, speed,
		components.ArenaFromConfig(cfg.C),
		&cfg.Fighter,
		matchRNG(ecs),
	)
	components.Fighter.SetValue(enemy, fighter)
	attachBody(ecs, enemy, &fighter, tags.ResolvEnemy)

	return enemy
}
