package factory

import (
	"github.com/automoto/stickfight/archetypes"
	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	fighter := components.NewFighter(
		components.SidePlayer,
		x, true,
		cfg.Wave.BaseHealth, cfg.Fighter.Speed,
		components.ArenaFromConfig(cfg.C),
		&cfg.Fighter,
		matchRNG(ecs),
	)
	components.Fighter.SetValue(player, fighter)
	attachBody(ecs, player, &fighter, tags.ResolvPlayer)

	return player
}
