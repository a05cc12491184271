package factory

import (
	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/yohamta/donburi/ecs"
)

// collisionCellSize is the resolv grid cell edge in pixels.
const collisionCellSize = 16

// CreateArena populates a fresh world with everything a match needs: the
// collision space, the match state, the player on the left and the first
// enemy on the right.
func CreateArena(ecs *ecs.ECS, seed uint64) *components.MatchData {
	CreateSpace(ecs, cfg.C.Width, cfg.C.Height, collisionCellSize, collisionCellSize)
	match := CreateMatch(ecs, seed)

	CreatePlayer(ecs, cfg.Wave.PlayerStartX)
	CreateEnemy(ecs, cfg.Wave.EnemyStartX, false, cfg.Wave.BaseHealth, cfg.Wave.BaseSpeed)

	return components.Match.Get(match)
}
