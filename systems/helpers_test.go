package systems

import (
	"testing"

	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/systems/factory"
	"github.com/automoto/stickfight/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestArena builds a fresh match world without any systems attached.
func newTestArena(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateArena(e, 1)
	return e
}

func playerOf(t *testing.T, e *ecs.ECS) *components.FighterData {
	t.Helper()
	entry, ok := tags.Player.First(e.World)
	require.True(t, ok, "no player")
	return components.Fighter.Get(entry)
}

func enemyOf(t *testing.T, e *ecs.ECS) *components.FighterData {
	t.Helper()
	entry, ok := tags.Enemy.First(e.World)
	require.True(t, ok, "no active enemy")
	return components.Fighter.Get(entry)
}

// killEnemy drops the active enemy and runs the wave director once.
func killEnemy(t *testing.T, e *ecs.ECS) {
	t.Helper()
	enemy := enemyOf(t, e)
	enemy.HitCooldown = 0
	enemy.TakeDamage(enemy.Health*10, enemy.Position.X)
	require.True(t, enemy.Dead)
	UpdateWaves(e)
}

// press marks actions held for the current tick, as UpdateInput would.
func press(e *ecs.ECS, ids ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Advance()
	input.Press(ids...)
}
