package systems

import (
	"testing"

	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

// swingAt puts f on the damage frame of a ground attack.
func swingAt(f *components.FighterData) {
	f.Attacking = true
	f.AttackFrame = f.Tuning.DamageFrame
}

func resolve(e *ecs.ECS) {
	UpdateObjects(e)
	UpdateCombat(e)
}

func TestPlayerSwingHitsEnemyFacingIt(t *testing.T) {
	e := newTestArena(t)
	player, enemy := playerOf(t, e), enemyOf(t, e)
	enemy.Position.X = player.Position.X + 70
	enemy.FacingRight = false

	swingAt(player)
	resolve(e)

	assert.Equal(t, 80.0, enemy.Health)
	assert.Equal(t, cfg.Fighter.HitCooldown, enemy.HitCooldown)
}

func TestPlayerSwingFromBehindIsHalved(t *testing.T) {
	e := newTestArena(t)
	player, enemy := playerOf(t, e), enemyOf(t, e)
	enemy.Position.X = player.Position.X + 70
	enemy.FacingRight = true

	swingAt(player)
	resolve(e)

	assert.Equal(t, 90.0, enemy.Health)
	assert.Equal(t, cfg.Fighter.GuardHitCooldown, enemy.HitCooldown)
}

func TestSwingOutsideReachMisses(t *testing.T) {
	e := newTestArena(t)
	player, enemy := playerOf(t, e), enemyOf(t, e)
	enemy.Position.X = player.Position.X + cfg.Combat.Reach

	swingAt(player)
	resolve(e)

	assert.Equal(t, 100.0, enemy.Health)
}

func TestSwingOnlyLandsOnDamageFrame(t *testing.T) {
	e := newTestArena(t)
	player, enemy := playerOf(t, e), enemyOf(t, e)
	enemy.Position.X = player.Position.X + 30

	player.Attacking = true
	player.AttackFrame = player.Tuning.DamageFrame - 1
	resolve(e)

	assert.Equal(t, 100.0, enemy.Health)
}

func TestSpinHitsWithinWiderReach(t *testing.T) {
	e := newTestArena(t)
	player, enemy := playerOf(t, e), enemyOf(t, e)
	enemy.Position.X = player.Position.X + 90
	enemy.FacingRight = false
	player.Spinning = true

	resolve(e)
	assert.Equal(t, 65.0, enemy.Health)

	// invulnerable for the rest of the spin
	resolve(e)
	assert.Equal(t, 65.0, enemy.Health)
}

func TestEnemySwingScalesWithWave(t *testing.T) {
	e := newTestArena(t)
	player, enemy := playerOf(t, e), enemyOf(t, e)
	enemy.Position.X = player.Position.X + 50
	player.FacingRight = true

	swingAt(enemy)
	resolve(e)

	assert.InDelta(t, 100-EnemyDamage(1), player.Health, 1e-9)
	assert.InDelta(t, 6.3, EnemyDamage(1), 1e-9)
}

func TestDeadAttackerDealsNoDamage(t *testing.T) {
	e := newTestArena(t)
	player, enemy := playerOf(t, e), enemyOf(t, e)
	enemy.Position.X = player.Position.X + 50

	swingAt(enemy)
	enemy.Dead = true
	resolve(e)

	assert.Equal(t, 100.0, player.Health)
}

func TestEnemyDamageIsCapped(t *testing.T) {
	assert.InDelta(t, 6.0+cfg.Combat.EnemyDamageCap, EnemyDamage(50), 1e-9)
	assert.Greater(t, EnemyDamage(5), EnemyDamage(1))
}

func TestCandidatesComeFromTheSpace(t *testing.T) {
	e := newTestArena(t)
	player, enemy := playerOf(t, e), enemyOf(t, e)
	UpdateObjects(e)

	near, ok := candidatesInReach(e, player.Position.X, cfg.Combat.Reach)
	require.True(t, ok)
	require.Len(t, near, 1, "only the player stands near the left edge")

	far, ok := candidatesInReach(e, enemy.Position.X, cfg.Combat.Reach)
	require.True(t, ok)
	require.Len(t, far, 1)
	assert.NotEqual(t, near[0].Entity(), far[0].Entity())
}
