package systems

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/tags"
	"github.com/yohamta/donburi/ecs"
)

// EnemyAction is what the enemy controller chose for this tick.
type EnemyAction int

const (
	EnemyWait EnemyAction = iota
	EnemyAttack
	EnemyAdvance
)

// ReactionInterval is how many ticks pass between enemy decisions.
func ReactionInterval(wave int) int {
	return max(cfg.EnemyAI.BaseInterval-wave/cfg.EnemyAI.IntervalWaveStep, cfg.EnemyAI.MinInterval)
}

// AttackChance is the probability an enemy in reach swings on a decision tick.
func AttackChance(wave int) float64 {
	return min(cfg.EnemyAI.BaseAttackChance+cfg.EnemyAI.AttackChancePerWave*float64(wave), cfg.EnemyAI.MaxAttackChance)
}

// SpeedFactor scales the enemy's speed while closing distance.
func SpeedFactor(wave int) float64 {
	return min(cfg.EnemyAI.BaseSpeedFactor+cfg.EnemyAI.SpeedFactorPerWave*float64(wave), cfg.EnemyAI.MaxSpeedFactor)
}

// DecideEnemyAction returns the enemy's choice for this tick and, for
// EnemyAdvance, the horizontal step to take. The rng is only consulted when
// an attack roll happens.
func DecideEnemyAction(wave, tick int, enemy *components.FighterData, playerX float64, rng *rand.Rand) (EnemyAction, float64) {
	if enemy.Dead || tick%ReactionInterval(wave) != 0 {
		return EnemyWait, 0
	}

	dx := playerX - enemy.Position.X
	if math.Abs(dx) < cfg.EnemyAI.Proximity && !enemy.Attacking {
		if rng.Float64() < AttackChance(wave) {
			return EnemyAttack, 0
		}
		return EnemyWait, 0
	}

	step := enemy.Speed * SpeedFactor(wave)
	switch {
	case dx < 0:
		return EnemyAdvance, -step
	case dx > 0:
		return EnemyAdvance, step
	}
	return EnemyWait, 0
}

// UpdateEnemyAI drives the active enemy toward the player.
func UpdateEnemyAI(ecs *ecs.ECS) {
	enemyEntry, ok := tags.Enemy.First(ecs.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	enemy := components.Fighter.Get(enemyEntry)
	player := components.Fighter.Get(playerEntry)
	wave := GetWave(ecs)
	clock := GetOrCreateClock(ecs)

	action, step := DecideEnemyAction(wave.Wave, clock.Ticks, enemy, player.Position.X, enemy.RNG)
	switch action {
	case EnemyAttack:
		enemy.Attack()
	case EnemyAdvance:
		enemy.Move(step)
	}
}
