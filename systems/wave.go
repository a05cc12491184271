package systems

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/systems/factory"
	"github.com/automoto/stickfight/tags"
	"github.com/yohamta/donburi/ecs"
)

// EnemyStats is the health and speed of the enemy that replaces the one
// defeated on wave cleared.
func EnemyStats(cleared int) (health, speed float64) {
	health = cfg.Wave.BaseHealth + cfg.Wave.HealthPerWave*float64(cleared)
	speed = min(cfg.Wave.BaseSpeed+cfg.Wave.SpeedPerWave*float64(cleared), cfg.Wave.MaxSpeed)
	return health, speed
}

// SpawnPoint picks a side with a coin flip and a spot in that third of the
// arena. Enemies on the left face right and vice versa.
func SpawnPoint(rng *rand.Rand) (x float64, facingRight bool) {
	width := cfg.C.Width
	margin := int(cfg.C.EdgeMargin)

	if rng.IntN(2) == 0 {
		lo, hi := margin, width/3
		return float64(lo + rng.IntN(hi-lo+1)), true
	}
	lo, hi := 2*width/3, width-margin
	return float64(lo + rng.IntN(hi-lo+1)), false
}

// UpdateWaves archives a defeated enemy, scores the wave and sends in the
// next, tougher enemy.
func UpdateWaves(e *ecs.ECS) {
	enemyEntry, ok := tags.Enemy.First(e.World)
	if !ok {
		return
	}
	enemy := components.Fighter.Get(enemyEntry)
	if !enemy.Dead || enemy.Archived {
		return
	}
	enemy.Archived = true
	rng := enemy.RNG

	// The body leaves the space; the fighter stays around to be drawn.
	if enemyEntry.HasComponent(components.Object) {
		if obj := components.Object.Get(enemyEntry).Object; obj != nil && obj.Space != nil {
			obj.Space.Remove(obj)
		}
		enemyEntry.RemoveComponent(components.Object)
	}
	enemyEntry.RemoveComponent(tags.Enemy)
	enemyEntry.AddComponent(tags.Defeated)

	wave := GetWave(e)
	for _, old := range wave.PushDefeated(enemyEntry.Entity()) {
		if e.World.Valid(old) {
			e.World.Remove(old)
		}
	}

	cleared, points := wave.Clear(cfg.Wave.ScorePerWave)

	if match, ok := GetMatch(e); ok && match.RNG != nil {
		rng = match.RNG
	}
	x, facingRight := SpawnPoint(rng)
	health, speed := EnemyStats(cleared)
	factory.CreateEnemy(e, x, facingRight, health, speed)

	ShowBanner(e, fmt.Sprintf("WAVE %d", wave.Wave))
	PlaySFX(e, cfg.SoundWaveClear)

	if match, ok := GetMatch(e); ok {
		log.Printf("match %s: wave %d cleared (+%d, score %d)", match.ID, cleared, points, wave.Score)
	}
}
