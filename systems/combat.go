package systems

import (
	"math"

	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EnemyDamage is what one enemy swing costs the player on the given wave.
func EnemyDamage(wave int) float64 {
	return cfg.Combat.EnemyBaseDamage + min(cfg.Combat.EnemyDamagePerWave*float64(wave), cfg.Combat.EnemyDamageCap)
}

// UpdateCombat resolves hits between the player and the active enemy.
// Bodies must already be synced into the space by UpdateObjects.
func UpdateCombat(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	enemyEntry, ok := tags.Enemy.First(ecs.World)
	if !ok {
		return
	}

	player := components.Fighter.Get(playerEntry)
	enemy := components.Fighter.Get(enemyEntry)

	// --------------------------------------------------------------------
	// 1. Player ground swing lands on its damage frame
	// --------------------------------------------------------------------
	if swingLands(player) && inReach(ecs, player.Position.X, enemyEntry, cfg.Combat.Reach) {
		enemy.TakeDamage(cfg.Combat.PlayerDamage, player.Position.X)
	}

	// --------------------------------------------------------------------
	// 2. Player aerial spin hits anything close enough, every tick
	// --------------------------------------------------------------------
	if !player.Dead && player.Spinning && inReach(ecs, player.Position.X, enemyEntry, cfg.Combat.SpinReach) {
		enemy.TakeDamage(cfg.Combat.SpinDamage, player.Position.X)
	}

	// --------------------------------------------------------------------
	// 3. Enemy swing, scaled by wave
	// --------------------------------------------------------------------
	if swingLands(enemy) && inReach(ecs, enemy.Position.X, playerEntry, cfg.Combat.Reach) {
		player.TakeDamage(EnemyDamage(GetWave(ecs).Wave), enemy.Position.X)
	}
}

func swingLands(f *components.FighterData) bool {
	return !f.Dead && f.Attacking && f.AttackFrame == f.Tuning.DamageFrame
}

// inReach reports whether target stands strictly closer than reach to x.
// The space narrows the candidates; the distance test is exact.
func inReach(ecs *ecs.ECS, x float64, target *donburi.Entry, reach float64) bool {
	tx := components.Fighter.Get(target).Position.X
	if math.Abs(tx-x) >= reach {
		return false
	}

	candidates, ok := candidatesInReach(ecs, x, reach)
	if !ok {
		// no collision space, the exact test already decided
		return true
	}
	for _, e := range candidates {
		if e.Entity() == target.Entity() {
			return true
		}
	}
	return false
}

// candidatesInReach sweeps the reach probe across [x-reach, x+reach] and
// returns every fighter whose body shares a cell with it.
func candidatesInReach(ecs *ecs.ECS, x, reach float64) ([]*donburi.Entry, bool) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, false
	}
	probe := components.Reach.Get(spaceEntry).Object
	if probe == nil {
		return nil, false
	}

	left := math.Max(x-reach, 0)
	right := math.Min(x+reach, float64(cfg.C.Width))
	probe.X = left
	probe.Y = 0
	probe.W = math.Max(right-left, 1)
	probe.Update()

	var found []*donburi.Entry
	if check := probe.Check(0, 0, tags.ResolvFighter); check != nil {
		for _, obj := range check.Objects {
			if e, ok := obj.Data.(*donburi.Entry); ok && e.Valid() {
				found = append(found, e)
			}
		}
	}
	return found, true
}
