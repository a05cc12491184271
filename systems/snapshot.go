package systems

import (
	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSnapshot captures what the renderers draw this frame. It runs last
// so drawing never observes a half-finished tick.
func UpdateSnapshot(e *ecs.ECS) {
	snap := GetOrCreateSnapshot(e)
	clock := GetOrCreateClock(e)
	wave := GetWave(e)

	snap.Ticks = clock.Ticks
	snap.Phase = clock.Phase
	snap.Wave = wave.Wave
	snap.Score = wave.Score

	snap.HasPlayer = false
	if entry, ok := tags.Player.First(e.World); ok {
		snap.Player = *components.Fighter.Get(entry)
		snap.HasPlayer = true
	}
	snap.HasEnemy = false
	if entry, ok := tags.Enemy.First(e.World); ok {
		snap.Enemy = *components.Fighter.Get(entry)
		snap.HasEnemy = true
	}

	snap.Defeated = snap.Defeated[:0]
	for _, ent := range wave.Defeated {
		if !e.World.Valid(ent) {
			continue
		}
		entry := e.World.Entry(ent)
		if entry.HasComponent(components.Fighter) {
			snap.Defeated = append(snap.Defeated, *components.Fighter.Get(entry))
		}
	}

	snap.GameOver = matchOver(e)
	snap.Paused = GetOrCreatePause(e).IsPaused

	banner := GetOrCreateBanner(e)
	snap.Banner = banner.Text
	snap.BannerAlpha = banner.Alpha

	switch {
	case snap.GameOver:
		snap.Hint = cfg.GameOver.Hint
	case snap.Paused:
		snap.Hint = getPauseHint(getOrCreateInput(e).LastInputMethod)
	default:
		snap.Hint = ""
	}
}

// GetOrCreateSnapshot returns the render snapshot, creating it if needed.
func GetOrCreateSnapshot(e *ecs.ECS) *components.SnapshotData {
	if _, ok := components.Snapshot.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Snapshot))
	}

	ent, _ := components.Snapshot.First(e.World)
	return components.Snapshot.Get(ent)
}
