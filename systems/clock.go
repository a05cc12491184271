package systems

import (
	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock counts simulation ticks and advances the idle sway phase.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	clock.Ticks++
	clock.Phase += cfg.Stickman.SwayRate
}

// GetOrCreateClock returns the tick counter, creating it if needed.
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	if _, ok := components.Clock.First(ecs.World); !ok {
		ecs.World.Entry(ecs.World.Create(components.Clock))
	}

	ent, _ := components.Clock.First(ecs.World)
	return components.Clock.Get(ent)
}
