package systems

import (
	"math"

	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves every fighter body to where its fighter stands and
// re-registers it with the space.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Object == nil || !e.HasComponent(components.Fighter) {
			continue
		}
		f := components.Fighter.Get(e)

		obj.X = f.Position.X - obj.W/2
		obj.Y = math.Max(0, math.Min(f.Position.Y-obj.H, float64(cfg.C.Height)-obj.H))
		obj.Update()
	}
}
