package systems

import (
	"github.com/automoto/stickfight/components"
	"github.com/automoto/stickfight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFighters advances every fighter one tick: the player, the active
// enemy, then the fallen bodies so their effects finish fading.
func UpdateFighters(ecs *ecs.ECS) {
	for _, tag := range []donburi.IComponentType{tags.Player, tags.Enemy, tags.Defeated} {
		components.Fighter.Each(ecs.World, func(e *donburi.Entry) {
			if e.HasComponent(tag) {
				components.Fighter.Get(e).Update()
			}
		})
	}
}
