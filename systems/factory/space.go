package factory

import (
	"github.com/automoto/stickfight/archetypes"
	"github.com/automoto/stickfight/components"
	"github.com/automoto/stickfight/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the collision grid plus the probe used to query it.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)

	probe := resolv.NewObject(0, 0, 1, float64(height), tags.ResolvReach)
	spaceData.Add(probe)
	components.Reach.SetValue(space, components.ObjectData{Object: probe})

	return space
}
