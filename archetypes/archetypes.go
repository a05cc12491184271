package archetypes

import (
	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Fighter,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Fighter,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
		components.Reach,
	)
	Match = newArchetype(
		components.Match,
		components.Wave,
		components.Clock,
		components.Banner,
		components.Snapshot,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
