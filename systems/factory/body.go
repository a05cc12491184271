package factory

import (
	"math/rand/v2"

	"github.com/automoto/stickfight/components"
	"github.com/automoto/stickfight/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// bodyWidthRatio is the collision body width as a fraction of fighter size.
const bodyWidthRatio = 0.4

// attachBody gives a fighter its collision body and registers it in the
// arena space, if there is one.
func attachBody(ecs *ecs.ECS, e *donburi.Entry, f *components.FighterData, sideTag string) {
	w := f.Size * bodyWidthRatio
	obj := resolv.NewObject(f.Position.X-w/2, f.Position.Y-f.Size, w, f.Size)
	obj.SetShape(resolv.NewRectangle(0, 0, w, f.Size))
	obj.AddTags(tags.ResolvFighter, sideTag)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// matchRNG returns the match's random source so every fighter draws from
// the same seeded stream.
func matchRNG(ecs *ecs.ECS) *rand.Rand {
	if entry, ok := components.Match.First(ecs.World); ok {
		if m := components.Match.Get(entry); m.RNG != nil {
			return m.RNG
		}
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
