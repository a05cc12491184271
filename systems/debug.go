package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/stickfight/components"
	"github.com/automoto/stickfight/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every body in the collision space and prints the
// tick rate. It reads the space directly since bodies are not part of the
// render snapshot.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvEnemy) {
				c = color.RGBA{255, 0, 0, 255} // Red
			} else if obj.HasTags(tags.ResolvReach) {
				c = color.RGBA{0, 200, 0, 255} // Green
			}

			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	snap := GetOrCreateSnapshot(ecs)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f  tick: %d", ebiten.ActualTPS(), snap.Ticks), 10, 90)
}
