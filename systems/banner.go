package systems

import (
	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// ShowBanner starts a fade in, hold, fade out announcement. A new banner
// replaces whatever is showing.
func ShowBanner(ecs *ecs.ECS, text string) {
	banner := GetOrCreateBanner(ecs)
	banner.Text = text
	banner.Alpha = 0

	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, 255, cfg.Wave.BannerFadeIn, ease.OutQuad),
		gween.New(255, 255, cfg.Wave.BannerHold, ease.Linear),
		gween.New(255, 0, cfg.Wave.BannerFadeOut, ease.InQuad),
	)
	banner.Tween = tw
}

// UpdateBanner steps the banner fade by one tick.
func UpdateBanner(ecs *ecs.ECS) {
	banner := GetOrCreateBanner(ecs)
	if !banner.Active() {
		return
	}

	alpha, _, done := banner.Tween.Update(1 / float32(cfg.C.TPS))
	banner.Alpha = alpha
	if done {
		banner.Alpha = 0
		banner.Tween = nil
		banner.Text = ""
	}
}

// GetOrCreateBanner returns the banner singleton, creating it if needed.
func GetOrCreateBanner(ecs *ecs.ECS) *components.BannerData {
	if _, ok := components.Banner.First(ecs.World); !ok {
		ecs.World.Entry(ecs.World.Create(components.Banner))
	}

	ent, _ := components.Banner.First(ecs.World)
	return components.Banner.Get(ent)
}
