package systems

import (
	"fmt"

	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the wave counter and score in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	drawHUD(GetOrCreateSnapshot(ecs), newScreenSurface(screen))
}

func drawHUD(snap *components.SnapshotData, s Surface) {
	if snap.GameOver {
		return
	}
	s.Text(fmt.Sprintf("Wave: %d", snap.Wave), fonts.HUD, cfg.UI.WaveTextX, cfg.UI.WaveTextY, AlignLeft, cfg.UI.TextColor)
	s.Text(fmt.Sprintf("Score: %d", snap.Score), fonts.HUD, cfg.UI.ScoreTextX, cfg.UI.ScoreTextY, AlignLeft, cfg.UI.TextColor)
}

// DrawBanner renders the fading wave announcement.
func DrawBanner(ecs *ecs.ECS, screen *ebiten.Image) {
	drawBanner(GetOrCreateSnapshot(ecs), newScreenSurface(screen))
}

func drawBanner(snap *components.SnapshotData, s Surface) {
	if snap.GameOver || snap.Banner == "" || snap.BannerAlpha <= 0 {
		return
	}
	w, h := s.Size()
	s.Text(snap.Banner, fonts.HUD, w/2, h/3, AlignCenter, withAlpha(cfg.UI.TextColor, int(snap.BannerAlpha)))
}
