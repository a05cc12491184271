package systems

import (
	"fmt"

	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawGameOver renders the final wave and score once the player is down
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	drawGameOver(GetOrCreateSnapshot(e), newScreenSurface(screen))
}

func drawGameOver(snap *components.SnapshotData, s Surface) {
	if !snap.GameOver {
		return
	}
	w, h := s.Size()
	cx, cy := w/2, h/2
	gap := cfg.GameOver.LineSpacing

	s.Fill(cfg.GameOver.BackgroundColor)
	s.Text(fmt.Sprintf("Game Over - Wave: %d", snap.Wave), fonts.HUD, cx, cy-gap, AlignCenter, cfg.GameOver.TextColor)
	s.Text(fmt.Sprintf("Final Score: %d", snap.Score), fonts.HUD, cx, cy+gap, AlignCenter, cfg.GameOver.TextColor)
	s.Text(snap.Hint, fonts.Small, cx, cy+3*gap, AlignCenter, cfg.GameOver.HintColor)
}
