package systems

import (
	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the pause state.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	if matchOver(ecs) {
		return
	}

	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
	}
}

// getPauseHint returns the resume hint for the device last used
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Options: Resume"
	case components.InputXbox:
		return "Start: Resume"
	}
	return cfg.Pause.Hint
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or once
// the match is over. The simulation is frozen in both cases.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(func(e *ecs.ECS) {
		if matchOver(e) {
			return
		}
		system(e)
	})
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ecs.World.Entry(ecs.World.Create(components.Pause))
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	drawPause(GetOrCreateSnapshot(ecs), newScreenSurface(screen))
}

func drawPause(snap *components.SnapshotData, s Surface) {
	if !snap.Paused || snap.GameOver {
		return
	}
	w, h := s.Size()

	s.FillRect(0, 0, w, h, cfg.Pause.OverlayColor)
	s.Text(cfg.Pause.Title, fonts.HUD, w/2, h/2, AlignCenter, cfg.Pause.TextColor)
	s.Text(snap.Hint, fonts.Small, w/2, h-20, AlignCenter, cfg.Pause.TextColor)
}
