package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/systems"
	"github.com/automoto/stickfight/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs one match: a player against an endless line of enemies.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once

	seed     uint64
	settings *components.SettingsData
	input    ecs.System
}

// NewArenaScene creates a match seeded with seed.
func NewArenaScene(sc SceneChanger, seed uint64) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, seed: seed, input: systems.UpdateInput}
}

// WithInput replaces device polling with another input source, such as a
// scripted one.
func (as *ArenaScene) WithInput(input ecs.System) *ArenaScene {
	as.input = input
	return as
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()

	if systems.RestartRequested(as.ecs) {
		as.sceneChanger.ChangeScene(as.next())
	}
}

// Quit reports whether the player asked to leave the game.
func (as *ArenaScene) Quit() bool {
	return as.ecs != nil && systems.QuitRequested(as.ecs)
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent flashes from the OS window background
	screen.Fill(color.White)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

// next builds the replacement scene for a restart. The new seed comes from
// this match's stream so a seeded session stays reproducible.
func (as *ArenaScene) next() *ArenaScene {
	seed := as.seed + 1
	if match, ok := systems.GetMatch(as.ecs); ok && match.RNG != nil {
		seed = match.RNG.Uint64()
	}

	settings := *systems.GetOrCreateSettings(as.ecs)
	n := NewArenaScene(as.sceneChanger, seed)
	n.settings = &settings
	n.input = as.input
	return n
}

func (as *ArenaScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(as.input)
	ecs.AddSystem(systems.UpdateMatch)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateSettings)

	// Simulation, frozen while paused or after game over
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemyAI))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCombat))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateFighters))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateWaves))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateBanner))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateClock))

	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.UpdateSnapshot)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawFighters)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawBanner)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)
	ecs.AddRenderer(cfg.Default, systems.DrawGameOver)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	as.ecs = ecs

	match := factory.CreateArena(as.ecs, as.seed)
	if as.settings != nil {
		*systems.GetOrCreateSettings(as.ecs) = *as.settings
	}
	systems.ShowBanner(as.ecs, "WAVE 1")
	systems.UpdateSnapshot(as.ecs)

	log.Printf("match %s started (seed %d)", match.ID, match.Seed)
}
