package systems

import (
	"log"

	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMatch handles match state transitions: quitting, detecting the
// player's defeat and accepting a restart once the match is over.
func UpdateMatch(e *ecs.ECS) {
	match, ok := GetMatch(e)
	if !ok {
		return
	}
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionQuit).JustPressed {
		match.QuitRequested = true
	}

	switch match.State {
	case components.MatchPlaying:
		playerEntry, ok := tags.Player.First(e.World)
		if !ok || !components.Fighter.Get(playerEntry).Dead {
			return
		}
		match.State = components.MatchOver
		GetOrCreatePause(e).IsPaused = false
		PlaySFX(e, cfg.SoundGameOver)

		wave := GetWave(e)
		log.Printf("match %s over: wave %d, score %d", match.ID, wave.Wave, wave.Score)

	case components.MatchOver:
		if GetAction(input, cfg.ActionRestart).JustPressed {
			match.RestartRequested = true
		}
	}
}

// GetMatch returns the match singleton if the world has one.
func GetMatch(e *ecs.ECS) (*components.MatchData, bool) {
	entry, ok := components.Match.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Match.Get(entry), true
}

// GetWave returns the wave counter, creating one at wave one if needed.
func GetWave(e *ecs.ECS) *components.WaveData {
	if _, ok := components.Wave.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Wave))
		components.Wave.SetValue(ent, components.WaveData{
			Wave:        1,
			MaxDefeated: cfg.Wave.MaxDefeatedShown,
		})
	}

	ent, _ := components.Wave.First(e.World)
	return components.Wave.Get(ent)
}

// QuitRequested reports whether the player asked to leave.
func QuitRequested(e *ecs.ECS) bool {
	m, ok := GetMatch(e)
	return ok && m.QuitRequested
}

// RestartRequested reports whether the player asked for a new match.
func RestartRequested(e *ecs.ECS) bool {
	m, ok := GetMatch(e)
	return ok && m.RestartRequested
}

func matchOver(e *ecs.ECS) bool {
	m, ok := GetMatch(e)
	return ok && m.Over()
}
