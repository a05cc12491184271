package systems

import (
	"fmt"
	"log"
	"sync"

	"github.com/automoto/stickfight/assets"
	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across restarts
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	audioInitOnce      sync.Once
	audioInitErr       error
)

// soundForEvent maps fighter events to the effect that announces them.
var soundForEvent = map[components.FighterEvent]cfg.SoundID{
	components.EventAttack: cfg.SoundSlash,
	components.EventJump:   cfg.SoundJump,
	components.EventDash:   cfg.SoundDash,
	components.EventSpin:   cfg.SoundSpin,
	components.EventHurt:   cfg.SoundHit,
	components.EventLand:   cfg.SoundLand,
	components.EventDeath:  cfg.SoundDeath,
}

// InitAudio opens the audio device and renders every sound effect up
// front. Without it the game runs silent.
func InitAudio() error {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)

		for id := range cfg.Sound.Effects {
			if err := globalAudioLoader.PreloadSFX(id); err != nil {
				audioInitErr = fmt.Errorf("preloading sound %d: %w", id, err)
				return
			}
		}
	})
	return audioInitErr
}

// UpdateAudio turns this tick's fighter events into sound effects and
// plays everything queued, at most once per sound.
func UpdateAudio(e *ecs.ECS) {
	audioData := GetOrCreateAudio(e)

	components.Fighter.Each(e.World, func(entry *donburi.Entry) {
		components.Fighter.Get(entry).DrainEvents(func(ev components.FighterEvent) {
			if id, ok := soundForEvent[ev]; ok {
				audioData.PendingSFX = append(audioData.PendingSFX, id)
			}
		})
	})

	muted := GetOrCreateSettings(e).Muted
	var played [cfg.SoundCount]bool
	audioData.LastPlayed = audioData.LastPlayed[:0]
	for _, id := range audioData.PendingSFX {
		if id <= cfg.SoundNone || id >= cfg.SoundCount || played[id] {
			continue
		}
		played[id] = true
		if !muted {
			audioData.LastPlayed = append(audioData.LastPlayed, id)
			playSFX(id)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(id cfg.SoundID) {
	if globalAudioLoader == nil || cfg.Audio.SFXVolume <= 0 {
		return
	}

	player, err := globalAudioLoader.LoadSFX(id)
	if err != nil {
		log.Printf("sfx %d: %v", id, err)
		return
	}
	player.SetVolume(cfg.Audio.SFXVolume)
	player.Play()
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
