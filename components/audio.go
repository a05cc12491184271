package components

import (
	cfg "github.com/automoto/stickfight/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised during a tick (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
	// LastPlayed is what the most recent audio tick sent to the speakers.
	LastPlayed []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
