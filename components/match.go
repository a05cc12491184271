package components

import (
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// MatchState is the coarse phase of a match.
type MatchState int

const (
	MatchPlaying MatchState = iota
	MatchOver
)

// MatchData stores the identity and lifecycle of the running match.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	ID    uuid.UUID
	Seed  uint64
	RNG   *rand.Rand
	State MatchState

	QuitRequested    bool
	RestartRequested bool
}

var Match = donburi.NewComponentType[MatchData]()

// Over reports whether the player has been defeated.
func (m *MatchData) Over() bool {
	return m.State == MatchOver
}
