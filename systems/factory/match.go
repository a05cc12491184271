package factory

import (
	"math/rand/v2"

	"github.com/automoto/stickfight/archetypes"
	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// pcgStream separates the two PCG words derived from a single seed.
const pcgStream = 0x9e3779b97f4a7c15

// CreateMatch creates the match singleton seeded with seed. Wave state
// starts at wave one with no score.
func CreateMatch(ecs *ecs.ECS, seed uint64) *donburi.Entry {
	match := archetypes.Match.Spawn(ecs)

	components.Match.SetValue(match, components.MatchData{
		ID:    uuid.New(),
		Seed:  seed,
		RNG:   rand.New(rand.NewPCG(seed, seed^pcgStream)),
		State: components.MatchPlaying,
	})
	components.Wave.SetValue(match, components.WaveData{
		Wave:        1,
		MaxDefeated: cfg.Wave.MaxDefeatedShown,
	})

	return match
}
