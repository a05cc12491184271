package systems

import (
	"testing"

	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

func matchOf(t *testing.T, e *ecs.ECS) *components.MatchData {
	t.Helper()
	m, ok := GetMatch(e)
	require.True(t, ok)
	return m
}

func TestPlayerDeathEndsMatchOnce(t *testing.T) {
	e := newTestArena(t)
	player := playerOf(t, e)
	player.TakeDamage(1000, player.Position.X)

	UpdateMatch(e)
	assert.True(t, matchOf(t, e).Over())
	assert.Equal(t, []cfg.SoundID{cfg.SoundGameOver}, GetOrCreateAudio(e).PendingSFX)

	UpdateMatch(e)
	assert.Len(t, GetOrCreateAudio(e).PendingSFX, 1)
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	e := newTestArena(t)

	press(e, cfg.ActionRestart)
	UpdateMatch(e)
	assert.False(t, RestartRequested(e))

	player := playerOf(t, e)
	player.TakeDamage(1000, player.Position.X)
	press(e)
	UpdateMatch(e)
	require.True(t, matchOf(t, e).Over())

	press(e, cfg.ActionRestart)
	UpdateMatch(e)
	assert.True(t, RestartRequested(e))
}

func TestQuitRequest(t *testing.T) {
	e := newTestArena(t)
	assert.False(t, QuitRequested(e))

	press(e, cfg.ActionQuit)
	UpdateMatch(e)
	assert.True(t, QuitRequested(e))
}

func TestGameplayChecksFreezeSimulation(t *testing.T) {
	e := newTestArena(t)
	ticks := 0
	sys := WithGameplayChecks(func(*ecs.ECS) { ticks++ })

	sys(e)
	assert.Equal(t, 1, ticks)

	press(e, cfg.ActionPause)
	UpdatePause(e)
	require.True(t, GetOrCreatePause(e).IsPaused)
	sys(e)
	assert.Equal(t, 1, ticks)

	press(e, cfg.ActionPause)
	UpdatePause(e)
	sys(e)
	assert.Equal(t, 2, ticks)

	matchOf(t, e).State = components.MatchOver
	sys(e)
	assert.Equal(t, 2, ticks)
}

func TestPauseIgnoredAfterGameOver(t *testing.T) {
	e := newTestArena(t)
	matchOf(t, e).State = components.MatchOver

	press(e, cfg.ActionPause)
	UpdatePause(e)
	assert.False(t, GetOrCreatePause(e).IsPaused)
}

func TestSettingsToggles(t *testing.T) {
	e := newTestArena(t)
	settings := GetOrCreateSettings(e)
	require.False(t, settings.Debug)
	require.False(t, settings.Muted)

	press(e, cfg.ActionDebug, cfg.ActionMute)
	UpdateSettings(e)
	assert.True(t, settings.Debug)
	assert.True(t, settings.Muted)

	// still held: no second toggle
	press(e, cfg.ActionDebug, cfg.ActionMute)
	UpdateSettings(e)
	assert.True(t, settings.Debug)
}
