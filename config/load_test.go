package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snapshotConfig restores every tunable after the test mutates them.
func snapshotConfig(t *testing.T) {
	t.Helper()
	arena := *C
	fighter, combat, enemyAI, wave := Fighter, Combat, EnemyAI, Wave
	audio, debug := Audio, Debug
	t.Cleanup(func() {
		*C = arena
		Fighter, Combat, EnemyAI, Wave = fighter, combat, enemyAI, wave
		Audio, Debug = audio, debug
	})
}

func TestLoadOverridesFromFile(t *testing.T) {
	snapshotConfig(t)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	yaml := `
fighter:
  jumppower: -12
combat:
  spindamage: 40
enemy_ai:
  maxattackchance: 0.5
debug:
  seed: 7
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	used, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)

	assert.Equal(t, -12.0, Fighter.JumpPower)
	assert.Equal(t, 40.0, Combat.SpinDamage)
	assert.Equal(t, 0.5, EnemyAI.MaxAttackChance)
	assert.Equal(t, uint64(7), Debug.Seed)

	// untouched keys keep their defaults
	assert.Equal(t, 0.8, Fighter.Gravity)
	assert.Equal(t, 20.0, Combat.PlayerDamage)
	assert.Len(t, Fighter.ComboSlashes, 3)
}

func TestLoadEnvironmentOverride(t *testing.T) {
	snapshotConfig(t)
	t.Setenv("STICKFIGHT_DEBUG_SEED", "42")
	t.Setenv("STICKFIGHT_AUDIO_MUTED", "true")

	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("wave:\n  maxspeed: 9\n"), 0o600))

	_, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), Debug.Seed)
	assert.True(t, Audio.Muted)
	assert.Equal(t, 9.0, Wave.MaxSpeed)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	snapshotConfig(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	snapshotConfig(t)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fighter: [unclosed"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestGroundY(t *testing.T) {
	c := Config{Height: 400, GroundOffset: 50}
	assert.Equal(t, 350.0, c.GroundY())
}
