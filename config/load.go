package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. STICKFIGHT_DEBUG_SEED.
const EnvPrefix = "STICKFIGHT"

// envKeys are the settings that can be overridden from the environment.
var envKeys = []string{
	"arena.scale",
	"audio.muted",
	"audio.sfxvolume",
	"debug.overlay",
	"debug.seed",
}

// sections maps top-level YAML keys onto the package configuration.
type sections struct {
	Arena    *Config         `mapstructure:"arena"`
	Fighter  *FighterConfig  `mapstructure:"fighter"`
	Combat   *CombatConfig   `mapstructure:"combat"`
	EnemyAI  *EnemyAIConfig  `mapstructure:"enemy_ai"`
	Wave     *WaveConfig     `mapstructure:"wave"`
	Particle *ParticleConfig `mapstructure:"particle"`
	Slash    *SlashConfig    `mapstructure:"slash"`
	Audio    *AudioConfig    `mapstructure:"audio"`
	Debug    *DebugConfig    `mapstructure:"debug"`
}

// Load overlays an optional YAML tuning file and STICKFIGHT_* environment
// variables on top of the defaults set in init. With an empty path it looks
// for stickfight.yaml in the working directory and silently keeps the
// defaults when there is none. It returns the file that was read, if any.
func Load(path string) (string, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("stickfight")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return "", fmt.Errorf("binding %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return "", fmt.Errorf("reading config: %w", err)
		}
	}

	target := sections{
		Arena:    C,
		Fighter:  &Fighter,
		Combat:   &Combat,
		EnemyAI:  &EnemyAI,
		Wave:     &Wave,
		Particle: &Particle,
		Slash:    &Slash,
		Audio:    &Audio,
		Debug:    &Debug,
	}
	if err := v.Unmarshal(&target); err != nil {
		return "", fmt.Errorf("decoding config: %w", err)
	}

	return v.ConfigFileUsed(), nil
}
