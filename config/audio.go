package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundSlash
	SoundHit
	SoundDeath
	// Movement sounds
	SoundJump
	SoundDash
	SoundSpin
	SoundLand
	// Match sounds
	SoundWaveClear
	SoundGameOver

	SoundCount
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
	SFXVolume  float64
	Muted      bool
}

// ToneConfig describes one synthesized note
type ToneConfig struct {
	Wave     string // sine, square, saw, noise
	Freq     float64
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
	Volume   float64
}

// SoundConfig maps sound IDs to the notes played in sequence
type SoundConfig struct {
	Effects map[SoundID][]ToneConfig
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		SFXVolume:  0.6,
	}

	ms := time.Millisecond
	Sound = SoundConfig{
		Effects: map[SoundID][]ToneConfig{
			SoundSlash: {
				{Wave: "noise", Duration: 90 * ms, Attack: 5 * ms, Release: 70 * ms, Volume: 0.35},
			},
			SoundHit: {
				{Wave: "square", Freq: 110, Duration: 80 * ms, Attack: 2 * ms, Release: 60 * ms, Volume: 0.5},
			},
			SoundDeath: {
				{Wave: "saw", Freq: 220, Duration: 120 * ms, Attack: 5 * ms, Release: 40 * ms, Volume: 0.4},
				{Wave: "saw", Freq: 110, Duration: 250 * ms, Attack: 5 * ms, Release: 200 * ms, Volume: 0.4},
			},
			SoundJump: {
				{Wave: "sine", Freq: 440, Duration: 60 * ms, Attack: 5 * ms, Release: 40 * ms, Volume: 0.3},
			},
			SoundDash: {
				{Wave: "noise", Duration: 140 * ms, Attack: 30 * ms, Release: 100 * ms, Volume: 0.25},
			},
			SoundSpin: {
				{Wave: "saw", Freq: 330, Duration: 50 * ms, Attack: 5 * ms, Release: 30 * ms, Volume: 0.25},
				{Wave: "saw", Freq: 440, Duration: 50 * ms, Attack: 5 * ms, Release: 30 * ms, Volume: 0.25},
			},
			SoundLand: {
				{Wave: "square", Freq: 80, Duration: 70 * ms, Attack: 2 * ms, Release: 60 * ms, Volume: 0.4},
			},
			SoundWaveClear: {
				{Wave: "square", Freq: 987.77, Duration: 80 * ms, Attack: 5 * ms, Release: 50 * ms, Volume: 0.3},
				{Wave: "square", Freq: 1318.51, Duration: 200 * ms, Attack: 5 * ms, Release: 180 * ms, Volume: 0.3},
			},
			SoundGameOver: {
				{Wave: "sine", Freq: 392, Duration: 200 * ms, Attack: 10 * ms, Release: 80 * ms, Volume: 0.4},
				{Wave: "sine", Freq: 311.13, Duration: 200 * ms, Attack: 10 * ms, Release: 80 * ms, Volume: 0.4},
				{Wave: "sine", Freq: 261.63, Duration: 400 * ms, Attack: 10 * ms, Release: 350 * ms, Volume: 0.4},
			},
		},
	}
}
