package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; draw order follows renderer registration.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int

	// Distance from the bottom edge to the ground line
	GroundOffset float64
	// Horizontal margin fighters can never cross
	EdgeMargin float64

	TPS   int
	Title string
	Scale float64
}

// GroundY returns the y coordinate of the ground line.
func (c *Config) GroundY() float64 {
	return float64(c.Height) - c.GroundOffset
}

// ComboSlash describes the swing drawn for one step of the ground combo.
// Offsets are relative to the fighter's feet; OffsetX is mirrored by facing.
type ComboSlash struct {
	OffsetX     float64
	OffsetY     float64
	AngleOffset float64 // degrees, rotated toward the ground when facing right
	SizeScale   float64 // multiple of the fighter size
}

// FighterConfig contains movement, combo and effect tuning shared by every fighter
type FighterConfig struct {
	// Dimensions
	Size float64

	// Movement
	Speed     float64
	JumpPower float64
	Gravity   float64

	// Dash
	DashSpeed    float64
	DashDuration int
	DashCooldown int
	TrailFade    int

	// Ground attack
	AttackFrames int
	DamageFrame  int
	MaxCombo     int
	ComboWindow  int
	ComboSlashes []ComboSlash

	// Getting hit
	HitCooldown      int
	GuardHitCooldown int
	GuardDamageScale float64

	// Aerial spin
	SpinSpeed      int
	SpinSlashEvery int
	SpinSlashSize  float64

	// Hit particles
	HitParticles        int
	HitParticleMinSize  int
	HitParticleMaxSize  int
	HitParticleMinSpeed float64
	HitParticleMaxSpeed float64
	HitParticleLifetime int

	// Spin landing particles
	LandParticles        int
	LandParticleMinSize  int
	LandParticleMaxSize  int
	LandParticleMinSpeed float64
	LandParticleMaxSpeed float64
	LandParticleLifetime int
}

// CombatConfig contains reach and damage values used by collision resolution
type CombatConfig struct {
	Reach     float64
	SpinReach float64

	PlayerDamage float64
	SpinDamage   float64

	EnemyBaseDamage    float64
	EnemyDamagePerWave float64
	EnemyDamageCap     float64
}

// EnemyAIConfig contains the wave-scaled enemy behaviour curve
type EnemyAIConfig struct {
	BaseInterval     int
	IntervalWaveStep int
	MinInterval      int

	BaseAttackChance    float64
	AttackChancePerWave float64
	MaxAttackChance     float64

	BaseSpeedFactor    float64
	SpeedFactorPerWave float64
	MaxSpeedFactor     float64

	Proximity float64
}

// WaveConfig contains scoring and enemy spawn values
type WaveConfig struct {
	ScorePerWave  int
	BaseHealth    float64
	HealthPerWave float64
	BaseSpeed     float64
	SpeedPerWave  float64
	MaxSpeed      float64

	MaxDefeatedShown int

	PlayerStartX float64
	EnemyStartX  float64

	BannerFadeIn  float32 // seconds
	BannerHold    float32
	BannerFadeOut float32
}

// ParticleConfig contains shared particle motion values
type ParticleConfig struct {
	Gravity    float64
	UpwardBias float64
}

// SlashConfig contains slash effect appearance
type SlashConfig struct {
	FadeSpeed int
	Gap       float64
	Width     float64
}

// StickmanConfig contains stick figure proportions and colors
type StickmanConfig struct {
	HeadRadius   float64
	LineWidth    float64
	SwordLength  float64
	SwayRate     float64 // radians of sway phase per tick
	SwayAmount   float64
	TrailRadius  float64
	PlayerColor  color.RGBA
	EnemyColor   color.RGBA
	DefeatedTint color.RGBA
	HitColor     color.RGBA
	SwordColor   color.RGBA
	TrailColor   color.RGBA
}

// UIConfig contains HUD and overlay values
type UIConfig struct {
	BackgroundColor color.RGBA
	GroundColor     color.RGBA
	TextColor       color.RGBA

	WaveTextX, WaveTextY   float64
	ScoreTextX, ScoreTextY float64

	HealthBarWidth   float64
	HealthBarHeight  float64
	HealthBarOffsetY float64
	HealthBarBorder  color.RGBA
	HealthBarFill    color.RGBA

	HUDFontSize   float64
	SmallFontSize float64
}

// PauseConfig contains pause overlay values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string
}

// GameOverConfig contains game over screen values
type GameOverConfig struct {
	BackgroundColor color.RGBA
	TextColor       color.RGBA
	HintColor       color.RGBA
	LineSpacing     float64
	Hint            string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool   // Draw collision bodies and TPS
	Seed    uint64 // 0 picks a seed from the clock
}

// Global configuration instances
var C *Config
var Fighter FighterConfig
var Combat CombatConfig
var EnemyAI EnemyAIConfig
var Wave WaveConfig
var Particle ParticleConfig
var Slash SlashConfig
var Stickman StickmanConfig
var UI UIConfig
var Pause PauseConfig
var GameOver GameOverConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Blood        = color.RGBA{R: 200, G: 0, B: 0, A: 255}
	Gray         = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	Silver       = color.RGBA{R: 192, G: 192, B: 192, A: 255}
	Cyan         = color.RGBA{R: 100, G: 200, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for fighter facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:        800,
		Height:       400,
		GroundOffset: 50,
		EdgeMargin:   50,
		TPS:          60,
		Title:        "Stickman Fight",
		Scale:        1,
	}

	Fighter = FighterConfig{
		Size: 50,

		Speed:     5,
		JumpPower: -15,
		Gravity:   0.8,

		DashSpeed:    15,
		DashDuration: 10,
		DashCooldown: 30,
		TrailFade:    15,

		AttackFrames: 6,
		DamageFrame:  3,
		MaxCombo:     3,
		ComboWindow:  30,
		ComboSlashes: []ComboSlash{
			{OffsetX: 30, OffsetY: 20, AngleOffset: 0, SizeScale: 1.5},
			{OffsetX: 25, OffsetY: 30, AngleOffset: 30, SizeScale: 1.8},
			{OffsetX: 20, OffsetY: 40, AngleOffset: 60, SizeScale: 2.0},
		},

		HitCooldown:      30,
		GuardHitCooldown: 45,
		GuardDamageScale: 0.5,

		SpinSpeed:      20,
		SpinSlashEvery: 90,
		SpinSlashSize:  40,

		HitParticles:        8,
		HitParticleMinSize:  2,
		HitParticleMaxSize:  3,
		HitParticleMinSpeed: 3,
		HitParticleMaxSpeed: 6,
		HitParticleLifetime: 40,

		LandParticles:        10,
		LandParticleMinSize:  2,
		LandParticleMaxSize:  4,
		LandParticleMinSpeed: 2,
		LandParticleMaxSpeed: 4,
		LandParticleLifetime: 30,
	}

	Combat = CombatConfig{
		Reach:     80,
		SpinReach: 100,

		PlayerDamage: 20,
		SpinDamage:   35,

		EnemyBaseDamage:    6,
		EnemyDamagePerWave: 0.3,
		EnemyDamageCap:     4,
	}

	EnemyAI = EnemyAIConfig{
		BaseInterval:     3,
		IntervalWaveStep: 10,
		MinInterval:      2,

		BaseAttackChance:    0.3,
		AttackChancePerWave: 0.02,
		MaxAttackChance:     0.6,

		BaseSpeedFactor:    0.25,
		SpeedFactorPerWave: 0.05,
		MaxSpeedFactor:     0.75,

		Proximity: 80,
	}

	Wave = WaveConfig{
		ScorePerWave:  100,
		BaseHealth:    100,
		HealthPerWave: 5,
		BaseSpeed:     5,
		SpeedPerWave:  0.25,
		MaxSpeed:      8,

		MaxDefeatedShown: 8,

		PlayerStartX: 100,
		EnemyStartX:  700,

		BannerFadeIn:  0.25,
		BannerHold:    1.0,
		BannerFadeOut: 0.5,
	}

	Particle = ParticleConfig{
		Gravity:    0.1,
		UpwardBias: 1,
	}

	Slash = SlashConfig{
		FadeSpeed: 25,
		Gap:       5,
		Width:     2,
	}

	Stickman = StickmanConfig{
		HeadRadius:   10,
		LineWidth:    3,
		SwordLength:  40,
		SwayRate:     1.0 / 6,
		SwayAmount:   5,
		TrailRadius:  5,
		PlayerColor:  Black,
		EnemyColor:   Red,
		DefeatedTint: Gray,
		HitColor:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		SwordColor:   Silver,
		TrailColor:   Cyan,
	}

	UI = UIConfig{
		BackgroundColor: White,
		GroundColor:     Black,
		TextColor:       Black,

		WaveTextX: 10, WaveTextY: 10,
		ScoreTextX: 10, ScoreTextY: 50,

		HealthBarWidth:   40,
		HealthBarHeight:  5,
		HealthBarOffsetY: 80,
		HealthBarBorder:  Red,
		HealthBarFill:    Red,

		HUDFontSize:   24,
		SmallFontSize: 14,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Title:        "PAUSED",
		Hint:         "P: Resume   Esc: Quit",
	}

	GameOver = GameOverConfig{
		BackgroundColor: White,
		TextColor:       Black,
		HintColor:       Gray,
		LineSpacing:     20,
		Hint:            "Press R to restart",
	}
}
