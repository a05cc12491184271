package components

import (
	"math/rand/v2"

	cfg "github.com/automoto/stickfight/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Side tells the player apart from the AI-driven enemies.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

// FighterEvent records something a fighter did during the current tick.
type FighterEvent int

const (
	EventAttack FighterEvent = iota
	EventJump
	EventDash
	EventSpin
	EventHurt
	EventLand
	EventDeath
)

// Arena bounds fighter movement. X is clamped to [MinX, MaxX]; GroundY is
// the lowest y a fighter can reach (y grows downward).
type Arena struct {
	MinX, MaxX float64
	GroundY    float64
}

// ArenaFromConfig derives the movement bounds from the screen configuration.
func ArenaFromConfig(c *cfg.Config) Arena {
	return Arena{
		MinX:    c.EdgeMargin,
		MaxX:    float64(c.Width) - c.EdgeMargin,
		GroundY: c.GroundY(),
	}
}

// FighterData is a stick figure combatant. Position is the point between
// its feet. Every operation is a silent no-op once Dead is set.
type FighterData struct {
	Side        Side
	FacingRight bool

	Position dmath.Vec2
	VelY     float64
	Speed    float64
	Size     float64

	Health    float64
	MaxHealth float64
	Dead      bool
	// Archived is set once the wave director has scored this fighter's death.
	Archived bool

	Attacking   bool
	AttackFrame int
	ComboCount  int
	ComboTimer  int
	HitCooldown int

	Jumping       bool
	Dashing       bool
	DashDirection float64
	DashDuration  int
	DashCooldown  int
	Spinning      bool
	SpinAngle     int // degrees

	Particles []Particle
	Slashes   []SlashEffect
	Trail     []TrailMark

	Events []FighterEvent

	Arena  Arena
	Tuning *cfg.FighterConfig
	RNG    *rand.Rand
}

var Fighter = donburi.NewComponentType[FighterData]()

// NewFighter returns a grounded, full-health fighter at x.
func NewFighter(side Side, x float64, facingRight bool, health, speed float64, arena Arena, tuning *cfg.FighterConfig, rng *rand.Rand) FighterData {
	return FighterData{
		Side:          side,
		FacingRight:   facingRight,
		Position:      dmath.NewVec2(x, arena.GroundY),
		Speed:         speed,
		Size:          tuning.Size,
		Health:        health,
		MaxHealth:     health,
		DashDirection: cfg.DirectionRight,
		Arena:         arena,
		Tuning:        tuning,
		RNG:           rng,
	}
}

// Facing returns cfg.DirectionRight or cfg.DirectionLeft.
func (f *FighterData) Facing() float64 {
	if f.FacingRight {
		return cfg.DirectionRight
	}
	return cfg.DirectionLeft
}

// Airborne reports whether the fighter is off the ground.
func (f *FighterData) Airborne() bool {
	return f.Jumping
}

// HealthRatio is current health over maximum, in [0, 1].
func (f *FighterData) HealthRatio() float64 {
	if f.MaxHealth <= 0 {
		return 0
	}
	return f.Health / f.MaxHealth
}

// Move shifts the fighter horizontally. While dashing the requested dx is
// replaced by the dash velocity.
func (f *FighterData) Move(dx float64) {
	if f.Dead {
		return
	}
	if f.Dashing {
		dx = f.Tuning.DashSpeed * f.DashDirection
	}

	f.Position.X = clamp(f.Position.X+dx, f.Arena.MinX, f.Arena.MaxX)
	if dx != 0 {
		f.FacingRight = dx > 0
	}

	if f.Dashing {
		f.Trail = append(f.Trail, TrailMark{Position: f.Position, Alpha: 255})
	}
}

func (f *FighterData) Jump() {
	if f.Dead || f.Jumping {
		return
	}
	f.VelY = f.Tuning.JumpPower
	f.Jumping = true
	f.emit(EventJump)
}

// Dash starts a burst toward the sign of direction. Zero dashes the way the
// fighter is facing.
func (f *FighterData) Dash(direction float64) {
	if f.Dead || f.Dashing || f.DashCooldown > 0 {
		return
	}

	switch {
	case direction > 0:
		f.DashDirection = cfg.DirectionRight
	case direction < 0:
		f.DashDirection = cfg.DirectionLeft
	default:
		f.DashDirection = f.Facing()
	}
	f.Dashing = true
	f.DashDuration = f.Tuning.DashDuration
	f.DashCooldown = f.Tuning.DashCooldown
	f.emit(EventDash)
}

// AerialAttack launches the fighter into a spinning jump. It works from the
// ground or mid-jump.
func (f *FighterData) AerialAttack() {
	if f.Dead || f.Attacking || f.Spinning || f.Dashing {
		return
	}
	f.Jumping = true
	f.Spinning = true
	f.VelY = f.Tuning.JumpPower
	f.SpinAngle = 0
	f.emit(EventSpin)
}

// Attack starts a ground swing. Swings started inside the combo window
// advance the combo step.
func (f *FighterData) Attack() {
	if f.Dead || f.Attacking {
		return
	}
	f.Attacking = true
	f.AttackFrame = 0

	if f.ComboTimer > 0 {
		f.ComboCount = (f.ComboCount + 1) % f.Tuning.MaxCombo
	} else {
		f.ComboCount = 0
	}
	f.ComboTimer = f.Tuning.ComboWindow

	f.Slashes = append(f.Slashes, f.comboSlash())
	f.emit(EventAttack)
}

func (f *FighterData) comboSlash() SlashEffect {
	steps := f.Tuning.ComboSlashes
	step := steps[f.ComboCount%len(steps)]

	angle := -45 + step.AngleOffset
	if !f.FacingRight {
		angle = 225 - step.AngleOffset
	}
	return NewSlashEffect(
		f.Position.X+f.Facing()*step.OffsetX,
		f.Position.Y-f.Size+step.OffsetY,
		angle,
		f.Size*step.SizeScale,
		cfg.Silver,
	)
}

// FacingAwayFrom reports whether an attacker at x is behind the fighter.
func (f *FighterData) FacingAwayFrom(x float64) bool {
	if x > f.Position.X {
		return !f.FacingRight
	}
	if x < f.Position.X {
		return f.FacingRight
	}
	return false
}

// TakeDamage applies a hit from an attacker standing at attackerX. Hits are
// ignored during the post-hit cooldown. A hit from behind is halved and
// buys a longer cooldown.
func (f *FighterData) TakeDamage(amount, attackerX float64) {
	if f.Dead || f.HitCooldown > 0 {
		return
	}

	fromBehind := f.FacingAwayFrom(attackerX)
	if fromBehind {
		amount *= f.Tuning.GuardDamageScale
		f.HitCooldown = f.Tuning.GuardHitCooldown
	} else {
		f.HitCooldown = f.Tuning.HitCooldown
	}

	f.Health = clamp(f.Health-amount, 0, f.MaxHealth)

	t := f.Tuning
	for range t.HitParticles {
		f.Particles = append(f.Particles, NewParticle(f.RNG,
			f.Position.X, f.Position.Y-f.Size/2,
			cfg.Blood,
			float64(t.HitParticleMinSize+f.RNG.IntN(t.HitParticleMaxSize-t.HitParticleMinSize+1)),
			t.HitParticleMinSpeed+f.RNG.Float64()*(t.HitParticleMaxSpeed-t.HitParticleMinSpeed),
			t.HitParticleLifetime,
		))
	}
	f.emit(EventHurt)

	if f.Health <= 0 {
		f.Dead = true
		f.emit(EventDeath)
	}
}

// Update advances timers, physics and owned effects by one tick. Dead
// fighters only let their effects decay.
func (f *FighterData) Update() {
	if f.Attacking {
		f.AttackFrame++
		if f.AttackFrame >= f.Tuning.AttackFrames {
			f.Attacking = false
			f.AttackFrame = 0
		}
	}

	f.HitCooldown = countdown(f.HitCooldown)
	f.ComboTimer = countdown(f.ComboTimer)
	if f.Dashing {
		f.DashDuration = countdown(f.DashDuration)
		if f.DashDuration == 0 {
			f.Dashing = false
		}
	}
	f.DashCooldown = countdown(f.DashCooldown)

	trail := f.Trail[:0]
	for _, m := range f.Trail {
		m.Alpha -= f.Tuning.TrailFade
		if m.Alpha > 0 {
			trail = append(trail, m)
		}
	}
	f.Trail = trail

	if !f.Dead {
		f.integrate()
	}

	slashes := f.Slashes[:0]
	for i := range f.Slashes {
		if f.Slashes[i].Update() {
			slashes = append(slashes, f.Slashes[i])
		}
	}
	f.Slashes = slashes

	particles := f.Particles[:0]
	for i := range f.Particles {
		if f.Particles[i].Update() {
			particles = append(particles, f.Particles[i])
		}
	}
	f.Particles = particles
}

func (f *FighterData) integrate() {
	t := f.Tuning

	f.VelY += t.Gravity
	f.Position.Y += f.VelY

	if f.Spinning {
		f.SpinAngle += t.SpinSpeed
		if f.SpinAngle%t.SpinSlashEvery == 0 {
			f.Slashes = append(f.Slashes, NewSlashEffect(
				f.Position.X, f.Position.Y,
				float64(f.SpinAngle), t.SpinSlashSize, cfg.Silver,
			))
		}
	}

	if f.Position.Y < f.Arena.GroundY {
		return
	}
	f.Position.Y = f.Arena.GroundY
	f.VelY = 0
	f.Jumping = false

	if !f.Spinning {
		return
	}
	f.Spinning = false
	f.SpinAngle = 0
	for range t.LandParticles {
		f.Particles = append(f.Particles, NewParticle(f.RNG,
			f.Position.X, f.Position.Y,
			cfg.Gray,
			float64(t.LandParticleMinSize+f.RNG.IntN(t.LandParticleMaxSize-t.LandParticleMinSize+1)),
			t.LandParticleMinSpeed+f.RNG.Float64()*(t.LandParticleMaxSpeed-t.LandParticleMinSpeed),
			t.LandParticleLifetime,
		))
	}
	f.emit(EventLand)
}

func (f *FighterData) emit(ev FighterEvent) {
	f.Events = append(f.Events, ev)
}

// DrainEvents hands every event recorded since the last drain to fn and
// clears the log.
func (f *FighterData) DrainEvents(fn func(FighterEvent)) {
	for _, ev := range f.Events {
		fn(ev)
	}
	f.Events = f.Events[:0]
}

func countdown(n int) int {
	if n > 0 {
		return n - 1
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
