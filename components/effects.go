package components

import (
	"image/color"
	"math"
	"math/rand/v2"

	cfg "github.com/automoto/stickfight/config"
	dmath "github.com/yohamta/donburi/features/math"
)

// Particle is a short-lived decorative point (blood, dust).
type Particle struct {
	Position    dmath.Vec2
	Velocity    dmath.Vec2
	Color       color.RGBA
	Size        float64
	Lifetime    int
	MaxLifetime int
}

// NewParticle launches a particle in a random direction with a slight upward bias.
func NewParticle(rng *rand.Rand, x, y float64, c color.RGBA, size, speed float64, lifetime int) Particle {
	angle := rng.Float64() * 2 * math.Pi
	return Particle{
		Position: dmath.NewVec2(x, y),
		Velocity: dmath.NewVec2(
			math.Cos(angle)*speed,
			math.Sin(angle)*speed-cfg.Particle.UpwardBias,
		),
		Color:       c,
		Size:        size,
		Lifetime:    lifetime,
		MaxLifetime: lifetime,
	}
}

// Update advances the particle one tick and reports whether it is still alive.
func (p *Particle) Update() bool {
	p.Position.X += p.Velocity.X
	p.Position.Y += p.Velocity.Y
	p.Velocity.Y += cfg.Particle.Gravity
	p.Lifetime--
	return p.Lifetime > 0
}

// Alpha fades linearly with remaining lifetime.
func (p Particle) Alpha() uint8 {
	if p.MaxLifetime <= 0 || p.Lifetime <= 0 {
		return 0
	}
	return uint8(255 * p.Lifetime / p.MaxLifetime)
}

// Segment is a line from A to B.
type Segment struct {
	A, B dmath.Vec2
}

// SlashEffect is the fading two-line swing cue left by an attack.
type SlashEffect struct {
	Anchor    dmath.Vec2
	Angle     float64 // degrees
	Size      float64
	Color     color.RGBA
	Alpha     int
	FadeSpeed int
	Lines     [2]Segment
}

// NewSlashEffect precomputes both parallel lines, offset by half the gap on
// either side of the swing direction.
func NewSlashEffect(x, y, angle, size float64, c color.RGBA) SlashEffect {
	rad := angle * math.Pi / 180
	dx, dy := math.Cos(rad)*size, math.Sin(rad)*size
	// perpendicular to the swing
	px, py := -math.Sin(rad)*cfg.Slash.Gap/2, math.Cos(rad)*cfg.Slash.Gap/2

	s := SlashEffect{
		Anchor:    dmath.NewVec2(x, y),
		Angle:     angle,
		Size:      size,
		Color:     c,
		Alpha:     255,
		FadeSpeed: cfg.Slash.FadeSpeed,
	}
	for i, sign := range [2]float64{1, -1} {
		ox, oy := px*sign, py*sign
		s.Lines[i] = Segment{
			A: dmath.NewVec2(x+ox, y+oy),
			B: dmath.NewVec2(x+dx+ox, y+dy+oy),
		}
	}
	return s
}

// Update fades the slash and reports whether it is still visible.
func (s *SlashEffect) Update() bool {
	s.Alpha -= s.FadeSpeed
	if s.Alpha < 0 {
		s.Alpha = 0
	}
	return s.Alpha > 0
}

// TrailMark is one afterimage left behind while dashing.
type TrailMark struct {
	Position dmath.Vec2
	Alpha    int
}
