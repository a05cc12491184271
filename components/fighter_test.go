package components

import (
	"math/rand/v2"
	"testing"

	cfg "github.com/automoto/stickfight/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testArena = Arena{MinX: 50, MaxX: 750, GroundY: 350}

func newTestFighter(x float64, facingRight bool) *FighterData {
	tuning := cfg.Fighter
	f := NewFighter(SidePlayer, x, facingRight, 100, 5, testArena, &tuning, rand.New(rand.NewPCG(1, 2)))
	return &f
}

func tick(f *FighterData, n int) {
	for range n {
		f.Update()
	}
}

func TestNewFighterStartsGrounded(t *testing.T) {
	f := newTestFighter(100, true)

	assert.Equal(t, 100.0, f.Position.X)
	assert.Equal(t, 350.0, f.Position.Y)
	assert.Equal(t, 100.0, f.Health)
	assert.Equal(t, 100.0, f.MaxHealth)
	assert.False(t, f.Dead)
	assert.False(t, f.Jumping)
}

func TestAttackSpawnsFirstComboSlash(t *testing.T) {
	f := newTestFighter(100, true)

	f.Attack()

	assert.True(t, f.Attacking)
	assert.Equal(t, 0, f.AttackFrame)
	assert.Equal(t, 0, f.ComboCount)
	assert.Equal(t, 30, f.ComboTimer)
	require.Len(t, f.Slashes, 1)

	s := f.Slashes[0]
	assert.InDelta(t, 130, s.Anchor.X, 1e-9)
	assert.InDelta(t, 320, s.Anchor.Y, 1e-9)
	assert.InDelta(t, -45, s.Angle, 1e-9)
	assert.InDelta(t, 75, s.Size, 1e-9)
	assert.Equal(t, cfg.Silver, s.Color)
	assert.Equal(t, 255, s.Alpha)
}

func TestAttackMirrorsWhenFacingLeft(t *testing.T) {
	f := newTestFighter(400, false)

	f.Attack()
	tick(f, 6)
	f.Attack()

	require.Len(t, f.Slashes, 2)
	first, second := f.Slashes[0], f.Slashes[1]
	assert.InDelta(t, 370, first.Anchor.X, 1e-9)
	assert.InDelta(t, 225, first.Angle, 1e-9)

	assert.Equal(t, 1, f.ComboCount)
	assert.InDelta(t, 375, second.Anchor.X, 1e-9)
	assert.InDelta(t, 330, second.Anchor.Y, 1e-9)
	assert.InDelta(t, 195, second.Angle, 1e-9)
	assert.InDelta(t, 90, second.Size, 1e-9)
}

func TestAttackClearsAfterSixFrames(t *testing.T) {
	f := newTestFighter(100, true)
	f.Attack()

	tick(f, 5)
	assert.True(t, f.Attacking)
	assert.Equal(t, 5, f.AttackFrame)

	// a second press mid-swing is ignored
	f.Attack()
	assert.Len(t, f.Slashes, 1)

	f.Update()
	assert.False(t, f.Attacking)
	assert.Equal(t, 0, f.AttackFrame)
}

func TestComboCycles(t *testing.T) {
	f := newTestFighter(100, true)

	var combo []int
	for range 4 {
		f.Attack()
		combo = append(combo, f.ComboCount)
		tick(f, 6)
	}

	assert.Equal(t, []int{0, 1, 2, 0}, combo)
}

func TestComboResetsAfterWindow(t *testing.T) {
	f := newTestFighter(100, true)

	f.Attack()
	tick(f, 6)
	f.Attack()
	require.Equal(t, 1, f.ComboCount)

	tick(f, 30)
	assert.Equal(t, 0, f.ComboTimer)

	f.Attack()
	assert.Equal(t, 0, f.ComboCount)
}

func TestTakeDamageFacingAttacker(t *testing.T) {
	f := newTestFighter(150, false)

	f.TakeDamage(20, 100)

	assert.Equal(t, 80.0, f.Health)
	assert.Equal(t, 30, f.HitCooldown)
	require.Len(t, f.Particles, 8)
	for _, p := range f.Particles {
		assert.Equal(t, cfg.Blood, p.Color)
		assert.Equal(t, 40, p.Lifetime)
		assert.GreaterOrEqual(t, p.Size, 2.0)
		assert.LessOrEqual(t, p.Size, 3.0)
		assert.InDelta(t, 325, p.Position.Y, 1e-9)
	}
	assert.Contains(t, f.Events, EventHurt)
}

func TestTakeDamageFromBehindIsHalved(t *testing.T) {
	f := newTestFighter(150, true)

	f.TakeDamage(20, 100)

	assert.Equal(t, 90.0, f.Health)
	assert.Equal(t, 45, f.HitCooldown)
}

func TestInvulnerabilityWindow(t *testing.T) {
	f := newTestFighter(150, false)

	f.TakeDamage(20, 100)
	f.TakeDamage(20, 100)
	f.TakeDamage(20, 100)
	assert.Equal(t, 80.0, f.Health)
	assert.Len(t, f.Particles, 8)

	tick(f, 29)
	f.TakeDamage(20, 100)
	assert.Equal(t, 80.0, f.Health)

	f.Update()
	f.TakeDamage(20, 100)
	assert.Equal(t, 60.0, f.Health)
}

func TestDeathIsTerminal(t *testing.T) {
	f := newTestFighter(300, true)

	f.TakeDamage(500, 350)
	require.True(t, f.Dead)
	assert.Equal(t, 0.0, f.Health)
	assert.Contains(t, f.Events, EventDeath)

	before := *f
	f.Move(10)
	f.Jump()
	f.Dash(1)
	f.AerialAttack()
	f.Attack()
	tick(f, 60)
	f.TakeDamage(10, 350)

	assert.Equal(t, before.Position, f.Position)
	assert.Equal(t, 0.0, f.Health)
	assert.False(t, f.Jumping)
	assert.False(t, f.Dashing)
	assert.False(t, f.Spinning)
	assert.False(t, f.Attacking)
	assert.True(t, f.Dead)
}

func TestDeadFighterFreezesMidAir(t *testing.T) {
	f := newTestFighter(300, true)
	f.Jump()
	tick(f, 5)
	y := f.Position.Y
	require.Less(t, y, 350.0)

	f.TakeDamage(500, 350)
	tick(f, 10)

	assert.Equal(t, y, f.Position.Y)
}

func TestDeadFighterEffectsDecay(t *testing.T) {
	f := newTestFighter(300, true)
	f.TakeDamage(500, 350)
	require.Len(t, f.Particles, 8)

	tick(f, 39)
	assert.Len(t, f.Particles, 8)
	f.Update()
	assert.Empty(t, f.Particles)
}

func TestDashOverridesMovement(t *testing.T) {
	f := newTestFighter(300, false)

	f.Dash(cfg.DirectionRight)
	require.True(t, f.Dashing)
	assert.Equal(t, 10, f.DashDuration)
	assert.Equal(t, 30, f.DashCooldown)

	f.Move(-5)
	assert.Equal(t, 315.0, f.Position.X)
	assert.True(t, f.FacingRight)
	require.Len(t, f.Trail, 1)
	assert.Equal(t, 255, f.Trail[0].Alpha)

	f.Move(0)
	assert.Equal(t, 330.0, f.Position.X)

	tick(f, 10)
	assert.False(t, f.Dashing)
	assert.Equal(t, 20, f.DashCooldown)

	f.Dash(cfg.DirectionLeft)
	assert.False(t, f.Dashing)

	tick(f, 20)
	f.Dash(cfg.DirectionLeft)
	assert.True(t, f.Dashing)
	assert.Equal(t, cfg.DirectionLeft, f.DashDirection)
}

func TestDashWithoutDirectionUsesFacing(t *testing.T) {
	f := newTestFighter(300, false)

	f.Dash(0)

	assert.Equal(t, cfg.DirectionLeft, f.DashDirection)
}

func TestTrailFades(t *testing.T) {
	f := newTestFighter(300, true)
	f.Dash(1)
	f.Move(0)
	require.Len(t, f.Trail, 1)

	f.Update()
	assert.Equal(t, 240, f.Trail[0].Alpha)

	tick(f, 16)
	assert.Empty(t, f.Trail)
}

func TestMoveClampsToArena(t *testing.T) {
	f := newTestFighter(60, true)

	f.Move(-50)
	assert.Equal(t, 50.0, f.Position.X)
	assert.False(t, f.FacingRight)

	f.Position.X = 745
	f.Move(20)
	assert.Equal(t, 750.0, f.Position.X)
	assert.True(t, f.FacingRight)
}

func TestMoveZeroKeepsFacing(t *testing.T) {
	f := newTestFighter(300, false)

	f.Move(0)

	assert.False(t, f.FacingRight)
	assert.Equal(t, 300.0, f.Position.X)
}

func TestJumpReturnsToGround(t *testing.T) {
	f := newTestFighter(300, true)
	f.Jump()
	require.True(t, f.Jumping)
	assert.Equal(t, -15.0, f.VelY)

	f.Update()
	vel := f.VelY
	f.Jump()
	assert.Equal(t, vel, f.VelY, "no double jump")

	airborne := 0
	for range 100 {
		f.Update()
		assert.LessOrEqual(t, f.Position.Y, 350.0)
		if f.Jumping {
			airborne++
		}
	}

	assert.Greater(t, airborne, 0)
	assert.False(t, f.Jumping)
	assert.Equal(t, 350.0, f.Position.Y)
	assert.Equal(t, 0.0, f.VelY)
}

func TestAerialAttackSpinsAndLands(t *testing.T) {
	f := newTestFighter(300, true)
	f.AerialAttack()
	require.True(t, f.Spinning)
	require.True(t, f.Jumping)

	spawned := 0
	for f.Spinning {
		f.Update()
		for _, s := range f.Slashes {
			if s.Size == cfg.Fighter.SpinSlashSize && s.Alpha == 230 {
				spawned++
				assert.Zero(t, int(s.Angle)%90)
			}
		}
		require.LessOrEqual(t, f.Position.Y, 350.0)
	}

	assert.Equal(t, 4, spawned)
	assert.Equal(t, 0, f.SpinAngle)
	assert.False(t, f.Jumping)
	assert.Equal(t, 350.0, f.Position.Y)
	require.Len(t, f.Particles, 10)
	for _, p := range f.Particles {
		assert.Equal(t, cfg.Gray, p.Color)
	}
	assert.Contains(t, f.Events, EventLand)
}

func TestAerialAttackBlocked(t *testing.T) {
	t.Run("while attacking", func(t *testing.T) {
		f := newTestFighter(300, true)
		f.Attack()
		f.AerialAttack()
		assert.False(t, f.Spinning)
	})
	t.Run("while dashing", func(t *testing.T) {
		f := newTestFighter(300, true)
		f.Dash(1)
		f.AerialAttack()
		assert.False(t, f.Spinning)
	})
	t.Run("while spinning", func(t *testing.T) {
		f := newTestFighter(300, true)
		f.AerialAttack()
		tick(f, 3)
		vel := f.VelY
		f.AerialAttack()
		assert.Equal(t, vel, f.VelY)
	})
	t.Run("mid jump is allowed", func(t *testing.T) {
		f := newTestFighter(300, true)
		f.Jump()
		tick(f, 5)
		f.AerialAttack()
		assert.True(t, f.Spinning)
		assert.Equal(t, -15.0, f.VelY)
	})
}

func TestSlashesExpire(t *testing.T) {
	f := newTestFighter(300, true)
	f.Attack()

	tick(f, 10)
	require.Len(t, f.Slashes, 1)
	assert.Equal(t, 5, f.Slashes[0].Alpha)

	f.Update()
	assert.Empty(t, f.Slashes)
}

func TestHealthStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	f := newTestFighter(300, true)

	for range 500 {
		f.TakeDamage(rng.Float64()*30, 250+rng.Float64()*100)
		tick(f, rng.IntN(50))
		require.GreaterOrEqual(t, f.Health, 0.0)
		require.LessOrEqual(t, f.Health, f.MaxHealth)
		require.GreaterOrEqual(t, f.HitCooldown, 0)
		require.GreaterOrEqual(t, f.DashCooldown, 0)
	}
}

func TestDrainEvents(t *testing.T) {
	f := newTestFighter(300, true)
	f.Jump()
	f.Attack()

	var got []FighterEvent
	f.DrainEvents(func(ev FighterEvent) { got = append(got, ev) })

	assert.Equal(t, []FighterEvent{EventJump, EventAttack}, got)
	assert.Empty(t, f.Events)
}

func TestFacingAwayFrom(t *testing.T) {
	tests := []struct {
		name        string
		facingRight bool
		attackerX   float64
		want        bool
	}{
		{"attacker ahead on the right", true, 400, false},
		{"attacker behind on the left", true, 200, true},
		{"attacker ahead on the left", false, 200, false},
		{"attacker behind on the right", false, 400, true},
		{"same spot", true, 300, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFighter(300, tt.facingRight)
			assert.Equal(t, tt.want, f.FacingAwayFrom(tt.attackerX))
		})
	}
}
