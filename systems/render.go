package systems

import (
	"image/color"
	"math"

	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const (
	bodyWidth   = 2.0
	weaponWidth = 3.0
)

// DrawArena clears the screen and draws the ground line.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	drawArena(GetOrCreateSnapshot(e), newScreenSurface(screen))
}

func drawArena(snap *components.SnapshotData, s Surface) {
	if snap.GameOver {
		return
	}
	w, _ := s.Size()
	s.Fill(cfg.UI.BackgroundColor)

	ground := cfg.C.GroundY()
	s.Line(0, ground, w, ground, 2, cfg.UI.GroundColor)
}

// DrawFighters draws fallen enemies first, then the active enemy, then the
// player on top.
func DrawFighters(e *ecs.ECS, screen *ebiten.Image) {
	drawFighters(GetOrCreateSnapshot(e), newScreenSurface(screen))
}

func drawFighters(snap *components.SnapshotData, s Surface) {
	if snap.GameOver {
		return
	}

	for i := range snap.Defeated {
		drawStickman(s, &snap.Defeated[i], cfg.Stickman.DefeatedTint, snap.Phase)
	}
	if snap.HasEnemy {
		drawStickman(s, &snap.Enemy, cfg.Stickman.EnemyColor, snap.Phase)
	}
	if snap.HasPlayer {
		drawStickman(s, &snap.Player, cfg.Stickman.PlayerColor, snap.Phase)
	}
}

func drawStickman(s Surface, f *components.FighterData, base color.RGBA, phase float64) {
	drawEffects(s, f)

	if f.Dead {
		drawFallen(s, f, base)
		return
	}

	limbs := base
	if f.HitCooldown > 0 {
		limbs = hitFlash(base)
	}

	if f.Spinning {
		drawSpinning(s, f, base, limbs)
	} else {
		drawStanding(s, f, base, limbs, phase)
	}
	drawHealthBar(s, f)
}

func drawEffects(s Surface, f *components.FighterData) {
	for _, m := range f.Trail {
		s.FillCircle(m.Position.X, m.Position.Y, cfg.Stickman.TrailRadius, withAlpha(cfg.Stickman.TrailColor, m.Alpha))
	}
	for _, p := range f.Particles {
		s.FillCircle(p.Position.X, p.Position.Y, p.Size, withAlpha(p.Color, int(p.Alpha())))
	}
	for _, sl := range f.Slashes {
		c := withAlpha(sl.Color, sl.Alpha)
		for _, seg := range sl.Lines {
			s.Line(seg.A.X, seg.A.Y, seg.B.X, seg.B.Y, cfg.Slash.Width, c)
		}
	}
}

// drawFallen lays the figure flat with its head toward the way it faced.
func drawFallen(s Surface, f *components.FighterData, c color.RGBA) {
	x, y, size := f.Position.X, f.Position.Y, f.Size
	dir := f.Facing()

	s.Line(x-size/2, y, x+size/2, y, bodyWidth, c)
	s.StrokeCircle(x+dir*size/2, y, size/4, bodyWidth, c)

	hipX := x - dir*size/2
	s.Line(hipX, y, x-dir*size/4, y-size/4, bodyWidth, c)
	s.Line(hipX, y, x-dir*size/4, y+size/4, bodyWidth, c)
}

func drawSpinning(s Surface, f *components.FighterData, head, limbs color.RGBA) {
	x, y, size := f.Position.X, f.Position.Y, f.Size
	angle := float64(f.SpinAngle) * math.Pi / 180
	sin, cos := math.Sincos(angle)
	cy := y - size/2

	rotate := func(px, py float64) (float64, float64) {
		dx, dy := px-x, py-cy
		return dx*cos - dy*sin + x, dx*sin + dy*cos + cy
	}

	hx, hy := rotate(x, y-size)
	s.StrokeCircle(hx, hy, size/4, bodyWidth, head)

	nx, ny := rotate(x, y-size+size/4)
	bx, by := rotate(x, y-size/2)
	s.Line(nx, ny, bx, by, bodyWidth, limbs)

	l1x, l1y := rotate(x-size/4, y)
	l2x, l2y := rotate(x+size/4, y)
	s.Line(bx, by, l1x, l1y, bodyWidth, limbs)
	s.Line(bx, by, l2x, l2y, bodyWidth, limbs)

	ax, ay := rotate(x, y-size+size/3)
	swordAngle := angle - math.Pi/4
	if f.FacingRight {
		swordAngle = angle + math.Pi/4
	}
	length := size * 1.5
	s.Line(ax, ay, ax+math.Cos(swordAngle)*length, ay+math.Sin(swordAngle)*length, weaponWidth, limbs)
}

func drawStanding(s Surface, f *components.FighterData, head, limbs color.RGBA, phase float64) {
	x, y, size := f.Position.X, f.Position.Y, f.Size
	sway := math.Sin(phase) * cfg.Stickman.SwayAmount

	s.StrokeCircle(x, y-size, size/4, bodyWidth, head)

	hipY := y - size/2
	s.Line(x, y-size+size/4, x, hipY, bodyWidth, limbs)

	legSway := 0.0
	if f.Speed != 0 {
		legSway = 2 * sway
	}
	s.Line(x, hipY, x-size/4+legSway, y, bodyWidth, limbs)
	s.Line(x, hipY, x+size/4-legSway, y, bodyWidth, limbs)

	shoulderY := y - size + size/3
	if f.Attacking {
		length := size * 1.2
		armAngle := 225 - float64(f.AttackFrame)*15
		if f.FacingRight {
			armAngle = -45 + float64(f.AttackFrame)*15
		}
		rad := armAngle * math.Pi / 180
		wx := x + f.Facing()*size/4
		s.Line(wx, shoulderY, wx+math.Cos(rad)*length, shoulderY+math.Sin(rad)*length, weaponWidth, cfg.Stickman.SwordColor)
		s.Line(x, shoulderY, wx, shoulderY, bodyWidth, limbs)
		return
	}

	handY := y - size/1.5
	s.Line(x, shoulderY, x-size/4, handY+sway, bodyWidth, limbs)
	s.Line(x, shoulderY, x+size/4, handY-sway, bodyWidth, limbs)
}

func drawHealthBar(s Surface, f *components.FighterData) {
	w, h := cfg.UI.HealthBarWidth, cfg.UI.HealthBarHeight
	bx := f.Position.X - w/2
	by := f.Position.Y - cfg.UI.HealthBarOffsetY

	s.StrokeRect(bx, by, w, h, 1, cfg.UI.HealthBarBorder)
	if ratio := f.HealthRatio(); ratio > 0 {
		s.FillRect(bx, by, w*ratio, h, cfg.UI.HealthBarFill)
	}
}

// hitFlash blinks the body toward the hit color while invulnerable.
func hitFlash(base color.RGBA) color.RGBA {
	c := cfg.Stickman.HitColor
	return color.RGBA{
		R: uint8((int(base.R) + int(c.R)) / 2),
		G: uint8((int(base.G) + int(c.G)) / 2),
		B: uint8((int(base.B) + int(c.B)) / 2),
		A: base.A,
	}
}

// withAlpha returns c at the given opacity, clamped to [0, 255].
func withAlpha(c color.RGBA, alpha int) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(max(0, min(alpha, 255)))}
}
