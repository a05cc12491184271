package systems

import (
	"image/color"

	"github.com/automoto/stickfight/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Align positions text relative to the point it is drawn at.
type Align int

const (
	// AlignLeft puts the top-left corner of the text at the point.
	AlignLeft Align = iota
	// AlignCenter centers the text on the point in both axes.
	AlignCenter
)

// Surface is the set of drawing primitives the renderers use.
type Surface interface {
	Size() (w, h float64)
	Fill(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	StrokeRect(x, y, w, h, width float64, c color.Color)
	Line(x1, y1, x2, y2, width float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeCircle(cx, cy, r, width float64, c color.Color)
	Text(s string, face fonts.FontName, x, y float64, align Align, c color.Color)
}

type screenSurface struct {
	screen *ebiten.Image
}

func newScreenSurface(screen *ebiten.Image) screenSurface {
	return screenSurface{screen: screen}
}

func (s screenSurface) Size() (w, h float64) {
	b := s.screen.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s screenSurface) Fill(c color.Color) {
	s.screen.Fill(c)
}

func (s screenSurface) FillRect(x, y, w, h float64, c color.Color) {
	vector.FillRect(s.screen, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s screenSurface) StrokeRect(x, y, w, h, width float64, c color.Color) {
	vector.StrokeRect(s.screen, float32(x), float32(y), float32(w), float32(h), float32(width), c, false)
}

func (s screenSurface) Line(x1, y1, x2, y2, width float64, c color.Color) {
	vector.StrokeLine(s.screen, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, true)
}

func (s screenSurface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.screen, float32(cx), float32(cy), float32(r), c, true) //nolint:staticcheck
}

func (s screenSurface) StrokeCircle(cx, cy, r, width float64, c color.Color) {
	vector.StrokeCircle(s.screen, float32(cx), float32(cy), float32(r), float32(width), c, true)
}

func (s screenSurface) Text(str string, name fonts.FontName, x, y float64, align Align, c color.Color) {
	face := name.Get()
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()

	px, py := int(x), int(y)+ascent
	if align == AlignCenter {
		px -= font.MeasureString(face, str).Ceil() / 2
		py -= metrics.Height.Ceil() / 2
	}
	text.Draw(s.screen, str, face, px, py, c)
}
