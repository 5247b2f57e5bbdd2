package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// surface draws onto an Ebitengine image. One surface unit is one logical
// pixel; Layout keeps the logical height equal to the surface height.
type surface struct {
	dst  *ebiten.Image
	face font.Face
}

func newSurface(dst *ebiten.Image) *surface {
	return &surface{dst: dst, face: basicfont.Face7x13}
}

func (s *surface) Size() (float64, float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *surface) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *surface) DrawText(x, y float64, str string, c color.Color) {
	text.Draw(s.dst, str, s.face, int(x), int(y), c)
}

func (s *surface) TextWidth(str string) float64 {
	return float64(font.MeasureString(s.face, str).Round())
}
