package core

import (
	"image/color"
	"math"
)

// Surface is a drawing target measured in surface units. Renderers paint
// back to front with opaque or translucent rectangles and text; curved
// shapes are decomposed into horizontal spans by the caller.
type Surface interface {
	// Size returns the drawable width and height.
	Size() (w, h float64)

	// FillRect fills the rectangle with c, blending when c is translucent.
	FillRect(x, y, w, h float64, c color.Color)

	// DrawText draws text whose baseline starts at (x, y).
	DrawText(x, y float64, text string, c color.Color)

	// TextWidth returns the advance width of text on this surface.
	TextWidth(text string) float64
}

// CellSurface adapts a Screen to the Surface interface. A half-block pixel
// is roughly square, so one pixel covers Scale() units on both axes.
type CellSurface struct {
	screen *Screen
	scale  float64
}

// NewCellSurface maps a surface of the given height onto every pixel row
// of screen. The width follows from the screen's column count.
func NewCellSurface(screen *Screen, surfaceH float64) *CellSurface {
	rows := screen.PixelRows()
	scale := 1.0
	if rows > 0 && surfaceH > 0 {
		scale = surfaceH / float64(rows)
	}
	return &CellSurface{screen: screen, scale: scale}
}

// Scale returns the number of surface units covered by one pixel.
func (c *CellSurface) Scale() float64 {
	return c.scale
}

// Screen returns the underlying cell buffer.
func (c *CellSurface) Screen() *Screen {
	return c.screen
}

// Size returns the surface dimensions in units.
func (c *CellSurface) Size() (float64, float64) {
	return float64(c.screen.Width()) * c.scale, float64(c.screen.PixelRows()) * c.scale
}

// span converts a [from, from+length) unit interval to a pixel interval.
// Non-empty intervals always cover at least one pixel so thin shapes stay visible.
func (c *CellSurface) span(from, length float64) (int, int) {
	p0 := int(math.Floor(from/c.scale + 0.5))
	p1 := int(math.Floor((from+length)/c.scale + 0.5))
	if length > 0 && p1 <= p0 {
		p1 = p0 + 1
	}
	return p0, p1
}

// FillRect paints every pixel covered by the rectangle.
func (c *CellSurface) FillRect(x, y, w, h float64, col color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	px0, px1 := c.span(x, w)
	py0, py1 := c.span(y, h)
	px0, px1 = Max(px0, 0), Min(px1, c.screen.Width())
	py0, py1 = Max(py0, 0), Min(py1, c.screen.PixelRows())

	opaque := NRGBA(col).A == 0xff
	rgba := Opaque(col)
	for py := py0; py < py1; py++ {
		for px := px0; px < px1; px++ {
			if opaque {
				c.screen.SetPixel(px, py, rgba)
			} else {
				c.screen.BlendPixel(px, py, col)
			}
		}
	}
}

// DrawText places text on the cell row containing its baseline.
func (c *CellSurface) DrawText(x, y float64, text string, col color.Color) {
	cx := int(math.Floor(x / c.scale))
	cy := int(math.Floor((y - c.scale) / (2 * c.scale)))
	c.screen.DrawTextColored(cx, cy, text, Opaque(col))
}

// TextWidth returns one pixel column per rune.
func (c *CellSurface) TextWidth(text string) float64 {
	return float64(len([]rune(text))) * c.scale
}
