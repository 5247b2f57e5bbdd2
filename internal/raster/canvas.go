// Package raster implements core.Surface on an in-memory RGBA image. It backs
// the headless snapshot command and the renderer's pixel tests.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canvas is an image.RGBA drawing target. One surface unit maps to Scale
// pixels on both axes.
type Canvas struct {
	img   *image.RGBA
	scale float64
	face  font.Face
}

// New creates a canvas of w×h surface units rendered at the given scale.
// A scale below 1 is treated as 1.
func New(w, h float64, scale int) *Canvas {
	if scale < 1 {
		scale = 1
	}
	pw := int(math.Ceil(w * float64(scale)))
	ph := int(math.Ceil(h * float64(scale)))
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, pw, ph)),
		scale: float64(scale),
		face:  basicfont.Face7x13,
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size returns the canvas size in surface units.
func (c *Canvas) Size() (float64, float64) {
	b := c.img.Bounds()
	return float64(b.Dx()) / c.scale, float64(b.Dy()) / c.scale
}

// FillRect composites c over the covered pixels.
func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(
		c.px(x), c.px(y),
		c.px(x+w), c.px(y+h),
	)
	if r.Dx() == 0 {
		r.Max.X = r.Min.X + 1
	}
	if r.Dy() == 0 {
		r.Max.Y = r.Min.Y + 1
	}
	draw.Draw(c.img, r.Intersect(c.img.Bounds()), image.NewUniform(col), image.Point{}, draw.Over)
}

// DrawText draws text with the 7x13 bitmap face, baseline at (x, y).
func (c *Canvas) DrawText(x, y float64, text string, col color.Color) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot:  fixed.P(c.px(x), c.px(y)),
	}
	d.DrawString(text)
}

// TextWidth returns the advance of text in surface units.
func (c *Canvas) TextWidth(text string) float64 {
	return float64(font.MeasureString(c.face, text).Round()) / c.scale
}

// at returns the pixel colour under the surface point (x, y).
func (c *Canvas) at(x, y float64) color.RGBA {
	return c.img.RGBAAt(c.px(x), c.px(y))
}

// EncodePNG writes the canvas as a PNG image.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func (c *Canvas) px(v float64) int {
	return int(math.Floor(v*c.scale + 0.5))
}
