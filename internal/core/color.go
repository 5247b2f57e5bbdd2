package core

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// NRGBA converts any color to non-premultiplied 8-bit RGBA.
func NRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// Opaque drops the alpha channel of c.
func Opaque(c color.Color) color.RGBA {
	n := NRGBA(c)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 0xff}
}

// Over composites src over an opaque dst and returns an opaque result.
func Over(dst color.RGBA, src color.Color) color.RGBA {
	s := NRGBA(src)
	if s.A == 0xff {
		return color.RGBA{R: s.R, G: s.G, B: s.B, A: 0xff}
	}
	if s.A == 0 {
		return dst
	}
	out := toColorful(dst).BlendRgb(colorful.Color{
		R: float64(s.R) / 255,
		G: float64(s.G) / 255,
		B: float64(s.B) / 255,
	}, float64(s.A)/255)
	r, g, b := out.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Lerp blends two opaque colors; t=0 yields a, t=1 yields b.
func Lerp(a, b color.Color, t float64) color.RGBA {
	out := toColorful(Opaque(a)).BlendRgb(toColorful(Opaque(b)), ClampF(t, 0, 1))
	r, g, bl := out.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 0xff}
}

// Hex returns the #rrggbb form of c, ignoring alpha.
func Hex(c color.Color) string {
	return toColorful(Opaque(c)).Hex()
}

// MustParseHex parses a #rrggbb string and panics on malformed input.
// Intended for package-level palette definitions.
func MustParseHex(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
