package runner

import (
	"fmt"
	"image/color"
	"math"

	"github.com/vovakirdan/coin-runner/internal/core"
)

// Palette
var (
	SkyTop       = core.MustParseHex("#87CEEB")
	SkyBottom    = core.MustParseHex("#E0F6FF")
	HillColor    = core.MustParseHex("#89c15b")
	GroundColor  = core.MustParseHex("#6B3E1D")
	GrassColor   = core.MustParseHex("#7ED957")
	PlayerColor  = core.MustParseHex("#e11d48")
	BandColor    = core.MustParseHex("#111827")
	LowColor     = core.MustParseHex("#a16207")
	TallColor    = core.MustParseHex("#9ca3af")
	CoinColor    = core.MustParseHex("#f59e0b")
	HUDColor     = core.MustParseHex("#111827")
	OverlayColor = color.NRGBA{A: 128}
	BannerColor  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// HUD and overlay text.
const (
	HintJump     = "Space/Up arrow = jump"
	HintPause    = "Enter = pause/resume"
	TextPaused   = "Paused"
	TextGameOver = "Game Over!"
	TextRestart  = "Press Enter to restart"
)

const (
	hillRadius   = 120
	groundStripH = 4
	grassStripH  = 4
	spanStep     = 1.0
)

// Render paints the state back to front: sky, hills, ground, player,
// obstacles, coins, HUD and, when the run is over, a dimming overlay.
// It only reads the state.
func Render(s *State, dst core.Surface) {
	w, h := dst.Size()
	groundY := s.cfg.Physics.GroundY

	drawSky(dst, w, h)
	drawHills(dst, s.HillsX, s.cfg.Scroll.HillTile, groundY, w)

	dst.FillRect(0, groundY, w, groundStripH, GroundColor)
	dst.FillRect(0, groundY-grassStripH, w, grassStripH, GrassColor)

	p := s.Player
	dst.FillRect(p.X, p.Y, p.W, p.H, PlayerColor)
	dst.FillRect(p.X+4, p.Y+8, p.W-8, 8, BandColor)

	for _, o := range s.Obstacles {
		c := LowColor
		if o.Variant == VariantTall {
			c = TallColor
		}
		dst.FillRect(o.X, o.Y, o.W, o.H, c)
	}

	for _, c := range s.Coins {
		fillCircle(dst, c.X+c.W/2, c.Y+c.H/2, c.W/2, CoinColor)
	}

	dst.DrawText(12, 22, fmt.Sprintf("Score: %d", s.Score), HUDColor)
	dst.DrawText(12, 42, HintJump, HUDColor)
	dst.DrawText(12, 62, HintPause, HUDColor)

	switch s.Mode {
	case ModePaused:
		drawCentered(dst, w, h/2, TextPaused, HUDColor)
	case ModeGameOver:
		dst.FillRect(0, 0, w, h, OverlayColor)
		drawCentered(dst, w, h/2, TextGameOver, BannerColor)
		drawCentered(dst, w, h/2+28, TextRestart, BannerColor)
	}
}

// drawSky fills a vertical gradient from SkyTop to SkyBottom.
func drawSky(dst core.Surface, w, h float64) {
	if h <= 0 {
		return
	}
	for y := 0.0; y < h; y += spanStep {
		t := (y + spanStep/2) / h
		dst.FillRect(0, y, w, spanStep, core.Lerp(SkyTop, SkyBottom, t))
	}
}

// drawHills repeats a half-disc every tile units. The offset is wrapped by
// the tile width so the pattern scrolls seamlessly forever.
func drawHills(dst core.Surface, hillsX, tile, baseY, w float64) {
	offset := core.Wrap(hillsX, tile)
	for x := offset - tile; x < w+tile; x += tile {
		fillHalfDisc(dst, x+tile/2, baseY, hillRadius, HillColor)
	}
}

// fillHalfDisc fills the upper half of a disc centred at (cx, cy).
func fillHalfDisc(dst core.Surface, cx, cy, r float64, c color.Color) {
	for y := cy - r; y < cy; y += spanStep {
		d := cy - (y + spanStep/2)
		hw := math.Sqrt(r*r - d*d)
		dst.FillRect(cx-hw, y, 2*hw, spanStep, c)
	}
}

// fillCircle fills a disc centred at (cx, cy).
func fillCircle(dst core.Surface, cx, cy, r float64, c color.Color) {
	for y := cy - r; y < cy+r; y += spanStep {
		d := math.Abs(cy - (y + spanStep/2))
		if d > r {
			continue
		}
		hw := math.Sqrt(r*r - d*d)
		dst.FillRect(cx-hw, y, 2*hw, spanStep, c)
	}
}

// drawCentered draws text horizontally centred at baseline y.
func drawCentered(dst core.Surface, w, y float64, text string, c color.Color) {
	dst.DrawText(w/2-dst.TextWidth(text)/2, y, text, c)
}
