package runner

import (
	"image/color"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/coin-runner/internal/core"
)

type fillOp struct {
	X, Y, W, H float64
	C          color.RGBA
	A          uint8
}

type textOp struct {
	X, Y float64
	Text string
	C    color.RGBA
}

// recordSurface captures draw calls instead of producing pixels.
type recordSurface struct {
	w, h  float64
	fills []fillOp
	texts []textOp
}

func (r *recordSurface) Size() (float64, float64) { return r.w, r.h }

func (r *recordSurface) FillRect(x, y, w, h float64, c color.Color) {
	r.fills = append(r.fills, fillOp{X: x, Y: y, W: w, H: h, C: core.Opaque(c), A: core.NRGBA(c).A})
}

func (r *recordSurface) DrawText(x, y float64, text string, c color.Color) {
	r.texts = append(r.texts, textOp{X: x, Y: y, Text: text, C: core.Opaque(c)})
}

func (r *recordSurface) TextWidth(text string) float64 { return float64(len(text)) * 7 }

func (r *recordSurface) textContaining(sub string) (textOp, bool) {
	for _, t := range r.texts {
		if strings.Contains(t.Text, sub) {
			return t, true
		}
	}
	return textOp{}, false
}

func (r *recordSurface) fillsWith(c color.RGBA) []fillOp {
	var out []fillOp
	for _, f := range r.fills {
		if f.C == c {
			out = append(out, f)
		}
	}
	return out
}

func TestRenderHUD(t *testing.T) {
	s := newQuietState(t)
	s.Score = 17
	dst := &recordSurface{w: 640, h: 260}

	Render(s, dst)

	score, ok := dst.textContaining("Score: 17")
	if !ok {
		t.Fatal("HUD should show the score")
	}
	if score.X != 12 || score.Y != 22 || score.C != HUDColor {
		t.Errorf("score text = %+v", score)
	}
	if _, ok := dst.textContaining(HintJump); !ok {
		t.Error("HUD should show the jump hint")
	}
	if _, ok := dst.textContaining(HintPause); !ok {
		t.Error("HUD should show the pause hint")
	}
	if _, ok := dst.textContaining(TextGameOver); ok {
		t.Error("game over text should not show while running")
	}
}

func TestRenderEntities(t *testing.T) {
	s := newQuietState(t)
	s.Obstacles = append(s.Obstacles,
		Obstacle{X: 300, Y: 190, W: 26, H: 30, Variant: VariantLow},
		Obstacle{X: 400, Y: 180, W: 26, H: 40, Variant: VariantTall},
	)
	s.Coins = append(s.Coins, Coin{X: 500, Y: 150, W: 12, H: 12})
	dst := &recordSurface{w: 640, h: 260}

	Render(s, dst)

	player := dst.fillsWith(PlayerColor)
	if len(player) != 1 || player[0].X != 40 || player[0].Y != 188 || player[0].W != 28 || player[0].H != 32 {
		t.Errorf("player fill = %+v", player)
	}
	if len(dst.fillsWith(BandColor)) != 1 {
		t.Error("player band should be drawn once")
	}
	if low := dst.fillsWith(LowColor); len(low) != 1 || low[0].X != 300 {
		t.Errorf("low obstacle fill = %+v", low)
	}
	if tall := dst.fillsWith(TallColor); len(tall) != 1 || tall[0].X != 400 {
		t.Errorf("tall obstacle fill = %+v", tall)
	}

	coin := dst.fillsWith(CoinColor)
	if len(coin) == 0 {
		t.Fatal("coin should be drawn")
	}
	for _, f := range coin {
		if f.X < 500-1e-9 || f.X+f.W > 512+1e-9 || f.Y < 150 || f.Y+f.H > 162 {
			t.Errorf("coin span %+v outside its 12x12 box", f)
		}
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	s := newQuietState(t)
	s.Mode = ModeGameOver
	dst := &recordSurface{w: 640, h: 260}

	Render(s, dst)

	var overlay *fillOp
	for i := range dst.fills {
		f := dst.fills[i]
		if f.A > 0 && f.A < 255 && f.W == 640 && f.H == 260 {
			overlay = &f
		}
	}
	if overlay == nil {
		t.Fatal("game over should dim the whole surface")
	}

	title, ok := dst.textContaining(TextGameOver)
	if !ok {
		t.Fatal("game over title missing")
	}
	expectedX := 320 - float64(len(TextGameOver))*7/2
	if title.X != expectedX || title.Y != 130 {
		t.Errorf("title at (%v, %v), expected (%v, 130)", title.X, title.Y, expectedX)
	}
	if _, ok := dst.textContaining(TextRestart); !ok {
		t.Error("restart hint missing")
	}
}

func TestRenderPausedHint(t *testing.T) {
	s := newQuietState(t)
	Apply(s, core.ActionConfirm)
	dst := &recordSurface{w: 640, h: 260}

	Render(s, dst)

	if _, ok := dst.textContaining(TextPaused); !ok {
		t.Error("paused hint missing")
	}
	for _, f := range dst.fills {
		if f.A < 255 {
			t.Error("pause should not dim the surface")
		}
	}
}

func TestRenderHillsWrapSeamlessly(t *testing.T) {
	render := func(hillsX float64) []fillOp {
		s := newQuietState(t)
		s.HillsX = hillsX
		dst := &recordSurface{w: 640, h: 260}
		Render(s, dst)
		return dst.fillsWith(HillColor)
	}

	a := render(-37)
	b := render(-37 - 200)
	if len(a) == 0 {
		t.Fatal("hills should be drawn")
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("offsets one tile apart should draw identical hills")
	}

	// Hills must reach both edges of the surface
	minX, maxX := 1e9, -1e9
	for _, f := range a {
		if f.X < minX {
			minX = f.X
		}
		if f.X+f.W > maxX {
			maxX = f.X + f.W
		}
	}
	if minX > 0 || maxX < 640 {
		t.Errorf("hills span [%v, %v], expected to cover [0, 640]", minX, maxX)
	}
}

func TestRenderDoesNotMutateState(t *testing.T) {
	s := NewState(quietConfig(), 640, nil)
	s.SpawnObstacle()
	s.SpawnCoin()
	before := s.Snapshot()

	Render(s, &recordSurface{w: 640, h: 260})

	if !reflect.DeepEqual(before, s.Snapshot()) {
		t.Error("Render should only read the state")
	}
}

func TestRenderOnCellSurface(t *testing.T) {
	s := newQuietState(t)
	s.Score = 8
	screen := core.NewScreen(100, 20)
	surf := core.NewCellSurface(screen, 260)
	s.Resize(func() float64 { w, _ := surf.Size(); return w }())

	Render(s, surf)

	if !strings.Contains(screen.String(), "Score: 8") {
		t.Errorf("terminal render should contain the score, got:\n%s", screen.String())
	}
	// Bottom pixel row is below the ground strip: sky gradient, not black
	if cellPixel(screen, 0, screen.PixelRows()-1) == core.DefaultBG {
		t.Error("sky should fill the whole surface")
	}
	// Ground strip pixel
	groundPy := int(220/surf.Scale() + 0.5)
	if got := cellPixel(screen, 99, groundPy); got != GroundColor {
		t.Errorf("ground pixel = %v, expected %v", got, GroundColor)
	}
}

// cellPixel returns the color of half-block pixel (px, py) on a screen.
func cellPixel(s *core.Screen, px, py int) color.RGBA {
	cell := s.GetCell(px, py/2)
	if cell.Rune == core.HalfBlock && py%2 == 0 {
		return cell.FG
	}
	return cell.BG
}
