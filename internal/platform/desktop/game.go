// Package desktop runs the runner in a native window with Ebitengine.
package desktop

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/coin-runner/internal/config"
	"github.com/vovakirdan/coin-runner/internal/core"
	"github.com/vovakirdan/coin-runner/internal/games/runner"
	"github.com/vovakirdan/coin-runner/internal/loop"
)

// Options configures the desktop window.
type Options struct {
	Config  config.RunnerConfig
	Runtime core.RuntimeConfig
	Scale   float64 // Initial window size as a multiple of the logical size
	Sound   bool
	Volume  float64
	Logger  *log.Logger
}

// keyActions maps keys to game actions. Only fresh presses count.
var keyActions = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeySpace, core.ActionJump},
	{ebiten.KeyArrowUp, core.ActionJump},
	{ebiten.KeyEnter, core.ActionConfirm},
	{ebiten.KeyNumpadEnter, core.ActionConfirm},
}

// Game implements ebiten.Game. Update advances one frame and renders it
// into an offscreen frame; Draw copies that frame to the window.
type Game struct {
	game     *runner.Game
	driver   *loop.Driver
	frame    *ebiten.Image
	surfaceH float64
	logger   *log.Logger
}

// New creates the window game.
func New(opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		surfaceH: opts.Config.Surface.Height,
		logger:   logger,
	}
	rt := opts.Runtime
	if rt.SurfaceW <= 0 {
		rt.SurfaceW = core.DefaultConfig().SurfaceW
	}
	g.game = runner.New(opts.Config, rt)
	g.frame = ebiten.NewImage(int(math.Ceil(rt.SurfaceW)), int(g.surfaceH))

	driverOpts := []loop.Option{
		loop.WithMaxDelta(opts.Config.Loop.MaxDelta()),
		loop.WithLogger(logger),
	}
	if opts.Sound {
		bank := newSoundBank(opts.Volume, logger)
		driverOpts = append(driverOpts, loop.WithFrameHook(bank.OnFrame))
	}

	driver, err := loop.NewDriver(g.game, g.render, driverOpts...)
	if err != nil {
		logger.Error("cannot start game", "error", err)
		return nil, fmt.Errorf("create frame driver: %w", err)
	}
	g.driver = driver
	return g, nil
}

func (g *Game) render() {
	g.game.Render(newSurface(g.frame))
}

// Update reads the keyboard and runs one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, k := range keyActions {
		if inpututil.IsKeyJustPressed(k.key) {
			g.driver.Queue(k.action)
		}
	}
	g.driver.Frame(time.Now())
	return nil
}

// Draw copies the last rendered frame to the window.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.frame, nil)
}

// Layout keeps the logical height fixed and lets the width follow the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := int(math.Round(core.FitWidth(outsideWidth, outsideHeight, g.surfaceH)))
	if w <= 0 {
		return g.frame.Bounds().Dx(), int(g.surfaceH)
	}
	if w != g.frame.Bounds().Dx() {
		g.frame.Deallocate()
		g.frame = ebiten.NewImage(w, int(g.surfaceH))
		g.game.Resize(float64(w))
		g.logger.Debug("window resized", "width", w)
		g.render()
	}
	return w, int(g.surfaceH)
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(opts Options) error {
	g, err := New(opts)
	if err != nil {
		return err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1.5
	}
	w := g.frame.Bounds().Dx()
	ebiten.SetWindowSize(int(float64(w)*scale), int(g.surfaceH*scale))
	ebiten.SetWindowTitle(g.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
