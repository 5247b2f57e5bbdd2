// Package snapshot runs the game headless for a fixed number of frames and
// writes the final frame as a PNG image.
package snapshot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coin-runner/internal/config"
	"github.com/vovakirdan/coin-runner/internal/core"
	"github.com/vovakirdan/coin-runner/internal/games/runner"
	"github.com/vovakirdan/coin-runner/internal/loop"
	"github.com/vovakirdan/coin-runner/internal/raster"
)

// ErrNoFrames is returned when a snapshot is asked to run zero frames.
var ErrNoFrames = errors.New("snapshot: ticks must be positive")

// Options controls a headless run.
type Options struct {
	Ticks     int     // Frames to simulate
	JumpEvery int     // Queue a jump every N frames; 0 never jumps
	Width     float64 // Surface width in units
	Scale     int     // Output pixels per unit
}

// Result summarizes a finished run.
type Result struct {
	State  core.GameState
	Frames uint64
	Events core.Events // Union of all frame events
}

// Run simulates opts.Ticks frames at the runtime tick rate and encodes the
// last frame to w.
func Run(ctx context.Context, cfg config.RunnerConfig, rt core.RuntimeConfig, opts Options, w io.Writer, logger *log.Logger) (Result, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Ticks <= 0 {
		return Result{}, ErrNoFrames
	}
	if opts.Width <= 0 {
		opts.Width = core.DefaultConfig().SurfaceW
	}
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}
	rt.SurfaceW = opts.Width

	game := runner.New(cfg, rt)
	canvas := raster.New(opts.Width, cfg.Surface.Height, opts.Scale)

	var (
		driver *loop.Driver
		result Result
	)
	hook := func(r core.StepResult) {
		result.Events |= r.Events
		if r.Events.Has(core.EventCrashed) {
			logger.Info("crashed", "frame", driver.Frames(), "score", r.State.Score)
		}
		if opts.JumpEvery > 0 && driver.Frames()%uint64(opts.JumpEvery) == 0 {
			driver.Queue(core.ActionJump)
		}
	}
	driver, err := loop.NewDriver(game, func() { game.Render(canvas) },
		loop.WithMaxDelta(cfg.Loop.MaxDelta()),
		loop.WithLogger(logger),
		loop.WithFrameHook(hook),
	)
	if err != nil {
		return Result{}, fmt.Errorf("create frame driver: %w", err)
	}

	src := loop.NewFixedStep(time.Second/time.Duration(rt.TickRate), opts.Ticks)
	if err := loop.Run(ctx, src, driver); err != nil {
		return Result{}, fmt.Errorf("simulate: %w", err)
	}

	if err := canvas.EncodePNG(w); err != nil {
		return Result{}, err
	}

	result.State = game.State()
	result.Frames = driver.Frames()
	sim := game.Sim()
	logger.Debug("snapshot done",
		"frames", result.Frames,
		"score", result.State.Score,
		"obstacles", len(sim.Obstacles),
		"coins", len(sim.Coins),
	)
	return result, nil
}

// WriteFile runs a snapshot and writes the PNG to path. The file is only
// created once the simulation and encoding have succeeded.
func WriteFile(ctx context.Context, path string, cfg config.RunnerConfig, rt core.RuntimeConfig, opts Options, logger *log.Logger) (Result, error) {
	var buf bytes.Buffer
	res, err := Run(ctx, cfg, rt, opts, &buf, logger)
	if err != nil {
		return Result{}, err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return Result{}, fmt.Errorf("write output: %w", err)
	}
	return res, nil
}
