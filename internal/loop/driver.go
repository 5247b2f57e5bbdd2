// Package loop drives a game frame by frame. The host supplies timestamps,
// either from its own frame callback or from a TickSource, and the Driver
// turns them into delta times, feeds queued input to the game and renders.
package loop

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coin-runner/internal/core"
)

var (
	// ErrNoGame is returned when a Driver is built without a game.
	ErrNoGame = errors.New("loop: no game")
	// ErrNoSurface is returned when a Driver is built without a render target.
	ErrNoSurface = errors.New("loop: no drawing surface")
)

// Stepper is the frame protocol of a game: apply input, advance by dtMs.
type Stepper interface {
	Step(in core.InputFrame, dtMs float64) core.StepResult
}

// RenderFunc draws the current game state after each frame.
type RenderFunc func()

// Option configures a Driver.
type Option func(*Driver)

// WithMaxDelta clamps every frame delta to limit. Zero disables clamping.
func WithMaxDelta(limit time.Duration) Option {
	return func(d *Driver) {
		d.maxDelta = limit
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

// WithFrameHook registers a callback that receives every frame result.
func WithFrameHook(hook func(core.StepResult)) Option {
	return func(d *Driver) {
		d.hook = hook
	}
}

// Driver owns the frame clock of one game. It is not safe for concurrent
// use: Queue and Frame must be called from the host's single loop.
type Driver struct {
	game     Stepper
	render   RenderFunc
	input    core.InputFrame
	last     time.Time
	started  bool
	frames   uint64
	maxDelta time.Duration
	logger   *log.Logger
	hook     func(core.StepResult)
}

// NewDriver creates a driver for game that calls render after every frame.
func NewDriver(game Stepper, render RenderFunc, opts ...Option) (*Driver, error) {
	if game == nil {
		return nil, ErrNoGame
	}
	if render == nil {
		return nil, ErrNoSurface
	}
	d := &Driver{
		game:   game,
		render: render,
		input:  core.NewInputFrame(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Queue records an action for the next frame.
func (d *Driver) Queue(a core.Action) {
	d.input.Set(a)
}

// Frame runs one frame at time now. The first frame has a zero delta.
func (d *Driver) Frame(now time.Time) core.StepResult {
	var dt time.Duration
	if d.started {
		dt = now.Sub(d.last)
	}
	d.last = now
	d.started = true

	if dt < 0 {
		dt = 0
	}
	if d.maxDelta > 0 && dt > d.maxDelta {
		d.logger.Debug("clamping frame delta", "delta", dt, "max", d.maxDelta, "frame", d.frames)
		dt = d.maxDelta
	}

	result := d.game.Step(d.input, float64(dt)/float64(time.Millisecond))
	d.input.Clear()
	d.frames++

	d.render()
	if d.hook != nil {
		d.hook(result)
	}
	return result
}

// Frames returns how many frames have run.
func (d *Driver) Frames() uint64 {
	return d.frames
}
