package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/coin-runner/internal/config"
	"github.com/vovakirdan/coin-runner/internal/core"
	"github.com/vovakirdan/coin-runner/internal/games/runner"
)

// fakeGame records what the driver hands it.
type fakeGame struct {
	deltas  []float64
	actions [][]core.Action
}

func (g *fakeGame) Step(in core.InputFrame, dtMs float64) core.StepResult {
	g.deltas = append(g.deltas, dtMs)
	g.actions = append(g.actions, append([]core.Action(nil), in.Actions...))
	return core.StepResult{State: core.GameState{Score: len(g.deltas)}}
}

func TestNewDriverRequiresGameAndSurface(t *testing.T) {
	if _, err := NewDriver(nil, func() {}); !errors.Is(err, ErrNoGame) {
		t.Errorf("NewDriver(nil game) error = %v, expected %v", err, ErrNoGame)
	}
	if _, err := NewDriver(&fakeGame{}, nil); !errors.Is(err, ErrNoSurface) {
		t.Errorf("NewDriver(nil render) error = %v, expected %v", err, ErrNoSurface)
	}
}

func TestFrameDeltas(t *testing.T) {
	g := &fakeGame{}
	renders := 0
	d, err := NewDriver(g, func() { renders++ }, WithMaxDelta(100*time.Millisecond))
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}

	base := time.Unix(100, 0)
	d.Frame(base)
	d.Frame(base.Add(16 * time.Millisecond))
	// A backgrounded window, then a clock that stepped backwards.
	d.Frame(base.Add(5 * time.Second))
	d.Frame(base.Add(5*time.Second - time.Millisecond))

	expected := []float64{0, 16, 100, 0}
	if len(g.deltas) != len(expected) {
		t.Fatalf("got %d frames, expected %d", len(g.deltas), len(expected))
	}
	for i, want := range expected {
		if g.deltas[i] != want {
			t.Errorf("frame %d dt = %v, expected %v", i, g.deltas[i], want)
		}
	}
	if renders != 4 {
		t.Errorf("renders = %d, expected 4", renders)
	}
	if d.Frames() != 4 {
		t.Errorf("Frames() = %d, expected 4", d.Frames())
	}
}

func TestNoClampWhenDisabled(t *testing.T) {
	g := &fakeGame{}
	d, _ := NewDriver(g, func() {})

	base := time.Unix(0, 0)
	d.Frame(base)
	d.Frame(base.Add(2 * time.Second))

	if g.deltas[1] != 2000 {
		t.Errorf("dt = %v, expected 2000", g.deltas[1])
	}
}

func TestQueuedInputIsConsumedOnce(t *testing.T) {
	g := &fakeGame{}
	d, _ := NewDriver(g, func() {})

	d.Queue(core.ActionConfirm)
	d.Queue(core.ActionNone)
	d.Queue(core.ActionJump)
	base := time.Unix(0, 0)
	d.Frame(base)
	d.Frame(base.Add(time.Millisecond))

	first := g.actions[0]
	if len(first) != 2 || first[0] != core.ActionConfirm || first[1] != core.ActionJump {
		t.Errorf("first frame actions = %v, expected [Confirm Jump]", first)
	}
	if len(g.actions[1]) != 0 {
		t.Errorf("second frame actions = %v, expected none", g.actions[1])
	}
}

func TestFrameHook(t *testing.T) {
	g := &fakeGame{}
	var seen []int
	d, _ := NewDriver(g, func() {}, WithFrameHook(func(r core.StepResult) {
		seen = append(seen, r.State.Score)
	}))

	d.Frame(time.Unix(0, 0))
	last := d.Frame(time.Unix(1, 0))

	if len(seen) != 2 || seen[1] != 2 {
		t.Errorf("hook saw %v, expected [1 2]", seen)
	}
	if last.State.Score != 2 {
		t.Errorf("Frame().State.Score = %d, expected 2", last.State.Score)
	}
}

func TestFixedStep(t *testing.T) {
	src := NewFixedStep(10*time.Millisecond, 3)
	ctx := context.Background()

	var times []time.Time
	for {
		now, err := src.Next(ctx)
		if errors.Is(err, ErrExhausted) {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		times = append(times, now)
	}

	if len(times) != 3 {
		t.Fatalf("got %d ticks, expected 3", len(times))
	}
	if got := times[2].Sub(times[0]); got != 20*time.Millisecond {
		t.Errorf("span = %v, expected 20ms", got)
	}
}

func TestFixedStepHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewFixedStep(time.Millisecond, 0).Next(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Next error = %v, expected context.Canceled", err)
	}
}

func TestRunStopsOnExhaustion(t *testing.T) {
	g := &fakeGame{}
	d, _ := NewDriver(g, func() {})

	if err := Run(context.Background(), NewFixedStep(16*time.Millisecond, 5), d); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if d.Frames() != 5 {
		t.Errorf("Frames() = %d, expected 5", d.Frames())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	tk := NewTicker(1000)
	defer tk.Stop()

	d, _ := NewDriver(&fakeGame{}, func() {})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := Run(ctx, tk, d); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run error = %v, expected deadline exceeded", err)
	}
}

// A 5s stall advances the spawn timers by one clamped frame only.
func TestClampKeepsRunnerStable(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	game := runner.New(cfg, core.RuntimeConfig{SurfaceW: 640, TickRate: 60, Seed: 3})
	d, _ := NewDriver(game, func() {}, WithMaxDelta(100*time.Millisecond))

	base := time.Unix(0, 0)
	d.Frame(base)
	d.Frame(base.Add(5 * time.Second))

	s := game.Sim()
	if s.ObstacleTimer > 100+1e-9 {
		t.Errorf("ObstacleTimer = %v, expected at most 100", s.ObstacleTimer)
	}
	if len(s.Obstacles) != 0 {
		t.Errorf("obstacles = %d, expected none after a clamped frame", len(s.Obstacles))
	}
}
