package runner

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/coin-runner/internal/config"
	"github.com/vovakirdan/coin-runner/internal/core"
)

// Game wraps a State with the frame protocol used by the loop driver:
// queued actions are applied first, then the world advances.
type Game struct {
	state   *State
	cfg     config.RunnerConfig
	runtime core.RuntimeConfig
}

// New creates a game for the given configuration. A zero seed in runtime
// selects a time-based seed.
func New(cfg config.RunnerConfig, runtime core.RuntimeConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(runtime)
	return g
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Coin Runner"
}

// Reset starts a brand new run with a fresh random source.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	width := runtime.SurfaceW
	if width <= 0 {
		width = core.DefaultConfig().SurfaceW
	}
	g.state = NewState(g.cfg, width, rand.New(rand.NewSource(seed)))
}

// Step applies the frame's actions in order and advances the world by dtMs.
func (g *Game) Step(in core.InputFrame, dtMs float64) core.StepResult {
	g.state.ClearEvents()
	for _, a := range in.Actions {
		Apply(g.state, a)
	}
	g.state.Update(dtMs)
	return core.StepResult{State: g.State(), Events: g.state.Events}
}

// Render draws the current state onto dst.
func (g *Game) Render(dst core.Surface) {
	Render(g.state, dst)
}

// Resize follows the drawing surface width.
func (g *Game) Resize(width float64) {
	g.state.Resize(width)
}

// Sim exposes the simulation state.
func (g *Game) Sim() *State {
	return g.state
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.Mode == ModeGameOver,
		Paused:   g.state.Mode == ModePaused,
	}
}
