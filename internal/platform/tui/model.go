package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coin-runner/internal/config"
	"github.com/vovakirdan/coin-runner/internal/core"
	"github.com/vovakirdan/coin-runner/internal/games/runner"
	"github.com/vovakirdan/coin-runner/internal/loop"
)

// GameOptions configures a terminal game.
type GameOptions struct {
	Config  config.RunnerConfig
	Runtime core.RuntimeConfig
	Width   int                   // Game area width in cells
	Height  int                   // Game area height in cells
	OnFrame func(core.StepResult) // Called after every frame, e.g. for sound
	Logger  *log.Logger
	Mono    bool // Page chrome without colors
}

// view is the cell buffer the game draws into. It is shared by every copy
// of the Bubble Tea model, so resizes are seen by the driver's render hook.
type view struct {
	screen   *core.Screen
	surface  *core.CellSurface
	surfaceH float64
}

func newView(w, h int, surfaceH float64) *view {
	v := &view{screen: core.NewScreen(w, h), surfaceH: surfaceH}
	v.surface = core.NewCellSurface(v.screen, surfaceH)
	return v
}

func (v *view) resize(w, h int) {
	v.screen.Resize(w, h)
	v.surface = core.NewCellSurface(v.screen, v.surfaceH)
}

// GameModel is the Bubble Tea model for the runner. It can run on its own
// or embedded in the landing page.
type GameModel struct {
	game     *runner.Game
	driver   *loop.Driver
	view     *view
	keys     *KeyMapper
	help     help.Model
	tickRate int
	logger   *log.Logger
	quitting bool
}

// NewGameModel creates the game, its frame driver and the cell buffer.
func NewGameModel(opts GameOptions) (GameModel, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 20
	}

	v := newView(w, h, opts.Config.Surface.Height)
	rt := opts.Runtime
	rt.SurfaceW, _ = v.surface.Size()
	game := runner.New(opts.Config, rt)

	render := func() {
		v.screen.Clear()
		game.Render(v.surface)
	}
	driverOpts := []loop.Option{
		loop.WithMaxDelta(opts.Config.Loop.MaxDelta()),
		loop.WithLogger(logger),
	}
	if opts.OnFrame != nil {
		driverOpts = append(driverOpts, loop.WithFrameHook(opts.OnFrame))
	}
	driver, err := loop.NewDriver(game, render, driverOpts...)
	if err != nil {
		logger.Error("cannot start game", "error", err)
		return GameModel{}, fmt.Errorf("create frame driver: %w", err)
	}
	render()

	hm := help.New()
	hm.ShowAll = false

	return GameModel{
		game:     game,
		driver:   driver,
		view:     v,
		keys:     NewKeyMapper(),
		help:     hm,
		tickRate: rt.TickRate,
		logger:   logger,
	}, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Keys().Screenshot) {
			m.saveScreenshot()
			return m, nil
		}
		action, quit := m.keys.MapKey(msg)
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		m.Queue(action)
		return m, nil

	case tea.WindowSizeMsg:
		// One line is kept for the help footer.
		m.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.Frame(time.Time(msg))
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

// Queue records an action for the next frame.
func (m GameModel) Queue(a core.Action) {
	if a != core.ActionNone && a != core.ActionQuit {
		m.driver.Queue(a)
	}
}

// Frame runs one game frame.
func (m GameModel) Frame(now time.Time) core.StepResult {
	return m.driver.Frame(now)
}

// Resize fits the game into w×h cells. The run continues with the new width.
func (m GameModel) Resize(w, h int) {
	w, h = core.Max(w, 1), core.Max(h, 1)
	m.view.resize(w, h)
	sw, _ := m.view.surface.Size()
	m.game.Resize(sw)
	m.logger.Debug("game resized", "cols", w, "rows", h, "width", sw)
}

// Screen returns the cell buffer of the last frame.
func (m GameModel) Screen() *core.Screen {
	return m.view.screen
}

// State returns the current game state.
func (m GameModel) State() core.GameState {
	return m.game.State()
}

// Game exposes the underlying game.
func (m GameModel) Game() *runner.Game {
	return m.game
}

// GameView renders only the game area.
func (m GameModel) GameView() string {
	return RenderScreen(m.view.screen)
}

// View renders the game and the help line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	return m.GameView() + "\n" + DefaultTheme().Help.Render(m.help.View(m.keys.Keys()))
}

// saveScreenshot saves the current screen to a text file.
func (m GameModel) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".runner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("coin-runner_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.view.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// RunGame starts the Bubble Tea program with the standalone game.
func RunGame(opts GameOptions) error {
	model, err := NewGameModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
