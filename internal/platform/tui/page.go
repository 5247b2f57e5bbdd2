package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Focus is the page area that receives Enter.
type Focus int

const (
	FocusHero Focus = iota
	FocusGame
)

func (f Focus) String() string {
	if f == FocusGame {
		return "game"
	}
	return "hero"
}

// PageModel is the landing page: hero banner, game section and footer.
// The game runs from the first frame; Space and Up always reach it, Enter
// only once the game section has focus.
type PageModel struct {
	hero     Hero
	section  Section
	game     GameModel
	theme    Theme
	keys     *KeyMapper
	help     help.Model
	focus    Focus
	width    int
	height   int
	logger   *log.Logger
	quitting bool
}

// NewPageModel creates the landing page around a new game.
func NewPageModel(hero Hero, opts GameOptions) (PageModel, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	game, err := NewGameModel(opts)
	if err != nil {
		return PageModel{}, err
	}

	hm := help.New()
	hm.ShowAll = false

	theme := DefaultTheme()
	if opts.Mono {
		theme = MonochromeTheme()
	}

	return PageModel{
		hero:    hero,
		section: DefaultSection(),
		game:    game,
		theme:   theme,
		keys:    NewKeyMapper(),
		help:    hm,
		focus:   FocusHero,
		width:   opts.Width,
		height:  opts.Height,
		logger:  opts.Logger,
	}, nil
}

// Init starts the game's tick loop.
func (m PageModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update handles messages for the page.
func (m PageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case TickMsg:
		m.game.Frame(time.Time(msg))
		return m, tickCmd(m.game.tickRate)
	}

	return m, nil
}

// handleKey routes keys between the page and the game.
func (m PageModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Back):
		m.setFocus(FocusHero)
		return m, nil

	case key.Matches(msg, keys.Screenshot):
		m.game.saveScreenshot()
		return m, nil

	case key.Matches(msg, keys.Confirm) && m.focus == FocusHero:
		m.setFocus(FocusGame)
		return m, nil
	}

	action, _ := m.keys.MapKey(msg)
	m.game.Queue(action)
	return m, nil
}

func (m *PageModel) setFocus(f Focus) {
	if m.focus == f {
		return
	}
	m.logger.Debug("focus changed", "from", m.focus, "to", f)
	m.focus = f
}

// Focus returns the focused page area.
func (m PageModel) Focus() Focus {
	return m.focus
}

// Game returns the embedded game model.
func (m PageModel) Game() GameModel {
	return m.game
}

// layout sizes the game card to the space left by the other blocks.
func (m PageModel) layout() {
	chrome := lipgloss.Height(m.header()) + lipgloss.Height(m.footer())
	cardBorder := 2
	rows := m.height - chrome - cardBorder
	cols := m.width - cardBorder
	if rows < 4 {
		rows = 4
	}
	m.game.Resize(cols, rows)
}

func (m PageModel) header() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.hero.View(m.theme, m.width, m.focus == FocusHero),
		m.section.View(m.theme),
	)
}

func (m PageModel) footer() string {
	return centerText(m.theme.Footer.Render(FooterText), m.width) + "\n" +
		m.theme.Help.Render(m.help.View(m.keys.Keys()))
}

// View renders the whole page.
func (m PageModel) View() string {
	if m.quitting {
		return ""
	}

	card := m.theme.Card
	if m.focus == FocusGame {
		card = m.theme.CardActive
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(card.Render(m.game.GameView()))
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

// RunPage starts the Bubble Tea program with the landing page.
func RunPage(hero Hero, opts GameOptions) error {
	model, err := NewPageModel(hero, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run page: %w", err)
	}
	return nil
}
