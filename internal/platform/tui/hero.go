package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Hero is the banner at the top of the landing page. It knows nothing about
// the game; its call to action only moves focus to the game section.
type Hero struct {
	Title    string
	Tagline  string
	SceneURL string // 3D scene shown by graphical hosts; printed as a link here
	CTA      string
}

// DefaultHero returns the landing page banner.
func DefaultHero() Hero {
	return Hero{
		Title:    "Adventures in Mario's World",
		Tagline:  "Run, jump and collect coins in this mini game inspired by Super Mario Bros.",
		SceneURL: "https://prod.spline.design/OIGfFUmCnZ3VD8gH/scene.splinecode",
		CTA:      "Play now",
	}
}

// View renders the banner within width columns. focused highlights the
// call-to-action button.
func (h Hero) View(theme Theme, width int, focused bool) string {
	cta := theme.CTA
	if focused {
		cta = theme.CTAActive
	}

	lines := []string{
		theme.HeroTitle.Render(h.Title),
		theme.HeroTagline.Render(h.Tagline),
	}
	if h.SceneURL != "" {
		lines = append(lines, theme.HeroScene.Render("scene: "+h.SceneURL))
	}
	lines = append(lines, "", cta.Render(h.CTA+" ⏎"))

	box := theme.HeroBox
	if width > 4 {
		box = box.Width(width - 2)
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Section is a titled page block with a one-line hint.
type Section struct {
	Title string
	Hint  string
}

// DefaultSection returns the game section header.
func DefaultSection() Section {
	return Section{
		Title: "Mini Game",
		Hint:  "Use Space/Arrow to jump • Enter to pause",
	}
}

// View renders the section header.
func (s Section) View(theme Theme) string {
	return theme.SectionTitle.Render(s.Title) + "\n" + theme.SectionHint.Render(s.Hint)
}

// FooterText is shown at the bottom of the landing page.
const FooterText = "Made with love — inspired by Super Mario Bros (fan-made)"

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
