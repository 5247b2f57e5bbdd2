package tui

import "github.com/charmbracelet/lipgloss"

// Theme contains the lipgloss styles of the landing page.
type Theme struct {
	// Hero banner
	HeroBox     lipgloss.Style
	HeroTitle   lipgloss.Style
	HeroTagline lipgloss.Style
	HeroScene   lipgloss.Style
	CTA         lipgloss.Style
	CTAActive   lipgloss.Style

	// Game section
	SectionTitle lipgloss.Style
	SectionHint  lipgloss.Style
	Card         lipgloss.Style
	CardActive   lipgloss.Style

	// Footer
	Footer lipgloss.Style
	Help   lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		HeroBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#ef4444")).
			Padding(0, 2),
		HeroTitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#fde047")).Bold(true),
		HeroTagline: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		HeroScene:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		CTA: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#facc15")).
			Padding(0, 2),
		CTAActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#eab308")).
			Bold(true).
			Underline(true).
			Padding(0, 2),

		SectionTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		SectionHint:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		CardActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#fde047")),

		Footer: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// MonochromeTheme returns a theme without colors for limited terminals.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.HeroBox = theme.HeroBox.BorderForeground(lipgloss.Color("250"))
	theme.HeroTitle = lipgloss.NewStyle().Bold(true)
	theme.CTA = lipgloss.NewStyle().Reverse(true).Padding(0, 2)
	theme.CTAActive = lipgloss.NewStyle().Reverse(true).Bold(true).Padding(0, 2)
	theme.CardActive = theme.CardActive.BorderForeground(lipgloss.Color("255"))
	return theme
}
