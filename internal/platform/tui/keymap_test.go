package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/coin-runner/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("action = %v, expected %v", action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("quit = %v, expected %v", quit, tt.quit)
			}
		})
	}
}

func TestHelpBindings(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) != 3 {
		t.Errorf("ShortHelp() has %d bindings, expected 3", len(keys.ShortHelp()))
	}
	for _, b := range keys.ShortHelp() {
		if b.Help().Key == "" || b.Help().Desc == "" {
			t.Errorf("binding %v has no help text", b.Keys())
		}
	}
}
