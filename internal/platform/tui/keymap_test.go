package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey('w'), core.ActionUp},
		{"j", runeKey('j'), core.ActionDown},
		{"a", runeKey('a'), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"p", runeKey('p'), core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%s) = %v, expected %v", tc.msg, got, tc.want)
			}
		})
	}
}

func TestKeyMapForGame(t *testing.T) {
	keys := DefaultKeyMap()

	running := keys.forGame(engine.StateRunning, true)
	if running.Action(runeKey('r')) != core.ActionNone {
		t.Error("restart should be disabled while running")
	}
	if running.Action(tea.KeyMsg{Type: tea.KeyEsc}) != core.ActionNone {
		t.Error("back should be disabled while running")
	}

	over := keys.forGame(engine.StateGameOver, false)
	if over.Action(runeKey('r')) != core.ActionRestart {
		t.Error("restart should be enabled after game over")
	}
	if over.Action(runeKey('p')) != core.ActionNone {
		t.Error("pause should be disabled after game over")
	}

	if keys.forGame(engine.StateCleared, false).Action(tea.KeyMsg{Type: tea.KeyEnter}) != core.ActionNone {
		t.Error("next level should be disabled without a next level")
	}
	if keys.forGame(engine.StateCleared, true).Action(tea.KeyMsg{Type: tea.KeyEnter}) != core.ActionConfirm {
		t.Error("next level should be enabled after a clear")
	}

	if !keys.Restart.Enabled() {
		t.Error("forGame should not modify the receiver")
	}
}
