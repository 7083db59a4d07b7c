package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func loadLevels(t *testing.T) {
	t.Helper()
	t.Cleanup(registry.Reset)

	a := boardLevel()
	a.Name = "alpha"
	b := boardLevel()
	b.Name = "beta"
	if err := registry.Load([]engine.Level{a, b}); err != nil {
		t.Fatal(err)
	}
}

func send(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return sm, cmd
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	loadLevels(t)
	m := NewSessionModel(nil, nil, testConfig, "tester")

	if !strings.Contains(m.View(), "alpha") || !strings.Contains(m.View(), "beta") {
		t.Fatal("menu should list registered levels")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.active != screenGame {
		t.Fatalf("expected game screen, got %d", m.active)
	}
	if cmd == nil {
		t.Error("starting a game should start its clock")
	}
	if m.game.Board().Level != "beta" {
		t.Errorf("started %q, expected beta", m.game.Board().Level)
	}

	m, _ = send(t, m, runeKey('p'))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.active != screenMenu {
		t.Errorf("expected menu after back, got %d", m.active)
	}
	if m.menu.Selected() != nil {
		t.Error("menu should be fresh after returning")
	}
}

func TestSessionScoreboard(t *testing.T) {
	loadLevels(t)
	m := NewSessionModel(nil, nil, testConfig, "tester")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.active != screenScores {
		t.Fatalf("expected scoreboard, got %d", m.active)
	}
	if !strings.Contains(m.View(), "alpha") {
		t.Error("scoreboard should open on the highlighted level")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scores.level() != "beta" {
		t.Errorf("tab should move to the next level, got %q", m.scores.level())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.active != screenMenu {
		t.Errorf("expected menu after back, got %d", m.active)
	}
}

func TestSessionQuit(t *testing.T) {
	loadLevels(t)
	m := NewSessionModel(nil, nil, testConfig, "tester")

	m, cmd := send(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestSessionStartLevel(t *testing.T) {
	loadLevels(t)
	m := NewSessionModel(nil, nil, testConfig, "tester")

	if _, err := m.StartLevel("missing"); err == nil {
		t.Error("unknown level should fail")
	}

	m, err := m.StartLevel("alpha")
	if err != nil {
		t.Fatalf("StartLevel() failed: %v", err)
	}
	if m.active != screenGame || m.Init() == nil {
		t.Error("StartLevel should open the game with a running clock")
	}
}
