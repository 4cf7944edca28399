package tui

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-miner/internal/config"
	"github.com/vovakirdan/tui-miner/internal/core"
	_ "github.com/vovakirdan/tui-miner/internal/games/miner"
)

func sessionSend(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return sm, cmd
}

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 5}
	return NewSessionModel(testStore(t), cfg, log.New(&bytes.Buffer{}))
}

func TestMenuDifficultyCycles(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), config.DifficultyNormal)
	if m.Difficulty() != config.DifficultyNormal {
		t.Fatalf("Difficulty() = %q, expected normal", m.Difficulty())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(MenuModel)
	if m.Difficulty() != config.DifficultyHard {
		t.Errorf("Difficulty() = %q, expected hard", m.Difficulty())
	}

	next, _ = m.Update(runeKey('h'))
	next, _ = next.(MenuModel).Update(runeKey('h'))
	m = next.(MenuModel)
	if m.Difficulty() != config.DifficultyEasy {
		t.Errorf("Difficulty() = %q, expected easy", m.Difficulty())
	}

	next, _ = m.Update(runeKey('h'))
	if d := next.(MenuModel).Difficulty(); d != config.DifficultyFixed {
		t.Errorf("Difficulty() = %q, expected wrap to fixed", d)
	}
}

func TestSessionPlayAndReturn(t *testing.T) {
	m := newTestSession(t)

	m, cmd := sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %v, expected game after selecting a world", m.screen)
	}
	if cmd == nil {
		t.Error("starting a game should schedule a tick")
	}

	m, _ = sessionSend(t, m, runeKey('q'))
	m, _ = sessionSend(t, m, TickMsg{})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, expected menu after quitting the run", m.screen)
	}
	if m.notice == "" {
		t.Error("expected a last-run notice")
	}
	if m.quitting {
		t.Error("quitting a run should not end the session")
	}

	// Stale ticks are ignored by the menu
	m, _ = sessionSend(t, m, TickMsg{})
	if m.screen != screenMenu {
		t.Error("stale tick changed the screen")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := newTestSession(t)

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %v, expected scoreboard", m.screen)
	}

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("screen = %v, expected menu after back", m.screen)
	}

	m, cmd := sessionSend(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
}
