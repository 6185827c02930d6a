package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/clusterpop/internal/core"
	"github.com/vovakirdan/clusterpop/internal/registry"
)

func init() {
	registry.Register("fake", func() registry.Game {
		return &fakeGame{}
	})
}

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func newTestSession() SessionModel {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}
	return NewSessionModel(nil, cfg, log.New(io.Discard))
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession()

	m, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.gameModel == nil {
		t.Fatal("enter should start the selected game")
	}
	if isQuit(cmd) {
		t.Fatal("starting a game must not quit the session")
	}

	game, ok := m.gameModel.game.(*fakeGame)
	if !ok {
		t.Fatalf("game is %T", m.gameModel.game)
	}
	game.state = core.GameState{GameOver: true}
	m, _ = updateSession(t, m, TickMsg{})

	m, cmd = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.gameModel != nil {
		t.Fatal("esc after game over should return to the menu")
	}
	if isQuit(cmd) {
		t.Error("returning to the menu must not quit the session")
	}
}

func TestSessionScoreboardAndBack(t *testing.T) {
	m := newTestSession()

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatal("tab should open the scoreboard")
	}
	if m.View() == "" {
		t.Error("scoreboard view is empty")
	}

	m, cmd := updateSession(t, m, runeKey('b'))
	if m.screen != screenMenu {
		t.Fatal("b should return to the menu")
	}
	if isQuit(cmd) {
		t.Error("leaving the scoreboard must not quit the session")
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession()

	m, cmd := updateSession(t, m, runeKey('q'))
	if !isQuit(cmd) {
		t.Error("q in the menu should quit")
	}
	if m.View() != "" {
		t.Error("quitting session should render nothing")
	}
}
