package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/clusterpop/internal/core"
	"github.com/vovakirdan/clusterpop/internal/registry"
	"github.com/vovakirdan/clusterpop/internal/storage"
)

// fakeGame records the frames it is stepped with.
type fakeGame struct {
	state  core.GameState
	frames []core.InputFrame
	resets int
}

func (g *fakeGame) ID() string {
	return "fake"
}

func (g *fakeGame) Title() string {
	return "Fake"
}

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "fake board")
}

func (g *fakeGame) State() core.GameState {
	return g.state
}

func (g *fakeGame) Controls() []registry.Control {
	return []registry.Control{
		{Keys: []string{"left", "right"}, Help: "move"},
		{Keys: []string{"space"}, Help: "pop"},
	}
}

func (g *fakeGame) Record() registry.Record {
	return registry.Record{Seed: 7, Moves: "0,0;1,1;2,2", Cleared: true}
}

func (g *fakeGame) lastFrame(t *testing.T) core.InputFrame {
	t.Helper()
	if len(g.frames) == 0 {
		t.Fatal("game was never stepped")
	}
	return g.frames[len(g.frames)-1]
}

func newTestModel(t *testing.T, game *fakeGame, store *storage.Store, opts ...GameOption) GameModel {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}
	m := NewGameModel(game, store, cfg, opts...)
	m.Init()
	return m
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestGameModelInitResets(t *testing.T) {
	game := &fakeGame{}
	newTestModel(t, game, nil)
	if game.resets != 1 {
		t.Errorf("resets = %d, want 1", game.resets)
	}
}

func TestGameModelKeysReachGame(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(t, game, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, runeKey('?'))
	m, _ = update(t, m, TickMsg{})

	in := game.lastFrame(t)
	if !in.Has(core.ActionLeft) || !in.Has(core.ActionHint) {
		t.Errorf("frame missing actions: %+v", in.Actions)
	}

	// The frame is cleared after each tick
	update(t, m, TickMsg{})
	if !game.lastFrame(t).Empty() {
		t.Error("second tick should see an empty frame")
	}
}

func TestGameModelMouseClick(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(t, game, nil)

	m, _ = update(t, m, tea.MouseMsg{X: 30, Y: 9, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	update(t, m, TickMsg{})

	x, y, ok := game.lastFrame(t).Click()
	if !ok || x != 30 || y != 9 {
		t.Errorf("click = (%d,%d,%v), want (30,9,true)", x, y, ok)
	}
}

func TestGameModelQuit(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, nil)

	m, cmd := update(t, m, runeKey('q'))
	if !isQuit(cmd) || !m.IsQuitting() {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestGameModelBackToMenu(t *testing.T) {
	tests := []struct {
		name      string
		allowBack bool
		state     core.GameState
		want      bool
	}{
		{"playing", true, core.GameState{}, false},
		{"paused", true, core.GameState{Paused: true}, true},
		{"game over", true, core.GameState{GameOver: true}, true},
		{"not allowed", false, core.GameState{GameOver: true}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			game := &fakeGame{}
			var opts []GameOption
			if tc.allowBack {
				opts = append(opts, WithBackToMenu())
			}
			m := newTestModel(t, game, nil, opts...)

			game.state = tc.state
			m, _ = update(t, m, TickMsg{})
			m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

			if m.BackToMenu() != tc.want {
				t.Errorf("BackToMenu = %v, want %v", m.BackToMenu(), tc.want)
			}
			if isQuit(cmd) != tc.want {
				t.Errorf("quit cmd = %v, want %v", isQuit(cmd), tc.want)
			}
		})
	}
}

func TestGameModelSavesOnGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	game := &fakeGame{}
	m := newTestModel(t, game, store)

	m, _ = update(t, m, TickMsg{})
	game.state = core.GameState{Score: 42, GameOver: true}
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{}) // Still over; no second save

	scores, err := store.AllScores("fake")
	if err != nil {
		t.Fatalf("AllScores: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 42 {
		t.Fatalf("scores = %+v, want one entry of 42", scores)
	}

	rec, err := store.GameByID(m.LastGameID())
	if err != nil {
		t.Fatalf("GameByID: %v", err)
	}
	if rec.Seed != 7 || rec.MoveCount != 3 || !rec.Cleared || rec.Score != 42 {
		t.Errorf("record = %+v", rec)
	}

	// A new round followed by another game over saves again
	game.state = core.GameState{}
	m, _ = update(t, m, TickMsg{})
	game.state = core.GameState{Score: 10, GameOver: true}
	update(t, m, TickMsg{})

	scores, _ = store.AllScores("fake")
	if len(scores) != 2 {
		t.Errorf("got %d scores after second game, want 2", len(scores))
	}
}

func TestGameModelWithoutStore(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(t, game, nil)

	game.state = core.GameState{Score: 5, GameOver: true}
	m, _ = update(t, m, TickMsg{})
	if m.LastGameID() != "" {
		t.Error("nothing should be stored without a store")
	}
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(t, game, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if game.resets != 1 {
		t.Errorf("resize reset the game: resets = %d", game.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40-helpRows {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestGameModelView(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, nil)

	view := m.View()
	if !strings.Contains(view, "fake board") {
		t.Error("view should contain the game render")
	}
	for _, want := range []string{"←→", "move", "␣", "pop"} {
		if !strings.Contains(view, want) {
			t.Errorf("help line missing %q", want)
		}
	}
}

func TestMoveCount(t *testing.T) {
	tests := []struct {
		moves string
		want  int
	}{
		{"", 0},
		{"1,2", 1},
		{"1,2;3,4;5,6", 3},
	}
	for _, tc := range tests {
		if got := moveCount(tc.moves); got != tc.want {
			t.Errorf("moveCount(%q) = %d, want %d", tc.moves, got, tc.want)
		}
	}
}
