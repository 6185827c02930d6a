package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/clusterpop/internal/core"
	"github.com/vovakirdan/clusterpop/internal/registry"
	"github.com/vovakirdan/clusterpop/internal/storage"
)

// helpRows is the number of rows below the game screen used by the help line.
const helpRows = 1

// GameModel is the Bubble Tea model that runs one game.
// It is used directly by `play` and embedded in SSH sessions.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	bindings   []key.Binding
	allowBack  bool // B/Esc returns to the menu
	quitting   bool
	backToMenu bool
	saved      bool   // Whether the current game over has been stored
	lastGameID string // ID of the last stored game record
}

// GameOption configures a GameModel.
type GameOption func(*GameModel)

// WithLogger sets the logger used for storage and session events.
func WithLogger(l *log.Logger) GameOption {
	return func(m *GameModel) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithBackToMenu lets B/Esc leave the game when it is paused or over.
func WithBackToMenu() GameOption {
	return func(m *GameModel) {
		m.allowBack = true
	}
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...GameOption) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpRows),
		store:      store,
		logger:     log.New(io.Discard),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		bindings:   controlBindings(game),
	}
	m.help.Width = cfg.ScreenW

	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// controlBindings turns a game's control list into help key bindings.
func controlBindings(game registry.Game) []key.Binding {
	provider, ok := game.(registry.ControlsProvider)
	if !ok {
		return nil
	}

	controls := provider.Controls()
	bindings := make([]key.Binding, 0, len(controls))
	for _, c := range controls {
		labels := make([]string, len(c.Keys))
		for i, k := range c.Keys {
			labels[i] = keyLabel(k)
		}
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(c.Keys...),
			key.WithHelp(strings.Join(labels, ""), c.Help),
		))
	}
	return bindings
}

// keyLabel shortens key names for the help line.
func keyLabel(k string) string {
	switch k {
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "left":
		return "←"
	case "right":
		return "→"
	case "space":
		return "␣"
	case "enter":
		return "⏎"
	}
	return k
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	cfg := m.config
	cfg.ScreenH = m.screen.Height()
	m.game.Reset(cfg)
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack && m.allowBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize keeps the game running; games lay themselves out on render.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpRows)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick steps the game with the input gathered since the last tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	wasOver := m.gameState.GameOver
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !m.saved:
		m.recordGame()
		m.saved = true
	case wasOver && !m.gameState.GameOver:
		m.saved = false
		m.logger.Debug("new round", "game", m.game.ID())
	}

	return m, tickCmd(m.config.TickRate)
}

// recordGame stores the finished game's score and, when the game supports
// it, a replayable record. Storage failures never interrupt play.
func (m *GameModel) recordGame() {
	score := m.gameState.Score
	m.logger.Info("game over", "game", m.game.ID(), "score", score)
	if m.store == nil {
		return
	}

	if score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), score); err != nil {
			m.logger.Warn("could not save score", "error", err)
		}
	}

	rec, ok := m.game.(registry.Recorder)
	if !ok {
		return
	}
	r := rec.Record()
	id, err := m.store.SaveGame(storage.GameRecord{
		GameID:    m.game.ID(),
		Seed:      r.Seed,
		Score:     score,
		Moves:     r.Moves,
		MoveCount: moveCount(r.Moves),
		Cleared:   r.Cleared,
	})
	if err != nil {
		m.logger.Warn("could not save game record", "error", err)
		return
	}
	m.lastGameID = id
	m.logger.Debug("game record saved", "id", id)
}

// moveCount counts the entries of an encoded move log.
func moveCount(moves string) int {
	if moves == "" {
		return 0
	}
	return strings.Count(moves, ";") + 1
}

// saveScreenshot saves the current screen as plain text.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the game screen and the help line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	view := RenderScreen(m.screen)

	if len(m.bindings) > 0 {
		helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		view += "\n" + helpStyle.Render(m.help.ShortHelpView(m.bindings))
	}
	return view
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// LastGameID returns the ID of the most recently stored game record.
func (m GameModel) LastGameID() string {
	return m.lastGameID
}

// Run starts the Bubble Tea program with the given game.
// Returns true if the user left the game to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...GameOption) (backToMenu bool, err error) {
	model := NewGameModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
