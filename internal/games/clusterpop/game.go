// Package clusterpop implements Cluster Pop, a same-color cluster popping
// puzzle, on top of the arcade platform. The rules live in the engine
// subpackage; this package adds the cursor, mouse input and drawing.
package clusterpop

import (
	"github.com/vovakirdan/clusterpop/internal/config"
	"github.com/vovakirdan/clusterpop/internal/core"
	"github.com/vovakirdan/clusterpop/internal/games/clusterpop/engine"
	"github.com/vovakirdan/clusterpop/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "clusterpop"

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements Cluster Pop for the arcade platform.
type Game struct {
	cfg     config.ClusterPopConfig
	loaded  bool
	runtime core.RuntimeConfig

	ctrl   *engine.Controller
	snap   engine.Snapshot // Updated by the controller after every change
	cursor engine.Coord
	last   engine.ClickResult
	best   int // Best score since the game was created

	layout layout
	paused bool
	tick   uint64
}

// New creates a new Cluster Pop game instance.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(cfg config.ClusterPopConfig) *Game {
	cfg.Normalize()
	return &Game{cfg: cfg, loaded: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Cluster Pop"
}

// Reset starts a new game with a board drawn from the runtime seed, or from
// the configured seed when one is pinned.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.loaded {
		loaded, err := config.LoadClusterPop(configPath)
		if err != nil {
			loaded = config.DefaultClusterPopConfig()
		}
		g.cfg = loaded
		g.loaded = true
	}

	g.runtime = cfg
	seed := cfg.Seed
	if g.cfg.Board.Seed != 0 {
		seed = g.cfg.Board.Seed
	}

	g.ctrl = engine.NewController(seed,
		engine.WithClearBonus(g.cfg.Scoring.ClearBonus),
		engine.WithRedraw(g.onRedraw),
	)
	g.snap = g.ctrl.Snapshot()
	g.cursor = centerCoord()
	g.last = engine.ClickResult{}
	g.paused = false
	g.tick = 0
	g.layout = computeLayout(cfg.ScreenW, cfg.ScreenH, g.cfg.Display.CellWidth)
}

func centerCoord() engine.Coord {
	return engine.At(engine.BoardSize/2, engine.BoardSize/2)
}

// onRedraw receives every board change from the controller.
func (g *Game) onRedraw(s engine.Snapshot) {
	g.snap = s
	g.best = max(g.best, s.Score)
}

// Step applies one tick of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.layout.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.snap.GameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// A freshly dealt board can be dead; restart is allowed then too.
	if in.Has(core.ActionRestart) && (g.snap.GameOver || !engine.HasMoves(&g.snap.Board)) {
		g.ctrl.Reset()
		g.afterReset()
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if in.Has(core.ActionHint) {
		if cl, ok := engine.LargestCluster(&g.snap.Board); ok {
			g.cursor = cl.Cells[0]
		}
	}

	if x, y, ok := in.Click(); ok && g.cfg.Controls.MouseEnabled {
		at := g.layout.toGrid(x, y)
		if at.InBounds() {
			g.cursor = at
		}
		g.click(at)
	} else if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
		g.click(g.cursor)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	row, col := g.cursor.Row, g.cursor.Col
	if in.Has(core.ActionUp) {
		row--
	}
	if in.Has(core.ActionDown) {
		row++
	}
	if in.Has(core.ActionLeft) {
		col--
	}
	if in.Has(core.ActionRight) {
		col++
	}

	if g.cfg.Controls.WrapCursor {
		g.cursor = engine.At(core.Wrap(row, engine.BoardSize), core.Wrap(col, engine.BoardSize))
	} else {
		g.cursor = engine.At(core.Clamp(row, 0, engine.BoardSize-1), core.Clamp(col, 0, engine.BoardSize-1))
	}
}

// click forwards a board click to the controller.
func (g *Game) click(at engine.Coord) {
	res := g.ctrl.HandleClick(at.Row, at.Col)
	if res.Outcome == engine.ClickReset {
		g.afterReset()
	}
	if res.Outcome != engine.ClickIgnored {
		g.last = res
	}
}

func (g *Game) afterReset() {
	g.cursor = centerCoord()
	g.last = engine.ClickResult{Outcome: engine.ClickReset}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.snap.Score,
		GameOver: g.snap.GameOver,
		Paused:   g.paused,
	}
}

// Seed returns the seed of the current board.
func (g *Game) Seed() int64 {
	if g.ctrl == nil {
		return 0
	}
	return g.ctrl.Seed()
}

// Moves returns the pops made since the last reset.
func (g *Game) Moves() []engine.Coord {
	if g.ctrl == nil {
		return nil
	}
	return g.ctrl.Moves()
}

// Record returns the replayable summary of the current round.
func (g *Game) Record() registry.Record {
	return registry.Record{
		Seed:    g.Seed(),
		Moves:   engine.EncodeMoves(g.Moves()),
		Cleared: g.snap.GameOver && g.snap.Remaining == 0,
	}
}

// Controls describes the key bindings for help lines.
func (g *Game) Controls() []registry.Control {
	controls := []registry.Control{
		{Keys: []string{"up", "down", "left", "right"}, Help: "move"},
		{Keys: []string{"space", "enter"}, Help: "pop"},
		{Keys: []string{"?"}, Help: "hint"},
		{Keys: []string{"p"}, Help: "pause"},
		{Keys: []string{"r"}, Help: "new game"},
		{Keys: []string{"q"}, Help: "quit"},
	}
	if g.cfg.Controls.MouseEnabled {
		controls = append(controls, registry.Control{Keys: []string{"click"}, Help: "pop"})
	}
	return controls
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
