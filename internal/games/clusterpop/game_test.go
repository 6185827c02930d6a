package clusterpop

import (
	"strings"
	"testing"

	"github.com/vovakirdan/clusterpop/internal/config"
	"github.com/vovakirdan/clusterpop/internal/core"
	"github.com/vovakirdan/clusterpop/internal/games/clusterpop/engine"
)

func newTestGame(t *testing.T, seed int64, edit func(*config.ClusterPopConfig)) *Game {
	t.Helper()
	cfg := config.DefaultClusterPopConfig()
	if edit != nil {
		edit(&cfg)
	}
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 30})
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func clickAt(g *Game, x, y int) core.StepResult {
	in := core.NewInputFrame()
	in.SetClick(x, y)
	return g.Step(in)
}

// glyphPos returns a screen cell inside the drawn glyph of a board cell.
func glyphPos(g *Game, c engine.Coord) (int, int) {
	return g.layout.cellX(c.Col) + 1, g.layout.cellY(c.Row)
}

// playOut pops the largest cluster until the game ends.
func playOut(t *testing.T, g *Game) {
	t.Helper()
	for range engine.BoardSize * engine.BoardSize {
		if g.State().GameOver {
			return
		}
		step(g, core.ActionHint, core.ActionConfirm)
	}
	t.Fatal("game did not end")
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345, nil)
	g2 := newTestGame(t, 12345, nil)

	script := [][]core.Action{
		{core.ActionLeft},
		{core.ActionConfirm},
		{core.ActionHint, core.ActionConfirm},
		{core.ActionDown, core.ActionRight},
		{core.ActionJump},
		{core.ActionHint, core.ActionJump},
	}
	for _, actions := range script {
		step(g1, actions...)
		step(g2, actions...)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Error("games with the same seed and input diverged")
	}
}

func TestCursorMovement(t *testing.T) {
	tests := []struct {
		name    string
		wrap    bool
		actions []core.Action
		times   int
		want    engine.Coord
	}{
		{"wrap left", true, []core.Action{core.ActionLeft}, 6, engine.At(5, 10)},
		{"wrap down", true, []core.Action{core.ActionDown}, 6, engine.At(0, 5)},
		{"clamp up", false, []core.Action{core.ActionUp}, 10, engine.At(0, 5)},
		{"clamp right", false, []core.Action{core.ActionRight}, 10, engine.At(5, 10)},
		{"diagonal", false, []core.Action{core.ActionUp, core.ActionLeft}, 2, engine.At(3, 3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 1, func(c *config.ClusterPopConfig) { c.Controls.WrapCursor = tc.wrap })
			for range tc.times {
				step(g, tc.actions...)
			}
			if got := g.Snapshot().Cursor; got != tc.want {
				t.Errorf("cursor = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLayoutToGrid(t *testing.T) {
	// 80x24 with 3-column cells: box at (22, 6), grid origin (23, 7)
	l := computeLayout(80, 24, 3)
	if l.tooSmall {
		t.Fatal("80x24 should fit the board")
	}

	tests := []struct {
		name string
		x, y int
		want engine.Coord
	}{
		{"first glyph", 24, 7, engine.At(0, 0)},
		{"gutter belongs to the cell", 23, 7, engine.At(0, 0)},
		{"second column", 26, 8, engine.At(1, 1)},
		{"last cell", 23 + 10*3 + 2, 17, engine.At(10, 10)},
		{"trailing gutter", 23 + 11*3, 7, engine.At(0, 11)},
		{"border", 22, 7, engine.At(-1, -1)},
		{"hud", 30, 0, engine.At(-1, -1)},
		{"below board", 30, 18, engine.At(11, 2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := l.toGrid(tc.x, tc.y); got != tc.want {
				t.Errorf("toGrid(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestMouseClickPops(t *testing.T) {
	g := newTestGame(t, 7, nil)
	cl, ok := engine.LargestCluster(&g.snap.Board)
	if !ok {
		t.Fatal("fresh board has no clusters")
	}
	target := cl.Cells[cl.Size-1]

	x, y := glyphPos(g, target)
	res := clickAt(g, x, y)
	if res.State.Score != cl.Size*cl.Size {
		t.Errorf("score = %d, want %d", res.State.Score, cl.Size*cl.Size)
	}
	if g.Snapshot().Cursor != target {
		t.Errorf("cursor should follow the click to %v, got %v", target, g.Snapshot().Cursor)
	}
	if got := g.Moves(); len(got) != 1 || got[0] != target {
		t.Errorf("Moves() = %v, want [%v]", got, target)
	}
}

func TestMouseDisabled(t *testing.T) {
	g := newTestGame(t, 7, func(c *config.ClusterPopConfig) { c.Controls.MouseEnabled = false })
	cl, _ := engine.LargestCluster(&g.snap.Board)

	x, y := glyphPos(g, cl.Cells[0])
	res := clickAt(g, x, y)
	if res.State.Score != 0 {
		t.Error("clicks should be ignored with the mouse disabled")
	}
}

func TestClickOutsideBoardIgnored(t *testing.T) {
	g := newTestGame(t, 7, nil)
	before := g.Snapshot()

	clickAt(g, 0, 0)
	after := g.Snapshot()
	if after.Board != before.Board || after.Cursor != before.Cursor {
		t.Error("a click outside the board should change nothing")
	}
}

func TestHintAndConfirm(t *testing.T) {
	g := newTestGame(t, 99, nil)
	cl, _ := engine.LargestCluster(&g.snap.Board)

	step(g, core.ActionHint)
	if !cl.Contains(g.Snapshot().Cursor) {
		t.Fatalf("hint should move the cursor into the largest cluster, got %v", g.Snapshot().Cursor)
	}

	res := step(g, core.ActionConfirm)
	if res.State.Score != cl.Size*cl.Size {
		t.Errorf("score = %d, want %d", res.State.Score, cl.Size*cl.Size)
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t, 3, nil)

	res := step(g, core.ActionPause)
	if !res.State.Paused {
		t.Fatal("game should be paused")
	}

	res = step(g, core.ActionHint, core.ActionConfirm)
	if res.State.Score != 0 {
		t.Error("input should be ignored while paused")
	}

	res = step(g, core.ActionPause)
	if res.State.Paused {
		t.Error("second pause should resume")
	}
}

func TestGameOverRestart(t *testing.T) {
	tests := []struct {
		name    string
		restart func(g *Game)
	}{
		{"click anywhere", func(g *Game) { clickAt(g, 1, 1) }},
		{"confirm", func(g *Game) { step(g, core.ActionConfirm) }},
		{"restart key", func(g *Game) { step(g, core.ActionRestart) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 2024, nil)
			playOut(t, g)
			final := g.State().Score

			tc.restart(g)

			snap := g.Snapshot()
			if snap.Board.GameOver || snap.Board.Score != 0 {
				t.Errorf("after restart: game over %v, score %d", snap.Board.GameOver, snap.Board.Score)
			}
			if snap.Board.Remaining != engine.BoardSize*engine.BoardSize {
				t.Errorf("after restart: %d cells, want a full board", snap.Board.Remaining)
			}
			if g.best != final {
				t.Errorf("best = %d, want the finished game's %d", g.best, final)
			}
		})
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(t, 5, nil)
	step(g, core.ActionHint, core.ActionConfirm)
	score := g.State().Score

	step(g, core.ActionRestart)
	if g.State().Score != score {
		t.Error("restart should only apply after game over")
	}
}

func TestRecordReplays(t *testing.T) {
	g := newTestGame(t, 4242, nil)
	for range 5 {
		step(g, core.ActionHint, core.ActionConfirm)
	}

	rec := g.Record()
	moves, err := engine.DecodeMoves(rec.Moves)
	if err != nil {
		t.Fatalf("DecodeMoves() failed: %v", err)
	}
	snap, err := engine.Replay(rec.Seed, moves)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if snap.Board != g.snap.Board || snap.Score != g.snap.Score {
		t.Error("replayed record does not match the live game")
	}
}

func TestPinnedSeed(t *testing.T) {
	pin := func(c *config.ClusterPopConfig) { c.Board.Seed = 99 }
	g1 := newTestGame(t, 1, pin)
	g2 := newTestGame(t, 2, pin)

	if g1.snap.Board != g2.snap.Board {
		t.Error("a pinned seed should give the same board for any runtime seed")
	}
	if g1.Seed() != 99 {
		t.Errorf("Seed() = %d, want 99", g1.Seed())
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 11, nil)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing score: %q", screen.Row(0))
	}

	for row := range engine.BoardSize {
		for col := range engine.BoardSize {
			cell := g.snap.Board[row][col]
			x, y := glyphPos(g, engine.At(row, col))
			got := screen.GetCell(x, y)
			if got.Color != cellColors[cell.Color] {
				t.Fatalf("cell %v drawn in %v, want %v", engine.At(row, col), got.Color, cellColors[cell.Color])
			}
		}
	}

	c := g.Snapshot().Cursor
	y := g.layout.cellY(c.Row)
	if screen.Get(g.layout.cellX(c.Col), y) != cursorLeft || screen.Get(g.layout.cellX(c.Col+1), y) != cursorRight {
		t.Error("cursor brackets not drawn around the cursor cell")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t, 2024, nil)
	playOut(t, g)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Click to restart") {
		t.Error("game over overlay should offer a restart")
	}
}

func TestTooSmall(t *testing.T) {
	g := NewWithConfig(config.DefaultClusterPopConfig())
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 20, ScreenH: 10})

	res := step(g, core.ActionHint, core.ActionConfirm)
	if res.State.Score != 0 {
		t.Error("input should be ignored while the window is too small")
	}
	if !g.Snapshot().TooSmall {
		t.Error("snapshot should report the small window")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("small window message not drawn")
	}
}

func TestControlsMentionMouse(t *testing.T) {
	on := newTestGame(t, 1, nil)
	off := newTestGame(t, 1, func(c *config.ClusterPopConfig) { c.Controls.MouseEnabled = false })

	if len(on.Controls()) != len(off.Controls())+1 {
		t.Error("mouse control should only be listed when the mouse is enabled")
	}
}
