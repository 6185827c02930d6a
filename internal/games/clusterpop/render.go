package clusterpop

import (
	"fmt"

	"github.com/vovakirdan/clusterpop/internal/core"
	"github.com/vovakirdan/clusterpop/internal/games/clusterpop/engine"
)

// Visual characters for rendering
const (
	previewGlyph = '◉'
	cursorLeft   = '['
	cursorRight  = ']'
)

// cellColors maps board colors to screen colors.
var cellColors = [engine.ColorCount]core.Color{
	engine.ColorRed:     core.ColorRed,
	engine.ColorGreen:   core.ColorGreen,
	engine.ColorBlue:    core.ColorBlue,
	engine.ColorYellow:  core.ColorYellow,
	engine.ColorMagenta: core.ColorMagenta,
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.ctrl == nil {
		return
	}

	g.layout = computeLayout(dst.Width(), dst.Height(), g.cfg.Display.CellWidth)
	if g.layout.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	dst.DrawBoxColor(g.layout.box, core.ColorGray)
	g.renderBoard(dst)
	if !g.snap.GameOver && !g.paused {
		g.renderCursor(dst)
	}

	switch {
	case g.snap.GameOver:
		g.renderGameOver(dst)
	case g.paused:
		g.renderOverlay(dst, core.ColorYellow, "PAUSED", "Press P to resume")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	const title = "CLUSTER POP"
	box := g.layout.box

	stats := fmt.Sprintf("Score: %d  Left: %d  Best: %d", g.snap.Score, g.snap.Remaining, g.best)
	if len(title)+2+len(stats) <= box.W {
		dst.DrawTextColor(box.X, 0, title, core.ColorBrightWhite)
	}
	dst.DrawText(max(box.Right()-len(stats), 0), 0, stats)

	dst.DrawTextColor(box.X, 1, g.statusLine(), core.ColorCyan)
}

// statusLine describes the last pop, or what the cursor would pop.
func (g *Game) statusLine() string {
	if g.snap.GameOver {
		return ""
	}
	if g.cfg.Display.ShowPreview {
		if cl, score := g.ctrl.Preview(g.cursor.Row, g.cursor.Col); score > 0 {
			return fmt.Sprintf("%d %s for %d", cl.Size, cl.Color, score)
		}
	}
	if g.last.Outcome == engine.ClickPopped {
		return fmt.Sprintf("+%d (%d popped)", g.last.Gained, g.last.Removed)
	}
	return ""
}

func (g *Game) renderBoard(dst *core.Screen) {
	glyph := g.cfg.Display.GlyphRune()

	var preview engine.Cluster
	if g.cfg.Display.ShowPreview && !g.snap.GameOver {
		preview, _ = g.ctrl.Preview(g.cursor.Row, g.cursor.Col)
		if !preview.Poppable() {
			preview = engine.Cluster{}
		}
	}

	for row := range engine.BoardSize {
		y := g.layout.cellY(row)
		for col := range engine.BoardSize {
			cell := g.snap.Board[row][col]
			if !cell.Filled {
				continue
			}

			r := glyph
			if preview.Contains(engine.At(row, col)) {
				r = previewGlyph
			}
			x := g.layout.cellX(col)
			for i := 1; i < g.layout.cellW; i++ {
				dst.SetCell(x+i, y, core.ScreenCell{Rune: r, Color: cellColors[cell.Color]})
			}
		}
	}
}

func (g *Game) renderCursor(dst *core.Screen) {
	y := g.layout.cellY(g.cursor.Row)
	dst.SetCell(g.layout.cellX(g.cursor.Col), y, core.ScreenCell{Rune: cursorLeft, Color: core.ColorBrightWhite})
	dst.SetCell(g.layout.cellX(g.cursor.Col+1), y, core.ScreenCell{Rune: cursorRight, Color: core.ColorBrightWhite})
}

func (g *Game) renderGameOver(dst *core.Screen) {
	title := "GAME OVER"
	if g.snap.Remaining == 0 {
		title = "BOARD CLEARED!"
	}
	g.renderOverlay(dst, core.ColorRed, title,
		fmt.Sprintf("Score: %d", g.snap.Score),
		fmt.Sprintf("%d cells left", g.snap.Remaining),
		"",
		"Click to restart",
	)
}

// renderOverlay draws a bordered message box over the center of the board.
func (g *Game) renderOverlay(dst *core.Screen, color core.Color, title string, lines ...string) {
	w := len([]rune(title))
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 4

	box := g.layout.box.Centered(w, h)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, color)

	dst.DrawTextColor(box.X+(w-len([]rune(title)))/2, box.Y+1, title, color)
	for i, l := range lines {
		dst.DrawText(box.X+(w-len([]rune(l)))/2, box.Y+3+i, l)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	cy := dst.Height() / 2
	dst.DrawTextCenteredColor(cy-1, "Terminal too small", core.ColorYellow)
	dst.DrawTextCentered(cy, fmt.Sprintf("Need %dx%d, have %dx%d",
		g.layout.minW, g.layout.minH, dst.Width(), dst.Height()))
	dst.DrawTextCentered(cy+1, "Resize or press Q to quit")
}
