package clusterpop

import (
	"github.com/vovakirdan/clusterpop/internal/core"
	"github.com/vovakirdan/clusterpop/internal/games/clusterpop/engine"
)

// hudRows is the number of screen rows above the board.
// Key help is drawn by the platform below the game screen.
const hudRows = 2

// layout maps between board coordinates and screen cells.
//
// Each board cell is cellW columns wide: one gutter column that holds the
// cursor brackets, then the glyph columns. A trailing gutter closes the last
// column, and the whole grid sits in a one-cell border box.
type layout struct {
	cellW    int
	box      core.Rect // Border box around the grid
	minW     int
	minH     int
	tooSmall bool
}

func computeLayout(screenW, screenH, cellW int) layout {
	boxW := engine.BoardSize*cellW + 1 + 2
	boxH := engine.BoardSize + 2

	l := layout{
		cellW: cellW,
		minW:  boxW,
		minH:  hudRows + boxH,
	}
	if screenW < l.minW || screenH < l.minH {
		l.tooSmall = true
		return l
	}

	area := core.NewRect(0, hudRows, screenW, screenH-hudRows)
	l.box = area.Centered(boxW, boxH)
	return l
}

// gridOrigin returns the screen position of cell (0, 0)'s gutter column.
func (l layout) gridOrigin() (int, int) {
	return l.box.X + 1, l.box.Y + 1
}

// cellX returns the screen column of the gutter in front of a board column.
func (l layout) cellX(col int) int {
	x0, _ := l.gridOrigin()
	return x0 + col*l.cellW
}

// cellY returns the screen row of a board row.
func (l layout) cellY(row int) int {
	_, y0 := l.gridOrigin()
	return y0 + row
}

// toGrid translates a screen cell into board coordinates. Points left of or
// above the grid map to negative coordinates, so the engine ignores them.
func (l layout) toGrid(x, y int) engine.Coord {
	if l.tooSmall {
		return engine.At(-1, -1)
	}
	x0, y0 := l.gridOrigin()
	dx, dy := x-x0, y-y0
	if dx < 0 || dy < 0 {
		return engine.At(-1, -1)
	}
	return engine.At(dy, dx/l.cellW)
}
