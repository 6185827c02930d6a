// Package engine implements the cluster pop puzzle rules: flood-fill cluster
// search, gravity and column collapse, and the terminal-state check.
// It is UI-agnostic and deterministic for a given seed.
package engine

import (
	"errors"
	"fmt"
)

// BoardSize is the board dimension (the board is BoardSize x BoardSize).
const BoardSize = 11

// MinClusterSize is the smallest cluster that can be popped.
const MinClusterSize = 2

var (
	// ErrOutOfBounds is returned for coordinates outside the board.
	ErrOutOfBounds = errors.New("engine: coordinate out of bounds")

	// ErrInvalidColor is returned when a cell holds a color outside the palette.
	ErrInvalidColor = errors.New("engine: invalid color")

	// ErrReplayDiverged is returned when a recorded move no longer pops a cluster.
	ErrReplayDiverged = errors.New("engine: replay diverged")
)

// Coord is a board position. Row 0 is the top row, Col 0 the leftmost column.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// InBounds returns true if the coordinate lies on the board.
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// neighborOffsets are the four orthogonal steps: up, right, down, left.
var neighborOffsets = [4]Coord{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Cell is a single board position: either empty or holding one color.
type Cell struct {
	Filled bool  // Whether the cell holds a bubble
	Color  Color // Valid only when Filled is true
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// FilledCell returns a cell holding the given color.
func FilledCell(c Color) Cell {
	return Cell{Filled: true, Color: c}
}

// Char returns the ASCII form of the cell ('.' when empty).
func (c Cell) Char() rune {
	if !c.Filled {
		return '.'
	}
	return c.Color.Char()
}
