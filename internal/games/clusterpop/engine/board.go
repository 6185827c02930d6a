package engine

import (
	"fmt"
	"math/rand"
	"strings"
)

// Board is the fixed-size grid of cells, indexed [row][col].
// It is a value type: assigning a Board copies it.
type Board [BoardSize][BoardSize]Cell

// State is everything a game owns: the board, the score and the game-over flag.
type State struct {
	Board    Board
	Score    int
	GameOver bool
}

// Init fills every cell with a uniformly random palette color and
// resets the score and game-over flag.
func (s *State) Init(rng *rand.Rand) {
	for row := range BoardSize {
		for col := range BoardSize {
			s.Board[row][col] = FilledCell(Color(rng.Intn(int(ColorCount))))
		}
	}
	s.Score = 0
	s.GameOver = false
}

// Get returns the cell at c.
func (b *Board) Get(c Coord) (Cell, error) {
	if !c.InBounds() {
		return Empty(), fmt.Errorf("get %v: %w", c, ErrOutOfBounds)
	}
	return b[c.Row][c.Col], nil
}

// Set stores cell at c. Filled cells must carry a palette color.
func (b *Board) Set(c Coord, cell Cell) error {
	if !c.InBounds() {
		return fmt.Errorf("set %v: %w", c, ErrOutOfBounds)
	}
	if cell.Filled && !cell.Color.Valid() {
		return fmt.Errorf("set %v to %d: %w", c, cell.Color, ErrInvalidColor)
	}
	if !cell.Filled {
		cell = Empty()
	}
	b[c.Row][c.Col] = cell
	return nil
}

// at returns the cell at c, or an empty cell when c is off the board.
func (b *Board) at(c Coord) Cell {
	if !c.InBounds() {
		return Empty()
	}
	return b[c.Row][c.Col]
}

// FilledCount returns the number of filled cells.
func (b *Board) FilledCount() int {
	count := 0
	for row := range BoardSize {
		for col := range BoardSize {
			if b[row][col].Filled {
				count++
			}
		}
	}
	return count
}

// IsCleared returns true if every cell is empty.
func (b *Board) IsCleared() bool {
	return b.FilledCount() == 0
}

// Equal returns true if both boards hold the same cells.
func (b *Board) Equal(other *Board) bool {
	return *b == *other
}

// String renders the board as BoardSize lines of ASCII ('.' for empty).
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(BoardSize * (BoardSize + 1))
	for row := range BoardSize {
		for col := range BoardSize {
			sb.WriteRune(b[row][col].Char())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard builds a board from ASCII rows as produced by Board.String.
// Rows and columns beyond those given are left empty.
func ParseBoard(rows ...string) (Board, error) {
	var b Board
	if len(rows) > BoardSize {
		return b, fmt.Errorf("parse board: %d rows, max %d: %w", len(rows), BoardSize, ErrOutOfBounds)
	}
	for row, line := range rows {
		if len(line) > BoardSize {
			return b, fmt.Errorf("parse board: row %d has %d columns, max %d: %w", row, len(line), BoardSize, ErrOutOfBounds)
		}
		for col, ch := range line {
			if ch == '.' || ch == ' ' {
				continue
			}
			color, ok := ParseColor(string(ch))
			if !ok {
				return b, fmt.Errorf("parse board: %q at %v: %w", ch, At(row, col), ErrInvalidColor)
			}
			b[row][col] = FilledCell(color)
		}
	}
	return b, nil
}
