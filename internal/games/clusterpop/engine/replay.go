package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Replay rebuilds a game from its seed and pop log.
// Every move must pop a cluster; the first one that does not stops the
// replay with ErrReplayDiverged.
func Replay(seed int64, moves []Coord, opts ...Option) (Snapshot, error) {
	c := NewController(seed, opts...)

	for i, m := range moves {
		if c.state.GameOver {
			return c.Snapshot(), fmt.Errorf("move %d %v after game over: %w", i, m, ErrReplayDiverged)
		}
		res := c.HandleClick(m.Row, m.Col)
		if res.Outcome != ClickPopped {
			return c.Snapshot(), fmt.Errorf("move %d %v did not pop: %w", i, m, ErrReplayDiverged)
		}
	}

	return c.Snapshot(), nil
}

// EncodeMoves serializes a pop log as "row,col;row,col;...".
func EncodeMoves(moves []Coord) string {
	buf := make([]byte, 0, len(moves)*6)
	for i, m := range moves {
		if i > 0 {
			buf = append(buf, ';')
		}
		buf = fmt.Appendf(buf, "%d,%d", m.Row, m.Col)
	}
	return string(buf)
}

// DecodeMoves parses the format produced by EncodeMoves.
func DecodeMoves(s string) ([]Coord, error) {
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ";")
	moves := make([]Coord, 0, len(parts))
	for _, part := range parts {
		m, err := decodeMove(part)
		if err != nil {
			return nil, err
		}
		if !m.InBounds() {
			return nil, fmt.Errorf("decode move %v: %w", m, ErrOutOfBounds)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// decodeMove parses exactly "row,col" with decimal integers.
func decodeMove(s string) (Coord, error) {
	rowStr, colStr, ok := strings.Cut(s, ",")
	if !ok {
		return Coord{}, fmt.Errorf("decode move %q: missing comma", s)
	}
	row, err := strconv.Atoi(rowStr)
	if err != nil {
		return Coord{}, fmt.Errorf("decode move %q: %w", s, err)
	}
	col, err := strconv.Atoi(colStr)
	if err != nil {
		return Coord{}, fmt.Errorf("decode move %q: %w", s, err)
	}
	return At(row, col), nil
}
