package clusterpop

import "github.com/vovakirdan/clusterpop/internal/games/clusterpop/engine"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Cursor   engine.Coord
	Paused   bool
	TooSmall bool
	Board    engine.Snapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Cursor:   g.cursor,
		Paused:   g.paused,
		TooSmall: g.layout.tooSmall,
		Board:    g.snap,
	}
}
