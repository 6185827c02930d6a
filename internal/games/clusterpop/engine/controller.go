package engine

import "math/rand"

// Phase is the controller's state-machine state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome describes what a click did.
type Outcome int

const (
	ClickIgnored Outcome = iota // Off-board, empty cell, or cluster too small
	ClickPopped                 // A cluster was removed
	ClickReset                  // The click started a new game after game over
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case ClickIgnored:
		return "ignored"
	case ClickPopped:
		return "popped"
	case ClickReset:
		return "reset"
	default:
		return "unknown"
	}
}

// ClickResult reports the effect of a single HandleClick call.
type ClickResult struct {
	Outcome Outcome
	Removed int  // Cells removed by the pop
	Gained  int  // Score gained, including any clear bonus
	Cleared bool // The pop emptied the whole board
}

// Snapshot is a read-only copy of the game for renderers and tests.
type Snapshot struct {
	Board     Board
	Score     int
	GameOver  bool
	Phase     Phase
	Remaining int // Filled cells left on the board
	Moves     int // Pops since the last reset
}

// RedrawFunc is invoked after every click that changed the game.
type RedrawFunc func(Snapshot)

// Controller owns one game and applies clicks to it. It is not safe for
// concurrent use; each click is processed to completion before returning.
type Controller struct {
	state      State
	seed       int64      // Seed of the current board
	prepared   bool       // Current board came from WithState, not from seed
	seq        *rand.Rand // Draws the seed of each following board
	redraw     RedrawFunc
	clearBonus int
	moves      []Coord
}

// Option configures a Controller.
type Option func(*Controller)

// WithRedraw registers a callback invoked after each board change.
func WithRedraw(fn RedrawFunc) Option {
	return func(c *Controller) {
		c.redraw = fn
	}
}

// WithState starts the controller from a prepared state instead of a
// random board. Such a game cannot be replayed from its seed; later resets
// still deal seeded boards.
func WithState(s State) Option {
	return func(c *Controller) {
		c.state = s
		c.prepared = true
	}
}

// WithClearBonus awards extra points when a pop empties the board.
func WithClearBonus(points int) Option {
	return func(c *Controller) {
		if points > 0 {
			c.clearBonus = points
		}
	}
}

// NewController creates a controller with a freshly filled board.
// Games created with the same seed and fed the same clicks are identical.
func NewController(seed int64, opts ...Option) *Controller {
	c := &Controller{
		seq:   rand.New(rand.NewSource(seed)),
		moves: make([]Coord, 0, maxCells/MinClusterSize),
	}
	c.deal(seed)

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Seed returns the seed of the current board. When Replayable reports
// true, Replay(Seed(), Moves()) reproduces the current game.
func (c *Controller) Seed() int64 {
	return c.seed
}

// Replayable reports whether the current board was dealt from Seed.
// It is false for a board set with WithState until the next reset.
func (c *Controller) Replayable() bool {
	return !c.prepared
}

// Phase returns the current state-machine phase.
func (c *Controller) Phase() Phase {
	if c.state.GameOver {
		return PhaseGameOver
	}
	return PhasePlaying
}

// HandleClick applies a click at (row, col).
//
// While playing, a click on an off-board or empty cell, or on a cluster
// smaller than MinClusterSize, is ignored. Otherwise the cluster is removed,
// the score grows by size², the board is compacted and the game-over check
// runs. Any click after game over starts a new game.
func (c *Controller) HandleClick(row, col int) ClickResult {
	if c.state.GameOver {
		c.Reset()
		return ClickResult{Outcome: ClickReset}
	}

	at := At(row, col)
	cl := FindCluster(&c.state.Board, at)
	if !cl.Poppable() {
		return ClickResult{Outcome: ClickIgnored}
	}

	removed := RemoveCluster(&c.state.Board, &cl)
	gained := ScoreFor(removed)

	Compact(&c.state.Board)

	cleared := c.state.Board.IsCleared()
	if cleared {
		gained += c.clearBonus
	}
	c.state.Score += gained
	c.moves = append(c.moves, at)

	if IsGameOver(&c.state.Board) {
		c.state.GameOver = true
	}

	c.notify()

	return ClickResult{
		Outcome: ClickPopped,
		Removed: removed,
		Gained:  gained,
		Cleared: cleared,
	}
}

// Reset starts a new game with a fresh random board.
func (c *Controller) Reset() {
	c.deal(c.seq.Int63())
	c.notify()
}

// deal fills a new board from seed and forgets the previous game.
func (c *Controller) deal(seed int64) {
	c.seed = seed
	c.prepared = false
	c.state.Init(rand.New(rand.NewSource(seed)))
	c.moves = c.moves[:0]
}

// Preview returns the cluster a click at (row, col) would pop and the score
// it would earn, without changing the game. Score is 0 if nothing would pop.
func (c *Controller) Preview(row, col int) (Cluster, int) {
	if c.state.GameOver {
		return Cluster{}, 0
	}
	cl := FindCluster(&c.state.Board, At(row, col))
	return cl, ScoreFor(cl.Size)
}

// Moves returns a copy of the coordinates of every pop since the last reset.
func (c *Controller) Moves() []Coord {
	out := make([]Coord, len(c.moves))
	copy(out, c.moves)
	return out
}

// Snapshot returns a copy of the current game.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Board:     c.state.Board,
		Score:     c.state.Score,
		GameOver:  c.state.GameOver,
		Phase:     c.Phase(),
		Remaining: c.state.Board.FilledCount(),
		Moves:     len(c.moves),
	}
}

// notify invokes the redraw callback, if any.
func (c *Controller) notify() {
	if c.redraw != nil {
		c.redraw(c.Snapshot())
	}
}
