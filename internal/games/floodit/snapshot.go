package floodit

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StateLost        GameStateType = "lost"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Mode       string
	BoardSize  int
	Colors     int
	MaxMoves   int
	Moves      int
	Score      int
	Cursor     int
	Origin     ColorIndex
	RegionSize int
	Uniform    bool
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWon
	case g.lost:
		state = StateLost
	}

	return Snapshot{
		Tick:       g.tick,
		Mode:       string(g.mode),
		BoardSize:  g.board.N,
		Colors:     g.colorCount,
		MaxMoves:   g.maxMoves,
		Moves:      g.moves,
		Score:      g.score,
		Cursor:     g.cursor,
		Origin:     g.board.Origin(),
		RegionSize: g.board.RegionSize(),
		Uniform:    g.board.IsUniform(),
		State:      state,
	}
}
