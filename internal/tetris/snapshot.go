package tetris

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick          uint64
	Score         int
	RowsCleared   int
	Boost         bool
	PieceShape    Shape
	PieceRotation int
	PieceCol      int
	PieceRow      int
	NextShape     Shape
	LockedCells   int
	NextDropTick  uint64
	State         GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case !g.playing:
		state = StatePaused
	}

	return Snapshot{
		Tick:          g.tick,
		Score:         g.score,
		RowsCleared:   g.rowsCleared,
		Boost:         g.boost,
		PieceShape:    g.piece.Shape,
		PieceRotation: g.piece.Rotation,
		PieceCol:      g.piece.Col,
		PieceRow:      g.piece.Row,
		NextShape:     g.next.Shape,
		LockedCells:   g.grid.OccupiedCount(),
		NextDropTick:  g.nextDropTick,
		State:         state,
	}
}
