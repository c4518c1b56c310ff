package t2048

import "github.com/vovakirdan/tui-2048/internal/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
	StateError       GameStateType = "error"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Variant  string
	Size     int
	Revision uint64 // Engine notifications, construction included
	Moves    int
	Board    engine.Board
	MaxTile  int
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.err != nil:
		state = StateError
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:    g.tick,
		Variant: g.variant.ID,
		Moves:   g.Moves(),
		Board:   g.board.Clone(),
		MaxTile: g.board.MaxTile(),
		State:   state,
	}
	if g.eng != nil {
		snap.Size = g.eng.Size()
		snap.Revision = g.eng.Revision()
	}
	return snap
}
