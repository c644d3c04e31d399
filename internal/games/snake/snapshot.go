package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateFrozen   GameStateType = "frozen"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick  uint64
	Score int
	Body  []core.Point
	Dir   Direction
	Food  core.Point
	State GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.frozen:
		state = StateFrozen
	}

	return Snapshot{
		Tick:  g.tick,
		Score: g.score,
		Body:  g.snake.Body(),
		Dir:   g.snake.Direction(),
		Food:  g.food.Pos(),
		State: state,
	}
}
