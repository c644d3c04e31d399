package core

import "fmt"

// RuntimeConfig contains configuration passed to a game at Reset.
type RuntimeConfig struct {
	BoardSize int   // Board extent in pixels (square)
	CellSize  int   // Pixels per grid cell
	TickRate  int   // Simulation updates per second
	Seed      int64 // RNG seed; 0 means the platform picks a time-based seed

	Start StartLayout
}

// StartLayout is the snake and food placement at construction time.
type StartLayout struct {
	Body      []Point // Head first
	Direction string  // "up", "down", "left" or "right"
	Food      Point
}

// Cells returns the board extent in cells.
func (c RuntimeConfig) Cells() int {
	if c.CellSize <= 0 {
		return 0
	}
	return c.BoardSize / c.CellSize
}

// DefaultConfig returns the classic configuration: a 200px board
// of 20px cells, four updates per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		BoardSize: 200,
		CellSize:  20,
		TickRate:  4,
		Seed:      0,
		Start:     DefaultStart(),
	}
}

// DefaultStart returns the two-segment snake heading right with food at the origin.
func DefaultStart() StartLayout {
	return StartLayout{
		Body:      []Point{{X: 0, Y: 0}, {X: 0, Y: 1}},
		Direction: "right",
		Food:      Point{X: 0, Y: 0},
	}
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score    int  // Food eaten so far
	GameOver bool // Set only by variants that end on self-collision
	Frozen   bool // The last update was blocked by a self-collision
}

// Farewell is the line printed when a session ends.
func (s GameState) Farewell() string {
	return fmt.Sprintf("Congratulations, your score was: %d", s.Score)
}
