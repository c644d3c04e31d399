package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// CollisionPolicy decides what a self-collision does.
type CollisionPolicy int

const (
	// PolicyFreeze leaves the snake in place; the session keeps running.
	PolicyFreeze CollisionPolicy = iota
	// PolicyEnd ends the game.
	PolicyEnd
)

func (p CollisionPolicy) String() string {
	if p == PolicyEnd {
		return "end"
	}
	return "freeze"
}

// Rules are the knobs that distinguish variants.
type Rules struct {
	Growth          Growth
	OnSelfCollision CollisionPolicy
}

// String describes the rules, e.g. "growth=lazy self-collision=freeze".
func (r Rules) String() string {
	return fmt.Sprintf("growth=%s self-collision=%s", r.Growth, r.OnSelfCollision)
}

// ClassicRules grow lazily, and a self-collision only freezes the snake.
func ClassicRules() Rules {
	return Rules{Growth: GrowLazy, OnSelfCollision: PolicyFreeze}
}

// StrictRules grow immediately and end the game on self-collision.
func StrictRules() Rules {
	return Rules{Growth: GrowImmediate, OnSelfCollision: PolicyEnd}
}

// Game owns the snake, the food and the score.
type Game struct {
	id    string
	title string
	rules Rules

	tick      uint64
	score     int
	boardSize int // pixels
	cellSize  int // pixels
	snake     *Snake
	food      *Food

	frozen   bool
	gameOver bool
}

// New creates a game with the given rules, already reset to the default layout.
func New(id, title string, rules Rules) *Game {
	g := &Game{id: id, title: title, rules: rules}
	g.Reset(core.DefaultConfig())
	return g
}

// NewClassic creates the classic variant.
func NewClassic() *Game {
	return New("classic", "Snake", ClassicRules())
}

// NewStrict creates the strict variant.
func NewStrict() *Game {
	return New("strict", "Snake (Strict)", StrictRules())
}

func init() {
	registry.Register("classic", func() registry.Game {
		return NewClassic()
	})
	registry.Register("strict", func() registry.Game {
		return NewStrict()
	})
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Rules returns the variant's rules.
func (g *Game) Rules() Rules {
	return g.rules
}

// Reset initializes the game from cfg. The initial food cell is not checked
// against the snake: with the default layout the first update eats it.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	def := core.DefaultConfig()
	if cfg.BoardSize <= 0 || cfg.CellSize <= 0 {
		cfg.BoardSize, cfg.CellSize = def.BoardSize, def.CellSize
	}
	start := cfg.Start
	if len(start.Body) == 0 {
		start = core.DefaultStart()
	}
	dir, err := ParseDirection(start.Direction)
	if err != nil {
		dir = DirRight
	}

	g.tick = 0
	g.score = 0
	g.frozen = false
	g.gameOver = false
	g.boardSize = cfg.BoardSize
	g.cellSize = cfg.CellSize
	g.snake = NewSnake(start.Body, dir)
	g.food = NewFood(start.Food, rand.New(rand.NewSource(cfg.Seed)))
}

// Cells returns the board extent in cells.
func (g *Game) Cells() int {
	return g.boardSize / g.cellSize
}

// Update advances the simulation by one tick.
func (g *Game) Update() {
	if g.gameOver {
		return
	}
	g.tick++

	moved := g.snake.Update()
	g.frozen = !moved
	if !moved && g.rules.OnSelfCollision == PolicyEnd {
		g.gameOver = true
		return
	}

	if g.food.Parked() || !g.snake.IsCollide(g.food.Pos()) {
		return
	}

	g.score++
	g.snake.Grow(g.rules.Growth)
	g.relocateFood()
}

// relocateFood rerolls the food until it is off the snake. When every board
// cell is taken the food is parked instead.
func (g *Game) relocateFood() {
	cells := g.Cells()
	if g.freeCells(cells) == 0 {
		g.food.Place(parked)
		return
	}
	for {
		p := g.food.Relocate(cells)
		if !g.snake.IsCollide(p) {
			return
		}
	}
}

// freeCells counts board cells not covered by the snake.
func (g *Game) freeCells(cells int) int {
	board := core.NewRect(0, 0, cells, cells)
	taken := make(map[core.Point]struct{}, g.snake.Len())
	for _, p := range g.snake.body {
		if board.Contains(p.X, p.Y) {
			taken[p] = struct{}{}
		}
	}
	return cells*cells - len(taken)
}

// Pressed steers the snake with W/A/S/D. Reversals and other keys are ignored.
func (g *Game) Pressed(k core.Key) {
	if g.gameOver {
		return
	}
	switch k {
	case core.KeyW:
		g.snake.SetDirection(DirUp)
	case core.KeyS:
		g.snake.SetDirection(DirDown)
	case core.KeyA:
		g.snake.SetDirection(DirLeft)
	case core.KeyD:
		g.snake.SetDirection(DirRight)
	}
}

// Render clears the frame, then draws the snake and the food on top.
func (g *Game) Render(c core.Canvas) {
	c.Clear(core.ColorBackground)
	g.snake.Render(c)
	g.food.Render(c)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Frozen:   g.frozen,
	}
}
