package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// parked is the food position when no free cell is left on the board.
var parked = core.Point{X: -1, Y: -1}

// Food is a single cell with its own random source.
type Food struct {
	pos core.Point
	rng *rand.Rand
}

// NewFood places food at pos. rng must not be shared with anything that needs
// a reproducible sequence of its own.
func NewFood(pos core.Point, rng *rand.Rand) *Food {
	return &Food{pos: pos, rng: rng}
}

// Pos returns the food cell.
func (f *Food) Pos() core.Point {
	return f.pos
}

// Place moves the food to p.
func (f *Food) Place(p core.Point) {
	f.pos = p
}

// Parked reports whether the food was taken off the board.
func (f *Food) Parked() bool {
	return f.pos == parked
}

// Relocate moves the food to a uniformly random cell in [0, cells) on both axes
// and returns it. It does not look at the snake.
func (f *Food) Relocate(cells int) core.Point {
	x := f.rng.Intn(cells)
	y := f.rng.Intn(cells)
	f.pos = core.Point{X: x, Y: y}
	return f.pos
}

// Render draws the food cell.
func (f *Food) Render(c core.Canvas) {
	if f.Parked() {
		return
	}
	c.FillRects([]core.Rect{core.UnitRect(f.pos)}, core.ColorFood)
}
