package snake

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Growth selects how the body lengthens after eating.
type Growth int

const (
	// GrowLazy appends an off-board sentinel cell; the real shape appears on
	// the next translation, which drops the sentinel instead of a real cell.
	GrowLazy Growth = iota
	// GrowImmediate appends a copy of the tail cell.
	GrowImmediate
)

func (g Growth) String() string {
	if g == GrowImmediate {
		return "immediate"
	}
	return "lazy"
}

// growthSentinel is where lazily grown segments are parked.
var growthSentinel = core.Point{X: 0, Y: -1}

// Snake owns the body cells (head at index 0) and the heading.
// The body is never empty.
type Snake struct {
	body      []core.Point
	direction Direction
}

// NewSnake creates a snake from a head-first body. It panics on an empty body,
// so Head never has to check.
func NewSnake(body []core.Point, dir Direction) *Snake {
	if len(body) == 0 {
		panic("snake: body must not be empty")
	}
	return &Snake{
		body:      slices.Clone(body),
		direction: dir,
	}
}

// Head returns the head cell.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Len returns the number of body cells.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []core.Point {
	return slices.Clone(s.body)
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Update moves the snake one cell along its heading. If the new head would land
// on the body the snake stays where it is and Update returns false.
func (s *Snake) Update() bool {
	dx, dy := s.direction.Delta()
	newHead := s.Head().Add(dx, dy)

	// The whole body counts, tail included.
	if s.IsCollide(newHead) {
		return false
	}

	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = newHead
	return true
}

// IsCollide reports whether p is one of the body cells.
func (s *Snake) IsCollide(p core.Point) bool {
	return slices.Contains(s.body, p)
}

// SetDirection adopts d unless it is the exact reverse of the current heading.
// It reports whether d was adopted.
func (s *Snake) SetDirection(d Direction) bool {
	if d == s.direction.Opposite() {
		return false
	}
	s.direction = d
	return true
}

// Grow appends one segment to the tail.
func (s *Snake) Grow(mode Growth) {
	tail := growthSentinel
	if mode == GrowImmediate {
		tail = s.body[len(s.body)-1]
	}
	s.body = append(s.body, tail)
}

// Render draws one unit square per body cell.
func (s *Snake) Render(c core.Canvas) {
	rects := make([]core.Rect, len(s.body))
	for i, p := range s.body {
		rects[i] = core.UnitRect(p)
	}
	c.FillRects(rects, core.ColorSnake)
}
