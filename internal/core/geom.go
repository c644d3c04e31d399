// Package core provides fundamental types shared by the snake simulation and
// its frontends. It has no external dependencies (especially no Bubble Tea or
// Ebiten) so the game logic stays pure and testable.
package core

// Point is a single grid cell.
type Point struct {
	X, Y int
}

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rect is an axis-aligned rectangle in grid units.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// UnitRect returns the 1x1 rectangle covering cell p.
func UnitRect(p Point) Rect {
	return Rect{X: p.X, Y: p.Y, W: 1, H: 1}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Scale returns the rectangle with every coordinate multiplied by k.
func (r Rect) Scale(k int) Rect {
	return Rect{X: r.X * k, Y: r.Y * k, W: r.W * k, H: r.H * k}
}
