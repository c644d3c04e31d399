package core

// Canvas is the drawing surface the game renders into. Rects are in grid
// units; each Canvas owns its own cell-to-output scale.
type Canvas interface {
	// Clear fills the whole frame with c.
	Clear(c Color)
	// FillRects draws each rectangle filled with c.
	FillRects(rects []Rect, c Color)
}

// CellColumns is how many terminal columns one grid cell occupies, so that cells
// look roughly square in a terminal font.
const CellColumns = 2

// ScreenCanvas draws grid cells into a Screen, CellColumns characters wide.
type ScreenCanvas struct {
	screen *Screen
}

// NewScreenCanvas wraps a screen. The screen should be cells*CellColumns wide
// and cells tall; anything drawn outside it is clipped.
func NewScreenCanvas(s *Screen) *ScreenCanvas {
	return &ScreenCanvas{screen: s}
}

// Screen returns the underlying buffer.
func (c *ScreenCanvas) Screen() *Screen {
	return c.screen
}

// Clear implements Canvas.
func (c *ScreenCanvas) Clear(col Color) {
	c.screen.Fill(' ', col)
}

// FillRects implements Canvas.
func (c *ScreenCanvas) FillRects(rects []Rect, col Color) {
	for _, r := range rects {
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X * CellColumns; x < r.Right()*CellColumns; x++ {
				c.screen.SetColored(x, y, '█', col)
			}
		}
	}
}
