package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// palette maps core.Color to window colours.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault: {0x00, 0x00, 0x00, 0xff},
	core.ColorBlack:   {0x00, 0x00, 0x00, 0xff},
	core.ColorGreen:   {0x00, 0xff, 0x00, 0xff},
	core.ColorBlue:    {0x00, 0x00, 0xff, 0xff},
	core.ColorWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorGray:    {0x80, 0x80, 0x80, 0xff},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// ImageCanvas draws grid cells into an ebiten image, scale pixels per cell.
type ImageCanvas struct {
	img   *ebiten.Image
	scale int
}

// NewImageCanvas wraps img.
func NewImageCanvas(img *ebiten.Image, scale int) *ImageCanvas {
	return &ImageCanvas{img: img, scale: scale}
}

// Clear implements core.Canvas.
func (c *ImageCanvas) Clear(col core.Color) {
	c.img.Fill(rgba(col))
}

// FillRects implements core.Canvas.
func (c *ImageCanvas) FillRects(rects []core.Rect, col core.Color) {
	fill := rgba(col)
	for _, r := range rects {
		px := r.Scale(c.scale)
		ebitenutil.DrawRect(c.img, float64(px.X), float64(px.Y), float64(px.W), float64(px.H), fill)
	}
}
