//go:build ebiten

package app

import (
	"image"
	"image/color"

	"lifeview/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// boardCanvas paints into a retained offscreen image the size of the board
// surface. The game blits it to the screen every Draw.
type boardCanvas struct {
	render.PathBuilder
	img *ebiten.Image
}

func newBoardCanvas(geom render.Geometry) *boardCanvas {
	w, h := geom.SurfaceSize()
	return &boardCanvas{img: ebiten.NewImage(w, h)}
}

func (c *boardCanvas) Stroke(col color.Color) {
	for _, s := range c.Segments() {
		vector.StrokeLine(c.img, s.X0, s.Y0, s.X1, s.Y1, 1, col, false)
	}
}

func (c *boardCanvas) FillRects(col color.Color, rects []image.Rectangle) {
	for _, r := range rects {
		vector.DrawFilledRect(c.img, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), col, false)
	}
}
