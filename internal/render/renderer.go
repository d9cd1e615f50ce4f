package render

import (
	"image"
	"image/color"

	"lifeview/internal/core"
)

// Palette holds the three colours used to paint the board.
type Palette struct {
	Grid  color.Color
	Alive color.Color
	Dead  color.Color
}

// DefaultPalette returns light gridlines, white live cells and black dead cells.
func DefaultPalette() Palette {
	return Palette{
		Grid:  color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff},
		Alive: color.White,
		Dead:  color.Black,
	}
}

// GridRenderer paints gridlines and cells onto a Canvas.
type GridRenderer struct {
	geom    Geometry
	palette Palette
	rects   []image.Rectangle
}

// NewGridRenderer returns a renderer for the given geometry and palette.
func NewGridRenderer(geom Geometry, palette Palette) *GridRenderer {
	return &GridRenderer{
		geom:    geom,
		palette: palette,
		rects:   make([]image.Rectangle, 0, geom.Size.Cells()),
	}
}

// Geometry returns the pixel geometry the renderer paints with.
func (r *GridRenderer) Geometry() Geometry { return r.geom }

// Palette returns the renderer's colours.
func (r *GridRenderer) Palette() Palette { return r.palette }

// Draw repaints the whole board: gridlines, then cells.
func (r *GridRenderer) Draw(c Canvas, v core.View) {
	r.DrawGrid(c)
	r.DrawCells(c, v)
}

// DrawGrid strokes every cell boundary as one path.
func (r *GridRenderer) DrawGrid(c Canvas) {
	sw, sh := r.geom.SurfaceSize()
	pitch := r.geom.pitch()
	w, h := r.geom.Size.W, r.geom.Size.H

	c.BeginPath()
	for i := 0; i <= w; i++ {
		x := float32(i*pitch + 1)
		c.MoveTo(x, 0)
		c.LineTo(x, float32(sh))
	}
	for j := 0; j <= h; j++ {
		y := float32(j*pitch + 1)
		c.MoveTo(0, y)
		c.LineTo(float32(sw), y)
	}
	c.Stroke(r.palette.Grid)
}

// DrawCells fills every cell from the view, live cells first and dead cells
// second, with one fill call per colour.
func (r *GridRenderer) DrawCells(c Canvas, v core.View) {
	r.fillPass(c, v, false, r.palette.Alive)
	r.fillPass(c, v, true, r.palette.Dead)
}

func (r *GridRenderer) fillPass(c Canvas, v core.View, dead bool, col color.Color) {
	r.rects = r.rects[:0]
	for row := 0; row < r.geom.Size.H; row++ {
		for cl := 0; cl < r.geom.Size.W; cl++ {
			if v.Dead(row, cl) != dead {
				continue
			}
			r.rects = append(r.rects, r.geom.CellRect(row, cl))
		}
	}
	c.FillRects(col, r.rects)
}
