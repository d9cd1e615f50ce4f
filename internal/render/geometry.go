package render

import (
	"image"
	"math"

	"lifeview/internal/core"
)

// CellSize is the edge length of one cell in surface pixels, excluding the
// one pixel gridline shared with its neighbours.
const CellSize = 5

// Pointer is a pointer position in the host's client coordinates.
type Pointer struct {
	X, Y float64
}

// Layout is the on-screen bounding box of the display surface in the same
// coordinates as Pointer. It may differ from the surface's logical size when
// the host scales the surface.
type Layout struct {
	Left, Top     float64
	Width, Height float64
}

// Geometry converts between grid cells and surface pixels.
type Geometry struct {
	Size     core.Size
	CellSize int
}

// NewGeometry returns the geometry for a grid using the default cell size.
func NewGeometry(size core.Size) Geometry {
	return Geometry{Size: size, CellSize: CellSize}
}

func (g Geometry) pitch() int { return g.CellSize + 1 }

// SurfaceSize returns the surface dimensions in pixels, leaving a one pixel
// border for the outermost gridlines.
func (g Geometry) SurfaceSize() (int, int) {
	return g.pitch()*g.Size.W + 1, g.pitch()*g.Size.H + 1
}

// CellRect returns the pixel rectangle filled for (row, col).
func (g Geometry) CellRect(row, col int) image.Rectangle {
	x := col*g.pitch() + 1
	y := row*g.pitch() + 1
	return image.Rect(x, y, x+g.CellSize, y+g.CellSize)
}

// ToCell maps a pointer position to the grid cell under it. The result is
// clamped onto the grid, so positions on or past the surface edge resolve to
// the nearest border cell.
func (g Geometry) ToCell(p Pointer, l Layout) (row, col int) {
	sw, sh := g.SurfaceSize()
	scaleX, scaleY := 1.0, 1.0
	if l.Width > 0 {
		scaleX = float64(sw) / l.Width
	}
	if l.Height > 0 {
		scaleY = float64(sh) / l.Height
	}

	x := (p.X - l.Left) * scaleX
	y := (p.Y - l.Top) * scaleY

	col = clampInt(int(math.Floor(x/float64(g.pitch()))), 0, g.Size.W-1)
	row = clampInt(int(math.Floor(y/float64(g.pitch()))), 0, g.Size.H-1)
	return row, col
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
