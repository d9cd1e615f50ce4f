package render

import (
	"image/color"
	"testing"

	"lifeview/internal/core"
)

func TestImageCanvasClearedBoard(t *testing.T) {
	s := core.NewSession(newBitEngine(4, 4))
	geom := NewGeometry(s.Size())
	sw, sh := geom.SurfaceSize()
	pal := DefaultPalette()

	c := NewImageCanvas(sw, sh)
	NewGridRenderer(geom, pal).Draw(c, s.View())

	grid := color.RGBAModel.Convert(pal.Grid)
	dead := color.RGBAModel.Convert(pal.Dead)
	for y := 0; y < sh; y++ {
		for x := 0; x < sw; x++ {
			got := c.Image().At(x, y)
			onLine := x%(CellSize+1) == 0 || y%(CellSize+1) == 0
			want := dead
			if onLine {
				want = grid
			}
			if got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestImageCanvasAliveCell(t *testing.T) {
	s := core.NewSession(newBitEngine(3, 3))
	s.Toggle(1, 2)
	geom := NewGeometry(s.Size())
	sw, sh := geom.SurfaceSize()
	pal := DefaultPalette()

	c := NewImageCanvas(sw, sh)
	NewGridRenderer(geom, pal).Draw(c, s.View())

	alive := color.RGBAModel.Convert(pal.Alive)
	r := geom.CellRect(1, 2)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if got := c.Image().At(x, y); got != alive {
				t.Fatalf("pixel (%d,%d) = %v, want alive colour", x, y, got)
			}
		}
	}
	if got := c.Image().At(r.Min.X-1, r.Min.Y); got == alive {
		t.Fatal("gridline left of the cell should not be painted alive")
	}
}

func TestImageCanvasDiagonalStroke(t *testing.T) {
	c := NewImageCanvas(4, 4)
	c.BeginPath()
	c.MoveTo(0.5, 0.5)
	c.LineTo(3.5, 3.5)
	c.Stroke(color.White)
	for i := 0; i < 3; i++ {
		if got := c.Image().RGBAAt(i, i); got.A == 0 {
			t.Fatalf("diagonal pixel (%d,%d) not painted", i, i)
		}
	}
}
