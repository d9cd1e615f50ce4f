package render

import (
	"image"
	"image/color"
	"testing"

	"lifeview/internal/core"
)

type bitEngine struct {
	size  core.Size
	cells []byte
}

func newBitEngine(w, h int) *bitEngine {
	e := &bitEngine{size: core.Size{W: w, H: h}, cells: make([]byte, core.BytesFor(w, h))}
	e.Clear()
	return e
}

func (e *bitEngine) Name() string    { return "bits" }
func (e *bitEngine) Size() core.Size { return e.size }
func (e *bitEngine) Cells() []byte   { return e.cells }
func (e *bitEngine) Tick()           {}
func (e *bitEngine) Reset()          {}

func (e *bitEngine) Clear() {
	for i := range e.cells {
		e.cells[i] = 0xff
	}
}

func (e *bitEngine) Toggle(row, col int) {
	i := core.Index(e.size.W, row, col)
	e.cells[i/8] ^= 1 << (i % 8)
}

type fillCall struct {
	col   color.Color
	rects []image.Rectangle
}

type recordingCanvas struct {
	PathBuilder
	begins  int
	strokes [][]Segment
	fills   []fillCall
}

func (c *recordingCanvas) BeginPath() {
	c.begins++
	c.PathBuilder.BeginPath()
}

func (c *recordingCanvas) Stroke(color.Color) {
	c.strokes = append(c.strokes, append([]Segment(nil), c.Segments()...))
}

func (c *recordingCanvas) FillRects(col color.Color, rects []image.Rectangle) {
	c.fills = append(c.fills, fillCall{col: col, rects: append([]image.Rectangle(nil), rects...)})
}

func TestDrawGridSinglePath(t *testing.T) {
	geom := NewGeometry(core.Size{W: 4, H: 3})
	r := NewGridRenderer(geom, DefaultPalette())
	var c recordingCanvas
	r.DrawGrid(&c)

	if c.begins != 1 || len(c.strokes) != 1 {
		t.Fatalf("expected one path and one stroke, got %d paths %d strokes", c.begins, len(c.strokes))
	}
	segs := c.strokes[0]
	if len(segs) != (4+1)+(3+1) {
		t.Fatalf("expected %d segments, got %d", 9, len(segs))
	}
	sw, sh := geom.SurfaceSize()
	first, last := segs[0], segs[4]
	if first != (Segment{X0: 1, Y0: 0, X1: 1, Y1: float32(sh)}) {
		t.Fatalf("first vertical line = %+v", first)
	}
	if last.X0 != 25 {
		t.Fatalf("last vertical line at x=%v, want 25", last.X0)
	}
	horizontal := segs[5]
	if horizontal != (Segment{X0: 0, Y0: 1, X1: float32(sw), Y1: 1}) {
		t.Fatalf("first horizontal line = %+v", horizontal)
	}
}

func TestDrawCellsTwoBatchedPasses(t *testing.T) {
	e := newBitEngine(3, 2)
	s := core.NewSession(e)
	s.Toggle(0, 1)
	s.Toggle(1, 2)

	pal := DefaultPalette()
	geom := NewGeometry(s.Size())
	r := NewGridRenderer(geom, pal)
	var c recordingCanvas
	r.DrawCells(&c, s.View())

	if len(c.fills) != 2 {
		t.Fatalf("expected 2 fill calls, got %d", len(c.fills))
	}
	alive, dead := c.fills[0], c.fills[1]
	if alive.col != pal.Alive || dead.col != pal.Dead {
		t.Fatal("passes must run alive first, dead second")
	}
	wantAlive := []image.Rectangle{geom.CellRect(0, 1), geom.CellRect(1, 2)}
	if len(alive.rects) != len(wantAlive) {
		t.Fatalf("alive rects = %v, want %v", alive.rects, wantAlive)
	}
	for i := range wantAlive {
		if alive.rects[i] != wantAlive[i] {
			t.Fatalf("alive rect %d = %v, want %v", i, alive.rects[i], wantAlive[i])
		}
	}
	if len(dead.rects) != 4 {
		t.Fatalf("expected 4 dead rects, got %d", len(dead.rects))
	}
}

func TestDrawAfterClearPaintsNoAliveCells(t *testing.T) {
	e := newBitEngine(64, 64)
	s := core.NewSession(e)
	s.Toggle(5, 5)
	s.Clear()

	v := s.View()
	for row := 0; row < 64; row++ {
		for col := 0; col < 64; col++ {
			if !v.Dead(row, col) {
				t.Fatalf("cell (%d,%d) should be dead after clear", row, col)
			}
		}
	}

	r := NewGridRenderer(NewGeometry(s.Size()), DefaultPalette())
	var c recordingCanvas
	r.Draw(&c, v)
	if len(c.strokes) != 1 {
		t.Fatalf("expected gridlines stroked once, got %d", len(c.strokes))
	}
	if n := len(c.fills[0].rects); n != 0 {
		t.Fatalf("expected zero alive rects, got %d", n)
	}
	if n := len(c.fills[1].rects); n != 64*64 {
		t.Fatalf("expected %d dead rects, got %d", 64*64, n)
	}
}

func TestDrawRejectsStaleView(t *testing.T) {
	s := core.NewSession(newBitEngine(2, 2))
	v := s.View()
	s.Toggle(0, 0)

	defer func() {
		if recover() == nil {
			t.Fatal("drawing from a stale view should panic")
		}
	}()
	var c recordingCanvas
	NewGridRenderer(NewGeometry(s.Size()), DefaultPalette()).DrawCells(&c, v)
}
