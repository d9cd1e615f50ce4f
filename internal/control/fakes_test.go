package control

import (
	"image"
	"image/color"

	"lifeview/internal/core"
	"lifeview/internal/render"
)

type fakeEngine struct {
	size    core.Size
	cells   []byte
	toggles []core.Cell
	ticks   int
	resets  int
	clears  int
}

func newFakeEngine(w, h int) *fakeEngine {
	e := &fakeEngine{size: core.Size{W: w, H: h}, cells: make([]byte, core.BytesFor(w, h))}
	for i := range e.cells {
		e.cells[i] = 0xff
	}
	return e
}

func (e *fakeEngine) Name() string    { return "fake" }
func (e *fakeEngine) Size() core.Size { return e.size }
func (e *fakeEngine) Cells() []byte   { return e.cells }
func (e *fakeEngine) Tick()           { e.ticks++ }
func (e *fakeEngine) Reset()          { e.resets++ }

func (e *fakeEngine) Clear() {
	e.clears++
	for i := range e.cells {
		e.cells[i] = 0xff
	}
}

func (e *fakeEngine) Toggle(row, col int) {
	if !e.size.Contains(row, col) {
		panic("toggle out of range")
	}
	e.toggles = append(e.toggles, core.Cell{Row: row, Col: col})
	i := core.Index(e.size.W, row, col)
	e.cells[i/8] ^= 1 << (i % 8)
}

// countingCanvas counts full redraws by their single gridline stroke.
type countingCanvas struct {
	render.PathBuilder
	strokes int
	alive   int
}

func (c *countingCanvas) Stroke(color.Color) { c.strokes++ }

func (c *countingCanvas) FillRects(col color.Color, rects []image.Rectangle) {
	if col == render.DefaultPalette().Alive {
		c.alive = len(rects)
	}
}

type fakeHost struct {
	next      FrameID
	pending   map[FrameID]func()
	cancelled []FrameID
}

func newFakeHost() *fakeHost {
	return &fakeHost{pending: map[FrameID]func(){}}
}

func (h *fakeHost) RequestFrame(fn func()) FrameID {
	h.next++
	h.pending[h.next] = fn
	return h.next
}

func (h *fakeHost) CancelFrame(id FrameID) {
	h.cancelled = append(h.cancelled, id)
	delete(h.pending, id)
}

// step runs every frame pending at call time, like one display refresh.
func (h *fakeHost) step() int {
	due := h.pending
	h.pending = map[FrameID]func(){}
	for _, fn := range due {
		fn()
	}
	return len(due)
}

type fakeLabel struct{ text string }

func (l *fakeLabel) SetLabel(text string) { l.text = text }

type fakeMeter struct{ samples int }

func (m *fakeMeter) Sample() { m.samples++ }
