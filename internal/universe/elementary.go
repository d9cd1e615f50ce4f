package universe

import (
	"fmt"

	"lifeview/internal/core"
)

// Elementary implements a one-dimensional Wolfram code projected vertically:
// row 0 holds the newest generation and history scrolls downwards.
type Elementary struct {
	w, h int
	code uint8
	cur  []byte
	nxt  []byte
}

// NewElementary creates an automaton with the given dimensions and code.
func NewElementary(w, h int, code uint8) *Elementary {
	n := core.BytesFor(w, h)
	e := &Elementary{w: w, h: h, code: code, cur: make([]byte, n), nxt: make([]byte, n)}
	e.Reset()
	return e
}

// Name returns the engine identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the grid dimensions.
func (e *Elementary) Size() core.Size { return core.Size{W: e.w, H: e.h} }

// Cells exposes the current packed buffer.
func (e *Elementary) Cells() []byte { return e.cur }

// Reset clears the grid and seeds the top row with a single live cell.
func (e *Elementary) Reset() {
	e.Clear()
	center := e.w / 2
	e.cur[center/8] &^= 1 << (center % 8)
}

// Clear kills every cell.
func (e *Elementary) Clear() {
	for i := range e.cur {
		e.cur[i] = 0xff
	}
}

// Toggle flips the cell at (row, col). Edits to the top row seed the next
// generation; edits further down only change history.
func (e *Elementary) Toggle(row, col int) {
	if row < 0 || row >= e.h || col < 0 || col >= e.w {
		panic(fmt.Sprintf("universe: toggle (%d,%d) outside %dx%d grid", row, col, e.w, e.h))
	}
	i := core.Index(e.w, row, col)
	e.cur[i/8] ^= 1 << (i % 8)
}

func (e *Elementary) bit(cells []byte, row, col int) uint8 {
	if core.BitIsSet(cells, core.Index(e.w, row, col)) {
		return 0
	}
	return 1
}

func setAlive(cells []byte, i int, alive bool) {
	if alive {
		cells[i/8] &^= 1 << (i % 8)
		return
	}
	cells[i/8] |= 1 << (i % 8)
}

// Tick computes the next generation into row 0 and scrolls history down.
func (e *Elementary) Tick() {
	for row := e.h - 1; row > 0; row-- {
		for col := 0; col < e.w; col++ {
			setAlive(e.nxt, core.Index(e.w, row, col), e.bit(e.cur, row-1, col) == 1)
		}
	}
	for x := 0; x < e.w; x++ {
		left := e.bit(e.cur, 0, (x-1+e.w)%e.w)
		center := e.bit(e.cur, 0, x)
		right := e.bit(e.cur, 0, (x+1)%e.w)
		idx := (left << 2) | (center << 1) | right
		setAlive(e.nxt, x, (e.code>>idx)&1 == 1)
	}
	e.cur, e.nxt = e.nxt, e.cur
}

// String renders one line per row, ⬜ for live cells and ⬛ for dead ones.
func (e *Elementary) String() string {
	return renderRows(e.cur, e.w, e.h)
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Engine {
		c := FromMap(cfg)
		return NewElementary(c.Width, c.Height, c.Code)
	})
}
