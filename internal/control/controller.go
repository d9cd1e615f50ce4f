// Package control turns host events into engine edits and drives the
// animation loop. Nothing here is safe for concurrent use; hosts call in from
// their single event loop.
package control

import (
	"lifeview/internal/core"
	"lifeview/internal/render"
)

// Modifiers carries the two modifier-key flags of a pointer event.
type Modifiers struct {
	// Shift selects the vertical triple.
	Shift bool
	// Alt selects the diamond.
	Alt bool
}

// Pattern returns the cells toggled by a click at (row, col). Row offsets
// wrap by the grid height and column offsets by the grid width. With both
// modifiers held Shift wins.
func Pattern(size core.Size, row, col int, mods Modifiers) []core.Cell {
	wrapRow := func(r int) int { return core.Mod(r, size.H) }
	wrapCol := func(c int) int { return core.Mod(c, size.W) }

	switch {
	case mods.Shift:
		return []core.Cell{
			{Row: row, Col: col},
			{Row: wrapRow(row + 1), Col: col},
			{Row: wrapRow(row - 1), Col: col},
		}
	case mods.Alt:
		return []core.Cell{
			{Row: row, Col: col},
			{Row: wrapRow(row + 1), Col: wrapCol(col + 1)},
			{Row: wrapRow(row + 1), Col: wrapCol(col - 1)},
			{Row: row, Col: wrapCol(col + 1)},
			{Row: wrapRow(row - 1), Col: col},
		}
	default:
		return []core.Cell{{Row: row, Col: col}}
	}
}

// Controller applies edits to the engine and repaints the board.
type Controller struct {
	session  *core.Session
	renderer *render.GridRenderer
	canvas   render.Canvas
}

// NewController wires a controller to its session, renderer and canvas.
func NewController(s *core.Session, r *render.GridRenderer, c render.Canvas) *Controller {
	return &Controller{session: s, renderer: r, canvas: c}
}

// Session returns the engine session the controller edits.
func (c *Controller) Session() *core.Session { return c.session }

// Geometry returns the board's pixel geometry.
func (c *Controller) Geometry() render.Geometry { return c.renderer.Geometry() }

// Redraw repaints gridlines and cells from a freshly acquired view.
func (c *Controller) Redraw() {
	c.renderer.Draw(c.canvas, c.session.View())
}

// Click toggles the pattern selected by the event's modifiers around the cell
// under the pointer, then redraws once. It returns the toggled cells.
func (c *Controller) Click(ev Click) []core.Cell {
	row, col := c.Geometry().ToCell(ev.Pointer, ev.Layout)
	cells := Pattern(c.session.Size(), row, col, ev.Mods)
	for _, cell := range cells {
		c.session.Toggle(cell.Row, cell.Col)
	}
	c.Redraw()
	return cells
}

// Reset restores the engine's initial pattern and redraws.
func (c *Controller) Reset() {
	c.session.Reset()
	c.Redraw()
}

// Clear kills every cell and redraws.
func (c *Controller) Clear() {
	c.session.Clear()
	c.Redraw()
}
