package tui

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"lifeview/internal/render"
)

// cellWidth is the number of terminal columns used per grid cell.
const cellWidth = 2

// Canvas is a render.Canvas whose pixels are terminal cells. Each filled cell
// rectangle becomes one coloured block; strokes have no sub-cell resolution
// and only record the gridline colour for the border.
type Canvas struct {
	render.PathBuilder
	geom   render.Geometry
	cells  []color.Color
	border color.Color
	blocks map[color.Color]string
}

// NewCanvas returns a terminal canvas for the given geometry.
func NewCanvas(geom render.Geometry) *Canvas {
	return &Canvas{
		geom:   geom,
		cells:  make([]color.Color, geom.Size.Cells()),
		blocks: map[color.Color]string{},
	}
}

// Stroke records the gridline colour.
func (c *Canvas) Stroke(col color.Color) {
	c.border = col
}

// FillRects colours the grid cell whose rectangle starts at each rect origin.
func (c *Canvas) FillRects(col color.Color, rects []image.Rectangle) {
	pitch := c.geom.CellSize + 1
	for _, r := range rects {
		row := (r.Min.Y - 1) / pitch
		cl := (r.Min.X - 1) / pitch
		if row < 0 || row >= c.geom.Size.H || cl < 0 || cl >= c.geom.Size.W {
			continue
		}
		c.cells[row*c.geom.Size.W+cl] = col
	}
}

// At returns the colour last painted into (row, col), or nil.
func (c *Canvas) At(row, col int) color.Color {
	return c.cells[row*c.geom.Size.W+col]
}

// Layout returns the on-screen box of the board when drawn at (left, top) in
// terminal cells.
func (c *Canvas) Layout(left, top int) render.Layout {
	return render.Layout{
		Left:   float64(left),
		Top:    float64(top),
		Width:  float64(c.geom.Size.W * cellWidth),
		Height: float64(c.geom.Size.H),
	}
}

// View renders the board as lines of coloured blocks inside a border.
func (c *Canvas) View() string {
	var b strings.Builder
	w := c.geom.Size.W
	for row := 0; row < c.geom.Size.H; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < w; col++ {
			b.WriteString(c.block(c.cells[row*w+col]))
		}
	}
	style := lipgloss.NewStyle().Border(lipgloss.NormalBorder())
	if c.border != nil {
		style = style.BorderForeground(lipgloss.Color(hexOf(c.border)))
	}
	return style.Render(b.String())
}

func (c *Canvas) block(col color.Color) string {
	if col == nil {
		return strings.Repeat(" ", cellWidth)
	}
	if s, ok := c.blocks[col]; ok {
		return s
	}
	s := lipgloss.NewStyle().Background(lipgloss.Color(hexOf(col))).Render(strings.Repeat(" ", cellWidth))
	c.blocks[col] = s
	return s
}

func hexOf(col color.Color) string {
	cf, _ := colorful.MakeColor(col)
	return cf.Hex()
}
