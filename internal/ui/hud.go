//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"lifeview/internal/control"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Panel renders the controls to the right of the board. Its play/pause
// button text follows the scheduler through SetLabel.
type Panel struct {
	layout     Layout
	title      string
	label      string
	panel      *ebiten.Image
	lastHeight int
	pixel      *ebiten.Image
}

// NewPanel constructs a panel of the given width titled with the engine name.
func NewPanel(title string, width int) *Panel {
	p := &Panel{layout: NewLayout(width), title: title, label: control.LabelPlay}
	p.pixel = ebiten.NewImage(1, 1)
	p.pixel.Fill(color.White)
	return p
}

// Width returns the panel width in pixels.
func (p *Panel) Width() int { return p.layout.Width }

// SetLabel sets the play/pause button text.
func (p *Panel) SetLabel(text string) { p.label = text }

// Update returns the command for a button clicked this frame, or nil.
func (p *Panel) Update(offsetX, ticks int) control.Command {
	if p == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return nil
	}
	mx, my := ebiten.CursorPosition()
	if mx < offsetX {
		return nil
	}
	return p.layout.Hit(mx-offsetX, my).Command(ticks)
}

// Draw paints the panel at offsetX.
func (p *Panel) Draw(screen *ebiten.Image, offsetX, height, ticks int) {
	if p == nil || height <= 0 {
		return
	}
	if p.panel == nil || p.lastHeight != height {
		p.panel = ebiten.NewImage(p.layout.Width, height)
		p.lastHeight = height
	}
	p.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	text.Draw(p.panel, p.title, face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	p.drawButton(p.layout.Rect(ButtonPlay), p.label, true)

	labelY := p.layout.Row(ButtonTicksUp) + labelBaseline
	text.Draw(p.panel, "ticks", face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	value := strconv.Itoa(ticks)
	valueX := p.layout.Rect(ButtonTicksDown).Min.X - buttonGap - text.BoundString(face, value).Dx()
	text.Draw(p.panel, value, face, valueX, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	p.drawButton(p.layout.Rect(ButtonTicksDown), "-", ticks > 1)
	p.drawButton(p.layout.Rect(ButtonTicksUp), "+", true)

	p.drawButton(p.layout.Rect(ButtonReset), "reset", true)
	p.drawButton(p.layout.Rect(ButtonClear), "clear", true)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(p.panel, op)
}

func (p *Panel) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	p.panel.DrawImage(p.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(p.panel, label, face, x, y, fg)
}
