// Package ui draws the control panel and the FPS overlay of the GUI.
package ui

import (
	"image"
	"strconv"

	"lifeview/internal/control"
)

// Button identifies one control on the panel.
type Button int

const (
	ButtonNone Button = iota
	ButtonPlay
	ButtonTicksDown
	ButtonTicksUp
	ButtonReset
	ButtonClear
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	wideButton     = 72
	headerBaseline = 18
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + 14
)

// PanelWidth is the default width of the control panel in pixels.
const PanelWidth = 180

// Layout holds the button rectangles of a panel of the given width, in panel
// coordinates.
type Layout struct {
	Width int
	rects map[Button]image.Rectangle
	rows  map[Button]int
}

// NewLayout places the controls: play/pause, then the tick stepper, then reset
// and clear side by side.
func NewLayout(width int) Layout {
	if width <= 0 {
		width = PanelWidth
	}
	l := Layout{Width: width, rects: map[Button]image.Rectangle{}, rows: map[Button]int{}}
	row := func(i int) (top, buttonY int) {
		top = controlsTop + i*lineHeight
		return top, top + (lineHeight-buttonSize)/2
	}

	top, y := row(0)
	l.rects[ButtonPlay] = image.Rect(panelPadding, y, panelPadding+wideButton, y+buttonSize)
	l.rows[ButtonPlay] = top

	top, y = row(1)
	plus := image.Rect(width-panelPadding-buttonSize, y, width-panelPadding, y+buttonSize)
	minus := image.Rect(plus.Min.X-buttonGap-buttonSize, y, plus.Min.X-buttonGap, y+buttonSize)
	l.rects[ButtonTicksUp] = plus
	l.rects[ButtonTicksDown] = minus
	l.rows[ButtonTicksUp] = top
	l.rows[ButtonTicksDown] = top

	top, y = row(2)
	reset := image.Rect(panelPadding, y, panelPadding+wideButton, y+buttonSize)
	l.rects[ButtonReset] = reset
	l.rects[ButtonClear] = image.Rect(reset.Max.X+buttonGap, y, reset.Max.X+buttonGap+wideButton, y+buttonSize)
	l.rows[ButtonReset] = top
	l.rows[ButtonClear] = top
	return l
}

// Rect returns the rectangle of b.
func (l Layout) Rect(b Button) image.Rectangle { return l.rects[b] }

// Row returns the top of the line b sits on.
func (l Layout) Row(b Button) int { return l.rows[b] }

// Hit returns the button under (x, y), or ButtonNone.
func (l Layout) Hit(x, y int) Button {
	p := image.Pt(x, y)
	for b, r := range l.rects {
		if p.In(r) {
			return b
		}
	}
	return ButtonNone
}

// Command translates a press on b into a runtime command. ticks is the
// current tick count, used by the stepper.
func (b Button) Command(ticks int) control.Command {
	switch b {
	case ButtonPlay:
		return control.TogglePlay{}
	case ButtonTicksDown:
		return control.SetTicks{Value: strconv.Itoa(ticks - 1)}
	case ButtonTicksUp:
		return control.SetTicks{Value: strconv.Itoa(ticks + 1)}
	case ButtonReset:
		return control.Reset{}
	case ButtonClear:
		return control.Clear{}
	}
	return nil
}
