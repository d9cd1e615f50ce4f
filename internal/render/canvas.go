package render

import (
	"image"
	"image/color"
)

// Canvas is a retained 2D display surface. Content persists between calls
// until it is painted over.
type Canvas interface {
	// BeginPath discards any segments added since the last Stroke.
	BeginPath()
	MoveTo(x, y float32)
	LineTo(x, y float32)
	// Stroke draws every segment of the current path one pixel wide.
	Stroke(c color.Color)
	// FillRects fills all rects with a single colour.
	FillRects(c color.Color, rects []image.Rectangle)
}

// Segment is one straight piece of a path.
type Segment struct {
	X0, Y0, X1, Y1 float32
}

// PathBuilder accumulates MoveTo/LineTo calls into segments. Canvas
// implementations embed it.
type PathBuilder struct {
	segments []Segment
	x, y     float32
	open     bool
}

// BeginPath clears the path.
func (p *PathBuilder) BeginPath() {
	p.segments = p.segments[:0]
	p.open = false
}

// MoveTo starts a new sub-path.
func (p *PathBuilder) MoveTo(x, y float32) {
	p.x, p.y = x, y
	p.open = true
}

// LineTo adds a segment from the current point. Without a current point it
// behaves like MoveTo.
func (p *PathBuilder) LineTo(x, y float32) {
	if p.open {
		p.segments = append(p.segments, Segment{X0: p.x, Y0: p.y, X1: x, Y1: y})
	}
	p.x, p.y = x, y
	p.open = true
}

// Segments returns the segments of the current path.
func (p *PathBuilder) Segments() []Segment { return p.segments }
