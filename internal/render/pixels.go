package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// ImageCanvas is a Canvas backed by an in-memory RGBA image. Strokes are one
// pixel wide and centred on the given coordinate, so a line at x = 1 covers
// pixel column 0, matching how a 1px canvas stroke lands between pixels.
type ImageCanvas struct {
	PathBuilder
	img *image.RGBA
}

// NewImageCanvas allocates a transparent canvas of w*h pixels.
func NewImageCanvas(w, h int) *ImageCanvas {
	return &ImageCanvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image exposes the backing image.
func (c *ImageCanvas) Image() *image.RGBA { return c.img }

// Pix exposes the raw RGBA bytes, row-major with no padding.
func (c *ImageCanvas) Pix() []byte { return c.img.Pix }

// Stroke rasterises the current path.
func (c *ImageCanvas) Stroke(col color.Color) {
	rgba := color.RGBAModel.Convert(col).(color.RGBA)
	for _, s := range c.Segments() {
		c.strokeSegment(s, rgba)
	}
}

// FillRects paints each rect with col, replacing what was underneath.
func (c *ImageCanvas) FillRects(col color.Color, rects []image.Rectangle) {
	src := image.NewUniform(col)
	for _, r := range rects {
		draw.Draw(c.img, r, src, image.Point{}, draw.Src)
	}
}

func (c *ImageCanvas) strokeSegment(s Segment, col color.RGBA) {
	b := c.img.Bounds()
	switch {
	case s.X0 == s.X1:
		x := pixelAt(s.X0)
		y0, y1 := spanOf(s.Y0, s.Y1)
		for y := y0; y < y1; y++ {
			if (image.Point{X: x, Y: y}).In(b) {
				c.img.SetRGBA(x, y, col)
			}
		}
	case s.Y0 == s.Y1:
		y := pixelAt(s.Y0)
		x0, x1 := spanOf(s.X0, s.X1)
		for x := x0; x < x1; x++ {
			if (image.Point{X: x, Y: y}).In(b) {
				c.img.SetRGBA(x, y, col)
			}
		}
	default:
		dx := float64(s.X1 - s.X0)
		dy := float64(s.Y1 - s.Y0)
		steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			x := pixelAt(float32(float64(s.X0) + dx*t))
			y := pixelAt(float32(float64(s.Y0) + dy*t))
			if (image.Point{X: x, Y: y}).In(b) {
				c.img.SetRGBA(x, y, col)
			}
		}
	}
}

// pixelAt returns the pixel whose centre is nearest to a line centred on v.
func pixelAt(v float32) int {
	return int(math.Floor(float64(v) - 0.5))
}

func spanOf(a, b float32) (int, int) {
	if a > b {
		a, b = b, a
	}
	return int(math.Floor(float64(a))), int(math.Ceil(float64(b)))
}
