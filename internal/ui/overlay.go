//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"lifeview/internal/fps"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	graphWidth  = 120
	graphHeight = 24
)

// Overlay draws the FPS readout and a frame-rate trace over the board. F
// toggles it.
type Overlay struct {
	meter *fps.Meter
	show  bool
}

// NewOverlay constructs a visible overlay fed by meter.
func NewOverlay(meter *fps.Meter) *Overlay {
	return &Overlay{meter: meter, show: true}
}

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || !o.show || o.meter == nil {
		return
	}
	st := o.meter.Stats()
	if o.meter.Len() == 0 {
		return
	}
	fg := color.RGBA{R: 120, G: 240, B: 160, A: 255}
	vector.DrawFilledRect(screen, 4, 4, graphWidth+8, graphHeight+40, color.RGBA{A: 160}, false)
	text.Draw(screen, fmt.Sprintf("%.0f fps avg %.0f", st.Latest, st.Mean), basicfont.Face7x13, 8, 17, fg)
	text.Draw(screen, fmt.Sprintf("min %.0f max %.0f", st.Min, st.Max), basicfont.Face7x13, 8, 31, fg)

	hist := o.meter.History()
	if len(hist) < 2 || st.Max <= 0 {
		return
	}
	span := st.Max - st.Min
	if span <= 0 {
		span = 1
	}
	top := float32(38)
	step := float32(graphWidth) / float32(len(hist)-1)
	y := func(v float64) float32 {
		return top + float32(graphHeight) - float32((v-st.Min)/span)*graphHeight
	}
	for i := 1; i < len(hist); i++ {
		x0 := 8 + step*float32(i-1)
		x1 := 8 + step*float32(i)
		vector.StrokeLine(screen, x0, y(hist[i-1]), x1, y(hist[i]), 1, fg, true)
	}
}
