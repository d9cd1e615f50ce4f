//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"log"
	"strconv"

	"lifeview/internal/control"
	"lifeview/internal/core"
	"lifeview/internal/fps"
	"lifeview/internal/render"
	"lifeview/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a control.Runtime to the ebiten.Game interface. It is also the
// runtime's frame host: a requested frame runs in the next Update.
type Game struct {
	rt      *control.Runtime
	frames  frameQueue
	board   *boardCanvas
	panel   *ui.Panel
	overlay *ui.Overlay

	scale  int
	boardW int
	boardH int
}

// New constructs a Game for the provided engine.
func New(e core.Engine, opts Options) *Game {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	geom := render.NewGeometry(e.Size())
	meter := fps.NewMeter(fps.DefaultWindow)
	g := &Game{
		board:   newBoardCanvas(geom),
		panel:   ui.NewPanel(e.Name(), ui.PanelWidth),
		overlay: ui.NewOverlay(meter),
		scale:   opts.Scale,
	}
	g.boardW, g.boardH = geom.SurfaceSize()
	g.rt = control.NewRuntime(e, g.board, &g.frames, control.Options{
		Palette: opts.Palette,
		Label:   g.panel,
		FPS:     meter,
	})
	if opts.Ticks > 1 {
		g.dispatch(control.SetTicks{Value: strconv.Itoa(opts.Ticks)})
	}
	g.rt.Start()
	return g
}

// Update handles input and runs the pending frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	sched := g.rt.Scheduler
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.dispatch(control.TogglePlay{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.dispatch(control.Reset{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.dispatch(control.Clear{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.dispatch(control.SetTicks{Value: strconv.Itoa(sched.Ticks() + 1)})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) && sched.Ticks() > 1 {
		g.dispatch(control.SetTicks{Value: strconv.Itoa(sched.Ticks() - 1)})
	}

	if cmd := g.panel.Update(g.boardW*g.scale, sched.Ticks()); cmd != nil {
		g.dispatch(cmd)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.click()
	}
	g.overlay.Update()

	g.frames.run()
	return nil
}

func (g *Game) click() {
	mx, my := ebiten.CursorPosition()
	layout := g.boardLayout()
	if float64(mx) >= layout.Width || float64(my) >= layout.Height || mx < 0 || my < 0 {
		return
	}
	g.dispatch(control.Click{
		Pointer: render.Pointer{X: float64(mx), Y: float64(my)},
		Layout:  layout,
		Mods: control.Modifiers{
			Shift: ebiten.IsKeyPressed(ebiten.KeyShift),
			Alt:   ebiten.IsKeyPressed(ebiten.KeyAlt),
		},
	})
}

// boardLayout is the on-screen box of the board surface, which is drawn
// scaled at the top-left corner.
func (g *Game) boardLayout() render.Layout {
	return render.Layout{
		Width:  float64(g.boardW * g.scale),
		Height: float64(g.boardH * g.scale),
	}
}

func (g *Game) dispatch(cmd control.Command) {
	if err := g.rt.Dispatch(cmd); err != nil && !errors.Is(err, control.ErrInvalidTicks) {
		log.Printf("dispatch %T: %v", cmd, err)
	}
}

// Draw blits the retained board and draws panel and overlay over it.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.board.img, op)

	_, h := g.Layout(0, 0)
	g.panel.Draw(screen, g.boardW*g.scale, h, g.rt.Scheduler.Ticks())
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size: the scaled board plus the panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.boardW*g.scale + g.panel.Width(), g.boardH * g.scale
}

// Run opens the window and blocks until it is closed.
func Run(e core.Engine, opts Options) error {
	g := New(e, opts)
	w, h := g.Layout(0, 0)
	ebiten.SetWindowTitle("lifeview · " + e.Name())
	if opts.TPS > 0 {
		ebiten.SetTPS(opts.TPS)
	}
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
