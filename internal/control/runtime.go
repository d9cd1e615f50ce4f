package control

import (
	"fmt"
	"log"

	"lifeview/internal/core"
	"lifeview/internal/render"
)

// Command is one discrete UI event for the Runtime to apply.
type Command interface {
	command()
}

// Click is a primary-button press on the display surface.
type Click struct {
	Pointer render.Pointer
	Layout  render.Layout
	Mods    Modifiers
}

// SetTicks carries the raw text of the tick-count input.
type SetTicks struct {
	Value string
}

// Reset restores the engine's initial pattern.
type Reset struct{}

// Clear kills every cell.
type Clear struct{}

// TogglePlay flips between running and paused.
type TogglePlay struct{}

func (Click) command()      {}
func (SetTicks) command()   {}
func (Reset) command()      {}
func (Clear) command()      {}
func (TogglePlay) command() {}

// Runtime is the composition root: one session, its controller and its
// scheduler.
type Runtime struct {
	Controller *Controller
	Scheduler  *Scheduler
}

// Options configures NewRuntime. Label and FPS are optional.
type Options struct {
	Palette render.Palette
	Label   Label
	FPS     Sampler
}

// NewRuntime builds the controller and scheduler for an engine drawn onto
// canvas and animated by host.
func NewRuntime(e core.Engine, canvas render.Canvas, host FrameHost, opts Options) *Runtime {
	session := core.NewSession(e)
	renderer := render.NewGridRenderer(render.NewGeometry(session.Size()), opts.Palette)
	ctrl := NewController(session, renderer, canvas)
	return &Runtime{
		Controller: ctrl,
		Scheduler:  NewScheduler(host, ctrl, opts.Label, opts.FPS),
	}
}

// Start paints the initial board and starts the animation.
func (rt *Runtime) Start() {
	rt.Controller.Redraw()
	rt.Scheduler.Play()
}

// Dispatch applies one command.
func (rt *Runtime) Dispatch(cmd Command) error {
	switch c := cmd.(type) {
	case Click:
		cells := rt.Controller.Click(c)
		log.Printf("toggled %d cell(s) around (%d,%d)", len(cells), cells[0].Row, cells[0].Col)
	case SetTicks:
		if err := rt.Scheduler.SetTicks(c.Value); err != nil {
			log.Printf("keeping tick count %d: %v", rt.Scheduler.Ticks(), err)
			return err
		}
	case Reset:
		rt.Controller.Reset()
	case Clear:
		rt.Controller.Clear()
	case TogglePlay:
		rt.Scheduler.Toggle()
	default:
		return fmt.Errorf("control: unknown command %T", cmd)
	}
	return nil
}
