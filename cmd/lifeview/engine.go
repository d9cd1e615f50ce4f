package main

import (
	"fmt"
	"image/png"
	"io"
	"strings"

	"lifeview/internal/config"
	"lifeview/internal/core"
	"lifeview/internal/render"
)

func buildEngine(cfg *config.Config) (core.Engine, render.Palette, error) {
	if err := cfg.Validate(); err != nil {
		return nil, render.Palette{}, err
	}
	factory, ok := core.Engines()[cfg.Engine]
	if !ok {
		return nil, render.Palette{}, fmt.Errorf("unknown engine %q (have %s)", cfg.Engine, strings.Join(core.EngineNames(), ", "))
	}
	grid, alive, dead, err := cfg.Palette()
	if err != nil {
		return nil, render.Palette{}, err
	}
	return factory(cfg.EngineParams()), render.Palette{Grid: grid, Alive: alive, Dead: dead}, nil
}

// writeSnapshot advances e by steps generations and encodes the rendered
// surface as PNG.
func writeSnapshot(w io.Writer, e core.Engine, pal render.Palette, steps int) error {
	s := core.NewSession(e)
	for i := 0; i < steps; i++ {
		s.Tick()
	}
	geom := render.NewGeometry(s.Size())
	canvas := render.NewImageCanvas(geom.SurfaceSize())
	render.NewGridRenderer(geom, pal).Draw(canvas, s.View())
	return png.Encode(w, canvas.Image())
}

// writeText advances e by steps generations and writes its text form.
func writeText(w io.Writer, e core.Engine, steps int) error {
	for i := 0; i < steps; i++ {
		e.Tick()
	}
	if s, ok := e.(fmt.Stringer); ok {
		_, err := io.WriteString(w, s.String())
		return err
	}
	v := core.NewSession(e).View()
	size := v.Size()
	var b strings.Builder
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			if v.Alive(row, col) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
