package tui

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"lifeview/internal/core"
	"lifeview/internal/render"
)

// Options configures Run.
type Options struct {
	Palette render.Palette
	Ticks   int
	TPS     int
	// LogFile receives log output while the program owns the terminal. Logs
	// are discarded when empty.
	LogFile string
}

// Run starts the terminal host for e and blocks until the user quits.
func Run(e core.Engine, opts Options) error {
	if opts.LogFile != "" {
		f, err := tea.LogToFile(opts.LogFile, "lifeview")
		if err != nil {
			return fmt.Errorf("tui: open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m := NewModel(e, opts.Palette, opts.Ticks, opts.TPS)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
