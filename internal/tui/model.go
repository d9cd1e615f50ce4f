// Package tui hosts the controller in a terminal with bubbletea.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"lifeview/internal/control"
	"lifeview/internal/core"
	"lifeview/internal/fps"
	"lifeview/internal/render"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// The board is drawn below the header line, inside a one-cell border.
const (
	boardLeft = 1
	boardTop  = 2
)

type playLabel struct{ text string }

func (l *playLabel) SetLabel(text string) { l.text = text }

// Model is the bubbletea model wrapping a control.Runtime.
type Model struct {
	rt      *control.Runtime
	canvas  *Canvas
	host    *frameHost
	meter   *fps.Meter
	label   *playLabel
	name    string
	editing bool
	editBuf string
	status  string
	isErr   bool
}

// NewModel builds the runtime for engine e. The animation starts with the
// first Update cycle, as the page does on load.
func NewModel(e core.Engine, palette render.Palette, ticks, tps int) *Model {
	canvas := NewCanvas(render.NewGeometry(e.Size()))
	host := newFrameHost(tps)
	meter := fps.NewMeter(fps.DefaultWindow)
	label := &playLabel{}
	rt := control.NewRuntime(e, canvas, host, control.Options{
		Palette: palette,
		Label:   label,
		FPS:     meter,
	})
	m := &Model{rt: rt, canvas: canvas, host: host, meter: meter, label: label, name: e.Name()}
	if ticks > 1 {
		m.dispatch(control.SetTicks{Value: strconv.Itoa(ticks)})
	}
	rt.Start()
	return m
}

// Runtime exposes the wrapped runtime.
func (m *Model) Runtime() *control.Runtime { return m.rt }

// Init returns the first frame tick.
func (m *Model) Init() tea.Cmd { return m.host.cmd() }

// Update handles one message and arms the next frame if one was requested.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.host.run(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			return m, cmd
		}
	}
	return m, m.host.cmd()
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	size := m.rt.Controller.Session().Size()
	x, y := msg.X-boardLeft, msg.Y-boardTop
	if x < 0 || y < 0 || x >= size.W*cellWidth || y >= size.H {
		return
	}
	m.dispatch(control.Click{
		Pointer: render.Pointer{X: float64(msg.X), Y: float64(msg.Y)},
		Layout:  m.canvas.Layout(boardLeft, boardTop),
		Mods:    control.Modifiers{Shift: msg.Shift, Alt: msg.Alt},
	})
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.editing {
		switch msg.Type {
		case tea.KeyEnter:
			m.editing = false
			m.dispatch(control.SetTicks{Value: m.editBuf})
		case tea.KeyEsc:
			m.editing = false
		case tea.KeyBackspace:
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		case tea.KeyRunes:
			m.editBuf += string(msg.Runes)
		}
		return nil
	}

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return tea.Quit
	case " ", "p":
		m.dispatch(control.TogglePlay{})
	case "r":
		m.dispatch(control.Reset{})
	case "c":
		m.dispatch(control.Clear{})
	case "+", "=", "up":
		m.dispatch(control.SetTicks{Value: strconv.Itoa(m.rt.Scheduler.Ticks() + 1)})
	case "-", "down":
		m.dispatch(control.SetTicks{Value: strconv.Itoa(m.rt.Scheduler.Ticks() - 1)})
	case "t":
		m.editing = true
		m.editBuf = ""
	}
	return nil
}

func (m *Model) dispatch(cmd control.Command) {
	if err := m.rt.Dispatch(cmd); err != nil {
		m.status, m.isErr = err.Error(), true
		return
	}
	m.status, m.isErr = "", false
}

// View renders header, board and status lines.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("lifeview · " + m.name))
	b.WriteByte('\n')
	b.WriteString(m.canvas.View())
	b.WriteByte('\n')

	sched := m.rt.Scheduler
	ticks := valueStyle.Render(strconv.Itoa(sched.Ticks()))
	if m.editing {
		ticks = activeStyle.Render(m.editBuf + "▏")
	}
	st := m.meter.Stats()
	fmt.Fprintf(&b, "%s %s  %s %s  %s %s\n",
		labelStyle.Render("[space]"), valueStyle.Render(m.label.text),
		labelStyle.Render("ticks"), ticks,
		labelStyle.Render("fps"), valueStyle.Render(fmt.Sprintf("%.0f (mean %.0f, min %.0f, max %.0f)", st.Latest, st.Mean, st.Min, st.Max)),
	)
	if hist := m.meter.History(); len(hist) > 1 {
		b.WriteString(graphStyle.Render(asciigraph.Plot(hist, asciigraph.Height(3), asciigraph.Width(40))))
		b.WriteByte('\n')
	}
	if m.status != "" {
		style := valueStyle
		if m.isErr {
			style = errStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteByte('\n')
	}
	b.WriteString(helpStyle.Render("click toggle · shift+click triple · alt+click diamond · r reset · c clear · +/- or t ticks · q quit"))
	return b.String()
}
