package tui

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"lifeview/internal/control"
	"lifeview/internal/render"
	"lifeview/internal/universe"
)

func newTestModel(t *testing.T) (*Model, *universe.Life) {
	t.Helper()
	e := universe.NewLife("life", 64, 64, universe.Conway, 1)
	return NewModel(e, render.DefaultPalette(), 1, 60), e
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelStartsPlaying(t *testing.T) {
	m, _ := newTestModel(t)
	if !m.rt.Scheduler.Running() || m.label.text != control.LabelPause {
		t.Fatalf("expected running with label %q, got running=%v label=%q", control.LabelPause, m.rt.Scheduler.Running(), m.label.text)
	}
	if m.Init() == nil {
		t.Fatal("expected first frame tick from Init")
	}
	if m.host.cmd() != nil {
		t.Fatal("frame should only be armed once")
	}
}

func TestFrameMessageRunsFrame(t *testing.T) {
	m, _ := newTestModel(t)
	m.Init()
	_, cmd := m.Update(frameMsg{id: m.host.pending})
	if m.rt.Scheduler.Frames() != 1 {
		t.Fatalf("expected one frame, got %d", m.rt.Scheduler.Frames())
	}
	if cmd == nil {
		t.Fatal("running scheduler should arm the next frame")
	}
}

func TestCancelledFrameIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	m.Init()
	stale := m.host.pending
	m.Update(key(" "))
	if m.rt.Scheduler.Running() {
		t.Fatal("space should pause")
	}
	m.Update(frameMsg{id: stale})
	if m.rt.Scheduler.Frames() != 0 {
		t.Fatalf("cancelled frame ran")
	}

	m.Update(key(" "))
	fresh := m.host.pending
	m.Update(frameMsg{id: stale})
	m.Update(frameMsg{id: fresh})
	if m.rt.Scheduler.Frames() != 1 {
		t.Fatalf("expected only the fresh frame to run, got %d", m.rt.Scheduler.Frames())
	}
}

func TestMouseClickTogglesCellUnderPointer(t *testing.T) {
	m, e := newTestModel(t)
	m.Update(key("c"))

	// Cell (1,1) spans terminal columns 3-4 of row 3.
	for _, x := range []int{3, 4} {
		m.Update(tea.MouseMsg{X: x, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		alive := e.Alive(1, 1)
		if (x == 3) != alive {
			t.Fatalf("after click at x=%d alive=%v", x, alive)
		}
	}
	if got := m.canvas.At(1, 1); got != color.Color(color.Black) {
		t.Fatalf("canvas not repainted, cell colour %v", got)
	}
}

func TestMouseOutsideBoardIgnored(t *testing.T) {
	m, e := newTestModel(t)
	m.Update(key("c"))
	m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	for row := 0; row < 64; row++ {
		for col := 0; col < 64; col++ {
			if e.Alive(row, col) {
				t.Fatalf("cell (%d,%d) toggled", row, col)
			}
		}
	}
}

func TestShiftClickTogglesTriple(t *testing.T) {
	m, e := newTestModel(t)
	m.Update(key("c"))
	m.Update(tea.MouseMsg{X: 11, Y: 7, Shift: true, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	for _, row := range []int{4, 5, 6} {
		if !e.Alive(row, 5) {
			t.Errorf("expected (%d,5) alive", row)
		}
	}
}

func TestTickEditing(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(key("t"))
	m.Update(key("1"))
	m.Update(key("2"))
	if !strings.Contains(m.View(), "12") {
		t.Fatal("edit buffer not shown")
	}
	m.Update(key("enter"))
	if m.rt.Scheduler.Ticks() != 12 {
		t.Fatalf("expected 12 ticks, got %d", m.rt.Scheduler.Ticks())
	}

	m.Update(key("t"))
	m.Update(key("x"))
	m.Update(key("enter"))
	if m.rt.Scheduler.Ticks() != 12 {
		t.Fatalf("invalid input changed ticks to %d", m.rt.Scheduler.Ticks())
	}
	if !m.isErr || !strings.Contains(m.status, "invalid tick count") {
		t.Fatalf("expected error status, got %q", m.status)
	}

	m.Update(key("t"))
	m.Update(key("3"))
	m.Update(key("esc"))
	if m.editing || m.rt.Scheduler.Ticks() != 12 {
		t.Fatal("esc should abandon the edit")
	}
}

func TestPlusMinusKeys(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(key("+"))
	m.Update(key("+"))
	if m.rt.Scheduler.Ticks() != 3 {
		t.Fatalf("expected 3 ticks, got %d", m.rt.Scheduler.Ticks())
	}
	for i := 0; i < 5; i++ {
		m.Update(key("-"))
	}
	if m.rt.Scheduler.Ticks() != 1 {
		t.Fatalf("ticks should stay at 1, got %d", m.rt.Scheduler.Ticks())
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should quit")
	}
}

func TestInitialTicksFromOptions(t *testing.T) {
	e := universe.NewLife("life", 8, 8, universe.Conway, 1)
	m := NewModel(e, render.DefaultPalette(), 4, 30)
	if m.rt.Scheduler.Ticks() != 4 {
		t.Fatalf("expected 4 ticks, got %d", m.rt.Scheduler.Ticks())
	}
	if err := m.rt.Dispatch(control.SetTicks{Value: "0"}); !errors.Is(err, control.ErrInvalidTicks) {
		t.Fatalf("expected ErrInvalidTicks, got %v", err)
	}
}

func TestViewShowsState(t *testing.T) {
	m, _ := newTestModel(t)
	v := m.View()
	for _, want := range []string{"life", control.LabelPause, "ticks", "fps"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
