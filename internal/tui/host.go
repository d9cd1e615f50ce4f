package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lifeview/internal/control"
)

// frameMsg is delivered by tea.Tick when a requested frame is due.
type frameMsg struct {
	id control.FrameID
}

// frameHost implements control.FrameHost on top of bubbletea ticks. A
// request is only armed here; the model turns it into a tea.Tick command
// after each Update. Ticks cannot be withdrawn, so cancelled ids are ignored
// when they arrive.
type frameHost struct {
	interval time.Duration
	next     control.FrameID
	pending  control.FrameID
	fn       func()
	armed    bool
}

func newFrameHost(tps int) *frameHost {
	if tps <= 0 {
		tps = 60
	}
	return &frameHost{interval: time.Second / time.Duration(tps)}
}

func (h *frameHost) RequestFrame(fn func()) control.FrameID {
	h.next++
	h.pending = h.next
	h.fn = fn
	h.armed = true
	return h.pending
}

func (h *frameHost) CancelFrame(id control.FrameID) {
	if id != 0 && id == h.pending {
		h.pending = 0
		h.fn = nil
		h.armed = false
	}
}

// cmd returns the tick for a freshly requested frame, or nil.
func (h *frameHost) cmd() tea.Cmd {
	if !h.armed {
		return nil
	}
	h.armed = false
	id := h.pending
	return tea.Tick(h.interval, func(time.Time) tea.Msg { return frameMsg{id: id} })
}

// run executes the frame for msg if it is still the pending one.
func (h *frameHost) run(msg frameMsg) bool {
	if msg.id == 0 || msg.id != h.pending || h.fn == nil {
		return false
	}
	fn := h.fn
	h.pending = 0
	h.fn = nil
	fn()
	return true
}
